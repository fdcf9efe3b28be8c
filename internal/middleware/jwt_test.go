package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargolink/freight-backend/internal/model"
	"github.com/cargolink/freight-backend/internal/utils"
)

func runProtected(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "through") })
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken("s3cr3t", 42, "a@b.c", model.RoleTransporter, time.Minute)
	require.NoError(t, err)

	rec, c := runProtected(t, JWTAuth("s3cr3t"), "Bearer "+tok.Value)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), c.Get("user_id"))
	assert.Equal(t, model.RoleTransporter, c.Get("role"))
}

func TestJWTAuthRejects(t *testing.T) {
	expired, err := utils.NewAccessToken("s3cr3t", 42, "a@b.c", model.RoleTransporter, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := utils.NewAccessToken("other", 42, "a@b.c", model.RoleTransporter, time.Minute)
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc",
		"garbage token":   "Bearer not.a.jwt",
		"expired token":   "Bearer " + expired.Value,
		"wrong signature": "Bearer " + wrongKey.Value,
	}
	for name, header := range cases {
		rec, _ := runProtected(t, JWTAuth("s3cr3t"), header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestRequireRoleClosedSet(t *testing.T) {
	e := echo.New()
	mw := RequireRole(model.RoleCargoOwner)

	run := func(role interface{}) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "through") })
		require.NoError(t, h(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(model.RoleCargoOwner))
	assert.Equal(t, http.StatusForbidden, run(model.RoleTransporter))
	assert.Equal(t, http.StatusForbidden, run(model.Role("SUPERUSER")), "unknown roles never fall through")
	assert.Equal(t, http.StatusForbidden, run("CARGO_OWNER"), "raw strings are not roles")
	assert.Equal(t, http.StatusForbidden, run(nil))
}
