package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/freight-backend/internal/model"
)

// RequireRole enforces that the authenticated caller holds one of the given
// roles. The role set is closed: a missing, malformed or unrecognized role
// is rejected with 403 rather than falling through. Assumes JWTAuth ran
// earlier and stored the role under "role".
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(model.Role)
			if !ok || !role.Valid() || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
