package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/freight-backend/internal/model"
)

// getUserID extracts the authenticated user id placed in the context by the
// JWT middleware.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// getRole extracts the authenticated caller's role from the context. Only
// values of the closed Role enum are accepted.
func getRole(c echo.Context) (model.Role, bool) {
	role, ok := c.Get("role").(model.Role)
	if !ok || !role.Valid() {
		return "", false
	}
	return role, true
}
