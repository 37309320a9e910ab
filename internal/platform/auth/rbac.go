package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that checks if the user has at least one of
// the specified roles. Admin always passes.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRoles := RolesFromContext(c.Request().Context())
			for _, required := range roles {
				for _, has := range userRoles {
					if has == required || has == "admin" {
						return next(c)
					}
				}
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(roles, " or ")))
		}
	}
}

// RequireSelfOrRole allows a patient session to operate on its own records
// (the route's patient id path param must match the token's patient_id) and
// otherwise falls back to a role check.
func RequireSelfOrRole(param string, roles ...string) echo.MiddlewareFunc {
	roleCheck := RequireRole(roles...)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if pid := PatientIDFromContext(c.Request().Context()); pid != "" && pid == c.Param(param) {
				return next(c)
			}
			return roleCheck(next)(c)
		}
	}
}
