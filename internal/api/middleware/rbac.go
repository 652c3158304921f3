package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// RequireRole allows continuation iff the principal's role is in the allowed
// set. Pure predicate over the principal; no side effects.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if _, ok := allowed[principal.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// RequireRestaurant allows continuation iff the principal carries a restaurant
// affiliation. Most data-access routes are tenant-scoped and meaningless
// without one.
func RequireRestaurant() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if !principal.HasRestaurant() {
				return echo.NewHTTPError(http.StatusForbidden, "Restaurant access required")
			}
			return next(c)
		}
	}
}
