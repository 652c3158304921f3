package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimiddleware "github.com/tablemesa/restaurant-api/internal/api/middleware"
	"github.com/tablemesa/restaurant-api/internal/core/domain"
)

// ctxPrincipal extracts the principal attached by the Authenticate middleware.
// Its absence means the route was registered without the middleware, which is
// a wiring bug; fail closed with 401.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal := apimiddleware.Principal(c)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return principal, nil
}
