package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/service"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrRemoveSelf):
		return http.StatusBadRequest, "Cannot remove yourself from the team"
	case errors.Is(err, domain.ErrAlreadyMember):
		return http.StatusBadRequest, "User is already a member of this restaurant"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domain.ErrMenuItemNotFound):
		return http.StatusNotFound, "Menu item not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, domain.ErrRestaurantNotFound):
		return http.StatusNotFound, "Restaurant not found"
	case errors.Is(err, domain.ErrInvitationNotFound):
		return http.StatusNotFound, "Invitation not found"
	case errors.Is(err, domain.ErrInvalidOrderStatus):
		return http.StatusBadRequest, "Invalid order status"
	case errors.Is(err, domain.ErrEmptyOrder):
		return http.StatusBadRequest, "Order must contain at least one item"
	case errors.Is(err, service.ErrInvalidPrice):
		return http.StatusBadRequest, "Invalid price"
	}

	// Unexpected error (persistence failures included): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
