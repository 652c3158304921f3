package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
	"github.com/tablemesa/restaurant-api/internal/core/service"
)

// OnboardingHandler serves the unprotected first-run endpoints. Both run
// before the caller has a local user record, so they sit outside the guard
// pipeline.
type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(svc ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: svc}
}

type onboardRequest struct {
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	RestaurantPhone   string `json:"restaurantPhone"`
	Role              string `json:"role"`
	UserID            string `json:"userId"`
	Email             string `json:"email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
}

type onboardResponse struct {
	Restaurant *domain.Restaurant `json:"restaurant"`
	User       authUser           `json:"user"`
}

type acceptInvitationRequest struct {
	InvitationID string `json:"invitationId"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

type acceptInvitationResponse struct {
	Message string   `json:"message"`
	User    authUser `json:"user"`
}

// Onboard creates a restaurant and its owning user record.
func (h *OnboardingHandler) Onboard(c echo.Context) error {
	var req onboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Onboard(c.Request().Context(), ports.OnboardInput{
		RestaurantName:    req.RestaurantName,
		RestaurantAddress: req.RestaurantAddress,
		RestaurantPhone:   req.RestaurantPhone,
		Role:              domain.Role(req.Role),
		UserID:            req.UserID,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingOnboardingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
		}
		return err
	}

	return c.JSON(http.StatusCreated, onboardResponse{
		Restaurant: result.Restaurant,
		User:       toAuthUser(result.User),
	})
}

// AcceptInvitation applies a provider invitation's metadata to the local user.
func (h *OnboardingHandler) AcceptInvitation(c echo.Context) error {
	var req acceptInvitationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.AcceptInvitation(c.Request().Context(), ports.AcceptInvitationInput{
		InvitationID: req.InvitationID,
		UserID:       req.UserID,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingOnboardingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
		}
		return err
	}

	return c.JSON(http.StatusOK, acceptInvitationResponse{
		Message: "Invitation accepted successfully",
		User:    toAuthUser(user),
	})
}
