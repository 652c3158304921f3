package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// TeamHandler serves /team.
type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=MANAGER CHEF SERVER HOST EMPLOYEE"`
}

type inviteResponse struct {
	Message      string `json:"message"`
	InvitationID string `json:"invitationId"`
	UserID       string `json:"userId"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=MANAGER CHEF SERVER HOST EMPLOYEE"`
}

// List returns the restaurant's staff roster.
func (h *TeamHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	members, err := h.service.List(c.Request().Context(), principal.RestaurantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Invite sends a provider invitation and records a pending member.
func (h *TeamHandler) Invite(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req inviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Invite(c.Request().Context(), principal, req.Email, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, inviteResponse{
		Message:      "Invitation sent successfully",
		InvitationID: result.InvitationID,
		UserID:       result.UserID,
	})
}

// UpdateRole changes a member's role within the caller's restaurant.
func (h *TeamHandler) UpdateRole(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateRole(c.Request().Context(), principal.RestaurantID, c.Param("userId"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Remove deletes a member from the caller's restaurant.
func (h *TeamHandler) Remove(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), principal, c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Team member removed successfully"})
}
