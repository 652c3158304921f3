package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// ShiftHandler serves /shifts.
type ShiftHandler struct {
	service ports.ShiftService
}

func NewShiftHandler(service ports.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

type createShiftRequest struct {
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	Notes     string    `json:"notes"`
}

// List returns the caller's shifts, latest start first.
func (h *ShiftHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	shifts, err := h.service.ListByUser(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shifts)
}

// Create schedules a shift for a staff member.
func (h *ShiftHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shift, err := h.service.Create(c.Request().Context(), ports.CreateShiftInput{
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		UserID:       req.UserID,
		Notes:        req.Notes,
		RestaurantID: principal.RestaurantID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, shift)
}

// ReservationHandler serves /reservations.
type ReservationHandler struct {
	service ports.ReservationService
}

func NewReservationHandler(service ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

type createReservationRequest struct {
	CustomerName    string    `json:"customerName" validate:"required"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerEmail   string    `json:"customerEmail"`
	PartySize       int       `json:"partySize" validate:"required,gt=0"`
	ReservationTime time.Time `json:"reservationTime" validate:"required"`
	SpecialRequests string    `json:"specialRequests"`
}

// List returns the caller's reservations, earliest slot first.
func (h *ReservationHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	reservations, err := h.service.ListByUser(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}

// Create books a table.
func (h *ReservationHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reservation, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		PartySize:       req.PartySize,
		ReservationTime: req.ReservationTime,
		SpecialRequests: req.SpecialRequests,
		UserID:          principal.UserID,
		RestaurantID:    principal.RestaurantID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reservation)
}
