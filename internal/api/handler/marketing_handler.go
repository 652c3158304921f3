package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// CampaignHandler serves /campaigns.
type CampaignHandler struct {
	service ports.CampaignService
}

func NewCampaignHandler(service ports.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

type createCampaignRequest struct {
	Name           string    `json:"name" validate:"required"`
	Description    string    `json:"description"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required"`
	DiscountType   string    `json:"discountType" validate:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue  float64   `json:"discountValue" validate:"required,gt=0"`
	MinimumOrder   float64   `json:"minimumOrder"`
	TargetAudience string    `json:"targetAudience"`
}

// List returns the restaurant's campaigns, newest first.
func (h *CampaignHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	campaigns, err := h.service.List(c.Request().Context(), principal.RestaurantID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaigns)
}

// Create adds a promotional campaign.
func (h *CampaignHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	campaign, err := h.service.Create(c.Request().Context(), ports.CreateCampaignInput{
		Name:           req.Name,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinimumOrder:   req.MinimumOrder,
		TargetAudience: req.TargetAudience,
		RestaurantID:   principal.RestaurantID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, campaign)
}

// AnalyticsHandler serves /analytics.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Recent returns the last month of daily snapshots for the caller.
func (h *AnalyticsHandler) Recent(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	snapshots, err := h.service.Recent(c.Request().Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshots)
}
