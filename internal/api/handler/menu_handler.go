package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tablemesa/restaurant-api/internal/core/domain"
	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// MenuHandler serves /menu.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// priceValue accepts the price both as a JSON number and as a string, the way
// point-of-sale clients submit it.
type priceValue string

func (p *priceValue) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*p = priceValue(s)
	return nil
}

type menuItemRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Price       priceValue        `json:"price" validate:"required"`
	Category    string            `json:"category" validate:"required"`
	IsAvailable *bool             `json:"isAvailable"`
	ImageURL    string            `json:"imageUrl"`
	Allergens   []string          `json:"allergens"`
	Nutrition   *domain.Nutrition `json:"nutrition"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List returns the full menu ordered by category.
//
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.MenuItem
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create adds a menu item.
//
// @Summary      Create a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      menuItemRequest  true  "Menu item details"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemRequest
	if err := bindMenuItem(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), toMenuInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update replaces the writable fields of a menu item.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Menu item id"
// @Param        body  body      menuItemRequest  true  "Menu item details"
// @Success      200   {object}  domain.MenuItem
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	var req menuItemRequest
	if err := bindMenuItem(c, &req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), toMenuInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete removes a menu item.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Menu item id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Menu item deleted successfully"})
}

func bindMenuItem(c echo.Context, req *menuItemRequest) error {
	if err := json.NewDecoder(c.Request().Body).Decode(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func toMenuInput(req menuItemRequest) ports.MenuItemInput {
	return ports.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       string(req.Price),
		Category:    req.Category,
		IsAvailable: req.IsAvailable,
		ImageURL:    req.ImageURL,
		Allergens:   req.Allergens,
		Nutrition:   req.Nutrition,
	}
}
