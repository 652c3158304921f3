package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tablemesa/restaurant-api/internal/core/ports"
)

// Enqueuer hands webhook events to the background dispatcher.
type Enqueuer interface {
	Enqueue(event ports.WebhookEventInput)
}

// WebhookHandler ingests delivery-platform callbacks. The platforms expect a
// fast 200; events are acknowledged immediately and processed off the request
// path.
type WebhookHandler struct {
	dispatcher Enqueuer
	log        zerolog.Logger
}

func NewWebhookHandler(dispatcher Enqueuer, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher, log: log}
}

type webhookItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes"`
}

type webhookRequest struct {
	OrderID       string        `json:"orderId"`
	EventType     string        `json:"eventType"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []webhookItem `json:"items"`
	Timestamp     time.Time     `json:"timestamp"`
}

type webhookAck struct {
	Status string `json:"status"`
}

// UberEats handles POST /webhook/ubereats.
func (h *WebhookHandler) UberEats(c echo.Context) error {
	return h.receive(c, "UberEats")
}

// DoorDash handles POST /webhook/doordash.
func (h *WebhookHandler) DoorDash(c echo.Context) error {
	return h.receive(c, "DoorDash")
}

func (h *WebhookHandler) receive(c echo.Context, provider string) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// A payload without an order id cannot be deduplicated or recorded; it is
	// acknowledged and dropped so the platform stops redelivering it.
	if req.OrderID == "" {
		h.log.Warn().Str("provider", provider).Msg("webhook without order id dropped")
		return c.JSON(http.StatusOK, webhookAck{Status: "received"})
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}

	h.dispatcher.Enqueue(ports.WebhookEventInput{
		Provider:      provider,
		ExternalID:    req.OrderID,
		EventType:     req.EventType,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		Timestamp:     ts,
	})

	return c.JSON(http.StatusOK, webhookAck{Status: "received"})
}
