package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/mia-boutique/storefront/internal/kafka"
	"github.com/mia-boutique/storefront/internal/orders"
	"github.com/mia-boutique/storefront/internal/redisx"
)

// createOrder is the public checkout endpoint. An optional Idempotency-Key
// header lets a retried submission return the already-created order instead
// of a duplicate.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in orders.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadBody(w)
		return
	}
	if err := orders.ValidateNewOrder(in); err != nil {
		h.writeError(w, err)
		return
	}

	ctx := r.Context()
	idemKey := ""
	if k := r.Header.Get("Idempotency-Key"); k != "" && h.Redis != nil {
		idemKey = fmt.Sprintf(redisx.KeyIdemCheckout, k)
		if orderID, err := h.Redis.Get(ctx, idemKey).Result(); err == nil && orderID != "" {
			if o, err := h.Orders.OrderByID(ctx, orderID); err == nil {
				writeJSON(w, http.StatusOK, o)
				return
			}
		}
	}

	o, err := h.Orders.CreateOrder(ctx, in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if idemKey != "" {
		_ = h.Redis.Set(ctx, idemKey, o.ID, redisx.TTLIdempotency).Err()
	}
	h.cacheStatus(r, o)

	h.publish(r, orders.TopicOrderCreated, orders.EventOrderCreated, o.ID, orders.OrderCreatedPayload{
		OrderID:       o.ID,
		OrderNumber:   o.Number,
		CustomerName:  o.Customer.Name,
		CustomerPhone: o.Customer.Phone,
		ItemCount:     len(o.Items),
		TotalAmount:   o.TotalAmount,
		StoreID:       o.StoreID,
	})

	writeJSON(w, http.StatusCreated, o)
}

// getOrderStatus is public so customers can track an order without a session.
// Redis serves the hot path; the store stays authoritative.
func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	ctx := r.Context()

	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}

	o, err := h.Orders.OrderByID(ctx, orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cacheStatus(r, o)
	writeJSON(w, http.StatusOK, statusBody(o))
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	os, err := h.Orders.Orders(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if os == nil {
		os = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, os)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Orders.OrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type statusPatchReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusPatchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadBody(w)
		return
	}
	if err := orders.ValidateStatus(req.Status); err != nil {
		h.writeError(w, err)
		return
	}

	o, old, err := h.Orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), orders.Status(req.Status))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.cacheStatus(r, o)

	h.publish(r, orders.TopicOrderStatusChanged, orders.EventOrderStatusChanged, o.ID, orders.OrderStatusChangedPayload{
		OrderID:     o.ID,
		OrderNumber: o.Number,
		OldStatus:   string(old),
		NewStatus:   string(o.Status),
	})

	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Orders.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func statusBody(o orders.Order) map[string]any {
	return map[string]any{
		"orderNumber": o.Number,
		"status":      o.Status,
		"updatedAt":   o.UpdatedAt,
	}
}

func (h *Handler) cacheStatus(r *http.Request, o orders.Order) {
	if h.Redis == nil {
		return
	}
	key := fmt.Sprintf(redisx.KeyOrderStatus, o.ID)
	b, _ := json.Marshal(statusBody(o))
	_ = h.Redis.Set(r.Context(), key, b, redisx.TTLStatusCache).Err()
}

func (h *Handler) publish(r *http.Request, topic, eventType, orderID string, payload any) {
	if h.Producer == nil {
		return
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: orderID,
	}
	ev.Payload = kafkax.MustMarshal(payload)
	h.Producer.Publish(topic, orders.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
