package httpapi

import (
	"context"
	"net/http"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/model"

	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req model.CreateOrderRequest) (model.CreatedOrder, error)
	GetOrder(ctx context.Context, id int64) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, id int64, req model.UpdateOrderRequest) (model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type orderHandler struct {
	svc OrderService
	log *zap.Logger
}

func NewOrderRouter(svc OrderService, log *zap.Logger) http.Handler {
	h := orderHandler{svc: svc, log: log}

	r := newRouter(log)
	r.Post("/orders", h.create)
	r.Get("/orders", h.list)
	r.Get("/orders"+idPattern, h.get)
	r.Put("/orders"+idPattern, h.update)
	r.Delete("/orders"+idPattern, h.delete)
	return instrument("order-service", r)
}

func (h orderHandler) create(w http.ResponseWriter, r *http.Request) {
	req := decodeObject[model.CreateOrderRequest](w, r)
	o, err := h.svc.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h orderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h orderHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, h.log, apperr.NotFound("Order not found."))
		return
	}
	o, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h orderHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, h.log, apperr.NotFound("Order not found."))
		return
	}
	req := decodeObject[model.UpdateOrderRequest](w, r)
	o, err := h.svc.UpdateOrder(r.Context(), id, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h orderHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, h.log, apperr.NotFound("Order not found."))
		return
	}
	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
