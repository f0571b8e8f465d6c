package httpapi

import (
	"context"
	"net/http"

	"demo/orderflow/internal/apperr"
	"demo/orderflow/internal/model"

	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req model.UserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userHandler struct {
	svc UserService
	log *zap.Logger
}

func NewUserRouter(svc UserService, log *zap.Logger) http.Handler {
	h := userHandler{svc: svc, log: log}

	r := newRouter(log)
	r.Post("/users", h.create)
	r.Get("/users", h.list)
	r.Get("/users"+idPattern, h.get)
	r.Put("/users"+idPattern, h.update)
	r.Delete("/users"+idPattern, h.delete)
	return instrument("user-service", r)
}

func (h userHandler) create(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.CreateUser(r.Context(), decodeObject[model.UserRequest](w, r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h userHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h userHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, h.log, apperr.NotFound("User not found."))
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h userHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, h.log, apperr.NotFound("User not found."))
		return
	}
	u, err := h.svc.UpdateUser(r.Context(), id, decodeObject[model.UserRequest](w, r))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h userHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, h.log, apperr.NotFound("User not found."))
		return
	}
	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
