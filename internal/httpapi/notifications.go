package httpapi

import (
	"context"
	"net/http"

	"demo/orderflow/internal/model"

	"go.uber.org/zap"
)

type NotificationService interface {
	Notify(ctx context.Context, req model.NotifyRequest) (model.Notification, error)
	ListNotifications(ctx context.Context) ([]model.Notification, error)
}

func NewNotificationRouter(svc NotificationService, log *zap.Logger) http.Handler {
	r := newRouter(log)
	r.Post("/notify", func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.Notify(r.Context(), decodeObject[model.NotifyRequest](w, r))
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, n)
	})
	r.Get("/notifications", func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ListNotifications(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	})
	return instrument("notification-service", r)
}
