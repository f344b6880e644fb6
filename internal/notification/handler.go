package notification

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetForUser(userID int64) ([]*Notification, error)
	MarkRead(id, userID int64) (*Notification, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// GetNotifications lists the caller's own notifications.
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	notifications, err := h.Service.GetForUser(user.ID)
	if err != nil {
		h.Logger.Error("GetNotifications: service error", "user_id", user.ID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, notifications)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid notification ID")
		return
	}

	n, err := h.Service.MarkRead(id, user.ID)
	if err != nil {
		h.Logger.Error("MarkNotificationRead: service error", "notification_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, n)
}
