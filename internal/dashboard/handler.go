package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"
)

type ServiceAPI interface {
	Summarize(user *auth.User) *Summary
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

// GetDashboard returns the summary for the caller's role-specific view.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	h.WriteJSON(w, http.StatusOK, h.Service.Summarize(user))
}
