package ticket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Create(userID int64, dto CreateTicketDTO) (*Ticket, error)
	GetByID(id int64) (*Ticket, error)
	GetAll() ([]*Ticket, error)
	GetByUserID(userID int64) ([]*Ticket, error)
	Close(id int64) (*Ticket, error)
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

// GetTickets returns all tickets for admin and HR, and the caller's own
// tickets for everyone else.
func (h *Handler) GetTickets(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var (
		tickets []*Ticket
		err     error
	)
	if user.HasAnyRole(auth.RoleAdmin, auth.RoleHR) {
		tickets, err = h.Service.GetAll()
	} else {
		tickets, err = h.Service.GetByUserID(user.ID)
	}
	if err != nil {
		h.Logger.Error("GetTickets: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tickets)
}

func (h *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var dto CreateTicketDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.Create(user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateTicket: service error", "user_id", user.ID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) CloseTicket(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid ticket ID")
		return
	}

	t, err := h.Service.Close(id)
	if err != nil {
		h.Logger.Error("CloseTicket: service error", "ticket_id", id, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t)
}
