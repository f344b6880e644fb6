package officer

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Naxdouglas/contract-renewal-sys/internal/transport"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateOfficer(dto CreateOfficerDTO) (*Officer, error)
	GetByID(id int64) (*Officer, error)
	GetAll() ([]OfficerView, error)
	RenewContract(id int64, dto RenewContractDTO) (*Officer, error)
	ApproveRenewal(id int64, dto RenewContractDTO) (*Officer, error)
	ToggleCompliance(id int64) (*Officer, error)
	Terminate(id int64) (*Officer, error)
	Report(kind string) ([]OfficerView, error)
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

func (h *Handler) GetOfficers(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetOfficers: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, views)
}

func (h *Handler) GetOfficer(w http.ResponseWriter, r *http.Request) {
	id, err := h.officerID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid officer ID")
		return
	}

	o, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) CreateOfficer(w http.ResponseWriter, r *http.Request) {
	var dto CreateOfficerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.Service.CreateOfficer(dto)
	if err != nil {
		h.Logger.Error("CreateOfficer: service error", "error", err, "username", dto.Username)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateOfficer: officer created", "officer_id", o.ID, "position", o.Position)
	h.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) RenewContract(w http.ResponseWriter, r *http.Request) {
	id, err := h.officerID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid officer ID")
		return
	}

	var dto RenewContractDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.Service.RenewContract(id, dto)
	if err != nil {
		h.Logger.Error("RenewContract: service error", "error", err, "officer_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) ApproveRenewal(w http.ResponseWriter, r *http.Request) {
	id, err := h.officerID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid officer ID")
		return
	}

	var dto RenewContractDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	o, err := h.Service.ApproveRenewal(id, dto)
	if err != nil {
		h.Logger.Error("ApproveRenewal: service error", "error", err, "officer_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) ToggleCompliance(w http.ResponseWriter, r *http.Request) {
	id, err := h.officerID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid officer ID")
		return
	}

	o, err := h.Service.ToggleCompliance(id)
	if err != nil {
		h.Logger.Error("ToggleCompliance: service error", "error", err, "officer_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) TerminateOfficer(w http.ResponseWriter, r *http.Request) {
	id, err := h.officerID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid officer ID")
		return
	}

	o, err := h.Service.Terminate(id)
	if err != nil {
		h.Logger.Error("TerminateOfficer: service error", "error", err, "officer_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("TerminateOfficer: officer terminated", "officer_id", id)
	h.WriteJSON(w, http.StatusOK, o)
}

// OfficerReport handles GET /reports/officers?kind=all|expiring|terminated
func (h *Handler) OfficerReport(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = ReportAll
	}
	if !ValidReportKind(kind) {
		h.WriteError(w, http.StatusBadRequest, "unknown report kind")
		return
	}

	views, err := h.Service.Report(kind)
	if err != nil {
		h.Logger.Error("OfficerReport: service error", "error", err, "kind", kind)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"kind":     kind,
		"officers": views,
	})
}

func (h *Handler) officerID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
