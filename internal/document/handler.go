package document

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	"github.com/Naxdouglas/contract-renewal-sys/internal/transport"
	"github.com/Naxdouglas/contract-renewal-sys/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Store(officerID int64, fileName string, size int64, content io.Reader) (*officer.Document, error)
	MaxUploadSize() int64
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

// UploadDocument accepts a multipart form with a single "file" field and
// attaches it to the officer in the URL.
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	officerID, err := strconv.ParseInt(chi.URLParam(r, "officerID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid officer ID")
		return
	}

	if max := h.Service.MaxUploadSize(); max > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, max)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	doc, err := h.Service.Store(officerID, header.Filename, header.Size, file)
	if err != nil {
		h.Logger.Error("UploadDocument: service error", "officer_id", officerID, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, doc)
}
