package document

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	"github.com/google/uuid"
)

// OfficerDocuments is satisfied by the officer service.
type OfficerDocuments interface {
	AttachDocument(officerID int64, fileName, storedName string) (*officer.Document, error)
}

// Service stores uploaded contract documents on disk and records them
// against the officer. Stored names are prefixed with a UUID so uploads
// with the same file name never collide.
type Service struct {
	storageDir    string
	maxUploadSize int64
	officers      OfficerDocuments
	logger        *slog.Logger
}

func NewService(storageDir string, maxUploadSize int64, officers OfficerDocuments, logger *slog.Logger) *Service {
	return &Service{
		storageDir:    storageDir,
		maxUploadSize: maxUploadSize,
		officers:      officers,
		logger:        logger,
	}
}

func (s *Service) MaxUploadSize() int64 {
	return s.maxUploadSize
}

func (s *Service) Store(officerID int64, fileName string, size int64, content io.Reader) (*officer.Document, error) {
	if s.maxUploadSize > 0 && size > s.maxUploadSize {
		return nil, internal.NewValidationError(
			fmt.Sprintf("document exceeds maximum upload size of %d bytes", s.maxUploadSize),
			internal.ErrCodeDocumentTooLarge)
	}

	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return nil, internal.NewInternalError("failed to prepare document storage", err)
	}

	storedName := uuid.New().String() + "_" + filepath.Base(fileName)
	path := filepath.Join(s.storageDir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, internal.NewInternalError("failed to store document", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(path)
		return nil, internal.NewInternalError("failed to store document", err)
	}

	doc, err := s.officers.AttachDocument(officerID, fileName, storedName)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	s.logger.Info("document stored", "officer_id", officerID, "file_name", fileName)
	return doc, nil
}

// Open returns the stored file for download.
func (s *Service) Open(storedName string) (*os.File, error) {
	// Reject anything that could escape the storage directory.
	if filepath.Base(storedName) != storedName {
		return nil, internal.NewValidationError("invalid document name", internal.ErrCodeValidationFailed)
	}
	f, err := os.Open(filepath.Join(s.storageDir, storedName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internal.NewNotFoundError("document not found", internal.ErrCodeDocumentNotFound)
		}
		return nil, internal.NewInternalError("failed to open document", err)
	}
	return f, nil
}
