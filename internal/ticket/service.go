package ticket

import (
	"log/slog"
	"time"
)

type Repository interface {
	GetByID(id int64) (*Ticket, error)
	GetAll() ([]*Ticket, error)
	GetByUserID(userID int64) ([]*Ticket, error)
	Create(t *Ticket) error
	Update(t *Ticket) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(userID int64, dto CreateTicketDTO) (*Ticket, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Ticket{
		UserID:    userID,
		Subject:   dto.Subject,
		Message:   dto.Message,
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create ticket", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("ticket created", "ticket_id", t.ID, "user_id", userID)
	return t, nil
}

func (s *Service) GetByID(id int64) (*Ticket, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetAll() ([]*Ticket, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByUserID(userID int64) ([]*Ticket, error) {
	return s.repo.GetByUserID(userID)
}

// Close marks a ticket resolved. Closing is one-way; a closed ticket stays
// closed and closing it again is a conflict.
func (s *Service) Close(id int64) (*Ticket, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t.IsClosed() {
		return nil, ErrAlreadyClosed
	}

	t.Close()
	if err := s.repo.Update(t); err != nil {
		s.logger.Error("failed to close ticket", "ticket_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("ticket closed", "ticket_id", id)
	return t, nil
}
