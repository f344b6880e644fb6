package notification

import (
	"log/slog"
	"time"
)

type Repository interface {
	GetByID(id int64) (*Notification, error)
	GetByUserID(userID int64) ([]*Notification, error)
	Create(n *Notification) error
	MarkRead(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Notify(userID int64, notifType, message string) (*Notification, error) {
	n := &Notification{
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(n); err != nil {
		s.logger.Error("failed to create notification", "user_id", userID, "error", err)
		return nil, err
	}
	return n, nil
}

func (s *Service) GetForUser(userID int64) ([]*Notification, error) {
	return s.repo.GetByUserID(userID)
}

// MarkRead flips the read flag. The owner check keeps users from marking
// each other's notifications.
func (s *Service) MarkRead(id, userID int64) (*Notification, error) {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n.UserID != userID {
		return nil, ErrNotFound
	}
	if n.Read {
		return n, nil
	}

	if err := s.repo.MarkRead(id); err != nil {
		s.logger.Error("failed to mark notification read", "notification_id", id, "error", err)
		return nil, err
	}
	n.Read = true
	return n, nil
}
