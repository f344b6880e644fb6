package renewal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
	"github.com/Naxdouglas/contract-renewal-sys/internal/core/events"
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
)

type Repository interface {
	GetByID(id int64) (*Request, error)
	GetAll() ([]*Request, error)
	GetOpenByOfficerID(officerID int64) (*Request, error)
	Create(r *Request) error
	Update(r *Request) error
}

// OfficerGetter is satisfied by the officer service.
type OfficerGetter interface {
	GetByID(id int64) (*officer.Officer, error)
}

type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo     Repository
	officers OfficerGetter
	bus      Publisher
	logger   *slog.Logger
}

func NewService(repo Repository, officers OfficerGetter, bus Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		officers: officers,
		bus:      bus,
		logger:   logger,
	}
}

// Submit opens a renewal request for an officer. At most one open request
// may exist per officer; the officer's name and position are snapshotted
// onto the request so the review queue is readable without joins.
func (s *Service) Submit(ctx context.Context, dto SubmitRequestDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	off, err := s.officers.GetByID(dto.OfficerID)
	if err != nil {
		return nil, err
	}
	if off.IsTerminated() {
		return nil, officer.ErrTerminated
	}

	open, err := s.repo.GetOpenByOfficerID(off.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Error("failed to look up open renewal request", "officer_id", off.ID, "error", err)
		return nil, err
	}
	if open != nil {
		return nil, ErrAlreadyOpen
	}

	now := time.Now()
	req := &Request{
		OfficerID:   off.ID,
		OfficerName: off.FullName(),
		Position:    off.Position,
		HRNotes:     dto.HRNotes,
		HRSubmitted: true,
		SubmittedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(req); err != nil {
		s.logger.Error("failed to create renewal request", "officer_id", off.ID, "error", err)
		return nil, err
	}

	s.publish(ctx, events.NewRenewalSubmittedEvent(req.ID, off.ID, off.UserID, req.OfficerName))

	s.logger.Info("renewal request submitted",
		"request_id", req.ID, "officer_id", off.ID, "actor_id", internal.UserIDFromContext(ctx))
	return req, nil
}

// Recommend records the Manager's evaluation and recommendation. The
// request must still be in the Manager's queue; nothing is persisted when
// validation or the state check fails.
func (s *Service) Recommend(ctx context.Context, id int64, dto RecommendDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !req.CanBeRecommended() {
		return nil, ErrInvalidState
	}

	req.Recommend(dto)
	if err := s.repo.Update(req); err != nil {
		s.logger.Error("failed to update renewal request", "request_id", id, "error", err)
		return nil, err
	}

	s.publish(ctx, events.NewRenewalRecommendedEvent(req.ID, s.officerUserID(req), dto.Recommendation))

	s.logger.Info("renewal request recommended",
		"request_id", req.ID, "recommendation", dto.Recommendation, "actor_id", internal.UserIDFromContext(ctx))
	return req, nil
}

// Decide records the Approver's decision and returns the request to HR. A
// strategic note is mandatory; without it the request stays untouched.
func (s *Service) Decide(ctx context.Context, id int64, dto DecideDTO) (*Request, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !req.CanBeDecided() {
		return nil, ErrInvalidState
	}

	req.Decide(dto)
	if err := s.repo.Update(req); err != nil {
		s.logger.Error("failed to update renewal request", "request_id", id, "error", err)
		return nil, err
	}

	s.publish(ctx, events.NewRenewalDecidedEvent(req.ID, s.officerUserID(req), dto.Decision))

	s.logger.Info("renewal request decided",
		"request_id", req.ID, "decision", dto.Decision, "actor_id", internal.UserIDFromContext(ctx))
	return req, nil
}

func (s *Service) GetByID(id int64) (*Request, error) {
	return s.repo.GetByID(id)
}

// List returns the queue named by status, or the whole collection when
// status is empty.
func (s *Service) List(status string) ([]*Request, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return Filter(all, status), nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.EventType(), "error", err)
	}
}

func (s *Service) officerUserID(req *Request) int64 {
	off, err := s.officers.GetByID(req.OfficerID)
	if err != nil {
		return 0
	}
	return off.UserID
}
