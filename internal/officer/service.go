package officer

import (
	"log/slog"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
	"github.com/Naxdouglas/contract-renewal-sys/internal/user"
)

// DefaultPassword is set on accounts created through the officer view; HR
// tells the officer to change it after first login.
const DefaultPassword = "TempPass123!"

type Repository interface {
	Create(o *Officer) error
	GetByID(id int64) (*Officer, error)
	GetByUserID(userID int64) (*Officer, error)
	GetAll() ([]*Officer, error)
	GetTerminated() ([]*Officer, error)
	Update(o *Officer) error
	AddDocument(doc *Document) error
}

// UserCreator is satisfied by the user service; creating an officer also
// creates the account it logs in with.
type UserCreator interface {
	Create(dto user.CreateUserDTO) (*user.User, error)
}

type Service struct {
	repo   Repository
	users  UserCreator
	logger *slog.Logger
}

func NewService(repo Repository, users UserCreator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		logger: logger,
	}
}

// CreateOfficer creates the login account and the contract record together.
func (s *Service) CreateOfficer(dto CreateOfficerDTO) (*Officer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	endDate, err := dto.EndDate()
	if err != nil {
		return nil, err
	}

	account, err := s.users.Create(user.CreateUserDTO{
		Username:  dto.Username,
		Password:  DefaultPassword,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Role:      auth.RoleOfficer,
		Phone:     dto.Phone,
	})
	if err != nil {
		s.logger.Error("failed to create officer account", "error", err, "username", dto.Username)
		return nil, err
	}

	now := time.Now()
	o := &Officer{
		UserID:          account.ID,
		FirstName:       dto.FirstName,
		LastName:        dto.LastName,
		Position:        dto.Position,
		Qualification:   dto.Qualification,
		ContractEndDate: endDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(o); err != nil {
		s.logger.Error("failed to create officer", "error", err, "user_id", account.ID)
		return nil, err
	}

	s.logger.Info("officer created", "officer_id", o.ID, "user_id", account.ID, "position", o.Position)
	return o, nil
}

func (s *Service) GetByID(id int64) (*Officer, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByUserID(userID int64) (*Officer, error) {
	return s.repo.GetByUserID(userID)
}

// GetAll returns active officers with the derived contract status attached.
func (s *Service) GetAll() ([]OfficerView, error) {
	officers, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list officers", "error", err)
		return nil, err
	}
	return NewViews(officers, time.Now()), nil
}

// RenewContract replaces the contract end date. Used both for a plain
// renewal and for recording an approved renewal decision.
func (s *Service) RenewContract(id int64, dto RenewContractDTO) (*Officer, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	endDate, err := dto.EndDate()
	if err != nil {
		return nil, err
	}

	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if o.IsTerminated() {
		return nil, ErrTerminated
	}

	o.ContractEndDate = endDate
	o.UpdatedAt = time.Now()
	if err := s.repo.Update(o); err != nil {
		s.logger.Error("failed to renew contract", "error", err, "officer_id", id)
		return nil, err
	}

	s.logger.Info("contract renewed", "officer_id", id, "end_date", dto.ContractEndDate)
	return o, nil
}

// ApproveRenewal records the renewal decision on the officer: new end date
// plus the renewal_approved flag.
func (s *Service) ApproveRenewal(id int64, dto RenewContractDTO) (*Officer, error) {
	o, err := s.RenewContract(id, dto)
	if err != nil {
		return nil, err
	}

	o.RenewalApproved = true
	o.UpdatedAt = time.Now()
	if err := s.repo.Update(o); err != nil {
		s.logger.Error("failed to flag renewal approved", "error", err, "officer_id", id)
		return nil, err
	}

	s.logger.Info("renewal approved", "officer_id", id)
	return o, nil
}

// ToggleCompliance flips the compliance flag.
func (s *Service) ToggleCompliance(id int64) (*Officer, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	o.ComplianceStatus = !o.ComplianceStatus
	o.UpdatedAt = time.Now()
	if err := s.repo.Update(o); err != nil {
		s.logger.Error("failed to toggle compliance", "error", err, "officer_id", id)
		return nil, err
	}

	s.logger.Info("compliance toggled", "officer_id", id, "compliance", o.ComplianceStatus)
	return o, nil
}

// Terminate moves the officer out of the active collection. The row stays
// for the terminated report; terminating twice is a conflict.
func (s *Service) Terminate(id int64) (*Officer, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if o.IsTerminated() {
		return nil, ErrTerminated
	}

	now := time.Now()
	o.TerminatedAt = &now
	o.UpdatedAt = now
	if err := s.repo.Update(o); err != nil {
		s.logger.Error("failed to terminate officer", "error", err, "officer_id", id)
		return nil, err
	}

	s.logger.Info("officer terminated", "officer_id", id)
	return o, nil
}

// AttachDocument records an uploaded file on the officer's document list.
func (s *Service) AttachDocument(officerID int64, fileName, storedName string) (*Document, error) {
	o, err := s.repo.GetByID(officerID)
	if err != nil {
		return nil, ErrNotFound
	}

	doc := &Document{
		OfficerID:  o.ID,
		FileName:   fileName,
		StoredName: storedName,
		UploadedAt: time.Now(),
	}
	if err := s.repo.AddDocument(doc); err != nil {
		s.logger.Error("failed to attach document", "error", err, "officer_id", officerID)
		return nil, err
	}

	s.logger.Info("document attached", "officer_id", officerID, "file_name", fileName)
	return doc, nil
}
