package user

import (
	"log/slog"
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	GetByUsername(username string) (*User, error)
	GetAll() ([]*User, error)
	GetByRole(role string) ([]*User, error)
	Create(u *User) error
	Update(u *User) error
	Delete(userID int64) error
}

// PasswordHasher is satisfied by the auth service.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", userID)
		return nil, ErrNotFound
	}
	return u, nil
}

// GetAll returns the full account collection; the admin view re-fetches it
// after every mutation rather than patching rows locally.
func (s *Service) GetAll() ([]*User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *Service) GetByRole(role string) ([]*User, error) {
	users, err := s.repo.GetByRole(role)
	if err != nil {
		s.logger.Error("failed to list users by role", "error", err, "role", role)
		return nil, err
	}
	return users, nil
}

func (s *Service) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByUsername(dto.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	role := dto.Role
	if role == "" {
		role = auth.RoleOfficer
	}

	now := time.Now()
	u := &User{
		Username:     dto.Username,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		Role:         role,
		Phone:        dto.Phone,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "username", dto.Username)
		return nil, err
	}

	s.logger.Info("user created", "user_id", u.ID, "username", u.Username, "role", u.Role)
	return u, nil
}

func (s *Service) Update(userID int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	u.Username = dto.Username
	u.FirstName = dto.FirstName
	u.LastName = dto.LastName
	u.Email = dto.Email
	if dto.Role != "" {
		u.Role = dto.Role
	}
	u.Phone = dto.Phone
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("user updated", "user_id", u.ID, "username", u.Username)
	return u, nil
}

func (s *Service) Delete(userID int64) error {
	if _, err := s.repo.GetByID(userID); err != nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(userID); err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
