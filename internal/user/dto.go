package user

import (
	"github.com/Naxdouglas/contract-renewal-sys/internal"
	"github.com/Naxdouglas/contract-renewal-sys/internal/auth"
)

// CreateUserDTO is the admin-facing payload for creating an account.
type CreateUserDTO struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

func (dto CreateUserDTO) Validate() error {
	if dto.Username == "" {
		return internal.NewValidationFieldError("username", "username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationFieldError("password", "password is required", internal.ErrCodeValidationFailed)
	}
	if dto.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	if dto.Role != "" && !auth.ValidRole(dto.Role) {
		return internal.NewValidationError("unknown role", internal.ErrCodeInvalidRole)
	}
	return nil
}

// UpdateUserDTO carries a full replacement of the editable profile fields,
// matching the inline row edit of the admin view.
type UpdateUserDTO struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

func (dto UpdateUserDTO) Validate() error {
	if dto.Username == "" {
		return internal.NewValidationFieldError("username", "username is required", internal.ErrCodeValidationFailed)
	}
	if dto.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	if dto.Role != "" && !auth.ValidRole(dto.Role) {
		return internal.NewValidationError("unknown role", internal.ErrCodeInvalidRole)
	}
	return nil
}
