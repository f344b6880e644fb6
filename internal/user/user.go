package user

import (
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
)

// User is a system account. Role decides which dashboard the account lands
// on and which operations it may call.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	FirstName    string    `json:"first_name" gorm:"column:first_name"`
	LastName     string    `json:"last_name" gorm:"column:last_name"`
	Email        string    `json:"email" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:OFFICER"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

var (
	ErrNotFound      = internal.NewNotFoundError("user not found", internal.ErrCodeUserNotFound)
	ErrUsernameTaken = internal.NewConflictError("username already taken", internal.ErrCodeUsernameTaken)
)
