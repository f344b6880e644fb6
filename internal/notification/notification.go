package notification

import (
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
)

const (
	TypeRenewalSubmitted   = "renewal_submitted"
	TypeRenewalRecommended = "renewal_recommended"
	TypeRenewalDecided     = "renewal_decided"
)

// Notification is an in-app message for a user. The only mutation allowed
// after creation is marking it read.
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;not null"`
	Type      string    `json:"type"`
	Message   string    `json:"message" gorm:"not null"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

var ErrNotFound = internal.NewNotFoundError("notification not found", internal.ErrCodeNotificationNotFound)
