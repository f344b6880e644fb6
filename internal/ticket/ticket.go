package ticket

import (
	"time"

	"github.com/Naxdouglas/contract-renewal-sys/internal"
)

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// Ticket is a support request raised by a user. Status only ever moves
// from Open to Closed.
type Ticket struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	UserID    int64      `json:"user_id" gorm:"column:user_id;not null"`
	Subject   string     `json:"subject" gorm:"not null"`
	Message   string     `json:"message"`
	Status    string     `json:"status" gorm:"default:'Open'"`
	ClosedAt  *time.Time `json:"closed_at,omitempty" gorm:"column:closed_at"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) IsClosed() bool {
	return t.Status == StatusClosed
}

func (t *Ticket) Close() {
	now := time.Now()
	t.Status = StatusClosed
	t.ClosedAt = &now
	t.UpdatedAt = now
}

var (
	ErrNotFound      = internal.NewNotFoundError("ticket not found", internal.ErrCodeTicketNotFound)
	ErrAlreadyClosed = internal.NewConflictError("ticket is already closed", internal.ErrCodeTicketClosed)
)
