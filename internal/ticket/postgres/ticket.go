package postgres

import (
	"github.com/Naxdouglas/contract-renewal-sys/internal/ticket"
	"gorm.io/gorm"
)

// TicketRepository implements ticket.Repository using GORM
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *TicketRepository) GetByID(id int64) (*ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ticket.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) GetAll() ([]*ticket.Ticket, error) {
	var tickets []*ticket.Ticket
	err := r.db.Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) GetByUserID(userID int64) ([]*ticket.Ticket, error) {
	var tickets []*ticket.Ticket
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) Update(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}
