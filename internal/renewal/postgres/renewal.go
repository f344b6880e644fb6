package postgres

import (
	"github.com/Naxdouglas/contract-renewal-sys/internal/renewal"
	"gorm.io/gorm"
)

// RenewalRepository implements renewal.Repository using GORM
type RenewalRepository struct {
	db *gorm.DB
}

func NewRenewalRepository(db *gorm.DB) renewal.Repository {
	return &RenewalRepository{db: db}
}

func (r *RenewalRepository) Create(req *renewal.Request) error {
	return r.db.Create(req).Error
}

func (r *RenewalRepository) GetByID(id int64) (*renewal.Request, error) {
	var req renewal.Request
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, renewal.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RenewalRepository) GetAll() ([]*renewal.Request, error) {
	var requests []*renewal.Request
	err := r.db.Order("submitted_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// GetOpenByOfficerID returns the officer's request that has not yet been
// returned to HR, or renewal.ErrNotFound when none is open.
func (r *RenewalRepository) GetOpenByOfficerID(officerID int64) (*renewal.Request, error) {
	var req renewal.Request
	err := r.db.Where("officer_id = ? AND returned_to_hr = ?", officerID, false).
		Order("submitted_at DESC").First(&req).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, renewal.ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RenewalRepository) Update(req *renewal.Request) error {
	return r.db.Save(req).Error
}
