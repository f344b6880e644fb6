package postgres

import (
	"github.com/Naxdouglas/contract-renewal-sys/internal/officer"
	"gorm.io/gorm"
)

// OfficerRepository implements officer.Repository using GORM
type OfficerRepository struct {
	db *gorm.DB
}

func NewOfficerRepository(db *gorm.DB) officer.Repository {
	return &OfficerRepository{db: db}
}

func (r *OfficerRepository) Create(o *officer.Officer) error {
	return r.db.Create(o).Error
}

func (r *OfficerRepository) GetByID(id int64) (*officer.Officer, error) {
	var o officer.Officer
	err := r.db.Preload("Documents", func(db *gorm.DB) *gorm.DB {
		return db.Order("uploaded_at ASC")
	}).Where("id = ?", id).First(&o).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, officer.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OfficerRepository) GetByUserID(userID int64) (*officer.Officer, error) {
	var o officer.Officer
	err := r.db.Preload("Documents", func(db *gorm.DB) *gorm.DB {
		return db.Order("uploaded_at ASC")
	}).Where("user_id = ?", userID).First(&o).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, officer.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OfficerRepository) GetAll() ([]*officer.Officer, error) {
	var officers []*officer.Officer
	err := r.db.Where("terminated_at IS NULL").
		Order("created_at ASC").
		Find(&officers).Error
	return officers, err
}

func (r *OfficerRepository) GetTerminated() ([]*officer.Officer, error) {
	var officers []*officer.Officer
	err := r.db.Where("terminated_at IS NOT NULL").
		Order("terminated_at DESC").
		Find(&officers).Error
	return officers, err
}

func (r *OfficerRepository) Update(o *officer.Officer) error {
	// Documents are appended through AddDocument, never written back here.
	return r.db.Omit("Documents").Save(o).Error
}

func (r *OfficerRepository) AddDocument(doc *officer.Document) error {
	return r.db.Create(doc).Error
}
