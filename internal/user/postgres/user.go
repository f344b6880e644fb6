package postgres

import (
	"github.com/Naxdouglas/contract-renewal-sys/internal/user"
	"gorm.io/gorm"
)

// UserRepository implements user.Repository using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*user.User, error) {
	var u user.User
	err := r.db.Where("id = ? AND is_active = true", userID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ? AND is_active = true", username).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	var users []*user.User
	err := r.db.Where("is_active = true").
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) GetByRole(role string) ([]*user.User, error) {
	var users []*user.User
	err := r.db.Where("role = ? AND is_active = true", role).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Update(u *user.User) error {
	return r.db.Save(u).Error
}

// Delete deactivates rather than removes: renewal requests and tickets keep
// their user references.
func (r *UserRepository) Delete(userID int64) error {
	return r.db.Model(&user.User{}).
		Where("id = ?", userID).
		Update("is_active", false).Error
}
