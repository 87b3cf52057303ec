package repositories

import (
	"nisapoti-admin/internal/models"

	"gorm.io/gorm"
)

type AdminUserRepository interface {
	GetActiveByEmail(email string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
}

type adminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// GetActiveByEmail returns the active admin account for an email, or
// gorm.ErrRecordNotFound. Deactivated accounts cannot log in.
func (r *adminUserRepository) GetActiveByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Where("email = ? AND is_active = 1", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminUserRepository) Create(user *models.AdminUser) error {
	if err := r.db.Create(user).Error; err != nil {
		return queryErr("create admin user", err)
	}
	return nil
}
