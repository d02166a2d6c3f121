package repositories

import (
	"errors"

	"github.com/SujayAnishetti/ClinicalTrials/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAdminUserNotFound      = errors.New("admin user not found")
	ErrAdminUserAlreadyExists = errors.New("admin user already exists")
)

type AdminUserRepository interface {
	FindByEmail(email string) (*models.AdminUser, error)
	Create(user *models.AdminUser) error
	CountAll() (int64, error)
}

type AdminUserRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &AdminUserRepositoryImpl{db: db}
}

func (r *AdminUserRepositoryImpl) FindByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepositoryImpl) Create(user *models.AdminUser) error {
	var existing models.AdminUser
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrAdminUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *AdminUserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.AdminUser{}).Count(&count).Error
	return count, err
}
