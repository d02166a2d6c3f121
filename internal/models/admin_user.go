package models

type AdminRole string

const (
	AdminRoleAdmin AdminRole = "admin"
)

// AdminUser is a staff account for the admin panel.
type AdminUser struct {
	BaseModel
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         AdminRole `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
}
