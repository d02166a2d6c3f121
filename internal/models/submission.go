package models

// Submission is one interest-form entry from a prospective trial
// participant. Every submission is stored regardless of the
// eligibility outcome.
type Submission struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Email      string `gorm:"type:varchar(120);not null;index" json:"email"`
	Mobile     string `gorm:"type:varchar(15);not null" json:"mobile"`
	Pincode    string `gorm:"type:varchar(6);not null;index" json:"pincode"`
	Age        int    `gorm:"not null" json:"age"`
	HealthInfo string `gorm:"type:text;not null" json:"health_info"`
	IsEligible bool   `gorm:"not null;default:false;index" json:"is_eligible"`
	EmailSent  bool   `gorm:"not null;default:false" json:"email_sent"`
}
