package repositories

import (
	"errors"
	"time"

	"github.com/SujayAnishetti/ClinicalTrials/internal/models"

	"gorm.io/gorm"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type SubmissionRepository interface {
	Create(submission *models.Submission) error
	FindByID(id string) (*models.Submission, error)
	FindByIDs(ids []string) ([]models.Submission, error)
	FindWithFilter(criteria SubmissionFilter) ([]models.Submission, int64, error)
	MarkEmailSent(ids []string) error
	GetStats() (*SubmissionStats, error)
}

type SubmissionRepositoryImpl struct {
	db *gorm.DB
}

// SubmissionFilter holds the admin panel filters. Nil pointer fields
// mean "no filter".
type SubmissionFilter struct {
	Pincode   string
	Eligible  *bool
	EmailSent *bool
	Search    string
	Page      int
	PageSize  int
}

type SubmissionStats struct {
	Total      int64 `json:"total"`
	Eligible   int64 `json:"eligible"`
	Ineligible int64 `json:"not_eligible"`
	EmailsSent int64 `json:"emails_sent"`
	Today      int64 `json:"today"`
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &SubmissionRepositoryImpl{db: db}
}

func (r *SubmissionRepositoryImpl) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *SubmissionRepositoryImpl) FindByID(id string) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepositoryImpl) FindByIDs(ids []string) ([]models.Submission, error) {
	var submissions []models.Submission
	if len(ids) == 0 {
		return submissions, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepositoryImpl) FindWithFilter(criteria SubmissionFilter) ([]models.Submission, int64, error) {
	var submissions []models.Submission
	query := r.db.Model(&models.Submission{})

	if criteria.Pincode != "" {
		query = query.Where("pincode LIKE ?", "%"+criteria.Pincode+"%")
	}
	if criteria.Eligible != nil {
		query = query.Where("is_eligible = ?", *criteria.Eligible)
	}
	if criteria.EmailSent != nil {
		query = query.Where("email_sent = ?", *criteria.EmailSent)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.PageSize > 0 {
		page := criteria.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	err := query.Order("created_at DESC").Find(&submissions).Error
	return submissions, total, err
}

func (r *SubmissionRepositoryImpl) MarkEmailSent(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&models.Submission{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"email_sent": true,
			"updated_at": time.Now(),
		}).Error
}

func (r *SubmissionRepositoryImpl) GetStats() (*SubmissionStats, error) {
	stats := &SubmissionStats{}

	if err := r.db.Model(&models.Submission{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Submission{}).Where("is_eligible = ?", true).Count(&stats.Eligible).Error; err != nil {
		return nil, err
	}
	stats.Ineligible = stats.Total - stats.Eligible

	if err := r.db.Model(&models.Submission{}).Where("email_sent = ?", true).Count(&stats.EmailsSent).Error; err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	if err := r.db.Model(&models.Submission{}).Where("created_at >= ?", today).Count(&stats.Today).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
