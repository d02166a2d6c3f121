package repositories

import (
	"errors"

	"github.com/SujayAnishetti/ClinicalTrials/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTrialNotFound = errors.New("trial not found")

type TrialRepository interface {
	UpsertBatch(trials []models.Trial) error
	FindWithFilter(criteria TrialFilter) ([]models.Trial, int64, error)
	FindByNCTID(nctID string) (*models.Trial, error)
	Count() (int64, error)
}

type TrialRepositoryImpl struct {
	db *gorm.DB
}

type TrialFilter struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

func NewTrialRepository(db *gorm.DB) TrialRepository {
	return &TrialRepositoryImpl{db: db}
}

// UpsertBatch inserts or updates trials keyed by NCT id, so registry
// refreshes are idempotent.
func (r *TrialRepositoryImpl) UpsertBatch(trials []models.Trial) error {
	if len(trials) == 0 {
		return nil
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "nct_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"brief_title", "official_title", "overall_status", "start_date",
			"study_type", "phases", "enrollment", "lead_sponsor", "collaborators",
			"conditions", "interventions", "eligibility_criteria",
			"minimum_age", "maximum_age", "sex", "brief_summary",
			"last_fetched_at", "updated_at",
		}),
	}).CreateInBatches(trials, 100).Error
}

func (r *TrialRepositoryImpl) FindWithFilter(criteria TrialFilter) ([]models.Trial, int64, error) {
	var trials []models.Trial
	query := r.db.Model(&models.Trial{})

	if criteria.Status != "" {
		query = query.Where("overall_status = ?", criteria.Status)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("brief_title ILIKE ? OR conditions ILIKE ?", search, search)
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

	err := query.Order("last_fetched_at DESC, nct_id").Find(&trials).Error
	return trials, total, err
}

func (r *TrialRepositoryImpl) FindByNCTID(nctID string) (*models.Trial, error) {
	var trial models.Trial
	err := r.db.First(&trial, "nct_id = ?", nctID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrialNotFound
		}
		return nil, err
	}
	return &trial, nil
}

func (r *TrialRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Trial{}).Count(&count).Error
	return count, err
}
