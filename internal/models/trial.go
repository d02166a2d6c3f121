package models

import (
	"time"
)

// Trial is a cached ClinicalTrials.gov study record. Rows are upserted
// by NCT id on every registry refresh.
type Trial struct {
	BaseModel
	NCTID         string `gorm:"column:nct_id;type:varchar(20);uniqueIndex;not null" json:"nct_id"`
	BriefTitle    string `gorm:"type:text" json:"brief_title"`
	OfficialTitle string `gorm:"type:text" json:"official_title"`

	OverallStatus string `gorm:"type:varchar(50);index" json:"overall_status"`
	StartDate     string `gorm:"type:varchar(20)" json:"start_date"`
	StudyType     string `gorm:"type:varchar(50)" json:"study_type"`
	Phases        string `gorm:"type:varchar(100)" json:"phases"`
	Enrollment    int    `json:"enrollment"`

	LeadSponsor   string `gorm:"type:varchar(200);index" json:"lead_sponsor"`
	Collaborators string `gorm:"type:text" json:"collaborators"`

	Conditions    string `gorm:"type:text" json:"conditions"`
	Interventions string `gorm:"type:text" json:"interventions"`

	EligibilityCriteria string `gorm:"type:text" json:"eligibility_criteria"`
	MinimumAge          string `gorm:"type:varchar(20)" json:"minimum_age"`
	MaximumAge          string `gorm:"type:varchar(20)" json:"maximum_age"`
	Sex                 string `gorm:"type:varchar(10)" json:"sex"`

	BriefSummary string `gorm:"type:text" json:"brief_summary"`

	LastFetchedAt time.Time `gorm:"not null" json:"last_fetched_at"`
}
