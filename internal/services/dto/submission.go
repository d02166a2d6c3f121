package dto

import (
	"time"

	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
)

// InterestRequest is the public interest-form payload.
type InterestRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Mobile     string `json:"mobile" validate:"required,mobile"`
	Pincode    string `json:"pincode" validate:"required,pincode"`
	Age        int    `json:"age" validate:"required,gte=16,lte=120"`
	HealthInfo string `json:"health_info" validate:"required,min=10,max=500"`
}

// InterestResponse reports the stored submission and its eligibility
// outcome.
type InterestResponse struct {
	SubmissionID string   `json:"submission_id"`
	Eligible     bool     `json:"eligible"`
	Tier         string   `json:"tier"`
	Message      string   `json:"message"`
	Reasons      []string `json:"reasons,omitempty"`
	Region       string   `json:"region"`
}

// SubmissionResponse is the admin view of one submission.
type SubmissionResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	Pincode    string    `json:"pincode"`
	Region     string    `json:"region"`
	Age        int       `json:"age"`
	HealthInfo string    `json:"health_info"`
	IsEligible bool      `json:"is_eligible"`
	EmailSent  bool      `json:"email_sent"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubmissionListResponse is a paginated submission listing.
type SubmissionListResponse struct {
	Submissions []SubmissionResponse `json:"submissions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// SubmissionListFilter carries the admin listing query parameters.
type SubmissionListFilter struct {
	Pincode   string `form:"pincode"`
	Eligible  *bool  `form:"eligible"`
	EmailSent *bool  `form:"email_sent"`
	Search    string `form:"search"`
}

// NewSubmissionResponse maps a model row to its admin view, resolving
// the pincode to a locality label.
func NewSubmissionResponse(s *models.Submission, region string) SubmissionResponse {
	return SubmissionResponse{
		ID:         s.ID,
		Name:       s.Name,
		Email:      s.Email,
		Mobile:     s.Mobile,
		Pincode:    s.Pincode,
		Region:     region,
		Age:        s.Age,
		HealthInfo: s.HealthInfo,
		IsEligible: s.IsEligible,
		EmailSent:  s.EmailSent,
		CreatedAt:  s.CreatedAt,
	}
}
