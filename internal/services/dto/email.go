package dto

// SendEmailsRequest selects submissions for a bulk outreach send.
type SendEmailsRequest struct {
	SubmissionIDs []string `json:"submission_ids" validate:"required,min=1,dive,uuid4"`
}

// SendEmailsResponse reports per-recipient outcomes of a bulk send.
type SendEmailsResponse struct {
	Requested int `json:"requested"`
	Sent      int `json:"success_count"`
	Failed    int `json:"error_count"`
}

// StatsResponse is the admin dashboard summary.
type StatsResponse struct {
	Submissions SubmissionStats `json:"submissions"`
	TrialCount  int64           `json:"trial_count"`
}

// SubmissionStats aggregates submission counters for the dashboard.
type SubmissionStats struct {
	Total      int64 `json:"total"`
	Eligible   int64 `json:"eligible"`
	Ineligible int64 `json:"not_eligible"`
	EmailsSent int64 `json:"emails_sent"`
	Today      int64 `json:"today"`
}
