package dto

import "github.com/SujayAnishetti/ClinicalTrials/internal/models"

// TrialListResponse is a paginated trial listing.
type TrialListResponse struct {
	Trials   []models.Trial `json:"trials"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// TrialListFilter carries the trial listing query parameters.
type TrialListFilter struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// RefreshResponse reports a registry refresh run.
type RefreshResponse struct {
	Fetched int `json:"fetched"`
	Stored  int `json:"stored"`
}
