package dto

// TrialCriteria are optional per-trial requirements layered on top of
// the baseline eligibility rules.
type TrialCriteria struct {
	MinAge              *int     `json:"min_age,omitempty" validate:"omitempty,gte=0,lte=120"`
	MaxAge              *int     `json:"max_age,omitempty" validate:"omitempty,gte=0,lte=120"`
	RequiredConditions  []string `json:"required_conditions,omitempty"`
	ExcludedMedications []string `json:"excluded_medications,omitempty"`
}

// EligibilityCheckRequest is a dry-run eligibility evaluation. Nothing
// is persisted.
type EligibilityCheckRequest struct {
	Age        int            `json:"age" validate:"required,gte=1,lte=120"`
	Pincode    string         `json:"pincode" validate:"required,pincode"`
	HealthInfo string         `json:"health_info" validate:"required"`
	Mobile     string         `json:"mobile,omitempty" validate:"omitempty,mobile"`
	Criteria   *TrialCriteria `json:"criteria,omitempty"`
}

// EligibilityCheckResponse is the evaluation outcome.
type EligibilityCheckResponse struct {
	Eligible bool     `json:"eligible"`
	Tier     string   `json:"tier"`
	Message  string   `json:"message"`
	Reasons  []string `json:"reasons,omitempty"`
}

// RegionQuery selects a single postal code to resolve. Both fields are
// optional; without either the full serviced-area list is returned.
type RegionQuery struct {
	Pincode string `form:"pincode" json:"pincode" validate:"omitempty,pincode"`
	Zipcode string `form:"zipcode" json:"zipcode" validate:"omitempty,zipcode"`
}

// RegionResponse resolves a pincode to its serviced locality.
type RegionResponse struct {
	Pincode  string `json:"pincode"`
	Served   bool   `json:"served"`
	Locality string `json:"locality"`
}

// ZipRegionResponse resolves a US ZIP code to the nearest research
// facility, for the cell-therapy intake flow.
type ZipRegionResponse struct {
	Zipcode  string `json:"zipcode"`
	Region   string `json:"region"`
	Facility string `json:"facility"`
}
