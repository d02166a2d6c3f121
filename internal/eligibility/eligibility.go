// Package eligibility implements the clinical-trial screening rules: a
// pure evaluator producing an ordered reason list, the region lookup
// tables, and the user-facing message composer. The package performs no
// I/O and holds no mutable state.
package eligibility

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// Baseline age window for all trials.
	MinAge = 18
	MaxAge = 85

	// Minimum length of the health description after trimming.
	MinHealthInfoLen = 10
)

var (
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	mobileRegex  = regexp.MustCompile(`^\d{10}$`)
)

// exclusionaryKeywords are health conditions that require specialized
// medical review before participation. The scan stops at the first match:
// one generic review reason is appended no matter how many terms occur.
var exclusionaryKeywords = []string{
	"pregnant", "pregnancy", "breastfeeding", "nursing",
	"severe mental illness", "psychosis", "schizophrenia",
	"active cancer", "chemotherapy", "radiation therapy",
	"organ transplant", "immunocompromised", "hiv positive",
	"severe liver disease", "kidney failure", "dialysis",
	"recent surgery", "hospitalized currently",
}

// ReasonKind classifies an ineligibility reason. The message composer
// keys on kinds instead of sniffing reason text.
type ReasonKind string

const (
	KindTooYoung           ReasonKind = "too_young"
	KindTooOld             ReasonKind = "too_old"
	KindInvalidPincode     ReasonKind = "invalid_pincode"
	KindAreaNotServed      ReasonKind = "area_not_served"
	KindHealthInfoTooShort ReasonKind = "health_info_too_short"
	KindHealthReview       ReasonKind = "health_review"
	KindInvalidMobile      ReasonKind = "invalid_mobile"
	KindTrialMinAge        ReasonKind = "trial_min_age"
	KindTrialMaxAge        ReasonKind = "trial_max_age"
	KindMissingCondition   ReasonKind = "missing_condition"
	KindExcludedMedication ReasonKind = "excluded_medication"
)

// Reason is one human-readable ineligibility finding.
type Reason struct {
	Kind ReasonKind `json:"kind"`
	Text string     `json:"text"`
}

// Criteria are optional per-trial overrides checked on top of the
// baseline rules.
type Criteria struct {
	MinAge              *int     `json:"min_age,omitempty"`
	MaxAge              *int     `json:"max_age,omitempty"`
	RequiredConditions  []string `json:"required_conditions,omitempty"`
	ExcludedMedications []string `json:"excluded_medications,omitempty"`
}

// Input carries the raw submission fields the evaluator inspects.
type Input struct {
	Age        int
	Pincode    string
	HealthInfo string
	Mobile     string // optional; validated only when present
	Extra      *Criteria
}

// Result is the evaluator output. Eligible is true exactly when Reasons
// is empty; the caller decides what (if anything) to persist.
type Result struct {
	Eligible bool     `json:"eligible"`
	Reasons  []Reason `json:"reasons"`
}

// ReasonTexts returns the reason strings in evaluation order.
func (r Result) ReasonTexts() []string {
	texts := make([]string, 0, len(r.Reasons))
	for _, reason := range r.Reasons {
		texts = append(texts, reason.Text)
	}
	return texts
}

// Check evaluates all screening rules in a fixed order and reports every
// reason that fires. Rules are independent: evaluation never stops at the
// first failure, so multiple reasons can co-occur.
func Check(in Input) Result {
	var reasons []Reason

	appendReason := func(kind ReasonKind, text string) {
		reasons = append(reasons, Reason{Kind: kind, Text: text})
	}

	// Baseline age window. The two bounds are mutually exclusive.
	if in.Age < MinAge {
		appendReason(KindTooYoung, "Participants must be at least 18 years old")
	} else if in.Age > MaxAge {
		appendReason(KindTooOld, "Participants must be 85 years old or younger for safety considerations")
	}

	// Pincode: the prefix allow-list is only consulted when the format is
	// valid, so the two reasons never co-fire for one input.
	if !pincodeRegex.MatchString(in.Pincode) {
		appendReason(KindInvalidPincode, "Pincode must be a valid 6-digit number")
	} else if !PincodeServed(in.Pincode) {
		appendReason(KindAreaNotServed,
			fmt.Sprintf("Clinical trials are not currently available in your area (pincode: %s)", in.Pincode))
	}

	if len(strings.TrimSpace(in.HealthInfo)) < MinHealthInfoLen {
		appendReason(KindHealthInfoTooShort, "Please provide detailed health information (minimum 10 characters)")
	}

	healthLower := strings.ToLower(in.HealthInfo)
	for _, keyword := range exclusionaryKeywords {
		if strings.Contains(healthLower, keyword) {
			appendReason(KindHealthReview,
				"Current health status may require specialized medical evaluation before trial participation")
			break
		}
	}

	if in.Mobile != "" && !mobileRegex.MatchString(in.Mobile) {
		appendReason(KindInvalidMobile, "Please provide a valid 10-digit mobile number")
	}

	// Per-trial overrides are independent of the baseline age rules and
	// may fire alongside them.
	if in.Extra != nil {
		if in.Extra.MinAge != nil && in.Age < *in.Extra.MinAge {
			appendReason(KindTrialMinAge,
				fmt.Sprintf("This specific trial requires participants to be at least %d years old", *in.Extra.MinAge))
		}

		if in.Extra.MaxAge != nil && in.Age > *in.Extra.MaxAge {
			appendReason(KindTrialMaxAge,
				fmt.Sprintf("This specific trial requires participants to be %d years old or younger", *in.Extra.MaxAge))
		}

		if len(in.Extra.RequiredConditions) > 0 {
			found := false
			for _, condition := range in.Extra.RequiredConditions {
				if strings.Contains(healthLower, strings.ToLower(condition)) {
					found = true
					break
				}
			}
			if !found {
				appendReason(KindMissingCondition,
					"This trial requires participants with specific conditions: "+strings.Join(in.Extra.RequiredConditions, ", "))
			}
		}

		for _, med := range in.Extra.ExcludedMedications {
			if strings.Contains(healthLower, strings.ToLower(med)) {
				appendReason(KindExcludedMedication,
					fmt.Sprintf("Current medication (%s) may interfere with trial participation", med))
			}
		}
	}

	return Result{
		Eligible: len(reasons) == 0,
		Reasons:  reasons,
	}
}
