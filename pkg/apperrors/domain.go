package apperrors

import (
	"net/http"
)

/*
Predeclared domain errors of the clinical-trial interest portal.
*/

// ErrInvalidOperation is the factory for operations that cannot be
// performed in the current state (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Submissions ---

var ErrSubmissionNotFound = New(
	CodeNotFound,
	"submissions",
	"Submission not found",
	http.StatusNotFound,
)

// ErrNoRecipientsSelected - the admin attempted a bulk send with an empty
// selection.
var ErrNoRecipientsSelected = ErrInvalidOperation(
	"emails",
	"Select at least one submission to send emails",
)

// --- Admin authentication ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// --- Trials ---

var ErrTrialNotFound = New(
	CodeNotFound,
	"trials",
	"Trial not found",
	http.StatusNotFound,
)

// ErrRegistryUnavailable - the upstream trial registry could not be
// reached. Bulk fetches degrade to empty results instead; this surfaces
// only on single-trial lookups that miss the local cache.
var ErrRegistryUnavailable = New(
	CodeExternalServiceError,
	"registry",
	"Trial registry is temporarily unavailable",
	http.StatusBadGateway,
)
