package registry

import "time"

// TrialRecord is the projection of one ClinicalTrials.gov study that the
// portal consumes. Fields map 1:1 onto API v2 protocol-section modules.
type TrialRecord struct {
	// Core identifiers
	NCTID         string `json:"nct_id"`
	BriefTitle    string `json:"brief_title"`
	OfficialTitle string `json:"official_title"`
	Acronym       string `json:"acronym,omitempty"`

	// Status
	OverallStatus         string `json:"overall_status"`
	StudyFirstSubmitted   string `json:"study_first_submitted_date,omitempty"`
	LastUpdateSubmitted   string `json:"last_update_submitted_date,omitempty"`
	StartDate             string `json:"start_date,omitempty"`
	PrimaryCompletionDate string `json:"primary_completion_date,omitempty"`
	CompletionDate        string `json:"completion_date,omitempty"`

	// Design
	StudyType         string   `json:"study_type,omitempty"`
	Phases            []string `json:"phases,omitempty"`
	Allocation        string   `json:"allocation,omitempty"`
	InterventionModel string   `json:"intervention_model,omitempty"`
	PrimaryPurpose    string   `json:"primary_purpose,omitempty"`
	Masking           string   `json:"masking,omitempty"`
	Enrollment        int      `json:"enrollment,omitempty"`

	// Sponsors
	LeadSponsor      string   `json:"lead_sponsor"`
	LeadSponsorClass string   `json:"lead_sponsor_class,omitempty"`
	Collaborators    []string `json:"collaborators,omitempty"`

	// Conditions and interventions
	Conditions    []string       `json:"conditions,omitempty"`
	Interventions []Intervention `json:"interventions,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`

	// Eligibility
	EligibilityCriteria string `json:"eligibility_criteria,omitempty"`
	HealthyVolunteers   bool   `json:"healthy_volunteers"`
	Sex                 string `json:"sex,omitempty"`
	MinimumAge          string `json:"minimum_age,omitempty"`
	MaximumAge          string `json:"maximum_age,omitempty"`

	// Contacts
	Locations       []Location `json:"locations,omitempty"`
	CentralContacts []Contact  `json:"central_contacts,omitempty"`

	// Descriptions
	BriefSummary        string `json:"brief_summary,omitempty"`
	DetailedDescription string `json:"detailed_description,omitempty"`

	// Client metadata
	LastFetched time.Time `json:"last_fetched"`
}

// Intervention is one study intervention.
type Intervention struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Location is one study site.
type Location struct {
	FacilityName string    `json:"facility_name,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	ZipCode      string    `json:"zip_code,omitempty"`
	Country      string    `json:"country,omitempty"`
	Status       string    `json:"status,omitempty"`
	Contacts     []Contact `json:"contacts,omitempty"`
}

// Contact is a study contact person.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// --- Raw API v2 response shapes ---

type studiesResponse struct {
	Studies       []study `json:"studies"`
	NextPageToken string  `json:"nextPageToken"`
	TotalCount    int     `json:"totalCount"`
}

type study struct {
	ProtocolSection protocolSection `json:"protocolSection"`
}

type protocolSection struct {
	Identification       identificationModule `json:"identificationModule"`
	Status               statusModule         `json:"statusModule"`
	Design               designModule         `json:"designModule"`
	SponsorCollaborators sponsorModule        `json:"sponsorCollaboratorsModule"`
	Conditions           conditionsModule     `json:"conditionsModule"`
	Interventions        interventionsModule  `json:"interventionsModule"`
	Eligibility          eligibilityModule    `json:"eligibilityModule"`
	Contacts             contactsModule       `json:"contactsModule"`
	Description          descriptionModule    `json:"descriptionModule"`
}

type identificationModule struct {
	NCTID         string `json:"nctId"`
	BriefTitle    string `json:"briefTitle"`
	OfficialTitle string `json:"officialTitle"`
	Acronym       string `json:"acronym"`
}

type dateStruct struct {
	Date string `json:"date"`
}

type statusModule struct {
	OverallStatus             string     `json:"overallStatus"`
	StudyFirstSubmitDate      string     `json:"studyFirstSubmitDate"`
	LastUpdateSubmitDate      string     `json:"lastUpdateSubmitDate"`
	StartDateStruct           dateStruct `json:"startDateStruct"`
	PrimaryCompletionDateInfo dateStruct `json:"primaryCompletionDateStruct"`
	CompletionDateStruct      dateStruct `json:"completionDateStruct"`
}

type designModule struct {
	StudyType      string         `json:"studyType"`
	Phases         []string       `json:"phases"`
	DesignInfo     designInfo     `json:"designInfo"`
	EnrollmentInfo enrollmentInfo `json:"enrollmentInfo"`
}

type designInfo struct {
	Allocation        string      `json:"allocation"`
	InterventionModel string      `json:"interventionModel"`
	PrimaryPurpose    string      `json:"primaryPurpose"`
	MaskingInfo       maskingInfo `json:"maskingInfo"`
}

type maskingInfo struct {
	Masking string `json:"masking"`
}

type enrollmentInfo struct {
	Count int `json:"count"`
}

type sponsorModule struct {
	LeadSponsor   namedParty   `json:"leadSponsor"`
	Collaborators []namedParty `json:"collaborators"`
}

type namedParty struct {
	Name  string `json:"name"`
	Class string `json:"class"`
}

type conditionsModule struct {
	Conditions []string `json:"conditions"`
	Keywords   []string `json:"keywords"`
}

type interventionsModule struct {
	Interventions []apiIntervention `json:"interventions"`
}

type apiIntervention struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type eligibilityModule struct {
	EligibilityCriteria string `json:"eligibilityCriteria"`
	HealthyVolunteers   bool   `json:"healthyVolunteers"`
	Sex                 string `json:"sex"`
	MinimumAge          string `json:"minimumAge"`
	MaximumAge          string `json:"maximumAge"`
}

type contactsModule struct {
	CentralContacts []apiContact  `json:"centralContacts"`
	Locations       []apiLocation `json:"locations"`
}

type apiContact struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type apiLocation struct {
	Facility apiFacility  `json:"facility"`
	Status   string       `json:"status"`
	Contacts []apiContact `json:"contacts"`
}

type apiFacility struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type descriptionModule struct {
	BriefSummary        string `json:"briefSummary"`
	DetailedDescription string `json:"detailedDescription"`
}
