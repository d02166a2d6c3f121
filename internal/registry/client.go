// Package registry is a client for the ClinicalTrials.gov API v2. It
// fetches sponsor-related cell-therapy studies page by page, projects
// them into TrialRecord values and de-duplicates merged result sets by
// NCT identifier.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"

	"github.com/hashicorp/go-retryablehttp"
)

const userAgent = "AstraZeneca-ClinicalTrials-Portal/1.0"

// Config holds the client settings. RetryMax is 0 by default: a failed
// fetch degrades to an empty result rather than being retried.
type Config struct {
	BaseURL           string
	PageSize          int
	Sponsor           string
	InterventionQuery string
	RetryMax          int
	Timeout           time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{
		Timeout: cfg.Timeout,
	}

	return &Client{
		cfg:        cfg,
		httpClient: retryClient.StandardClient(),
	}
}

// FetchAll merges both query strategies and de-duplicates by NCT id,
// keeping the first occurrence (sponsor-strategy records win).
func (c *Client) FetchAll(ctx context.Context) []TrialRecord {
	trials := c.FetchSponsorTrials(ctx)
	trials = append(trials, c.FetchCollaboratorTrials(ctx)...)

	unique := dedupeByNCTID(trials)

	logger.CtxInfo(ctx, "registry merge complete",
		"fetched", len(trials),
		"unique", len(unique),
	)
	return unique
}

// FetchSponsorTrials fetches studies where the configured sponsor is the
// lead sponsor. Any HTTP or decoding failure aborts the fetch and yields
// an empty result; the error is logged, not returned.
func (c *Client) FetchSponsorTrials(ctx context.Context) []TrialRecord {
	params := url.Values{}
	params.Set("query.intr", c.cfg.InterventionQuery)
	params.Set("query.spons", c.cfg.Sponsor)
	params.Set("countTotal", "true")

	records, pages, err := c.fetchPaged(ctx, params, nil)
	logger.RegistryLog("sponsor", pages, len(records), err)
	if err != nil {
		return []TrialRecord{}
	}
	return records
}

// FetchCollaboratorTrials fetches studies that merely mention the
// sponsor, then keeps only those where it actually appears as lead
// sponsor or collaborator.
func (c *Client) FetchCollaboratorTrials(ctx context.Context) []TrialRecord {
	params := url.Values{}
	params.Set("query.intr", c.cfg.InterventionQuery)
	params.Set("query.term", c.cfg.Sponsor)

	records, pages, err := c.fetchPaged(ctx, params, c.isSponsorInvolved)
	logger.RegistryLog("collaborator", pages, len(records), err)
	if err != nil {
		return []TrialRecord{}
	}
	return records
}

// FetchTrialDetails fetches a single study by NCT id. An unknown study
// returns (nil, nil); a transport or decoding failure returns the error
// so callers can tell an outage apart from a genuine miss.
func (c *Client) FetchTrialDetails(ctx context.Context, nctID string) (*TrialRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/"+url.PathEscape(nctID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.CtxWithError(ctx, "registry detail fetch failed", err, "nct_id", nctID)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		logger.CtxWarn(ctx, "registry detail fetch returned non-200", "nct_id", nctID, "status", resp.StatusCode)
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var s study
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		logger.CtxWithError(ctx, "registry detail decode failed", err, "nct_id", nctID)
		return nil, fmt.Errorf("decode study response: %w", err)
	}

	record := projectStudy(s)
	if record.NCTID == "" {
		return nil, nil
	}
	return &record, nil
}

// fetchPaged walks the continuation token until it is absent or a page
// comes back empty. filter, when non-nil, drops studies before
// projection.
func (c *Client) fetchPaged(ctx context.Context, params url.Values, filter func(study) bool) ([]TrialRecord, int, error) {
	var records []TrialRecord
	pageToken := ""
	pages := 0

	for {
		page := url.Values{}
		for k, v := range params {
			page[k] = v
		}
		page.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
		page.Set("format", "json")
		if pageToken != "" {
			page.Set("pageToken", pageToken)
		}

		resp, err := c.getStudies(ctx, page)
		if err != nil {
			return nil, pages, err
		}
		pages++

		if len(resp.Studies) == 0 {
			break
		}

		for _, s := range resp.Studies {
			if filter != nil && !filter(s) {
				continue
			}
			record := projectStudy(s)
			if record.NCTID != "" {
				records = append(records, record)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return records, pages, nil
}

func (c *Client) getStudies(ctx context.Context, params url.Values) (*studiesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d", resp.StatusCode)
	}

	var out studiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode studies response: %w", err)
	}

	return &out, nil
}

// isSponsorInvolved checks lead sponsor and collaborator names for the
// configured sponsor, case-insensitively.
func (c *Client) isSponsorInvolved(s study) bool {
	sponsor := strings.ToLower(c.cfg.Sponsor)
	module := s.ProtocolSection.SponsorCollaborators

	if strings.Contains(strings.ToLower(module.LeadSponsor.Name), sponsor) {
		return true
	}

	for _, collab := range module.Collaborators {
		if strings.Contains(strings.ToLower(collab.Name), sponsor) {
			return true
		}
	}

	return false
}

// projectStudy flattens a raw study into the portal's TrialRecord.
func projectStudy(s study) TrialRecord {
	p := s.ProtocolSection

	collaborators := make([]string, 0, len(p.SponsorCollaborators.Collaborators))
	for _, collab := range p.SponsorCollaborators.Collaborators {
		collaborators = append(collaborators, collab.Name)
	}

	interventions := make([]Intervention, 0, len(p.Interventions.Interventions))
	for _, iv := range p.Interventions.Interventions {
		interventions = append(interventions, Intervention{
			Type:        iv.Type,
			Name:        iv.Name,
			Description: iv.Description,
		})
	}

	return TrialRecord{
		NCTID:         p.Identification.NCTID,
		BriefTitle:    p.Identification.BriefTitle,
		OfficialTitle: p.Identification.OfficialTitle,
		Acronym:       p.Identification.Acronym,

		OverallStatus:         p.Status.OverallStatus,
		StudyFirstSubmitted:   p.Status.StudyFirstSubmitDate,
		LastUpdateSubmitted:   p.Status.LastUpdateSubmitDate,
		StartDate:             p.Status.StartDateStruct.Date,
		PrimaryCompletionDate: p.Status.PrimaryCompletionDateInfo.Date,
		CompletionDate:        p.Status.CompletionDateStruct.Date,

		StudyType:         p.Design.StudyType,
		Phases:            p.Design.Phases,
		Allocation:        p.Design.DesignInfo.Allocation,
		InterventionModel: p.Design.DesignInfo.InterventionModel,
		PrimaryPurpose:    p.Design.DesignInfo.PrimaryPurpose,
		Masking:           p.Design.DesignInfo.MaskingInfo.Masking,
		Enrollment:        p.Design.EnrollmentInfo.Count,

		LeadSponsor:      p.SponsorCollaborators.LeadSponsor.Name,
		LeadSponsorClass: p.SponsorCollaborators.LeadSponsor.Class,
		Collaborators:    collaborators,

		Conditions:    p.Conditions.Conditions,
		Keywords:      p.Conditions.Keywords,
		Interventions: interventions,

		EligibilityCriteria: p.Eligibility.EligibilityCriteria,
		HealthyVolunteers:   p.Eligibility.HealthyVolunteers,
		Sex:                 p.Eligibility.Sex,
		MinimumAge:          p.Eligibility.MinimumAge,
		MaximumAge:          p.Eligibility.MaximumAge,

		Locations:       projectLocations(p.Contacts),
		CentralContacts: projectContacts(p.Contacts.CentralContacts),

		BriefSummary:        p.Description.BriefSummary,
		DetailedDescription: p.Description.DetailedDescription,

		LastFetched: time.Now().UTC(),
	}
}

func projectLocations(m contactsModule) []Location {
	locations := make([]Location, 0, len(m.Locations))
	for _, loc := range m.Locations {
		locations = append(locations, Location{
			FacilityName: loc.Facility.Name,
			City:         loc.Facility.City,
			State:        loc.Facility.State,
			ZipCode:      loc.Facility.Zip,
			Country:      loc.Facility.Country,
			Status:       loc.Status,
			Contacts:     projectContacts(loc.Contacts),
		})
	}
	return locations
}

func projectContacts(in []apiContact) []Contact {
	if len(in) == 0 {
		return nil
	}
	contacts := make([]Contact, 0, len(in))
	for _, ct := range in {
		contacts = append(contacts, Contact{
			Name:  ct.Name,
			Role:  ct.Role,
			Phone: ct.Phone,
			Email: ct.Email,
		})
	}
	return contacts
}

// dedupeByNCTID keeps the first occurrence of each NCT id.
func dedupeByNCTID(trials []TrialRecord) []TrialRecord {
	seen := make(map[string]bool, len(trials))
	unique := make([]TrialRecord, 0, len(trials))

	for _, trial := range trials {
		if trial.NCTID == "" || seen[trial.NCTID] {
			continue
		}
		seen[trial.NCTID] = true
		unique = append(unique, trial)
	}

	return unique
}
