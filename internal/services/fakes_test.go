package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SujayAnishetti/ClinicalTrials/internal/email"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/registry"
	"github.com/SujayAnishetti/ClinicalTrials/internal/repositories"
)

// In-memory fakes shared by the service tests.

type fakeSubmissionRepo struct {
	submissions map[string]*models.Submission
	nextID      int
	createErr   error
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[string]*models.Submission)}
}

func (r *fakeSubmissionRepo) Create(s *models.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	s.ID = fmt.Sprintf("sub-%d", r.nextID)
	r.submissions[s.ID] = s
	return nil
}

func (r *fakeSubmissionRepo) FindByID(id string) (*models.Submission, error) {
	s, ok := r.submissions[id]
	if !ok {
		return nil, repositories.ErrSubmissionNotFound
	}
	return s, nil
}

func (r *fakeSubmissionRepo) FindByIDs(ids []string) ([]models.Submission, error) {
	var out []models.Submission
	for _, id := range ids {
		if s, ok := r.submissions[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindWithFilter(criteria repositories.SubmissionFilter) ([]models.Submission, int64, error) {
	var out []models.Submission
	for _, s := range r.submissions {
		if criteria.Eligible != nil && s.IsEligible != *criteria.Eligible {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSubmissionRepo) MarkEmailSent(ids []string) error {
	for _, id := range ids {
		if s, ok := r.submissions[id]; ok {
			s.EmailSent = true
		}
	}
	return nil
}

func (r *fakeSubmissionRepo) GetStats() (*repositories.SubmissionStats, error) {
	stats := &repositories.SubmissionStats{}
	for _, s := range r.submissions {
		stats.Total++
		if s.IsEligible {
			stats.Eligible++
		}
		if s.EmailSent {
			stats.EmailsSent++
		}
	}
	stats.Ineligible = stats.Total - stats.Eligible
	return stats, nil
}

type fakeAdminRepo struct {
	users map[string]*models.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: make(map[string]*models.AdminUser)}
}

func (r *fakeAdminRepo) FindByEmail(email string) (*models.AdminUser, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrAdminUserNotFound
	}
	return u, nil
}

func (r *fakeAdminRepo) Create(u *models.AdminUser) error {
	if _, ok := r.users[u.Email]; ok {
		return repositories.ErrAdminUserAlreadyExists
	}
	if u.ID == "" {
		u.ID = "admin-" + u.Email
	}
	r.users[u.Email] = u
	return nil
}

func (r *fakeAdminRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

type fakeTrialRepo struct {
	trials    map[string]models.Trial
	upsertErr error
}

func newFakeTrialRepo() *fakeTrialRepo {
	return &fakeTrialRepo{trials: make(map[string]models.Trial)}
}

func (r *fakeTrialRepo) UpsertBatch(trials []models.Trial) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	for _, t := range trials {
		if existing, ok := r.trials[t.NCTID]; ok {
			t.ID = existing.ID
		} else {
			t.ID = "trial-" + t.NCTID
		}
		r.trials[t.NCTID] = t
	}
	return nil
}

func (r *fakeTrialRepo) FindWithFilter(criteria repositories.TrialFilter) ([]models.Trial, int64, error) {
	var out []models.Trial
	for _, t := range r.trials {
		if criteria.Status != "" && t.OverallStatus != criteria.Status {
			continue
		}
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTrialRepo) FindByNCTID(nctID string) (*models.Trial, error) {
	t, ok := r.trials[nctID]
	if !ok {
		return nil, repositories.ErrTrialNotFound
	}
	return &t, nil
}

func (r *fakeTrialRepo) Count() (int64, error) {
	return int64(len(r.trials)), nil
}

type fakeRegistryClient struct {
	records []registry.TrialRecord
	details map[string]*registry.TrialRecord
	down    bool
}

func (c *fakeRegistryClient) FetchAll(ctx context.Context) []registry.TrialRecord {
	return c.records
}

func (c *fakeRegistryClient) FetchTrialDetails(ctx context.Context, nctID string) (*registry.TrialRecord, error) {
	if c.down {
		return nil, errors.New("connection refused")
	}
	return c.details[nctID], nil
}

type fakeProvider struct {
	sent     []*email.Email
	failTo   map[string]bool
	dialFail bool
}

func (p *fakeProvider) Send(e *email.Email) error {
	p.sent = append(p.sent, e)
	return nil
}

func (p *fakeProvider) SendBatch(emails []*email.Email) ([]email.SendResult, error) {
	if p.dialFail {
		return nil, errors.New("connection refused")
	}
	results := make([]email.SendResult, 0, len(emails))
	for _, e := range emails {
		recipient := e.To[0]
		if p.failTo[recipient] {
			results = append(results, email.SendResult{Recipient: recipient, Err: errors.New("mailbox unavailable")})
			continue
		}
		p.sent = append(p.sent, e)
		results = append(results, email.SendResult{Recipient: recipient})
	}
	return results, nil
}

func (p *fakeProvider) SendTemplate(to []string, templateName string, data email.TemplateData) error {
	return nil
}

func (p *fakeProvider) Validate() error { return nil }
func (p *fakeProvider) Close() error    { return nil }
