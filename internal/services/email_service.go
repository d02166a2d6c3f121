package services

import (
	"context"

	"github.com/SujayAnishetti/ClinicalTrials/internal/eligibility"
	"github.com/SujayAnishetti/ClinicalTrials/internal/email"
	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/repositories"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"
	"github.com/SujayAnishetti/ClinicalTrials/pkg/apperrors"
)

type EmailService interface {
	SendWelcomeEmails(ctx context.Context, req *dto.SendEmailsRequest) (*dto.SendEmailsResponse, error)
	ListTemplates() []string
}

type EmailServiceImpl struct {
	submissionRepo repositories.SubmissionRepository
	provider       email.Provider
	renderer       email.TemplateRenderer
}

func NewEmailService(
	submissionRepo repositories.SubmissionRepository,
	provider email.Provider,
	renderer email.TemplateRenderer,
) EmailService {
	return &EmailServiceImpl{
		submissionRepo: submissionRepo,
		provider:       provider,
		renderer:       renderer,
	}
}

// SendWelcomeEmails sends the welcome template to the selected
// submissions over a single SMTP connection. Submissions whose message
// was accepted by the server are marked email_sent; failed ones stay
// unmarked so the send can be retried. A connection failure fails the
// whole batch.
func (s *EmailServiceImpl) SendWelcomeEmails(ctx context.Context, req *dto.SendEmailsRequest) (*dto.SendEmailsResponse, error) {
	submissions, err := s.submissionRepo.FindByIDs(req.SubmissionIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(submissions) == 0 {
		return nil, apperrors.ErrNoRecipientsSelected
	}

	emails := make([]*email.Email, 0, len(submissions))
	for i := range submissions {
		msg, err := s.buildWelcomeEmail(&submissions[i])
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		emails = append(emails, msg)
	}

	results, err := s.provider.SendBatch(emails)
	if err != nil {
		logger.CtxWithError(ctx, "bulk email batch failed", err, "requested", len(submissions))
		return &dto.SendEmailsResponse{
			Requested: len(submissions),
			Sent:      0,
			Failed:    len(submissions),
		}, nil
	}

	sentIDs := make([]string, 0, len(results))
	failed := 0
	for i, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		sentIDs = append(sentIDs, submissions[i].ID)
	}

	if err := s.submissionRepo.MarkEmailSent(sentIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "bulk email batch complete",
		"requested", len(submissions),
		"sent", len(sentIDs),
		"failed", failed,
	)

	return &dto.SendEmailsResponse{
		Requested: len(submissions),
		Sent:      len(sentIDs),
		Failed:    failed,
	}, nil
}

// ListTemplates reports the email templates available for outreach.
func (s *EmailServiceImpl) ListTemplates() []string {
	return s.renderer.TemplateNames()
}

func (s *EmailServiceImpl) buildWelcomeEmail(submission *models.Submission) (*email.Email, error) {
	// Custom templates may also reference Email, Pincode and Age.
	subject, body, err := s.renderer.Render(email.WelcomeTemplate, email.TemplateData{
		"Name":    submission.Name,
		"Email":   submission.Email,
		"Pincode": submission.Pincode,
		"Age":     submission.Age,
		"Region":  eligibility.RegionForPincode(submission.Pincode),
	})
	if err != nil {
		return nil, err
	}

	return &email.Email{
		To:       []string{submission.Email},
		Subject:  subject,
		HTMLBody: body,
	}, nil
}
