package services

import (
	"context"

	"github.com/SujayAnishetti/ClinicalTrials/internal/eligibility"
	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/repositories"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"
	"github.com/SujayAnishetti/ClinicalTrials/pkg/apperrors"
)

type SubmissionService interface {
	SubmitInterest(ctx context.Context, req *dto.InterestRequest) (*dto.InterestResponse, error)
	CheckEligibility(req *dto.EligibilityCheckRequest) *dto.EligibilityCheckResponse
	GetSubmission(id string) (*dto.SubmissionResponse, error)
	ListSubmissions(filter dto.SubmissionListFilter, page, pageSize int) (*dto.SubmissionListResponse, error)
	GetStats() (*dto.SubmissionStats, error)
}

type SubmissionServiceImpl struct {
	submissionRepo repositories.SubmissionRepository
}

func NewSubmissionService(submissionRepo repositories.SubmissionRepository) SubmissionService {
	return &SubmissionServiceImpl{submissionRepo: submissionRepo}
}

// SubmitInterest evaluates the baseline eligibility rules and stores
// the submission whatever the outcome, so staff can follow up with
// ineligible registrants too.
func (s *SubmissionServiceImpl) SubmitInterest(ctx context.Context, req *dto.InterestRequest) (*dto.InterestResponse, error) {
	result := eligibility.Check(eligibility.Input{
		Age:        req.Age,
		Pincode:    req.Pincode,
		HealthInfo: req.HealthInfo,
		Mobile:     req.Mobile,
	})

	submission := &models.Submission{
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Pincode:    req.Pincode,
		Age:        req.Age,
		HealthInfo: req.HealthInfo,
		IsEligible: result.Eligible,
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, apperrors.InternalError(err)
	}

	tier, message := eligibility.ComposeMessage(result)

	logger.CtxInfo(ctx, "interest submission stored",
		"submission_id", submission.ID,
		"eligible", result.Eligible,
		"reasons", len(result.Reasons),
	)

	return &dto.InterestResponse{
		SubmissionID: submission.ID,
		Eligible:     result.Eligible,
		Tier:         string(tier),
		Message:      message,
		Reasons:      result.ReasonTexts(),
		Region:       eligibility.RegionForPincode(req.Pincode),
	}, nil
}

// CheckEligibility runs the evaluator without persisting anything.
// Trial-specific criteria, when present, are layered on top of the
// baseline rules.
func (s *SubmissionServiceImpl) CheckEligibility(req *dto.EligibilityCheckRequest) *dto.EligibilityCheckResponse {
	var extra *eligibility.Criteria
	if req.Criteria != nil {
		extra = &eligibility.Criteria{
			MinAge:              req.Criteria.MinAge,
			MaxAge:              req.Criteria.MaxAge,
			RequiredConditions:  req.Criteria.RequiredConditions,
			ExcludedMedications: req.Criteria.ExcludedMedications,
		}
	}

	result := eligibility.Check(eligibility.Input{
		Age:        req.Age,
		Pincode:    req.Pincode,
		HealthInfo: req.HealthInfo,
		Mobile:     req.Mobile,
		Extra:      extra,
	})

	tier, message := eligibility.ComposeMessage(result)

	return &dto.EligibilityCheckResponse{
		Eligible: result.Eligible,
		Tier:     string(tier),
		Message:  message,
		Reasons:  result.ReasonTexts(),
	}
}

func (s *SubmissionServiceImpl) GetSubmission(id string) (*dto.SubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubmissionNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSubmissionResponse(submission, eligibility.RegionForPincode(submission.Pincode))
	return &resp, nil
}

func (s *SubmissionServiceImpl) ListSubmissions(filter dto.SubmissionListFilter, page, pageSize int) (*dto.SubmissionListResponse, error) {
	submissions, total, err := s.submissionRepo.FindWithFilter(repositories.SubmissionFilter{
		Pincode:   filter.Pincode,
		Eligible:  filter.Eligible,
		EmailSent: filter.EmailSent,
		Search:    filter.Search,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		items = append(items, dto.NewSubmissionResponse(&submissions[i], eligibility.RegionForPincode(submissions[i].Pincode)))
	}

	return &dto.SubmissionListResponse{
		Submissions: items,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

func (s *SubmissionServiceImpl) GetStats() (*dto.SubmissionStats, error) {
	stats, err := s.submissionRepo.GetStats()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SubmissionStats{
		Total:      stats.Total,
		Eligible:   stats.Eligible,
		Ineligible: stats.Ineligible,
		EmailsSent: stats.EmailsSent,
		Today:      stats.Today,
	}, nil
}
