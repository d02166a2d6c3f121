package services

import (
	"context"
	"strings"

	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/registry"
	"github.com/SujayAnishetti/ClinicalTrials/internal/repositories"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"
	"github.com/SujayAnishetti/ClinicalTrials/pkg/apperrors"
)

// RegistryClient is the slice of the registry client the trial service
// needs.
type RegistryClient interface {
	FetchAll(ctx context.Context) []registry.TrialRecord
	FetchTrialDetails(ctx context.Context, nctID string) (*registry.TrialRecord, error)
}

type TrialService interface {
	RefreshTrials(ctx context.Context) (*dto.RefreshResponse, error)
	ListTrials(filter dto.TrialListFilter, page, pageSize int) (*dto.TrialListResponse, error)
	GetTrial(ctx context.Context, nctID string) (*models.Trial, error)
	Count() (int64, error)
}

type TrialServiceImpl struct {
	trialRepo repositories.TrialRepository
	client    RegistryClient
}

func NewTrialService(trialRepo repositories.TrialRepository, client RegistryClient) TrialService {
	return &TrialServiceImpl{
		trialRepo: trialRepo,
		client:    client,
	}
}

// RefreshTrials pulls the current registry snapshot and upserts it into
// the local cache. A registry outage yields zero fetched records, not
// an error.
func (s *TrialServiceImpl) RefreshTrials(ctx context.Context) (*dto.RefreshResponse, error) {
	records := s.client.FetchAll(ctx)
	if len(records) == 0 {
		logger.CtxWarn(ctx, "registry refresh returned no records")
		return &dto.RefreshResponse{Fetched: 0, Stored: 0}, nil
	}

	trials := make([]models.Trial, 0, len(records))
	for _, record := range records {
		trials = append(trials, trialFromRecord(record))
	}

	if err := s.trialRepo.UpsertBatch(trials); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "registry refresh complete", "fetched", len(records), "stored", len(trials))

	return &dto.RefreshResponse{
		Fetched: len(records),
		Stored:  len(trials),
	}, nil
}

func (s *TrialServiceImpl) ListTrials(filter dto.TrialListFilter, page, pageSize int) (*dto.TrialListResponse, error) {
	trials, total, err := s.trialRepo.FindWithFilter(repositories.TrialFilter{
		Status:   filter.Status,
		Search:   filter.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TrialListResponse{
		Trials:   trials,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetTrial serves a trial from the cache, falling back to a live
// registry lookup for studies not yet refreshed locally.
func (s *TrialServiceImpl) GetTrial(ctx context.Context, nctID string) (*models.Trial, error) {
	trial, err := s.trialRepo.FindByNCTID(nctID)
	if err == nil {
		return trial, nil
	}
	if !apperrors.Is(err, repositories.ErrTrialNotFound) {
		return nil, apperrors.InternalError(err)
	}

	record, err := s.client.FetchTrialDetails(ctx, nctID)
	if err != nil {
		logger.CtxWithError(ctx, "registry detail lookup failed", err, "nct_id", nctID)
		return nil, apperrors.ErrRegistryUnavailable
	}
	if record == nil {
		return nil, apperrors.ErrTrialNotFound
	}

	fetched := trialFromRecord(*record)
	if err := s.trialRepo.UpsertBatch([]models.Trial{fetched}); err != nil {
		logger.CtxWithError(ctx, "failed to cache trial", err, "nct_id", nctID)
	}

	// Re-read so the caller gets the stored row with its generated id.
	trial, err = s.trialRepo.FindByNCTID(nctID)
	if err != nil {
		return &fetched, nil
	}
	return trial, nil
}

func (s *TrialServiceImpl) Count() (int64, error) {
	count, err := s.trialRepo.Count()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func trialFromRecord(record registry.TrialRecord) models.Trial {
	interventions := make([]string, 0, len(record.Interventions))
	for _, iv := range record.Interventions {
		if iv.Type != "" {
			interventions = append(interventions, iv.Type+": "+iv.Name)
		} else {
			interventions = append(interventions, iv.Name)
		}
	}

	return models.Trial{
		NCTID:         record.NCTID,
		BriefTitle:    record.BriefTitle,
		OfficialTitle: record.OfficialTitle,

		OverallStatus: record.OverallStatus,
		StartDate:     record.StartDate,
		StudyType:     record.StudyType,
		Phases:        strings.Join(record.Phases, ", "),
		Enrollment:    record.Enrollment,

		LeadSponsor:   record.LeadSponsor,
		Collaborators: strings.Join(record.Collaborators, ", "),

		Conditions:    strings.Join(record.Conditions, ", "),
		Interventions: strings.Join(interventions, "; "),

		EligibilityCriteria: record.EligibilityCriteria,
		MinimumAge:          record.MinimumAge,
		MaximumAge:          record.MaximumAge,
		Sex:                 record.Sex,

		BriefSummary: record.BriefSummary,

		LastFetchedAt: record.LastFetched,
	}
}
