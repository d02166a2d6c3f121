package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SujayAnishetti/ClinicalTrials/internal/auth"
	"github.com/SujayAnishetti/ClinicalTrials/internal/eligibility"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"
	"github.com/SujayAnishetti/ClinicalTrials/internal/validator"
	"github.com/SujayAnishetti/ClinicalTrials/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stub services for handler tests. The rule engine itself is covered
// in its own package; here it runs for real behind the stub service so
// the HTTP contract reflects actual outcomes.

type stubSubmissionService struct {
	submissions map[string]dto.SubmissionResponse
}

func (s *stubSubmissionService) SubmitInterest(ctx context.Context, req *dto.InterestRequest) (*dto.InterestResponse, error) {
	result := eligibility.Check(eligibility.Input{
		Age:        req.Age,
		Pincode:    req.Pincode,
		HealthInfo: req.HealthInfo,
		Mobile:     req.Mobile,
	})
	tier, message := eligibility.ComposeMessage(result)

	return &dto.InterestResponse{
		SubmissionID: "sub-1",
		Eligible:     result.Eligible,
		Tier:         string(tier),
		Message:      message,
		Reasons:      result.ReasonTexts(),
		Region:       eligibility.RegionForPincode(req.Pincode),
	}, nil
}

func (s *stubSubmissionService) CheckEligibility(req *dto.EligibilityCheckRequest) *dto.EligibilityCheckResponse {
	result := eligibility.Check(eligibility.Input{
		Age:        req.Age,
		Pincode:    req.Pincode,
		HealthInfo: req.HealthInfo,
		Mobile:     req.Mobile,
	})
	tier, message := eligibility.ComposeMessage(result)
	return &dto.EligibilityCheckResponse{
		Eligible: result.Eligible,
		Tier:     string(tier),
		Message:  message,
		Reasons:  result.ReasonTexts(),
	}
}

func (s *stubSubmissionService) GetSubmission(id string) (*dto.SubmissionResponse, error) {
	if resp, ok := s.submissions[id]; ok {
		return &resp, nil
	}
	return nil, apperrors.ErrSubmissionNotFound
}

func (s *stubSubmissionService) ListSubmissions(filter dto.SubmissionListFilter, page, pageSize int) (*dto.SubmissionListResponse, error) {
	items := make([]dto.SubmissionResponse, 0, len(s.submissions))
	for _, item := range s.submissions {
		items = append(items, item)
	}
	return &dto.SubmissionListResponse{
		Submissions: items,
		Total:       int64(len(items)),
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

func (s *stubSubmissionService) GetStats() (*dto.SubmissionStats, error) {
	return &dto.SubmissionStats{Total: int64(len(s.submissions))}, nil
}

type stubEmailService struct {
	lastRequest *dto.SendEmailsRequest
}

func (s *stubEmailService) SendWelcomeEmails(ctx context.Context, req *dto.SendEmailsRequest) (*dto.SendEmailsResponse, error) {
	s.lastRequest = req
	return &dto.SendEmailsResponse{Requested: len(req.SubmissionIDs), Sent: len(req.SubmissionIDs)}, nil
}

func (s *stubEmailService) ListTemplates() []string {
	return []string{"welcome"}
}

type stubTrialService struct {
	trials map[string]models.Trial
}

func (s *stubTrialService) RefreshTrials(ctx context.Context) (*dto.RefreshResponse, error) {
	return &dto.RefreshResponse{Fetched: len(s.trials), Stored: len(s.trials)}, nil
}

func (s *stubTrialService) ListTrials(filter dto.TrialListFilter, page, pageSize int) (*dto.TrialListResponse, error) {
	trials := make([]models.Trial, 0, len(s.trials))
	for _, t := range s.trials {
		trials = append(trials, t)
	}
	return &dto.TrialListResponse{Trials: trials, Total: int64(len(trials)), Page: page, PageSize: pageSize}, nil
}

func (s *stubTrialService) GetTrial(ctx context.Context, nctID string) (*models.Trial, error) {
	if t, ok := s.trials[nctID]; ok {
		return &t, nil
	}
	return nil, apperrors.ErrTrialNotFound
}

func (s *stubTrialService) Count() (int64, error) {
	return int64(len(s.trials)), nil
}

type stubAuthService struct{}

func (s *stubAuthService) Login(req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if req.Email == "admin@example.com" && req.Password == "secret-password" {
		return &dto.AdminLoginResponse{AccessToken: "stub-token", Email: req.Email, Role: "admin"}, nil
	}
	return nil, apperrors.ErrInvalidCredentials
}

func setupTestRouter(t *testing.T) (*gin.Engine, *auth.TokenManager, *stubEmailService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	base := NewBaseHandler(validator.New())
	tokens := auth.NewTokenManager("test-secret", 60)

	submissionService := &stubSubmissionService{
		submissions: map[string]dto.SubmissionResponse{
			"sub-1": {ID: "sub-1", Name: "Priya Sharma", Pincode: "560034", Region: "Bangalore"},
		},
	}
	emailService := &stubEmailService{}
	trialService := &stubTrialService{
		trials: map[string]models.Trial{
			"NCT00000001": {NCTID: "NCT00000001", BriefTitle: "CAR-T Study", OverallStatus: "RECRUITING"},
		},
	}
	var authService services.AuthService = &stubAuthService{}

	router := gin.New()
	api := router.Group("/api/v1")
	NewInterestHandler(base, submissionService).RegisterRoutes(api)
	NewEligibilityHandler(base, submissionService).RegisterRoutes(api)
	NewTrialHandler(base, trialService).RegisterRoutes(api)
	NewAdminHandler(base, submissionService, emailService, trialService, authService, tokens).RegisterRoutes(api)

	return router, tokens, emailService
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitInterest_Endpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/interest", gin.H{
		"name":        "Priya Sharma",
		"email":       "priya@example.com",
		"mobile":      "9876543210",
		"pincode":     "560034",
		"age":         42,
		"health_info": "Generally healthy, mild seasonal allergies.",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.InterestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Eligible)
	assert.Equal(t, "success", resp.Tier)
	assert.Equal(t, "Bangalore", resp.Region)
}

func TestSubmitInterest_ValidationErrors(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/interest", gin.H{
		"name":        "P",
		"email":       "not-an-email",
		"mobile":      "12345",
		"pincode":     "abc",
		"age":         42,
		"health_info": "Healthy",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "pincode")
	assert.Contains(t, body, "mobile")
	assert.Contains(t, body, "email")
}

func TestCheckEligibility_Endpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/eligibility/check", gin.H{
		"age":         17,
		"pincode":     "110001",
		"health_info": "Healthy college student, no medical issues.",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.EligibilityCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Eligible)
	assert.Equal(t, "error", resp.Tier)
	assert.Contains(t, resp.Message, "at least 18 years old")
}

func TestGetSubmission_Endpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/submissions/sub-1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Priya Sharma")

	w = doJSON(t, router, http.MethodGet, "/api/v1/submissions/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRegions_Endpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/regions?pincode=110001", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Served)
	assert.Equal(t, "New Delhi", resp.Locality)

	// A 5-digit ZIP resolves to the nearest research facility instead.
	w = doJSON(t, router, http.MethodGet, "/api/v1/regions?zipcode=10016", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var zipResp dto.ZipRegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &zipResp))
	assert.Equal(t, "New York", zipResp.Region)
	assert.Contains(t, zipResp.Facility, "New York, NY")

	// Without a postal code the full serviced-area list is returned.
	w = doJSON(t, router, http.MethodGet, "/api/v1/regions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bangalore")
}

func TestTrials_Endpoints(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/trials", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "NCT00000001")

	w = doJSON(t, router, http.MethodGet, "/api/v1/trials/NCT00000001", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/trials/NCT99999999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	router, tokens, emailService := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/submissions", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := tokens.GenerateToken("admin-1", "admin")
	require.NoError(t, err)
	authHeader := map[string]string{"Authorization": "Bearer " + token}

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/submissions", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/emails/templates", nil, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "welcome")

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/emails/send", gin.H{
		"submission_ids": []string{"9f1b9c04-5c5f-4f5e-9e0a-3d2b1c4d5e6f"},
	}, authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, emailService.lastRequest)
	assert.Len(t, emailService.lastRequest.SubmissionIDs, 1)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/trials/refresh", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLogin_Endpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "secret-password",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stub-token")

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
