package handlers

import (
	"net/http"

	"github.com/SujayAnishetti/ClinicalTrials/internal/auth"
	"github.com/SujayAnishetti/ClinicalTrials/internal/middleware"
	"github.com/SujayAnishetti/ClinicalTrials/internal/models"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin panel API: login, submission listing,
// dashboard stats, bulk email and registry refresh.
type AdminHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
	emailService      services.EmailService
	trialService      services.TrialService
	authService       services.AuthService
	tokens            *auth.TokenManager
}

func NewAdminHandler(
	base *BaseHandler,
	submissionService services.SubmissionService,
	emailService services.EmailService,
	trialService services.TrialService,
	authService services.AuthService,
	tokens *auth.TokenManager,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:       base,
		submissionService: submissionService,
		emailService:      emailService,
		trialService:      trialService,
		authService:       authService,
		tokens:            tokens,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.POST("/login", h.Login)

	protected := admin.Group("")
	protected.Use(middleware.AuthMiddleware(h.tokens))
	protected.Use(middleware.RoleMiddleware(models.AdminRoleAdmin))
	{
		protected.GET("/submissions", h.ListSubmissions)
		protected.GET("/stats", h.GetStats)
		protected.GET("/emails/templates", h.ListEmailTemplates)
		protected.POST("/emails/send", h.SendEmails)
		protected.POST("/trials/refresh", h.RefreshTrials)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSubmissions returns submissions filtered by pincode substring,
// eligibility and email status, newest first.
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	filter := dto.SubmissionListFilter{
		Pincode:   c.Query("pincode"),
		Eligible:  parseEligibilityFilter(c.Query("eligibility")),
		EmailSent: ParseQueryBool(c, "email_sent"),
		Search:    c.Query("search"),
	}
	page, pageSize := ParsePagination(c)

	resp, err := h.submissionService.ListSubmissions(filter, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseEligibilityFilter maps the admin filter values to a tri-state.
// Anything other than "eligible" or "not_eligible" means no filter.
func parseEligibilityFilter(value string) *bool {
	switch value {
	case "eligible":
		v := true
		return &v
	case "not_eligible":
		v := false
		return &v
	default:
		return nil
	}
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	submissionStats, err := h.submissionService.GetStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	trialCount, err := h.trialService.Count()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		Submissions: *submissionStats,
		TrialCount:  trialCount,
	})
}

// ListEmailTemplates reports which outreach templates can be sent.
func (h *AdminHandler) ListEmailTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.emailService.ListTemplates()})
}

// SendEmails sends the welcome template to the selected submissions.
func (h *AdminHandler) SendEmails(c *gin.Context) {
	var req dto.SendEmailsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.emailService.SendWelcomeEmails(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RefreshTrials pulls the latest registry snapshot into the cache.
func (h *AdminHandler) RefreshTrials(c *gin.Context) {
	resp, err := h.trialService.RefreshTrials(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
