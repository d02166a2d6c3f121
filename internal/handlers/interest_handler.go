package handlers

import (
	"net/http"

	"github.com/SujayAnishetti/ClinicalTrials/internal/services"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// InterestHandler serves the public interest form.
type InterestHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewInterestHandler(base *BaseHandler, submissionService services.SubmissionService) *InterestHandler {
	return &InterestHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

func (h *InterestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interest", h.SubmitInterest)
	rg.GET("/submissions/:id", h.GetSubmission)
}

// SubmitInterest stores an interest-form submission and returns its
// eligibility outcome.
func (h *InterestHandler) SubmitInterest(c *gin.Context) {
	var req dto.InterestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.submissionService.SubmitInterest(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *InterestHandler) GetSubmission(c *gin.Context) {
	resp, err := h.submissionService.GetSubmission(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
