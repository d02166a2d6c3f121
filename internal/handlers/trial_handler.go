package handlers

import (
	"net/http"

	"github.com/SujayAnishetti/ClinicalTrials/internal/services"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TrialHandler serves the public trial listing.
type TrialHandler struct {
	*BaseHandler
	trialService services.TrialService
}

func NewTrialHandler(base *BaseHandler, trialService services.TrialService) *TrialHandler {
	return &TrialHandler{
		BaseHandler:  base,
		trialService: trialService,
	}
}

func (h *TrialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	trials := rg.Group("/trials")
	{
		trials.GET("", h.ListTrials)
		trials.GET("/:nctId", h.GetTrial)
	}
}

func (h *TrialHandler) ListTrials(c *gin.Context) {
	filter := dto.TrialListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	page, pageSize := ParsePagination(c)

	resp, err := h.trialService.ListTrials(filter, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TrialHandler) GetTrial(c *gin.Context) {
	trial, err := h.trialService.GetTrial(c.Request.Context(), c.Param("nctId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trial)
}
