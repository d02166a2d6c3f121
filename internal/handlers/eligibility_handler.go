package handlers

import (
	"net/http"

	"github.com/SujayAnishetti/ClinicalTrials/internal/eligibility"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services"
	"github.com/SujayAnishetti/ClinicalTrials/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// EligibilityHandler serves the dry-run eligibility check and the
// region lookup.
type EligibilityHandler struct {
	*BaseHandler
	submissionService services.SubmissionService
}

func NewEligibilityHandler(base *BaseHandler, submissionService services.SubmissionService) *EligibilityHandler {
	return &EligibilityHandler{
		BaseHandler:       base,
		submissionService: submissionService,
	}
}

func (h *EligibilityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/eligibility/check", h.CheckEligibility)
	rg.GET("/regions", h.GetRegions)
}

// CheckEligibility evaluates the rules without storing a submission.
func (h *EligibilityHandler) CheckEligibility(c *gin.Context) {
	var req dto.EligibilityCheckRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.submissionService.CheckEligibility(&req))
}

// GetRegions lists the serviced areas, or resolves one postal code
// when a query parameter is present. A 6-digit pincode resolves
// against the serviced-area list; a 5-digit US ZIP resolves to the
// nearest research facility for the cell-therapy intake.
func (h *EligibilityHandler) GetRegions(c *gin.Context) {
	var query dto.RegionQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	switch {
	case query.Pincode != "":
		c.JSON(http.StatusOK, dto.RegionResponse{
			Pincode:  query.Pincode,
			Served:   eligibility.PincodeServed(query.Pincode),
			Locality: eligibility.RegionForPincode(query.Pincode),
		})
	case query.Zipcode != "":
		region, facility := eligibility.ZipRegion(query.Zipcode)
		c.JSON(http.StatusOK, dto.ZipRegionResponse{
			Zipcode:  query.Zipcode,
			Region:   region,
			Facility: facility,
		})
	default:
		c.JSON(http.StatusOK, gin.H{"areas": eligibility.ServicedAreas()})
	}
}
