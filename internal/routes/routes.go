package routes

import (
	"github.com/SujayAnishetti/ClinicalTrials/internal/handlers"
	"github.com/SujayAnishetti/ClinicalTrials/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route of the portal.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.InterestHandler.RegisterRoutes(api)
		appHandlers.EligibilityHandler.RegisterRoutes(api)
		appHandlers.TrialHandler.RegisterRoutes(api)
		appHandlers.AdminHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered", "base_path", "/api/v1")
}
