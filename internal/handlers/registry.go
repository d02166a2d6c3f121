package handlers

// AppHandlers holds every HTTP handler of the portal.
type AppHandlers struct {
	InterestHandler    *InterestHandler
	EligibilityHandler *EligibilityHandler
	TrialHandler       *TrialHandler
	AdminHandler       *AdminHandler
	HealthHandler      *HealthHandler
}
