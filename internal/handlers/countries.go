package handlers

import (
	"net/http"

	"github.com/ajayneena/econdash/internal/common"
	"github.com/ajayneena/econdash/internal/dashboard"
)

// CountriesHandler serves the country catalog for the dashboard filters.
type CountriesHandler struct {
	logger  *common.Logger
	service *dashboard.Service
}

// NewCountriesHandler creates a new countries handler.
func NewCountriesHandler(logger *common.Logger, service *dashboard.Service) *CountriesHandler {
	return &CountriesHandler{logger: logger, service: service}
}

// ServeHTTP handles GET /api/countries?region=...
// The fallback flag tells clients the World Bank fetch failed and the
// built-in list is being served.
func (h *CountriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	countries, usedFallback := h.service.Countries(r.Context())
	regions := dashboard.Regions(countries)

	region := r.URL.Query().Get("region")
	filtered := dashboard.FilterByRegion(countries, region)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"fallback":  usedFallback,
		"regions":   regions,
		"countries": filtered,
	})
}
