package handlers

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/ajayneena/econdash/internal/common"
	"github.com/ajayneena/econdash/internal/config"
	"github.com/ajayneena/econdash/internal/dashboard"
)

// DashboardHandler serves the dashboard page and its JSON render endpoint.
type DashboardHandler struct {
	logger    *common.Logger
	templates *template.Template
	devMode   bool
	service   *dashboard.Service
	defaults  config.DashboardConfig
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(logger *common.Logger, devMode bool, service *dashboard.Service, defaults config.DashboardConfig) *DashboardHandler {
	pagesDir := FindPagesDir()

	templates := template.Must(template.ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return &DashboardHandler{
		logger:    logger,
		templates: templates,
		devMode:   devMode,
		service:   service,
		defaults:  defaults,
	}
}

// ServeHTTP renders the dashboard page with its filter options.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	countries, usedFallback := h.service.Countries(r.Context())
	regions := dashboard.Regions(countries)

	region := r.URL.Query().Get("region")
	filtered := dashboard.FilterByRegion(countries, region)

	data := map[string]interface{}{
		"Page":             "dashboard",
		"DevMode":          h.devMode,
		"Countries":        filtered,
		"Regions":          regions,
		"SelectedRegion":   region,
		"Indicators":       h.service.Indicators(),
		"MinYear":          h.defaults.MinYear,
		"MaxYear":          h.defaults.MaxYear,
		"DefaultStartYear": h.defaults.DefaultStartYear,
		"DefaultEndYear":   h.defaults.DefaultEndYear,
		"Fallback":         usedFallback,
		"Version":          config.GetVersion(),
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", "dashboard.html").Str("error", err.Error()).Msg("failed to render dashboard")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ServeAPI handles GET /api/dashboard: one full render pass as JSON.
// Indicators are selected with repeated "indicator" query parameters,
// by catalog ID or by name.
func (h *DashboardHandler) ServeAPI(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	q := r.URL.Query()

	startYear, err := strconv.Atoi(q.Get("start_year"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "start_year must be an integer")
		return
	}
	endYear, err := strconv.Atoi(q.Get("end_year"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "end_year must be an integer")
		return
	}

	params := dashboard.Params{
		CountryID:  q.Get("country"),
		Region:     q.Get("region"),
		StartYear:  startYear,
		EndYear:    endYear,
		Indicators: h.resolveIndicators(q["indicator"]),
	}

	view, err := h.service.Render(r.Context(), params)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   view,
	})
}

// resolveIndicators maps catalog IDs to indicator names; anything that is
// not a known ID passes through unchanged and hits the generator's
// fallthrough branch.
func (h *DashboardHandler) resolveIndicators(selected []string) []string {
	catalog := h.service.Indicators()
	byID := make(map[string]string, len(catalog))
	for _, ind := range catalog {
		byID[ind.ID] = ind.Name
	}

	names := make([]string, 0, len(selected))
	for _, s := range selected {
		if name, ok := byID[s]; ok {
			names = append(names, name)
			continue
		}
		names = append(names, s)
	}
	return names
}
