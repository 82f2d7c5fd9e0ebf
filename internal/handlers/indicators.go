package handlers

import (
	"net/http"

	"github.com/ajayneena/econdash/internal/common"
	"github.com/ajayneena/econdash/internal/dashboard"
)

// IndicatorsHandler serves the indicator catalog.
type IndicatorsHandler struct {
	logger  *common.Logger
	service *dashboard.Service
}

// NewIndicatorsHandler creates a new indicators handler.
func NewIndicatorsHandler(logger *common.Logger, service *dashboard.Service) *IndicatorsHandler {
	return &IndicatorsHandler{logger: logger, service: service}
}

// ServeHTTP handles GET /api/indicators.
func (h *IndicatorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"indicators": h.service.Indicators(),
	})
}
