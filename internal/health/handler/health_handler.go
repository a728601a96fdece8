package handler

import (
	"net/http"

	"github.com/itsryu/ZeDoBambu/internal/health/service"
	"github.com/itsryu/ZeDoBambu/internal/system/utils"
)

// HealthHandler implements health and readiness endpoints.
type HealthHandler struct {
	service *service.HealthService
}

// NewHealthHandler creates a new instance of HealthHandler.
func NewHealthHandler(svc *service.HealthService) *HealthHandler {

	return &HealthHandler{service: svc}
}

// HandleHealth responds to /health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {

	utils.WriteSuccess(w, http.StatusOK, "Service is healthy.", map[string]string{"status": "UP"})
}

// HandleReadiness responds to /ready requests.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {

	if err := h.service.CheckReadiness(r.Context()); err != nil {
		utils.WriteError(w, http.StatusServiceUnavailable, "Service is not ready.", err.Error())
		return
	}
	utils.WriteSuccess(w, http.StatusOK, "Service is ready.", map[string]string{"status": "READY"})
}
