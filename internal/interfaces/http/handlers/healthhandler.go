package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storeops/internal/shared/utils"
)

// HealthHandler answers liveness probes and reports the build version.
type HealthHandler struct {
	version   string
	startedAt time.Time
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version:   version,
		startedAt: time.Now(),
	}
}

// Health reports service liveness.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}

// Version reports the build version.
// GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"version": h.version,
	})
}
