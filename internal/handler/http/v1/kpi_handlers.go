package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Dashboard KPI snapshot
// @Description Aggregate operational metrics: rolling-window speed and congestion averages, today's incident count and camera availability. Always answers 200; a degraded store falls back to the last cached snapshot or built-in defaults.
// @Tags KPI
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} KPIResponse
// @Router /kpi [get]
func (h *Handler) getKPI(c *gin.Context) {
	snap := h.kpi.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, toKPIResponse(snap))
}
