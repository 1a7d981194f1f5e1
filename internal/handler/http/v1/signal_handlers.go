package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

// @Summary List traffic signals
// @Description List all controllable signals sorted by name.
// @Tags Signals
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SignalResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals [get]
func (h *Handler) listSignals(c *gin.Context) {
	log := h.logger.WithField("method", "listSignals")

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	signals, err := h.store.ListSignals(ctx)
	if err != nil {
		h.respondError(c, log, "signal", err)
		return
	}
	c.JSON(http.StatusOK, toSignalResponses(signals))
}

// @Summary Register a signal
// @Description Register a traffic signal. New signals start Green in Auto mode with default phase timing unless timing is supplied.
// @Tags Signals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param signal body CreateSignalRequest true "Signal creation request"
// @Success 201 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals [post]
func (h *Handler) createSignal(c *gin.Context) {
	var input CreateSignalRequest
	log := h.logger.WithField("method", "createSignal")

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

	signal, err := h.store.CreateSignal(ctx, models.CreateSignal{
		Name:     input.Name,
		Location: input.Location,
		Timing:   toTimingModel(input.Timing),
	})
	if err != nil {
		h.respondError(c, log, "signal", err)
		return
	}
	c.JSON(http.StatusCreated, toSignalResponse(signal))
}

// @Summary Update a signal
// @Description Partially update a signal's state, mode or timing. Omitted fields are left untouched; every change refreshes lastUpdated.
// @Tags Signals
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Signal ID"
// @Param signal body UpdateSignalRequest true "Signal update request"
// @Success 200 {object} SignalResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Signal not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /signals/{id} [patch]
func (h *Handler) updateSignal(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateSignal").WithField("id", id)

	var input UpdateSignalRequest
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

	signal, err := h.store.UpdateSignal(ctx, id, models.SignalUpdate{
		Name:         input.Name,
		Location:     input.Location,
		CurrentState: input.CurrentState,
		Mode:         input.Mode,
		Timing:       toTimingModel(input.Timing),
	})
	if err != nil {
		h.respondError(c, log, "signal", err)
		return
	}
	c.JSON(http.StatusOK, toSignalResponse(signal))
}
