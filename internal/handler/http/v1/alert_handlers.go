package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/webhook"
)

// @Summary List active alerts
// @Description List active alerts newest first, capped at 50. Deactivated alerts are excluded.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	alerts, err := h.store.ListActiveAlerts(ctx)
	if err != nil {
		h.respondError(c, log, "alert", err)
		return
	}
	c.JSON(http.StatusOK, toAlertResponses(alerts))
}

// @Summary Create an alert
// @Description Publish an operator alert. New alerts start active.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert creation request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

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

	alert, err := h.store.CreateAlert(ctx, models.CreateAlert{
		Title:  input.Title,
		Detail: input.Detail,
		Level:  input.Level,
	})
	if err != nil {
		h.respondError(c, log, "alert", err)
		return
	}

	h.publishEvent(c, webhook.EventAlertCreated, alert, log)
	c.JSON(http.StatusCreated, toAlertResponse(alert))
}

// @Summary Dismiss an alert
// @Description Deactivate an alert. The record is kept but drops out of the active list.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [delete]
func (h *Handler) deleteAlert(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteAlert").WithField("id", id)

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.store.DeactivateAlert(ctx, id); err != nil {
		h.respondError(c, log, "alert", err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
