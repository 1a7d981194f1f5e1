package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/webhook"
	"github.com/sirupsen/logrus"
)

// @Summary List incidents
// @Description List incidents newest first, capped at 200.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	incidents, err := h.store.ListIncidents(ctx)
	if err != nil {
		h.respondError(c, log, "incident", err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	incident, err := h.store.GetIncidentByID(ctx, id)
	if err != nil {
		h.respondError(c, log, "incident", err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// @Summary Report a new incident
// @Description Report an incident. New incidents start Open with reportedAt set to now.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

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

	incident, err := h.store.CreateIncident(ctx, models.CreateIncident{
		Type:     input.Type,
		Severity: input.Severity,
		Location: input.Location,
	})
	if err != nil {
		h.respondError(c, log, "incident", err)
		return
	}

	h.publishEvent(c, webhook.EventIncidentCreated, incident, log)
	c.JSON(http.StatusCreated, toIncidentResponse(incident))
}

// @Summary Update an incident
// @Description Partially update an incident. Omitted fields are left untouched; an empty assignedUnitId clears the assignment and the denormalized unit name.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
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

	upd := models.IncidentUpdate{
		Status:           input.Status,
		AssignedUnitID:   input.AssignedUnitID,
		AssignedUnitName: input.AssignedUnitName,
	}

	// An assignment without an explicit unit name picks it up from the
	// unit record, keeping the denormalized copy consistent.
	if upd.AssignedUnitID != nil && *upd.AssignedUnitID != "" && upd.AssignedUnitName == nil {
		unit, err := h.store.GetUnitByID(ctx, *upd.AssignedUnitID)
		if err != nil {
			h.respondError(c, log, "unit", err)
			return
		}
		upd.AssignedUnitName = &unit.Name
	}

	incident, err := h.store.UpdateIncident(ctx, id, upd)
	if err != nil {
		h.respondError(c, log, "incident", err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// publishEvent queues a webhook event. Delivery is best effort and never
// fails the request.
func (h *Handler) publishEvent(c *gin.Context, eventType string, payload any, log *logrus.Entry) {
	event := webhook.Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
	if err := h.publisher.Publish(c.Request.Context(), event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}
