package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary Assign a unit to an incident
// @Description Link a unit to an incident: the incident moves to In Progress and records the unit, the unit moves to En Route. Rejected when the incident is Cleared or already has a unit.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dispatch body DispatchRequest true "Unit and incident pair"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Unit or incident not found"
// @Failure 409 {object} map[string]string "Conflict with current state"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/assign [post]
func (h *Handler) assignUnit(c *gin.Context) {
	log := h.logger.WithField("method", "assignUnit")

	input, ok := h.bindDispatch(c, log)
	if !ok {
		return
	}

	incident, unit, err := h.dispatch.Assign(c.Request.Context(), input.UnitID, input.IncidentID)
	if err != nil {
		h.respondError(c, log.WithField("unitId", input.UnitID).WithField("incidentId", input.IncidentID), "record", err)
		return
	}
	c.JSON(http.StatusOK, DispatchResponse{
		Incident: toIncidentResponse(incident),
		Unit:     toUnitResponse(unit),
	})
}

// @Summary Release a unit from an incident
// @Description Undo an assignment: the incident returns to Open with the assignment cleared, the unit returns to Available. Rejected when the incident is not assigned to that unit.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param dispatch body DispatchRequest true "Unit and incident pair"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Unit or incident not found"
// @Failure 409 {object} map[string]string "Conflict with current state"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dispatch/unassign [post]
func (h *Handler) unassignUnit(c *gin.Context) {
	log := h.logger.WithField("method", "unassignUnit")

	input, ok := h.bindDispatch(c, log)
	if !ok {
		return
	}

	incident, unit, err := h.dispatch.Unassign(c.Request.Context(), input.UnitID, input.IncidentID)
	if err != nil {
		h.respondError(c, log.WithField("unitId", input.UnitID).WithField("incidentId", input.IncidentID), "record", err)
		return
	}
	c.JSON(http.StatusOK, DispatchResponse{
		Incident: toIncidentResponse(incident),
		Unit:     toUnitResponse(unit),
	})
}

func (h *Handler) bindDispatch(c *gin.Context, log *logrus.Entry) (DispatchRequest, bool) {
	var input DispatchRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return input, false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return input, false
	}
	return input, true
}
