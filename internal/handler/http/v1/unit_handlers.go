package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

// @Summary List dispatch units
// @Description List all field units sorted by name.
// @Tags Units
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} UnitResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [get]
func (h *Handler) listUnits(c *gin.Context) {
	log := h.logger.WithField("method", "listUnits")

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	units, err := h.store.ListUnits(ctx)
	if err != nil {
		h.respondError(c, log, "unit", err)
		return
	}
	c.JSON(http.StatusOK, toUnitResponses(units))
}

// @Summary Get unit by ID
// @Tags Units
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} UnitResponse
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units/{id} [get]
func (h *Handler) getUnit(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getUnit").WithField("id", id)

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	unit, err := h.store.GetUnitByID(ctx, id)
	if err != nil {
		h.respondError(c, log, "unit", err)
		return
	}
	c.JSON(http.StatusOK, toUnitResponse(unit))
}

// @Summary Register a new unit
// @Description Register a field unit. New units start Available.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit body CreateUnitRequest true "Unit creation request"
// @Success 201 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [post]
func (h *Handler) createUnit(c *gin.Context) {
	var input CreateUnitRequest
	log := h.logger.WithField("method", "createUnit")

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

	unit, err := h.store.CreateUnit(ctx, models.CreateUnit{
		Name:     input.Name,
		Type:     input.Type,
		Location: input.Location,
	})
	if err != nil {
		h.respondError(c, log, "unit", err)
		return
	}
	c.JSON(http.StatusCreated, toUnitResponse(unit))
}

// @Summary Update a unit
// @Description Partially update a unit. The target id travels in the body; omitted fields are left untouched.
// @Tags Units
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param unit body UpdateUnitRequest true "Unit update request"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units [patch]
func (h *Handler) updateUnit(c *gin.Context) {
	var input UpdateUnitRequest
	log := h.logger.WithField("method", "updateUnit")

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

	unit, err := h.store.UpdateUnit(ctx, input.ID, models.UnitUpdate{
		Name:     input.Name,
		Status:   input.Status,
		Location: input.Location,
	})
	if err != nil {
		h.respondError(c, log.WithField("id", input.ID), "unit", err)
		return
	}
	c.JSON(http.StatusOK, toUnitResponse(unit))
}

// @Summary Delete a unit
// @Description Permanently remove a unit from the roster.
// @Tags Units
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Unit not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /units/{id} [delete]
func (h *Handler) deleteUnit(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteUnit").WithField("id", id)

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.store.DeleteUnit(ctx, id); err != nil {
		h.respondError(c, log, "unit", err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
