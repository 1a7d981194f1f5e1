package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

// @Summary List cameras
// @Description List all cameras sorted by name, including offline ones.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} CameraResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	log := h.logger.WithField("method", "listCameras")

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	cameras, err := h.store.ListCameras(ctx)
	if err != nil {
		h.respondError(c, log, "camera", err)
		return
	}
	c.JSON(http.StatusOK, toCameraResponses(cameras))
}

// @Summary Register a camera
// @Description Register a roadside camera. New cameras start Online.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param camera body CreateCameraRequest true "Camera creation request"
// @Success 201 {object} CameraResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras [post]
func (h *Handler) createCamera(c *gin.Context) {
	var input CreateCameraRequest
	log := h.logger.WithField("method", "createCamera")

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

	camera, err := h.store.CreateCamera(ctx, models.CreateCamera{
		Name:     input.Name,
		Img:      input.Img,
		Location: input.Location,
	})
	if err != nil {
		h.respondError(c, log, "camera", err)
		return
	}
	c.JSON(http.StatusCreated, toCameraResponse(camera))
}

// @Summary Update a camera
// @Description Partially update a camera. Omitted fields are left untouched.
// @Tags Cameras
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Param camera body UpdateCameraRequest true "Camera update request"
// @Success 200 {object} CameraResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Camera not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras/{id} [patch]
func (h *Handler) updateCamera(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateCamera").WithField("id", id)

	var input UpdateCameraRequest
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

	camera, err := h.store.UpdateCamera(ctx, id, models.CameraUpdate{
		Name:     input.Name,
		Status:   input.Status,
		Img:      input.Img,
		Location: input.Location,
	})
	if err != nil {
		h.respondError(c, log, "camera", err)
		return
	}
	c.JSON(http.StatusOK, toCameraResponse(camera))
}

// @Summary Decommission a camera
// @Description Soft-delete a camera. The record is kept with status Offline so dashboards can still show it.
// @Tags Cameras
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} map[string]string "Camera not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras/{id} [delete]
func (h *Handler) deleteCamera(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteCamera").WithField("id", id)

	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.store.DeleteCamera(ctx, id); err != nil {
		h.respondError(c, log, "camera", err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}
