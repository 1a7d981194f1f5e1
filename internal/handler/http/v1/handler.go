package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/traffic_ops_console/internal/config"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/service"
	"github.com/shenikar/traffic_ops_console/internal/webhook"
)

// Handler serves the console REST API. Simple CRUD goes straight to the
// entity store; the dispatch workflow and KPI snapshot go through their
// services.
type Handler struct {
	store     service.Store
	dispatch  service.DispatchService
	kpi       service.KPIService
	publisher webhook.Publisher
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(store service.Store, dispatch service.DispatchService, kpi service.KPIService,
	publisher webhook.Publisher, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		dispatch:  dispatch,
		kpi:       kpi,
		publisher: publisher,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// storeCtx bounds one store call to the configured timeout.
func (h *Handler) storeCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.StoreTimeout)
}

// respondError maps sentinel errors onto HTTP statuses. Anything
// unrecognized becomes a generic 500; details stay in the server logs.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, kind string, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": kind + " not found"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict with current state"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get store health
// @Description Reports backing store connectivity and which store implementation is active.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health/db [get]
func (h *Handler) healthDB(c *gin.Context) {
	ctx, cancel := h.storeCtx(c)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.WithError(err).Warn("Store health check failed")
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Mode: h.store.Mode()})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Mode: h.store.Mode()})
}
