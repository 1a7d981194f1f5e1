package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all v1 API routes onto the given group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	units := api.Group("/units")
	{
		units.GET("", h.listUnits)
		units.POST("", h.createUnit)
		units.PATCH("", h.updateUnit)
		units.GET("/:id", h.getUnit)
		units.DELETE("/:id", h.deleteUnit)
	}

	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.POST("", h.createAlert)
		alerts.DELETE("/:id", h.deleteAlert)
	}

	cameras := api.Group("/cameras")
	{
		cameras.GET("", h.listCameras)
		cameras.POST("", h.createCamera)
		cameras.PATCH("/:id", h.updateCamera)
		cameras.DELETE("/:id", h.deleteCamera)
	}

	signals := api.Group("/signals")
	{
		signals.GET("", h.listSignals)
		signals.POST("", h.createSignal)
		signals.PATCH("/:id", h.updateSignal)
	}

	trafficData := api.Group("/traffic-data")
	{
		trafficData.GET("", h.listTrafficData)
		trafficData.POST("", h.createTrafficData)
	}

	dispatch := api.Group("/dispatch")
	{
		dispatch.POST("/assign", h.assignUnit)
		dispatch.POST("/unassign", h.unassignUnit)
	}

	api.GET("/kpi", h.getKPI)
	api.GET("/health/db", h.healthDB)
}
