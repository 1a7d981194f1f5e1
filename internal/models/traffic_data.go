package models

import "time"

// TrafficData is a single sensor reading for one location. The KPI
// aggregator averages these over a rolling window.
type TrafficData struct {
	ID              string    `json:"id"`
	Location        string    `json:"location"`
	AvgSpeed        float64   `json:"avgSpeed"`
	VehicleCount    int       `json:"vehicleCount"`
	CongestionLevel float64   `json:"congestionLevel"`
	Timestamp       time.Time `json:"timestamp"`
}

// CreateTrafficData is the payload for ingesting a reading.
type CreateTrafficData struct {
	Location        string
	AvgSpeed        float64
	VehicleCount    int
	CongestionLevel float64
}
