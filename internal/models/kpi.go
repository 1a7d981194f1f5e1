package models

// KPISnapshot is a point-in-time aggregate of operational metrics.
type KPISnapshot struct {
	AvgSpeed        float64 `json:"avgSpeed"`
	IncidentsToday  int     `json:"incidentsToday"`
	CongestionLevel float64 `json:"congestionLevel"`
	CamerasOnline   int     `json:"camerasOnline"`
	CamerasTotal    int     `json:"camerasTotal"`
}
