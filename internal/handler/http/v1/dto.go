package v1

import "time"

// CreateUnitRequest is the payload for POST /units.
type CreateUnitRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Type     string `json:"type" validate:"required,oneof='Patrol Car' 'Motorbike' 'Tow Truck' 'Supervisor'"`
	Location string `json:"location" validate:"required,max=255"`
}

// UpdateUnitRequest is the payload for PATCH /units; the target id travels
// in the body.
type UpdateUnitRequest struct {
	ID       string  `json:"id" validate:"required"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof='Available' 'En Route' 'On Scene' 'Unavailable'"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
}

// UnitResponse is the wire form of a unit.
type UnitResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// CreateIncidentRequest is the payload for POST /incidents.
type CreateIncidentRequest struct {
	Type     string `json:"type" validate:"required,max=255"`
	Severity string `json:"severity" validate:"required,oneof=Low Medium High Critical"`
	Location string `json:"location" validate:"required,max=255"`
}

// UpdateIncidentRequest is the payload for PATCH /incidents/{id}. An empty
// assignedUnitId clears the assignment.
type UpdateIncidentRequest struct {
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof='Open' 'In Progress' 'Cleared'"`
	AssignedUnitID   *string `json:"assignedUnitId,omitempty"`
	AssignedUnitName *string `json:"assignedUnitName,omitempty"`
}

// IncidentResponse is the wire form of an incident. Timestamps are
// RFC 3339.
type IncidentResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Severity         string    `json:"severity"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	ReportedAt       time.Time `json:"reportedAt"`
	AssignedUnitID   string    `json:"assignedUnitId,omitempty"`
	AssignedUnitName string    `json:"assignedUnitName,omitempty"`
}

// CreateAlertRequest is the payload for POST /alerts.
type CreateAlertRequest struct {
	Title  string `json:"title" validate:"required,min=2,max=255"`
	Detail string `json:"detail,omitempty" validate:"max=1000"`
	Level  string `json:"level" validate:"required,oneof=Advisory Warning Critical"`
}

// AlertResponse is the wire form of an alert.
type AlertResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	Level     string    `json:"level"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCameraRequest is the payload for POST /cameras.
type CreateCameraRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Img      string `json:"img,omitempty" validate:"max=500"`
	Location string `json:"location,omitempty" validate:"max=255"`
}

// UpdateCameraRequest is the payload for PATCH /cameras/{id}.
type UpdateCameraRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=Online Offline"`
	Img      *string `json:"img,omitempty" validate:"omitempty,max=500"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
}

// CameraResponse is the wire form of a camera.
type CameraResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Img      string `json:"img"`
	Location string `json:"location,omitempty"`
}

// TimingRequest carries signal phase durations in seconds.
type TimingRequest struct {
	Red    int `json:"red" validate:"required,gt=0,lte=300"`
	Yellow int `json:"yellow" validate:"required,gt=0,lte=60"`
	Green  int `json:"green" validate:"required,gt=0,lte=300"`
}

// CreateSignalRequest is the payload for POST /signals.
type CreateSignalRequest struct {
	Name     string         `json:"name" validate:"required,min=2,max=255"`
	Location string         `json:"location" validate:"required,max=255"`
	Timing   *TimingRequest `json:"timing,omitempty"`
}

// UpdateSignalRequest is the payload for PATCH /signals/{id}.
type UpdateSignalRequest struct {
	Name         *string        `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Location     *string        `json:"location,omitempty" validate:"omitempty,max=255"`
	CurrentState *string        `json:"currentState,omitempty" validate:"omitempty,oneof=Red Yellow Green"`
	Mode         *string        `json:"mode,omitempty" validate:"omitempty,oneof=Auto Manual Maintenance"`
	Timing       *TimingRequest `json:"timing,omitempty"`
}

// TimingResponse mirrors TimingRequest on the way out.
type TimingResponse struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
}

// SignalResponse is the wire form of a signal.
type SignalResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Location     string         `json:"location"`
	CurrentState string         `json:"currentState"`
	Mode         string         `json:"mode"`
	Timing       TimingResponse `json:"timing"`
	LastUpdated  time.Time      `json:"lastUpdated"`
}

// CreateTrafficDataRequest is the payload for POST /traffic-data.
type CreateTrafficDataRequest struct {
	Location        string  `json:"location" validate:"required,max=255"`
	AvgSpeed        float64 `json:"avgSpeed" validate:"gte=0,lte=300"`
	VehicleCount    int     `json:"vehicleCount" validate:"gte=0"`
	CongestionLevel float64 `json:"congestionLevel" validate:"gte=0,lte=100"`
}

// TrafficDataResponse is the wire form of a traffic reading.
type TrafficDataResponse struct {
	ID              string    `json:"id,omitempty"`
	Location        string    `json:"location"`
	AvgSpeed        float64   `json:"avgSpeed"`
	VehicleCount    int       `json:"vehicleCount,omitempty"`
	CongestionLevel float64   `json:"congestionLevel"`
	Timestamp       time.Time `json:"timestamp,omitzero"`
}

// DispatchRequest names the unit/incident pair for assign and unassign.
type DispatchRequest struct {
	UnitID     string `json:"unitId" validate:"required"`
	IncidentID string `json:"incidentId" validate:"required"`
}

// DispatchResponse returns both updated records after a dispatch
// transition.
type DispatchResponse struct {
	Incident *IncidentResponse `json:"incident"`
	Unit     *UnitResponse     `json:"unit"`
}

// KPIResponse is the dashboard metrics snapshot.
type KPIResponse struct {
	AvgSpeed        float64 `json:"avgSpeed"`
	IncidentsToday  int     `json:"incidentsToday"`
	CongestionLevel float64 `json:"congestionLevel"`
	CamerasOnline   int     `json:"camerasOnline"`
	CamerasTotal    int     `json:"camerasTotal"`
}

// DeleteResponse acknowledges a delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// HealthResponse reports store connectivity.
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}
