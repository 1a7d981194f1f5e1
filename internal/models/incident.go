package models

import "time"

// Incident statuses.
const (
	IncidentStatusOpen       = "Open"
	IncidentStatusInProgress = "In Progress"
	IncidentStatusCleared    = "Cleared"
)

// Incident severities.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Incident is a reported traffic incident. AssignedUnitID is a weak
// reference to a Unit; AssignedUnitName is a denormalized copy of the
// unit's name taken at assignment time.
type Incident struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Severity         string    `json:"severity"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	ReportedAt       time.Time `json:"reportedAt"`
	AssignedUnitID   string    `json:"assignedUnitId,omitempty"`
	AssignedUnitName string    `json:"assignedUnitName,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateIncident is the payload for creating an incident. Status defaults
// to Open and ReportedAt to the creation instant.
type CreateIncident struct {
	Type     string
	Severity string
	Location string
}

// IncidentUpdate carries the optional fields of a partial incident update.
// Nil fields are left untouched. Setting AssignedUnitID to a pointer to the
// empty string clears the assignment together with the denormalized name.
type IncidentUpdate struct {
	Type             *string
	Severity         *string
	Location         *string
	Status           *string
	AssignedUnitID   *string
	AssignedUnitName *string
}
