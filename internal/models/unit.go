package models

import "time"

// Unit statuses. Transitions are unconstrained: dispatchers may force any
// status from the console.
const (
	UnitStatusAvailable   = "Available"
	UnitStatusEnRoute     = "En Route"
	UnitStatusOnScene     = "On Scene"
	UnitStatusUnavailable = "Unavailable"
)

// Unit types.
const (
	UnitTypePatrolCar  = "Patrol Car"
	UnitTypeMotorbike  = "Motorbike"
	UnitTypeTowTruck   = "Tow Truck"
	UnitTypeSupervisor = "Supervisor"
)

// Unit is a dispatchable field unit (patrol car, tow truck, ...).
type Unit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateUnit is the payload for creating a unit. Status defaults to
// Available.
type CreateUnit struct {
	Name     string
	Type     string
	Location string
}

// UnitUpdate carries the optional fields of a partial unit update.
// Nil fields are left untouched.
type UnitUpdate struct {
	Name     *string
	Status   *string
	Location *string
}
