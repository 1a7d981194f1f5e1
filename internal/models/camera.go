package models

import "time"

// Camera statuses.
const (
	CameraStatusOnline  = "Online"
	CameraStatusOffline = "Offline"
)

// Camera is a roadside camera feed. Deleting a camera is a soft delete:
// the record is kept with status Offline.
type Camera struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Img       string    `json:"img"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCamera is the payload for creating a camera. Status defaults to
// Online.
type CreateCamera struct {
	Name     string
	Img      string
	Location string
}

// CameraUpdate carries the optional fields of a partial camera update.
type CameraUpdate struct {
	Name     *string
	Status   *string
	Img      *string
	Location *string
}
