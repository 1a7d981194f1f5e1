package service

import (
	"context"
	"time"

	"github.com/shenikar/traffic_ops_console/internal/models"
)

// Store is the persistence contract for all console entities. Two
// implementations exist: a PostgreSQL store and an in-memory fallback
// seeded with demo data, selected once at startup. Services and handlers
// are written against this interface only.
//
// Create methods assign the record id and fill default mutable fields;
// a colliding id is rejected with models.ErrDuplicateID and retried by the
// implementation with a fresh id. Update methods merge only the non-nil
// fields of the update struct and refresh the record's updated timestamp,
// returning models.ErrNotFound when the id has no record. An unreachable
// backing store surfaces as models.ErrStoreUnavailable.
type Store interface {
	// Units, sorted by name ascending. DeleteUnit is a hard delete.
	ListUnits(ctx context.Context) ([]*models.Unit, error)
	GetUnitByID(ctx context.Context, id string) (*models.Unit, error)
	CreateUnit(ctx context.Context, in models.CreateUnit) (*models.Unit, error)
	UpdateUnit(ctx context.Context, id string, upd models.UnitUpdate) (*models.Unit, error)
	DeleteUnit(ctx context.Context, id string) error

	// Incidents, sorted by reportedAt descending, capped at 200.
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	GetIncidentByID(ctx context.Context, id string) (*models.Incident, error)
	CreateIncident(ctx context.Context, in models.CreateIncident) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error)

	// Alerts: active only, createdAt descending, capped at 50.
	// DeactivateAlert is the delete operation for alerts.
	ListActiveAlerts(ctx context.Context) ([]*models.Alert, error)
	CreateAlert(ctx context.Context, in models.CreateAlert) (*models.Alert, error)
	DeactivateAlert(ctx context.Context, id string) error

	// Cameras, sorted by name ascending. DeleteCamera is a soft delete:
	// the record is kept with status Offline.
	ListCameras(ctx context.Context) ([]*models.Camera, error)
	GetCameraByID(ctx context.Context, id string) (*models.Camera, error)
	CreateCamera(ctx context.Context, in models.CreateCamera) (*models.Camera, error)
	UpdateCamera(ctx context.Context, id string, upd models.CameraUpdate) (*models.Camera, error)
	DeleteCamera(ctx context.Context, id string) error

	// Signals, sorted by name ascending.
	ListSignals(ctx context.Context) ([]*models.Signal, error)
	GetSignalByID(ctx context.Context, id string) (*models.Signal, error)
	CreateSignal(ctx context.Context, in models.CreateSignal) (*models.Signal, error)
	UpdateSignal(ctx context.Context, id string, upd models.SignalUpdate) (*models.Signal, error)

	// Traffic readings. LatestTrafficData returns the newest reading per
	// location.
	LatestTrafficData(ctx context.Context) ([]*models.TrafficData, error)
	CreateTrafficData(ctx context.Context, in models.CreateTrafficData) (*models.TrafficData, error)

	// Aggregates for the KPI service. The averages cover readings within
	// the trailing window and return 0 when the window is empty.
	AverageSpeed(ctx context.Context, window time.Duration) (float64, error)
	AvgCongestion(ctx context.Context, window time.Duration) (float64, error)
	CountIncidentsSince(ctx context.Context, since time.Time) (int, error)
	CameraAvailability(ctx context.Context) (online int, total int, err error)

	// Ping reports store connectivity; Mode names the implementation
	// ("postgres" or "memory").
	Ping(ctx context.Context) error
	Mode() string
}
