package repository

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/traffic_ops_console/internal/config"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/service"
	"github.com/shenikar/traffic_ops_console/internal/webhook"
)

func newTestStore(t *testing.T) service.Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewMemoryStore(logger)
}

func newSeededTestStore(t *testing.T) service.Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewSeededMemoryStore(logger)
}

func TestSeededStore_Dataset(t *testing.T) {
	store := newSeededTestStore(t)
	ctx := context.Background()

	units, err := store.ListUnits(ctx)
	require.NoError(t, err)
	assert.Len(t, units, 5)

	incidents, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	assert.Len(t, incidents, 3)

	alerts, err := store.ListActiveAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 3)

	cameras, err := store.ListCameras(ctx)
	require.NoError(t, err)
	assert.Len(t, cameras, 4)

	online, total, err := store.CameraAvailability(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, online)
	assert.Equal(t, 4, total)

	// The seeded breakdown is already paired with its motorbike.
	incident, err := store.GetIncidentByID(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusInProgress, incident.Status)
	assert.Equal(t, "u2", incident.AssignedUnitID)
}

func TestCreateUnit_DefaultsAndPrefix(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	unit, err := store.CreateUnit(ctx, models.CreateUnit{
		Name:     "Unit 99",
		Type:     models.UnitTypePatrolCar,
		Location: "Garage 2",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(unit.ID, "u"))
	assert.Len(t, unit.ID, 7)
	assert.Equal(t, models.UnitStatusAvailable, unit.Status)
	assert.False(t, unit.CreatedAt.IsZero())
}

func TestUpdateUnit_PartialMerge(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	unit, err := store.CreateUnit(ctx, models.CreateUnit{
		Name:     "Unit 99",
		Type:     models.UnitTypeTowTruck,
		Location: "Depot",
	})
	require.NoError(t, err)

	onScene := models.UnitStatusOnScene
	updated, err := store.UpdateUnit(ctx, unit.ID, models.UnitUpdate{Status: &onScene})

	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusOnScene, updated.Status)
	assert.Equal(t, unit.Name, updated.Name)
	assert.Equal(t, unit.Location, updated.Location)
}

func TestUpdateUnit_EmptyUpdateTouchesNothingButTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	unit, err := store.CreateUnit(ctx, models.CreateUnit{
		Name: "Unit 1", Type: models.UnitTypeMotorbike, Location: "HQ",
	})
	require.NoError(t, err)

	updated, err := store.UpdateUnit(ctx, unit.ID, models.UnitUpdate{})

	require.NoError(t, err)
	assert.Equal(t, unit.Name, updated.Name)
	assert.Equal(t, unit.Status, updated.Status)
	assert.Equal(t, unit.Location, updated.Location)
}

func TestDeleteUnit_HardDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	unit, err := store.CreateUnit(ctx, models.CreateUnit{
		Name: "Unit 1", Type: models.UnitTypePatrolCar, Location: "HQ",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteUnit(ctx, unit.ID))

	_, err = store.GetUnitByID(ctx, unit.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.ErrorIs(t, store.DeleteUnit(ctx, unit.ID), models.ErrNotFound)
}

func TestListUnits_SortedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Unit C", "Unit A", "Unit B"} {
		_, err := store.CreateUnit(ctx, models.CreateUnit{
			Name: name, Type: models.UnitTypePatrolCar, Location: "HQ",
		})
		require.NoError(t, err)
	}

	units, err := store.ListUnits(ctx)
	require.NoError(t, err)

	names := make([]string, len(units))
	for i, u := range units {
		names[i] = u.Name
	}
	assert.True(t, sort.StringsAreSorted(names))
}

func TestCreateIncident_Defaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	incident, err := store.CreateIncident(ctx, models.CreateIncident{
		Type:     "Accident",
		Severity: models.SeverityCritical,
		Location: "Bridge St",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(incident.ID, "i"))
	assert.Equal(t, models.IncidentStatusOpen, incident.Status)
	assert.Empty(t, incident.AssignedUnitID)
	assert.WithinDuration(t, time.Now().UTC(), incident.ReportedAt, time.Minute)
}

func TestListIncidents_NewestFirst(t *testing.T) {
	store := newSeededTestStore(t)
	ctx := context.Background()

	incidents, err := store.ListIncidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 3)

	for i := 1; i < len(incidents); i++ {
		assert.False(t, incidents[i-1].ReportedAt.Before(incidents[i].ReportedAt))
	}
}

func TestUpdateIncident_ClearAssignment(t *testing.T) {
	store := newSeededTestStore(t)
	ctx := context.Background()

	empty := ""
	open := models.IncidentStatusOpen
	updated, err := store.UpdateIncident(ctx, "i2", models.IncidentUpdate{
		Status:         &open,
		AssignedUnitID: &empty,
	})

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusOpen, updated.Status)
	assert.Empty(t, updated.AssignedUnitID)
	assert.Empty(t, updated.AssignedUnitName)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	status := models.IncidentStatusCleared
	_, err := store.UpdateIncident(ctx, "i000000", models.IncidentUpdate{Status: &status})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAlertLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alert, err := store.CreateAlert(ctx, models.CreateAlert{
		Title: "Fog bank",
		Level: models.AlertLevelAdvisory,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(alert.ID, "a"))
	assert.True(t, alert.IsActive)

	require.NoError(t, store.DeactivateAlert(ctx, alert.ID))

	// Deactivation keeps the record but hides it from the active list.
	alerts, err := store.ListActiveAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	assert.ErrorIs(t, store.DeactivateAlert(ctx, "a000000"), models.ErrNotFound)
}

func TestListActiveAlerts_Cap(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < alertListCap+10; i++ {
		_, err := store.CreateAlert(ctx, models.CreateAlert{
			Title: "Alert",
			Level: models.AlertLevelWarning,
		})
		require.NoError(t, err)
	}

	alerts, err := store.ListActiveAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, alertListCap)
}

func TestDeleteCamera_SoftDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	camera, err := store.CreateCamera(ctx, models.CreateCamera{Name: "Cam 88"})
	require.NoError(t, err)
	assert.Equal(t, models.CameraStatusOnline, camera.Status)

	require.NoError(t, store.DeleteCamera(ctx, camera.ID))

	got, err := store.GetCameraByID(ctx, camera.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CameraStatusOffline, got.Status)

	cameras, err := store.ListCameras(ctx)
	require.NoError(t, err)
	assert.Len(t, cameras, 1)
}

func TestCreateSignal_Defaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	signal, err := store.CreateSignal(ctx, models.CreateSignal{
		Name:     "Signal 5th & Pine",
		Location: "5th & Pine",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signal.ID, "s"))
	assert.Equal(t, models.SignalStateGreen, signal.CurrentState)
	assert.Equal(t, models.SignalModeAuto, signal.Mode)
	assert.Equal(t, models.DefaultSignalTiming(), signal.Timing)
	assert.False(t, signal.LastUpdated.IsZero())
}

func TestUpdateSignal_RefreshesLastUpdated(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	signal, err := store.CreateSignal(ctx, models.CreateSignal{
		Name: "Signal A", Location: "A & B",
	})
	require.NoError(t, err)

	manual := models.SignalModeManual
	red := models.SignalStateRed
	updated, err := store.UpdateSignal(ctx, signal.ID, models.SignalUpdate{
		Mode:         &manual,
		CurrentState: &red,
	})

	require.NoError(t, err)
	assert.Equal(t, models.SignalModeManual, updated.Mode)
	assert.Equal(t, models.SignalStateRed, updated.CurrentState)
	assert.Equal(t, signal.Timing, updated.Timing)
	assert.False(t, updated.LastUpdated.Before(signal.LastUpdated))
}

func TestLatestTrafficData_OneReadingPerLocation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateTrafficData(ctx, models.CreateTrafficData{
		Location: "I-90 EB", AvgSpeed: 30, VehicleCount: 100, CongestionLevel: 70,
	})
	require.NoError(t, err)
	second, err := store.CreateTrafficData(ctx, models.CreateTrafficData{
		Location: "I-90 EB", AvgSpeed: 48, VehicleCount: 60, CongestionLevel: 35,
	})
	require.NoError(t, err)
	_, err = store.CreateTrafficData(ctx, models.CreateTrafficData{
		Location: "Main St", AvgSpeed: 25, VehicleCount: 40, CongestionLevel: 55,
	})
	require.NoError(t, err)

	latest, err := store.LatestTrafficData(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	byLocation := make(map[string]*models.TrafficData)
	for _, td := range latest {
		byLocation[td.Location] = td
	}
	assert.Equal(t, second.ID, byLocation["I-90 EB"].ID)
}

func TestWindowAverages(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateTrafficData(ctx, models.CreateTrafficData{
		Location: "A", AvgSpeed: 40, CongestionLevel: 20,
	})
	require.NoError(t, err)
	_, err = store.CreateTrafficData(ctx, models.CreateTrafficData{
		Location: "B", AvgSpeed: 60, CongestionLevel: 40,
	})
	require.NoError(t, err)

	speed, err := store.AverageSpeed(ctx, time.Hour)
	require.NoError(t, err)
	assert.InDelta(t, 50, speed, 0.001)

	congestion, err := store.AvgCongestion(ctx, time.Hour)
	require.NoError(t, err)
	assert.InDelta(t, 30, congestion, 0.001)
}

func TestWindowAverages_EmptyWindowIsZero(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	speed, err := store.AverageSpeed(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, speed)

	congestion, err := store.AvgCongestion(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, congestion)
}

func TestCountIncidentsSince(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateIncident(ctx, models.CreateIncident{
		Type: "Accident", Severity: models.SeverityLow, Location: "X",
	})
	require.NoError(t, err)

	count, err := store.CountIncidentsSince(ctx, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.CountIncidentsSince(ctx, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryStore_Health(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
	assert.Equal(t, "memory", store.Mode())
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUnit(ctx, models.CreateUnit{
		Name:     "Unit 42",
		Type:     models.UnitTypeTowTruck,
		Location: "Yard 1",
	})
	require.NoError(t, err)

	got, err := store.GetUnitByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDispatchFlow_AssignThenUnassignRestoresState(t *testing.T) {
	store := newSeededTestStore(t)
	ctx := context.Background()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{StoreTimeout: 5 * time.Second}
	dispatch := service.NewDispatchService(store, logger, cfg, webhook.NoopPublisher{})

	unitBefore, err := store.GetUnitByID(ctx, "u1")
	require.NoError(t, err)
	incidentBefore, err := store.GetIncidentByID(ctx, "i1")
	require.NoError(t, err)

	incident, unit, err := dispatch.Assign(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusInProgress, incident.Status)
	assert.Equal(t, "u1", incident.AssignedUnitID)
	assert.Equal(t, unitBefore.Name, incident.AssignedUnitName)
	assert.Equal(t, models.UnitStatusEnRoute, unit.Status)

	incident, unit, err = dispatch.Unassign(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Equal(t, incidentBefore.Status, incident.Status)
	assert.Empty(t, incident.AssignedUnitID)
	assert.Empty(t, incident.AssignedUnitName)
	assert.Equal(t, unitBefore.Status, unit.Status)
}
