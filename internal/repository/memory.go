package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/service"
)

const (
	incidentListCap = 200
	alertListCap    = 50
)

// MemoryStore is the in-process fallback used when no database is
// configured. It mirrors the persisted store's contract, including delete
// semantics (camera soft delete, alert deactivation), and is guarded by a
// RWMutex so concurrent requests are safe. Contents do not survive a
// restart.
type MemoryStore struct {
	mu        sync.RWMutex
	units     map[string]*models.Unit
	incidents map[string]*models.Incident
	alerts    map[string]*models.Alert
	cameras   map[string]*models.Camera
	signals   map[string]*models.Signal
	readings  map[string]*models.TrafficData
	logger    *logrus.Logger
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore(logger *logrus.Logger) service.Store {
	return &MemoryStore{
		units:     make(map[string]*models.Unit),
		incidents: make(map[string]*models.Incident),
		alerts:    make(map[string]*models.Alert),
		cameras:   make(map[string]*models.Camera),
		signals:   make(map[string]*models.Signal),
		readings:  make(map[string]*models.TrafficData),
		logger:    logger,
	}
}

// NewSeededMemoryStore returns an in-memory store preloaded with the demo
// dataset shown by the console in preview mode.
func NewSeededMemoryStore(logger *logrus.Logger) service.Store {
	s := NewMemoryStore(logger).(*MemoryStore)
	s.seed(time.Now().UTC())
	return s
}

func (s *MemoryStore) seed(now time.Time) {
	units := []*models.Unit{
		{ID: "u1", Name: "Unit 07 - Patrol Car", Type: models.UnitTypePatrolCar, Status: models.UnitStatusAvailable, Location: "5th & Pine"},
		{ID: "u2", Name: "Unit 12 - Motorbike", Type: models.UnitTypeMotorbike, Status: models.UnitStatusOnScene, Location: "Main & 2nd"},
		{ID: "u3", Name: "Unit 21 - Patrol Car", Type: models.UnitTypePatrolCar, Status: models.UnitStatusAvailable, Location: "Broadway & Oak"},
		{ID: "u4", Name: "Tow 03 - Tow Truck", Type: models.UnitTypeTowTruck, Status: models.UnitStatusUnavailable, Location: "Depot"},
		{ID: "u5", Name: "Supervisor 1", Type: models.UnitTypeSupervisor, Status: models.UnitStatusAvailable, Location: "HQ"},
	}
	for _, u := range units {
		u.CreatedAt, u.UpdatedAt = now, now
		s.units[u.ID] = u
	}

	incidents := []*models.Incident{
		{ID: "i1", Type: "Accident", Severity: models.SeverityHigh, Location: "I-405 S @ Exit 12", Status: models.IncidentStatusOpen, ReportedAt: now.Add(-15 * time.Minute)},
		{ID: "i2", Type: "Breakdown", Severity: models.SeverityMedium, Location: "Main & 2nd", Status: models.IncidentStatusInProgress, ReportedAt: now.Add(-45 * time.Minute), AssignedUnitID: "u2", AssignedUnitName: "Unit 12 - Motorbike"},
		{ID: "i3", Type: "Roadwork", Severity: models.SeverityLow, Location: "3rd Ave", Status: models.IncidentStatusOpen, ReportedAt: now.Add(-2 * time.Hour)},
	}
	for _, i := range incidents {
		i.CreatedAt, i.UpdatedAt = i.ReportedAt, i.ReportedAt
		s.incidents[i.ID] = i
	}

	alerts := []*models.Alert{
		{ID: "a1", Title: "Multi-vehicle collision", Detail: "I-405 S at Exit 12: left two lanes blocked.", Level: models.AlertLevelCritical, CreatedAt: now.Add(-8 * time.Minute)},
		{ID: "a2", Title: "Roadwork started", Detail: "3rd Ave maintenance - expect delays.", Level: models.AlertLevelWarning, CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "a3", Title: "Heavy rain", Detail: "Reduced visibility reported in downtown.", Level: models.AlertLevelAdvisory, CreatedAt: now.Add(-65 * time.Minute)},
	}
	for _, a := range alerts {
		a.IsActive = true
		s.alerts[a.ID] = a
	}

	cameras := []*models.Camera{
		{ID: "c1", Name: "Cam 12 - 5th & Pine", Status: models.CameraStatusOnline, Img: "/traffic-camera-intersection.png"},
		{ID: "c2", Name: "Cam 27 - I-90 EB", Status: models.CameraStatusOnline, Img: "/highway-traffic-camera.png"},
		{ID: "c3", Name: "Cam 03 - Downtown", Status: models.CameraStatusOffline, Img: "/offline-city-camera.png"},
		{ID: "c4", Name: "Cam 45 - Stadium", Status: models.CameraStatusOnline, Img: "/stadium-traffic-camera.png"},
	}
	for _, c := range cameras {
		c.CreatedAt, c.UpdatedAt = now, now
		s.cameras[c.ID] = c
	}
}

// newID generates ids until one is free in the given key set. Collisions
// at this scale are close to impossible but never overwrite.
func newID[T any](prefix string, existing map[string]T) string {
	for {
		id := idgen.New(prefix)
		if _, ok := existing[id]; !ok {
			return id
		}
	}
}

// --- Units ---

func (s *MemoryStore) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Unit, 0, len(s.units))
	for _, u := range s.units {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetUnitByID(ctx context.Context, id string) (*models.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.units[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) CreateUnit(ctx context.Context, in models.CreateUnit) (*models.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	u := &models.Unit{
		ID:        newID(idgen.PrefixUnit, s.units),
		Name:      in.Name,
		Type:      in.Type,
		Status:    models.UnitStatusAvailable,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.units[u.ID] = u
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) UpdateUnit(ctx context.Context, id string, upd models.UnitUpdate) (*models.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) DeleteUnit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.units, id)
	return nil
}

// --- Incidents ---

func (s *MemoryStore) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Incident, 0, len(s.incidents))
	for _, i := range s.incidents {
		cp := *i
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	if len(out) > incidentListCap {
		out = out[:incidentListCap]
	}
	return out, nil
}

func (s *MemoryStore) GetIncidentByID(ctx context.Context, id string) (*models.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.incidents[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (s *MemoryStore) CreateIncident(ctx context.Context, in models.CreateIncident) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	i := &models.Incident{
		ID:         newID(idgen.PrefixIncident, s.incidents),
		Type:       in.Type,
		Severity:   in.Severity,
		Location:   in.Location,
		Status:     models.IncidentStatusOpen,
		ReportedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.incidents[i.ID] = i
	cp := *i
	return &cp, nil
}

func (s *MemoryStore) UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.incidents[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if upd.Type != nil {
		i.Type = *upd.Type
	}
	if upd.Severity != nil {
		i.Severity = *upd.Severity
	}
	if upd.Location != nil {
		i.Location = *upd.Location
	}
	if upd.Status != nil {
		i.Status = *upd.Status
	}
	if upd.AssignedUnitID != nil {
		if *upd.AssignedUnitID == "" {
			i.AssignedUnitID = ""
			i.AssignedUnitName = ""
		} else {
			i.AssignedUnitID = *upd.AssignedUnitID
		}
	}
	if upd.AssignedUnitName != nil {
		i.AssignedUnitName = *upd.AssignedUnitName
	}
	i.UpdatedAt = time.Now().UTC()
	cp := *i
	return &cp, nil
}

// --- Alerts ---

func (s *MemoryStore) ListActiveAlerts(ctx context.Context) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if !a.IsActive {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > alertListCap {
		out = out[:alertListCap]
	}
	return out, nil
}

func (s *MemoryStore) CreateAlert(ctx context.Context, in models.CreateAlert) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &models.Alert{
		ID:        newID(idgen.PrefixAlert, s.alerts),
		Title:     in.Title,
		Detail:    in.Detail,
		Level:     in.Level,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.alerts[a.ID] = a
	cp := *a
	return &cp, nil
}

func (s *MemoryStore) DeactivateAlert(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return models.ErrNotFound
	}
	a.IsActive = false
	return nil
}

// --- Cameras ---

func (s *MemoryStore) ListCameras(ctx context.Context) ([]*models.Camera, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Camera, 0, len(s.cameras))
	for _, c := range s.cameras {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetCameraByID(ctx context.Context, id string) (*models.Camera, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cameras[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) CreateCamera(ctx context.Context, in models.CreateCamera) (*models.Camera, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	c := &models.Camera{
		ID:        newID(idgen.PrefixCamera, s.cameras),
		Name:      in.Name,
		Status:    models.CameraStatusOnline,
		Img:       in.Img,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.cameras[c.ID] = c
	cp := *c
	return &cp, nil
}

func (s *MemoryStore) UpdateCamera(ctx context.Context, id string, upd models.CameraUpdate) (*models.Camera, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cameras[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Img != nil {
		c.Img = *upd.Img
	}
	if upd.Location != nil {
		c.Location = *upd.Location
	}
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	return &cp, nil
}

// DeleteCamera keeps the record and marks it Offline, matching the
// persisted store.
func (s *MemoryStore) DeleteCamera(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cameras[id]
	if !ok {
		return models.ErrNotFound
	}
	c.Status = models.CameraStatusOffline
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// --- Signals ---

func (s *MemoryStore) ListSignals(ctx context.Context) ([]*models.Signal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Signal, 0, len(s.signals))
	for _, sig := range s.signals {
		cp := *sig
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStore) GetSignalByID(ctx context.Context, id string) (*models.Signal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sig, ok := s.signals[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *sig
	return &cp, nil
}

func (s *MemoryStore) CreateSignal(ctx context.Context, in models.CreateSignal) (*models.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	timing := models.DefaultSignalTiming()
	if in.Timing != nil {
		timing = *in.Timing
	}
	sig := &models.Signal{
		ID:           newID(idgen.PrefixSignal, s.signals),
		Name:         in.Name,
		Location:     in.Location,
		CurrentState: models.SignalStateGreen,
		Mode:         models.SignalModeAuto,
		Timing:       timing,
		LastUpdated:  now,
		CreatedAt:    now,
	}
	s.signals[sig.ID] = sig
	cp := *sig
	return &cp, nil
}

func (s *MemoryStore) UpdateSignal(ctx context.Context, id string, upd models.SignalUpdate) (*models.Signal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sig, ok := s.signals[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if upd.Name != nil {
		sig.Name = *upd.Name
	}
	if upd.Location != nil {
		sig.Location = *upd.Location
	}
	if upd.CurrentState != nil {
		sig.CurrentState = *upd.CurrentState
	}
	if upd.Mode != nil {
		sig.Mode = *upd.Mode
	}
	if upd.Timing != nil {
		sig.Timing = *upd.Timing
	}
	sig.LastUpdated = time.Now().UTC()
	cp := *sig
	return &cp, nil
}

// --- Traffic readings ---

func (s *MemoryStore) LatestTrafficData(ctx context.Context) ([]*models.TrafficData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	latest := make(map[string]*models.TrafficData)
	for _, td := range s.readings {
		cur, ok := latest[td.Location]
		if !ok || td.Timestamp.After(cur.Timestamp) {
			latest[td.Location] = td
		}
	}
	out := make([]*models.TrafficData, 0, len(latest))
	for _, td := range latest {
		cp := *td
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out, nil
}

func (s *MemoryStore) CreateTrafficData(ctx context.Context, in models.CreateTrafficData) (*models.TrafficData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	td := &models.TrafficData{
		ID:              newID(idgen.PrefixTrafficData, s.readings),
		Location:        in.Location,
		AvgSpeed:        in.AvgSpeed,
		VehicleCount:    in.VehicleCount,
		CongestionLevel: in.CongestionLevel,
		Timestamp:       time.Now().UTC(),
	}
	s.readings[td.ID] = td
	cp := *td
	return &cp, nil
}

// --- KPI aggregates ---

func (s *MemoryStore) AverageSpeed(ctx context.Context, window time.Duration) (float64, error) {
	return s.windowAvg(window, func(td *models.TrafficData) float64 { return td.AvgSpeed })
}

func (s *MemoryStore) AvgCongestion(ctx context.Context, window time.Duration) (float64, error) {
	return s.windowAvg(window, func(td *models.TrafficData) float64 { return td.CongestionLevel })
}

func (s *MemoryStore) windowAvg(window time.Duration, value func(*models.TrafficData) float64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cutoff := time.Now().UTC().Add(-window)
	var sum float64
	var n int
	for _, td := range s.readings {
		if td.Timestamp.Before(cutoff) {
			continue
		}
		sum += value(td)
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

func (s *MemoryStore) CountIncidentsSince(ctx context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	for _, i := range s.incidents {
		if !i.ReportedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CameraAvailability(ctx context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var online int
	for _, c := range s.cameras {
		if c.Status == models.CameraStatusOnline {
			online++
		}
	}
	return online, len(s.cameras), nil
}

// --- Health ---

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Mode() string { return "memory" }
