package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/traffic_ops_console/internal/config"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/service/mocks"
	webhook_mocks "github.com/shenikar/traffic_ops_console/internal/webhook/mocks"
)

type testMocks struct {
	store     *mocks.MockStore
	dispatch  *mocks.MockDispatchService
	kpi       *mocks.MockKPIService
	publisher *webhook_mocks.MockPublisher
}

func newTestHandler(t *testing.T) (testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		store:     mocks.NewMockStore(ctrl),
		dispatch:  mocks.NewMockDispatchService(ctrl),
		kpi:       mocks.NewMockKPIService(ctrl),
		publisher: webhook_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		StoreTimeout:           5 * time.Second,
	}

	handler := NewHandler(m.store, m.dispatch, m.kpi, m.publisher, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestListUnits_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().ListUnits(gomock.Any()).Return([]*models.Unit{
		{ID: "u1a2b3c", Name: "Unit 12", Type: models.UnitTypePatrolCar, Status: models.UnitStatusAvailable, Location: "HQ"},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/units", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "u1a2b3c", resp[0].ID)
}

func TestCreateUnit_Success(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().
		CreateUnit(gomock.Any(), models.CreateUnit{Name: "Unit 99", Type: models.UnitTypeTowTruck, Location: "Depot"}).
		Return(&models.Unit{
			ID: "uqwerty", Name: "Unit 99", Type: models.UnitTypeTowTruck,
			Status: models.UnitStatusAvailable, Location: "Depot",
		}, nil)

	body := jsonBody(t, CreateUnitRequest{Name: "Unit 99", Type: "Tow Truck", Location: "Depot"})
	w := makeRequest(router, http.MethodPost, "/api/v1/units", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp UnitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "uqwerty", resp.ID)
	assert.Equal(t, models.UnitStatusAvailable, resp.Status)
}

func TestCreateUnit_InvalidType(t *testing.T) {
	_, router := newTestHandler(t)

	body := jsonBody(t, CreateUnitRequest{Name: "Unit 99", Type: "Helicopter", Location: "Depot"})
	w := makeRequest(router, http.MethodPost, "/api/v1/units", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUnit_IDInBody(t *testing.T) {
	m, router := newTestHandler(t)

	status := models.UnitStatusUnavailable
	m.store.EXPECT().
		UpdateUnit(gomock.Any(), "u1a2b3c", gomock.Any()).
		DoAndReturn(func(_ any, id string, upd models.UnitUpdate) (*models.Unit, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, status, *upd.Status)
			assert.Nil(t, upd.Name)
			return &models.Unit{ID: id, Name: "Unit 12", Status: status}, nil
		})

	body := jsonBody(t, UpdateUnitRequest{ID: "u1a2b3c", Status: &status})
	w := makeRequest(router, http.MethodPatch, "/api/v1/units", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateUnit_MissingID(t *testing.T) {
	_, router := newTestHandler(t)

	status := models.UnitStatusAvailable
	body := jsonBody(t, UpdateUnitRequest{Status: &status})
	w := makeRequest(router, http.MethodPatch, "/api/v1/units", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUnit_NotFound(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().DeleteUnit(gomock.Any(), "u000000").Return(models.ErrNotFound)

	w := makeRequest(router, http.MethodDelete, "/api/v1/units/u000000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unit not found")
}

func TestCreateIncident_PublishesEvent(t *testing.T) {
	m, router := newTestHandler(t)

	created := &models.Incident{
		ID: "iabc123", Type: "Accident", Severity: models.SeverityHigh,
		Location: "I-405", Status: models.IncidentStatusOpen, ReportedAt: time.Now().UTC(),
	}
	m.store.EXPECT().
		CreateIncident(gomock.Any(), models.CreateIncident{Type: "Accident", Severity: "High", Location: "I-405"}).
		Return(created, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	body := jsonBody(t, CreateIncidentRequest{Type: "Accident", Severity: "High", Location: "I-405"})
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "iabc123", resp.ID)
	assert.Equal(t, models.IncidentStatusOpen, resp.Status)
}

func TestUpdateIncident_AssignmentFillsUnitName(t *testing.T) {
	m, router := newTestHandler(t)

	unitID := "u1a2b3c"
	m.store.EXPECT().GetUnitByID(gomock.Any(), unitID).Return(&models.Unit{ID: unitID, Name: "Unit 12"}, nil)
	m.store.EXPECT().
		UpdateIncident(gomock.Any(), "iabc123", gomock.Any()).
		DoAndReturn(func(_ any, id string, upd models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, upd.AssignedUnitName)
			assert.Equal(t, "Unit 12", *upd.AssignedUnitName)
			return &models.Incident{ID: id, AssignedUnitID: unitID, AssignedUnitName: "Unit 12"}, nil
		})

	body := jsonBody(t, UpdateIncidentRequest{AssignedUnitID: &unitID})
	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/iabc123", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteAlert_Deactivates(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().DeactivateAlert(gomock.Any(), "a1b2c3d").Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/alerts/a1b2c3d", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DeleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestAssign_Conflict(t *testing.T) {
	m, router := newTestHandler(t)

	m.dispatch.EXPECT().
		Assign(gomock.Any(), "u1a2b3c", "iabc123").
		Return(nil, nil, models.ErrConflict)

	body := jsonBody(t, DispatchRequest{UnitID: "u1a2b3c", IncidentID: "iabc123"})
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/assign", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssign_Success(t *testing.T) {
	m, router := newTestHandler(t)

	incident := &models.Incident{ID: "iabc123", Status: models.IncidentStatusInProgress, AssignedUnitID: "u1a2b3c", AssignedUnitName: "Unit 12"}
	unit := &models.Unit{ID: "u1a2b3c", Name: "Unit 12", Status: models.UnitStatusEnRoute}
	m.dispatch.EXPECT().Assign(gomock.Any(), "u1a2b3c", "iabc123").Return(incident, unit, nil)

	body := jsonBody(t, DispatchRequest{UnitID: "u1a2b3c", IncidentID: "iabc123"})
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/assign", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Incident)
	require.NotNil(t, resp.Unit)
	assert.Equal(t, models.IncidentStatusInProgress, resp.Incident.Status)
	assert.Equal(t, models.UnitStatusEnRoute, resp.Unit.Status)
}

func TestUnassign_MissingBodyFields(t *testing.T) {
	_, router := newTestHandler(t)

	body := jsonBody(t, DispatchRequest{UnitID: "u1a2b3c"})
	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/unassign", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKPI_AlwaysOK(t *testing.T) {
	m, router := newTestHandler(t)

	m.kpi.EXPECT().Snapshot(gomock.Any()).Return(&models.KPISnapshot{
		AvgSpeed: 38, IncidentsToday: 12, CongestionLevel: 56, CamerasOnline: 184, CamerasTotal: 192,
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/kpi", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp KPIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.IncidentsToday)
	assert.Equal(t, 192, resp.CamerasTotal)
}

func TestHealthDB_Degraded(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().Ping(gomock.Any()).Return(models.ErrStoreUnavailable)
	m.store.EXPECT().Mode().Return("postgres")

	w := makeRequest(router, http.MethodGet, "/api/v1/health/db", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "postgres", resp.Mode)
}

func TestCreateSignal_WithTiming(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().
		CreateSignal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in models.CreateSignal) (*models.Signal, error) {
			require.NotNil(t, in.Timing)
			assert.Equal(t, models.SignalTiming{Red: 40, Yellow: 4, Green: 30}, *in.Timing)
			return &models.Signal{
				ID: "s1x2y3z", Name: in.Name, Location: in.Location,
				CurrentState: models.SignalStateGreen, Mode: models.SignalModeAuto,
				Timing: *in.Timing, LastUpdated: time.Now().UTC(),
			}, nil
		})

	body := jsonBody(t, CreateSignalRequest{
		Name:     "Signal 5th & Pine",
		Location: "5th & Pine",
		Timing:   &TimingRequest{Red: 40, Yellow: 4, Green: 30},
	})
	w := makeRequest(router, http.MethodPost, "/api/v1/signals", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListTrafficData_EmptyServesFallbackRows(t *testing.T) {
	m, router := newTestHandler(t)

	m.store.EXPECT().LatestTrafficData(gomock.Any()).Return(nil, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/traffic-data", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []TrafficDataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp)
	assert.Equal(t, "5th & Pine", resp[0].Location)
}

func TestCreateTrafficData_Validation(t *testing.T) {
	_, router := newTestHandler(t)

	body := jsonBody(t, CreateTrafficDataRequest{Location: "A", AvgSpeed: -5})
	w := makeRequest(router, http.MethodPost, "/api/v1/traffic-data", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
