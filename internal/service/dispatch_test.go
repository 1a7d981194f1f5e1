package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/traffic_ops_console/internal/config"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/service/mocks"
	webhook_mocks "github.com/shenikar/traffic_ops_console/internal/webhook/mocks"
)

func newTestDispatchService(t *testing.T) (DispatchService, *mocks.MockStore, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		StoreTimeout: 5 * time.Second,
	}

	svc := NewDispatchService(storeMock, logger, cfg, publisherMock)
	return svc, storeMock, publisherMock
}

func availableUnit() *models.Unit {
	return &models.Unit{
		ID:     "u1a2b3c",
		Name:   "Unit 12",
		Type:   models.UnitTypePatrolCar,
		Status: models.UnitStatusAvailable,
	}
}

func openIncident() *models.Incident {
	return &models.Incident{
		ID:         "i9z8y7x",
		Type:       "Accident",
		Severity:   models.SeverityHigh,
		Location:   "Main St & 5th Ave",
		Status:     models.IncidentStatusOpen,
		ReportedAt: time.Now().Add(-10 * time.Minute),
	}
}

func TestAssign_Success(t *testing.T) {
	svc, storeMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	incident := openIncident()

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	storeMock.EXPECT().
		UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, models.IncidentStatusInProgress, *upd.Status)
			require.NotNil(t, upd.AssignedUnitID)
			assert.Equal(t, unit.ID, *upd.AssignedUnitID)
			require.NotNil(t, upd.AssignedUnitName)
			assert.Equal(t, unit.Name, *upd.AssignedUnitName)

			updated := *incident
			updated.Status = *upd.Status
			updated.AssignedUnitID = *upd.AssignedUnitID
			updated.AssignedUnitName = *upd.AssignedUnitName
			return &updated, nil
		})

	storeMock.EXPECT().
		UpdateUnit(gomock.Any(), unit.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, upd models.UnitUpdate) (*models.Unit, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, models.UnitStatusEnRoute, *upd.Status)

			updated := *unit
			updated.Status = *upd.Status
			return &updated, nil
		})

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	gotIncident, gotUnit, err := svc.Assign(ctx, unit.ID, incident.ID)

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusInProgress, gotIncident.Status)
	assert.Equal(t, unit.ID, gotIncident.AssignedUnitID)
	assert.Equal(t, unit.Name, gotIncident.AssignedUnitName)
	assert.Equal(t, models.UnitStatusEnRoute, gotUnit.Status)
}

func TestAssign_UnitNotFound(t *testing.T) {
	svc, storeMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetUnitByID(gomock.Any(), "u000000").Return(nil, models.ErrNotFound)

	_, _, err := svc.Assign(ctx, "u000000", "i9z8y7x")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAssign_IncidentCleared(t *testing.T) {
	svc, storeMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	incident := openIncident()
	incident.Status = models.IncidentStatusCleared

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	_, _, err := svc.Assign(ctx, unit.ID, incident.ID)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAssign_IncidentAlreadyAssigned(t *testing.T) {
	svc, storeMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	incident := openIncident()
	incident.Status = models.IncidentStatusInProgress
	incident.AssignedUnitID = "u777777"
	incident.AssignedUnitName = "Unit 7"

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	_, _, err := svc.Assign(ctx, unit.ID, incident.ID)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestAssign_UnitUpdateFails_RevertsIncident(t *testing.T) {
	svc, storeMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	incident := openIncident()

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	gomock.InOrder(
		storeMock.EXPECT().
			UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
				updated := *incident
				updated.Status = *upd.Status
				updated.AssignedUnitID = *upd.AssignedUnitID
				updated.AssignedUnitName = *upd.AssignedUnitName
				return &updated, nil
			}),
		storeMock.EXPECT().
			UpdateUnit(gomock.Any(), unit.ID, gomock.Any()).
			Return(nil, models.ErrStoreUnavailable),
		storeMock.EXPECT().
			UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
				require.NotNil(t, upd.Status)
				assert.Equal(t, models.IncidentStatusOpen, *upd.Status)
				require.NotNil(t, upd.AssignedUnitID)
				assert.Empty(t, *upd.AssignedUnitID)
				return incident, nil
			}),
	)

	gotIncident, gotUnit, err := svc.Assign(ctx, unit.ID, incident.ID)

	assert.ErrorIs(t, err, models.ErrCoordination)
	assert.Nil(t, gotIncident)
	assert.Nil(t, gotUnit)
}

func TestUnassign_Success(t *testing.T) {
	svc, storeMock, publisherMock := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	unit.Status = models.UnitStatusEnRoute
	incident := openIncident()
	incident.Status = models.IncidentStatusInProgress
	incident.AssignedUnitID = unit.ID
	incident.AssignedUnitName = unit.Name

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	storeMock.EXPECT().
		UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, models.IncidentStatusOpen, *upd.Status)
			require.NotNil(t, upd.AssignedUnitID)
			assert.Empty(t, *upd.AssignedUnitID)

			updated := *incident
			updated.Status = *upd.Status
			updated.AssignedUnitID = ""
			updated.AssignedUnitName = ""
			return &updated, nil
		})

	storeMock.EXPECT().
		UpdateUnit(gomock.Any(), unit.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, upd models.UnitUpdate) (*models.Unit, error) {
			require.NotNil(t, upd.Status)
			assert.Equal(t, models.UnitStatusAvailable, *upd.Status)

			updated := *unit
			updated.Status = *upd.Status
			return &updated, nil
		})

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	gotIncident, gotUnit, err := svc.Unassign(ctx, unit.ID, incident.ID)

	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusOpen, gotIncident.Status)
	assert.Empty(t, gotIncident.AssignedUnitID)
	assert.Empty(t, gotIncident.AssignedUnitName)
	assert.Equal(t, models.UnitStatusAvailable, gotUnit.Status)
}

func TestUnassign_WrongUnit(t *testing.T) {
	svc, storeMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	incident := openIncident()
	incident.Status = models.IncidentStatusInProgress
	incident.AssignedUnitID = "u777777"
	incident.AssignedUnitName = "Unit 7"

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	_, _, err := svc.Unassign(ctx, unit.ID, incident.ID)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUnassign_UnitUpdateFails_RestoresAssignment(t *testing.T) {
	svc, storeMock, _ := newTestDispatchService(t)
	ctx := context.Background()
	unit := availableUnit()
	unit.Status = models.UnitStatusEnRoute
	incident := openIncident()
	incident.Status = models.IncidentStatusInProgress
	incident.AssignedUnitID = unit.ID
	incident.AssignedUnitName = unit.Name

	storeMock.EXPECT().GetUnitByID(gomock.Any(), unit.ID).Return(unit, nil)
	storeMock.EXPECT().GetIncidentByID(gomock.Any(), incident.ID).Return(incident, nil)

	gomock.InOrder(
		storeMock.EXPECT().
			UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
				updated := *incident
				updated.Status = *upd.Status
				updated.AssignedUnitID = ""
				updated.AssignedUnitName = ""
				return &updated, nil
			}),
		storeMock.EXPECT().
			UpdateUnit(gomock.Any(), unit.ID, gomock.Any()).
			Return(nil, errors.New("connection reset")),
		storeMock.EXPECT().
			UpdateIncident(gomock.Any(), incident.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
				require.NotNil(t, upd.Status)
				assert.Equal(t, models.IncidentStatusInProgress, *upd.Status)
				require.NotNil(t, upd.AssignedUnitID)
				assert.Equal(t, unit.ID, *upd.AssignedUnitID)
				require.NotNil(t, upd.AssignedUnitName)
				assert.Equal(t, unit.Name, *upd.AssignedUnitName)
				return incident, nil
			}),
	)

	_, _, err := svc.Unassign(ctx, unit.ID, incident.ID)
	assert.ErrorIs(t, err, models.ErrCoordination)
}
