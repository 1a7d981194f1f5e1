package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/traffic_ops_console/internal/config"
	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/webhook"
)

// DispatchService maintains the pairing invariant between incidents and
// units: an In Progress incident references exactly one unit, and that
// unit's status reflects the active dispatch. After Assign or Unassign
// returns successfully both records are in the new consistent pair-state;
// after an error both are in the prior pair-state.
type DispatchService interface {
	Assign(ctx context.Context, unitID, incidentID string) (*models.Incident, *models.Unit, error)
	Unassign(ctx context.Context, unitID, incidentID string) (*models.Incident, *models.Unit, error)
}

type dispatchService struct {
	store     Store
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.Publisher
}

func NewDispatchService(store Store, logger *logrus.Logger, cfg *config.Config, publisher webhook.Publisher) DispatchService {
	return &dispatchService{
		store:     store,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
	}
}

func (s *dispatchService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}

// Assign links the unit to the incident and moves both into their active
// pair-state. Assigning to an incident that is Cleared or already has a
// unit is rejected with models.ErrConflict. If the unit update fails after
// the incident update succeeded, the incident write is reverted and a
// single models.ErrCoordination is returned.
func (s *dispatchService) Assign(ctx context.Context, unitID, incidentID string) (*models.Incident, *models.Unit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Assign",
		"unit_id":     unitID,
		"incident_id": incidentID,
	})
	log.Info("Assigning unit to incident")

	unit, err := s.getUnit(ctx, unitID)
	if err != nil {
		log.WithError(err).Warn("Failed to look up unit for assignment")
		return nil, nil, err
	}
	incident, err := s.getIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to look up incident for assignment")
		return nil, nil, err
	}

	if incident.Status == models.IncidentStatusCleared {
		return nil, nil, fmt.Errorf("service: incident %s is cleared: %w", incidentID, models.ErrConflict)
	}
	if incident.AssignedUnitID != "" {
		return nil, nil, fmt.Errorf("service: incident %s already assigned to unit %s: %w",
			incidentID, incident.AssignedUnitID, models.ErrConflict)
	}

	prevStatus := incident.Status

	inProgress := models.IncidentStatusInProgress
	updatedIncident, err := s.updateIncident(ctx, incidentID, models.IncidentUpdate{
		Status:           &inProgress,
		AssignedUnitID:   &unit.ID,
		AssignedUnitName: &unit.Name,
	})
	if err != nil {
		log.WithError(err).Error("Failed to update incident during assignment")
		return nil, nil, fmt.Errorf("service: could not assign incident: %w", err)
	}

	enRoute := models.UnitStatusEnRoute
	updatedUnit, err := s.updateUnit(ctx, unitID, models.UnitUpdate{Status: &enRoute})
	if err != nil {
		log.WithError(err).Error("Unit update failed after incident update, reverting incident")
		s.revertIncident(ctx, incidentID, models.IncidentUpdate{
			Status:         &prevStatus,
			AssignedUnitID: strPtr(""),
		}, log)
		return nil, nil, fmt.Errorf("service: unit update failed, assignment rolled back: %w (%s)",
			models.ErrCoordination, err)
	}

	s.publish(ctx, webhook.EventDispatchAssigned, updatedIncident, log)
	log.Info("Unit assigned to incident")
	return updatedIncident, updatedUnit, nil
}

// Unassign reverses an assignment. The incident must currently reference
// the given unit, otherwise models.ErrConflict is returned.
func (s *dispatchService) Unassign(ctx context.Context, unitID, incidentID string) (*models.Incident, *models.Unit, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "Unassign",
		"unit_id":     unitID,
		"incident_id": incidentID,
	})
	log.Info("Unassigning unit from incident")

	if _, err := s.getUnit(ctx, unitID); err != nil {
		log.WithError(err).Warn("Failed to look up unit for unassignment")
		return nil, nil, err
	}
	incident, err := s.getIncident(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to look up incident for unassignment")
		return nil, nil, err
	}

	if incident.AssignedUnitID != unitID {
		return nil, nil, fmt.Errorf("service: incident %s is not assigned to unit %s: %w",
			incidentID, unitID, models.ErrConflict)
	}

	prevStatus := incident.Status
	prevUnitID := incident.AssignedUnitID
	prevUnitName := incident.AssignedUnitName

	open := models.IncidentStatusOpen
	updatedIncident, err := s.updateIncident(ctx, incidentID, models.IncidentUpdate{
		Status:         &open,
		AssignedUnitID: strPtr(""),
	})
	if err != nil {
		log.WithError(err).Error("Failed to update incident during unassignment")
		return nil, nil, fmt.Errorf("service: could not unassign incident: %w", err)
	}

	available := models.UnitStatusAvailable
	updatedUnit, err := s.updateUnit(ctx, unitID, models.UnitUpdate{Status: &available})
	if err != nil {
		log.WithError(err).Error("Unit update failed after incident update, restoring assignment")
		s.revertIncident(ctx, incidentID, models.IncidentUpdate{
			Status:           &prevStatus,
			AssignedUnitID:   &prevUnitID,
			AssignedUnitName: &prevUnitName,
		}, log)
		return nil, nil, fmt.Errorf("service: unit update failed, unassignment rolled back: %w (%s)",
			models.ErrCoordination, err)
	}

	s.publish(ctx, webhook.EventDispatchUnassigned, updatedIncident, log)
	log.Info("Unit unassigned from incident")
	return updatedIncident, updatedUnit, nil
}

func (s *dispatchService) getUnit(ctx context.Context, id string) (*models.Unit, error) {
	tctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.store.GetUnitByID(tctx, id)
}

func (s *dispatchService) getIncident(ctx context.Context, id string) (*models.Incident, error) {
	tctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.store.GetIncidentByID(tctx, id)
}

func (s *dispatchService) updateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	tctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.store.UpdateIncident(tctx, id, upd)
}

func (s *dispatchService) updateUnit(ctx context.Context, id string, upd models.UnitUpdate) (*models.Unit, error) {
	tctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.store.UpdateUnit(tctx, id, upd)
}

// revertIncident is the compensating write after a partial failure. A
// failed revert leaves the pair inconsistent and is logged at error level
// for operator follow-up.
func (s *dispatchService) revertIncident(ctx context.Context, id string, upd models.IncidentUpdate, log *logrus.Entry) {
	if _, err := s.updateIncident(ctx, id, upd); err != nil {
		log.WithError(err).Error("Failed to revert incident after partial dispatch failure")
	}
}

func (s *dispatchService) publish(ctx context.Context, eventType string, incident *models.Incident, log *logrus.Entry) {
	event := webhook.Event{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   incident,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch webhook event")
	}
}

func strPtr(s string) *string { return &s }
