package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

const incidentColumns = `id, type, severity, location, status, reported_at, assigned_unit_id, assigned_unit_name, created_at, updated_at`

func scanIncident(row interface{ Scan(...any) error }) (*models.Incident, error) {
	i := &models.Incident{}
	var assignedID, assignedName *string
	err := row.Scan(&i.ID, &i.Type, &i.Severity, &i.Location, &i.Status,
		&i.ReportedAt, &assignedID, &assignedName, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if assignedID != nil {
		i.AssignedUnitID = *assignedID
	}
	if assignedName != nil {
		i.AssignedUnitName = *assignedName
	}
	return i, nil
}

func (s *PostgresStore) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		ORDER BY reported_at DESC
		LIMIT $1;`
	rows, err := s.db.Query(ctx, query, incidentListCap)
	if err != nil {
		return nil, wrapStoreErr("list incidents", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, wrapStoreErr("scan incident row", err)
		}
		incidents = append(incidents, i)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate incidents", err)
	}
	return incidents, nil
}

func (s *PostgresStore) GetIncidentByID(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	i, err := scanIncident(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapStoreErr("get incident by id", err)
	}
	return i, nil
}

func (s *PostgresStore) CreateIncident(ctx context.Context, in models.CreateIncident) (*models.Incident, error) {
	query := `
		INSERT INTO incidents (id, type, severity, location, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + incidentColumns + `;`

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		id := idgen.New(idgen.PrefixIncident)
		i, err := scanIncident(s.db.QueryRow(ctx, query, id, in.Type, in.Severity, in.Location, models.IncidentStatusOpen))
		if err == nil {
			return i, nil
		}
		lastErr = wrapStoreErr("create incident", err)
		if !errors.Is(lastErr, models.ErrDuplicateID) {
			return nil, lastErr
		}
		s.logger.WithField("id", id).Warn("Incident id collision, regenerating")
	}
	return nil, lastErr
}

// UpdateIncident merges the non-nil fields. A pointer to the empty string
// in AssignedUnitID clears the link and the denormalized name together.
func (s *PostgresStore) UpdateIncident(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	query := `
		UPDATE incidents SET
			type = COALESCE($1, type),
			severity = COALESCE($2, severity),
			location = COALESCE($3, location),
			status = COALESCE($4, status),
			assigned_unit_id = CASE
				WHEN $5::text IS NULL THEN assigned_unit_id
				WHEN $5::text = '' THEN NULL
				ELSE $5::text
			END,
			assigned_unit_name = CASE
				WHEN $5::text = '' THEN NULL
				ELSE COALESCE($6, assigned_unit_name)
			END,
			updated_at = NOW()
		WHERE id = $7
		RETURNING ` + incidentColumns + `;`
	i, err := scanIncident(s.db.QueryRow(ctx, query,
		upd.Type, upd.Severity, upd.Location, upd.Status,
		upd.AssignedUnitID, upd.AssignedUnitName, id))
	if err != nil {
		return nil, wrapStoreErr("update incident", err)
	}
	return i, nil
}

func (s *PostgresStore) CountIncidentsSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM incidents WHERE reported_at >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, wrapStoreErr("count incidents", err)
	}
	return count, nil
}
