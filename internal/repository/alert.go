package repository

import (
	"context"
	"errors"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

const alertColumns = `id, title, detail, level, is_active, created_at`

func scanAlert(row interface{ Scan(...any) error }) (*models.Alert, error) {
	a := &models.Alert{}
	err := row.Scan(&a.ID, &a.Title, &a.Detail, &a.Level, &a.IsActive, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PostgresStore) ListActiveAlerts(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT $1;`
	rows, err := s.db.Query(ctx, query, alertListCap)
	if err != nil {
		return nil, wrapStoreErr("list active alerts", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, wrapStoreErr("scan alert row", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate alerts", err)
	}
	return alerts, nil
}

func (s *PostgresStore) CreateAlert(ctx context.Context, in models.CreateAlert) (*models.Alert, error) {
	query := `
		INSERT INTO alerts (id, title, detail, level, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING ` + alertColumns + `;`

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		id := idgen.New(idgen.PrefixAlert)
		a, err := scanAlert(s.db.QueryRow(ctx, query, id, in.Title, in.Detail, in.Level))
		if err == nil {
			return a, nil
		}
		lastErr = wrapStoreErr("create alert", err)
		if !errors.Is(lastErr, models.ErrDuplicateID) {
			return nil, lastErr
		}
		s.logger.WithField("id", id).Warn("Alert id collision, regenerating")
	}
	return nil, lastErr
}

// DeactivateAlert is the delete operation for alerts: the record stays,
// is_active flips off.
func (s *PostgresStore) DeactivateAlert(ctx context.Context, id string) error {
	cmdTag, err := s.db.Exec(ctx,
		`UPDATE alerts SET is_active = FALSE WHERE id = $1;`, id)
	if err != nil {
		return wrapStoreErr("deactivate alert", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
