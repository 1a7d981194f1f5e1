package repository

import (
	"context"
	"errors"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

const unitColumns = `id, name, type, status, location, created_at, updated_at`

func scanUnit(row interface{ Scan(...any) error }) (*models.Unit, error) {
	u := &models.Unit{}
	err := row.Scan(&u.ID, &u.Name, &u.Type, &u.Status, &u.Location, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PostgresStore) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY name ASC;`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("list units", err)
	}
	defer rows.Close()

	units := make([]*models.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, wrapStoreErr("scan unit row", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate units", err)
	}
	return units, nil
}

func (s *PostgresStore) GetUnitByID(ctx context.Context, id string) (*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1;`
	u, err := scanUnit(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapStoreErr("get unit by id", err)
	}
	return u, nil
}

func (s *PostgresStore) CreateUnit(ctx context.Context, in models.CreateUnit) (*models.Unit, error) {
	query := `
		INSERT INTO units (id, name, type, status, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + unitColumns + `;`

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		id := idgen.New(idgen.PrefixUnit)
		u, err := scanUnit(s.db.QueryRow(ctx, query, id, in.Name, in.Type, models.UnitStatusAvailable, in.Location))
		if err == nil {
			return u, nil
		}
		lastErr = wrapStoreErr("create unit", err)
		if !errors.Is(lastErr, models.ErrDuplicateID) {
			return nil, lastErr
		}
		s.logger.WithField("id", id).Warn("Unit id collision, regenerating")
	}
	return nil, lastErr
}

func (s *PostgresStore) UpdateUnit(ctx context.Context, id string, upd models.UnitUpdate) (*models.Unit, error) {
	query := `
		UPDATE units SET
			name = COALESCE($1, name),
			status = COALESCE($2, status),
			location = COALESCE($3, location),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + unitColumns + `;`
	u, err := scanUnit(s.db.QueryRow(ctx, query, upd.Name, upd.Status, upd.Location, id))
	if err != nil {
		return nil, wrapStoreErr("update unit", err)
	}
	return u, nil
}

func (s *PostgresStore) DeleteUnit(ctx context.Context, id string) error {
	cmdTag, err := s.db.Exec(ctx, `DELETE FROM units WHERE id = $1;`, id)
	if err != nil {
		return wrapStoreErr("delete unit", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
