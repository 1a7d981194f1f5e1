package repository

import (
	"context"
	"errors"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

const cameraColumns = `id, name, status, img, location, created_at, updated_at`

func scanCamera(row interface{ Scan(...any) error }) (*models.Camera, error) {
	c := &models.Camera{}
	var location *string
	err := row.Scan(&c.ID, &c.Name, &c.Status, &c.Img, &location, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if location != nil {
		c.Location = *location
	}
	return c, nil
}

func (s *PostgresStore) ListCameras(ctx context.Context) ([]*models.Camera, error) {
	query := `SELECT ` + cameraColumns + ` FROM cameras ORDER BY name ASC;`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("list cameras", err)
	}
	defer rows.Close()

	cameras := make([]*models.Camera, 0)
	for rows.Next() {
		c, err := scanCamera(rows)
		if err != nil {
			return nil, wrapStoreErr("scan camera row", err)
		}
		cameras = append(cameras, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate cameras", err)
	}
	return cameras, nil
}

func (s *PostgresStore) GetCameraByID(ctx context.Context, id string) (*models.Camera, error) {
	query := `SELECT ` + cameraColumns + ` FROM cameras WHERE id = $1;`
	c, err := scanCamera(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapStoreErr("get camera by id", err)
	}
	return c, nil
}

func (s *PostgresStore) CreateCamera(ctx context.Context, in models.CreateCamera) (*models.Camera, error) {
	query := `
		INSERT INTO cameras (id, name, status, img, location)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING ` + cameraColumns + `;`

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		id := idgen.New(idgen.PrefixCamera)
		c, err := scanCamera(s.db.QueryRow(ctx, query, id, in.Name, models.CameraStatusOnline, in.Img, in.Location))
		if err == nil {
			return c, nil
		}
		lastErr = wrapStoreErr("create camera", err)
		if !errors.Is(lastErr, models.ErrDuplicateID) {
			return nil, lastErr
		}
		s.logger.WithField("id", id).Warn("Camera id collision, regenerating")
	}
	return nil, lastErr
}

func (s *PostgresStore) UpdateCamera(ctx context.Context, id string, upd models.CameraUpdate) (*models.Camera, error) {
	query := `
		UPDATE cameras SET
			name = COALESCE($1, name),
			status = COALESCE($2, status),
			img = COALESCE($3, img),
			location = COALESCE($4, location),
			updated_at = NOW()
		WHERE id = $5
		RETURNING ` + cameraColumns + `;`
	c, err := scanCamera(s.db.QueryRow(ctx, query, upd.Name, upd.Status, upd.Img, upd.Location, id))
	if err != nil {
		return nil, wrapStoreErr("update camera", err)
	}
	return c, nil
}

// DeleteCamera is a soft delete: the record is kept with status Offline.
func (s *PostgresStore) DeleteCamera(ctx context.Context, id string) error {
	cmdTag, err := s.db.Exec(ctx, `
		UPDATE cameras SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;`, models.CameraStatusOffline, id)
	if err != nil {
		return wrapStoreErr("delete camera", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CameraAvailability(ctx context.Context) (int, int, error) {
	var online, total int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE status = $1), COUNT(*)
		FROM cameras;`, models.CameraStatusOnline).Scan(&online, &total)
	if err != nil {
		return 0, 0, wrapStoreErr("camera availability", err)
	}
	return online, total, nil
}
