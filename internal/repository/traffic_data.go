package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

const trafficColumns = `id, location, avg_speed, vehicle_count, congestion_level, recorded_at`

func scanTrafficData(row interface{ Scan(...any) error }) (*models.TrafficData, error) {
	td := &models.TrafficData{}
	err := row.Scan(&td.ID, &td.Location, &td.AvgSpeed, &td.VehicleCount, &td.CongestionLevel, &td.Timestamp)
	if err != nil {
		return nil, err
	}
	return td, nil
}

// LatestTrafficData returns the newest reading per location.
func (s *PostgresStore) LatestTrafficData(ctx context.Context) ([]*models.TrafficData, error) {
	query := `
		SELECT DISTINCT ON (location) ` + trafficColumns + `
		FROM traffic_data
		ORDER BY location ASC, recorded_at DESC;`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("latest traffic data", err)
	}
	defer rows.Close()

	readings := make([]*models.TrafficData, 0)
	for rows.Next() {
		td, err := scanTrafficData(rows)
		if err != nil {
			return nil, wrapStoreErr("scan traffic data row", err)
		}
		readings = append(readings, td)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate traffic data", err)
	}
	return readings, nil
}

func (s *PostgresStore) CreateTrafficData(ctx context.Context, in models.CreateTrafficData) (*models.TrafficData, error) {
	query := `
		INSERT INTO traffic_data (id, location, avg_speed, vehicle_count, congestion_level)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + trafficColumns + `;`

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		id := idgen.New(idgen.PrefixTrafficData)
		td, err := scanTrafficData(s.db.QueryRow(ctx, query, id, in.Location, in.AvgSpeed, in.VehicleCount, in.CongestionLevel))
		if err == nil {
			return td, nil
		}
		lastErr = wrapStoreErr("create traffic data", err)
		if !errors.Is(lastErr, models.ErrDuplicateID) {
			return nil, lastErr
		}
		s.logger.WithField("id", id).Warn("Traffic data id collision, regenerating")
	}
	return nil, lastErr
}

func (s *PostgresStore) AverageSpeed(ctx context.Context, window time.Duration) (float64, error) {
	return s.windowAverage(ctx, "avg_speed", window)
}

func (s *PostgresStore) AvgCongestion(ctx context.Context, window time.Duration) (float64, error) {
	return s.windowAverage(ctx, "congestion_level", window)
}

// windowAverage averages one numeric column over the trailing window,
// returning 0 when the window holds no readings. column is one of the two
// constants above, never user input.
func (s *PostgresStore) windowAverage(ctx context.Context, column string, window time.Duration) (float64, error) {
	query := `
		SELECT COALESCE(AVG(` + column + `), 0)
		FROM traffic_data
		WHERE recorded_at >= NOW() - $1::interval;`
	var avg float64
	if err := s.db.QueryRow(ctx, query, window).Scan(&avg); err != nil {
		return 0, wrapStoreErr("window average "+column, err)
	}
	return avg, nil
}
