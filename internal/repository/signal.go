package repository

import (
	"context"
	"errors"

	"github.com/shenikar/traffic_ops_console/internal/idgen"
	"github.com/shenikar/traffic_ops_console/internal/models"
)

const signalColumns = `id, name, location, current_state, mode, timing_red, timing_yellow, timing_green, last_updated, created_at`

func scanSignal(row interface{ Scan(...any) error }) (*models.Signal, error) {
	sig := &models.Signal{}
	err := row.Scan(&sig.ID, &sig.Name, &sig.Location, &sig.CurrentState, &sig.Mode,
		&sig.Timing.Red, &sig.Timing.Yellow, &sig.Timing.Green, &sig.LastUpdated, &sig.CreatedAt)
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (s *PostgresStore) ListSignals(ctx context.Context) ([]*models.Signal, error) {
	query := `SELECT ` + signalColumns + ` FROM signals ORDER BY name ASC;`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapStoreErr("list signals", err)
	}
	defer rows.Close()

	signals := make([]*models.Signal, 0)
	for rows.Next() {
		sig, err := scanSignal(rows)
		if err != nil {
			return nil, wrapStoreErr("scan signal row", err)
		}
		signals = append(signals, sig)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("iterate signals", err)
	}
	return signals, nil
}

func (s *PostgresStore) GetSignalByID(ctx context.Context, id string) (*models.Signal, error) {
	query := `SELECT ` + signalColumns + ` FROM signals WHERE id = $1;`
	sig, err := scanSignal(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapStoreErr("get signal by id", err)
	}
	return sig, nil
}

func (s *PostgresStore) CreateSignal(ctx context.Context, in models.CreateSignal) (*models.Signal, error) {
	timing := models.DefaultSignalTiming()
	if in.Timing != nil {
		timing = *in.Timing
	}
	query := `
		INSERT INTO signals (id, name, location, current_state, mode, timing_red, timing_yellow, timing_green)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + signalColumns + `;`

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		id := idgen.New(idgen.PrefixSignal)
		sig, err := scanSignal(s.db.QueryRow(ctx, query, id, in.Name, in.Location,
			models.SignalStateGreen, models.SignalModeAuto, timing.Red, timing.Yellow, timing.Green))
		if err == nil {
			return sig, nil
		}
		lastErr = wrapStoreErr("create signal", err)
		if !errors.Is(lastErr, models.ErrDuplicateID) {
			return nil, lastErr
		}
		s.logger.WithField("id", id).Warn("Signal id collision, regenerating")
	}
	return nil, lastErr
}

func (s *PostgresStore) UpdateSignal(ctx context.Context, id string, upd models.SignalUpdate) (*models.Signal, error) {
	var red, yellow, green *int
	if upd.Timing != nil {
		red, yellow, green = &upd.Timing.Red, &upd.Timing.Yellow, &upd.Timing.Green
	}
	query := `
		UPDATE signals SET
			name = COALESCE($1, name),
			location = COALESCE($2, location),
			current_state = COALESCE($3, current_state),
			mode = COALESCE($4, mode),
			timing_red = COALESCE($5, timing_red),
			timing_yellow = COALESCE($6, timing_yellow),
			timing_green = COALESCE($7, timing_green),
			last_updated = NOW()
		WHERE id = $8
		RETURNING ` + signalColumns + `;`
	sig, err := scanSignal(s.db.QueryRow(ctx, query,
		upd.Name, upd.Location, upd.CurrentState, upd.Mode, red, yellow, green, id))
	if err != nil {
		return nil, wrapStoreErr("update signal", err)
	}
	return sig, nil
}
