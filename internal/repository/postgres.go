package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/traffic_ops_console/internal/models"
	"github.com/shenikar/traffic_ops_console/internal/service"
)

// createAttempts bounds id regeneration after a duplicate-key reject.
const createAttempts = 3

// PostgresStore implements service.Store on a pgx connection pool.
type PostgresStore struct {
	db     *pgxpool.Pool
	logger *logrus.Logger
}

func NewPostgresStore(db *pgxpool.Pool, logger *logrus.Logger) service.Store {
	return &PostgresStore{db: db, logger: logger}
}

// wrapStoreErr translates driver errors into the shared sentinel taxonomy.
// A response from the server (constraint violation, bad query) is not an
// availability problem; an error with no server response is.
func wrapStoreErr(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return models.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, models.ErrDuplicateID)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %s: %w", op, err, models.ErrStoreUnavailable)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return wrapStoreErr("ping", err)
	}
	return nil
}

func (s *PostgresStore) Mode() string { return "postgres" }
