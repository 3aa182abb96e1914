package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"oba/pkg/platform/sentinel"
	txcontext "oba/pkg/platform/tx"
)

// Clock returns the current time.
type Clock func() time.Time

// PostgresStore keeps blobs in the aspsp_consent_data table.
type PostgresStore struct {
	db    *sql.DB
	clock Clock
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*PostgresStore)

// WithPostgresClock sets the clock function for testability.
func WithPostgresClock(clock Clock) PostgresOption {
	return func(s *PostgresStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgresStore constructs a PostgreSQL-backed store.
func NewPostgresStore(db *sql.DB, opts ...PostgresOption) *PostgresStore {
	s := &PostgresStore{db: db, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// execer joins the caller's transaction when ctx carries one.
func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// EnsureSchema creates the table if missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS aspsp_consent_data (
			encrypted_id TEXT PRIMARY KEY,
			data         TEXT NOT NULL,
			updated_at   TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure consent data schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Put(ctx context.Context, encryptedID, blob string) error {
	query := `
		INSERT INTO aspsp_consent_data (encrypted_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (encrypted_id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := s.execer(ctx).ExecContext(ctx, query, encryptedID, blob, s.clock()); err != nil {
		return fmt.Errorf("put consent data: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, encryptedID string) (string, error) {
	var blob string
	err := s.execer(ctx).QueryRowContext(ctx, `SELECT data FROM aspsp_consent_data WHERE encrypted_id = $1`, encryptedID).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get consent data: %w", err)
	}
	return blob, nil
}

// Delete removes several sessions in one round trip.
func (s *PostgresStore) Delete(ctx context.Context, encryptedIDs ...string) error {
	if len(encryptedIDs) == 0 {
		return nil
	}
	_, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM aspsp_consent_data WHERE encrypted_id = ANY($1)`, pq.Array(encryptedIDs))
	if err != nil {
		return fmt.Errorf("delete consent data batch: %w", err)
	}
	return nil
}
