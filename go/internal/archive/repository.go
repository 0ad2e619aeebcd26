package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mcdev12/campeonato/go/internal/snapshot"
)

// Querier defines what the archive needs from the database layer. It is
// satisfied by *pgxpool.Pool.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository keeps labelled championship snapshots in Postgres as jsonb rows.
// The file snapshot store remains the system of record; the archive is a
// history mirror for operators.
type Repository struct {
	db Querier
}

// NewRepository creates an archive repository over the given database.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// Migrate creates the snapshot table if it does not exist.
func (r *Repository) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS championship_snapshots (
			id BIGSERIAL PRIMARY KEY,
			label TEXT NOT NULL,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

// SaveSnapshot stores a labelled snapshot of the championship.
func (r *Repository) SaveSnapshot(ctx context.Context, label string, doc *snapshot.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO championship_snapshots (label, doc, created_at) VALUES ($1, $2, $3)`,
		label, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently archived snapshot, or nil when the
// archive is empty.
func (r *Repository) LatestSnapshot(ctx context.Context) (*snapshot.Document, error) {
	var data []byte
	err := r.db.QueryRow(ctx,
		`SELECT doc FROM championship_snapshots ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest snapshot: %w", err)
	}

	var doc snapshot.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archived snapshot: %w", err)
	}
	return &doc, nil
}
