package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SnapshotRecord is one stored score snapshot. Payload holds the snapshot
// document exactly as validated at import time.
type SnapshotRecord struct {
	ID         string
	PersonID   string
	TakenAt    time.Time
	ImportedAt time.Time
	Payload    []byte
}

// SnapshotRepo manages stored score snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot. An empty ID is assigned a fresh UUID.
	Save(ctx context.Context, rec *SnapshotRecord) error

	// Latest returns the most recent snapshot for a person, or nil if
	// none exist.
	Latest(ctx context.Context, personID string) (*SnapshotRecord, error)

	// List returns a person's snapshots newest-first, up to limit
	// (0 = unlimited).
	List(ctx context.Context, personID string, limit int) ([]*SnapshotRecord, error)

	// Prune deletes all but a person's N most recent snapshots.
	Prune(ctx context.Context, personID string, keep int) error
}

type snapshotRepo struct {
	db *sql.DB
}

func (r *snapshotRepo) Save(ctx context.Context, rec *SnapshotRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ImportedAt.IsZero() {
		rec.ImportedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, person_id, taken_at, imported_at, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.PersonID, rec.TakenAt.UTC(), rec.ImportedAt.UTC(), string(rec.Payload),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, personID string) (*SnapshotRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, person_id, taken_at, imported_at, payload
		 FROM snapshots WHERE person_id = ?
		 ORDER BY taken_at DESC, imported_at DESC LIMIT 1`,
		personID,
	)
	rec, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (r *snapshotRepo) List(ctx context.Context, personID string, limit int) ([]*SnapshotRecord, error) {
	q := `SELECT id, person_id, taken_at, imported_at, payload
	      FROM snapshots WHERE person_id = ?
	      ORDER BY taken_at DESC, imported_at DESC`
	args := []any{personID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []*SnapshotRecord
	for rows.Next() {
		rec, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *snapshotRepo) Prune(ctx context.Context, personID string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE person_id = ? AND id NOT IN (
			SELECT id FROM snapshots WHERE person_id = ?
			ORDER BY taken_at DESC, imported_at DESC LIMIT ?
		)`,
		personID, personID, keep,
	)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*SnapshotRecord, error) {
	var (
		rec     SnapshotRecord
		payload string
	)
	if err := row.Scan(&rec.ID, &rec.PersonID, &rec.TakenAt, &rec.ImportedAt, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan snapshot: %w", err)
	}
	rec.Payload = []byte(payload)
	return &rec, nil
}
