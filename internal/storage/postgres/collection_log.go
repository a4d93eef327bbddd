package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"sound_tracker/internal/domain"
)

type CollectionLogStore struct {
	db *sqlx.DB
}

func NewCollectionLogStore(db *sqlx.DB) *CollectionLogStore {
	return &CollectionLogStore{db: db}
}

// Start opens a run record with status running and returns its id.
func (s *CollectionLogStore) Start(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO collection_logs (status) VALUES ($1) RETURNING id",
		domain.CollectionRunning,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Finalize closes a run record exactly once. Empty sourceUsed and
// errorMessage are stored as NULL.
func (s *CollectionLogStore) Finalize(ctx context.Context, id int64, status domain.CollectionStatus, sourceUsed string, soundsCollected int, errorMessage string) error {
	query := `
		UPDATE collection_logs SET
			completed_at = now(),
			status = $2,
			source_used = NULLIF($3, ''),
			sounds_collected = $4,
			error_message = NULLIF($5, '')
		WHERE id = $1 AND completed_at IS NULL`

	_, err := s.db.ExecContext(ctx, query, id, status, sourceUsed, soundsCollected, errorMessage)
	return err
}

// LastSuccess returns when the most recent run that wrote any sounds
// completed, or nil when no such run exists.
func (s *CollectionLogStore) LastSuccess(ctx context.Context) (*time.Time, error) {
	query := `
		SELECT completed_at
		FROM collection_logs
		WHERE status IN ($1, $2) AND completed_at IS NOT NULL
		ORDER BY completed_at DESC
		LIMIT 1`

	var completedAt time.Time
	err := s.db.GetContext(ctx, &completedAt, query, domain.CollectionSuccess, domain.CollectionPartial)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &completedAt, nil
}

// Get returns one run record by id.
func (s *CollectionLogStore) Get(ctx context.Context, id int64) (*domain.CollectionLog, error) {
	query := `
		SELECT id, started_at, completed_at, status, source_used,
		       sounds_collected, error_message
		FROM collection_logs
		WHERE id = $1`

	var log domain.CollectionLog
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &log, query, id)
	if err != nil {
		return nil, err
	}
	return &log, nil
}
