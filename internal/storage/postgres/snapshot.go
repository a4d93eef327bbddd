package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sound_tracker/internal/domain"
)

type SnapshotStore struct {
	db *sqlx.DB
}

func NewSnapshotStore(db *sqlx.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Upsert writes one daily snapshot. A second write for the same
// (sound, date) overwrites the earlier observation.
func (s *SnapshotStore) Upsert(ctx context.Context, snapshot *domain.SoundSnapshot) error {
	query := `
		INSERT INTO sound_snapshots (
			sound_id, snapshot_date, usage_count, "rank",
			avg_views, avg_likes, avg_shares, avg_comments
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (sound_id, snapshot_date) DO UPDATE SET
			usage_count = EXCLUDED.usage_count,
			"rank" = EXCLUDED."rank",
			avg_views = EXCLUDED.avg_views,
			avg_likes = EXCLUDED.avg_likes,
			avg_shares = EXCLUDED.avg_shares,
			avg_comments = EXCLUDED.avg_comments`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		snapshot.SoundID,
		snapshot.SnapshotDate,
		snapshot.UsageCount,
		snapshot.Rank,
		snapshot.AvgViews,
		snapshot.AvgLikes,
		snapshot.AvgShares,
		snapshot.AvgComments,
	)
	return err
}

func (s *SnapshotStore) ListBySound(ctx context.Context, soundID string) ([]domain.SoundSnapshot, error) {
	query := `
		SELECT id, sound_id, snapshot_date, usage_count, "rank",
		       avg_views, avg_likes, avg_shares, avg_comments
		FROM sound_snapshots
		WHERE sound_id = $1
		ORDER BY snapshot_date ASC`

	var snapshots []domain.SoundSnapshot
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &snapshots, query, soundID)
	return snapshots, err
}

// Sparkline returns the usage counts of the most recent snapshots in
// chronological order, at most one per day over the given window.
func (s *SnapshotStore) Sparkline(ctx context.Context, soundID string, days int) ([]int64, error) {
	query := `
		SELECT usage_count FROM (
			SELECT usage_count, snapshot_date
			FROM sound_snapshots
			WHERE sound_id = $1
			ORDER BY snapshot_date DESC
			LIMIT $2
		) recent
		ORDER BY snapshot_date ASC`

	var counts []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &counts, query, soundID, days)
	return counts, err
}
