package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"sound_tracker/internal/domain"
)

type SoundStore struct {
	db *sqlx.DB
}

func NewSoundStore(db *sqlx.DB) *SoundStore {
	return &SoundStore{db: db}
}

func (s *SoundStore) Upsert(ctx context.Context, sound *domain.Sound) error {
	query := `
		INSERT INTO sounds (
			id, title, artist, duration, genre, cover_url, play_url,
			usage_count, trajectory, growth_rate, "rank"
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			artist = EXCLUDED.artist,
			duration = EXCLUDED.duration,
			genre = COALESCE(EXCLUDED.genre, sounds.genre),
			cover_url = COALESCE(EXCLUDED.cover_url, sounds.cover_url),
			play_url = COALESCE(EXCLUDED.play_url, sounds.play_url),
			usage_count = EXCLUDED.usage_count,
			trajectory = EXCLUDED.trajectory,
			growth_rate = EXCLUDED.growth_rate,
			"rank" = EXCLUDED."rank",
			updated_at = now()`

	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, query,
		sound.ID,
		sound.Title,
		sound.Artist,
		sound.Duration,
		sound.Genre,
		sound.CoverURL,
		sound.PlayURL,
		sound.UsageCount,
		sound.Trajectory,
		sound.GrowthRate,
		sound.Rank,
	)
	return err
}

func (s *SoundStore) GetByID(ctx context.Context, id string) (*domain.Sound, error) {
	query := `
		SELECT id, title, artist, duration, genre, cover_url, play_url,
		       usage_count, trajectory, growth_rate, "rank", enriched_at,
		       created_at, updated_at
		FROM sounds
		WHERE id = $1`

	var sound domain.Sound
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sound, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSoundNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sound, nil
}

func (s *SoundStore) ListByRank(ctx context.Context) ([]domain.Sound, error) {
	query := `
		SELECT id, title, artist, duration, genre, cover_url, play_url,
		       usage_count, trajectory, growth_rate, "rank", enriched_at,
		       created_at, updated_at
		FROM sounds
		ORDER BY "rank" ASC`

	var sounds []domain.Sound
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sounds, query)
	return sounds, err
}

func (s *SoundStore) SetEnrichment(ctx context.Context, id string, usageCount int64, trajectory domain.Trajectory, growthRate float64, enrichedAt time.Time) error {
	query := `
		UPDATE sounds SET
			usage_count = $2,
			trajectory = $3,
			growth_rate = $4,
			enriched_at = $5,
			updated_at = now()
		WHERE id = $1`

	exec := GetExecutor(ctx, s.db)
	res, err := exec.ExecContext(ctx, query, id, usageCount, trajectory, growthRate, enrichedAt)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSoundNotFound
	}
	return nil
}
