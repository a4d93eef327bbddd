package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sound_tracker/internal/domain"
)

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

// ReplaceForSound swaps the sound's example videos for the given set.
// Callers wrap this in a transaction so the delete and insert land together.
func (s *VideoStore) ReplaceForSound(ctx context.Context, soundID string, videos []domain.ExampleVideo) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"DELETE FROM example_videos WHERE sound_id = $1",
		soundID,
	)
	if err != nil {
		return err
	}

	if len(videos) == 0 {
		return nil
	}

	query := `
		INSERT INTO example_videos (
			sound_id, video_url, oembed_html, thumbnail_url,
			author_username, author_nickname, author_avatar_url,
			description, create_time, views, likes, shares, comments
		) VALUES (
			:sound_id, :video_url, :oembed_html, :thumbnail_url,
			:author_username, :author_nickname, :author_avatar_url,
			:description, :create_time, :views, :likes, :shares, :comments
		)`

	rows := make([]domain.ExampleVideo, len(videos))
	copy(rows, videos)
	for i := range rows {
		rows[i].SoundID = soundID
	}

	_, err = sqlx.NamedExecContext(ctx, exec, query, rows)
	return err
}

func (s *VideoStore) ListBySound(ctx context.Context, soundID string) ([]domain.ExampleVideo, error) {
	query := `
		SELECT id, sound_id, video_url, oembed_html, thumbnail_url,
		       author_username, author_nickname, author_avatar_url,
		       description, create_time, views, likes, shares, comments,
		       fetched_at
		FROM example_videos
		WHERE sound_id = $1
		ORDER BY views DESC, id ASC`

	var videos []domain.ExampleVideo
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &videos, query, soundID)
	return videos, err
}
