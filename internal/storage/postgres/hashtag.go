package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

type HashtagStore struct {
	db *sqlx.DB
}

func NewHashtagStore(db *sqlx.DB) *HashtagStore {
	return &HashtagStore{db: db}
}

// ReplaceForSound swaps the sound's hashtags for the given set.
// Callers wrap this in a transaction so the delete and insert land together.
func (s *HashtagStore) ReplaceForSound(ctx context.Context, soundID string, hashtags []string) error {
	exec := GetExecutor(ctx, s.db)

	_, err := exec.ExecContext(ctx,
		"DELETE FROM sound_hashtags WHERE sound_id = $1",
		soundID,
	)
	if err != nil {
		return err
	}

	if len(hashtags) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO sound_hashtags (sound_id, tag) VALUES ")
	valueArgs := make([]interface{}, 0, len(hashtags)+1)
	valueArgs = append(valueArgs, soundID)

	for i, tag := range hashtags {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $")
		sb.WriteString(itoa(i + 2))
		sb.WriteString(")")
		valueArgs = append(valueArgs, tag)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	_, err = exec.ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

func (s *HashtagStore) ListBySound(ctx context.Context, soundID string) ([]string, error) {
	query := `
		SELECT tag
		FROM sound_hashtags
		WHERE sound_id = $1
		ORDER BY id ASC`

	var tags []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tags, query, soundID)
	return tags, err
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return itoa(i/10) + string(rune('0'+i%10))
}
