//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"sound_tracker/internal/domain"
	"sound_tracker/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_sounds.up.sql"),
			filepath.Join(migrationsPath, "002_create_videos_hashtags.up.sql"),
			filepath.Join(migrationsPath, "003_create_collection_logs.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sound_hashtags")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM example_videos")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sound_snapshots")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sounds")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM collection_logs")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertSound(id string, rank int) {
	store := NewSoundStore(s.db)
	err := store.Upsert(s.ctx, &domain.Sound{
		ID:         id,
		Title:      "Test Sound " + id,
		Artist:     "Test Artist",
		Duration:   30,
		UsageCount: 1000,
		Trajectory: domain.TrajectoryNew,
		Rank:       rank,
	})
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestSoundStore_Upsert_Insert() {
	store := NewSoundStore(s.db)

	sound := &domain.Sound{
		ID:         "7001",
		Title:      "Midnight Drive",
		Artist:     "Nova",
		Duration:   45,
		Genre:      utils.Ptr("Pop"),
		CoverURL:   utils.Ptr("https://example.com/cover.jpg"),
		UsageCount: 266500,
		Trajectory: domain.TrajectoryNew,
		GrowthRate: 0,
		Rank:       1,
	}

	err := store.Upsert(s.ctx, sound)
	s.NoError(err)

	got, err := store.GetByID(s.ctx, "7001")
	s.NoError(err)
	s.Equal("Midnight Drive", got.Title)
	s.Equal(int64(266500), got.UsageCount)
	s.Equal(1, got.Rank)
	s.Nil(got.EnrichedAt)
}

func (s *PostgresIntegrationSuite) TestSoundStore_Upsert_UpdateKeepsEnrichedFields() {
	store := NewSoundStore(s.db)

	first := &domain.Sound{
		ID:         "7001",
		Title:      "Midnight Drive",
		Artist:     "Nova",
		Genre:      utils.Ptr("Pop"),
		CoverURL:   utils.Ptr("https://example.com/cover.jpg"),
		UsageCount: 1000,
		Trajectory: domain.TrajectoryNew,
		Rank:       1,
	}
	s.NoError(store.Upsert(s.ctx, first))

	// Later collection without cover art must not wipe the stored one.
	second := &domain.Sound{
		ID:         "7001",
		Title:      "Midnight Drive (Sped Up)",
		Artist:     "Nova",
		UsageCount: 2000,
		Trajectory: domain.TrajectoryRising,
		GrowthRate: 100,
		Rank:       3,
	}
	s.NoError(store.Upsert(s.ctx, second))

	got, err := store.GetByID(s.ctx, "7001")
	s.NoError(err)
	s.Equal("Midnight Drive (Sped Up)", got.Title)
	s.Equal(int64(2000), got.UsageCount)
	s.Equal(domain.TrajectoryRising, got.Trajectory)
	s.Equal(3, got.Rank)
	if s.NotNil(got.CoverURL) {
		s.Equal("https://example.com/cover.jpg", *got.CoverURL)
	}
	if s.NotNil(got.Genre) {
		s.Equal("Pop", *got.Genre)
	}
}

func (s *PostgresIntegrationSuite) TestSoundStore_GetByID_NotFound() {
	store := NewSoundStore(s.db)

	_, err := store.GetByID(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrSoundNotFound)
}

func (s *PostgresIntegrationSuite) TestSoundStore_ListByRank() {
	s.insertSound("7003", 3)
	s.insertSound("7001", 1)
	s.insertSound("7002", 2)

	store := NewSoundStore(s.db)
	sounds, err := store.ListByRank(s.ctx)
	s.NoError(err)
	s.Require().Len(sounds, 3)
	s.Equal("7001", sounds[0].ID)
	s.Equal("7002", sounds[1].ID)
	s.Equal("7003", sounds[2].ID)
}

func (s *PostgresIntegrationSuite) TestSoundStore_SetEnrichment() {
	s.insertSound("7001", 1)
	store := NewSoundStore(s.db)

	enrichedAt := time.Now().UTC().Truncate(time.Microsecond)
	err := store.SetEnrichment(s.ctx, "7001", 266500, domain.TrajectoryRising, 42.5, enrichedAt)
	s.NoError(err)

	got, err := store.GetByID(s.ctx, "7001")
	s.NoError(err)
	s.Equal(int64(266500), got.UsageCount)
	s.Equal(domain.TrajectoryRising, got.Trajectory)
	s.Equal(42.5, got.GrowthRate)
	if s.NotNil(got.EnrichedAt) {
		s.WithinDuration(enrichedAt, *got.EnrichedAt, time.Second)
	}

	err = store.SetEnrichment(s.ctx, "missing", 1, domain.TrajectoryStable, 0, enrichedAt)
	s.ErrorIs(err, domain.ErrSoundNotFound)
}

func (s *PostgresIntegrationSuite) TestSnapshotStore_UpsertAndList() {
	s.insertSound("7001", 1)
	store := NewSnapshotStore(s.db)

	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := store.Upsert(s.ctx, &domain.SoundSnapshot{
			SoundID:      "7001",
			SnapshotDate: day.AddDate(0, 0, i),
			UsageCount:   int64(1000 * (i + 1)),
			Rank:         i + 1,
			AvgViews:     500,
		})
		s.NoError(err)
	}

	// Re-writing the same day overwrites, never duplicates.
	err := store.Upsert(s.ctx, &domain.SoundSnapshot{
		SoundID:      "7001",
		SnapshotDate: day,
		UsageCount:   1500,
		Rank:         1,
	})
	s.NoError(err)

	snapshots, err := store.ListBySound(s.ctx, "7001")
	s.NoError(err)
	s.Require().Len(snapshots, 3)
	s.Equal(int64(1500), snapshots[0].UsageCount)
	s.Equal(int64(3000), snapshots[2].UsageCount)
}

func (s *PostgresIntegrationSuite) TestSnapshotStore_Sparkline() {
	s.insertSound("7001", 1)
	store := NewSnapshotStore(s.db)

	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		err := store.Upsert(s.ctx, &domain.SoundSnapshot{
			SoundID:      "7001",
			SnapshotDate: day.AddDate(0, 0, i),
			UsageCount:   int64(100 + i),
		})
		s.NoError(err)
	}

	counts, err := store.Sparkline(s.ctx, "7001", 14)
	s.NoError(err)
	s.Require().Len(counts, 14)
	s.Equal(int64(106), counts[0])
	s.Equal(int64(119), counts[13])
}

func (s *PostgresIntegrationSuite) TestVideoStore_ReplaceForSound() {
	s.insertSound("7001", 1)
	store := NewVideoStore(s.db)

	first := []domain.ExampleVideo{
		{VideoURL: "https://www.tiktok.com/@a/video/1", Views: 1000, Likes: 100},
		{VideoURL: "https://www.tiktok.com/@b/video/2", Views: 2000, Likes: 200, OEmbedHTML: utils.Ptr("<blockquote/>")},
	}
	s.NoError(store.ReplaceForSound(s.ctx, "7001", first))

	second := []domain.ExampleVideo{
		{VideoURL: "https://www.tiktok.com/@c/video/3", Views: 3000, AuthorUsername: utils.Ptr("creator_c")},
	}
	s.NoError(store.ReplaceForSound(s.ctx, "7001", second))

	videos, err := store.ListBySound(s.ctx, "7001")
	s.NoError(err)
	s.Require().Len(videos, 1)
	s.Equal("https://www.tiktok.com/@c/video/3", videos[0].VideoURL)
	s.Equal(int64(3000), videos[0].Views)
	if s.NotNil(videos[0].AuthorUsername) {
		s.Equal("creator_c", *videos[0].AuthorUsername)
	}
	s.False(videos[0].FetchedAt.IsZero())
}

func (s *PostgresIntegrationSuite) TestVideoStore_ReplaceForSound_EmptyClears() {
	s.insertSound("7001", 1)
	store := NewVideoStore(s.db)

	s.NoError(store.ReplaceForSound(s.ctx, "7001", []domain.ExampleVideo{
		{VideoURL: "https://www.tiktok.com/@a/video/1"},
	}))
	s.NoError(store.ReplaceForSound(s.ctx, "7001", nil))

	videos, err := store.ListBySound(s.ctx, "7001")
	s.NoError(err)
	s.Empty(videos)
}

func (s *PostgresIntegrationSuite) TestHashtagStore_ReplaceForSound() {
	s.insertSound("7001", 1)
	store := NewHashtagStore(s.db)

	s.NoError(store.ReplaceForSound(s.ctx, "7001", []string{"fyp", "dance"}))
	s.NoError(store.ReplaceForSound(s.ctx, "7001", []string{"trend", "viral", "fyp"}))

	tags, err := store.ListBySound(s.ctx, "7001")
	s.NoError(err)
	s.Equal([]string{"trend", "viral", "fyp"}, tags)
}

func (s *PostgresIntegrationSuite) TestCollectionLogStore_Lifecycle() {
	store := NewCollectionLogStore(s.db)

	last, err := store.LastSuccess(s.ctx)
	s.NoError(err)
	s.Nil(last)

	id, err := store.Start(s.ctx)
	s.NoError(err)
	s.Greater(id, int64(0))

	log, err := store.Get(s.ctx, id)
	s.NoError(err)
	s.Equal(domain.CollectionRunning, log.Status)
	s.Nil(log.CompletedAt)

	err = store.Finalize(s.ctx, id, domain.CollectionSuccess, "tikapi", 10, "")
	s.NoError(err)

	log, err = store.Get(s.ctx, id)
	s.NoError(err)
	s.Equal(domain.CollectionSuccess, log.Status)
	s.NotNil(log.CompletedAt)
	s.Equal(10, log.SoundsCollected)
	if s.NotNil(log.SourceUsed) {
		s.Equal("tikapi", *log.SourceUsed)
	}
	s.Nil(log.ErrorMessage)

	last, err = store.LastSuccess(s.ctx)
	s.NoError(err)
	s.NotNil(last)
}

func (s *PostgresIntegrationSuite) TestCollectionLogStore_FailedRunNotLastSuccess() {
	store := NewCollectionLogStore(s.db)

	id, err := store.Start(s.ctx)
	s.NoError(err)

	err = store.Finalize(s.ctx, id, domain.CollectionFailed, "", 0, "All sources failed")
	s.NoError(err)

	last, err := store.LastSuccess(s.ctx)
	s.NoError(err)
	s.Nil(last)

	log, err := store.Get(s.ctx, id)
	s.NoError(err)
	s.Nil(log.SourceUsed)
	if s.NotNil(log.ErrorMessage) {
		s.Equal("All sources failed", *log.ErrorMessage)
	}
}

func (s *PostgresIntegrationSuite) TestTransaction_RollbackLeavesNothing() {
	tm := NewTransactionManager(s.db)
	sounds := NewSoundStore(s.db)
	snapshots := NewSnapshotStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := sounds.Upsert(ctx, &domain.Sound{
			ID:         "7001",
			Title:      "Rolled Back",
			Artist:     "Nobody",
			Trajectory: domain.TrajectoryNew,
		}); err != nil {
			return err
		}
		if err := snapshots.Upsert(ctx, &domain.SoundSnapshot{
			SoundID:      "7001",
			SnapshotDate: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			UsageCount:   10,
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	_, err = sounds.GetByID(s.ctx, "7001")
	s.ErrorIs(err, domain.ErrSoundNotFound)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	sounds := NewSoundStore(s.db)
	videos := NewVideoStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := sounds.Upsert(ctx, &domain.Sound{
			ID:         "7001",
			Title:      "Committed",
			Artist:     "Somebody",
			Trajectory: domain.TrajectoryNew,
		}); err != nil {
			return err
		}
		return videos.ReplaceForSound(ctx, "7001", []domain.ExampleVideo{
			{VideoURL: "https://www.tiktok.com/@a/video/1"},
		})
	})
	s.NoError(err)

	got, err := videos.ListBySound(s.ctx, "7001")
	s.NoError(err)
	s.Len(got, 1)
}
