package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sound_tracker/internal/domain"
)

func snapshots(counts ...int64) []domain.SoundSnapshot {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.SoundSnapshot, len(counts))
	for i, c := range counts {
		out[i] = domain.SoundSnapshot{
			SoundID:      "s1",
			SnapshotDate: base.AddDate(0, 0, i),
			UsageCount:   c,
		}
	}
	return out
}

func TestTrajectory(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.SoundSnapshot
		want domain.Trajectory
	}{
		{"empty", nil, domain.TrajectoryNew},
		{"single point", snapshots(500), domain.TrajectoryNew},
		{"strictly increasing", snapshots(100, 150, 220, 310, 450), domain.TrajectoryRising},
		{"strictly decreasing", snapshots(450, 310, 220, 150, 100), domain.TrajectoryFalling},
		{"constant", snapshots(300, 300, 300, 300), domain.TrajectoryStable},
		{"all zero usage", snapshots(0, 0, 0), domain.TrajectoryStable},
		{"small wobble stays stable", snapshots(1000, 1010, 995, 1005), domain.TrajectoryStable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Trajectory(tc.in))
		})
	}
}

func TestTrajectory_UsesOnlyRecentWindow(t *testing.T) {
	// Ten days of decline followed by a seven-day surge: only the last
	// seven points feed the fit, so the result is rising.
	counts := []int64{900, 850, 800, 750, 700, 650, 600, 550, 500, 450,
		460, 520, 610, 730, 880, 1060, 1280}
	assert.Equal(t, domain.TrajectoryRising, Trajectory(snapshots(counts...)))
}

func TestTrajectory_UnsortedInput(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.SoundSnapshot{
		{SnapshotDate: base.AddDate(0, 0, 2), UsageCount: 400},
		{SnapshotDate: base, UsageCount: 100},
		{SnapshotDate: base.AddDate(0, 0, 1), UsageCount: 200},
	}
	assert.Equal(t, domain.TrajectoryRising, Trajectory(in))
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name string
		in   []domain.SoundSnapshot
		want float64
	}{
		{"empty", nil, 0},
		{"single point", snapshots(100), 0},
		{"fifty percent", snapshots(100, 120, 150), 50.0},
		{"decline", snapshots(200, 100), -50.0},
		{"zero oldest, positive newest", snapshots(0, 5), 100},
		{"zero oldest, zero newest", snapshots(0, 0), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, GrowthRate(tc.in), 1e-9)
		})
	}
}

func TestGrowthRate_UnsortedInput(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	in := []domain.SoundSnapshot{
		{SnapshotDate: base.AddDate(0, 0, 5), UsageCount: 150},
		{SnapshotDate: base, UsageCount: 100},
	}
	assert.InDelta(t, 50.0, GrowthRate(in), 1e-9)
}

func TestClassifyGenre(t *testing.T) {
	tests := []struct {
		title  string
		artist string
		want   string
	}{
		{"Midnight Trap Anthem", "DJ X", "Hip Hop"},
		{"summer house mix", "someone", "Electronic"},
		{"Neon Nights", "K-Pop Star", "Pop"}, // "pop" inside "K-Pop" matches the earlier Pop entry
		{"Corazon", "Reggaeton Kings", "Latin"},
		{"lofi beats to study to", "anon", "Indie"},
	}

	for _, tc := range tests {
		got := ClassifyGenre(tc.title, tc.artist)
		if assert.NotNil(t, got, "%s / %s", tc.title, tc.artist) {
			assert.Equal(t, tc.want, *got)
		}
	}
}

func TestClassifyGenre_NoMatch(t *testing.T) {
	assert.Nil(t, ClassifyGenre("Untitled", "Unknown Artist"))
}
