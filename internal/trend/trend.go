// Package trend derives trend signals from ordered snapshot history.
// All functions are pure and perform no I/O.
package trend

import (
	"sort"
	"strings"

	"sound_tracker/internal/domain"
)

// window is how many of the most recent snapshots the trajectory fit uses.
const window = 7

// slopeThreshold is the normalized-slope cutoff separating stable from
// rising/falling. The value is a fixed policy: changing it would break
// comparability with previously stored trajectories.
const slopeThreshold = 0.05

// Trajectory classifies a sound's recent usage history. Fewer than two
// snapshots means there is no history to judge and the sound is new.
//
// The classification fits an ordinary least-squares line of usage_count
// against a 0-based index over the most recent 7 snapshots (by date),
// then normalizes the slope by the mean usage over that window.
func Trajectory(snapshots []domain.SoundSnapshot) domain.Trajectory {
	if len(snapshots) < 2 {
		return domain.TrajectoryNew
	}

	sorted := sortByDate(snapshots)
	recent := sorted
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}

	n := float64(len(recent))
	var sumX, sumY, sumXY, sumX2 float64
	for i, s := range recent {
		x := float64(i)
		y := float64(s.UsageCount)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)
	mean := sumY / n

	normalized := 0.0
	if mean > 0 {
		normalized = slope / mean
	}

	switch {
	case normalized > slopeThreshold:
		return domain.TrajectoryRising
	case normalized < -slopeThreshold:
		return domain.TrajectoryFalling
	default:
		return domain.TrajectoryStable
	}
}

// GrowthRate returns the percentage change in usage count between the
// oldest and newest snapshot. A zero oldest count reports 100 when the
// newest is positive (signals emergence without dividing by zero), 0
// otherwise.
func GrowthRate(snapshots []domain.SoundSnapshot) float64 {
	if len(snapshots) < 2 {
		return 0
	}

	sorted := sortByDate(snapshots)
	oldest := sorted[0]
	newest := sorted[len(sorted)-1]

	if oldest.UsageCount == 0 {
		if newest.UsageCount > 0 {
			return 100
		}
		return 0
	}

	return float64(newest.UsageCount-oldest.UsageCount) / float64(oldest.UsageCount) * 100
}

func sortByDate(snapshots []domain.SoundSnapshot) []domain.SoundSnapshot {
	sorted := make([]domain.SoundSnapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SnapshotDate.Before(sorted[j].SnapshotDate)
	})
	return sorted
}

// genreEntry pairs a genre with the keywords that imply it. Declaration
// order is significant: the first entry with a matching keyword wins.
type genreEntry struct {
	genre    string
	keywords []string
}

var genreTable = []genreEntry{
	{"Hip Hop", []string{"rap", "hip hop", "trap", "drill", "hiphop"}},
	{"Pop", []string{"pop", "dance pop", "synth"}},
	{"R&B", []string{"r&b", "rnb", "soul", "r & b"}},
	{"Electronic", []string{"edm", "electronic", "house", "techno", "dubstep", "bass"}},
	{"Latin", []string{"reggaeton", "latin", "bachata", "salsa", "cumbia"}},
	{"Country", []string{"country", "western", "nashville"}},
	{"Rock", []string{"rock", "punk", "metal", "grunge", "alternative"}},
	{"K-Pop", []string{"kpop", "k-pop", "korean"}},
	{"Afrobeats", []string{"afrobeat", "afro", "amapiano"}},
	{"Indie", []string{"indie", "lo-fi", "lofi"}},
}

// ClassifyGenre guesses a genre from the sound's title and artist by
// case-insensitive keyword matching. Best effort: returns nil when no
// keyword matches.
func ClassifyGenre(title, artist string) *string {
	text := strings.ToLower(title + " " + artist)

	for _, entry := range genreTable {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				genre := entry.genre
				return &genre
			}
		}
	}

	return nil
}
