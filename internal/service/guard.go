package service

import (
	"errors"
	"sync"
)

// ErrRunActive is returned when a collection or enrichment run is
// already holding the guard. Callers surface it as "too many requests"
// rather than queuing.
var ErrRunActive = errors.New("a run is already in progress")

// RunGuard serializes mutating runs across every trigger path:
// scheduled collections, manual refreshes, and request-triggered
// enrichment all acquire the same guard.
type RunGuard struct {
	mu sync.Mutex
}

func NewRunGuard() *RunGuard {
	return &RunGuard{}
}

// Acquire takes the guard without blocking. On success the returned
// release function must be called exactly once.
func (g *RunGuard) Acquire() (release func(), err error) {
	if !g.mu.TryLock() {
		return nil, ErrRunActive
	}
	return g.mu.Unlock, nil
}
