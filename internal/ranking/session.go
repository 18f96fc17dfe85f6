package ranking

import (
	"context"
	"sync"
	"time"

	"github.com/voluntariado/match-engine/internal/metrics"
	"github.com/voluntariado/match-engine/services"
)

// Update is one delivered query outcome, tagged with the filter state that
// produced it.
type Update struct {
	FilterKey string
	Result    services.SearchResult
	Err       error
}

// Session coalesces rapid filter edits into single queries and guarantees a
// stale response never overwrites a fresher one: each result is associated
// with the filter state that produced it, and results whose filter state no
// longer matches the session's current input are discarded. This is
// cancellation by staleness, not true cancellation: a superseded query may
// still run to completion, its result just never surfaces.
type Session struct {
	searcher services.Searcher
	interval time.Duration
	metrics  *metrics.Metrics
	updates  chan Update

	mu         sync.Mutex
	timer      *time.Timer
	currentKey string
	closed     bool
}

// NewSession creates a Session over a Searcher. The interval is the debounce
// window for filter edits; a nil metrics argument disables instrumentation.
func NewSession(searcher services.Searcher, interval time.Duration, m *metrics.Metrics) *Session {
	if m == nil {
		m = metrics.NewNop()
	}
	return &Session{
		searcher: searcher,
		interval: interval,
		metrics:  m,
		updates:  make(chan Update, 1),
	}
}

// Updates delivers query outcomes for the session's most recent filter
// state. Outcomes of superseded filters are never delivered.
func (s *Session) Updates() <-chan Update {
	return s.updates
}

// SetFilter records a filter edit. The query fires after the debounce
// interval elapses without a newer edit.
func (s *Session) SetFilter(ctx context.Context, filter services.SearchFilter) {
	key := FilterKey(filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.currentKey = key
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.run(ctx, filter, key)
	})
}

// run executes the query and delivers the outcome unless the filter state
// was superseded while the query was in flight.
func (s *Session) run(ctx context.Context, filter services.SearchFilter, key string) {
	result, err := s.searcher.Search(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if key != s.currentKey {
		s.metrics.StaleDiscards.Inc()
		return
	}

	// Replace a pending undelivered update rather than blocking: only the
	// freshest outcome matters.
	select {
	case <-s.updates:
	default:
	}
	s.updates <- Update{FilterKey: key, Result: result, Err: err}
}

// Close stops the pending timer and closes the updates channel. SetFilter
// calls after Close are no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	close(s.updates)
}
