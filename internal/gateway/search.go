package gateway

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultSearchDelay matches the form's search-as-you-type debounce.
const DefaultSearchDelay = 150 * time.Millisecond

// Searcher debounces search-as-you-type and tags every dispatched
// request with a monotonic sequence number. A response is applied only
// when it belongs to the newest dispatched request, so a slow stale
// response can never overwrite fresher results.
type Searcher struct {
	// Delay between the last keystroke and the dispatch; zero means
	// DefaultSearchDelay.
	Delay time.Duration
	// Do performs the actual gateway call.
	Do func(ctx context.Context, term string) Envelope
	// Apply receives the term and envelope of the winning request.
	Apply func(term string, env Envelope)

	mu    sync.Mutex
	timer *time.Timer
	seq   atomic.Uint64
}

// Type registers a keystroke. The search fires after the debounce delay
// unless another keystroke arrives first.
func (s *Searcher) Type(ctx context.Context, term string) {
	delay := s.Delay
	if delay <= 0 {
		delay = DefaultSearchDelay
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, func() {
		s.Search(ctx, term)
	})
}

// Search dispatches immediately (still sequenced). Used by Type's timer
// and by callers that want an explicit search button.
func (s *Searcher) Search(ctx context.Context, term string) {
	n := s.seq.Add(1)
	go func() {
		env := s.Do(ctx, term)
		s.mu.Lock()
		defer s.mu.Unlock()
		// drop the response when a newer request has been dispatched
		if s.seq.Load() != n {
			return
		}
		if s.Apply != nil {
			s.Apply(term, env)
		}
	}()
}
