package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSearcherDropsStaleResponse(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	applied := []string{}

	s := &Searcher{
		Do: func(ctx context.Context, term string) Envelope {
			if term == "si" {
				<-release // first request is slow
			}
			return Envelope{Success: true, Message: term}
		},
		Apply: func(term string, env Envelope) {
			mu.Lock()
			applied = append(applied, term)
			mu.Unlock()
		},
	}

	s.Search(context.Background(), "si")
	s.Search(context.Background(), "siam")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(applied) == 1
	}, time.Second, 5*time.Millisecond)

	// let the slow stale request settle; it must be dropped
	close(release)
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"siam"}, applied)
}

func TestSearcherDebounceCoalescesKeystrokes(t *testing.T) {
	var mu sync.Mutex
	terms := []string{}
	done := make(chan struct{}, 4)

	s := &Searcher{
		Delay: 20 * time.Millisecond,
		Do: func(ctx context.Context, term string) Envelope {
			return Envelope{Success: true}
		},
		Apply: func(term string, env Envelope) {
			mu.Lock()
			terms = append(terms, term)
			mu.Unlock()
			done <- struct{}{}
		},
	}

	ctx := context.Background()
	s.Type(ctx, "s")
	s.Type(ctx, "si")
	s.Type(ctx, "sia")
	s.Type(ctx, "siam")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("debounced search never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"siam"}, terms, "only the last keystroke should search")
}
