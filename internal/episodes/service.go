package episodes

import (
	"context"
	"log/slog"
	"sync"

	"github.com/episodik/episode-browser/internal/model"
)

// Service wraps a PageFetcher with asynchronous, last-request-wins loading.
// Only the response to the most recently issued Load is allowed to reach the
// callback; superseded in-flight requests are cancelled and their results
// discarded on arrival.
type Service struct {
	fetcher PageFetcher

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	cache    map[int]*model.EpisodePage
	onUpdate func(Update)
}

// NewService creates a new episode fetch service
func NewService(fetcher PageFetcher) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   make(map[int]*model.EpisodePage),
	}
}

// SetUpdateCallback sets the callback function for fetch results. The callback
// is invoked from a fetch goroutine, or synchronously on the caller's goroutine
// when Load answers from cache; UI consumers must hop to the UI thread.
func (s *Service) SetUpdateCallback(callback func(Update)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Load requests a page asynchronously, superseding any in-flight request
func (s *Service) Load(page int) {
	s.mu.Lock()

	// Supersede the previous request before anything else so its result can
	// no longer win, even when this page is served from cache
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	seq := s.seq

	if cached, exists := s.cache[page]; exists {
		s.mu.Unlock()
		slog.Debug("Serving episode page from cache", "page", page)
		s.notify(Update{Page: page, Result: cached, FromCache: true})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()

		result, err := s.fetcher.FetchEpisodes(ctx, page)

		s.mu.Lock()
		if seq != s.seq {
			s.mu.Unlock()
			slog.Debug("Discarding superseded episode page", "page", page)
			return
		}
		if err == nil {
			s.cache[page] = result
		}
		s.mu.Unlock()

		if err != nil {
			slog.Warn("Episode page fetch failed", "page", page, "error", err)
			s.notify(Update{Page: page, Err: err})
			return
		}

		slog.Debug("Episode page fetched", "page", page, "episodes", len(result.Episodes))
		s.notify(Update{Page: page, Result: result})
	}()
}

// Cancel aborts any in-flight request without delivering a result
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}

// notify delivers an update to the registered callback, if any
func (s *Service) notify(update Update) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}
