package episodes

import (
	"context"

	"github.com/episodik/episode-browser/internal/model"
)

// Fetcher defines the interface for the episode data service.
type Fetcher interface {
	SetUpdateCallback(func(Update))
	Load(page int)
	Cancel()
}

// PageFetcher fetches a single episode page. Implemented by Client.
type PageFetcher interface {
	FetchEpisodes(ctx context.Context, page int) (*model.EpisodePage, error)
}

// Update carries the outcome of a Load call to the UI. Exactly one of Result
// and Err is set.
type Update struct {
	Page      int
	Result    *model.EpisodePage
	Err       error
	FromCache bool
}
