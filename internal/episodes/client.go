package episodes

import (
	"context"
	"fmt"
	"strconv"
	"time"

	graphql "github.com/hasura/go-graphql-client"

	"github.com/episodik/episode-browser/internal/model"
)

// DefaultEndpoint is the public episodes API
const DefaultEndpoint = "https://rickandmortyapi.com/graphql"

// gqlClient is the part of the GraphQL client used by Client
type gqlClient interface {
	Query(ctx context.Context, q interface{}, variables map[string]interface{}, options ...graphql.Option) error
}

// episodesQuery mirrors the fixed query shape of the API:
// episodes(page: Int) { info { count pages next prev } results { id name air_date episode } }
type episodesQuery struct {
	Episodes struct {
		Info struct {
			Count int
			Pages int
			Next  *int
			Prev  *int
		}
		Results []struct {
			ID      string `graphql:"id"`
			Name    string
			AirDate string `graphql:"air_date"`
			Episode string
		}
	} `graphql:"episodes(page: $page)"`
}

// Client fetches episode pages from the GraphQL endpoint
type Client struct {
	gql gqlClient
}

// NewClient creates a client for the given endpoint
func NewClient(endpoint string) *Client {
	return &Client{gql: graphql.NewClient(endpoint, nil)}
}

// FetchEpisodes fetches one 1-based page of episodes
func (c *Client) FetchEpisodes(ctx context.Context, page int) (*model.EpisodePage, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be positive, got %d", page)
	}

	var query episodesQuery
	variables := map[string]interface{}{
		"page": page,
	}

	if err := c.gql.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("query episodes page %d: %w", page, err)
	}

	result := &model.EpisodePage{
		Page:     page,
		Episodes: make([]model.Episode, 0, len(query.Episodes.Results)),
		Info: model.PageInfo{
			Count: query.Episodes.Info.Count,
			Pages: query.Episodes.Info.Pages,
			Next:  query.Episodes.Info.Next,
			Prev:  query.Episodes.Info.Prev,
		},
		FetchedAt: time.Now(),
	}

	for _, raw := range query.Episodes.Results {
		// The API encodes ids as an ID scalar; the domain keeps integers
		id, err := strconv.Atoi(raw.ID)
		if err != nil {
			return nil, fmt.Errorf("malformed episode id %q on page %d: %w", raw.ID, page, err)
		}

		result.Episodes = append(result.Episodes, model.Episode{
			ID:      id,
			Name:    raw.Name,
			AirDate: raw.AirDate,
			Code:    raw.Episode,
		})
	}

	return result, nil
}
