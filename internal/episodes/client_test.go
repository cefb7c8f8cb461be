package episodes

import (
	"context"
	"errors"
	"strings"
	"testing"

	graphql "github.com/hasura/go-graphql-client"
)

// fakeGQL fills the query struct the way the real client would after decoding
// a response, or returns a canned error.
type fakeGQL struct {
	err       error
	lastVars  map[string]interface{}
	populate  func(q *episodesQuery)
	callCount int
}

func (f *fakeGQL) Query(ctx context.Context, q interface{}, variables map[string]interface{}, options ...graphql.Option) error {
	f.callCount++
	f.lastVars = variables

	if f.err != nil {
		return f.err
	}

	query, ok := q.(*episodesQuery)
	if !ok {
		return errors.New("unexpected query type")
	}
	if f.populate != nil {
		f.populate(query)
	}
	return nil
}

func populateFirstPage(q *episodesQuery) {
	next := 2
	q.Episodes.Info.Count = 51
	q.Episodes.Info.Pages = 3
	q.Episodes.Info.Next = &next
	q.Episodes.Info.Prev = nil
	q.Episodes.Results = []struct {
		ID      string `graphql:"id"`
		Name    string
		AirDate string `graphql:"air_date"`
		Episode string
	}{
		{ID: "1", Name: "Pilot", AirDate: "December 2, 2013", Episode: "S01E01"},
		{ID: "2", Name: "Lawnmower Dog", AirDate: "December 9, 2013", Episode: "S01E02"},
	}
}

func TestFetchEpisodes(t *testing.T) {
	gql := &fakeGQL{populate: populateFirstPage}
	client := &Client{gql: gql}

	page, err := client.FetchEpisodes(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if page.Page != 1 {
		t.Errorf("Expected page 1, got %d", page.Page)
	}

	if len(page.Episodes) != 2 {
		t.Fatalf("Expected 2 episodes, got %d", len(page.Episodes))
	}

	first := page.Episodes[0]
	if first.ID != 1 || first.Name != "Pilot" || first.Code != "S01E01" {
		t.Errorf("Unexpected first episode: %+v", first)
	}

	if page.Info.Count != 51 || page.Info.Pages != 3 {
		t.Errorf("Unexpected page info: %+v", page.Info)
	}

	if !page.Info.HasNext() || page.Info.HasPrev() {
		t.Error("Expected first page to have next but no prev")
	}

	if page.FetchedAt.IsZero() {
		t.Error("Expected FetchedAt to be set")
	}

	if got := gql.lastVars["page"]; got != 1 {
		t.Errorf("Expected page variable 1, got %v", got)
	}
}

func TestFetchEpisodes_InvalidPage(t *testing.T) {
	gql := &fakeGQL{populate: populateFirstPage}
	client := &Client{gql: gql}

	for _, page := range []int{0, -1} {
		_, err := client.FetchEpisodes(context.Background(), page)
		if err == nil {
			t.Errorf("Expected error for page %d, got nil", page)
		}
	}

	if gql.callCount != 0 {
		t.Errorf("Expected no queries for invalid pages, got %d", gql.callCount)
	}
}

func TestFetchEpisodes_QueryError(t *testing.T) {
	queryErr := errors.New("connection refused")
	client := &Client{gql: &fakeGQL{err: queryErr}}

	_, err := client.FetchEpisodes(context.Background(), 1)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	if !errors.Is(err, queryErr) {
		t.Errorf("Expected wrapped query error, got %v", err)
	}
}

func TestFetchEpisodes_MalformedID(t *testing.T) {
	gql := &fakeGQL{populate: func(q *episodesQuery) {
		populateFirstPage(q)
		q.Episodes.Results[1].ID = "not-a-number"
	}}
	client := &Client{gql: gql}

	_, err := client.FetchEpisodes(context.Background(), 1)
	if err == nil {
		t.Fatal("Expected error for malformed id, got nil")
	}

	if !strings.Contains(err.Error(), "not-a-number") {
		t.Errorf("Expected error to name the malformed id, got %v", err)
	}
}
