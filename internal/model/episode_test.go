package model

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestPageInfo_HasNext(t *testing.T) {
	tests := []struct {
		next     *int
		expected bool
	}{
		{nil, false},
		{intPtr(2), true},
		{intPtr(51), true},
	}

	for _, test := range tests {
		info := PageInfo{Next: test.next}
		result := info.HasNext()
		if result != test.expected {
			t.Errorf("HasNext() with Next=%v = %v, expected %v", test.next, result, test.expected)
		}
	}
}

func TestPageInfo_HasPrev(t *testing.T) {
	tests := []struct {
		prev     *int
		expected bool
	}{
		{nil, false},
		{intPtr(1), true},
	}

	for _, test := range tests {
		info := PageInfo{Prev: test.prev}
		result := info.HasPrev()
		if result != test.expected {
			t.Errorf("HasPrev() with Prev=%v = %v, expected %v", test.prev, result, test.expected)
		}
	}
}

func TestEpisode_GetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"Pilot", "S01E01", "Pilot"},
		{"", "S01E01", "S01E01"},
		{"   ", "S01E02", "S01E02"},
	}

	for _, test := range tests {
		ep := Episode{Name: test.name, Code: test.code}
		result := ep.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with name='%s', code='%s' = '%s', expected '%s'",
				test.name, test.code, result, test.expected)
		}
	}
}

func TestEpisode_GetSubtitle(t *testing.T) {
	tests := []struct {
		code     string
		airDate  string
		expected string
	}{
		{"S01E01", "December 2, 2013", "S01E01 · December 2, 2013"},
		{"S01E01", "", "S01E01"},
		{"", "December 2, 2013", "December 2, 2013"},
		{"", "", ""},
	}

	for _, test := range tests {
		ep := Episode{Code: test.code, AirDate: test.airDate}
		result := ep.GetSubtitle()
		if result != test.expected {
			t.Errorf("GetSubtitle() with code='%s', airDate='%s' = '%s', expected '%s'",
				test.code, test.airDate, result, test.expected)
		}
	}
}

func TestEpisodePage_Creation(t *testing.T) {
	now := time.Now()
	page := &EpisodePage{
		Page: 1,
		Episodes: []Episode{
			{ID: 1, Name: "Pilot", AirDate: "December 2, 2013", Code: "S01E01"},
		},
		Info:      PageInfo{Count: 51, Pages: 3, Next: intPtr(2)},
		FetchedAt: now,
	}

	if page.Page != 1 {
		t.Errorf("Expected Page to be 1, got %d", page.Page)
	}

	if len(page.Episodes) != 1 {
		t.Fatalf("Expected 1 episode, got %d", len(page.Episodes))
	}

	if page.Episodes[0].ID != 1 {
		t.Errorf("Expected episode ID to be 1, got %d", page.Episodes[0].ID)
	}

	if page.Info.HasPrev() {
		t.Error("Expected first page to have no previous page")
	}

	if !page.FetchedAt.Equal(now) {
		t.Errorf("Expected FetchedAt to be %v, got %v", now, page.FetchedAt)
	}
}
