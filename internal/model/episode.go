package model

import (
	"strings"
	"time"
)

// Episode represents a single episode from the API
type Episode struct {
	ID      int
	Name    string // episode title
	AirDate string // original air date as reported by the API, e.g. "December 2, 2013"
	Code    string // season/episode code, e.g. "S01E01"
}

// PageInfo represents pagination metadata for one response page
type PageInfo struct {
	Count int  // total number of episodes
	Pages int  // total number of pages
	Next  *int // next page index, nil on the last page
	Prev  *int // previous page index, nil on the first page
}

// EpisodePage represents one fetched page of episodes
type EpisodePage struct {
	Page      int
	Episodes  []Episode
	Info      PageInfo
	FetchedAt time.Time // when the data was retrieved from the server
}

// HasNext returns true when a next page exists
func (pi PageInfo) HasNext() bool {
	return pi.Next != nil
}

// HasPrev returns true when a previous page exists
func (pi PageInfo) HasPrev() bool {
	return pi.Prev != nil
}

// GetDisplayName returns the episode name, falling back to the code
func (e Episode) GetDisplayName() string {
	if strings.TrimSpace(e.Name) != "" {
		return e.Name
	}
	return e.Code
}

// GetSubtitle returns the secondary card line, e.g. "S01E01 · December 2, 2013"
func (e Episode) GetSubtitle() string {
	parts := make([]string, 0, 2)
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	if e.AirDate != "" {
		parts = append(parts, e.AirDate)
	}
	return strings.Join(parts, " · ")
}
