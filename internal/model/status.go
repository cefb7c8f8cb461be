package model

// FetchStatus represents the status of an episode page fetch
type FetchStatus string

const (
	// StatusLoading means a request is in flight
	StatusLoading FetchStatus = "Loading"

	// StatusReady means the page was fetched and can be rendered
	StatusReady FetchStatus = "Ready"

	// StatusError means the fetch failed and an error state is shown
	StatusError FetchStatus = "Error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsSettled returns true if the fetch reached a terminal state
func (fs FetchStatus) IsSettled() bool {
	return fs == StatusReady || fs == StatusError
}
