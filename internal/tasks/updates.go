package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchMovies Phase = iota
	FetchSeries
	FetchUsers
	CachePage
	Done
)

func (p Phase) String() string {
	switch p {
	case FetchMovies:
		return "fetch_movies"
	case FetchSeries:
		return "fetch_series"
	case FetchUsers:
		return "fetch_users"
	case CachePage:
		return "cache_page"
	case Done:
		return "done"
	default:
		return ""
	}
}

func fetchMoviesUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchMovies,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching movie page %d/%d...", step, total),
	}
}

func fetchSeriesUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSeries,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Fetching series page %d/%d...", step, total),
	}
}

func cachePageUpdate(step, total, count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CachePage,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Cached %d titles", count),
	}
}

func doneUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Done,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Sync complete: %d titles cached", count),
	}
}
