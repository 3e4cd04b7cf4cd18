package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/disfrutatv/dtv/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = seriesItem{}
	_ list.Item = libraryItem{}
	_ list.Item = userItem{}
)

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie models.Movie
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string       { return i.movie.Title }
func (i movieItem) Description() string {
	desc := fmt.Sprintf("★ %.1f", i.movie.VoteAverage)
	if i.movie.ReleaseDate != "" {
		desc = fmt.Sprintf("%s • %s", i.movie.ReleaseDate, desc)
	}
	return desc
}

// seriesItem wraps [models.Series] to implement [list.Item].
type seriesItem struct {
	series models.Series
}

func (i seriesItem) FilterValue() string { return i.series.Name }
func (i seriesItem) Title() string       { return i.series.Name }
func (i seriesItem) Description() string {
	desc := fmt.Sprintf("★ %.1f", i.series.VoteAverage)
	if i.series.FirstAirDate != "" {
		desc = fmt.Sprintf("%s • %s", i.series.FirstAirDate, desc)
	}
	return desc
}

// libraryItem wraps [models.LibraryRef] to implement [list.Item].
type libraryItem struct {
	ref models.LibraryRef
}

func (i libraryItem) FilterValue() string { return fmt.Sprintf("%d", i.ref.ID) }
func (i libraryItem) Title() string       { return fmt.Sprintf("#%d", i.ref.ID) }
func (i libraryItem) Description() string { return string(i.ref.Type) }

// userItem wraps [models.User] to implement [list.Item].
type userItem struct {
	user models.User
}

func (i userItem) FilterValue() string { return i.user.Username }
func (i userItem) Title() string       { return i.user.Username }
func (i userItem) Description() string { return i.user.Email }
