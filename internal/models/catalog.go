package models

// MediaType distinguishes the two catalog collections.
//
// The remote API uses "movie" and "tv" in library references, matching
// TMDB's naming.
type MediaType string

const (
	MediaMovie  MediaType = "movie"
	MediaSeries MediaType = "tv"
)

// Valid reports whether the media type is one the API understands.
func (m MediaType) Valid() bool {
	return m == MediaMovie || m == MediaSeries
}

// Movie represents a catalog movie entry as returned by GET /api/movies.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// Series represents a catalog TV series entry as returned by GET /api/series.
type Series struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
}

// Genre is a TMDB genre tag attached to detail payloads.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TitleDetail represents extended metadata for a single movie or series,
// fetched directly from TMDB for detail screens.
//
// Movies populate Title/ReleaseDate, series populate Name/FirstAirDate;
// the remaining fields are shared.
type TitleDetail struct {
	ID           int     `json:"id"`
	Title        string  `json:"title,omitempty"`
	Name         string  `json:"name,omitempty"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	FirstAirDate string  `json:"first_air_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	Runtime      int     `json:"runtime,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
	Tagline      string  `json:"tagline,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// DisplayName returns the title for movies and the name for series.
func (d *TitleDetail) DisplayName() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// LibraryRef is a single entry in a user's favorites, pending, or viewed
// list: a catalog ID paired with its media type.
type LibraryRef struct {
	ID   int       `json:"id"`
	Type MediaType `json:"type"`
}
