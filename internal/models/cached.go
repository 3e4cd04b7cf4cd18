package models

import (
	"fmt"
	"time"
)

// CachedTitle is a locally persisted catalog entry, written when the user
// opts into caching fetched movie/series pages for offline listing.
//
// RemoteID is the catalog service's numeric ID; the pair (media_type,
// remote_id) is unique per row.
type CachedTitle struct {
	id          string
	sequence    int
	mediaType   MediaType
	remoteID    int
	name        string
	overview    string
	posterPath  string
	releasedOn  string
	voteAverage float64
	page        int
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

var _ Model = (*CachedTitle)(nil)

// NewCachedMovie builds a CachedTitle from a catalog movie entry.
func NewCachedMovie(sequence, page int, m Movie) *CachedTitle {
	now := time.Now()
	return &CachedTitle{
		sequence:    sequence,
		mediaType:   MediaMovie,
		remoteID:    m.ID,
		name:        m.Title,
		overview:    m.Overview,
		posterPath:  m.PosterPath,
		releasedOn:  m.ReleaseDate,
		voteAverage: m.VoteAverage,
		page:        page,
		createdAt:   now,
		updatedAt:   now,
	}
}

// NewCachedSeries builds a CachedTitle from a catalog series entry.
func NewCachedSeries(sequence, page int, s Series) *CachedTitle {
	now := time.Now()
	return &CachedTitle{
		sequence:    sequence,
		mediaType:   MediaSeries,
		remoteID:    s.ID,
		name:        s.Name,
		overview:    s.Overview,
		posterPath:  s.PosterPath,
		releasedOn:  s.FirstAirDate,
		voteAverage: s.VoteAverage,
		page:        page,
		createdAt:   now,
		updatedAt:   now,
	}
}

// RestoreCachedTitle reconstructs a CachedTitle from database columns.
func RestoreCachedTitle(sequence int, mediaType MediaType, remoteID int, name, overview, posterPath, releasedOn string, voteAverage float64, page int) *CachedTitle {
	now := time.Now()
	return &CachedTitle{
		sequence:    sequence,
		mediaType:   mediaType,
		remoteID:    remoteID,
		name:        name,
		overview:    overview,
		posterPath:  posterPath,
		releasedOn:  releasedOn,
		voteAverage: voteAverage,
		page:        page,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (c *CachedTitle) ID() string            { return c.id }
func (c *CachedTitle) Sequence() int         { return c.sequence }
func (c *CachedTitle) MediaType() MediaType  { return c.mediaType }
func (c *CachedTitle) RemoteID() int         { return c.remoteID }
func (c *CachedTitle) Name() string          { return c.name }
func (c *CachedTitle) Overview() string      { return c.overview }
func (c *CachedTitle) PosterPath() string    { return c.posterPath }
func (c *CachedTitle) ReleasedOn() string    { return c.releasedOn }
func (c *CachedTitle) VoteAverage() float64  { return c.voteAverage }
func (c *CachedTitle) Page() int             { return c.page }
func (c *CachedTitle) CreatedAt() time.Time  { return c.createdAt }
func (c *CachedTitle) UpdatedAt() time.Time  { return c.updatedAt }
func (c *CachedTitle) DeletedAt() *time.Time { return c.deletedAt }

func (c *CachedTitle) SetID(id string)           { c.id = id }
func (c *CachedTitle) SetUpdatedAt(t time.Time)  { c.updatedAt = t }
func (c *CachedTitle) SetCreatedAt(t time.Time)  { c.createdAt = t }
func (c *CachedTitle) SetDeletedAt(t *time.Time) { c.deletedAt = t }
func (c *CachedTitle) SetSequence(s int)         { c.sequence = s }

// Validate checks that the cached title has a valid media type, a remote
// ID, and a display name.
func (c *CachedTitle) Validate() error {
	if !c.mediaType.Valid() {
		return fmt.Errorf("invalid media type: %q", c.mediaType)
	}
	if c.remoteID <= 0 {
		return fmt.Errorf("remote ID must be positive, got %d", c.remoteID)
	}
	if c.name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Movie converts the cached row back into a catalog movie DTO.
func (c *CachedTitle) Movie() Movie {
	return Movie{
		ID:          c.remoteID,
		Title:       c.name,
		Overview:    c.overview,
		PosterPath:  c.posterPath,
		ReleaseDate: c.releasedOn,
		VoteAverage: c.voteAverage,
	}
}

// Series converts the cached row back into a catalog series DTO.
func (c *CachedTitle) Series() Series {
	return Series{
		ID:           c.remoteID,
		Name:         c.name,
		Overview:     c.overview,
		PosterPath:   c.posterPath,
		FirstAirDate: c.releasedOn,
		VoteAverage:  c.voteAverage,
	}
}
