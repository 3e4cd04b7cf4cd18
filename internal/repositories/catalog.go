package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/shared"
)

// CatalogRepository implements [models.Repository] for [models.CachedTitle] persistence.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new [CatalogRepository] with the given database connection
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Create inserts a cached title with generated ID and sequence
func (r *CatalogRepository) Create(title *models.CachedTitle) error {
	sequence, err := NextSequence(r.db, "cached_titles")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	title.SetSequence(sequence)
	title.SetID(shared.GenerateID())

	if err := title.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO cached_titles (id, sequence, media_type, remote_id, name, overview, poster_path, released_on, vote_average, page, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		title.ID(), title.Sequence(), string(title.MediaType()), title.RemoteID(),
		title.Name(), title.Overview(), title.PosterPath(), title.ReleasedOn(),
		title.VoteAverage(), title.Page(), title.CreatedAt(), title.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert cached title: %w", err)
	}

	return nil
}

// Get retrieves a cached title by ID, excluding soft-deleted rows
func (r *CatalogRepository) Get(id string) (*models.CachedTitle, error) {
	query := `
		SELECT id, sequence, media_type, remote_id, name, overview, poster_path, released_on, vote_average, page, created_at, updated_at, deleted_at
		FROM cached_titles
		WHERE id = ? AND deleted_at IS NULL
	`

	title, err := scanTitle(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cached title not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached title: %w", err)
	}

	return title, nil
}

// GetByRemoteID retrieves a cached title by its catalog service identity
func (r *CatalogRepository) GetByRemoteID(media models.MediaType, remoteID int) (*models.CachedTitle, error) {
	query := `
		SELECT id, sequence, media_type, remote_id, name, overview, poster_path, released_on, vote_average, page, created_at, updated_at, deleted_at
		FROM cached_titles
		WHERE media_type = ? AND remote_id = ? AND deleted_at IS NULL
	`

	title, err := scanTitle(r.db.QueryRow(query, string(media), remoteID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cached title not found: %s/%d", media, remoteID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cached title: %w", err)
	}

	return title, nil
}

// Update modifies an existing cached title
func (r *CatalogRepository) Update(title *models.CachedTitle) error {
	if err := title.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	title.SetUpdatedAt(now)

	query := `
		UPDATE cached_titles
		SET name = ?, overview = ?, poster_path = ?, released_on = ?, vote_average = ?, page = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		title.Name(), title.Overview(), title.PosterPath(), title.ReleasedOn(),
		title.VoteAverage(), title.Page(), now, title.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update cached title: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("cached title not found or already deleted: %s", title.ID())
	}

	return nil
}

// Delete soft-deletes a cached title by ID
func (r *CatalogRepository) Delete(id string) error {
	result, err := r.db.Exec("UPDATE cached_titles SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete cached title: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("cached title not found or already deleted: %s", id)
	}

	return nil
}

// List retrieves cached titles matching the given criteria, excluding soft-deleted rows.
// Supported criteria: "media_type" (string), "page" (int).
func (r *CatalogRepository) List(criteria map[string]any) ([]*models.CachedTitle, error) {
	query := `
		SELECT id, sequence, media_type, remote_id, name, overview, poster_path, released_on, vote_average, page, created_at, updated_at, deleted_at
		FROM cached_titles
		WHERE deleted_at IS NULL
	`

	args := []any{}

	if media, ok := criteria["media_type"].(string); ok && media != "" {
		query += " AND media_type = ?"
		args = append(args, media)
	}

	if page, ok := criteria["page"].(int); ok && page > 0 {
		query += " AND page = ?"
		args = append(args, page)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached titles: %w", err)
	}
	defer rows.Close()

	var titles []*models.CachedTitle
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cached title: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return titles, nil
}

// CacheMovies upserts one fetched page of movies. Rows already cached for
// the same remote ID are refreshed in place rather than duplicated.
func (r *CatalogRepository) CacheMovies(page int, movies []models.Movie) error {
	for _, movie := range movies {
		cached := models.NewCachedMovie(0, page, movie)
		if err := r.upsert(cached); err != nil {
			return err
		}
	}
	return nil
}

// CacheSeries upserts one fetched page of series.
func (r *CatalogRepository) CacheSeries(page int, series []models.Series) error {
	for _, s := range series {
		cached := models.NewCachedSeries(0, page, s)
		if err := r.upsert(cached); err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogRepository) upsert(title *models.CachedTitle) error {
	existing, err := r.GetByRemoteID(title.MediaType(), title.RemoteID())
	if err == nil && existing != nil {
		refreshed := models.RestoreCachedTitle(
			existing.Sequence(), title.MediaType(), title.RemoteID(),
			title.Name(), title.Overview(), title.PosterPath(), title.ReleasedOn(),
			title.VoteAverage(), title.Page(),
		)
		refreshed.SetID(existing.ID())
		return r.Update(refreshed)
	}

	err = r.Create(title)
	if err != nil {
		// Concurrent writers can still collide on (media_type, remote_id).
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil
		}
		return fmt.Errorf("failed to cache title: %w", err)
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanTitle
type scanner interface {
	Scan(dest ...any) error
}

func scanTitle(s scanner) (*models.CachedTitle, error) {
	var (
		id          string
		sequence    int
		mediaType   string
		remoteID    int
		name        string
		overview    sql.NullString
		posterPath  sql.NullString
		releasedOn  sql.NullString
		voteAverage float64
		page        int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   sql.NullTime
	)

	if err := s.Scan(&id, &sequence, &mediaType, &remoteID, &name, &overview, &posterPath, &releasedOn, &voteAverage, &page, &createdAt, &updatedAt, &deletedAt); err != nil {
		return nil, err
	}

	title := models.RestoreCachedTitle(sequence, models.MediaType(mediaType), remoteID, name, overview.String, posterPath.String, releasedOn.String, voteAverage, page)
	title.SetID(id)
	title.SetCreatedAt(createdAt)
	title.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		title.SetDeletedAt(&deletedAt.Time)
	}

	return title, nil
}

// CachedCatalog adapts [CatalogRepository] to the services.Catalog read
// interface for offline listing.
type CachedCatalog struct {
	repo *CatalogRepository
}

var _ services.Catalog = (*CachedCatalog)(nil)

// NewCachedCatalog creates a read-only catalog view over the local cache
func NewCachedCatalog(repo *CatalogRepository) *CachedCatalog {
	return &CachedCatalog{repo: repo}
}

// Movies lists cached movies for the given page. The context is accepted
// for interface symmetry; reads are local.
func (c *CachedCatalog) Movies(_ context.Context, page int) ([]models.Movie, error) {
	titles, err := c.repo.List(map[string]any{"media_type": string(models.MediaMovie), "page": page})
	if err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0, len(titles))
	for _, t := range titles {
		movies = append(movies, t.Movie())
	}
	return movies, nil
}

// Series lists cached series for the given page.
func (c *CachedCatalog) Series(_ context.Context, page int) ([]models.Series, error) {
	titles, err := c.repo.List(map[string]any{"media_type": string(models.MediaSeries), "page": page})
	if err != nil {
		return nil, err
	}

	series := make([]models.Series, 0, len(titles))
	for _, t := range titles {
		series = append(series, t.Series())
	}
	return series, nil
}
