package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
	"golang.org/x/time/rate"
)

// Catalog is the read surface for popular movies and series pages.
//
// Implemented by [CatalogService] (remote) and by the repositories
// package's cache adapter (offline).
type Catalog interface {
	// Movies retrieves one page of popular movies.
	Movies(ctx context.Context, page int) ([]models.Movie, error)

	// Series retrieves one page of popular TV series.
	Series(ctx context.Context, page int) ([]models.Series, error)
}

// CatalogService fetches catalog pages from the backend, which proxies TMDB.
//
// Requests are rate limited client side; the backend forwards them to TMDB
// under a single shared API key.
type CatalogService struct {
	api     *APIService
	limiter *rate.Limiter
}

var _ Catalog = (*CatalogService)(nil)

// NewCatalogService creates a CatalogService with the given requests-per-second
// budget. A non-positive budget defaults to 4 rps.
func NewCatalogService(api *APIService, rps float64) *CatalogService {
	if rps <= 0 {
		rps = 4.0
	}
	return &CatalogService{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Movies retrieves one page of popular movies via GET /api/movies.
func (s *CatalogService) Movies(ctx context.Context, page int) ([]models.Movie, error) {
	var movies []models.Movie
	if err := s.fetchPage(ctx, "/api/movies", page, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Series retrieves one page of popular TV series via GET /api/series.
func (s *CatalogService) Series(ctx context.Context, page int) ([]models.Series, error) {
	var series []models.Series
	if err := s.fetchPage(ctx, "/api/series", page, &series); err != nil {
		return nil, err
	}
	return series, nil
}

func (s *CatalogService) fetchPage(ctx context.Context, path string, page int, target any) error {
	if page <= 0 {
		page = 1
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	resp, err := s.api.Get(ctx, fmt.Sprintf("%s?page=%d", path, page))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, resp.ErrorMessage())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, resp.ErrorMessage())
	}

	return resp.Decode(target)
}
