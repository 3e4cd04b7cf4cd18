// package tasks implements bulk catalog operations for the dtv client.
package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/shared"
	"github.com/disfrutatv/dtv/internal/store"
)

// PageError records a page fetch that failed during a sync.
type PageError struct {
	Media models.MediaType
	Page  int
	Err   error
}

// SyncResult summarizes a bulk catalog sync.
type SyncResult struct {
	MoviesCached int         // Movie entries written to the cache
	SeriesCached int         // Series entries written to the cache
	PagesFetched int         // Pages successfully fetched
	Errors       []PageError // Pages that failed; partial results are kept
}

// TitleCacher persists fetched catalog pages. Implemented by
// repositories.CatalogRepository.
type TitleCacher interface {
	CacheMovies(page int, movies []models.Movie) error
	CacheSeries(page int, series []models.Series) error
}

// SyncEngine defines bulk operations against the catalog.
type SyncEngine interface {
	// Sync fetches the first n pages of movies and series and writes them
	// to the local cache, reporting progress on the given channel.
	Sync(ctx context.Context, progress chan<- ProgressUpdate, pages int) (*SyncResult, error)

	// Refresh reloads the store's collections in parallel: movies, series,
	// and, when admin is true, the user list.
	Refresh(ctx context.Context, s *store.Store, admin bool) error
}

// CatalogEngine implements [SyncEngine] against the remote catalog and the
// local cache.
type CatalogEngine struct {
	catalog services.Catalog
	admins  *services.AdminService
	cacher  TitleCacher
}

var _ SyncEngine = (*CatalogEngine)(nil)

// NewCatalogEngine creates a CatalogEngine. The cacher may be nil, in which
// case Sync is unavailable.
func NewCatalogEngine(catalog services.Catalog, admins *services.AdminService, cacher TitleCacher) *CatalogEngine {
	return &CatalogEngine{catalog: catalog, admins: admins, cacher: cacher}
}

// Sync fetches the first pages of both collections and caches every entry.
//
// Page failures are collected, not fatal: a flaky network or a half-synced
// catalog still leaves the cache with whatever arrived.
func (e *CatalogEngine) Sync(ctx context.Context, progress chan<- ProgressUpdate, pages int) (*SyncResult, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}
	if e.cacher == nil {
		return nil, fmt.Errorf("%w: catalog cache not initialized", shared.ErrServiceUnavailable)
	}
	if pages <= 0 {
		pages = 1
	}

	result := &SyncResult{}

	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		e.sendProgress(progress, fetchMoviesUpdate(page, pages))
		movies, err := e.catalog.Movies(ctx, page)
		if err != nil {
			result.Errors = append(result.Errors, PageError{Media: models.MediaMovie, Page: page, Err: err})
		} else {
			if err := e.cacher.CacheMovies(page, movies); err != nil {
				return result, fmt.Errorf("failed to cache movie page %d: %w", page, err)
			}
			result.MoviesCached += len(movies)
			result.PagesFetched++
			e.sendProgress(progress, cachePageUpdate(page, pages, len(movies)))
		}

		e.sendProgress(progress, fetchSeriesUpdate(page, pages))
		series, err := e.catalog.Series(ctx, page)
		if err != nil {
			result.Errors = append(result.Errors, PageError{Media: models.MediaSeries, Page: page, Err: err})
		} else {
			if err := e.cacher.CacheSeries(page, series); err != nil {
				return result, fmt.Errorf("failed to cache series page %d: %w", page, err)
			}
			result.SeriesCached += len(series)
			result.PagesFetched++
			e.sendProgress(progress, cachePageUpdate(page, pages, len(series)))
		}
	}

	e.sendProgress(progress, doneUpdate(result.MoviesCached+result.SeriesCached))
	return result, nil
}

// Refresh reloads the store's collections with independent parallel fetches.
//
// The fetches are not ordered relative to each other; each one replaces its
// collection as it lands. The first error is returned after all fetches
// settle.
func (e *CatalogEngine) Refresh(ctx context.Context, s *store.Store, admin bool) error {
	if e.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 3)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := store.LoadMovies(ctx, e.catalog, s, 1); err != nil {
			errs <- fmt.Errorf("movies: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := store.LoadSeries(ctx, e.catalog, s, 1); err != nil {
			errs <- fmt.Errorf("series: %w", err)
		}
	}()

	if admin && e.admins != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.LoadUsers(ctx, e.admins, s); err != nil {
				errs <- fmt.Errorf("users: %w", err)
			}
		}()
	}

	wg.Wait()
	close(errs)

	return <-errs
}

// sendProgress sends an update without blocking slow consumers.
func (e *CatalogEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
