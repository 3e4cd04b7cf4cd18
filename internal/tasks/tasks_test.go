package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/store"
	tu "github.com/disfrutatv/dtv/internal/testing"
)

// memCacher records cached pages in memory.
type memCacher struct {
	moviePages  map[int][]models.Movie
	seriesPages map[int][]models.Series
	failMovies  bool
}

func newMemCacher() *memCacher {
	return &memCacher{
		moviePages:  map[int][]models.Movie{},
		seriesPages: map[int][]models.Series{},
	}
}

func (c *memCacher) CacheMovies(page int, movies []models.Movie) error {
	if c.failMovies {
		return errors.New("disk full")
	}
	c.moviePages[page] = movies
	return nil
}

func (c *memCacher) CacheSeries(page int, series []models.Series) error {
	c.seriesPages[page] = series
	return nil
}

func pagedCatalog(moviesPerPage, seriesPerPage int) *tu.MockCatalog {
	return &tu.MockCatalog{
		MoviesFn: func(ctx context.Context, page int) ([]models.Movie, error) {
			movies := make([]models.Movie, moviesPerPage)
			for i := range movies {
				movies[i] = models.Movie{ID: page*100 + i, Title: "movie"}
			}
			return movies, nil
		},
		SeriesFn: func(ctx context.Context, page int) ([]models.Series, error) {
			series := make([]models.Series, seriesPerPage)
			for i := range series {
				series[i] = models.Series{ID: page*100 + i, Name: "series"}
			}
			return series, nil
		},
	}
}

func TestCatalogEngine(t *testing.T) {
	t.Run("Sync", func(t *testing.T) {
		t.Run("Caches Every Page Of Both Collections", func(t *testing.T) {
			cacher := newMemCacher()
			engine := NewCatalogEngine(pagedCatalog(20, 10), nil, cacher)

			result, err := engine.Sync(context.Background(), nil, 3)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result.MoviesCached != 60 {
				t.Errorf("expected 60 movies cached, got %d", result.MoviesCached)
			}
			if result.SeriesCached != 30 {
				t.Errorf("expected 30 series cached, got %d", result.SeriesCached)
			}
			if result.PagesFetched != 6 {
				t.Errorf("expected 6 pages fetched, got %d", result.PagesFetched)
			}
			if len(cacher.moviePages) != 3 || len(cacher.seriesPages) != 3 {
				t.Errorf("expected 3 pages per collection, got %d/%d", len(cacher.moviePages), len(cacher.seriesPages))
			}
			if len(result.Errors) != 0 {
				t.Errorf("expected no page errors, got %v", result.Errors)
			}
		})

		t.Run("Page Fetch Failures Are Collected Not Fatal", func(t *testing.T) {
			catalog := pagedCatalog(5, 5)
			catalog.MoviesFn = func(ctx context.Context, page int) ([]models.Movie, error) {
				if page == 2 {
					return nil, errors.New("rate limited")
				}
				return []models.Movie{{ID: page, Title: "movie"}}, nil
			}

			cacher := newMemCacher()
			engine := NewCatalogEngine(catalog, nil, cacher)

			result, err := engine.Sync(context.Background(), nil, 3)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 page error, got %d", len(result.Errors))
			}
			pageErr := result.Errors[0]
			if pageErr.Media != models.MediaMovie || pageErr.Page != 2 {
				t.Errorf("unexpected page error: %+v", pageErr)
			}
			if result.MoviesCached != 2 {
				t.Errorf("expected 2 movies cached around the failure, got %d", result.MoviesCached)
			}
			if result.SeriesCached != 15 {
				t.Errorf("expected series unaffected, got %d", result.SeriesCached)
			}
		})

		t.Run("Cache Write Failure Is Fatal", func(t *testing.T) {
			cacher := newMemCacher()
			cacher.failMovies = true
			engine := NewCatalogEngine(pagedCatalog(1, 1), nil, cacher)

			if _, err := engine.Sync(context.Background(), nil, 1); err == nil {
				t.Error("expected error when the cache write fails")
			}
		})

		t.Run("Nil Cacher Is Rejected", func(t *testing.T) {
			engine := NewCatalogEngine(pagedCatalog(1, 1), nil, nil)
			if _, err := engine.Sync(context.Background(), nil, 1); err == nil {
				t.Error("expected error for missing cacher")
			}
		})

		t.Run("Progress Updates Are Non-Blocking", func(t *testing.T) {
			cacher := newMemCacher()
			engine := NewCatalogEngine(pagedCatalog(1, 1), nil, cacher)

			// Unbuffered channel with no reader: sends must be dropped,
			// not block the sync.
			progress := make(chan ProgressUpdate)
			if _, err := engine.Sync(context.Background(), progress, 2); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Canceled Context Stops The Loop", func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			engine := NewCatalogEngine(pagedCatalog(1, 1), nil, newMemCacher())
			if _, err := engine.Sync(ctx, nil, 5); err == nil {
				t.Error("expected context error")
			}
		})
	})

	t.Run("Refresh", func(t *testing.T) {
		t.Run("Reloads Both Collections", func(t *testing.T) {
			s := store.New()
			engine := NewCatalogEngine(pagedCatalog(4, 2), nil, nil)

			if err := engine.Refresh(context.Background(), s, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			state := s.State()
			if len(state.Movies) != 4 {
				t.Errorf("expected 4 movies in store, got %d", len(state.Movies))
			}
			if len(state.Series) != 2 {
				t.Errorf("expected 2 series in store, got %d", len(state.Series))
			}
			if state.Users != nil {
				t.Error("expected no user fetch without the admin flag")
			}
		})

		t.Run("First Error Is Returned After All Settle", func(t *testing.T) {
			catalog := pagedCatalog(1, 1)
			catalog.SeriesFn = func(ctx context.Context, page int) ([]models.Series, error) {
				return nil, errors.New("boom")
			}

			s := store.New()
			engine := NewCatalogEngine(catalog, nil, nil)

			err := engine.Refresh(context.Background(), s, false)
			if err == nil {
				t.Fatal("expected error")
			}
			if len(s.State().Movies) != 1 {
				t.Error("expected the movie fetch to land despite the series failure")
			}
		})
	})
}

func TestPhaseString(t *testing.T) {
	phases := map[Phase]string{
		FetchMovies: "fetch_movies",
		FetchSeries: "fetch_series",
		FetchUsers:  "fetch_users",
		CachePage:   "cache_page",
		Done:        "done",
	}
	for phase, want := range phases {
		if got := phase.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}
