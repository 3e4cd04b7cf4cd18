package store

import (
	"context"

	"github.com/disfrutatv/dtv/internal/services"
)

// LoadMovies fetches one catalog page and replaces the store's movie
// collection. The previous page's contents are discarded, not merged.
func LoadMovies(ctx context.Context, catalog services.Catalog, s *Store, page int) error {
	movies, err := catalog.Movies(ctx, page)
	if err != nil {
		return err
	}
	s.Dispatch(SetMovies(movies))
	return nil
}

// LoadSeries fetches one catalog page and replaces the store's series
// collection.
func LoadSeries(ctx context.Context, catalog services.Catalog, s *Store, page int) error {
	series, err := catalog.Series(ctx, page)
	if err != nil {
		return err
	}
	s.Dispatch(SetSeries(series))
	return nil
}

// LoadUsers fetches the admin user list and replaces the store's user
// collection.
func LoadUsers(ctx context.Context, admin *services.AdminService, s *Store) error {
	users, err := admin.Users(ctx)
	if err != nil {
		return err
	}
	s.Dispatch(SetUsers(users))
	return nil
}
