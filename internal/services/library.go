package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
)

// ListKind names the three per-user tracking lists.
type ListKind string

const (
	ListFavorites ListKind = "favorite"
	ListPending   ListKind = "pending"
	ListViewed    ListKind = "viewed"
)

// Valid reports whether the list kind is one the API understands.
func (k ListKind) Valid() bool {
	return k == ListFavorites || k == ListPending || k == ListViewed
}

// fetchPath returns the GET path for the list's contents. The backend uses
// plural "favorites" for the read endpoint but singular "favorite" in the
// add/remove paths.
func (k ListKind) fetchPath() string {
	if k == ListFavorites {
		return "/api/user/favorites"
	}
	return "/api/user/" + string(k)
}

// LibraryService manages a user's favorites, pending, and viewed lists.
// All operations require a bearer credential on the underlying API client.
type LibraryService struct {
	api *APIService
}

// NewLibraryService creates a LibraryService on top of the given API client.
func NewLibraryService(api *APIService) *LibraryService {
	return &LibraryService{api: api}
}

// List retrieves the contents of one tracking list via
// GET /api/user/{favorites,pending,viewed}.
func (s *LibraryService) List(ctx context.Context, kind ListKind) ([]models.LibraryRef, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown list %q", shared.ErrInvalidArgument, kind)
	}

	resp, err := s.api.Get(ctx, kind.fetchPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", shared.ErrUnauthorized, resp.ErrorMessage())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, resp.ErrorMessage())
	}

	var refs []models.LibraryRef
	if err := resp.Decode(&refs); err != nil {
		return nil, err
	}

	return refs, nil
}

// Add places a title on a tracking list via
// POST /api/{movies,series}/{id}/add-{favorite,pending,viewed}.
// Adding a title already on the list is a server-side no-op.
func (s *LibraryService) Add(ctx context.Context, kind ListKind, media models.MediaType, id int) error {
	path, err := mutatePath(kind, media, id, "add")
	if err != nil {
		return err
	}

	resp, err := s.api.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	return checkMutation(resp)
}

// Remove takes a title off a tracking list via
// DELETE /api/{movies,series}/{id}/remove-{favorite,pending,viewed}.
// Removing a title not on the list yields [shared.ErrTitleNotFound].
func (s *LibraryService) Remove(ctx context.Context, kind ListKind, media models.MediaType, id int) error {
	path, err := mutatePath(kind, media, id, "remove")
	if err != nil {
		return err
	}

	resp, err := s.api.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrTitleNotFound, resp.ErrorMessage())
	}

	return checkMutation(resp)
}

func mutatePath(kind ListKind, media models.MediaType, id int, verb string) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown list %q", shared.ErrInvalidArgument, kind)
	}
	if !media.Valid() {
		return "", fmt.Errorf("%w: unknown media type %q", shared.ErrInvalidArgument, media)
	}

	segment := "movies"
	if media == models.MediaSeries {
		segment = "series"
	}

	return fmt.Sprintf("/api/%s/%d/%s-%s", segment, id, verb, kind), nil
}

func checkMutation(resp *APIResponse) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, resp.ErrorMessage())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, resp.ErrorMessage())
	}

	return nil
}
