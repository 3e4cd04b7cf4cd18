// TheMovieDB client for detail screens
//
// Response types based on https://developer.themoviedb.org/reference/movie-details
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
	"golang.org/x/time/rate"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// TMDBService fetches title details straight from TheMovieDB, bypassing
// the backend proxy. Detail lookups are the only requests that go there.
type TMDBService struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewTMDBService creates a TMDB client. An empty baseURL falls back to the
// public API; a non-positive rps budget defaults to 4.
func NewTMDBService(apiKey, baseURL, language string, rps float64, client *http.Client) *TMDBService {
	if baseURL == "" {
		baseURL = tmdbBaseURL
	}
	if language == "" {
		language = "es-ES"
	}
	if rps <= 0 {
		rps = 4.0
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &TMDBService{
		apiKey:     apiKey,
		baseURL:    baseURL,
		language:   language,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// MovieDetail retrieves extended metadata for a movie.
func (s *TMDBService) MovieDetail(ctx context.Context, id int) (*models.TitleDetail, error) {
	var detail models.TitleDetail
	if err := s.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SeriesDetail retrieves extended metadata for a TV series.
func (s *TMDBService) SeriesDetail(ctx context.Context, id int) (*models.TitleDetail, error) {
	var detail models.TitleDetail
	if err := s.get(ctx, fmt.Sprintf("/tv/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SimilarMovies retrieves the first page of movies similar to the given one.
func (s *TMDBService) SimilarMovies(ctx context.Context, id int) ([]models.Movie, error) {
	var payload struct {
		Results []models.Movie `json:"results"`
	}
	if err := s.get(ctx, fmt.Sprintf("/movie/%d/similar", id), url.Values{"page": {"1"}}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// SimilarSeries retrieves the first page of series similar to the given one.
func (s *TMDBService) SimilarSeries(ctx context.Context, id int) ([]models.Series, error) {
	var payload struct {
		Results []models.Series `json:"results"`
	}
	if err := s.get(ctx, fmt.Sprintf("/tv/%d/similar", id), url.Values{"page": {"1"}}, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (s *TMDBService) get(ctx context.Context, path string, params url.Values, target any) error {
	if s.apiKey == "" {
		return fmt.Errorf("%w: TMDB API key not configured", shared.ErrMissingCredentials)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.apiKey)
	params.Set("language", s.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: TMDB id not found", shared.ErrTitleNotFound)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: TMDB status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
