package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
)

// AdminService wraps the administrative endpoints: user management,
// statistics, and service configuration.
//
// The server enforces the admin role on /api/config; the client-side route
// guard decides what to render, not what the server accepts.
type AdminService struct {
	api *APIService
}

// NewAdminService creates an AdminService on top of the given API client.
func NewAdminService(api *APIService) *AdminService {
	return &AdminService{api: api}
}

// Users retrieves all registered accounts via GET /api/users.
func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	resp, err := s.api.Get(ctx, "/api/users")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err := resp.Decode(&users); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser registers a new account via POST /api/users and returns the
// created record.
func (s *AdminService) CreateUser(ctx context.Context, username, email, password string) (*models.User, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode user: %w", err)
	}

	resp, err := s.api.Post(ctx, "/api/users", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, resp.ErrorMessage())
	}

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var user models.User
	if err := resp.Decode(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Statistics retrieves the authenticated user's tracking counters via
// GET /api/statistics.
func (s *AdminService) Statistics(ctx context.Context) (*models.Statistics, error) {
	resp, err := s.api.Get(ctx, "/api/statistics")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var stats models.Statistics
	if err := resp.Decode(&stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

type configPayload struct {
	TMDBAPIKey string `json:"themdb_api_key"`
}

// ServiceConfig retrieves the backend's TMDB API key via GET /api/config.
// Requires the admin role server side; a non-admin gets 403.
func (s *AdminService) ServiceConfig(ctx context.Context) (string, error) {
	resp, err := s.api.Get(ctx, "/api/config")
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: %s", shared.ErrForbidden, resp.ErrorMessage())
	}

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var payload configPayload
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}

	return payload.TMDBAPIKey, nil
}

// UpdateServiceConfig sets the backend's TMDB API key via PUT /api/config.
func (s *AdminService) UpdateServiceConfig(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%w: API key is required", shared.ErrMissingArgument)
	}

	body, err := json.Marshal(configPayload{TMDBAPIKey: apiKey})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	resp, err := s.api.Put(ctx, "/api/config", body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", shared.ErrForbidden, resp.ErrorMessage())
	}

	return checkStatus(resp)
}

func checkStatus(resp *APIResponse) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, resp.ErrorMessage())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, resp.ErrorMessage())
	}

	return nil
}
