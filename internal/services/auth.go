package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/shared"
)

// AuthService wraps the backend's /auth and profile endpoints.
type AuthService struct {
	api *APIService
}

// NewAuthService creates an AuthService on top of the given API client.
func NewAuthService(api *APIService) *AuthService {
	return &AuthService{api: api}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
}

// Login exchanges email and password for an access token via POST /auth/login.
//
// A 401 or any non-2xx status collapses to [shared.ErrAuthFailed] carrying
// the server's error message.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to encode credentials: %w", err)
	}

	resp, err := s.api.Post(ctx, "/auth/login", body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var payload loginResponse
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || payload.AccessToken == "" {
		msg := payload.Error
		if msg == "" {
			msg = resp.ErrorMessage()
		}
		return "", fmt.Errorf("%w: %s", shared.ErrAuthFailed, msg)
	}

	return payload.AccessToken, nil
}

// Register creates a new account via POST /auth/register.
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode registration: %w", err)
	}

	resp, err := s.api.Post(ctx, "/auth/register", body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrValidation, resp.ErrorMessage())
	}

	return nil
}

// Logout issues POST /auth/logout with the current bearer credential.
//
// The response body is ignored beyond the status check; callers treat
// failures as best-effort.
func (s *AuthService) Logout(ctx context.Context) error {
	resp, err := s.api.Post(ctx, "/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	return nil
}

// RequestPasswordReset asks the server to email a reset link via
// POST /auth/reset-password. The server answers 200 whether or not the
// address exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.api.Post(ctx, "/auth/reset-password", body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, resp.ErrorMessage())
	}

	return nil
}

// ResetPassword sets a new password using an emailed reset token via
// POST /auth/reset-password/{token}.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	body, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.api.Post(ctx, "/auth/reset-password/"+token, body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrValidation, resp.ErrorMessage())
	}

	return nil
}

// Profile fetches the authenticated user's profile via GET /api/user/profile.
//
// A 401 maps to [shared.ErrUnauthorized]. That status is the only signal
// the client gets that its token is invalid or expired.
func (s *AuthService) Profile(ctx context.Context) (*models.Profile, error) {
	resp, err := s.api.Get(ctx, "/api/user/profile")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", shared.ErrUnauthorized, resp.ErrorMessage())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var profile models.Profile
	if err := resp.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile changes the account's username, email, or password via
// PUT /api/user/profile. Empty fields are left unchanged by the server.
func (s *AuthService) UpdateProfile(ctx context.Context, username, email, password string) error {
	fields := map[string]string{}
	if username != "" {
		fields["username"] = username
	}
	if email != "" {
		fields["email"] = email
	}
	if password != "" {
		fields["password"] = password
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("failed to encode profile update: %w", err)
	}

	resp, err := s.api.Put(ctx, "/api/user/profile", body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, resp.ErrorMessage())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s", shared.ErrValidation, resp.ErrorMessage())
	}

	return nil
}
