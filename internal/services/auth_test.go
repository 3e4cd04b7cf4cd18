package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disfrutatv/dtv/internal/shared"
)

func TestAuthService(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		t.Run("Returns Access Token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/login" {
					t.Errorf("expected path '/auth/login', got %s", r.URL.Path)
				}

				var payload map[string]string
				json.NewDecoder(r.Body).Decode(&payload)
				if payload["email"] != "maria@example.com" || payload["password"] != "secret" {
					t.Errorf("unexpected credentials: %+v", payload)
				}

				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			token, err := svc.Login(context.Background(), "maria@example.com", "secret")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != "tok-1" {
				t.Errorf("expected token 'tok-1', got %s", token)
			}
		})

		t.Run("Bad Credentials", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			_, err := svc.Login(context.Background(), "maria@example.com", "wrong")

			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("Missing Token In 200 Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			_, err := svc.Login(context.Background(), "maria@example.com", "secret")

			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})
	})

	t.Run("Register", func(t *testing.T) {
		t.Run("Successful Registration", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/register" {
					t.Errorf("expected path '/auth/register', got %s", r.URL.Path)
				}
				w.WriteHeader(http.StatusCreated)
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			if err := svc.Register(context.Background(), "maria", "maria@example.com", "secret"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Duplicate Email", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			err := svc.Register(context.Background(), "maria", "maria@example.com", "secret")

			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	})

	t.Run("Profile", func(t *testing.T) {
		t.Run("Returns Profile", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/user/profile" {
					t.Errorf("expected path '/api/user/profile', got %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{"id": 1, "username": "maria", "email": "maria@example.com"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			profile, err := svc.Profile(context.Background())

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if profile.Username != "maria" {
				t.Errorf("expected username 'maria', got %s", profile.Username)
			}
		})

		t.Run("401 Maps To ErrUnauthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			_, err := svc.Profile(context.Background())

			if !errors.Is(err, shared.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})

		t.Run("Server Error Is Not ErrUnauthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			_, err := svc.Profile(context.Background())

			if err == nil {
				t.Fatal("expected error")
			}
			if errors.Is(err, shared.ErrUnauthorized) {
				t.Error("expected a non-unauthorized error for a 500")
			}
		})
	})

	t.Run("UpdateProfile", func(t *testing.T) {
		t.Run("Sends Only Provided Fields", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("expected PUT, got %s", r.Method)
				}
				if r.URL.Path != "/api/user/profile" {
					t.Errorf("expected path '/api/user/profile', got %s", r.URL.Path)
				}

				var payload map[string]string
				json.NewDecoder(r.Body).Decode(&payload)
				if payload["email"] != "nueva@example.com" {
					t.Errorf("expected new email, got %+v", payload)
				}
				if _, ok := payload["username"]; ok {
					t.Error("empty username should be omitted from the payload")
				}
				if _, ok := payload["password"]; ok {
					t.Error("empty password should be omitted from the payload")
				}

				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			if err := svc.UpdateProfile(context.Background(), "", "nueva@example.com", ""); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("401 Maps To ErrUnauthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			err := svc.UpdateProfile(context.Background(), "maria2", "", "")

			if !errors.Is(err, shared.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})

		t.Run("Duplicate Email Maps To ErrValidation", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			err := svc.UpdateProfile(context.Background(), "", "taken@example.com", "")

			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	})

	t.Run("ResetPassword", func(t *testing.T) {
		t.Run("Token In Path", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/reset-password/reset-tok" {
					t.Errorf("expected token in path, got %s", r.URL.Path)
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			if err := svc.ResetPassword(context.Background(), "reset-tok", "newpass"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Expired Token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "reset token expired"})
			}))
			defer server.Close()

			svc := NewAuthService(NewAPIService(server.URL, nil))
			err := svc.ResetPassword(context.Background(), "stale", "newpass")

			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	})

	t.Run("RequestPasswordReset Always Succeeds On 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/reset-password" {
				t.Errorf("expected path '/auth/reset-password', got %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		svc := NewAuthService(NewAPIService(server.URL, nil))
		if err := svc.RequestPasswordReset(context.Background(), "unknown@example.com"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
