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

func TestAdminService(t *testing.T) {
	t.Run("Users", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/users" {
				t.Errorf("expected path '/api/users', got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 1, "username": "admin", "email": "admin@example.com", "role": "admin"},
				{"id": 2, "username": "jorge", "email": "jorge@example.com"},
			})
		}))
		defer server.Close()

		svc := NewAdminService(NewAPIService(server.URL, nil))
		users, err := svc.Users(context.Background())

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(users) != 2 {
			t.Fatalf("expected 2 users, got %d", len(users))
		}
		if users[0].Role != "admin" {
			t.Errorf("expected admin role, got %s", users[0].Role)
		}
	})

	t.Run("CreateUser", func(t *testing.T) {
		t.Run("Returns Created Record", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}

				var payload map[string]string
				json.NewDecoder(r.Body).Decode(&payload)

				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(map[string]any{"id": 3, "username": payload["username"], "email": payload["email"]})
			}))
			defer server.Close()

			svc := NewAdminService(NewAPIService(server.URL, nil))
			user, err := svc.CreateUser(context.Background(), "ana", "ana@example.com", "secret")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if user.ID != 3 || user.Username != "ana" {
				t.Errorf("unexpected user: %+v", user)
			}
		})

		t.Run("400 Maps To ErrValidation", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "username taken"})
			}))
			defer server.Close()

			svc := NewAdminService(NewAPIService(server.URL, nil))
			_, err := svc.CreateUser(context.Background(), "ana", "ana@example.com", "secret")

			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	})

	t.Run("Statistics Decodes CamelCase Counters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/statistics" {
				t.Errorf("expected path '/api/statistics', got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]int{
				"favoriteMoviesCount": 4,
				"favoriteSeriesCount": 2,
				"pendingMoviesCount":  1,
				"pendingSeriesCount":  0,
				"viewedMoviesCount":   9,
				"viewedSeriesCount":   5,
			})
		}))
		defer server.Close()

		svc := NewAdminService(NewAPIService(server.URL, nil))
		stats, err := svc.Statistics(context.Background())

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if stats.FavoriteMovies != 4 || stats.ViewedMovies != 9 {
			t.Errorf("unexpected counters: %+v", stats)
		}
	})

	t.Run("ServiceConfig", func(t *testing.T) {
		t.Run("Returns The Stored Key", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/config" {
					t.Errorf("expected path '/api/config', got %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]string{"themdb_api_key": "tmdb-key"})
			}))
			defer server.Close()

			svc := NewAdminService(NewAPIService(server.URL, nil))
			key, err := svc.ServiceConfig(context.Background())

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if key != "tmdb-key" {
				t.Errorf("expected 'tmdb-key', got %s", key)
			}
		})

		t.Run("403 Maps To ErrForbidden", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "admin only"})
			}))
			defer server.Close()

			svc := NewAdminService(NewAPIService(server.URL, nil))
			_, err := svc.ServiceConfig(context.Background())

			if !errors.Is(err, shared.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	})

	t.Run("UpdateServiceConfig", func(t *testing.T) {
		t.Run("Sends The Key As PUT", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("expected PUT, got %s", r.Method)
				}

				var payload map[string]string
				json.NewDecoder(r.Body).Decode(&payload)
				if payload["themdb_api_key"] != "new-key" {
					t.Errorf("unexpected payload: %+v", payload)
				}
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			svc := NewAdminService(NewAPIService(server.URL, nil))
			if err := svc.UpdateServiceConfig(context.Background(), "new-key"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Empty Key Is Rejected Locally", func(t *testing.T) {
			svc := NewAdminService(NewAPIService("http://127.0.0.1:1", nil))
			err := svc.UpdateServiceConfig(context.Background(), "")

			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})
	})
}
