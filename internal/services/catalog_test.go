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

func TestCatalogService(t *testing.T) {
	t.Run("Movies", func(t *testing.T) {
		t.Run("Fetches Requested Page", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/movies" {
					t.Errorf("expected path '/api/movies', got %s", r.URL.Path)
				}
				if page := r.URL.Query().Get("page"); page != "2" {
					t.Errorf("expected page=2, got %s", page)
				}
				json.NewEncoder(w).Encode([]map[string]any{
					{"id": 1, "title": "Dune", "release_date": "2021-09-15", "vote_average": 7.8},
				})
			}))
			defer server.Close()

			svc := NewCatalogService(NewAPIService(server.URL, nil), 100)
			movies, err := svc.Movies(context.Background(), 2)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(movies) != 1 || movies[0].Title != "Dune" {
				t.Errorf("unexpected movies: %+v", movies)
			}
		})

		t.Run("Non-Positive Page Defaults To 1", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if page := r.URL.Query().Get("page"); page != "1" {
					t.Errorf("expected page=1, got %s", page)
				}
				json.NewEncoder(w).Encode([]map[string]any{})
			}))
			defer server.Close()

			svc := NewCatalogService(NewAPIService(server.URL, nil), 100)
			if _, err := svc.Movies(context.Background(), 0); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("401 Maps To ErrUnauthorized", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))
			defer server.Close()

			svc := NewCatalogService(NewAPIService(server.URL, nil), 100)
			_, err := svc.Movies(context.Background(), 1)

			if !errors.Is(err, shared.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	})

	t.Run("Series Fetches TV Collection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/series" {
				t.Errorf("expected path '/api/series', got %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 2, "name": "Dark", "first_air_date": "2017-12-01", "vote_average": 8.6},
			})
		}))
		defer server.Close()

		svc := NewCatalogService(NewAPIService(server.URL, nil), 100)
		series, err := svc.Series(context.Background(), 1)

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(series) != 1 || series[0].Name != "Dark" {
			t.Errorf("unexpected series: %+v", series)
		}
	})

	t.Run("Canceled Context Stops At The Limiter", func(t *testing.T) {
		svc := NewCatalogService(NewAPIService("http://127.0.0.1:1", nil), 100)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := svc.Movies(ctx, 1); err == nil {
			t.Error("expected error from canceled context")
		}
	})
}
