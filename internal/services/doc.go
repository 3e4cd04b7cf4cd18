// Package services implements HTTP clients for the two remote collaborators:
// the DisfrutaTV backend API and TheMovieDB.
//
// # API Service
//
// [APIService] is the low-level HTTP client for the backend. It owns the base
// URL and attaches bearer credentials from an [oauth2.TokenSource] when one is
// installed. Responses are returned as [APIResponse] with the raw body and a
// best-effort JSON parse, matching the backend's plain JSON request/response
// contract.
//
// A 401 from any authenticated endpoint is mapped to [shared.ErrUnauthorized].
// That status is the only signal the client ever gets that a token is invalid
// or expired; expiry is discovered reactively, never predicted.
//
// # Typed surfaces
//
// The remaining services wrap APIService with typed endpoints:
//   - [AuthService] : login, register, logout, password reset, profile
//   - [CatalogService] : popular movies/series pages (TMDB-shaped payloads)
//   - [LibraryService] : per-user favorites, pending, and viewed lists
//   - [AdminService] : user management, statistics, service configuration
//
// [TMDBService] talks straight to api.themoviedb.org for detail screens,
// rate limited client side with [rate.Limiter] as a courtesy to the shared
// API key.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrUnauthorized] : 401, credential rejected
//   - [shared.ErrAuthFailed] : login rejected (bad credentials)
//   - [shared.ErrAPIRequest] : HTTP request failed
//   - [shared.ErrTitleNotFound] : detail lookup for unknown ID
package services
