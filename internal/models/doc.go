// Package models defines domain entities and persistence interfaces for the dtv client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs mirroring remote API payloads
//   - [Movie] / [Series] : Catalog entries as served by the DisfrutaTV API (TMDB-shaped)
//   - [TitleDetail] : Extended metadata fetched straight from TMDB for detail screens
//   - [LibraryRef] : A {id, type} reference in a user's favorites/pending/viewed list
//   - [User] / [Profile] / [Statistics] : Account surface payloads
//   - [Identity] : User attributes extracted from the access token payload
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [CachedTitle] : Locally cached catalog entries for offline listing
//
// Persistent entities implement the [Model] interface providing ID generation, timestamps, validation, and soft delete support.
// The [Repository] interface defines standard CRUD operations for database access.
package models
