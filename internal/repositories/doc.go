// Package repositories implements SQLite persistence for the dtv client.
//
// Two concerns live here:
//   - [CredentialRepository] : the client-local credential store. The access
//     token sits in a single well-known row and survives restarts; it is the
//     only persisted session state.
//   - [CatalogRepository] : opt-in cache of fetched movie/series pages for
//     offline listing, with [CachedCatalog] adapting it to the
//     services.Catalog read interface.
//
// Cached titles support soft deletes via deleted_at timestamps and atomic
// sequence generation for stable, human-readable ordering. The
// [NextSequence] function atomically increments per-table sequence counters
// in dedicated sequence tables.
package repositories
