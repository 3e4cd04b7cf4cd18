// Package tasks orchestrates multi-request client operations with real-time
// progress reporting.
//
// # Core Operations
//
// The [SyncEngine] interface defines two operations:
//
//  1. [SyncEngine.Sync] : Bulk-fetch catalog pages into the local cache
//     - Fetches the requested number of movie and series pages
//     - Upserts every entry into the catalog cache for offline listing
//     - Tolerates partial failures and reports them in the result
//
//  2. [SyncEngine.Refresh] : Reload the store's collections in parallel
//     - Fetches movies, series, and (for admins) users concurrently
//     - Replaces each store collection as its fetch completes
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, and messages
// for CLI/TUI rendering. Updates use select with default to prevent
// blocking slow consumers.
package tasks
