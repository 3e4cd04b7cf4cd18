// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the catalog:
//  1. [MoviesView] : Browse the paginated movie catalog
//  2. [SeriesView] : Browse the paginated series catalog
//  3. [LibraryView] : Review favorites, pending, and viewed lists
//  4. [DetailView] : Extended metadata for a single title
//  5. [UsersView] : Registered accounts (admin role)
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Entry into [UsersView] is gated with [guard.Evaluate] against the shared
// [store.Store] snapshot; everything else assumes the session was bootstrapped
// before the program started.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l for pages, enter, esc, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
