package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// tokenKey is the single well-known key the access token is stored under.
const tokenKey = "token"

// CredentialRepository implements session.CredentialStore on SQLite.
//
// The token occupies one row in the credentials table; saving replaces it,
// clearing deletes it. At most one token exists at a time.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new [CredentialRepository] with the given database connection
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Token returns the stored access token, or "" when none is stored.
func (r *CredentialRepository) Token() (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM credentials WHERE key = ?", tokenKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query credential: %w", err)
	}

	return value, nil
}

// Save stores the access token, replacing any previous one.
func (r *CredentialRepository) Save(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store empty token")
	}

	query := `
		INSERT INTO credentials (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, tokenKey, token, time.Now()); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	return nil
}

// Clear removes the stored access token. Clearing an empty store is a no-op.
func (r *CredentialRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM credentials WHERE key = ?", tokenKey); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
