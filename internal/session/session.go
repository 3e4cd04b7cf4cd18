package session

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/services"
	"github.com/disfrutatv/dtv/internal/shared"
	"golang.org/x/oauth2"
)

// CredentialStore abstracts client-local token persistence. The token lives
// under a single well-known key and survives restarts; it is the only
// persisted session state.
type CredentialStore interface {
	// Token returns the stored token, or "" when none is stored.
	Token() (string, error)

	// Save stores the token, replacing any previous one.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// State is the session's externally visible authentication state.
//
// Username is empty whenever Authenticated is false; the two change together.
type State struct {
	Authenticated bool
	Username      string
}

// Manager is the single authority over the access token and the session
// state derived from it.
//
// State transitions happen only inside Login, Logout, and Bootstrap. Each
// network round trip runs outside the state lock, so two overlapping
// operations (a slow Bootstrap racing a Logout) resolve by last write wins.
type Manager struct {
	creds  CredentialStore
	auth   *services.AuthService
	api    *services.APIService
	logger *log.Logger

	mu    sync.RWMutex
	state State
}

// NewManager creates a session manager. The API client is the one shared
// with the service layer: installing or clearing the bearer credential here
// affects every authenticated call in the process.
func NewManager(creds CredentialStore, auth *services.AuthService, api *services.APIService, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{
		creds:  creds,
		auth:   auth,
		api:    api,
		logger: logger,
	}
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Authenticated reports whether a profile fetch has confirmed the session.
func (m *Manager) Authenticated() bool {
	return m.State().Authenticated
}

// Login persists the token, installs it as the bearer credential, and
// confirms it by fetching the user's own profile.
//
// A failed profile fetch leaves the session unauthenticated: a 401 also
// removes the stored token, any other failure (network included) leaves the
// token in place for the next attempt. No retry, no backoff.
func (m *Manager) Login(ctx context.Context, token string) error {
	if token == "" {
		return shared.ErrMissingCredentials
	}

	if err := m.creds.Save(token); err != nil {
		return err
	}

	m.installToken(token)
	return m.fetchProfile(ctx)
}

// Logout ends the session. The server-side invalidation call is best
// effort: failures are logged and ignored, and the stored token is removed
// and the state reset regardless.
func (m *Manager) Logout(ctx context.Context) error {
	token, err := m.creds.Token()
	if err != nil {
		m.logger.Warn("failed to read stored token", "error", err)
	}

	if token != "" {
		if err := m.auth.Logout(ctx); err != nil {
			m.logger.Warn("server logout failed", "error", err)
		}
	}

	if err := m.creds.Clear(); err != nil {
		return err
	}

	m.api.SetTokenSource(nil)
	m.setState(State{})
	return nil
}

// Bootstrap restores the session from the credential store at startup.
//
// With no stored token it leaves the session unauthenticated without any
// network call. With one, it runs the same profile flow as Login; a 401
// removes the stored token, making a second Bootstrap behave as if nothing
// were stored. This is the only path that detects token expiry.
func (m *Manager) Bootstrap(ctx context.Context) error {
	token, err := m.creds.Token()
	if err != nil {
		return err
	}

	if token == "" {
		m.setState(State{})
		return nil
	}

	m.installToken(token)
	return m.fetchProfile(ctx)
}

// Identity decodes the stored token's payload. Returns nil without error
// when no token is stored.
func (m *Manager) Identity() (*models.Identity, error) {
	token, err := m.creds.Token()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}
	return Decode(token)
}

// fetchProfile confirms the installed credential against
// GET /api/user/profile and resolves the session state from the outcome.
func (m *Manager) fetchProfile(ctx context.Context) error {
	profile, err := m.auth.Profile(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrUnauthorized) {
			// Invalid or expired token: discard it.
			if clearErr := m.creds.Clear(); clearErr != nil {
				m.logger.Warn("failed to clear stored token", "error", clearErr)
			}
			m.api.SetTokenSource(nil)
		}
		m.setState(State{})
		return err
	}

	m.setState(State{Authenticated: true, Username: profile.Username})
	return nil
}

func (m *Manager) installToken(token string) {
	m.api.SetTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}
