// Package store implements the cross-screen application state container.
//
// State is mutated exclusively through the closed set of actions built by
// the constructors in this package and applied with [Store.Dispatch]. Every
// action is a full replacement of one field; Logout resets everything in a
// single transition. Any component holding the store handle may dispatch and
// read, and readers always get a snapshot.
//
// The store duplicates the session manager's knowledge of the token and the
// identity derived from it. [Store.Bootstrap] independently decodes the
// stored token with the same unverified decode the session manager uses.
// The redundancy is deliberate; collapsing the two authorities is a known
// redesign, not a patch.
package store

import (
	"sync"

	"github.com/disfrutatv/dtv/internal/models"
	"github.com/disfrutatv/dtv/internal/session"
)

// State is the global application state. Collections hold whatever the last
// full-replacement action carried; nothing here survives a restart except
// the token, which lives in the credential store.
type State struct {
	User            *models.Identity
	Token           string
	IsAuthenticated bool
	Movies          []models.Movie
	Series          []models.Series
	Users           []models.User
}

// ActionType enumerates the closed set of state updates.
type ActionType int

const (
	ActionSetUser ActionType = iota
	ActionSetToken
	ActionSetMovies
	ActionSetSeries
	ActionSetUsers
	ActionLogout
)

// Action is one named state update with its payload. Build actions with the
// constructors below; zero-value actions are not meaningful.
type Action struct {
	Type   ActionType
	User   *models.Identity
	Token  string
	Movies []models.Movie
	Series []models.Series
	Users  []models.User
}

// SetUser replaces the current identity and forces the authenticated flag on.
func SetUser(user *models.Identity) Action {
	return Action{Type: ActionSetUser, User: user}
}

// SetToken replaces the held token and forces the authenticated flag on.
func SetToken(token string) Action {
	return Action{Type: ActionSetToken, Token: token}
}

// SetMovies replaces the movie collection wholesale.
func SetMovies(movies []models.Movie) Action {
	return Action{Type: ActionSetMovies, Movies: movies}
}

// SetSeries replaces the series collection wholesale.
func SetSeries(series []models.Series) Action {
	return Action{Type: ActionSetSeries, Series: series}
}

// SetUsers replaces the admin user collection wholesale.
func SetUsers(users []models.User) Action {
	return Action{Type: ActionSetUsers, Users: users}
}

// Logout resets every field to its initial value in one transition.
func Logout() Action {
	return Action{Type: ActionLogout}
}

// Subscriber is notified with a state snapshot after each dispatch.
type Subscriber func(State)

// Store is the single mutable container for cross-screen state.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []Subscriber
}

// New creates a store holding the initial empty state.
func New() *Store {
	return &Store{}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a subscriber invoked after every dispatch. There is no
// unsubscribe; subscribers live as long as the store.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch applies one action atomically and notifies subscribers with the
// resulting snapshot.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	snapshot := s.state
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
}

// reduce maps (state, action) to the next state. Unknown action types leave
// the state untouched.
func reduce(state State, action Action) State {
	switch action.Type {
	case ActionSetUser:
		state.User = action.User
		state.IsAuthenticated = true
	case ActionSetToken:
		state.Token = action.Token
		state.IsAuthenticated = true
	case ActionSetMovies:
		state.Movies = action.Movies
	case ActionSetSeries:
		state.Series = action.Series
	case ActionSetUsers:
		state.Users = action.Users
	case ActionLogout:
		state = State{}
	}
	return state
}

// Bootstrap seeds the store from the credential store at startup: when a
// token is present it is decoded locally and SetToken then SetUser are
// dispatched. No network call is made and no staleness check happens here;
// the session manager's Bootstrap is the path that validates the token
// against the server.
func (s *Store) Bootstrap(creds session.CredentialStore) error {
	token, err := creds.Token()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	identity, err := session.Decode(token)
	if err != nil {
		return err
	}

	s.Dispatch(SetToken(token))
	s.Dispatch(SetUser(identity))
	return nil
}
