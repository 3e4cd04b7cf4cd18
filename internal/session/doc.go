// Package session owns the access token lifecycle and the authentication
// state derived from it.
//
// [Manager] is the single authority over the credential: it persists the
// token through a [CredentialStore], installs it as the bearer credential on
// the API client, and exposes Login/Logout/Bootstrap plus an authentication
// predicate. Screens and commands read session state; they never mutate it.
//
// The token's presence in the credential store is the sole source of truth
// for "a session exists", but a stored token may be stale: expiry is only
// discovered when an authenticated call comes back 401. Bootstrap is the one
// path that reacts to that by clearing the stored token.
//
// [Decode] structurally extracts the user identity from the token payload
// without verifying the signature. Verification happens server side; the
// client treats the payload as display data, and every trust-boundary
// crossing goes through this one function.
package session
