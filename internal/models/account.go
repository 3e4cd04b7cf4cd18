package models

// Identity is the user record structurally extracted from the access
// token's payload. It is never verified client side; it is only as
// trustworthy as the token it came from.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RoleAdmin is the only privileged role the API issues.
const RoleAdmin = "admin"

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Profile represents the response of GET /api/user/profile.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// User represents an account row from the admin surface (GET /api/users).
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
}

// Statistics holds the per-user counters from GET /api/statistics.
type Statistics struct {
	FavoriteMovies int `json:"favoriteMoviesCount"`
	FavoriteSeries int `json:"favoriteSeriesCount"`
	PendingMovies  int `json:"pendingMoviesCount"`
	PendingSeries  int `json:"pendingSeriesCount"`
	ViewedMovies   int `json:"viewedMoviesCount"`
	ViewedSeries   int `json:"viewedSeriesCount"`
}
