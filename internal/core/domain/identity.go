package domain

// Identity is the authenticated principal derived from the session cookie.
// It lives only for the duration of a session; it is never persisted.
type Identity struct {
	Login string `json:"login"`
	Role  Role   `json:"role"`
}
