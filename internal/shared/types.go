package shared

// AuthContext carries the authenticated caller's identity into the core
// operations. Handlers build it from the JWT claims; services never reach
// back into the request for session state, which keeps them testable without
// an auth provider.
type AuthContext struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// IsLibrarian reports whether the caller holds the librarian role.
func (a AuthContext) IsLibrarian() bool {
	return a.Role == "LIBRARIAN"
}

// Is reports whether the caller is the given user.
func (a AuthContext) Is(userID string) bool {
	return a.UserID == userID
}
