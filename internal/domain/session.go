package domain

// User is the authenticated-user record persisted to the session slot.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthState is the session store's lifecycle state. The store starts in
// StateLoading until the persisted slot has been checked once, so consumers
// can avoid flashing the wrong UI.
type AuthState int

const (
	StateLoading AuthState = iota
	StateAnonymous
	StateAuthenticating
	StateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// Session is a read snapshot of the store. User is nil unless the state is
// StateAuthenticated.
type Session struct {
	State AuthState
	User  *User
}

// AuthResult is delivered once on the completion channel of a login or
// register call.
type AuthResult struct {
	User User
	Err  error
}
