package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrAccessDenied  = errors.New("maximum login attempts exceeded, access denied")
	ErrSessionClosed = errors.New("session closed")
	ErrNotLoggedIn   = errors.New("not logged in")
)

type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const DefaultMaxAttempts = 3

// Session walks Unauthenticated -> Authenticated -> Closed. Every failed
// login counts; reaching the ceiling closes the session for good.
type Session struct {
	auth        *Authenticator
	maxAttempts int

	mu       sync.Mutex
	state    State
	attempts int
	identity Identity
}

func NewSession(a *Authenticator, maxAttempts int) *Session {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Session{auth: a, maxAttempts: maxAttempts}
}

// Login tries one credential pair. The returned error is the login
// failure; once the ceiling is reached it also wraps ErrAccessDenied.
func (s *Session) Login(ctx context.Context, username, password string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateClosed:
		return Identity{}, ErrSessionClosed
	case StateAuthenticated:
		return s.identity, nil
	}

	id, err := s.auth.Authenticate(ctx, username, password)
	if err == nil {
		s.state = StateAuthenticated
		s.identity = id
		return id, nil
	}

	s.attempts++
	if s.attempts >= s.maxAttempts {
		s.state = StateClosed
		return Identity{}, errors.Join(err, ErrAccessDenied)
	}
	return Identity{}, err
}

// Remaining is the number of login attempts left before access is denied.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return max(s.maxAttempts-s.attempts, 0)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Identity() (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAuthenticated:
		return s.identity, nil
	case StateClosed:
		return Identity{}, ErrSessionClosed
	default:
		return Identity{}, ErrNotLoggedIn
	}
}

// Logout closes the session. It is safe to call more than once.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticated {
		s.auth.log.InfoContext(ctx, "logout", "username", s.identity.Username, "session_id", s.identity.SessionID)
	}
	s.state = StateClosed
	s.identity = Identity{}
}
