package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// State is the credential lifecycle state of one caller session.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateLoggedOut      State = "logged-out"
)

// Credentials carries the caller-supplied reasoning-service secret.
// Credentials live only inside a session and are handed out per request;
// they are never stored in process-wide state shared across callers.
type Credentials struct {
	APIKey string
}

// Validate performs the local shape check that gates the
// authenticating → authenticated transition. The remote service still
// has the final word on every call.
func (c Credentials) Validate() error {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return fmt.Errorf("api key is empty")
	}
	if len(key) < 8 {
		return fmt.Errorf("api key is too short")
	}
	return nil
}

// Session is an explicit state machine
// {anonymous → authenticating → authenticated → logged-out} whose
// transitions are guarded by credential validation. State is exposed as
// a pure query, never as a side-effecting toggle.
type Session struct {
	mu    sync.RWMutex
	state State
	creds Credentials
}

func newSession() *Session {
	return &Session{state: StateAnonymous}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Login attempts the transition to authenticated. On validation failure
// the session returns to its prior state and keeps no credentials.
func (s *Session) Login(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prior := s.state
	s.state = StateAuthenticating

	if err := creds.Validate(); err != nil {
		s.state = prior
		s.creds = Credentials{}
		return fmt.Errorf("credential validation failed: %w", err)
	}

	s.creds = creds
	s.state = StateAuthenticated
	return nil
}

// Logout clears the credentials and moves to logged-out.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	s.state = StateLoggedOut
}

// Credentials returns the stored credentials; ok is false unless the
// session is authenticated.
func (s *Session) Credentials() (Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return Credentials{}, false
	}
	return s.creds, true
}

// Manager tracks sessions by opaque ID. Each caller gets their own
// session; credentials are never shared between sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create registers a new anonymous session and returns its ID.
func (m *Manager) Create() (string, *Session) {
	id := uuid.NewString()
	s := newSession()

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	return id, s
}

// Get looks up a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session entirely.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
