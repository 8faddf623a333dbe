// Package session owns the client's authentication lifecycle: restore from
// durable storage, login, customer registration and logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"food-delivery-client/api"
	"food-delivery-client/models"
	"food-delivery-client/storage"
	"food-delivery-client/token"
)

// ErrNoToken is returned when a login response carries no token field
var ErrNoToken = errors.New("No token received from the backend")

// Authenticator is the slice of the backend the session needs
type Authenticator interface {
	Login(ctx context.Context, email, password string) (api.LoginResponse, error)
	RegisterCustomer(ctx context.Context, fullName, email, password string) error
}

type Manager struct {
	store storage.TokenStore
	auth  Authenticator

	mu      sync.RWMutex
	current *models.Session
}

func NewManager(store storage.TokenStore, auth Authenticator) *Manager {
	return &Manager{store: store, auth: auth}
}

// Restore loads a persisted token and, if present, authenticates the
// session with the identity decoded from it. No backend call is made.
func (m *Manager) Restore(ctx context.Context) (*models.Session, error) {
	tok, err := m.store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stored token: %w", err)
	}
	if tok == "" {
		return nil, nil
	}
	s := newSession(tok)
	m.set(s)
	log.Printf("🔑 Restored session for %s (%s)", s.DisplayName(), s.Role)
	return s, nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	tok := resp.BearerToken()
	if tok == "" {
		return nil, ErrNoToken
	}
	if err := m.store.SetToken(ctx, tok); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	s := newSession(tok)
	m.set(s)
	log.Printf("✅ Signed in as %s (%s)", s.DisplayName(), s.Role)
	return s, nil
}

// RegisterCustomer creates a customer account. It does not sign in.
func (m *Manager) RegisterCustomer(ctx context.Context, fullName, email, password string) error {
	return m.auth.RegisterCustomer(ctx, fullName, email, password)
}

// Logout forgets the session locally. The backend is not contacted.
func (m *Manager) Logout(ctx context.Context) error {
	m.set(nil)
	if err := m.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Current returns a copy of the active session, or nil when signed out
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	s := *m.current
	return &s
}

func (m *Manager) set(s *models.Session) {
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
}

func newSession(tok string) *models.Session {
	return &models.Session{Token: tok, Identity: token.Decode(tok)}
}
