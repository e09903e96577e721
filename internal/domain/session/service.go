// internal/domain/session/service.go
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Gate holds the single active identity and gates cart, checkout and
// admin access on it.
type Gate struct {
	mu        sync.RWMutex
	provider  AuthProvider
	current   *Identity
	sessionID string
	onLogout  []func()
	logger    *logrus.Logger
}

// NewGate creates a session gate backed by provider
func NewGate(provider AuthProvider, logger *logrus.Logger) *Gate {
	return &Gate{
		provider: provider,
		logger:   logger,
	}
}

// OnLogout registers fn to run whenever the identity is cleared
func (g *Gate) OnLogout(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onLogout = append(g.onLogout, fn)
}

// Login authenticates and makes the identity current, replacing any
// previous one. It returns the identity and a fresh session ID.
func (g *Gate) Login(ctx context.Context, email, password string) (Identity, string, error) {
	identity, err := g.provider.Authenticate(ctx, email, password)
	if err != nil {
		return Identity{}, "", fmt.Errorf("login failed: %w", err)
	}

	sessionID := uuid.NewString()

	g.mu.Lock()
	g.current = &identity
	g.sessionID = sessionID
	g.mu.Unlock()

	g.logger.WithFields(logrus.Fields{
		"email":    identity.Email,
		"is_admin": identity.IsAdmin,
	}).Info("shopper logged in")

	return identity, sessionID, nil
}

// Logout clears the identity and runs the logout hooks
func (g *Gate) Logout() {
	g.mu.Lock()
	email := ""
	if g.current != nil {
		email = g.current.Email
	}
	g.current = nil
	g.sessionID = ""
	hooks := append([]func(){}, g.onLogout...)
	g.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}

	g.logger.WithField("email", email).Info("shopper logged out")
}

// Current returns the active identity, if any
func (g *Gate) Current() (Identity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.current == nil {
		return Identity{}, false
	}
	return *g.current, true
}

// SessionID returns the ID of the active login, or "" when logged out
func (g *Gate) SessionID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sessionID
}

// RequireIdentity fails with ErrAuthenticationRequired when logged out
func (g *Gate) RequireIdentity() (Identity, error) {
	identity, ok := g.Current()
	if !ok {
		return Identity{}, ErrAuthenticationRequired
	}
	return identity, nil
}

// RequireAdmin fails unless the active identity is the admin
func (g *Gate) RequireAdmin() (Identity, error) {
	identity, err := g.RequireIdentity()
	if err != nil {
		return Identity{}, err
	}
	if !identity.IsAdmin {
		return Identity{}, ErrAdminRequired
	}
	return identity, nil
}
