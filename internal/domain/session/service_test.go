package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/pkg/auth"
	"github.com/your-org/dryfruits-storefront/internal/pkg/logger"
)

func newDemoGate() *Gate {
	return NewGate(NewDemoProvider("admin@dryfruits.com"), logger.Discard())
}

func TestLogin_AdminSentinel(t *testing.T) {
	g := newDemoGate()

	id, sessionID, err := g.Login(context.Background(), "admin@dryfruits.com", "anything")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin)
	assert.Equal(t, "admin", id.Name)
	assert.NotEmpty(t, sessionID)

	_, err = g.RequireAdmin()
	assert.NoError(t, err)
}

func TestLogin_Shopper(t *testing.T) {
	g := newDemoGate()

	id, _, err := g.Login(context.Background(), "shopper@example.com", "x")
	require.NoError(t, err)
	assert.False(t, id.IsAdmin)
	assert.Equal(t, "shopper", id.Name)
	assert.Equal(t, "shopper@example.com", id.Email)

	_, err = g.RequireIdentity()
	assert.NoError(t, err)
	_, err = g.RequireAdmin()
	assert.ErrorIs(t, err, ErrAdminRequired)
}

func TestLogin_AdminMatchIsExact(t *testing.T) {
	g := newDemoGate()

	id, _, err := g.Login(context.Background(), "Admin@dryfruits.com", "x")
	require.NoError(t, err)
	assert.False(t, id.IsAdmin)
}

func TestLogin_RejectsBlankCredentials(t *testing.T) {
	g := newDemoGate()

	for _, tc := range []struct{ email, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"shopper@example.com", ""},
	} {
		_, _, err := g.Login(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}

	_, ok := g.Current()
	assert.False(t, ok)
}

func TestLogout_ClearsIdentityAndRunsHooks(t *testing.T) {
	g := newDemoGate()

	cleared := 0
	g.OnLogout(func() { cleared++ })

	_, first, err := g.Login(context.Background(), "shopper@example.com", "x")
	require.NoError(t, err)

	g.Logout()
	assert.Equal(t, 1, cleared)
	assert.Empty(t, g.SessionID())

	_, err = g.RequireIdentity()
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
	_, err = g.RequireAdmin()
	assert.ErrorIs(t, err, ErrAuthenticationRequired)

	_, second, err := g.Login(context.Background(), "shopper@example.com", "x")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCredentialProvider(t *testing.T) {
	cfg := config.Default()
	hash, err := auth.NewPasswordManager(cfg).HashPassword("open-sesame")
	require.NoError(t, err)

	p := NewCredentialProvider(cfg, map[string]string{"Admin@DryFruits.com": hash})
	g := NewGate(p, logger.Discard())

	_, _, err = g.Login(context.Background(), "admin@dryfruits.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = g.Login(context.Background(), "nobody@dryfruits.com", "open-sesame")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	id, _, err := g.Login(context.Background(), "admin@dryfruits.com", "open-sesame")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin)
}

func TestNewProvider(t *testing.T) {
	cfg := config.Default()
	assert.IsType(t, &DemoProvider{}, NewProvider(cfg))

	cfg.Auth.Provider = "credentials"
	assert.IsType(t, &CredentialProvider{}, NewProvider(cfg))
}
