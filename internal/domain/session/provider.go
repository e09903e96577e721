// internal/domain/session/provider.go
package session

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/dryfruits-storefront/internal/config"
	"github.com/your-org/dryfruits-storefront/internal/pkg/auth"
)

// AuthProvider turns an email and password into an Identity
type AuthProvider interface {
	Authenticate(ctx context.Context, email, password string) (Identity, error)
}

// DemoProvider accepts any non-empty email and password. It is not a
// security boundary. Admin capability is granted to AdminEmail only.
type DemoProvider struct {
	AdminEmail string
}

// NewDemoProvider creates a provider that grants admin to adminEmail
func NewDemoProvider(adminEmail string) *DemoProvider {
	return &DemoProvider{AdminEmail: adminEmail}
}

// Authenticate implements AuthProvider
func (p *DemoProvider) Authenticate(_ context.Context, email, password string) (Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}
	return newIdentity(email, p.AdminEmail), nil
}

// CredentialProvider checks passwords against a table of bcrypt hashes
type CredentialProvider struct {
	AdminEmail  string
	credentials map[string]string
	passwords   *auth.PasswordManager
}

// NewCredentialProvider creates a provider over email -> bcrypt hash
func NewCredentialProvider(cfg *config.Config, credentials map[string]string) *CredentialProvider {
	table := make(map[string]string, len(credentials))
	for email, hash := range credentials {
		table[strings.ToLower(strings.TrimSpace(email))] = hash
	}

	return &CredentialProvider{
		AdminEmail:  cfg.Auth.AdminEmail,
		credentials: table,
		passwords:   auth.NewPasswordManager(cfg),
	}
}

// Authenticate implements AuthProvider
func (p *CredentialProvider) Authenticate(_ context.Context, email, password string) (Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Identity{}, ErrInvalidCredentials
	}

	hash, ok := p.credentials[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return Identity{}, ErrInvalidCredentials
	}
	if err := p.passwords.VerifyPassword(password, hash); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return newIdentity(email, p.AdminEmail), nil
}

// NewProvider selects the provider named by the auth configuration
func NewProvider(cfg *config.Config) AuthProvider {
	if cfg.Auth.Provider == "credentials" {
		return NewCredentialProvider(cfg, cfg.Auth.Credentials)
	}
	return NewDemoProvider(cfg.Auth.AdminEmail)
}

func newIdentity(email, adminEmail string) Identity {
	email = strings.TrimSpace(email)
	name, _, _ := strings.Cut(email, "@")

	return Identity{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		IsAdmin: email == adminEmail,
	}
}
