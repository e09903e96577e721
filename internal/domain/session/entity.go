// internal/domain/session/entity.go
package session

import "errors"

var (
	// ErrAuthenticationRequired means the caller must log in first
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAdminRequired means the identity lacks admin capability
	ErrAdminRequired = errors.New("admin access required")

	// ErrInvalidCredentials is returned for a rejected login
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Identity is the authenticated shopper
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}
