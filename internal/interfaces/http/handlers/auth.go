// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/app"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
	"github.com/your-org/dryfruits-storefront/internal/pkg/auth"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	state      *app.State
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(state *app.State, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		state:      state,
		jwtManager: jwtManager,
	}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the login response payload
type LoginResponse struct {
	Identity  session.Identity `json:"identity"`
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expiresIn"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	identity, sessionID, err := h.state.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateSessionToken(sessionID, identity.Email, identity.Name, identity.IsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": LoginResponse{
			Identity:  identity,
			Token:     token,
			ExpiresIn: int64(h.jwtManager.Expiry().Seconds()),
		},
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.state.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := h.state.Session.RequireIdentity()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    identity,
	})
}
