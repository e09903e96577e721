// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/domain/catalog"
	"github.com/your-org/dryfruits-storefront/internal/domain/customer"
	"github.com/your-org/dryfruits-storefront/internal/domain/order"
	"github.com/your-org/dryfruits-storefront/internal/domain/session"
)

// respondError maps domain errors onto HTTP statuses
func respondError(c *gin.Context, err error) {
	var verr *order.ValidationError

	switch {
	case errors.Is(err, session.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":          "Please log in to continue",
			"login_required": true,
		})
	case errors.Is(err, session.ErrAdminRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Admin access required",
		})
	case errors.Is(err, session.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"errors": verr.Fields,
		})
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, customer.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, catalog.ErrInvalidProduct), errors.Is(err, order.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
	})
}
