// internal/interfaces/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/dryfruits-storefront/internal/config"
)

// exposedHeaders are the response headers the storefront frontend reads
var exposedHeaders = strings.Join([]string{
	requestIDHeader,
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"X-RateLimit-Reset",
}, ", ")

// originPolicy is the parsed form of the configured CORS origins
type originPolicy struct {
	any      bool
	exact    map[string]struct{}
	suffixes []string // ".dryfruits.com" for "*.dryfruits.com"
}

func newOriginPolicy(origins []string) originPolicy {
	p := originPolicy{exact: make(map[string]struct{}, len(origins))}
	for _, o := range origins {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case o == "*":
			p.any = true
		case strings.HasPrefix(o, "*."):
			p.suffixes = append(p.suffixes, strings.ToLower(o[1:]))
		default:
			p.exact[strings.ToLower(o)] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.any {
		return true
	}
	origin = strings.ToLower(origin)
	if _, ok := p.exact[origin]; ok {
		return true
	}
	for _, suffix := range p.suffixes {
		if strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}

// CORS lets the storefront frontend call the API from its own origin.
// Requests from other origins get no CORS headers, and their preflights
// are refused with 403.
func CORS(cfg *config.Config) gin.HandlerFunc {
	policy := newOriginPolicy(cfg.Security.CORSAllowedOrigins)

	allowedMethods := make(map[string]struct{}, len(cfg.Security.CORSAllowedMethods))
	for _, m := range cfg.Security.CORSAllowedMethods {
		allowedMethods[strings.ToUpper(strings.TrimSpace(m))] = struct{}{}
	}
	methods := strings.Join(cfg.Security.CORSAllowedMethods, ", ")
	headers := strings.Join(cfg.Security.CORSAllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := policy.allows(origin)
		c.Writer.Header().Add("Vary", "Origin")

		isPreflight := c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != ""
		if isPreflight {
			_, methodOK := allowedMethods[strings.ToUpper(c.GetHeader("Access-Control-Request-Method"))]
			if !allowed || !methodOK {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}

			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Expose-Headers", exposedHeaders)
		}

		c.Next()
	}
}
