package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

var errMissingHeader = errors.New("Missing Authorization header. Required format: Authorization: Bearer <token>")

// Require returns a middleware that rejects any request without a valid
// bearer token with 401 before the handler runs. On success the identity is
// attached to the request context. Verification failures of every kind,
// including an unreachable remote verifier, fail closed.
func Require(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		raw, err := bearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ident, err := v.Verify(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(contextKeyIdentity, ident)
		c.Next()
	}
}

// Optional returns a middleware for routes explicitly marked public: it
// attaches an identity when a valid bearer token is present and otherwise
// lets the handler run anonymous. Verifier errors never fail the request;
// the handler observes an absent identity instead.
func Optional(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		raw, err := bearerToken(c)
		if err != nil {
			c.Next()
			return
		}
		if ident, err := v.Verify(c.Request.Context(), raw); err == nil {
			c.Set(contextKeyIdentity, ident)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, error) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, bearerPrefix) {
		return "", errMissingHeader
	}
	return h[len(bearerPrefix):], nil
}
