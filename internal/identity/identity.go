// Package identity propagates the verified caller identity from the edge of
// a service into its handlers, and holds the ownership check handlers apply
// to per-user resources.
package identity

import (
	"context"

	"Platform/internal/token"

	"github.com/gin-gonic/gin"
)

const contextKeyIdentity = "identity"

// Identity is the per-request result of successful token verification.
// It is set once by the middleware and read by handlers; never shared
// across requests.
type Identity struct {
	UserID   int64
	Username string
}

// Verifier turns a raw bearer token into an Identity. Implemented locally
// by token.Codec (services that hold the signing key) and remotely by
// Client (services that call the auth service).
type Verifier interface {
	Verify(ctx context.Context, raw string) (Identity, error)
}

// Local adapts a token.Codec to the Verifier interface.
type Local struct {
	Codec *token.Codec
}

func (l Local) Verify(_ context.Context, raw string) (Identity, error) {
	sub, err := l.Codec.Verify(raw)
	if err != nil {
		return Identity{}, err
	}
	return Identity{UserID: sub.UserID, Username: sub.Username}, nil
}

// FromContext returns the identity set by the middleware, if any.
func FromContext(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(contextKeyIdentity)
	if !ok {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	if !ok {
		return Identity{}, false
	}
	return ident, true
}
