// Package token implements the signed bearer token shared by all services.
// A token carries the subject's user ID and username; validity is decided
// purely by signature and expiry, no server-side state.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("token is malformed")
	ErrBadSignature = errors.New("token signature is invalid")
	ErrExpired      = errors.New("token is expired")
)

// Subject is the identity embedded in a token.
type Subject struct {
	UserID   int64
	Username string
}

type claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a fixed HS256 key.
// The key is process-wide configuration; rotation is out of scope.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec returns a Codec signing with the given secret.
func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// Issue creates a signed token for the subject, valid for ttl from now.
func (c *Codec) Issue(userID int64, username string, ttl time.Duration) (string, error) {
	now := c.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return t.SignedString(c.secret)
}

// Verify parses and checks a token. On success it returns the embedded
// subject; otherwise ErrMalformed, ErrBadSignature or ErrExpired.
func (c *Codec) Verify(raw string) (Subject, error) {
	var cl claims
	t, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Subject{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Subject{}, ErrBadSignature
		default:
			return Subject{}, ErrMalformed
		}
	}
	if !t.Valid {
		return Subject{}, ErrMalformed
	}
	return Subject{UserID: cl.UserID, Username: cl.Username}, nil
}
