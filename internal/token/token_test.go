package token

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("test-secret"))

	raw, err := c.Issue(42, "john", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	sub, err := c.Verify(raw)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if sub.UserID != 42 {
		t.Fatalf("userID mismatch: got %d want 42", sub.UserID)
	}
	if sub.Username != "john" {
		t.Fatalf("username mismatch: got %q want %q", sub.Username, "john")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("test-secret"))

	raw, err := c.Issue(1, "u1", -time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := c.Verify(raw); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()

	raw, err := NewCodec([]byte("right-key")).Issue(1, "u1", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewCodec([]byte("wrong-key")).Verify(raw); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("test-secret"))
	raw, err := c.Issue(1, "u1", time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Flip a character in the signature segment.
	i := strings.LastIndex(raw, ".") + 1
	b := []byte(raw)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	if _, err := c.Verify(string(b)); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("k"))
	for _, raw := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := c.Verify(raw); err != ErrMalformed {
			t.Fatalf("Verify(%q): expected ErrMalformed, got %v", raw, err)
		}
	}
}
