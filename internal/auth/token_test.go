package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	token, err := tm.Issue(42, "Alice")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	identity, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}
	if identity.ID != 42 || identity.Name != "Alice" {
		t.Fatalf("expected identity {42 Alice}, got %+v", identity)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Hour)

	token, err := tm.Issue(1, "Bob")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	if _, err := tm.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 24*time.Hour)

	if _, err := tm.Verify("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 24*time.Hour)
	verifier := NewTokenManager("secret-b", 24*time.Hour)

	token, err := issuer.Issue(1, "Carol")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed after key rotation, got %v", err)
	}
}
