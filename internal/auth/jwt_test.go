package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	if manager == nil {
		t.Fatal("expected TokenManager to be created")
	}
	if string(manager.secret) != "test-secret" {
		t.Errorf("expected secret 'test-secret', got '%s'", manager.secret)
	}
	if manager.tokenDuration != time.Hour {
		t.Errorf("expected tokenDuration 1h, got %v", manager.tokenDuration)
	}
}

func TestIssue(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	token, expiresAt, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token == "" {
		t.Error("expected non-empty token")
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Error("expected header.claims.signature token structure")
	}

	expectedExpiry := time.Now().Add(time.Hour)
	if expiresAt.Before(expectedExpiry.Add(-time.Minute)) || expiresAt.After(expectedExpiry.Add(time.Minute)) {
		t.Errorf("expiry time not within expected range")
	}
}

func TestVerify_Valid(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	token, _, err := manager.Issue(42, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("expected Email 'test@example.com', got '%s'", claims.Email)
	}
}

func TestVerify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret-key", -time.Hour)

	token, _, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	_, err = manager.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_ZeroTTLExpiresImmediately(t *testing.T) {
	manager := NewTokenManager("test-secret-key", 0)

	token, _, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = manager.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired for ttl=0 token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	manager1 := NewTokenManager("secret-key-1", time.Hour)
	manager2 := NewTokenManager("secret-key-2", time.Hour)

	token, _, err := manager1.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	_, err = manager2.Verify(token)
	if !errors.Is(err, ErrTokenInvalidSignature) {
		t.Errorf("expected ErrTokenInvalidSignature, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	token, _, err := manager.Issue(7, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	// Flip one byte in the signature segment. This must fail as a signature
	// mismatch, never as a successful parse of tampered claims.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = manager.Verify(tampered)
	if !errors.Is(err, ErrTokenInvalidSignature) {
		t.Errorf("expected ErrTokenInvalidSignature, got %v", err)
	}
}

func TestVerify_TamperedClaims(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	token, _, err := manager.Issue(7, "test@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	// Swap the claims segment for one signed elsewhere.
	other := NewTokenManager("another-secret", time.Hour)
	otherToken, _, err := other.Issue(999, "attacker@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	parts := strings.Split(token, ".")
	otherParts := strings.Split(otherToken, ".")
	spliced := parts[0] + "." + otherParts[1] + "." + parts[2]

	if _, err := manager.Verify(spliced); err == nil {
		t.Error("expected error for token with spliced claims")
	}
}

func TestVerify_Malformed(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	_, err := manager.Verify("not-a-valid-token")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	_, err := manager.Verify("")
	if !errors.Is(err, ErrTokenMissing) {
		t.Errorf("expected ErrTokenMissing, got %v", err)
	}
}

func TestIssue_FreshTokenEachCall(t *testing.T) {
	manager := NewTokenManager("test-secret-key", time.Hour)

	first, _, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	second, _, err := manager.Issue(1, "test@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected a fresh token per call")
	}
	if _, err := manager.Verify(second); err != nil {
		t.Errorf("fresh token should verify: %v", err)
	}
}
