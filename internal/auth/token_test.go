package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	userID, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-123" {
		t.Fatalf("subject = %q, want user-123", userID)
	}
}

func TestVerifyRejects(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		manager *TokenManager
		token   string
	}{
		{"garbage token", m, "not-a-token"},
		{"empty token", m, ""},
		{"wrong secret", NewTokenManager("other-secret", time.Hour), token},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.manager.Verify(tc.token); err == nil {
				t.Fatal("expected verification failure")
			}
		})
	}
}

func TestVerifyExpired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)
	token, err := m.Issue("user-123")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "hunter2") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected wrong password to fail")
	}
}
