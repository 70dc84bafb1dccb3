package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/auth"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/storage"
)

func newAuthService() (*AuthService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(store, tokens), store
}

func TestSignupLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "Ada", "Ada@Example.com", "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if token == "" {
		t.Error("expected signup token")
	}
	if user.PasswordHash == "s3cret" {
		t.Error("password stored in plain text")
	}

	got, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated id = %q, want %q", got.ID, user.ID)
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "", "a@b.com", "pw"); !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("err = %v, want ErrMissingCredentials", err)
	}

	if _, _, err := svc.Signup(ctx, "Ada", "ada@example.com", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Signup(ctx, "Other", "ADA@example.com", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "Ada", "ada@example.com", "s3cret"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "ghost@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	svc, _ := newAuthService()
	if _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVoiceEnrollAndVerify(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewVoiceService(store)
	ctx := context.Background()

	if err := store.CreateUser(ctx, core.User{ID: "user-1", Email: "a@b.com"}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(ctx, "user-1", "open sesame"); !errors.Is(err, core.ErrNotEnrolled) {
		t.Fatalf("err = %v, want ErrNotEnrolled", err)
	}

	if err := svc.Enroll(ctx, "user-1", ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("err = %v, want ErrEmptyPassphrase", err)
	}
	if err := svc.Enroll(ctx, "user-1", "  Open Sesame  "); err != nil {
		t.Fatal(err)
	}

	user, err := store.GetUserByID(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if user.VoicePassphrase != "open sesame" {
		t.Fatalf("stored passphrase = %q, want normalized", user.VoicePassphrase)
	}

	res, err := svc.Verify(ctx, "user-1", "OPEN SESAME")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Verified || res.Score != 1.0 {
		t.Fatalf("result = %+v, want verified 1.0", res)
	}

	res, err = svc.Verify(ctx, "user-1", "close sesame")
	if err != nil {
		t.Fatal(err)
	}
	if res.Verified {
		t.Fatalf("result = %+v, want unverified", res)
	}
	if res.Score != 0.5 {
		t.Fatalf("score = %v, want 0.5", res.Score)
	}
}
