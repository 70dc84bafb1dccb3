package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/auth"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrMissingCredentials = errors.New("name, email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles account creation and credential checks, issuing
// bearer tokens on success.
type AuthService struct {
	users  UserStore
	tokens *auth.TokenManager
}

func NewAuthService(users UserStore, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*core.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := core.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*core.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("load user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Authenticate resolves a bearer token into the user it identifies.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*core.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, auth.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
