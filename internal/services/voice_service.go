package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/core"
	"github.com/Cheptoo21/wtf-grp43-capstone-project-backend/internal/voice"
)

var ErrEmptyPassphrase = errors.New("passphrase is required")

// VoiceService manages passphrase enrollment and verification.
type VoiceService struct {
	users UserStore
}

func NewVoiceService(users UserStore) *VoiceService {
	return &VoiceService{users: users}
}

// Enroll stores the normalized passphrase, overwriting any prior
// value. No uniqueness or strength constraint applies.
func (s *VoiceService) Enroll(ctx context.Context, userID, passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}
	if err := s.users.SetVoicePassphrase(ctx, userID, voice.Normalize(passphrase)); err != nil {
		return fmt.Errorf("store passphrase: %w", err)
	}
	return nil
}

// Verify scores the spoken text against the enrolled passphrase.
// Returns core.ErrNotEnrolled when no passphrase is stored; a
// mismatch is a normal unverified result, not an error.
func (s *VoiceService) Verify(ctx context.Context, userID, spokenText string) (voice.Result, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return voice.Result{}, fmt.Errorf("load user: %w", err)
	}
	if user.VoicePassphrase == "" {
		return voice.Result{}, core.ErrNotEnrolled
	}
	return voice.Match(user.VoicePassphrase, spokenText), nil
}
