package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/domain/repository"
)

// VerificationService exchanges an emailed code for a verified account
// and a first session.
type VerificationService struct {
	Users    repository.UserRepository
	Tokens   repository.TokenStore
	Sessions *SessionService
	Logger   *logrus.Logger
}

func NewVerificationService(users repository.UserRepository, tokens repository.TokenStore, sessions *SessionService, logger *logrus.Logger) *VerificationService {
	return &VerificationService{Users: users, Tokens: tokens, Sessions: sessions, Logger: logger}
}

// Verify looks up the code, flips the account's verified flag, and issues
// a session token. The code entry is left to expire on its own TTL.
func (s *VerificationService) Verify(ctx context.Context, code string) (string, error) {
	email, ok, err := s.Tokens.Get(ctx, verifyKey(code))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCodeWrongOrExpired
	}
	if err := s.Users.SetVerified(ctx, email); err != nil {
		return "", err
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrCodeWrongOrExpired
	}
	if err != nil {
		return "", err
	}
	s.Logger.WithField("user_id", u.ID).Info("email verified")
	return s.Sessions.Issue(ctx, u.ID)
}
