package application

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/domain/repository"
	"github.com/jpsalviano/todolists/pkg/helpers"
)

func sessionKey(token string) string { return "session:" + token }

// SessionService issues, checks, and revokes opaque session tokens.
// A token is 64 hex characters mapped to a user id in the token store.
type SessionService struct {
	Users  repository.UserRepository
	Tokens repository.TokenStore
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewSessionService(users repository.UserRepository, tokens repository.TokenStore, ttl time.Duration, logger *logrus.Logger) *SessionService {
	return &SessionService{Users: users, Tokens: tokens, TTL: ttl, Logger: logger}
}

// Authenticate validates email/password for a verified account and issues
// a session token. The three failure kinds are distinct so the boundary
// can offer the resend-code recovery path on an unverified email.
func (s *SessionService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrEmailNotRegistered
	}
	if err != nil {
		return "", err
	}
	if !helpers.CheckPassword(u.Password, password) {
		return "", ErrWrongPassword
	}
	if !u.Verified {
		return "", ErrEmailNotVerified
	}
	return s.Issue(ctx, u.ID)
}

// Issue generates a fresh token and stores token -> user id.
func (s *SessionService) Issue(ctx context.Context, userID int) (string, error) {
	token, err := helpers.NewSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.Tokens.Set(ctx, sessionKey(token), strconv.Itoa(userID), s.TTL); err != nil {
		return "", err
	}
	s.Logger.WithField("user_id", userID).Debug("session issued")
	return token, nil
}

// Authorize resolves a presented token to a user id. The shape check runs
// before any store lookup, so a malformed token fails identically whatever
// the store holds.
func (s *SessionService) Authorize(ctx context.Context, token string) (int, error) {
	if !helpers.IsSessionToken(token) {
		return 0, ErrBadToken
	}
	val, ok, err := s.Tokens.Get(ctx, sessionKey(token))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnknownToken
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, ErrUnknownToken
	}
	return userID, nil
}

// Logout deletes the token; a later Authorize with the same token fails.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if !helpers.IsSessionToken(token) {
		return ErrBadToken
	}
	return s.Tokens.Del(ctx, sessionKey(token))
}
