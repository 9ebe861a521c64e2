package application

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/jpsalviano/todolists/internal/domain/entity"
	"github.com/jpsalviano/todolists/internal/domain/repository"
	"github.com/jpsalviano/todolists/pkg/helpers"
	"github.com/jpsalviano/todolists/pkg/mailer"
)

func verifyKey(code string) string { return "verify:" + code }

// EmailPublisher enqueues email jobs for the worker. Satisfied by
// helpers.RabbitPublisher.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// RegistrationService creates accounts and dispatches verification codes.
type RegistrationService struct {
	Users       repository.UserRepository
	Tokens      repository.TokenStore
	Pub         EmailPublisher
	Logger      *logrus.Logger
	CodeTTL     time.Duration
	MailEnabled bool
}

func NewRegistrationService(users repository.UserRepository, tokens repository.TokenStore, pub EmailPublisher, logger *logrus.Logger, codeTTL time.Duration, mailEnabled bool) *RegistrationService {
	return &RegistrationService{
		Users:       users,
		Tokens:      tokens,
		Pub:         pub,
		Logger:      logger,
		CodeTTL:     codeTTL,
		MailEnabled: mailEnabled,
	}
}

// ValidateUserInfo checks the submitted name and password pair against the
// registration rules. Name: 6-40 characters, letters and spaces only.
// Password: both fields equal, 6-30 characters.
func ValidateUserInfo(name, password1, password2 string) error {
	if err := validateName(name); err != nil {
		return err
	}
	return validatePassword(password1, password2)
}

func validateName(name string) error {
	n := len([]rune(name))
	if n < 6 || n > 40 {
		return ErrNameLength
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return ErrNameCharset
		}
	}
	return nil
}

func validatePassword(password1, password2 string) error {
	if password1 != password2 {
		return ErrPasswordsMismatch
	}
	if len(password1) < 6 || len(password1) > 30 {
		return ErrPasswordLength
	}
	return nil
}

// Register validates the submitted info, stores the account with a bcrypt
// hash, and emails a verification code. A duplicate email belonging to a
// verified account fails; an unverified duplicate is overwritten and gets
// a fresh code, so an abandoned signup can be retried.
func (s *RegistrationService) Register(ctx context.Context, name, email, password1, password2 string) error {
	if err := ValidateUserInfo(name, password1, password2); err != nil {
		return err
	}
	hash, err := helpers.HashPassword(password1)
	if err != nil {
		return err
	}

	u := &entity.User{Name: name, Email: email, Password: hash}
	err = s.Users.Create(ctx, u)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		existing, getErr := s.Users.GetByEmail(ctx, email)
		if getErr != nil {
			return getErr
		}
		if existing.Verified {
			return ErrEmailInUse
		}
		if updErr := s.Users.UpdateUnverified(ctx, u); updErr != nil {
			return updErr
		}
	} else if err != nil {
		return err
	}

	return s.sendCode(ctx, name, email)
}

// ResendCode issues a fresh verification code for a registered address
// that never finished verifying.
func (s *RegistrationService) ResendCode(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEmailNotRegistered
	}
	if err != nil {
		return err
	}
	if u.Verified {
		return ErrEmailInUse
	}
	return s.sendCode(ctx, u.Name, u.Email)
}

func (s *RegistrationService) sendCode(ctx context.Context, name, email string) error {
	code, err := helpers.NewVerificationCode()
	if err != nil {
		return err
	}
	if err := s.Tokens.Set(ctx, verifyKey(code), email, s.CodeTTL); err != nil {
		return err
	}
	if !s.MailEnabled || s.Pub == nil {
		s.Logger.WithField("email", email).Debug("mail sending disabled, code stored only")
		return nil
	}
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateVerificationCode,
		Data:     map[string]any{"Name": name, "Code": code},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		// The code is already stored; the user can ask for a resend. The
		// broker being down still needs operator attention.
		s.Logger.WithError(err).WithField("email", email).Error("failed to enqueue verification email")
	}
	return nil
}
