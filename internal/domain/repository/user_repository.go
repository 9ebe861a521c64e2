package repository

import (
	"context"
	"errors"

	"github.com/jpsalviano/todolists/internal/domain/entity"
)

// Storage-level sentinel errors. The application layer translates these
// into its own error kinds before they reach the HTTP boundary.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateTitle = errors.New("todolist title already taken")
)

// UserRepository defines the credential-store operations for accounts.
type UserRepository interface {
	// Create inserts u and fills in its generated ID.
	// Returns ErrDuplicateEmail on a unique-constraint violation.
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	// SetVerified marks the account owning email as verified.
	SetVerified(ctx context.Context, email string) error
	// UpdateUnverified overwrites name and password of an unverified
	// account, keyed by email. Used when an unverified address registers
	// again. Returns ErrNotFound if no unverified row matches.
	UpdateUnverified(ctx context.Context, u *entity.User) error
}
