package entity

import (
	"time"
)

// User is the aggregate root for accounts.
// Password holds the bcrypt hash, never the plain text.
// Verified flips to true exactly once, during email verification.
type User struct {
	ID        int
	Name      string
	Email     string
	Password  string
	Verified  bool
	CreatedAt time.Time
}
