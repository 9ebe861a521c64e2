package helpers

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// SessionTokenLen is the hex length of a session token (32 random bytes).
const SessionTokenLen = 64

// NewSessionToken generates an opaque session token: 32 random bytes,
// hex-encoded to 64 characters.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// IsSessionToken reports whether s has the shape of a session token:
// exactly 64 hexadecimal characters. Checked before any store lookup.
func IsSessionToken(s string) bool {
	if len(s) != SessionTokenLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NewVerificationCode generates a random 6-digit numeric code,
// zero-padded ("004217" is valid).
func NewVerificationCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(b)
	return fmt.Sprintf("%06d", n%1000000), nil
}
