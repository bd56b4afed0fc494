package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid auth token")
	// ErrTokenExpired is returned for structurally valid tokens past expiry.
	ErrTokenExpired = errors.New("auth token expired")
)

// Claims is the identity recovered from a verified token.
type Claims struct {
	UserID int64
	Role   string
}

// Strategy issues and verifies signed session tokens.
type Strategy interface {
	IssueToken(userID int64, role string) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tune strategy construction.
type Options struct {
	TTL time.Duration
}
