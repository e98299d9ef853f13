// Package auth verifies presented credentials against stored users and
// mints session tokens for the ones that check out.
package auth

import (
	"context"
	"fmt"
	"strings"

	"invoicing-backend/internal/model"
	"invoicing-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrorKind discriminates authentication failures. Callers branch on it;
// anything that is not an *Error is not an authentication failure at all.
type ErrorKind string

const (
	// KindInvalidCredentials covers unknown email or wrong password.
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	// KindBackend covers verification failures caused by the auth layer
	// itself (user lookup errors and the like).
	KindBackend ErrorKind = "backend"
)

type Error struct {
	Kind ErrorKind
	Err  error // optional cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Verifier checks an email/password pair.
type Verifier interface {
	Verify(ctx context.Context, email, password string) (*model.User, error)
}

type CredentialVerifier struct {
	users repository.UsersRepository
}

func NewCredentialVerifier(users repository.UsersRepository) *CredentialVerifier {
	return &CredentialVerifier{users: users}
}

var _ Verifier = (*CredentialVerifier)(nil)

// Verify returns the matched user, or an *Error whose Kind tells invalid
// credentials apart from auth-layer trouble. The password comparison runs
// against the stored bcrypt hash.
func (v *CredentialVerifier) Verify(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, &Error{Kind: KindInvalidCredentials}
	}

	u, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, &Error{Kind: KindBackend, Err: err}
	}
	if u == nil {
		return nil, &Error{Kind: KindInvalidCredentials}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, &Error{Kind: KindInvalidCredentials}
	}

	return u, nil
}
