package action

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"invoicing-backend/internal/auth"
	"invoicing-backend/internal/metrics"
	"invoicing-backend/internal/model"
)

const (
	msgInvalidCredentials = "Invalid credentials."
	msgAuthFailed         = "Something went wrong."
)

type Sessions struct {
	verifier auth.Verifier
}

func NewSessions(verifier auth.Verifier) *Sessions {
	return &Sessions{verifier: verifier}
}

// Authenticate checks the submitted credentials. On success it returns the
// user. Recognized authentication failures come back as a user-facing
// message with a nil error; anything the auth layer does not claim as its
// own propagates as the error for the framework's default handling.
func (s *Sessions) Authenticate(ctx context.Context, values url.Values) (*model.User, string, error) {
	email := strings.TrimSpace(values.Get("email"))
	password := values.Get("password")

	u, err := s.verifier.Verify(ctx, email, password)
	if err == nil {
		metrics.LoginsTotal.WithLabelValues("ok").Inc()
		return u, "", nil
	}

	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return nil, "", err
	}

	if authErr.Kind == auth.KindInvalidCredentials {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, msgInvalidCredentials, nil
	}

	metrics.LoginsTotal.WithLabelValues("error").Inc()
	return nil, msgAuthFailed, nil
}
