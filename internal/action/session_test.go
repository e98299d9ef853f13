package action

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"invoicing-backend/internal/auth"
	"invoicing-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	user *model.User
	err  error
}

func (f *fakeVerifier) Verify(_ context.Context, _, _ string) (*model.User, error) {
	return f.user, f.err
}

func loginValues(email, password string) url.Values {
	v := url.Values{}
	v.Set("email", email)
	v.Set("password", password)
	return v
}

func TestAuthenticate_OK(t *testing.T) {
	s := NewSessions(&fakeVerifier{user: &model.User{ID: "U1"}})

	u, msg, err := s.Authenticate(context.Background(), loginValues("demo@example.com", "123456"))

	assert.NoError(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, "U1", u.ID)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	s := NewSessions(&fakeVerifier{err: &auth.Error{Kind: auth.KindInvalidCredentials}})

	u, msg, err := s.Authenticate(context.Background(), loginValues("demo@example.com", "wrong"))

	assert.NoError(t, err)
	assert.Nil(t, u)
	assert.Equal(t, "Invalid credentials.", msg)
}

func TestAuthenticate_OtherAuthFailure(t *testing.T) {
	s := NewSessions(&fakeVerifier{err: &auth.Error{Kind: auth.KindBackend, Err: errors.New("down")}})

	_, msg, err := s.Authenticate(context.Background(), loginValues("demo@example.com", "123456"))

	assert.NoError(t, err)
	assert.Equal(t, "Something went wrong.", msg)
}

func TestAuthenticate_UnrecognizedErrorPropagates(t *testing.T) {
	cause := errors.New("context canceled")
	s := NewSessions(&fakeVerifier{err: cause})

	_, msg, err := s.Authenticate(context.Background(), loginValues("demo@example.com", "123456"))

	assert.Empty(t, msg)
	assert.ErrorIs(t, err, cause)
}
