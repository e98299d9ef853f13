package auth

import (
	"testing"
	"time"

	"invoicing-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue(&model.User{ID: "U1", Email: "demo@example.com"})
	assert.NoError(t, err)

	id, err := tm.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "U1", id)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue(&model.User{ID: "U1"})
	assert.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	// NewTokenManager clamps non-positive TTLs, so build an expired one directly.
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Minute}

	token, err := tm.Issue(&model.User{ID: "U1"})
	assert.NoError(t, err)

	_, err = tm.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	_, err := tm.VerifyToken("not-a-token")
	assert.Error(t, err)
}
