// pkg/auth/session_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndValidate(t *testing.T) {
	sm := NewSessionManager("test-secret", time.Hour)

	token, err := sm.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "tracker", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionManager_WrongSecret(t *testing.T) {
	sm := NewSessionManager("test-secret", time.Hour)
	other := NewSessionManager("other-secret", time.Hour)

	token, err := sm.Issue(42, "alice")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestSessionManager_ExpiredToken(t *testing.T) {
	sm := NewSessionManager("test-secret", -time.Minute)

	token, err := sm.Issue(42, "alice")
	require.NoError(t, err)

	_, err = sm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionManager_GarbageToken(t *testing.T) {
	sm := NewSessionManager("test-secret", time.Hour)

	_, err := sm.Validate("not-a-token")
	assert.Error(t, err)
}
