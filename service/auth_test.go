package service

import (
	"errors"
	"testing"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "correct-horse-battery-staple-42"

func TestAuth(t *testing.T) {
	users := newMemUsers()
	tokens := &fakeTokenizer{}
	auth, err := NewAuthService(users, tokens)
	require.NoError(t, err)

	t.Run("register then sign in", func(t *testing.T) {
		require.NoError(t, auth.Register("runner_one", strongPassword))

		user, token, err := auth.SignIn("runner_one", strongPassword)
		require.NoError(t, err)
		assert.Equal(t, "runner_one", user.Username)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, user.ID.String(), tokens.claims[ClaimUserID])
		assert.Equal(t, "runner_one", tokens.claims[ClaimUsername])
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := auth.Register("runner_one", strongPassword)
		assert.ErrorIs(t, err, domain.ErrUsernameConflict)
	})

	t.Run("weak password", func(t *testing.T) {
		err := auth.Register("runner_two", "12345")
		assert.ErrorIs(t, err, domain.ErrWeakPassword)
	})

	t.Run("lookup failure is not a free username", func(t *testing.T) {
		users.err = errors.New("mongo down")
		defer func() { users.err = nil }()

		err := auth.Register("runner_three", strongPassword)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUsernameConflict)

		users.err = nil
		_, err = users.ByUsername("runner_three")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.SignIn("runner_one", "not-the-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := auth.SignIn("nobody_here", strongPassword)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("tokenizer failure", func(t *testing.T) {
		tokens.err = errors.New("boom")
		defer func() { tokens.err = nil }()

		_, _, err := auth.SignIn("runner_one", strongPassword)
		assert.Error(t, err)
	})
}

func TestNewAuthServiceRequiresDependencies(t *testing.T) {
	_, err := NewAuthService(nil, &fakeTokenizer{})
	assert.Error(t, err)
}
