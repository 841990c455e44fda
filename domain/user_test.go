package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	bcryptCost = bcrypt.MinCost
	const strong = "correct-horse-battery-staple-42"

	t.Run("valid user", func(t *testing.T) {
		id := uuid.New()
		u, err := NewUser(UserConfig{ID: id, Username: "maze_runner", PlainPassword: strong})
		require.NoError(t, err)

		assert.Equal(t, id, u.ID)
		assert.NotEqual(t, strong, u.PasswordHash)
		assert.True(t, u.VerifyPassword(strong))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	cases := []struct {
		name     string
		username string
		password string
		err      error
	}{
		{"short username", "ab", strong, ErrUsernameTooShort},
		{"long username", "abcdefghijklmnopqrstuvwxyz", strong, ErrUsernameTooLong},
		{"bad characters", "maze-runner", strong, ErrInvalidUsername},
		{"weak password", "maze_runner", "password", ErrWeakPassword},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewUser(UserConfig{ID: uuid.New(), Username: c.username, PlainPassword: c.password})
			assert.ErrorIs(t, err, c.err)
		})
	}
}
