package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "testIssuer"

	svc := NewJwtService(secretKey, issuer)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "5c1f1c3e-8f3e-4a55-9a57-0d4f1f7a2b11",
			"username": "runner",
		}
		expDuration := time.Minute * 5

		// Generate token
		token, err := svc.Generate(claims, expDuration)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Decode token
		decoded, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, "runner", decoded["username"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		invalidToken := "invalidTokenString"

		// Decode should fail
		_, err := svc.Decode(invalidToken)
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		claims := map[string]interface{}{
			"userID":   "5c1f1c3e-8f3e-4a55-9a57-0d4f1f7a2b11",
			"username": "runner",
		}
		expDuration := -time.Minute // Expired token

		// Generate expired token
		token, err := svc.Generate(claims, expDuration)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Decode should fail
		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Generate token with empty claims", func(t *testing.T) {
		emptyClaims := map[string]interface{}{}
		expDuration := time.Minute * 5

		// Generate token
		token, err := svc.Generate(emptyClaims, expDuration)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		// Decode token
		decodedClaims, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Empty(t, decodedClaims["userID"])
		assert.Empty(t, decodedClaims["username"])
		assert.Equal(t, issuer, decodedClaims["iss"])
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other := NewJwtService(secretKey, "otherIssuer")
		token, err := other.Generate(map[string]interface{}{"userID": "42"}, time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrWrongIssuer)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other := NewJwtService("another-secret", issuer)
		token, err := other.Generate(map[string]interface{}{"userID": "42"}, time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})
}
