package identity

import (
	"errors"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"
)

var ErrMissingClaims = errors.New("no user claims in request context")

// Authoriz rejects requests without a valid bearer token and stores the token claims in the context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		// Extract the token part.
		token := parts[1]

		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach user claims to the request context for further use.
		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// UserID returns the ID of the signed-in user from the claims set by Authoriz.
func UserID(c *gin.Context) (uuid.UUID, error) {
	value, ok := c.Get(ContextUserClaims)
	if !ok {
		return uuid.Nil, ErrMissingClaims
	}

	claims, ok := value.(map[string]interface{})
	if !ok {
		return uuid.Nil, ErrMissingClaims
	}

	raw, ok := claims[service.ClaimUserID].(string)
	if !ok {
		return uuid.Nil, ErrMissingClaims
	}
	return uuid.Parse(raw)
}
