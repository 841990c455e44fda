package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Claim keys carried by the tokens issued on sign in.
const (
	ClaimUserID   = "userID"
	ClaimUsername = "username"
)

// Auth registers players and issues their tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth service backed by the given repository and tokenizer.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repository and a tokenizer")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}, nil
}

// Register creates a new user after validating the username and password.
func (a *Auth) Register(username, password string) error {
	_, err := a.userRepo.ByUsername(username)
	switch {
	case err == nil:
		return domain.ErrUsernameConflict
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("looking up username: %w", err)
	}

	user, err := domain.NewUser(domain.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn checks the credentials and returns the user with a fresh token.
func (a *Auth) SignIn(username, password string) (*domain.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		ClaimUserID:   user.ID.String(),
		ClaimUsername: user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
