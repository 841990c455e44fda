package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*domain.User, error)
}

// RecordRepo stores finished runs.
type RecordRepo interface {
	// Save inserts a finished run.
	Save(ctx context.Context, record *domain.Record) error

	// Top returns up to limit records for the given maze size, best first.
	Top(ctx context.Context, rows, cols int, limit int64) ([]domain.Record, error)
}
