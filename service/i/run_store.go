package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/google/uuid"
)

// RunStore keeps runs that are still being played.
type RunStore interface {
	// Save stores the run state, refreshing its expiry.
	Save(ctx context.Context, state game.RunState) error

	// ByID loads a run state. Returns ErrRunNotFound when it is missing or expired.
	ByID(ctx context.Context, id uuid.UUID) (game.RunState, error)

	// Lock acquires the exclusive lock of a run and returns the function releasing it.
	Lock(ctx context.Context, id uuid.UUID) (func(), error)
}
