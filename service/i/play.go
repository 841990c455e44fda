package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Player runs mazes on behalf of signed-in players.
type Player interface {
	Start(ctx context.Context, playerID uuid.UUID, rows, cols int) (*game.Run, error)
	Get(ctx context.Context, playerID, runID uuid.UUID) (*game.Run, error)
	Move(ctx context.Context, playerID, runID uuid.UUID, d maze.Direction) (*game.Run, error)
	Replay(ctx context.Context, playerID, runID uuid.UUID) (*game.Run, error)
	Leaderboard(ctx context.Context, rows, cols int, limit int64) ([]domain.Record, error)
}
