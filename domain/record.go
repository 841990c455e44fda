package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is a finished run kept for the leaderboard.
type Record struct {
	ID         uuid.UUID     `bson:"_id" json:"id"`
	RunID      uuid.UUID     `bson:"runId" json:"run_id"`
	PlayerID   uuid.UUID     `bson:"playerId" json:"player_id"`
	Username   string        `bson:"username" json:"username"`
	Rows       int           `bson:"rows" json:"rows"`
	Cols       int           `bson:"cols" json:"cols"`
	Moves      int           `bson:"moves" json:"moves"`
	Elapsed    time.Duration `bson:"elapsed" json:"elapsed"`
	FinishedAt time.Time     `bson:"finishedAt" json:"finished_at"`
}

// Less orders records by fewest moves, then by shortest time.
func (r Record) Less(other Record) bool {
	if r.Moves != other.Moves {
		return r.Moves < other.Moves
	}
	return r.Elapsed < other.Elapsed
}
