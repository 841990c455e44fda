package game

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// RunState is the serialisable snapshot of a Run.
type RunState struct {
	ID          uuid.UUID         `bson:"_id" json:"id"`
	PlayerID    uuid.UUID         `bson:"playerId" json:"player_id"`
	Rows        int               `bson:"rows" json:"rows"`
	Cols        int               `bson:"cols" json:"cols"`
	Verticals   [][]bool          `bson:"verticals" json:"verticals"`
	Horizontals [][]bool          `bson:"horizontals" json:"horizontals"`
	Ball        maze.CellPosition `bson:"ball" json:"ball"`
	Goal        maze.CellPosition `bson:"goal" json:"goal"`
	Moves       int               `bson:"moves" json:"moves"`
	Won         bool              `bson:"won" json:"won"`
	StartedAt   time.Time         `bson:"startedAt" json:"started_at"`
	FinishedAt  time.Time         `bson:"finishedAt,omitempty" json:"finished_at,omitempty"`
}

// Snapshot captures the current state of the run.
func (r *Run) Snapshot() RunState {
	return RunState{
		ID:          r.ID,
		PlayerID:    r.PlayerID,
		Rows:        r.Maze.Rows(),
		Cols:        r.Maze.Cols(),
		Verticals:   r.Maze.Verticals(),
		Horizontals: r.Maze.Horizontals(),
		Ball:        r.Ball,
		Goal:        r.Goal,
		Moves:       r.Moves,
		Won:         r.Won,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}
}

// FromState rebuilds a Run from a snapshot.
func FromState(s RunState) (*Run, error) {
	m, err := maze.FromOpenings(s.Rows, s.Cols, s.Verticals, s.Horizontals)
	if err != nil {
		return nil, err
	}
	if !m.InBound(s.Ball) || !m.InBound(s.Goal) {
		return nil, maze.ErrOutOfBounds
	}

	return &Run{
		ID:         s.ID,
		PlayerID:   s.PlayerID,
		Maze:       m,
		Ball:       s.Ball,
		Goal:       s.Goal,
		Moves:      s.Moves,
		Won:        s.Won,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		now:        time.Now,
	}, nil
}
