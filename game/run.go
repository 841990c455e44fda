// Package game keeps the state of a single maze being played: where the ball
// is, where the goal is, and whether the player has reached it.
package game

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrRunFinished = errors.New("run already finished")
	ErrRunNotFound = errors.New("run not found")
)

// Run is one maze instance being played by a player.
// The ball starts in the top-left cell and the goal sits in the bottom-right one.
type Run struct {
	ID         uuid.UUID
	PlayerID   uuid.UUID
	Maze       *maze.Maze
	Ball       maze.CellPosition
	Goal       maze.CellPosition
	Moves      int
	Won        bool
	StartedAt  time.Time
	FinishedAt time.Time

	now func() time.Time
}

// NewRun generates a fresh rows x cols maze for the player.
func NewRun(playerID uuid.UUID, rows, cols int, rnd maze.Random) (*Run, error) {
	m, err := maze.Generate(rows, cols, rnd)
	if err != nil {
		return nil, err
	}

	r := &Run{
		ID:       uuid.New(),
		PlayerID: playerID,
		now:      time.Now,
	}
	r.reset(m)
	return r, nil
}

// reset places the ball and the goal on a new maze and clears progress.
func (r *Run) reset(m *maze.Maze) {
	r.Maze = m
	r.Ball = maze.CellPosition{Row: 0, Col: 0}
	r.Goal = maze.CellPosition{Row: m.Rows() - 1, Col: m.Cols() - 1}
	r.Moves = 0
	r.Won = r.Ball == r.Goal
	r.StartedAt = r.clock()
	r.FinishedAt = time.Time{}
	if r.Won {
		r.FinishedAt = r.StartedAt
	}
}

// Move rolls the ball one cell in direction d.
// It reports whether the move reached the goal.
func (r *Run) Move(d maze.Direction) (bool, error) {
	if r.Won {
		return false, ErrRunFinished
	}

	move, err := r.Maze.NewValidMove(r.Ball, d)
	if err != nil {
		return false, err
	}

	r.Ball = move.To
	r.Moves++
	if r.Ball == r.Goal {
		r.Won = true
		r.FinishedAt = r.clock()
	}
	return r.Won, nil
}

// Replay throws the current maze away and generates a new one of the same size.
func (r *Run) Replay(rnd maze.Random) error {
	m, err := maze.Generate(r.Maze.Rows(), r.Maze.Cols(), rnd)
	if err != nil {
		return err
	}
	r.reset(m)
	return nil
}

// Elapsed is the time between the start of the run and the win,
// or until now when the run is still going.
func (r *Run) Elapsed() time.Duration {
	if r.Won {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return r.clock().Sub(r.StartedAt)
}

// clock is truncated to milliseconds so that snapshots survive a bson round trip.
func (r *Run) clock() time.Time {
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	return now().UTC().Truncate(time.Millisecond)
}
