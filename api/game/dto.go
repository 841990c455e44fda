// Package gameapi exposes maze runs over HTTP.
package gameapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// StartRunRequest asks for a new maze. Zero values use the server defaults.
type StartRunRequest struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// MoveRequest rolls the ball one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// RunResponse describes a run and the openings of its maze.
type RunResponse struct {
	ID          string            `json:"id"`
	Rows        int               `json:"rows"`
	Cols        int               `json:"cols"`
	Verticals   [][]bool          `json:"verticals"`
	Horizontals [][]bool          `json:"horizontals"`
	Ball        maze.CellPosition `json:"ball"`
	Goal        maze.CellPosition `json:"goal"`
	Moves       int               `json:"moves"`
	Won         bool              `json:"won"`
	ElapsedMs   int64             `json:"elapsed_ms"`
}

// LeaderboardEntry is one finished run on the leaderboard.
type LeaderboardEntry struct {
	Username   string    `json:"username"`
	Moves      int       `json:"moves"`
	ElapsedMs  int64     `json:"elapsed_ms"`
	FinishedAt time.Time `json:"finished_at"`
}

func newRunResponse(r *game.Run) *RunResponse {
	return &RunResponse{
		ID:          r.ID.String(),
		Rows:        r.Maze.Rows(),
		Cols:        r.Maze.Cols(),
		Verticals:   r.Maze.Verticals(),
		Horizontals: r.Maze.Horizontals(),
		Ball:        r.Ball,
		Goal:        r.Goal,
		Moves:       r.Moves,
		Won:         r.Won,
		ElapsedMs:   r.Elapsed().Milliseconds(),
	}
}

func newLeaderboard(records []domain.Record) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, LeaderboardEntry{
			Username:   rec.Username,
			Moves:      rec.Moves,
			ElapsedMs:  rec.Elapsed.Milliseconds(),
			FinishedAt: rec.FinishedAt,
		})
	}
	return entries
}
