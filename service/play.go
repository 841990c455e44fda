package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

// MaxDimension bounds the rows and cols of a maze a player may start.
const MaxDimension = 200

// ErrMazeTooLarge is returned when a requested maze exceeds MaxDimension.
var ErrMazeTooLarge = errors.New("maze too large")

const (
	defaultRows             = 30
	defaultCols             = 40
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// PlayOptions configures a PlayService.
type PlayOptions struct {
	// DefaultRows and DefaultCols are used when a run is started without dimensions.
	DefaultRows int
	DefaultCols int

	// NewRandom returns the random source for one maze generation.
	NewRandom func() maze.Random
}

// PlayService starts runs, applies moves and records the winners.
type PlayService struct {
	runs    i.RunStore
	records i.RecordRepo
	users   i.UserRepo
	logger  i.Logger
	opts    *PlayOptions
}

// NewPlayService wires a PlayService. A nil opts uses the defaults.
func NewPlayService(runs i.RunStore, records i.RecordRepo, users i.UserRepo, logger i.Logger, opts *PlayOptions) (*PlayService, error) {
	if runs == nil || records == nil || users == nil || logger == nil {
		return nil, errors.New("play service requires a run store, record repo, user repo and logger")
	}

	if opts == nil {
		opts = &PlayOptions{}
	}
	if opts.DefaultRows <= 0 {
		opts.DefaultRows = defaultRows
	}
	if opts.DefaultCols <= 0 {
		opts.DefaultCols = defaultCols
	}
	if opts.NewRandom == nil {
		opts.NewRandom = func() maze.Random {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}

	return &PlayService{
		runs:    runs,
		records: records,
		users:   users,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Start generates a new maze for the player. Zero dimensions fall back to the defaults.
func (p *PlayService) Start(ctx context.Context, playerID uuid.UUID, rows, cols int) (*game.Run, error) {
	if rows == 0 {
		rows = p.opts.DefaultRows
	}
	if cols == 0 {
		cols = p.opts.DefaultCols
	}
	if max(rows, cols) > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrMazeTooLarge, rows, cols, MaxDimension)
	}

	run, err := game.NewRun(playerID, rows, cols, p.opts.NewRandom())
	if err != nil {
		return nil, err
	}

	if err := p.runs.Save(ctx, run.Snapshot()); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	p.logger.Info(fmt.Sprintf("player %s started run %s (%dx%d)", playerID, run.ID, rows, cols))

	// A single cell maze is won on arrival.
	if run.Won {
		p.record(ctx, run)
	}
	return run, nil
}

// Get loads a run owned by the player.
func (p *PlayService) Get(ctx context.Context, playerID, runID uuid.UUID) (*game.Run, error) {
	state, err := p.runs.ByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	// Other players' runs are reported as missing.
	if state.PlayerID != playerID {
		return nil, game.ErrRunNotFound
	}

	return game.FromState(state)
}

// Move rolls the ball of a run one cell. A winning move stores a leaderboard record.
func (p *PlayService) Move(ctx context.Context, playerID, runID uuid.UUID, d maze.Direction) (*game.Run, error) {
	unlock, err := p.runs.Lock(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("locking run: %w", err)
	}
	defer unlock()

	run, err := p.Get(ctx, playerID, runID)
	if err != nil {
		return nil, err
	}

	won, err := run.Move(d)
	if err != nil {
		return run, err
	}

	if err := p.runs.Save(ctx, run.Snapshot()); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	if won {
		p.record(ctx, run)
	}
	return run, nil
}

// Replay discards the maze of a run and generates a new one of the same size.
func (p *PlayService) Replay(ctx context.Context, playerID, runID uuid.UUID) (*game.Run, error) {
	unlock, err := p.runs.Lock(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("locking run: %w", err)
	}
	defer unlock()

	run, err := p.Get(ctx, playerID, runID)
	if err != nil {
		return nil, err
	}

	if err := run.Replay(p.opts.NewRandom()); err != nil {
		return nil, err
	}

	if err := p.runs.Save(ctx, run.Snapshot()); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	p.logger.Info(fmt.Sprintf("player %s replayed run %s", playerID, runID))
	return run, nil
}

// Leaderboard returns the best finished runs for a maze size.
func (p *PlayService) Leaderboard(ctx context.Context, rows, cols int, limit int64) ([]domain.Record, error) {
	if rows <= 0 || cols <= 0 {
		return nil, maze.ErrInvalidDimensions
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	limit = min(limit, maxLeaderboardLimit)

	return p.records.Top(ctx, rows, cols, limit)
}

// record stores a won run. Failures are logged; the win itself already stands.
func (p *PlayService) record(ctx context.Context, run *game.Run) {
	rec := &domain.Record{
		ID:         uuid.New(),
		RunID:      run.ID,
		PlayerID:   run.PlayerID,
		Rows:       run.Maze.Rows(),
		Cols:       run.Maze.Cols(),
		Moves:      run.Moves,
		Elapsed:    run.Elapsed(),
		FinishedAt: run.FinishedAt,
	}

	if user, err := p.users.ByID(run.PlayerID); err == nil {
		rec.Username = user.Username
	} else {
		p.logger.Warning(fmt.Sprintf("looking up winner %s: %v", run.PlayerID, err))
	}

	if err := p.records.Save(ctx, rec); err != nil {
		p.logger.Error(fmt.Sprintf("saving record of run %s: %v", run.ID, err))
		return
	}

	p.logger.Info(fmt.Sprintf("player %s finished run %s in %d moves", run.PlayerID, run.ID, run.Moves))
}
