package gameapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestTimeout = 2 * time.Second

// RunController manages maze runs.
type RunController struct {
	playService i.Player
}

// NewRunController initializes a RunController.
func NewRunController(p i.Player) (*RunController, error) {
	if p == nil {
		return nil, errors.New("run controller requires a play service")
	}
	return &RunController{playService: p}, nil
}

// RegisterPublic registers public routes.
func (rc *RunController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", rc.leaderboard)
}

// RegisterProtected registers protected routes.
func (rc *RunController) RegisterProtected(route *gin.RouterGroup) {
	runs := route.Group("/runs")
	{
		runs.POST("", rc.start)
		runs.GET("/:ID", rc.get)
		runs.GET("/:ID/ascii", rc.ascii)
		runs.POST("/:ID/moves", rc.move)
		runs.POST("/:ID/replay", rc.replay)
	}
}

// start handles new run requests.
func (rc *RunController) start(ctx *gin.Context) {
	playerID, ok := playerFrom(ctx)
	if !ok {
		return
	}

	var request StartRunRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	run, err := rc.playService.Start(timeoutCtx, playerID, request.Rows, request.Cols)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newRunResponse(run))
}

// get returns the current state of a run.
func (rc *RunController) get(ctx *gin.Context) {
	run, ok := rc.load(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newRunResponse(run))
}

// ascii prints the maze of a run.
func (rc *RunController) ascii(ctx *gin.Context) {
	run, ok := rc.load(ctx)
	if !ok {
		return
	}
	ctx.String(http.StatusOK, run.Maze.String())
}

// move rolls the ball of a run.
func (rc *RunController) move(ctx *gin.Context) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, err := maze.ParseDirection(request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	run, err := rc.playService.Move(timeoutCtx, playerID, runID, dir)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRunResponse(run))
}

// replay regenerates the maze of a run.
func (rc *RunController) replay(ctx *gin.Context) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	run, err := rc.playService.Replay(timeoutCtx, playerID, runID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newRunResponse(run))
}

// leaderboard lists the best finished runs for a maze size.
func (rc *RunController) leaderboard(ctx *gin.Context) {
	rows, errRows := strconv.Atoi(ctx.Query("rows"))
	cols, errCols := strconv.Atoi(ctx.Query("cols"))
	if errRows != nil || errCols != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "rows and cols must be integers"})
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "0"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	records, err := rc.playService.Leaderboard(timeoutCtx, rows, cols, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newLeaderboard(records))
}

func (rc *RunController) load(ctx *gin.Context) (*game.Run, bool) {
	playerID, runID, ok := ids(ctx)
	if !ok {
		return nil, false
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	run, err := rc.playService.Get(timeoutCtx, playerID, runID)
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}
	return run, true
}

func playerFrom(ctx *gin.Context) (uuid.UUID, bool) {
	playerID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return playerID, true
}

func ids(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	playerID, ok := playerFrom(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	runID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return uuid.Nil, uuid.Nil, false
	}
	return playerID, runID, true
}

// writeError maps service errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrUnknownDirection),
		errors.Is(err, service.ErrMazeTooLarge):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, game.ErrRunNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, maze.ErrInvalidMove), errors.Is(err, game.ErrRunFinished):
		status, msg = http.StatusConflict, err.Error()
	}

	ctx.JSON(status, gin.H{"error": msg})
}
