package main

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	assert.NoError(t, run(3, 4, 1, true))
	assert.NoError(t, run(1, 1, 0, true))
	assert.ErrorIs(t, run(0, 4, 1, false), maze.ErrInvalidDimensions)
}
