package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoByTwo is the maze produced by starting at (0,0) with unshuffled directions:
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
func twoByTwo(t *testing.T) *Maze {
	m, err := FromOpenings(2, 2, [][]bool{{true}, {true}}, [][]bool{{false, true}})
	require.NoError(t, err)
	return m
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"up":     Up,
		"UP":     Up,
		"north":  Up,
		"Right":  Right,
		"east":   Right,
		" down ": Down,
		"South":  Down,
		"left":   Left,
		"WEST":   Left,
	}
	for in, want := range cases {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, Down, Up.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, Up, Down.Opposite())
	assert.Equal(t, Right, Left.Opposite())
}

func TestCanMove(t *testing.T) {
	m := twoByTwo(t)

	cases := []struct {
		pos  CellPosition
		dir  Direction
		want bool
	}{
		{CellPosition{0, 0}, Right, true},
		{CellPosition{0, 1}, Left, true},
		{CellPosition{0, 0}, Down, false},
		{CellPosition{0, 1}, Down, true},
		{CellPosition{1, 1}, Up, true},
		{CellPosition{1, 1}, Left, true},
		{CellPosition{1, 0}, Up, false},
		{CellPosition{0, 0}, Up, false},
		{CellPosition{0, 0}, Left, false},
		{CellPosition{1, 1}, Right, false},
		{CellPosition{1, 1}, Down, false},
		{CellPosition{5, 5}, Up, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, m.CanMove(c.pos, c.dir), "%v %v", c.pos, c.dir)
	}
}

func TestNewValidMove(t *testing.T) {
	m := twoByTwo(t)

	move, err := m.NewValidMove(CellPosition{0, 1}, Down)
	require.NoError(t, err)
	assert.Equal(t, Move{From: CellPosition{0, 1}, To: CellPosition{1, 1}, Direction: Down}, move)

	_, err = m.NewValidMove(CellPosition{0, 0}, Down)
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestFromOpenings(t *testing.T) {
	t.Run("copies matrices", func(t *testing.T) {
		v := [][]bool{{true}, {true}}
		h := [][]bool{{false, true}}
		m, err := FromOpenings(2, 2, v, h)
		require.NoError(t, err)

		v[0][0] = false
		assert.True(t, m.CanMove(CellPosition{0, 0}, Right))

		got := m.Verticals()
		got[1][0] = false
		assert.True(t, m.CanMove(CellPosition{1, 0}, Right))
	})

	t.Run("rejects wrong shapes", func(t *testing.T) {
		_, err := FromOpenings(2, 2, [][]bool{{true}}, [][]bool{{false, true}})
		assert.ErrorIs(t, err, ErrInvalidOpenings)

		_, err = FromOpenings(2, 2, [][]bool{{true}, {true}}, [][]bool{{false}})
		assert.ErrorIs(t, err, ErrInvalidOpenings)
	})

	t.Run("rejects bad dimensions", func(t *testing.T) {
		_, err := FromOpenings(0, 2, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("round trips a generated maze", func(t *testing.T) {
		g, err := Generate(9, 13, rand.New(rand.NewSource(11)))
		require.NoError(t, err)

		m, err := FromOpenings(g.Rows(), g.Cols(), g.Verticals(), g.Horizontals())
		require.NoError(t, err)
		assert.Equal(t, g.String(), m.String())
	})
}

func TestSolve(t *testing.T) {
	m := twoByTwo(t)

	path, err := m.Solve(CellPosition{0, 0}, CellPosition{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []CellPosition{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, path)

	path, err = m.Solve(CellPosition{1, 1}, CellPosition{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []CellPosition{{1, 1}}, path)

	_, err = m.Solve(CellPosition{0, 0}, CellPosition{2, 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	closed, err := FromOpenings(1, 2, [][]bool{{false}}, [][]bool{})
	require.NoError(t, err)
	_, err = closed.Solve(CellPosition{0, 0}, CellPosition{0, 1})
	assert.ErrorIs(t, err, ErrNoPath)

	t.Run("every step of a generated maze is a valid move", func(t *testing.T) {
		g, err := Generate(15, 20, rand.New(rand.NewSource(5)))
		require.NoError(t, err)

		path, err := g.Solve(CellPosition{0, 0}, CellPosition{14, 19})
		require.NoError(t, err)
		for i := 1; i < len(path); i++ {
			moved := false
			for _, d := range []Direction{Up, Right, Down, Left} {
				if path[i-1].Step(d) == path[i] {
					moved = g.CanMove(path[i-1], d)
				}
			}
			assert.True(t, moved, "step %d %v -> %v", i, path[i-1], path[i])
		}
	})
}

func TestString(t *testing.T) {
	want := "" +
		"+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|       |\n" +
		"+---+---+\n"
	assert.Equal(t, want, twoByTwo(t).String())
}
