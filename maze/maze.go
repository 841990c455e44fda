/*
Package maze provides tools for creating and querying rectangular perfect mazes.

A maze is stored as two opening matrices. Verticals holds the passages between
horizontally adjacent cells and Horizontals the passages between vertically
stacked cells; a true entry means the wall between the two cells is open.

Mazes are generated with a randomized depth-first traversal, so the openings
always form a spanning tree over the grid: every cell is reachable from every
other cell along exactly one path.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidOpenings   = errors.New("opening matrices do not match maze dimensions")
	ErrInvalidMove       = errors.New("invalid move request")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrNoPath            = errors.New("no path between cells")
	ErrUnknownDirection  = errors.New("unknown direction")
)

// Maze is a rectangular grid of cells separated by walls that may be open.
type Maze struct {
	rows        int
	cols        int
	verticals   [][]bool // rows x (cols-1): open between (r,c) and (r,c+1)
	horizontals [][]bool // (rows-1) x cols: open between (r,c) and (r+1,c)
}

// newMaze returns a maze of the given size with every wall closed.
func newMaze(rows, cols int) *Maze {
	return &Maze{
		rows:        rows,
		cols:        cols,
		verticals:   boolMatrix(rows, cols-1),
		horizontals: boolMatrix(rows-1, cols),
	}
}

// FromOpenings rebuilds a maze from previously generated opening matrices.
// The matrices are copied.
func FromOpenings(rows, cols int, verticals, horizontals [][]bool) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !hasShape(verticals, rows, cols-1) || !hasShape(horizontals, rows-1, cols) {
		return nil, ErrInvalidOpenings
	}

	m := newMaze(rows, cols)
	for r := range verticals {
		copy(m.verticals[r], verticals[r])
	}
	for r := range horizontals {
		copy(m.horizontals[r], horizontals[r])
	}
	return m, nil
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze.
func (m *Maze) Cols() int {
	return m.cols
}

// Verticals returns a copy of the vertical opening matrix.
func (m *Maze) Verticals() [][]bool {
	return cloneMatrix(m.verticals)
}

// Horizontals returns a copy of the horizontal opening matrix.
func (m *Maze) Horizontals() [][]bool {
	return cloneMatrix(m.horizontals)
}

// InBound reports whether pos lies inside the grid.
func (m *Maze) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// CanMove reports whether the wall on the d side of pos is open.
func (m *Maze) CanMove(pos CellPosition, d Direction) bool {
	if !m.InBound(pos) || !m.InBound(pos.Step(d)) {
		return false
	}

	switch d {
	case Up:
		return m.horizontals[pos.Row-1][pos.Col]
	case Down:
		return m.horizontals[pos.Row][pos.Col]
	case Left:
		return m.verticals[pos.Row][pos.Col-1]
	case Right:
		return m.verticals[pos.Row][pos.Col]
	default:
		return false
	}
}

// NewValidMove builds the move from pos in direction d, or returns
// ErrInvalidMove if a wall or the border is in the way.
func (m *Maze) NewValidMove(pos CellPosition, d Direction) (Move, error) {
	if !m.CanMove(pos, d) {
		return Move{}, ErrInvalidMove
	}
	return Move{From: pos, To: pos.Step(d), Direction: d}, nil
}

// Passages counts the open entries of both matrices.
func (m *Maze) Passages() int {
	n := 0
	for _, matrix := range [][][]bool{m.verticals, m.horizontals} {
		for _, row := range matrix {
			for _, open := range row {
				if open {
					n++
				}
			}
		}
	}
	return n
}

// open removes the wall between pos and its neighbour in direction d.
func (m *Maze) open(pos CellPosition, d Direction) {
	switch d {
	case Up:
		m.horizontals[pos.Row-1][pos.Col] = true
	case Down:
		m.horizontals[pos.Row][pos.Col] = true
	case Left:
		m.verticals[pos.Row][pos.Col-1] = true
	case Right:
		m.verticals[pos.Row][pos.Col] = true
	}
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for row := 0; row < m.rows; row++ {
		b.WriteString("|")
		for col := 0; col < m.cols; col++ {
			if m.CanMove(CellPosition{Row: row, Col: col}, Right) {
				b.WriteString("    ")
			} else {
				b.WriteString("   |")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for col := 0; col < m.cols; col++ {
			if m.CanMove(CellPosition{Row: row, Col: col}, Down) {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// GoString is used by %#v and prints the maze dimensions.
func (m *Maze) GoString() string {
	return fmt.Sprintf("maze.Maze{rows: %d, cols: %d, passages: %d}", m.rows, m.cols, m.Passages())
}

func boolMatrix(rows, cols int) [][]bool {
	if rows <= 0 {
		return [][]bool{}
	}
	matrix := make([][]bool, rows)
	for i := range matrix {
		matrix[i] = make([]bool, max(cols, 0))
	}
	return matrix
}

func cloneMatrix(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for i := range src {
		dst[i] = append([]bool(nil), src[i]...)
		if dst[i] == nil {
			dst[i] = []bool{}
		}
	}
	return dst
}

func hasShape(matrix [][]bool, rows, cols int) bool {
	if len(matrix) != max(rows, 0) {
		return false
	}
	for _, row := range matrix {
		if len(row) != cols {
			return false
		}
	}
	return true
}
