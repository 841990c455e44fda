package maze

// Random is a source of uniform random integers in [0, n).
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// frame is one level of the depth-first traversal.
type frame struct {
	pos  CellPosition
	dirs [4]Direction
	next int // index into dirs of the next direction to try
}

// Generate creates a rows x cols perfect maze using a randomized
// depth-first traversal that starts from a uniformly random cell.
//
// The traversal keeps its own stack instead of recursing, but visits cells
// and consumes random draws in the same order as the recursive backtracker:
// two draws for the start cell (row, then column), then four shuffle draws
// each time a cell is entered.
func Generate(rows, cols int, rnd Random) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := newMaze(rows, cols)
	visited := boolMatrix(rows, cols)

	start := CellPosition{Row: rnd.Intn(rows), Col: rnd.Intn(cols)}
	visited[start.Row][start.Col] = true
	stack := []*frame{{pos: start, dirs: shuffledDirections(rnd)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		nbr := top.pos.Step(d)
		if !m.InBound(nbr) || visited[nbr.Row][nbr.Col] {
			continue
		}

		m.open(top.pos, d)
		visited[nbr.Row][nbr.Col] = true
		stack = append(stack, &frame{pos: nbr, dirs: shuffledDirections(rnd)})
	}

	return m, nil
}

// shuffledDirections returns [Up, Right, Down, Left] in random order.
// It walks a counter down from 4, drawing the swap index from [0, counter).
func shuffledDirections(rnd Random) [4]Direction {
	dirs := [4]Direction{Up, Right, Down, Left}
	for counter := len(dirs); counter > 0; counter-- {
		index := rnd.Intn(counter)
		dirs[counter-1], dirs[index] = dirs[index], dirs[counter-1]
	}
	return dirs
}
