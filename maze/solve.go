package maze

// Solve returns the path from one cell to another following open passages,
// both endpoints included. In a perfect maze the path is unique.
func (m *Maze) Solve(from, to CellPosition) ([]CellPosition, error) {
	if !m.InBound(from) || !m.InBound(to) {
		return nil, ErrOutOfBounds
	}

	queue := []CellPosition{from}
	cameFrom := map[CellPosition]CellPosition{from: from}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == to {
			return reconstruct(cameFrom, from, to), nil
		}

		for _, d := range []Direction{Up, Right, Down, Left} {
			if !m.CanMove(curr, d) {
				continue
			}
			next := curr.Step(d)
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}

	return nil, ErrNoPath
}

func reconstruct(cameFrom map[CellPosition]CellPosition, from, to CellPosition) []CellPosition {
	var path []CellPosition
	for curr := to; curr != from; curr = cameFrom[curr] {
		path = append(path, curr)
	}
	path = append(path, from)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
