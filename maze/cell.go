package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four ways out of a cell.
type Direction int

// Directions in the order they are listed before shuffling.
const (
	Up Direction = iota
	Right
	Down
	Left
)

var (
	// Directions maps each direction to its row/col offset.
	Directions = map[Direction]CellPosition{
		Up:    {Row: -1, Col: 0},
		Right: {Row: 0, Col: 1},
		Down:  {Row: 1, Col: 0},
		Left:  {Row: 0, Col: -1},
	}

	directionNames = map[Direction]string{
		Up:    "up",
		Right: "right",
		Down:  "down",
		Left:  "left",
	}

	directionAliases = map[string]Direction{
		"up":    Up,
		"north": Up,
		"right": Right,
		"east":  Right,
		"down":  Down,
		"south": Down,
		"left":  Left,
		"west":  Left,
	}
)

// ParseDirection converts a direction name into a Direction.
// Matching is case-insensitive and accepts compass names as aliases.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
	return d, nil
}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `bson:"row" json:"row"` // Row index of the cell
	Col int `bson:"col" json:"col"` // Column index of the cell
}

// Step returns the position one cell away in direction d.
// The result may be outside the grid.
func (cp CellPosition) Step(d Direction) CellPosition {
	delta := Directions[d]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", cp.Row, cp.Col)
}

// Move represents a movement from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Direction of the move
}
