package common

import "fmt"

// Coord is a cell on the sparse world grid. X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
