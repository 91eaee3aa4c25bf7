package common

// Direction is one of the four movement keys.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid step for a key press. Left and right run along the
// diagonal of the grid so that on screen they read as horizontal moves.
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{X: 0, Y: -1}
	case DirDown:
		return Coord{X: 0, Y: 1}
	case DirLeft:
		return Coord{X: -1, Y: 1}
	case DirRight:
		return Coord{X: 1, Y: -1}
	default:
		return Coord{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection accepts the names returned by String and the single letters
// U, D, L and R.
func ParseDirection(s string) Direction {
	switch s {
	case "up", "U", "u":
		return DirUp
	case "down", "D", "d":
		return DirDown
	case "left", "L", "l":
		return DirLeft
	case "right", "R", "r":
		return DirRight
	default:
		return DirNone
	}
}

// Cardinals are the four axis-aligned unit steps.
var Cardinals = [4]Coord{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
