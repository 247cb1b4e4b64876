// Package snake implements the simulation core of the snake game: the snake's
// body and heading, food placement, collision checks and scoring.
// It has no rendering or input code; drivers call it once per tick.
package snake

// Coord is a cell on the grid. Y is the row, X the column.
type Coord struct {
	Y, X int
}

// Add returns c moved by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Y: c.Y + d.Y, X: c.X + d.X}
}

// NoFood marks food that could not be placed because the board is full.
var NoFood = Coord{Y: -1, X: -1}

// Direction is the snake's heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the heading that would reverse the snake into itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta returns the one-cell offset for a step in direction d.
func (d Direction) Delta() Coord {
	switch d {
	case Up:
		return Coord{Y: -1}
	case Down:
		return Coord{Y: 1}
	case Left:
		return Coord{X: -1}
	default:
		return Coord{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the playfield. Walls sit on rows 0 and Height and on
// columns 0 and Width; everything strictly between them is the interior.
type Grid struct {
	Height int
	Width  int
}

// OnWall reports whether c is a wall cell or lies beyond one.
func (g Grid) OnWall(c Coord) bool {
	return c.Y <= 0 || c.Y >= g.Height || c.X <= 0 || c.X >= g.Width
}

// Interior reports whether c is a cell the snake and food may occupy.
func (g Grid) Interior(c Coord) bool {
	return !g.OnWall(c)
}

// InteriorCells returns the number of interior cells.
func (g Grid) InteriorCells() int {
	if g.Height < 2 || g.Width < 2 {
		return 0
	}
	return (g.Height - 1) * (g.Width - 1)
}
