package snake

// Rand is the random source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// DefaultPlacementAttempts bounds the rejection-sampling loop in Food.Place.
const DefaultPlacementAttempts = 1000

// Food is the single target cell.
type Food struct {
	Coord Coord
}

// Placed reports whether the food is on the board.
func (f Food) Placed() bool {
	return f.Coord != NoFood
}

// Place moves the food to a random interior cell not covered by s.
// Candidates are drawn uniformly and rejected while they hit the snake, up to
// attempts draws; after that a free cell is picked from an explicit scan.
// It returns false, leaving the food at NoFood, only when the interior is full.
func (f *Food) Place(s *Snake, g Grid, rng Rand, attempts int) bool {
	rows, cols := g.Height-1, g.Width-1
	if rows <= 0 || cols <= 0 {
		f.Coord = NoFood
		return false
	}

	for range attempts {
		c := Coord{Y: 1 + rng.Intn(rows), X: 1 + rng.Intn(cols)}
		if !s.Contains(c) {
			f.Coord = c
			return true
		}
	}

	free := freeCells(s, g)
	if len(free) == 0 {
		f.Coord = NoFood
		return false
	}
	f.Coord = free[rng.Intn(len(free))]
	return true
}

// freeCells lists interior cells not occupied by the snake, row by row.
func freeCells(s *Snake, g Grid) []Coord {
	occupied := make(map[Coord]struct{}, s.Len())
	for _, c := range s.body {
		occupied[c] = struct{}{}
	}

	var free []Coord
	for y := 1; y < g.Height; y++ {
		for x := 1; x < g.Width; x++ {
			c := Coord{Y: y, X: x}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
