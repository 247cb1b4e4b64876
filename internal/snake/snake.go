package snake

// Snake is an ordered body of cells, head first, plus a heading.
// The body only changes through Crawl and EatFood, so its length never shrinks.
// Snakes are built by Game; the zero value has no body, and its Head is NoFood.
type Snake struct {
	body      []Coord // Head at index 0
	direction Direction
}

// newSnake lays out length cells ending at head, extending opposite to dir.
func newSnake(head Coord, length int, dir Direction) *Snake {
	s := &Snake{
		body:      make([]Coord, 0, length+8),
		direction: dir,
	}
	back := dir.Opposite().Delta()
	c := head
	for range length {
		s.body = append(s.body, c)
		c = c.Add(back)
	}
	return s
}

// SetDirection changes the heading unless d would reverse the snake.
// A reversal request is silently dropped.
func (s *Snake) SetDirection(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Crawl moves the snake one cell onto next. Length is unchanged.
// When paused the body stays frozen.
func (s *Snake) Crawl(next Coord, paused bool) {
	if paused || len(s.body) == 0 {
		return
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
}

// EatFood grows the snake by prepending the food cell and keeping the tail.
func (s *Snake) EatFood(f Food) {
	s.body = append(s.body, Coord{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = f.Coord
}

// IsTouchingFood reports whether the head is on the food cell.
func (s *Snake) IsTouchingFood(f Food) bool {
	return len(s.body) > 0 && s.body[0] == f.Coord
}

// Head returns the most recently entered cell.
func (s *Snake) Head() Coord {
	if len(s.body) == 0 {
		return NoFood
	}
	return s.body[0]
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Len returns the number of body cells, head included.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Coord {
	out := make([]Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Contains reports whether any body cell equals c.
func (s *Snake) Contains(c Coord) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}
