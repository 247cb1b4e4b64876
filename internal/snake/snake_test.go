package snake

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOpposite(t *testing.T) {
	c := qt.New(t)
	c.Assert(Up.Opposite(), qt.Equals, Down)
	c.Assert(Down.Opposite(), qt.Equals, Up)
	c.Assert(Left.Opposite(), qt.Equals, Right)
	c.Assert(Right.Opposite(), qt.Equals, Left)
}

func TestDelta(t *testing.T) {
	c := qt.New(t)
	origin := Coord{Y: 5, X: 5}
	c.Assert(origin.Add(Up.Delta()), qt.Equals, Coord{Y: 4, X: 5})
	c.Assert(origin.Add(Down.Delta()), qt.Equals, Coord{Y: 6, X: 5})
	c.Assert(origin.Add(Left.Delta()), qt.Equals, Coord{Y: 5, X: 4})
	c.Assert(origin.Add(Right.Delta()), qt.Equals, Coord{Y: 5, X: 6})
}

func TestSetDirection(t *testing.T) {
	dirs := []Direction{Up, Down, Left, Right}
	for _, current := range dirs {
		for _, requested := range dirs {
			t.Run(current.String()+"->"+requested.String(), func(t *testing.T) {
				c := qt.New(t)
				s := newSnake(Coord{Y: 10, X: 10}, 3, current)
				s.SetDirection(requested)
				if requested == current.Opposite() {
					c.Assert(s.Direction(), qt.Equals, current)
				} else {
					c.Assert(s.Direction(), qt.Equals, requested)
				}
			})
		}
	}
}

func TestNewSnakeLayout(t *testing.T) {
	c := qt.New(t)
	s := newSnake(Coord{Y: 10, X: 40}, 4, Right)
	c.Assert(s.Body(), qt.DeepEquals, []Coord{
		{Y: 10, X: 40},
		{Y: 10, X: 39},
		{Y: 10, X: 38},
		{Y: 10, X: 37},
	})
	c.Assert(s.Head(), qt.Equals, Coord{Y: 10, X: 40})
}

func TestCrawlKeepsLength(t *testing.T) {
	c := qt.New(t)
	s := newSnake(Coord{Y: 10, X: 40}, 7, Right)

	s.Crawl(Coord{Y: 10, X: 41}, false)
	c.Assert(s.Len(), qt.Equals, 7)
	c.Assert(s.Head(), qt.Equals, Coord{Y: 10, X: 41})
	c.Assert(s.Contains(Coord{Y: 10, X: 34}), qt.IsFalse)
	c.Assert(s.Body()[6], qt.Equals, Coord{Y: 10, X: 35})
}

func TestCrawlPausedIsNoop(t *testing.T) {
	c := qt.New(t)
	s := newSnake(Coord{Y: 10, X: 40}, 7, Right)
	before := s.Body()

	s.Crawl(Coord{Y: 10, X: 41}, true)
	c.Assert(s.Body(), qt.DeepEquals, before)
}

func TestEatFoodGrowsByOne(t *testing.T) {
	c := qt.New(t)
	s := newSnake(Coord{Y: 10, X: 40}, 7, Right)
	before := s.Body()

	food := Food{Coord: Coord{Y: 10, X: 41}}
	s.EatFood(food)

	c.Assert(s.Len(), qt.Equals, 8)
	c.Assert(s.Head(), qt.Equals, food.Coord)
	c.Assert(s.Body()[1:], qt.DeepEquals, before)
}

func TestIsTouchingFood(t *testing.T) {
	c := qt.New(t)
	s := newSnake(Coord{Y: 3, X: 3}, 2, Right)
	c.Assert(s.IsTouchingFood(Food{Coord: Coord{Y: 3, X: 3}}), qt.IsTrue)
	// Only the head counts.
	c.Assert(s.IsTouchingFood(Food{Coord: Coord{Y: 3, X: 2}}), qt.IsFalse)
}

func TestBodyIsACopy(t *testing.T) {
	c := qt.New(t)
	s := newSnake(Coord{Y: 3, X: 3}, 2, Right)
	body := s.Body()
	body[0] = Coord{Y: 99, X: 99}
	c.Assert(s.Head(), qt.Equals, Coord{Y: 3, X: 3})
}

func TestZeroSnakeIsSafe(t *testing.T) {
	c := qt.New(t)
	var s Snake

	s.Crawl(Coord{Y: 1, X: 1}, false)
	c.Assert(s.Len(), qt.Equals, 0)
	c.Assert(s.Head(), qt.Equals, NoFood)
	c.Assert(s.IsTouchingFood(Food{Coord: Coord{Y: 1, X: 1}}), qt.IsFalse)

	s.EatFood(Food{Coord: Coord{Y: 2, X: 2}})
	c.Assert(s.Head(), qt.Equals, Coord{Y: 2, X: 2})
	c.Assert(s.Len(), qt.Equals, 1)
}
