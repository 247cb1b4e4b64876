package snake

import (
	"math/rand"
	"testing"

	qt "github.com/frankban/quicktest"
)

func newTestGame(c *qt.C, height, width int, seed int64) *Game {
	g, err := New(height, width, rand.New(rand.NewSource(seed)))
	c.Assert(err, qt.IsNil)
	return g
}

func TestNewGameInitialState(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)

	s := g.Snake()
	c.Assert(s.Len(), qt.Equals, 7)
	c.Assert(s.Head(), qt.Equals, Coord{Y: 10, X: 40})
	c.Assert(s.Body()[6], qt.Equals, Coord{Y: 10, X: 34})
	c.Assert(s.Direction(), qt.Equals, Right)
	c.Assert(g.Score(), qt.Equals, 0)
	c.Assert(g.FoodCounter(), qt.Equals, 0)
	c.Assert(g.Paused(), qt.IsFalse)
	c.Assert(g.Food().Placed(), qt.IsTrue)
	c.Assert(s.Contains(g.Food().Coord), qt.IsFalse)
}

func TestNewRejectsBadConfig(t *testing.T) {
	c := qt.New(t)
	rng := rand.New(rand.NewSource(1))

	_, err := New(3, 80, rng)
	c.Assert(err, qt.ErrorIs, ErrGridTooSmall)

	_, err = New(20, 10, rng)
	c.Assert(err, qt.ErrorIs, ErrGridTooSmall)

	_, err = New(20, 80, nil)
	c.Assert(err, qt.ErrorIs, ErrNilRand)

	cfg := DefaultConfig(20, 80)
	cfg.InitialLength = 50
	_, err = NewWithConfig(cfg, rng)
	c.Assert(err, qt.ErrorIs, ErrInvalidLength)

	cfg.InitialLength = -1
	_, err = NewWithConfig(cfg, rng)
	c.Assert(err, qt.ErrorIs, ErrInvalidLength)
}

func TestNextStepIsPure(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)

	c.Assert(g.NextStep(), qt.Equals, Coord{Y: 10, X: 41})
	c.Assert(g.NextStep(), qt.Equals, Coord{Y: 10, X: 41})
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 10, X: 40})

	g.Snake().SetDirection(Up)
	c.Assert(g.NextStep(), qt.Equals, Coord{Y: 9, X: 40})
}

func TestAboutToCollide(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)

	tests := []struct {
		name     string
		cell     Coord
		expected bool
	}{
		{"head", Coord{Y: 10, X: 40}, true},
		{"tail", Coord{Y: 10, X: 34}, true},
		{"mid body", Coord{Y: 10, X: 37}, true},
		{"top wall", Coord{Y: 0, X: 5}, true},
		{"bottom wall", Coord{Y: 20, X: 5}, true},
		{"left wall", Coord{Y: 5, X: 0}, true},
		{"right wall", Coord{Y: 5, X: 80}, true},
		{"beyond wall", Coord{Y: -1, X: 5}, true},
		{"free cell", Coord{Y: 10, X: 41}, false},
		{"top-left interior", Coord{Y: 1, X: 1}, false},
		{"bottom-right interior", Coord{Y: 19, X: 79}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			qt.New(t).Assert(g.AboutToCollide(tc.cell), qt.Equals, tc.expected)
		})
	}
}

func TestEatScenario(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 7)

	// Keep the food out of the way for the first move.
	g.food = Food{Coord: Coord{Y: 1, X: 1}}
	g.Snake().Crawl(g.NextStep(), g.Paused())
	c.Assert(g.Snake().Len(), qt.Equals, 7)
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 10, X: 41})

	g.food = Food{Coord: Coord{Y: 10, X: 41}}
	g.foodCounter = 42
	event := g.HandleFood()

	c.Assert(event, qt.Equals, FoodEaten)
	c.Assert(g.Snake().Len(), qt.Equals, 8)
	c.Assert(g.Score(), qt.Equals, 1)
	c.Assert(g.FoodCounter(), qt.Equals, 0)
	c.Assert(g.Food().Placed(), qt.IsTrue)
	for _, cell := range g.Snake().Body() {
		c.Assert(g.Food().Coord, qt.Not(qt.Equals), cell)
	}
}

func TestFoodTimeout(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 3)

	for i := 1; i < DefaultFoodTimeout; i++ {
		c.Assert(g.HandleFood(), qt.Equals, FoodIdle)
		c.Assert(g.FoodCounter(), qt.Equals, i)
	}
	c.Assert(g.HandleFood(), qt.Equals, FoodRespawned)
	c.Assert(g.FoodCounter(), qt.Equals, 0)
	c.Assert(g.Snake().Contains(g.Food().Coord), qt.IsFalse)
	c.Assert(g.Score(), qt.Equals, 0)
}

func TestHeadReachesColumnZero(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)
	g.snake = newSnake(Coord{Y: 5, X: 1}, 3, Left)
	g.food = Food{Coord: Coord{Y: 15, X: 15}}

	next := g.NextStep()
	c.Assert(next, qt.Equals, Coord{Y: 5, X: 0})
	c.Assert(g.AboutToCollide(next), qt.IsTrue)

	res := g.Tick()
	c.Assert(res.Collided, qt.IsTrue)
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 5, X: 1})
}

func TestSelfCollision(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)
	// Head at (5,5) heading Right runs into (5,6).
	g.snake = &Snake{
		body: []Coord{
			{Y: 5, X: 5}, {Y: 6, X: 5}, {Y: 6, X: 6}, {Y: 5, X: 6}, {Y: 4, X: 6},
		},
		direction: Right,
	}
	g.food = Food{Coord: Coord{Y: 15, X: 15}}

	res := g.Tick()
	c.Assert(res.Collided, qt.IsTrue)
	c.Assert(res.Next, qt.Equals, Coord{Y: 5, X: 6})
	c.Assert(g.Snake().Len(), qt.Equals, 5)
}

func TestTickMovesAndPauseFreezes(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)
	g.food = Food{Coord: Coord{Y: 1, X: 1}}

	res := g.Tick()
	c.Assert(res.Collided, qt.IsFalse)
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 10, X: 41})

	c.Assert(g.TogglePause(), qt.IsTrue)
	res = g.Tick()
	c.Assert(res.Collided, qt.IsFalse)
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 10, X: 41})
	// Food timer keeps running while paused.
	c.Assert(g.FoodCounter(), qt.Equals, 2)

	g.SetPaused(false)
	g.Tick()
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 10, X: 42})
}

func TestOppositeRequestKeepsHeading(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)

	g.Snake().SetDirection(Left)
	c.Assert(g.Snake().Direction(), qt.Equals, Right)
	c.Assert(g.NextStep(), qt.Equals, Coord{Y: 10, X: 41})
}

func TestRestartMatchesFreshGame(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 11)
	g.food = Food{Coord: Coord{Y: 1, X: 1}}

	g.Snake().SetDirection(Up)
	g.Tick()
	g.food = Food{Coord: g.Snake().Head()}
	g.HandleFood()
	g.SetPaused(true)
	c.Assert(g.Score(), qt.Equals, 1)

	g.Restart()
	fresh := newTestGame(c, 20, 80, 99)

	c.Assert(g.Snake().Body(), qt.DeepEquals, fresh.Snake().Body())
	c.Assert(g.Snake().Direction(), qt.Equals, fresh.Snake().Direction())
	c.Assert(g.Score(), qt.Equals, fresh.Score())
	c.Assert(g.FoodCounter(), qt.Equals, fresh.FoodCounter())
	c.Assert(g.Paused(), qt.Equals, fresh.Paused())
	c.Assert(g.Config(), qt.Equals, fresh.Config())
	c.Assert(g.Snake().Contains(g.Food().Coord), qt.IsFalse)
}

func TestDeterministicWithSameSeed(t *testing.T) {
	c := qt.New(t)
	g1 := newTestGame(c, 20, 80, 12345)
	g2 := newTestGame(c, 20, 80, 12345)

	turns := map[int]Direction{5: Down, 9: Left, 20: Up, 30: Right}
	for i := range 60 {
		if d, ok := turns[i]; ok {
			g1.Snake().SetDirection(d)
			g2.Snake().SetDirection(d)
		}
		r1, r2 := g1.Tick(), g2.Tick()
		c.Assert(r1, qt.Equals, r2)
		if r1.Collided {
			break
		}
	}
	c.Assert(g1.Snake().Body(), qt.DeepEquals, g2.Snake().Body())
	c.Assert(g1.Food(), qt.Equals, g2.Food())
	c.Assert(g1.Score(), qt.Equals, g2.Score())
}

func TestPausedSnakeStillCollides(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 1)
	g.snake = newSnake(Coord{Y: 5, X: 79}, 3, Right)
	g.food = Food{Coord: Coord{Y: 15, X: 15}}
	g.SetPaused(true)

	res := g.Tick()
	c.Assert(res.Collided, qt.IsTrue)
	c.Assert(res.Next, qt.Equals, Coord{Y: 5, X: 80})
	c.Assert(g.Snake().Head(), qt.Equals, Coord{Y: 5, X: 79})
}

func TestTimeoutBeforeEating(t *testing.T) {
	c := qt.New(t)
	g := newTestGame(c, 20, 80, 4)
	g.food = Food{Coord: g.Snake().Head()}
	g.foodCounter = g.Config().FoodTimeout - 1

	// The food moves off the head before the eat check sees it.
	c.Assert(g.HandleFood(), qt.Equals, FoodRespawned)
	c.Assert(g.Score(), qt.Equals, 0)
	c.Assert(g.Snake().Len(), qt.Equals, 7)
	c.Assert(g.FoodCounter(), qt.Equals, 0)
	c.Assert(g.Snake().Contains(g.Food().Coord), qt.IsFalse)
}

func TestValidateZeroLengthMeansDefault(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig(20, 80)
	cfg.InitialLength = 0
	c.Assert(cfg.Validate(), qt.IsNil)

	g, err := NewWithConfig(cfg, rand.New(rand.NewSource(1)))
	c.Assert(err, qt.IsNil)
	c.Assert(g.Snake().Len(), qt.Equals, DefaultInitialLength)
}
