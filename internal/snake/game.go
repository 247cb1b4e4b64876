package snake

import (
	"errors"
	"fmt"
)

// Defaults for the classic board.
const (
	DefaultInitialLength = 7
	DefaultFoodTimeout   = 100 // Ticks before uneaten food moves

	MinGridHeight = 4
	MinGridWidth  = 16
)

var (
	ErrGridTooSmall  = errors.New("snake: grid too small")
	ErrNilRand       = errors.New("snake: nil random source")
	ErrInvalidLength = errors.New("snake: invalid initial length")
)

// Config holds the construction parameters of a Game.
type Config struct {
	Height            int
	Width             int
	InitialLength     int
	FoodTimeout       int
	PlacementAttempts int
}

// DefaultConfig returns the classic rules for a grid of the given size.
func DefaultConfig(height, width int) Config {
	return Config{
		Height:            height,
		Width:             width,
		InitialLength:     DefaultInitialLength,
		FoodTimeout:       DefaultFoodTimeout,
		PlacementAttempts: DefaultPlacementAttempts,
	}
}

// Validate checks that a snake of the configured length and at least one
// food cell fit inside the grid. A zero length means DefaultInitialLength.
func (c Config) Validate() error {
	if c.Height < MinGridHeight || c.Width < MinGridWidth {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, c.Height, c.Width, MinGridHeight, MinGridWidth)
	}
	length := c.InitialLength
	if length == 0 {
		length = DefaultInitialLength
	}
	if length < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	// Tail extends left from the center column and must stay off the wall.
	grid := Grid{Height: c.Height, Width: c.Width}
	if c.Width/2-(length-1) < 1 || length >= grid.InteriorCells() {
		return fmt.Errorf("%w: %d does not fit a %dx%d grid",
			ErrInvalidLength, length, c.Height, c.Width)
	}
	return nil
}

// FoodEvent reports what HandleFood did.
type FoodEvent int

const (
	FoodIdle FoodEvent = iota
	FoodRespawned
	FoodEaten
)

func (e FoodEvent) String() string {
	switch e {
	case FoodRespawned:
		return "respawned"
	case FoodEaten:
		return "eaten"
	default:
		return "idle"
	}
}

// TickResult is the outcome of one Tick.
type TickResult struct {
	Food     FoodEvent
	Next     Coord // Cell the head tried to enter
	Collided bool  // Fatal: the move was not committed
}

// Game owns the snake, the food, the score and the pause flag.
type Game struct {
	cfg  Config
	grid Grid
	rng  Rand

	snake       *Snake
	food        Food
	score       int
	foodCounter int
	paused      bool
}

// New creates a game on a height x width grid with the default rules.
func New(height, width int, rng Rand) (*Game, error) {
	return NewWithConfig(DefaultConfig(height, width), rng)
}

// NewWithConfig creates a game from cfg. Zero rule fields take defaults.
func NewWithConfig(cfg Config, rng Rand) (*Game, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if cfg.InitialLength == 0 {
		cfg.InitialLength = DefaultInitialLength
	}
	if cfg.FoodTimeout <= 0 {
		cfg.FoodTimeout = DefaultFoodTimeout
	}
	if cfg.PlacementAttempts <= 0 {
		cfg.PlacementAttempts = DefaultPlacementAttempts
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:  cfg,
		grid: Grid{Height: cfg.Height, Width: cfg.Width},
		rng:  rng,
	}
	g.Restart()
	return g, nil
}

// Restart puts the game back into its startup state.
func (g *Game) Restart() {
	head := Coord{Y: g.grid.Height / 2, X: g.grid.Width / 2}
	g.snake = newSnake(head, g.cfg.InitialLength, Right)
	g.food = Food{}
	g.food.Place(g.snake, g.grid, g.rng, g.cfg.PlacementAttempts)
	g.score = 0
	g.foodCounter = 0
	g.paused = false
}

// NextStep returns the cell the head would enter on the next move.
func (g *Game) NextStep() Coord {
	return g.snake.Head().Add(g.snake.Direction().Delta())
}

// AboutToCollide reports whether moving the head onto c would be fatal:
// c is part of the body or lies on a wall.
func (g *Game) AboutToCollide(c Coord) bool {
	return g.snake.Contains(c) || g.grid.OnWall(c)
}

// HandleFood advances the food timeout and lets the snake eat.
// It runs once per tick, paused or not.
func (g *Game) HandleFood() FoodEvent {
	event := FoodIdle

	g.foodCounter++
	if g.foodCounter >= g.cfg.FoodTimeout {
		g.relocateFood()
		event = FoodRespawned
	}

	if g.food.Placed() && g.snake.IsTouchingFood(g.food) {
		g.snake.EatFood(g.food)
		g.score++
		g.relocateFood()
		event = FoodEaten
	}
	return event
}

func (g *Game) relocateFood() {
	g.foodCounter = 0
	g.food.Place(g.snake, g.grid, g.rng, g.cfg.PlacementAttempts)
}

// Tick runs one full step: food handling, then the collision check, then the
// move. On a collision nothing is committed.
func (g *Game) Tick() TickResult {
	res := TickResult{Food: g.HandleFood()}
	res.Next = g.NextStep()
	if g.AboutToCollide(res.Next) {
		res.Collided = true
		return res
	}
	g.snake.Crawl(res.Next, g.paused)
	return res
}

// Snake returns the snake. Callers steer it with SetDirection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food.
func (g *Game) Food() Food {
	return g.food
}

// Score returns the number of food items eaten since the last restart.
func (g *Game) Score() int {
	return g.score
}

// FoodCounter returns the ticks since food was last placed.
func (g *Game) FoodCounter() int {
	return g.foodCounter
}

// Paused reports whether movement is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused freezes or resumes movement.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// TogglePause flips the pause flag and returns the new value.
func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// Grid returns the playfield geometry.
func (g *Game) Grid() Grid {
	return g.grid
}

// Config returns the rules the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}
