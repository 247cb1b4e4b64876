package snake

import sim "github.com/vovakirdan/tui-snake/internal/snake"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Moves         int
	Score         int
	SnakeLen      int
	Head          sim.Coord
	Dir           sim.Direction
	Food          sim.Coord
	FoodCounter   int
	FramesPerTick int
	LastEvent     sim.FoodEvent
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{Tick: g.tick, Food: sim.NoFood, State: StatePausedSmall}
	}

	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.sim.Paused():
		state = StatePaused
	}

	s := g.sim.Snake()
	return Snapshot{
		Tick:          g.tick,
		Moves:         g.moves,
		Score:         g.sim.Score(),
		SnakeLen:      s.Len(),
		Head:          s.Head(),
		Dir:           s.Direction(),
		Food:          g.sim.Food().Coord,
		FoodCounter:   g.sim.FoodCounter(),
		FramesPerTick: g.framesPerTick,
		LastEvent:     g.lastEvent,
		State:         state,
	}
}
