// Package snake plugs the snake simulation into the arcade platform: it paces
// simulation ticks against platform frames, buffers turns and draws the board.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	sim "github.com/vovakirdan/tui-snake/internal/snake"
)

// Variant selects how the board is sized.
type Variant string

const (
	// VariantClassic uses the grid size from the config file.
	VariantClassic Variant = "snake"
	// VariantFit sizes the grid to fill the terminal.
	VariantFit Variant = "snake_fit"
)

const (
	hudHeight  = 2 // Score line and separator
	cellWidth  = 2 // Terminal columns per board cell
	defaultFPS = 60
)

// Package-level settings applied on every Reset (like breakout pattern).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the config file to load on Reset. Empty means search
// the default locations.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes game events to l. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a sim.Game to the registry.Game interface.
type Game struct {
	variant Variant

	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	sim        *sim.Game
	fps        int

	tick          uint64 // Platform frames since Reset
	moves         int    // Simulation ticks since the last restart
	moveTicker    int    // Frames since the last simulation tick
	framesPerTick int

	// At most one turn is queued per simulation tick.
	pending    sim.Direction
	hasPending bool
	lastEvent  sim.FoodEvent

	screenW, screenH int
	board            core.Rect // Wall frame on screen

	gameOver bool
	tooSmall bool
}

// New creates a Snake game on the configured grid.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewFit creates a Snake game whose grid fills the terminal.
func NewFit() *Game {
	return &Game{variant: VariantFit}
}

func init() {
	registry.Register(string(VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantFit), func() registry.Game {
		return NewFit()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantFit {
		return "Snake (Fit)"
	}
	return "Snake"
}

// Reset loads the config and starts a new game sized for the screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, source, err := config.LoadSnakeWithSource(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg, source = config.DefaultSnakeConfig(), config.SourceBuiltin
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.fps = rc.TickRate
	if g.fps <= 0 {
		g.fps = defaultFPS
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.gameOver = false
	g.tooSmall = false
	g.sim = nil

	height, width := g.gridSize()
	g.board = core.NewRect((g.screenW-width*cellWidth)/2, hudHeight, width*cellWidth, height+1)
	if !g.board.Fits(g.screenW, g.screenH) {
		logger.Debug("screen too small", "screen", fmt.Sprintf("%dx%d", g.screenW, g.screenH),
			"need", fmt.Sprintf("%dx%d", g.board.W, g.board.Bottom()))
		g.tooSmall = true
		return
	}

	game, err := sim.NewWithConfig(cfg.GameConfig(height, width), rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		logger.Debug("cannot build board", "height", height, "width", width, "err", err)
		g.tooSmall = true
		return
	}
	g.sim = game

	g.resetPacing()
	logger.Info("game started", "variant", g.variant, "grid", fmt.Sprintf("%dx%d", height, width),
		"config", source, "seed", rc.Seed, "frames_per_tick", g.framesPerTick)
}

// gridSize returns the board height and width for the current variant.
func (g *Game) gridSize() (height, width int) {
	if g.variant == VariantFit {
		return g.screenH - hudHeight - 1, g.screenW / cellWidth
	}
	return g.cfg.Grid.Height, g.cfg.Grid.Width
}

func (g *Game) resetPacing() {
	g.moves = 0
	g.moveTicker = 0
	g.hasPending = false
	g.lastEvent = sim.FoodIdle
	g.framesPerTick = g.pace()
}

// pace returns how many platform frames pass between simulation ticks.
func (g *Game) pace() int {
	interval := g.difficulty.Interval(g.cfg.Timing.TickInterval(), g.cfg.Timing.MinTickInterval(),
		g.sim.Score(), g.moves)
	return config.FramesPerTick(interval, g.fps)
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		paused := g.sim.TogglePause()
		logger.Debug("pause toggled", "paused", paused)
	}

	if d, ok := directionFor(input.Last); ok {
		g.pending = d
		g.hasPending = true
	}

	g.moveTicker++
	if g.moveTicker < g.framesPerTick {
		return core.StepResult{State: g.State()}
	}
	g.moveTicker = 0

	if g.hasPending {
		g.sim.Snake().SetDirection(g.pending)
		g.hasPending = false
	}

	res := g.sim.Tick()
	g.moves++
	g.lastEvent = res.Food

	switch res.Food {
	case sim.FoodEaten:
		logger.Debug("food eaten", "score", g.sim.Score(), "length", g.sim.Snake().Len())
	case sim.FoodRespawned:
		logger.Debug("food moved", "food", g.sim.Food().Coord)
	}
	if res.Food != sim.FoodIdle && !g.sim.Food().Placed() {
		logger.Warn("board full, no cell left for food", "length", g.sim.Snake().Len())
	}
	if g.difficulty.IsEnabled() {
		g.framesPerTick = g.pace()
	}

	if res.Collided {
		g.gameOver = true
		logger.Info("game over", "score", g.sim.Score(), "length", g.sim.Snake().Len(),
			"at", res.Next, "moves", g.moves)
	}

	return core.StepResult{
		State: g.State(),
		Moved: !res.Collided && !g.sim.Paused(),
	}
}

// restart puts the board back into its startup state. The random source
// carries on, so the next food differs from the first game's.
func (g *Game) restart() {
	g.sim.Restart()
	g.gameOver = false
	g.resetPacing()
	logger.Info("game restarted")
}

// directionFor maps a movement action to a snake heading.
func directionFor(a core.Action) (sim.Direction, bool) {
	switch a {
	case core.ActionUp:
		return sim.Up, true
	case core.ActionDown:
		return sim.Down, true
	case core.ActionLeft:
		return sim.Left, true
	case core.ActionRight:
		return sim.Right, true
	}
	return 0, false
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall || g.sim == nil {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", g.board.W, g.board.Bottom()))
		return
	}

	dst.DrawBox(g.board, core.ColorGray)

	if food := g.sim.Food(); food.Placed() {
		g.drawCell(dst, food.Coord, core.ColorRed)
	}

	body := g.sim.Snake().Body()
	for i := len(body) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		g.drawCell(dst, body[i], color)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.sim.Score()))
	case g.sim.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawCell paints one board cell, two terminal columns wide.
func (g *Game) drawCell(dst *core.Screen, c sim.Coord, color core.Color) {
	x := g.board.X + c.X*cellWidth - 1
	y := g.board.Y + c.Y
	if !g.board.Contains(x, y) {
		return
	}
	dst.DrawTextColored(x, y, "██", color)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.sim != nil {
		hud = fmt.Sprintf(" %s — Score: %d  Length: %d", g.Title(), g.sim.Score(), g.sim.Snake().Len())
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect(core.Clamp((dst.Width()-boxW)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-boxH)/2, 0, dst.Height()), boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.tooSmall}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.gameOver,
		Paused:   g.sim.Paused(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.sim == nil {
		return fmt.Sprintf("Tick: %d, too small: %v\n", g.tick, g.tooSmall)
	}
	s := g.sim.Snake()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Moves: %d, Score: %d\n", g.tick, g.moves, g.sim.Score())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", s.Len(), s.Direction())
	fmt.Fprintf(&b, "Head: %v, Food: %v, Food counter: %d\n", s.Head(), g.sim.Food().Coord, g.sim.FoodCounter())
	fmt.Fprintf(&b, "GameOver: %v, Paused: %v, Frames/tick: %d\n", g.gameOver, g.sim.Paused(), g.framesPerTick)
	return b.String()
}
