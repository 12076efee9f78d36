// Package shadowflap implements ShadowFlap, a side-scroller where the player
// flaps through a stream of pipe gates across two levels. The second level
// adds steel pipes with blinking flames and pickups that can be shot.
package shadowflap

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
	"github.com/vovakirdan/shadowflap/internal/registry"
)

// Game implements registry.Game. It owns the session's flyer, health and
// scoreboard, and the level being played.
type Game struct {
	id         string
	title      string
	startLevel int

	cfg     config.ShadowFlapConfig
	rules   []Ruleset
	sprites Sprites
	world   World

	rng        *rand.Rand
	health     *Health
	flyer      *Flyer
	score      Scoreboard
	level      *Level
	levelIndex int
	paused     bool
	tickCount  int
}

// New creates a game starting at the first level with default settings.
func New() *Game {
	return newGame("shadowflap", "ShadowFlap", 0)
}

// NewPractice creates a game that starts directly at the second level.
func NewPractice() *Game {
	return newGame("shadowflap_l2", "ShadowFlap: Level 2", 1)
}

func newGame(id, title string, startLevel int) *Game {
	g := &Game{id: id, title: title, startLevel: startLevel}
	g.apply(config.DefaultShadowFlapConfig())
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Configure replaces the configuration. Takes effect on the next Reset.
func (g *Game) Configure(cfg config.ShadowFlapConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shadowflap: %w", err)
	}
	g.apply(cfg)
	return nil
}

// LoadConfig implements registry.Configurable.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadShadowFlap(path)
	if err != nil {
		return err
	}
	return g.Configure(cfg)
}

func (g *Game) apply(cfg config.ShadowFlapConfig) {
	g.cfg = cfg
	g.rules = RulesetsFromConfig(cfg.Levels)
	g.sprites = SpritesFromConfig(cfg.Sprites)
	g.world = World{W: cfg.World.Width, H: cfg.World.Height}
}

// Reset starts a new session. The seed fully determines the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed)) //#nosec G404 -- gameplay randomness
	g.health = NewHealth(g.cfg.Health.BaseLives)
	g.flyer = NewFlyer(g.cfg.Flyer, g.sprites.Flyer, g.health)
	g.score = Scoreboard{}
	g.paused = false
	g.tickCount = 0

	g.levelIndex = core.Clamp(g.startLevel, 0, len(g.rules)-1)
	for range g.levelIndex {
		g.flyer.LevelUp()
	}
	g.level = NewLevel(g.rules[g.levelIndex], &g.cfg, g.flyer, &g.score, g.rng)
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.level.Phase().Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.JustPressed(core.ActionPause) && g.level.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	events := g.level.Step(in)
	if g.advance() {
		events = append(events, core.EventLevelUp)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// advance moves to the next level once the level-up screen has finished.
// It applies the flyer's level-up at most once per transition.
func (g *Game) advance() bool {
	if !g.level.takeAdvance() {
		return false
	}
	next := g.levelIndex + 1
	if next >= len(g.rules) {
		return false
	}

	g.flyer.Disarm()
	g.flyer.LevelUp()
	g.score.ResetLevel()
	g.levelIndex = next
	g.level = NewLevel(g.rules[next], &g.cfg, g.flyer, &g.score, g.rng)
	return true
}

// Present draws every visible entity onto c, plus the life bar.
// Nothing is presented outside of play.
func (g *Game) Present(c Canvas) {
	if g.level.Phase() != PhasePlaying {
		return
	}

	for _, o := range g.level.Obstacles().All() {
		v := VisualSoftPipe
		if o.Material() == MaterialHard {
			v = VisualHardPipe
		}
		top, bottom := o.Segments()
		tx, ty := top.Center()
		bx, by := bottom.Center()
		c.Present(v, tx, ty, false)
		c.Present(v, bx, by, true)

		if h := o.Hazard(); h != nil {
			for i, b := range h.BoxesAt(o.X, o.GapTop(), o.GapBottom()) {
				x, y := b.Center()
				c.Present(VisualHazard, x, y, i == 1)
			}
		}
	}

	for _, p := range g.level.Projectiles() {
		c.Present(p.Visual(), p.X, p.Y, false)
	}

	c.Present(g.flyer.Visual(), g.flyer.X, g.flyer.Y, false)

	for i := range g.health.Capacity() {
		v := VisualHeartEmpty
		if i < g.health.Lives() {
			v = VisualHeartFull
		}
		c.Present(v, heartX+float64(i)*heartGap, heartY, false)
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	phase := g.level.Phase()
	return core.GameState{
		Score:    g.score.Total(),
		Level:    g.levelIndex,
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Phase returns the phase of the current level.
func (g *Game) Phase() Phase {
	return g.level.Phase()
}

// Register the game variants with the registry
func init() {
	registry.Register("shadowflap", func() registry.Game {
		return New()
	})
	registry.Register("shadowflap_l2", func() registry.Game {
		return NewPractice()
	})
}
