package shadowflap

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
)

func testConfig() *config.ShadowFlapConfig {
	cfg := config.DefaultShadowFlapConfig()
	return &cfg
}

func testSprites() Sprites {
	return SpritesFromConfig(testConfig().Sprites)
}

func testParts() GateParts {
	cfg := testConfig()
	s := testSprites()
	return GateParts{GapHeight: cfg.Obstacles.GapHeight, Pipe: s.Pipe, Hazard: s.Hazard, Cycle: cfg.Hazards}
}

func testFlyer() *Flyer {
	cfg := testConfig()
	return NewFlyer(cfg.Flyer, testSprites().Flyer, NewHealth(cfg.Health.BaseLives))
}

// shotProjectile returns a projectile in the Shot state at (x, y).
func shotProjectile(t *testing.T, kind ProjectileKind, x, y float64) *Projectile {
	t.Helper()
	s := testSprites()
	sprite := s.Rock
	if kind == KindBomb {
		sprite = s.Bomb
	}
	p := NewProjectile(x, y, kind, sprite, 25, 5)
	f := testFlyer()
	if !f.Equip(p) || !f.Shoot() {
		t.Fatal("failed to launch projectile")
	}
	p.X, p.Y = x, y
	return p
}

// newTestLevel returns a level on its start screen for the given level index.
func newTestLevel(t *testing.T, index int) (*Level, *Flyer, *Scoreboard) {
	t.Helper()
	cfg := testConfig()
	rules := RulesetsFromConfig(cfg.Levels)
	f := NewFlyer(cfg.Flyer, SpritesFromConfig(cfg.Sprites).Flyer, NewHealth(cfg.Health.BaseLives))
	score := &Scoreboard{}
	return NewLevel(rules[index], cfg, f, score, rand.New(rand.NewSource(1))), f, score
}

// startLevel moves a level from Start to Playing without running a frame.
func startLevel(t *testing.T, l *Level) {
	t.Helper()
	in := core.NewInputFrame()
	in.Press(core.ActionAscend)
	if ev := l.Step(in); len(ev) != 1 || ev[0] != core.EventStarted {
		t.Fatalf("expected started event, got %v", ev)
	}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

func hasEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
