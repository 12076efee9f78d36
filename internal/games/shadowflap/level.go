package shadowflap

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/vovakirdan/shadowflap/internal/config"
	"github.com/vovakirdan/shadowflap/internal/core"
)

// Phase is the state of a level.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseLevelingUp
	PhaseLost
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseLevelingUp:
		return "leveling_up"
	case PhaseLost:
		return "lost"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session ends in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseLost || p == PhaseWon
}

// Ruleset is the rule variant of one level.
type Ruleset struct {
	Index          int
	Name           string
	TargetScore    int
	Materials      []Material
	GapPlacement   string
	Projectiles    bool
	ShotKillScores bool
	Final          bool
}

// RulesetsFromConfig builds one ruleset per configured level. The last
// level is final. Unknown material names are skipped.
func RulesetsFromConfig(levels []config.LevelConfig) []Ruleset {
	return lo.Map(levels, func(lc config.LevelConfig, i int) Ruleset {
		materials := lo.FilterMap(lc.Materials, func(name string, _ int) (Material, bool) {
			return ParseMaterial(name)
		})
		return Ruleset{
			Index:          i,
			Name:           lc.Name,
			TargetScore:    lc.TargetScore,
			Materials:      materials,
			GapPlacement:   lc.GapPlacement,
			Projectiles:    lc.Projectiles,
			ShotKillScores: lc.ShotKillScores,
			Final:          i == len(levels)-1,
		}
	})
}

// Level runs one ruleset. It owns the obstacles, projectiles, spawner and
// timescale, and borrows the session's flyer and scoreboard.
type Level struct {
	rules       Ruleset
	phase       Phase
	cfg         *config.ShadowFlapConfig
	world       World
	flyer       *Flyer
	score       *Scoreboard
	obstacles   *ObstacleQueue
	projectiles []*Projectile
	spawner     *Spawner
	timescale   *Timescale
	params      WorldParameters
	retimers    []Retimer

	levelUpFrames int
	advanceReady  bool
	advanced      bool
}

// NewLevel prepares a level on its start screen.
func NewLevel(rules Ruleset, cfg *config.ShadowFlapConfig, flyer *Flyer, score *Scoreboard, rng *rand.Rand) *Level {
	l := &Level{
		rules:     rules,
		phase:     PhaseStart,
		cfg:       cfg,
		world:     World{W: cfg.World.Width, H: cfg.World.Height},
		flyer:     flyer,
		score:     score,
		obstacles: &ObstacleQueue{},
		timescale: NewTimescale(cfg.Timescale),
	}
	l.params = DeriveParameters(l.timescale.Effect(), cfg.Obstacles)
	l.spawner = NewSpawner(rules, cfg, l.params, rng)
	l.retimers = []Retimer{l.spawner}
	return l
}

func (l *Level) Rules() Ruleset             { return l.rules }
func (l *Level) Phase() Phase               { return l.phase }
func (l *Level) Timescale() *Timescale      { return l.timescale }
func (l *Level) Params() WorldParameters    { return l.params }
func (l *Level) Obstacles() *ObstacleQueue  { return l.obstacles }
func (l *Level) Projectiles() []*Projectile { return l.projectiles }
func (l *Level) Spawner() *Spawner          { return l.spawner }

// Step advances the level by one frame and returns what happened.
func (l *Level) Step(in core.InputFrame) []core.Event {
	switch l.phase {
	case PhaseStart:
		if in.JustPressed(core.ActionAscend) {
			l.phase = PhasePlaying
			return []core.Event{core.EventStarted}
		}
		return nil
	case PhasePlaying:
		return l.play(in)
	case PhaseLevelingUp:
		l.levelUpFrames++
		if l.levelUpFrames >= l.cfg.LevelUpFrames && !l.advanced {
			l.advanceReady = true
		}
		return nil
	default:
		return nil
	}
}

// play runs one playing frame: input, timescale, spawn, movement,
// collisions, scoring, cleanup, then the state evaluation.
func (l *Level) play(in core.InputFrame) []core.Event {
	var events []core.Event

	if in.JustPressed(core.ActionSpeedUp) && l.timescale.Increase() {
		l.retime()
	}
	if in.JustPressed(core.ActionSpeedDown) && l.timescale.Decrease() {
		l.retime()
	}
	if in.Has(core.ActionAscend) {
		l.flyer.Flap()
	}
	if l.rules.Projectiles && in.JustPressed(core.ActionShoot) {
		l.flyer.Shoot()
	}

	batch := l.spawner.Tick()
	if batch.Obstacle != nil {
		l.obstacles.Push(batch.Obstacle)
	}
	if batch.Projectile != nil {
		l.projectiles = append(l.projectiles, batch.Projectile)
	}

	for _, m := range l.movables() {
		m.Move(l.params)
	}
	l.flyer.RefreshBox()

	report := ResolveCollisions(l.flyer, l.obstacles, l.projectiles, l.world)
	if report.LivesLost > 0 {
		events = append(events, core.EventLifeLost)
	}

	points := l.obstacles.AdvancePassed(l.flyer.X)
	if l.rules.ShotKillScores {
		points += report.ShotKills
	}
	l.score.Add(points)

	l.obstacles.Compact()
	l.projectiles = lo.Reject(l.projectiles, func(p *Projectile, _ int) bool {
		return p.Expired(l.world)
	})

	switch {
	case report.Exhausted || l.flyer.Health().Exhausted():
		l.phase = PhaseLost
		events = append(events, core.EventLost)
	case l.score.Level() >= l.rules.TargetScore && l.rules.Final:
		l.phase = PhaseWon
		events = append(events, core.EventWon)
	case l.score.Level() >= l.rules.TargetScore:
		l.phase = PhaseLevelingUp
	}
	return events
}

// movables lists every entity integrated this frame. The flyer goes first
// so an equipped projectile follows its new position.
func (l *Level) movables() []Movable {
	ms := make([]Movable, 0, 1+l.obstacles.Len()+len(l.projectiles))
	ms = append(ms, l.flyer)
	for _, g := range l.obstacles.All() {
		ms = append(ms, g)
	}
	for _, p := range l.projectiles {
		ms = append(ms, p)
	}
	return ms
}

// retime re-derives world parameters and pushes them to every cache holder.
func (l *Level) retime() {
	l.params = DeriveParameters(l.timescale.Effect(), l.cfg.Obstacles)
	for _, r := range l.retimers {
		r.Retime(l.params)
	}
}

// ReadyToAdvance reports whether the level-up screen has run its course.
func (l *Level) ReadyToAdvance() bool {
	return l.advanceReady && !l.advanced
}

// takeAdvance consumes the level-up transition. It returns true exactly once.
func (l *Level) takeAdvance() bool {
	if !l.ReadyToAdvance() {
		return false
	}
	l.advanced = true
	return true
}
