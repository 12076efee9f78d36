package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shadowflap/internal/core"
	"github.com/vovakirdan/shadowflap/internal/registry"
)

// stubGame records the frames it is stepped with and ends when told to.
type stubGame struct {
	frames  []core.InputFrame
	resets  int
	seed    int64
	state   core.GameState
	endWith *core.GameState // returned by the next Step
	events  []core.Event
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seed = cfg.Seed
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.JustPressed(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.endWith != nil {
		g.state = *g.endWith
		g.endWith = nil
	}
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

// recorder is an Observer that keeps what it saw.
type recorder struct {
	events   []core.Event
	finished []core.GameState
	ticks    int
}

func (r *recorder) Event(_ string, ev core.Event)            { r.events = append(r.events, ev) }
func (r *recorder) GameFinished(_ string, st core.GameState) { r.finished = append(r.finished, st) }
func (r *recorder) Tick(_ time.Duration)                     { r.ticks++ }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}
