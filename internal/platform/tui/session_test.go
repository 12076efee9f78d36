package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sessionSend(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), SessionOptions{Player: "ana"})

	m, cmd := sessionSend(t, m, keyOf(tea.KeyEnter))
	if m.screen != screenGame {
		t.Fatalf("enter should start the selected game, screen = %v", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}
	if m.quitting {
		t.Error("selecting a game must not end the session")
	}

	// Esc while playing is ignored.
	m, _ = sessionSend(t, m, keyOf(tea.KeyEsc))
	if m.screen != screenGame {
		t.Error("esc while playing should keep the game")
	}

	m, _ = sessionSend(t, m, runeKey('p'), tick(), keyOf(tea.KeyEsc))
	if m.screen != screenMenu {
		t.Errorf("esc while paused should return to the menu, screen = %v", m.screen)
	}
	if m.quitting {
		t.Error("returning to the menu must not end the session")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), SessionOptions{})

	m, _ = sessionSend(t, m, keyOf(tea.KeyTab))
	if m.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	m, _ = sessionSend(t, m, keyOf(tea.KeyEsc))
	if m.screen != screenMenu || m.quitting {
		t.Error("esc on the scoreboard should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), SessionOptions{})

	m, cmd := sessionSend(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q on the menu should end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestSessionConfigFailureStaysOnMenu(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), SessionOptions{ConfigPath: "/does/not/exist.yaml"})

	m, _ = sessionSend(t, m, keyOf(tea.KeyEnter))
	if m.screen != screenMenu {
		t.Errorf("a game that cannot be configured should leave the menu up, screen = %v", m.screen)
	}
	if m.err == nil {
		t.Error("the failure should be kept for display")
	}
}

func TestScoreboardCycleWraps(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	m.games = append(m.games, m.games[0], m.games[0])

	m.cycle(-1)
	if m.gameCursor != 2 {
		t.Errorf("cycling back from the first start should wrap, cursor = %d", m.gameCursor)
	}
	m.cycle(1)
	if m.gameCursor != 0 {
		t.Errorf("cycling forward from the last start should wrap, cursor = %d", m.gameCursor)
	}
}
