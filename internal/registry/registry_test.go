package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/shadowflap/internal/core"
)

type stubGame struct {
	id     string
	loaded string
	called bool
	fail   bool
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type configurableStub struct {
	stubGame
}

func (g *configurableStub) LoadConfig(path string) error {
	if g.fail {
		return errors.New("bad file")
	}
	g.called = true
	g.loaded = path
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q, expected zz_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateConfigured(t *testing.T) {
	Register("zz_conf", func() Game { return &configurableStub{stubGame{id: "zz_conf"}} })
	Register("zz_conf_bad", func() Game { return &configurableStub{stubGame{id: "zz_conf_bad", fail: true}} })
	Register("zz_plain", func() Game { return &stubGame{id: "zz_plain"} })

	g, err := CreateConfigured("zz_conf", "custom.yaml")
	if err != nil {
		t.Fatalf("CreateConfigured() failed: %v", err)
	}
	if got := g.(*configurableStub).loaded; got != "custom.yaml" {
		t.Errorf("loaded = %q, expected custom.yaml", got)
	}

	if _, err := CreateConfigured("zz_conf_bad", "custom.yaml"); err == nil {
		t.Error("load failure should be returned")
	}
	if _, err := CreateConfigured("zz_plain", "custom.yaml"); err == nil {
		t.Error("non-configurable game should reject a config path")
	}
	if _, err := CreateConfigured("zz_plain", ""); err != nil {
		t.Errorf("empty path should not require Configurable: %v", err)
	}

	g, err = CreateConfigured("zz_conf", "")
	if err != nil {
		t.Fatalf("CreateConfigured() with empty path failed: %v", err)
	}
	if !g.(*configurableStub).called {
		t.Error("configurable games should search their defaults on an empty path")
	}
}
