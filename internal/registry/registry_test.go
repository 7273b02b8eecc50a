package registry

import (
	"strings"
	"testing"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, g.id) }
func (g *stubGame) State() core.GameState   { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}
	if got := Title("zz_stub"); got != "ZZ_STUB" {
		t.Errorf("Title = %q, want ZZ_STUB", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title(missing) = %q", got)
	}

	a, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, _ := Create("zz_stub")
	a.Step(core.NewInputFrame())
	if b.State().Score != 0 {
		t.Error("Create must return independent instances")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
		}
	}
	if !found {
		t.Error("List does not include zz_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
