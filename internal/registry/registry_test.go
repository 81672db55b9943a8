package registry

import (
	"testing"

	"github.com/vovakirdan/tui-puyo/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub"}, func() Game { return &stubGame{id: "zz-stub"} })
	Register(GameInfo{ID: "aa-stub", Title: "Stub A"}, func() Game { return &stubGame{id: "aa-stub"} })

	info, ok := Lookup("zz-stub")
	if !ok {
		t.Fatal("zz-stub not registered")
	}
	if info.Title != "zz-stub" {
		t.Errorf("Empty title = %q, expected the id", info.Title)
	}

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("Created game id = %q, expected aa-stub", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of an unknown id should fail")
	}
	if Exists("missing") || !Exists("aa-stub") {
		t.Error("Exists reports wrong membership")
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty id", ""},
		{"duplicate id", "dup-stub"},
	}

	Register(GameInfo{ID: "dup-stub"}, func() Game { return &stubGame{id: "dup-stub"} })

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tc.id)
				}
			}()
			Register(GameInfo{ID: tc.id}, func() Game { return &stubGame{id: tc.id} })
		})
	}
}
