package relgraph

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/storygraph/storygraph/pkg/entity"
)

func strp(s string) *string { return &s }

func TestGraphDedupe(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	g := NewGraph("test")

	if !g.AddNode(&Node{ID: a, Label: "a"}) {
		t.Error("first AddNode returned false")
	}
	if g.AddNode(&Node{ID: a, Label: "a2"}) {
		t.Error("duplicate AddNode returned true")
	}
	g.AddNode(&Node{ID: b, Label: "b"})

	if !g.AddEdge(a, b, "fragments") {
		t.Error("first AddEdge returned false")
	}
	if g.AddEdge(a, b, "fragments") {
		t.Error("duplicate AddEdge returned true")
	}
	if !g.AddEdge(a, b, "characters") {
		t.Error("same endpoints with different label should insert")
	}
	if g.AddEdge(a, a, "fragments") {
		t.Error("self loop should be dropped")
	}

	if g.NodeCount() != 2 || len(g.Edges()) != 2 {
		t.Errorf("nodes=%d edges=%d, want 2 and 2", g.NodeCount(), len(g.Edges()))
	}
	// First insertion wins for nodes.
	if g.Nodes()[0].Label != "a" {
		t.Errorf("node label = %q, want %q", g.Nodes()[0].Label, "a")
	}
}

func TestGraphDOT(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	g := NewGraph("My Story")
	g.SetRoot(a)
	g.AddNode(&Node{ID: a, Label: "My Story", Tooltip: "an epic", URL: "/stories/" + a.String(), Class: "stories"})
	g.AddNode(&Node{ID: b, Label: "Intro", Shape: "box", Tooltip: "see more info", URL: "/fragments/" + b.String(), Class: "fragments"})
	g.AddEdge(a, b, "fragments")

	dot := g.DOT()
	for _, want := range []string{
		`digraph "My Story" {`,
		`root="11111111-1111-1111-1111-111111111111";`,
		`margin=1;`,
		`splines=true;`,
		`"11111111-1111-1111-1111-111111111111" [label="My Story", tooltip="an epic", URL="/stories/11111111-1111-1111-1111-111111111111", class="stories"];`,
		`"22222222-2222-2222-2222-222222222222" [label="Intro", shape=box, tooltip="see more info", URL="/fragments/22222222-2222-2222-2222-222222222222", class="fragments"];`,
		`"11111111-1111-1111-1111-111111111111" -> "22222222-2222-2222-2222-222222222222" [label="fragments"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestGraphDOTDeterministic(t *testing.T) {
	build := func() *Graph {
		g := NewGraph("g")
		ids := []uuid.UUID{
			uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001"),
			uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000002"),
			uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000003"),
		}
		for _, id := range ids {
			g.AddNode(&Node{ID: id, Label: id.String()[:8]})
		}
		g.AddEdge(ids[0], ids[1], "fragments")
		g.AddEdge(ids[0], ids[2], "characters")
		return g
	}
	if build().DOT() != build().DOT() {
		t.Error("identical construction produced different DOT")
	}
}

func TestGraphDOTEscapesQuotes(t *testing.T) {
	id := uuid.New()
	g := NewGraph(`a "quoted" name`)
	g.AddNode(&Node{ID: id, Label: `say "hi"`})
	dot := g.DOT()
	if !strings.Contains(dot, `digraph "a \"quoted\" name" {`) {
		t.Errorf("graph name not escaped:\n%s", dot)
	}
	if !strings.Contains(dot, `label="say \"hi\""`) {
		t.Errorf("node label not escaped:\n%s", dot)
	}
}

func TestNodeFor(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name        string
		ref         entity.Ref
		wantShape   string
		wantTooltip string
		wantImage   string
	}{
		{
			name:        "story uses default shape and description tooltip",
			ref:         entity.Ref{ID: id, Kind: entity.KindStory, Name: "Saga", Description: strp("a long tale")},
			wantTooltip: "a long tale",
		},
		{
			name:        "story without description falls back",
			ref:         entity.Ref{ID: id, Kind: entity.KindStory, Name: "Saga"},
			wantTooltip: "see more info",
		},
		{
			name:        "fragment is a box with fixed tooltip",
			ref:         entity.Ref{ID: id, Kind: entity.KindFragment, Name: "Ch 1", Description: strp("ignored")},
			wantShape:   "box",
			wantTooltip: "see more info",
		},
		{
			name: "character is a hexagon with thumbnail image",
			ref: entity.Ref{
				ID: id, Kind: entity.KindCharacter, Name: "Ada",
				Thumbnail: &entity.Image{ID: uuid.New(), URL: "https://img.test/ada.png"},
			},
			wantShape:   "hexagon",
			wantTooltip: "see more info",
			wantImage:   "https://img.test/ada.png",
		},
		{
			name:        "location is a house",
			ref:         entity.Ref{ID: id, Kind: entity.KindLocation, Name: "Harbor"},
			wantShape:   "house",
			wantTooltip: "see more info",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NodeFor(tt.ref)
			if n.Shape != tt.wantShape {
				t.Errorf("Shape = %q, want %q", n.Shape, tt.wantShape)
			}
			if n.Tooltip != tt.wantTooltip {
				t.Errorf("Tooltip = %q, want %q", n.Tooltip, tt.wantTooltip)
			}
			if n.Image != tt.wantImage {
				t.Errorf("Image = %q, want %q", n.Image, tt.wantImage)
			}
			wantURL := "/" + tt.ref.Kind.Tag() + "/" + id.String()
			if n.URL != wantURL {
				t.Errorf("URL = %q, want %q", n.URL, wantURL)
			}
			if n.Class != tt.ref.Kind.Tag() {
				t.Errorf("Class = %q, want %q", n.Class, tt.ref.Kind.Tag())
			}
		})
	}
}
