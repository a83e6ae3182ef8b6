package static

import (
	"strings"
	"testing"

	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

func demoModel(t *testing.T) *topology.Model {
	t.Helper()
	m, err := topology.Build(topology.DemoRecords())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBuildSceneCounts(t *testing.T) {
	scene := Build(demoModel(t), styles.Builtin())

	if got := len(scene.Nodes); got != 10 {
		t.Errorf("scene nodes = %d, want 10", got)
	}
	if got := len(scene.Edges); got != 9 {
		t.Errorf("scene edges = %d, want 9", got)
	}
	for _, n := range scene.Nodes {
		if n.Color == "" || n.Shape == "" || n.Size == 0 {
			t.Errorf("node %s missing style fields: %+v", n.ID, n)
		}
	}
}

func TestBuildEmptyModel(t *testing.T) {
	scene := Build(topology.NewModel(), styles.Builtin())
	if len(scene.Nodes) != 0 || len(scene.Edges) != 0 {
		t.Errorf("empty model scene = %d nodes, %d edges; want 0, 0", len(scene.Nodes), len(scene.Edges))
	}

	dot := ToDOT(scene, Options{Seed: 42})
	if !strings.HasPrefix(dot, "digraph topology {") || !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("empty scene should still emit a valid digraph:\n%s", dot)
	}
}

func TestToDOT(t *testing.T) {
	scene := Build(demoModel(t), styles.Builtin())
	dot := ToDOT(scene, Options{Seed: 42, Title: "Network Topology"})

	wantFragments := []string{
		"layout=fdp",
		"start=42",
		`label="Network Topology"`,
		`"BS_1001" [label="BS_1001", shape=triangle, fillcolor="#FF9999"`,
		`"R_2001" [label="R_2001", shape=box, fillcolor="#99FF99"`,
		`"FN_3001" [label="FN_3001", shape=circle, fillcolor="#9999FF"`,
		`"U_4001" [label="U_4001", shape=diamond, fillcolor="#FFFF99"`,
		`"BS_1001" -> "R_2001" [label="Fiber"]`,
		`"U_4002" -> "BS_1002" [label="4G"]`,
	}
	for _, frag := range wantFragments {
		if !strings.Contains(dot, frag) {
			t.Errorf("DOT missing %q:\n%s", frag, dot)
		}
	}

	if got := strings.Count(dot, " -> "); got != 9 {
		t.Errorf("edge statements = %d, want 9", got)
	}
}

func TestDotShapeFallback(t *testing.T) {
	if got := dotShape("hexagon"); got != "circle" {
		t.Errorf("dotShape(hexagon) = %s, want circle", got)
	}
}
