package forcenet

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

func TestBuildScene(t *testing.T) {
	scene := Build(demoModel(t), styles.Builtin())

	if got := len(scene.Nodes); got != 10 {
		t.Errorf("scene nodes = %d, want 10", got)
	}
	if got := len(scene.Edges); got != 9 {
		t.Errorf("scene edges = %d, want 9", got)
	}
	if scene.Layout != "forceAtlas2Based" {
		t.Errorf("layout = %s, want forceAtlas2Based", scene.Layout)
	}

	for _, n := range scene.Nodes {
		if n.Color == "" || n.Shape == "" || n.Size == 0 {
			t.Errorf("node %s missing style fields: %+v", n.ID, n)
		}
		if !strings.HasPrefix(n.Tooltip, "{") {
			t.Errorf("node %s tooltip is not structured: %q", n.ID, n.Tooltip)
		}
	}

	for _, e := range scene.Edges {
		if !e.Directed {
			t.Errorf("edge %s→%s should be directed", e.From, e.To)
		}
		if !strings.Contains(e.Label, "\n") {
			t.Errorf("edge %s→%s label should be two lines: %q", e.From, e.To, e.Label)
		}
	}
}

func TestRenderEmbedsPhysics(t *testing.T) {
	html, err := RenderModel(demoModel(t), styles.Builtin(), Options{Title: "Topology"})
	if err != nil {
		t.Fatal(err)
	}
	doc := string(html)

	wantFragments := []string{
		`"gravitationalConstant":-50`,
		`"centralGravity":0.01`,
		`"springLength":200`,
		`"springConstant":0.08`,
		`"maxVelocity":50`,
		`"minVelocity":0.1`,
		`"solver":"forceAtlas2Based"`,
		`"id":"BS_1001"`,
		`"from":"U_4001"`,
		"vis-network",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(doc, frag) {
			t.Errorf("document missing %q", frag)
		}
	}
}

func TestRenderEdgeLabelDefaults(t *testing.T) {
	m := topology.NewModel()
	m.AddNode(topology.Node{ID: "a", Type: topology.TypeRouter})
	m.AddNode(topology.Node{ID: "b", Type: topology.TypeRouter})
	m.AddEdge(topology.Edge{From: "a", To: "b", RelType: "CONNECTED_TO"})

	html, err := RenderModel(m, styles.Builtin(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), `N/A\nN/A`) {
		t.Error("edge without type/speed attrs should label as N/A on both lines")
	}
}

func TestRenderEmptyModel(t *testing.T) {
	html, err := RenderModel(topology.NewModel(), styles.Builtin(), Options{})
	if err != nil {
		t.Fatalf("empty model should render: %v", err)
	}
	doc := string(html)
	if !strings.Contains(doc, "new vis.DataSet([])") {
		t.Error("empty model should produce empty data sets")
	}
}
