package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/topoviz/topoviz/pkg/render/styles"
	"github.com/topoviz/topoviz/pkg/topology"
)

func TestEdgeLabel(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  string
	}{
		{"Both", map[string]any{"type": "Fiber", "speed": "10Gbps"}, "Fiber\n10Gbps"},
		{"MissingSpeed", map[string]any{"type": "Backbone"}, "Backbone\nN/A"},
		{"MissingType", map[string]any{"speed": "1Gbps"}, "N/A\n1Gbps"},
		{"Empty", nil, "N/A\nN/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdgeLabel(topology.NormalizeAttrs(tt.props))
			if got != tt.want {
				t.Errorf("EdgeLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEdgeLabelNilAttrs(t *testing.T) {
	if got := EdgeLabel(nil); got != "N/A\nN/A" {
		t.Errorf("EdgeLabel(nil) = %q, want N/A\\nN/A", got)
	}
}

func TestTooltip(t *testing.T) {
	attrs := topology.NormalizeAttrs(map[string]any{"location": "Sydney", "capacity": "5G"})
	tip := Tooltip(attrs)

	var decoded map[string]any
	if err := json.Unmarshal([]byte(tip), &decoded); err != nil {
		t.Fatalf("tooltip is not valid JSON: %v", err)
	}
	if decoded["location"] != "Sydney" {
		t.Errorf("tooltip location = %v, want Sydney", decoded["location"])
	}
	if !strings.Contains(tip, "\n") {
		t.Error("tooltip should be indented multi-line JSON")
	}

	if got := Tooltip(nil); got != "{}" {
		t.Errorf("Tooltip(nil) = %q, want {}", got)
	}
}

func TestNodeEntryStyling(t *testing.T) {
	reg := styles.Builtin()
	n := &topology.Node{ID: "BS_1001", Type: topology.TypeBaseStation, Attrs: topology.NewAttrs()}

	entry := NodeEntry(n, reg)
	if entry.Color != "#FF9999" || entry.Shape != "triangle" {
		t.Errorf("entry style = (%s, %s), want BaseStation spec", entry.Color, entry.Shape)
	}
	if entry.Label != "BS_1001" {
		t.Errorf("label = %s, want node ID", entry.Label)
	}

	unknown := &topology.Node{ID: "X_1", Type: topology.NodeType("Satellite"), Attrs: topology.NewAttrs()}
	if got := NodeEntry(unknown, reg); got.Color != "#CCCCCC" {
		t.Errorf("unknown type color = %s, want default gray", got.Color)
	}
}
