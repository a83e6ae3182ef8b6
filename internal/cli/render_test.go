package cli

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/topoviz/topoviz/pkg/pipeline"
)

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"EmptyMeansAll", "", pipeline.AllVariants},
		{"Single", "sphere", []string{"sphere"}},
		{"CommaSeparated", "static,force", []string{"static", "force"}},
		{"TrimsSpaces", "static, force , sphere", []string{"static", "force", "sphere"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseVariants(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseVariants(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		base    string
		variant string
		want    string
	}{
		{"StaticIsUnsuffixedPNG", "out", "topology", "static", filepath.Join("out", "topology.png")},
		{"ForceIsHTML", "out", "topology", "force", filepath.Join("out", "topology_force.html")},
		{"SphereKeeps3DName", ".", "topology", "sphere", "topology_3d.html"},
		{"ScatterIsHTML", "out", "net", "scatter", filepath.Join("out", "net_scatter.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactPath(tt.dir, tt.base, tt.variant); got != tt.want {
				t.Errorf("artifactPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
