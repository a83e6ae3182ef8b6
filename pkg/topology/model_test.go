package topology

import (
	"errors"
	"testing"
)

func TestModelAddNode(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantErr error
	}{
		{
			name:  "Simple",
			nodes: []Node{{ID: "a", Type: TypeRouter}, {ID: "b", Type: TypeFiberNode}},
		},
		{
			name:    "EmptyID",
			nodes:   []Node{{ID: ""}},
			wantErr: ErrInvalidNodeID,
		},
		{
			name:    "Duplicate",
			nodes:   []Node{{ID: "a", Type: TypeRouter}, {ID: "a", Type: TypeRouter}},
			wantErr: ErrDuplicateNodeID,
		},
		{
			name:    "DuplicateAcrossTypes",
			nodes:   []Node{{ID: "a", Type: TypeRouter}, {ID: "a", Type: TypeUserDevice}},
			wantErr: ErrDuplicateNodeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			var err error
			for _, n := range tt.nodes {
				if err = m.AddNode(n); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddNode error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestModelAddEdge(t *testing.T) {
	m := NewModel()
	if err := m.AddNode(Node{ID: "a", Type: TypeRouter}); err != nil {
		t.Fatal(err)
	}
	if err := m.AddNode(Node{ID: "b", Type: TypeFiberNode}); err != nil {
		t.Fatal(err)
	}

	if err := m.AddEdge(Edge{From: "a", To: "missing"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("missing target error = %v, want ErrUnknownTargetNode", err)
	}
	if err := m.AddEdge(Edge{From: "missing", To: "b"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("missing source error = %v, want ErrUnknownSourceNode", err)
	}

	// Self-loops and parallel edges are legal and kept distinct.
	for _, e := range []Edge{{From: "a", To: "b"}, {From: "a", To: "b"}, {From: "a", To: "a"}} {
		if err := m.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	if got := m.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
}

func TestModelInsertionOrder(t *testing.T) {
	m := NewModel()
	ids := []string{"z", "a", "m", "b"}
	for _, id := range ids {
		if err := m.AddNode(Node{ID: id, Type: TypeRouter}); err != nil {
			t.Fatal(err)
		}
	}

	nodes := m.Nodes()
	for i, n := range nodes {
		if n.ID != ids[i] {
			t.Errorf("Nodes()[%d] = %s, want %s", i, n.ID, ids[i])
		}
	}

	idx := m.Index()
	for i, id := range ids {
		if idx[id] != i {
			t.Errorf("Index()[%s] = %d, want %d", id, idx[id], i)
		}
	}
}

func TestModelTypeIndex(t *testing.T) {
	m := NewModel()
	m.AddNode(Node{ID: "r1", Type: TypeRouter})
	m.AddNode(Node{ID: "b1", Type: TypeBaseStation})
	m.AddNode(Node{ID: "r2", Type: TypeRouter})

	if got := m.NodesOfType(TypeRouter); len(got) != 2 || got[0] != "r1" || got[1] != "r2" {
		t.Errorf("NodesOfType(Router) = %v, want [r1 r2]", got)
	}
	types := m.Types()
	if len(types) != 2 || types[0] != TypeRouter || types[1] != TypeBaseStation {
		t.Errorf("Types() = %v, want [Router BaseStation]", types)
	}
}

func TestAttrsNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"String", "5G", "5G"},
		{"Bool", true, true},
		{"Float", 2.5, 2.5},
		{"Int", 42, float64(42)},
		{"Int64", int64(7), float64(7)},
		{"Nil", nil, ""},
		{"Slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAttrs()
			a.Set("k", tt.in)
			got, ok := a.Get("k")
			if !ok {
				t.Fatal("key missing after Set")
			}
			if got != tt.want {
				t.Errorf("Get = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestAttrsStringFallback(t *testing.T) {
	a := NewAttrs()
	a.Set("type", "Fiber")
	if got := a.String("type", "N/A"); got != "Fiber" {
		t.Errorf("String(type) = %q, want Fiber", got)
	}
	if got := a.String("speed", "N/A"); got != "N/A" {
		t.Errorf("String(speed) = %q, want N/A", got)
	}
}

func TestNormalizeAttrsSortsKeys(t *testing.T) {
	a := NormalizeAttrs(map[string]any{"z": 1, "a": 2, "m": 3})
	keys := a.Keys()
	want := []string{"a", "m", "z"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}
