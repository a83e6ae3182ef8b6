package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	noopPipelineHooks
	renders []string
}

func (r *recordingHooks) OnRenderStart(_ context.Context, variant string) {
	r.renders = append(r.renders, variant)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	SetPipelineHooks(nil)
	h := Pipeline()
	if h == nil {
		t.Fatal("Pipeline() returned nil")
	}
	// Must not panic.
	h.OnPullStart(context.Background(), "static")
	h.OnBuildComplete(context.Background(), 0, 0, time.Millisecond, nil)
}

func TestSetPipelineHooks(t *testing.T) {
	rec := &recordingHooks{}
	SetPipelineHooks(rec)
	defer SetPipelineHooks(nil)

	Pipeline().OnRenderStart(context.Background(), "sphere")
	if len(rec.renders) != 1 || rec.renders[0] != "sphere" {
		t.Errorf("renders = %v, want [sphere]", rec.renders)
	}
}
