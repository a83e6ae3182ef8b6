// Package observability provides hooks for metrics, tracing, and logging.
//
// The pipeline emits stage events through hook interfaces with no-op default
// implementations, so instrumentation backends stay optional and the core
// packages carry no observability dependencies. Main registers hooks at
// startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnBuildStart(ctx, recordCount)
//	// ... build model ...
//	observability.Pipeline().OnBuildComplete(ctx, nodeCount, edgeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the visualization pipeline.
type PipelineHooks interface {
	// Pull events
	OnPullStart(ctx context.Context, source string)
	OnPullComplete(ctx context.Context, source string, recordCount int, duration time.Duration, err error)

	// Model build events
	OnBuildStart(ctx context.Context, recordCount int)
	OnBuildComplete(ctx context.Context, nodeCount, edgeCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, variant string)
	OnRenderComplete(ctx context.Context, variant string, artifactSize int, duration time.Duration, err error)
}

// noopPipelineHooks is the default no-op implementation.
type noopPipelineHooks struct{}

func (noopPipelineHooks) OnPullStart(context.Context, string)                                    {}
func (noopPipelineHooks) OnPullComplete(context.Context, string, int, time.Duration, error)      {}
func (noopPipelineHooks) OnBuildStart(context.Context, int)                                      {}
func (noopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration, error)        {}
func (noopPipelineHooks) OnRenderStart(context.Context, string)                                  {}
func (noopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error)    {}

var (
	mu            sync.RWMutex
	pipelineHooks PipelineHooks = noopPipelineHooks{}
)

// SetPipelineHooks registers the pipeline hook implementation.
// Call once at startup, before the pipeline runs.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		pipelineHooks = noopPipelineHooks{}
		return
	}
	pipelineHooks = h
}

// Pipeline returns the registered pipeline hooks (never nil).
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipelineHooks
}
