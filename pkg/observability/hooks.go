// Package observability provides hooks for instrumenting chart rendering.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup; the render path reports layout and render events to whatever
// is registered, or to a no-op when nothing is.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Callers emit events around a render:
//
//	observability.Render().OnLayout(ctx, area, layout.Plot)
//	observability.Render().OnRender(ctx, area, plotted, skipped, duration)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/cellchart/pkg/buffer"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from chart rendering.
type RenderHooks interface {
	// OnLayout records the plot rectangle computed for an area.
	OnLayout(ctx context.Context, area, plot buffer.Rect)

	// OnRender records a finished render.
	OnRender(ctx context.Context, area buffer.Rect, plotted, skipped int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnLayout(context.Context, buffer.Rect, buffer.Rect)             {}
func (NoopRenderHooks) OnRender(context.Context, buffer.Rect, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
