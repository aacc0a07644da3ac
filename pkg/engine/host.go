package engine

import "github.com/tilekit/tilekit/pkg/geometry"

// Host is the outbound boundary to the window-management host. The engine
// computes geometry; the host applies it.
//
// Calls arrive synchronously from within engine operations, on whichever
// goroutine invoked the engine (or the debounce timer goroutine for debounced
// retiles). Implementations should return quickly and must not call back into
// the engine, or they will deadlock on the engine mutex.
type Host interface {
	// WindowTiled tells the host that a window should occupy a rectangle.
	// Emitted once per affected window during a retile, in slot order.
	WindowTiled(windowID string, zone geometry.Rect)

	// FocusWindowRequested asks the host to activate a window. The engine
	// never tracks activation itself; focus state flows back in through
	// WindowFocused.
	FocusWindowRequested(windowID string)

	// TilingChanged signals that a screen's layout was recomputed.
	TilingChanged(screen string)

	// EnabledChanged signals that tiling was switched on or off.
	EnabledChanged(enabled bool)

	// AlgorithmChanged signals a change of the active algorithm.
	AlgorithmChanged(algorithmID string)
}

// NoopHost discards all outbound notifications. Useful as a default and in
// tests that only inspect engine state.
type NoopHost struct{}

func (NoopHost) WindowTiled(string, geometry.Rect) {}
func (NoopHost) FocusWindowRequested(string)       {}
func (NoopHost) TilingChanged(string)              {}
func (NoopHost) EnabledChanged(bool)               {}
func (NoopHost) AlgorithmChanged(string)           {}
