// Package engine orchestrates automatic tiling: it turns window lifecycle
// events into zone-geometry assignments.
//
// # Architecture
//
// The engine owns one State per screen (an ordered window sequence with
// master parameters and a zone cache) and reacts to inbound events from the
// window-management host:
//
//	event -> state mutation -> recalculate layout -> apply gaps -> emit assignments
//
// Layout computation is delegated to the algorithm selected in the layout
// Registry; results are validated (zone count must equal window count) before
// they replace the cached zones, so a misbehaving algorithm can never leave a
// screen with a partially updated layout.
//
// Outbound effects go through the Host interface: the engine never moves a
// window itself, it only tells the host which rectangle each window should
// occupy and which window should be activated.
//
// # Concurrency
//
// The original design runs on a single orchestration thread. In Go the
// settings debounce timer fires on a runtime goroutine, so the engine guards
// its public surface with one mutex; within that, everything is synchronous
// and completes in one call. No public operation blocks.
//
// # Error handling
//
// All failures are non-fatal and locally recovered: unknown screens or
// windows no-op with a log line, out-of-range values clamp, and a zone-count
// mismatch aborts the recalculation leaving the previous cache untouched.
package engine
