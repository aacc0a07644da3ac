package layout

import (
	"github.com/tilekit/tilekit/pkg/geometry"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// MinZoneSize is the smallest usable zone edge in pixels. Gap
	// post-processing re-centers a box of this size instead of letting a
	// zone collapse or overlap its neighbor.
	MinZoneSize = 100

	// MinSplitRatio and MaxSplitRatio bound the master/stack split.
	MinSplitRatio = 0.1
	MaxSplitRatio = 0.9

	// NoMasterZone is the MasterZoneIndex value for algorithms without a
	// master concept.
	NoMasterZone = -1
)

// Params carries the per-screen layout parameters an algorithm may honor.
// Algorithms that don't support a parameter ignore it.
type Params struct {
	// MasterCount is the number of leading window slots treated as masters.
	MasterCount int

	// SplitRatio is the fraction of the primary axis given to the master
	// area, within [MinSplitRatio, MaxSplitRatio].
	SplitRatio float64
}

// sanitize clamps parameters into their valid ranges so algorithms can rely
// on them without re-checking.
func (p Params) sanitize() Params {
	if p.MasterCount < 1 {
		p.MasterCount = 1
	}
	if p.SplitRatio < MinSplitRatio {
		p.SplitRatio = MinSplitRatio
	}
	if p.SplitRatio > MaxSplitRatio {
		p.SplitRatio = MaxSplitRatio
	}
	return p
}

// =============================================================================
// Algorithm Contract
// =============================================================================

// Algorithm computes zone rectangles for a number of window slots.
//
// Implementations must be stateless and pure: the same inputs always produce
// the same zones, with no side effects. CalculateZones returns exactly
// windowCount rectangles in window-slot order, or nil when windowCount <= 0
// or the screen rectangle is invalid.
type Algorithm interface {
	// ID is the stable identifier used in configuration (e.g. "master-stack").
	ID() string

	// Name is the human-readable display name.
	Name() string

	// Description is a one-line summary for UI lists.
	Description() string

	// Icon is the freedesktop icon token for UI display.
	Icon() string

	// SupportsMasterCount reports whether Params.MasterCount affects zones.
	SupportsMasterCount() bool

	// SupportsSplitRatio reports whether Params.SplitRatio affects zones.
	SupportsSplitRatio() bool

	// MasterZoneIndex is the slot index of the master zone, or NoMasterZone.
	MasterZoneIndex() int

	// MinWindows is the smallest window count the algorithm lays out.
	MinWindows() int

	// DefaultMaxWindows is the suggested ceiling before windows should
	// overflow to another policy. Purely advisory.
	DefaultMaxWindows() int

	// CalculateZones returns one zone per window slot.
	CalculateZones(windowCount int, screen geometry.Rect, params Params) []geometry.Rect
}

// fullScreen is the shared single-window fast path: one window always gets
// the whole screen rectangle.
func fullScreen(screen geometry.Rect) []geometry.Rect {
	return []geometry.Rect{screen}
}

// =============================================================================
// Startup Declarations
// =============================================================================

// Declaration describes an algorithm to be instantiated and registered when
// a Registry is constructed. Lower priorities register earlier; ties keep
// declaration order.
type Declaration struct {
	ID       string
	Priority int
	Factory  func() Algorithm
}

// Builtins returns the declaration table for the built-in algorithms.
// Callers pass it (optionally extended with their own declarations) to
// NewRegistry.
func Builtins() []Declaration {
	return []Declaration{
		{ID: MasterStackID, Priority: 10, Factory: func() Algorithm { return NewMasterStack() }},
		{ID: ColumnsID, Priority: 20, Factory: func() Algorithm { return NewColumns() }},
		{ID: RowsID, Priority: 30, Factory: func() Algorithm { return NewRows() }},
		{ID: BSPID, Priority: 40, Factory: func() Algorithm { return NewBSP() }},
		{ID: MonocleID, Priority: 50, Factory: func() Algorithm { return NewMonocle() }},
	}
}
