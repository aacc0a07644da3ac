package layout

import "github.com/tilekit/tilekit/pkg/geometry"

// MonocleID identifies the monocle (full-screen stacking) algorithm.
const MonocleID = "monocle"

// Monocle gives every window the full screen rectangle; the host decides
// which one is visible. Useful on small screens or for focus-heavy work.
type Monocle struct{}

// NewMonocle returns the monocle algorithm.
func NewMonocle() *Monocle { return &Monocle{} }

func (a *Monocle) ID() string          { return MonocleID }
func (a *Monocle) Name() string        { return "Monocle" }
func (a *Monocle) Description() string { return "Every window full screen, one visible at a time" }
func (a *Monocle) Icon() string        { return "view-fullscreen" }

func (a *Monocle) SupportsMasterCount() bool { return false }
func (a *Monocle) SupportsSplitRatio() bool  { return false }
func (a *Monocle) MasterZoneIndex() int      { return NoMasterZone }
func (a *Monocle) MinWindows() int           { return 1 }
func (a *Monocle) DefaultMaxWindows() int    { return 32 }

func (a *Monocle) CalculateZones(windowCount int, screen geometry.Rect, _ Params) []geometry.Rect {
	if windowCount <= 0 || !screen.IsValid() {
		return nil
	}
	zones := make([]geometry.Rect, windowCount)
	for i := range zones {
		zones[i] = screen
	}
	return zones
}
