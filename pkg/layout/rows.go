package layout

import "github.com/tilekit/tilekit/pkg/geometry"

// RowsID identifies the equal-rows algorithm.
const RowsID = "rows"

// Rows lays every window out as an equal-height, full-width horizontal row.
type Rows struct{}

// NewRows returns the rows algorithm.
func NewRows() *Rows { return &Rows{} }

func (a *Rows) ID() string          { return RowsID }
func (a *Rows) Name() string        { return "Rows" }
func (a *Rows) Description() string { return "Equal-height horizontal rows" }
func (a *Rows) Icon() string        { return "view-split-rows" }

func (a *Rows) SupportsMasterCount() bool { return false }
func (a *Rows) SupportsSplitRatio() bool  { return false }
func (a *Rows) MasterZoneIndex() int      { return NoMasterZone }
func (a *Rows) MinWindows() int           { return 1 }
func (a *Rows) DefaultMaxWindows() int    { return 6 }

func (a *Rows) CalculateZones(windowCount int, screen geometry.Rect, _ Params) []geometry.Rect {
	if windowCount <= 0 || !screen.IsValid() {
		return nil
	}
	if windowCount == 1 {
		return fullScreen(screen)
	}

	heights := geometry.DistributeEvenly(screen.Height, windowCount)
	zones := make([]geometry.Rect, 0, windowCount)
	y := screen.Y
	for _, h := range heights {
		zones = append(zones, geometry.NewRect(screen.X, y, screen.Width, h))
		y += h
	}
	return zones
}
