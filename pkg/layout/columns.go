package layout

import "github.com/tilekit/tilekit/pkg/geometry"

// ColumnsID identifies the equal-columns algorithm.
const ColumnsID = "columns"

// Columns lays every window out as an equal-width, full-height vertical
// column. There is no master concept.
type Columns struct{}

// NewColumns returns the columns algorithm.
func NewColumns() *Columns { return &Columns{} }

func (a *Columns) ID() string          { return ColumnsID }
func (a *Columns) Name() string        { return "Columns" }
func (a *Columns) Description() string { return "Equal-width vertical columns" }
func (a *Columns) Icon() string        { return "view-split-columns" }

func (a *Columns) SupportsMasterCount() bool { return false }
func (a *Columns) SupportsSplitRatio() bool  { return false }
func (a *Columns) MasterZoneIndex() int      { return NoMasterZone }
func (a *Columns) MinWindows() int           { return 1 }
func (a *Columns) DefaultMaxWindows() int    { return 8 }

func (a *Columns) CalculateZones(windowCount int, screen geometry.Rect, _ Params) []geometry.Rect {
	if windowCount <= 0 || !screen.IsValid() {
		return nil
	}
	if windowCount == 1 {
		return fullScreen(screen)
	}

	widths := geometry.DistributeEvenly(screen.Width, windowCount)
	zones := make([]geometry.Rect, 0, windowCount)
	x := screen.X
	for _, w := range widths {
		zones = append(zones, geometry.NewRect(x, screen.Y, w, screen.Height))
		x += w
	}
	return zones
}
