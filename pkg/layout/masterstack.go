package layout

import (
	"math"

	"github.com/tilekit/tilekit/pkg/geometry"
)

// MasterStackID identifies the master-stack algorithm. It is also the
// registry default.
const MasterStackID = "master-stack"

// MasterStack is the classic tiling layout: a resizable master column on the
// left sized by the split ratio, with the remaining windows stacked evenly in
// the right column. The first MasterCount slots are masters and share the
// master column evenly.
type MasterStack struct{}

// NewMasterStack returns the master-stack algorithm.
func NewMasterStack() *MasterStack { return &MasterStack{} }

func (a *MasterStack) ID() string          { return MasterStackID }
func (a *MasterStack) Name() string        { return "Master & Stack" }
func (a *MasterStack) Description() string { return "Resizable master column with an even stack" }
func (a *MasterStack) Icon() string        { return "view-split-left-right" }

func (a *MasterStack) SupportsMasterCount() bool { return true }
func (a *MasterStack) SupportsSplitRatio() bool  { return true }
func (a *MasterStack) MasterZoneIndex() int      { return 0 }
func (a *MasterStack) MinWindows() int           { return 1 }
func (a *MasterStack) DefaultMaxWindows() int    { return 10 }

// CalculateZones places masters in the left column, split evenly along the
// vertical axis, and spreads the stack over the remaining width as
// full-height columns.
func (a *MasterStack) CalculateZones(windowCount int, screen geometry.Rect, params Params) []geometry.Rect {
	if windowCount <= 0 || !screen.IsValid() {
		return nil
	}
	if windowCount == 1 {
		return fullScreen(screen)
	}
	params = params.sanitize()

	masters := params.MasterCount
	if masters > windowCount {
		masters = windowCount
	}
	stack := windowCount - masters

	masterWidth := screen.Width
	if stack > 0 {
		masterWidth = int(math.Round(float64(screen.Width) * params.SplitRatio))
	}

	zones := make([]geometry.Rect, 0, windowCount)

	masterHeights := geometry.DistributeEvenly(screen.Height, masters)
	y := screen.Y
	for _, h := range masterHeights {
		zones = append(zones, geometry.NewRect(screen.X, y, masterWidth, h))
		y += h
	}

	if stack == 0 {
		return zones
	}

	// Stack columns respect the minimum zone size; when the remaining width
	// cannot fit them all, shares degrade proportionally instead of to zero.
	stackWidths := geometry.DistributeWithMinimums(screen.Width-masterWidth, stack, 0, uniformMins(stack, MinZoneSize))
	x := screen.X + masterWidth
	for _, w := range stackWidths {
		zones = append(zones, geometry.NewRect(x, screen.Y, w, screen.Height))
		x += w
	}
	return zones
}

func uniformMins(count, min int) []int {
	mins := make([]int, count)
	for i := range mins {
		mins[i] = min
	}
	return mins
}
