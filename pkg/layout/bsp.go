package layout

import (
	"math"

	"github.com/tilekit/tilekit/pkg/geometry"
)

// BSPID identifies the binary space partition algorithm.
const BSPID = "bsp"

// BSP recursively halves the screen, alternating the split axis at each
// recursion level: vertical first, then horizontal, and so on. The first
// split honors the split ratio; deeper splits divide space proportionally to
// the number of windows on each side.
type BSP struct{}

// NewBSP returns the binary space partition algorithm.
func NewBSP() *BSP { return &BSP{} }

func (a *BSP) ID() string          { return BSPID }
func (a *BSP) Name() string        { return "Binary Partition" }
func (a *BSP) Description() string { return "Recursive splits with alternating axes" }
func (a *BSP) Icon() string        { return "view-split-auto" }

func (a *BSP) SupportsMasterCount() bool { return false }
func (a *BSP) SupportsSplitRatio() bool  { return true }
func (a *BSP) MasterZoneIndex() int      { return 0 }
func (a *BSP) MinWindows() int           { return 1 }
func (a *BSP) DefaultMaxWindows() int    { return 16 }

func (a *BSP) CalculateZones(windowCount int, screen geometry.Rect, params Params) []geometry.Rect {
	if windowCount <= 0 || !screen.IsValid() {
		return nil
	}
	if windowCount == 1 {
		return fullScreen(screen)
	}
	params = params.sanitize()

	zones := make([]geometry.Rect, 0, windowCount)
	zones = bspSplit(zones, screen, windowCount, 0, params.SplitRatio)
	return zones
}

// bspSplit appends the zones for count windows inside rect, splitting on the
// axis selected by the recursion depth. The ratio applies only at depth 0;
// below that, each side's share follows its window count so leaf zones stay
// near-equal in area.
func bspSplit(zones []geometry.Rect, rect geometry.Rect, count, depth int, ratio float64) []geometry.Rect {
	if count <= 0 {
		return zones
	}
	if count == 1 {
		return append(zones, rect)
	}

	first := count / 2
	second := count - first

	frac := float64(first) / float64(count)
	if depth == 0 {
		frac = ratio
	}

	if depth%2 == 0 {
		// Vertical cut: left/right halves.
		leftWidth := int(math.Round(float64(rect.Width) * frac))
		left := geometry.NewRect(rect.X, rect.Y, leftWidth, rect.Height)
		right := geometry.NewRect(rect.X+leftWidth, rect.Y, rect.Width-leftWidth, rect.Height)
		zones = bspSplit(zones, left, first, depth+1, ratio)
		zones = bspSplit(zones, right, second, depth+1, ratio)
		return zones
	}

	// Horizontal cut: top/bottom halves.
	topHeight := int(math.Round(float64(rect.Height) * frac))
	top := geometry.NewRect(rect.X, rect.Y, rect.Width, topHeight)
	bottom := geometry.NewRect(rect.X, rect.Y+topHeight, rect.Width, rect.Height-topHeight)
	zones = bspSplit(zones, top, first, depth+1, ratio)
	zones = bspSplit(zones, bottom, second, depth+1, ratio)
	return zones
}
