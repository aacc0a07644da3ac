package layout

import "github.com/tilekit/tilekit/pkg/geometry"

// Preview parameters. The frame is only a computation canvas; previews are
// returned normalized to the unit square.
var previewFrame = geometry.NewRect(0, 0, 1920, 1080)

const (
	// PreviewWindowCount is the representative window count for previews.
	PreviewWindowCount = 3

	// previewInsetStep is the per-index diagonal inset, as a fraction of the
	// unit square, applied when all zones are pixel-identical.
	previewInsetStep = 0.04
)

// Preview computes the zones an algorithm produces for windowCount windows
// and returns them normalized to the unit square, for display in algorithm
// pickers.
//
// When every zone is pixel-identical (a monocle-style layout), each zone is
// inset diagonally by a small per-index step so the otherwise-overlapping
// full-screen zones remain distinguishable in a list. That inset is a
// presentation nicety only and never feeds back into layout.
func (r *Registry) Preview(id string, windowCount int) []geometry.RectF {
	alg := r.Algorithm(id)
	if alg == nil {
		return nil
	}
	if windowCount <= 0 {
		windowCount = PreviewWindowCount
	}

	zones := alg.CalculateZones(windowCount, previewFrame, Params{MasterCount: 1, SplitRatio: 0.6})
	if len(zones) == 0 {
		return nil
	}

	out := make([]geometry.RectF, len(zones))
	for i, z := range zones {
		out[i] = geometry.Normalize(z, previewFrame)
	}

	if !allIdentical(zones) {
		return out
	}
	for i := range out {
		inset := previewInsetStep * float64(i)
		out[i].X += inset
		out[i].Y += inset
		out[i].Width -= 2 * inset * out[i].Width
		out[i].Height -= 2 * inset * out[i].Height
	}
	return out
}

func allIdentical(zones []geometry.Rect) bool {
	for _, z := range zones[1:] {
		if z != zones[0] {
			return false
		}
	}
	return true
}
