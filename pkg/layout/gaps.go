package layout

import "github.com/tilekit/tilekit/pkg/geometry"

// edgeThreshold is how close (in pixels) a zone edge must be to the screen
// boundary to count as a screen edge rather than an interior edge.
const edgeThreshold = 1

// ApplyGapsToZone insets a single zone by the outer gap on all four edges.
// If the inset zone would fall below MinZoneSize in either dimension, a
// minimum-size box is re-centered within the original bounds instead.
func ApplyGapsToZone(zone geometry.Rect, outerGap int) geometry.Rect {
	adjusted := zone.Shrunk(outerGap)
	return clampToMinSize(adjusted, zone)
}

// ApplyGaps insets every zone according to its edge classification: edges on
// the screen boundary shrink by the outer gap, interior edges by half the
// inner gap. The ceiling half goes to left/top edges and the floor half to
// right/bottom edges, so two adjacent zones end up separated by exactly the
// inner gap even when it is odd.
//
// A zone that would collapse below MinZoneSize is replaced by a
// minimum-size box centered in its original (pre-gap) bounds rather than
// allowed to overlap a neighbor.
func ApplyGaps(zones []geometry.Rect, screen geometry.Rect, innerGap, outerGap int) []geometry.Rect {
	if len(zones) == 0 {
		return nil
	}
	if len(zones) == 1 {
		return []geometry.Rect{ApplyGapsToZone(zones[0], outerGap)}
	}

	innerLead := (innerGap + 1) / 2 // ceiling half, applied to left/top
	innerTrail := innerGap / 2      // floor half, applied to right/bottom

	out := make([]geometry.Rect, len(zones))
	for i, zone := range zones {
		left := innerLead
		if abs(zone.X-screen.X) <= edgeThreshold {
			left = outerGap
		}
		top := innerLead
		if abs(zone.Y-screen.Y) <= edgeThreshold {
			top = outerGap
		}
		right := innerTrail
		if abs(zone.Right()-screen.Right()) <= edgeThreshold {
			right = outerGap
		}
		bottom := innerTrail
		if abs(zone.Bottom()-screen.Bottom()) <= edgeThreshold {
			bottom = outerGap
		}

		adjusted := geometry.Rect{
			X:      zone.X + left,
			Y:      zone.Y + top,
			Width:  zone.Width - left - right,
			Height: zone.Height - top - bottom,
		}
		out[i] = clampToMinSize(adjusted, zone)
	}
	return out
}

// clampToMinSize returns adjusted unless it collapsed below MinZoneSize, in
// which case a minimum-size box is centered within the original bounds.
// Zones smaller than the minimum to begin with keep their original size.
func clampToMinSize(adjusted, original geometry.Rect) geometry.Rect {
	if adjusted.Width >= MinZoneSize && adjusted.Height >= MinZoneSize {
		return adjusted
	}

	w := MinZoneSize
	if original.Width < w {
		w = original.Width
	}
	h := MinZoneSize
	if original.Height < h {
		h = original.Height
	}
	return geometry.Rect{
		X:      original.X + (original.Width-w)/2,
		Y:      original.Y + (original.Height-h)/2,
		Width:  w,
		Height: h,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
