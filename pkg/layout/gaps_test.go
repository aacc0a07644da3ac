package layout

import (
	"testing"

	"github.com/tilekit/tilekit/pkg/geometry"
)

func TestApplyGapsToZone(t *testing.T) {
	got := ApplyGapsToZone(geometry.NewRect(0, 0, 1920, 1080), 8)
	want := geometry.NewRect(8, 8, 1904, 1064)
	if got != want {
		t.Errorf("ApplyGapsToZone() = %v, want %v", got, want)
	}
}

func TestApplyGapsToZoneMinimumSize(t *testing.T) {
	// A zone too small to survive the inset gets a re-centered minimum box.
	zone := geometry.NewRect(0, 0, 110, 110)
	got := ApplyGapsToZone(zone, 20)
	if got.Width != MinZoneSize || got.Height != MinZoneSize {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width, got.Height, MinZoneSize, MinZoneSize)
	}
	if got.CenterX() != zone.CenterX() || got.CenterY() != zone.CenterY() {
		t.Errorf("minimum box not centered in original bounds: %v", got)
	}
}

func TestApplyGapsOddInnerGapSymmetry(t *testing.T) {
	// Two adjacent zones with an odd inner gap must end up separated by
	// exactly that gap, regardless of screen width.
	for _, width := range []int{1280, 1920, 2560, 3441} {
		screen := geometry.NewRect(0, 0, width, 1080)
		half := width / 2
		zones := []geometry.Rect{
			geometry.NewRect(0, 0, half, 1080),
			geometry.NewRect(half, 0, width-half, 1080),
		}
		out := ApplyGaps(zones, screen, 7, 8)

		gap := out[1].X - out[0].Right()
		if gap != 7 {
			t.Errorf("width %d: separation = %d, want 7", width, gap)
		}
	}
}

func TestApplyGapsEdgeClassification(t *testing.T) {
	screen := geometry.NewRect(0, 0, 1000, 1000)
	zones := []geometry.Rect{
		geometry.NewRect(0, 0, 500, 1000),
		geometry.NewRect(500, 0, 500, 1000),
	}
	out := ApplyGaps(zones, screen, 10, 20)

	left := out[0]
	if left.X != 20 {
		t.Errorf("left zone screen edge: X = %d, want 20", left.X)
	}
	if left.Y != 20 || left.Bottom() != 980 {
		t.Errorf("left zone top/bottom: %v", left)
	}
	if left.Right() != 495 {
		t.Errorf("left zone interior edge: Right = %d, want 495", left.Right())
	}

	right := out[1]
	if right.X != 505 {
		t.Errorf("right zone interior edge: X = %d, want 505", right.X)
	}
	if right.Right() != 980 {
		t.Errorf("right zone screen edge: Right = %d, want 980", right.Right())
	}
}

func TestApplyGapsCollapsedZoneRecentered(t *testing.T) {
	// With gaps larger than a narrow zone can absorb, the zone is replaced
	// by a minimum box inside its original bounds instead of overlapping a
	// neighbor.
	screen := geometry.NewRect(0, 0, 300, 1000)
	zones := []geometry.Rect{
		geometry.NewRect(0, 0, 150, 1000),
		geometry.NewRect(150, 0, 150, 1000),
	}
	out := ApplyGaps(zones, screen, 40, 40)

	for i, z := range out {
		orig := zones[i]
		if z.Width > orig.Width || z.X < orig.X || z.Right() > orig.Right() {
			t.Errorf("zone[%d] escapes original bounds: %v vs %v", i, z, orig)
		}
	}
}

func TestApplyGapsZeroGaps(t *testing.T) {
	screen := geometry.NewRect(0, 0, 1920, 1080)
	zones := []geometry.Rect{
		geometry.NewRect(0, 0, 960, 1080),
		geometry.NewRect(960, 0, 960, 1080),
	}
	out := ApplyGaps(zones, screen, 0, 0)
	for i := range zones {
		if out[i] != zones[i] {
			t.Errorf("zone[%d] changed with zero gaps: %v", i, out[i])
		}
	}
}

func TestApplyGapsEmpty(t *testing.T) {
	if got := ApplyGaps(nil, geometry.NewRect(0, 0, 100, 100), 8, 8); got != nil {
		t.Errorf("ApplyGaps(nil) = %v, want nil", got)
	}
}
