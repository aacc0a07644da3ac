package engine

import (
	"slices"

	"github.com/tilekit/tilekit/pkg/geometry"
	"github.com/tilekit/tilekit/pkg/layout"
)

// WindowNotFound is the sentinel returned by WindowPosition for unknown ids.
const WindowNotFound = -1

// State holds the tiling state of a single screen: the ordered window
// sequence, master parameters, focus, and the cached zone rectangles.
//
// The window order defines slot assignment: indices 0..masterCount-1 are the
// master slice, the remainder is the stack. The zone cache is parallel by
// index to the window sequence; after a successful recalculation
// len(CalculatedZones()) == WindowCount(), and on failure the previous cache
// is retained untouched.
//
// Mutating operations report whether they actually changed anything, so the
// engine can skip redundant retiles and notifications.
type State struct {
	screen      string
	geometry    geometry.Rect
	windows     []string
	masterCount int
	splitRatio  float64
	focusedID   string
	zones       []geometry.Rect
}

// NewState creates the state for a screen with the given defaults.
func NewState(screen string, masterCount int, splitRatio float64) *State {
	s := &State{screen: screen, masterCount: 1, splitRatio: layout.MinSplitRatio}
	s.SetMasterCount(masterCount)
	s.SetSplitRatio(splitRatio)
	return s
}

// Screen returns the screen name this state belongs to.
func (s *State) Screen() string { return s.screen }

// Geometry returns the screen rectangle used for layout.
func (s *State) Geometry() geometry.Rect { return s.geometry }

// SetGeometry updates the screen rectangle, reporting whether it changed.
func (s *State) SetGeometry(r geometry.Rect) bool {
	if s.geometry == r {
		return false
	}
	s.geometry = r
	return true
}

// TiledWindows returns a copy of the ordered window sequence.
func (s *State) TiledWindows() []string {
	return slices.Clone(s.windows)
}

// WindowCount returns the number of tiled windows.
func (s *State) WindowCount() int { return len(s.windows) }

// WindowPosition returns the slot index of id, or WindowNotFound.
func (s *State) WindowPosition(id string) int {
	if i := slices.Index(s.windows, id); i >= 0 {
		return i
	}
	return WindowNotFound
}

// HasWindow reports whether id is tiled on this screen.
func (s *State) HasWindow(id string) bool {
	return s.WindowPosition(id) != WindowNotFound
}

// AddWindow appends id to the end of the order. Returns false if the window
// is already present.
func (s *State) AddWindow(id string) bool {
	if s.HasWindow(id) {
		return false
	}
	s.windows = append(s.windows, id)
	return true
}

// InsertAfterFocused inserts id immediately after the focused window, or at
// the end when nothing is focused. Returns false if already present.
func (s *State) InsertAfterFocused(id string) bool {
	if s.HasWindow(id) {
		return false
	}
	pos := len(s.windows)
	if f := s.WindowPosition(s.focusedID); f != WindowNotFound {
		pos = f + 1
	}
	s.windows = slices.Insert(s.windows, pos, id)
	return true
}

// RemoveWindow removes id if present. The focus marker is cleared when the
// focused window is removed.
func (s *State) RemoveWindow(id string) bool {
	i := s.WindowPosition(id)
	if i == WindowNotFound {
		return false
	}
	s.windows = slices.Delete(s.windows, i, i+1)
	if s.focusedID == id {
		s.focusedID = ""
	}
	return true
}

// MoveToFront promotes id to position 0. Returns false if absent or already
// in front.
func (s *State) MoveToFront(id string) bool {
	return s.MoveToPosition(id, 0)
}

// MoveToPosition relocates id to pos (clamped to the valid range). Returns
// false if the window is absent or already at pos.
func (s *State) MoveToPosition(id string, pos int) bool {
	i := s.WindowPosition(id)
	if i == WindowNotFound {
		return false
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.windows)-1 {
		pos = len(s.windows) - 1
	}
	if i == pos {
		return false
	}
	s.windows = slices.Delete(s.windows, i, i+1)
	s.windows = slices.Insert(s.windows, pos, id)
	return true
}

// SwapWindowsByID exchanges the positions of a and b. Returns false if they
// are the same window or either is absent.
func (s *State) SwapWindowsByID(a, b string) bool {
	if a == b {
		return false
	}
	i, j := s.WindowPosition(a), s.WindowPosition(b)
	if i == WindowNotFound || j == WindowNotFound {
		return false
	}
	s.windows[i], s.windows[j] = s.windows[j], s.windows[i]
	return true
}

// Rotate shifts the window order cyclically by one slot. Clockwise moves the
// last window to the front; counter-clockwise moves the first to the back.
// Returns false with fewer than two windows.
func (s *State) Rotate(clockwise bool) bool {
	n := len(s.windows)
	if n < 2 {
		return false
	}
	if clockwise {
		last := s.windows[n-1]
		copy(s.windows[1:], s.windows[:n-1])
		s.windows[0] = last
	} else {
		first := s.windows[0]
		copy(s.windows[:n-1], s.windows[1:])
		s.windows[n-1] = first
	}
	return true
}

// MasterCount returns the number of master slots.
func (s *State) MasterCount() int { return s.masterCount }

// SetMasterCount clamps n to >= 1 and reports whether the value changed.
func (s *State) SetMasterCount(n int) bool {
	if n < 1 {
		n = 1
	}
	if n == s.masterCount {
		return false
	}
	s.masterCount = n
	return true
}

// SplitRatio returns the master/stack split ratio.
func (s *State) SplitRatio() float64 { return s.splitRatio }

// SetSplitRatio clamps r into [layout.MinSplitRatio, layout.MaxSplitRatio]
// and reports whether the value changed.
func (s *State) SetSplitRatio(r float64) bool {
	if r < layout.MinSplitRatio {
		r = layout.MinSplitRatio
	}
	if r > layout.MaxSplitRatio {
		r = layout.MaxSplitRatio
	}
	if r == s.splitRatio {
		return false
	}
	s.splitRatio = r
	return true
}

// FocusedWindow returns the focused window id, or "".
func (s *State) FocusedWindow() string { return s.focusedID }

// SetFocusedWindow records the focused window. Unknown ids clear the marker.
func (s *State) SetFocusedWindow(id string) bool {
	if id != "" && !s.HasWindow(id) {
		id = ""
	}
	if id == s.focusedID {
		return false
	}
	s.focusedID = id
	return true
}

// CalculatedZones returns the cached zone rectangles, parallel by index to
// TiledWindows. The slice is the cache itself; callers must not mutate it.
func (s *State) CalculatedZones() []geometry.Rect { return s.zones }

// SetCalculatedZones replaces the zone cache. The caller is responsible for
// keeping it aligned with the window sequence.
func (s *State) SetCalculatedZones(zones []geometry.Rect) {
	s.zones = zones
}
