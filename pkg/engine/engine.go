package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tilekit/tilekit/pkg/config"
	"github.com/tilekit/tilekit/pkg/errors"
	"github.com/tilekit/tilekit/pkg/geometry"
	"github.com/tilekit/tilekit/pkg/layout"
	"github.com/tilekit/tilekit/pkg/observability"
)

// Ratio and count steps applied by the adjustment operations.
const (
	ratioStep = 0.05
	countStep = 1
)

// Assignment pairs a window with the zone it should occupy.
type Assignment struct {
	WindowID string        `json:"window_id"`
	Zone     geometry.Rect `json:"zone"`
}

// Engine reacts to window and screen events, maintains per-screen tiling
// state, and emits window-to-rectangle assignments through its Host.
//
// All public methods are serialized by an internal mutex; see the package
// documentation for the concurrency model.
type Engine struct {
	mu       sync.Mutex
	logger   *log.Logger
	registry *layout.Registry
	host     Host
	cfg      config.Config

	enabled bool
	screens map[string]*State

	// windowScreen indexes tiled windows to their screen. It is updated on
	// insertion and cleared on removal inside the same operation, so a
	// window is a member of at most one screen's state at a time.
	windowScreen map[string]string

	// floating remembers windows floated out via ToggleFocusedWindowFloat,
	// keyed by window id to the screen they will re-enter.
	floating map[string]string

	focusedScreen string
	focusedWindow string

	debounce *debouncer
}

// New creates an engine using the given registry, host, and configuration.
// A nil host discards notifications; a nil logger falls back to
// log.Default(). The engine starts enabled.
func New(registry *layout.Registry, host Host, cfg config.Config, logger *log.Logger) *Engine {
	if host == nil {
		host = NoopHost{}
	}
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		logger:       logger,
		registry:     registry,
		host:         host,
		cfg:          cfg.Clamped(),
		enabled:      true,
		screens:      make(map[string]*State),
		windowScreen: make(map[string]string),
		floating:     make(map[string]string),
	}
	if !registry.Has(e.cfg.AlgorithmID) {
		e.logger.Warn("configured algorithm unknown, using default",
			"algorithm", e.cfg.AlgorithmID, "default", registry.DefaultAlgorithmID())
		e.cfg.AlgorithmID = registry.DefaultAlgorithmID()
	}
	e.debounce = newDebouncer(DefaultDebounceInterval, e.debouncedRetile)
	return e
}

// SetDebounceInterval changes the settings-retile quiet interval. Intended
// for hosts with unusual event rates and for tests.
func (e *Engine) SetDebounceInterval(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debounce = newDebouncer(d, e.debouncedRetile)
}

func (e *Engine) debouncedRetile(coalesced int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger.Debug("settings changed, retiling", "coalesced", coalesced)
	e.retileAll()
}

// =============================================================================
// Inbound Events
// =============================================================================

// WindowOpened tracks a new window on the named screen and retiles it. The
// insertion slot follows the configured insertion policy. Already-tracked
// windows no-op.
func (e *Engine) WindowOpened(windowID, screen string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := errors.ValidateWindowID(windowID); err != nil {
		e.logger.Warn("rejecting window", "err", err)
		return
	}
	if err := errors.ValidateScreenName(screen); err != nil {
		e.logger.Warn("rejecting screen", "err", err)
		return
	}
	if existing, ok := e.windowScreen[windowID]; ok {
		e.logger.Debug("window already tiled", "window", windowID, "screen", existing)
		return
	}
	delete(e.floating, windowID)

	st := e.stateFor(screen)
	var changed bool
	switch e.cfg.InsertionPolicy {
	case config.InsertAfterFocused:
		changed = st.InsertAfterFocused(windowID)
	case config.InsertAsMaster:
		changed = st.AddWindow(windowID)
		st.MoveToFront(windowID)
	default:
		changed = st.AddWindow(windowID)
	}
	if !changed {
		return
	}
	e.windowScreen[windowID] = screen
	e.retileScreen(screen)
	if e.cfg.FocusNewWindows {
		e.host.FocusWindowRequested(windowID)
	}
}

// WindowClosed stops tracking a window and retiles its screen.
func (e *Engine) WindowClosed(windowID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.floating, windowID)
	screen, ok := e.windowScreen[windowID]
	if !ok {
		e.logger.Debug("closed window was not tiled", "window", windowID)
		return
	}
	if st := e.screens[screen]; st != nil {
		st.RemoveWindow(windowID)
	}
	delete(e.windowScreen, windowID)
	if e.focusedWindow == windowID {
		e.focusedWindow = ""
	}
	e.retileScreen(screen)
}

// WindowFocused records host focus. Untracked (floating) windows still
// update the focus markers so float-toggling can find them.
func (e *Engine) WindowFocused(windowID, screen string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := errors.ValidateScreenName(screen); err != nil {
		e.logger.Warn("rejecting screen", "err", err)
		return
	}
	e.focusedScreen = screen
	e.focusedWindow = windowID
	if st := e.screens[screen]; st != nil {
		st.SetFocusedWindow(windowID)
	}
}

// ScreenGeometryChanged updates a screen's rectangle and retiles it. The
// state is created on first sight so geometry may arrive before windows.
func (e *Engine) ScreenGeometryChanged(screen string, geom geometry.Rect) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := errors.ValidateScreenName(screen); err != nil {
		e.logger.Warn("rejecting screen", "err", err)
		return
	}
	st := e.stateFor(screen)
	if st.SetGeometry(geom) {
		e.retileScreen(screen)
	}
}

// LayoutChanged retiles every tracked screen. Hosts call this on global
// layout invalidation (e.g. desktop switch).
func (e *Engine) LayoutChanged() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.retileAll()
}

// =============================================================================
// Enable / Algorithm Selection
// =============================================================================

// SetEnabled switches automatic tiling on or off. Enabling immediately
// retiles every tracked screen; disabling freezes current positions while
// preserving all state.
func (e *Engine) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if enabled == e.enabled {
		return
	}
	e.enabled = enabled
	e.host.EnabledChanged(enabled)
	if enabled {
		e.retileAll()
	}
}

// Enabled reports whether automatic tiling is active.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// SetAlgorithm selects the active algorithm. Unknown ids are substituted
// with the registry default (with a warning); selecting the current
// algorithm is a no-op.
func (e *Engine) SetAlgorithm(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.registry.Has(id) {
		def := e.registry.DefaultAlgorithmID()
		e.logger.Warn("unknown algorithm, using default", "algorithm", id, "default", def)
		id = def
	}
	if id == e.cfg.AlgorithmID {
		return
	}
	e.cfg.AlgorithmID = id
	e.host.AlgorithmChanged(id)
	e.retileAll()
}

// Algorithm returns the active algorithm id.
func (e *Engine) Algorithm() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.AlgorithmID
}

// =============================================================================
// Retiling
// =============================================================================

// Retile recomputes and applies the layout for one screen, or for every
// tracked screen when the name is empty.
func (e *Engine) Retile(screen string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if screen == "" {
		e.retileAll()
		return
	}
	if _, ok := e.screens[screen]; !ok {
		e.logger.Warn("retile for unknown screen", "screen", screen)
		return
	}
	e.retileScreen(screen)
}

func (e *Engine) retileAll() {
	for name := range e.screens {
		e.retileScreen(name)
	}
}

// retileScreen recomputes the layout and applies it. While tiling is
// disabled nothing is emitted and the existing cache stays frozen.
func (e *Engine) retileScreen(screen string) {
	if !e.enabled {
		return
	}
	st := e.screens[screen]
	if st == nil {
		return
	}
	if !e.recalculateLayout(st) {
		return
	}
	e.applyTiling(st)
	e.host.TilingChanged(screen)
	observability.Engine().OnRetile(screen, st.WindowCount())
}

// recalculateLayout resolves the active algorithm, computes zones, validates
// the count, applies gaps, and caches the result. On any failure the
// previous cache is retained untouched.
func (e *Engine) recalculateLayout(st *State) bool {
	count := st.WindowCount()
	if count == 0 {
		st.SetCalculatedZones(nil)
		return true
	}

	geom := st.Geometry()
	if !geom.IsValid() {
		e.logger.Debug("screen geometry not yet known", "screen", st.Screen())
		return false
	}

	alg := e.registry.Algorithm(e.cfg.AlgorithmID)
	if alg == nil {
		alg = e.registry.Default()
	}
	if alg == nil {
		e.logger.Error("no layout algorithm available")
		return false
	}

	params := layout.Params{MasterCount: st.MasterCount(), SplitRatio: st.SplitRatio()}
	start := time.Now()
	observability.Layout().OnLayoutStart(alg.ID(), st.Screen(), count)
	zones := alg.CalculateZones(count, geom, params)

	if len(zones) != count {
		err := errors.New(errors.ErrCodeZoneCountMismatch,
			"algorithm %q returned %d zones for %d windows", alg.ID(), len(zones), count)
		observability.Layout().OnLayoutComplete(alg.ID(), st.Screen(), count, time.Since(start), err)
		e.logger.Error("layout aborted", "err", err)
		return false
	}

	if !(e.cfg.SmartGaps && count == 1) {
		zones = layout.ApplyGaps(zones, geom, e.cfg.InnerGap, e.cfg.OuterGap)
	}
	st.SetCalculatedZones(zones)
	observability.Layout().OnLayoutComplete(alg.ID(), st.Screen(), count, time.Since(start), nil)
	return true
}

// applyTiling emits one WindowTiled notification per (window, zone) pair.
// The count check is repeated here; on mismatch nothing partial is emitted.
func (e *Engine) applyTiling(st *State) {
	windows := st.TiledWindows()
	zones := st.CalculatedZones()
	if len(windows) != len(zones) {
		e.logger.Error("window/zone count mismatch, not applying",
			"screen", st.Screen(), "windows", len(windows), "zones", len(zones))
		return
	}
	for i, id := range windows {
		e.host.WindowTiled(id, zones[i])
	}
}

// =============================================================================
// Window Order Operations
// =============================================================================

// SwapWindows exchanges the slots of two tiled windows on the same screen.
// Untracked windows and cross-screen pairs no-op.
func (e *Engine) SwapWindows(a, b string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sa, okA := e.windowScreen[a]
	sb, okB := e.windowScreen[b]
	if !okA || !okB {
		e.logger.Warn("swap with untracked window", "a", a, "b", b)
		return
	}
	if sa != sb {
		e.logger.Warn("refusing cross-screen swap", "a", a, "a_screen", sa, "b", b, "b_screen", sb)
		return
	}
	st := e.screens[sa]
	if !st.SwapWindowsByID(a, b) {
		return
	}
	if e.cfg.FocusFollowsSwap && e.focusedWindow == a {
		e.host.FocusWindowRequested(a)
	}
	e.retileScreen(sa)
}

// PromoteToMaster moves a window to slot 0 of its screen.
func (e *Engine) PromoteToMaster(windowID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	screen, ok := e.windowScreen[windowID]
	if !ok {
		e.logger.Warn("promote of untracked window", "window", windowID)
		return
	}
	if e.screens[screen].MoveToFront(windowID) {
		e.retileScreen(screen)
	}
}

// DemoteFromMaster moves a window out of the master slice into the first
// stack position. Windows already in the stack no-op.
func (e *Engine) DemoteFromMaster(windowID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	screen, ok := e.windowScreen[windowID]
	if !ok {
		e.logger.Warn("demote of untracked window", "window", windowID)
		return
	}
	st := e.screens[screen]
	pos := st.WindowPosition(windowID)
	if pos == WindowNotFound || pos >= st.MasterCount() {
		return
	}
	if st.MasterCount() > st.WindowCount()-1 {
		// No stack to demote into.
		return
	}
	if st.MoveToPosition(windowID, st.MasterCount()) {
		e.retileScreen(screen)
	}
}

// RotateWindowOrder cyclically shifts the focused screen's window order by
// one slot in the requested direction.
func (e *Engine) RotateWindowOrder(clockwise bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.screens[e.focusedScreen]
	if st == nil {
		e.logger.Debug("rotate with no focused screen")
		return
	}
	if st.Rotate(clockwise) {
		e.retileScreen(e.focusedScreen)
	}
}

// ToggleFocusedWindowFloat removes the focused window from tiling (handing
// it to the host's float policy) or re-inserts it if it was floated out
// earlier.
func (e *Engine) ToggleFocusedWindowFloat() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.focusedWindow
	if id == "" {
		e.logger.Debug("float toggle with no focused window")
		return
	}

	if screen, ok := e.windowScreen[id]; ok {
		// Tiled -> floating.
		e.screens[screen].RemoveWindow(id)
		delete(e.windowScreen, id)
		e.floating[id] = screen
		e.retileScreen(screen)
		return
	}

	screen, ok := e.floating[id]
	if !ok {
		e.logger.Debug("focused window neither tiled nor floated by us", "window", id)
		return
	}
	// Floating -> tiled, per the insertion policy.
	delete(e.floating, id)
	st := e.stateFor(screen)
	switch e.cfg.InsertionPolicy {
	case config.InsertAfterFocused:
		st.InsertAfterFocused(id)
	case config.InsertAsMaster:
		st.AddWindow(id)
		st.MoveToFront(id)
	default:
		st.AddWindow(id)
	}
	e.windowScreen[id] = screen
	e.retileScreen(screen)
}

// =============================================================================
// Focus Navigation
// =============================================================================

// FocusNext asks the host to activate the next window in the focused
// screen's order, wrapping around.
func (e *Engine) FocusNext() { e.focusByOffset(1) }

// FocusPrevious asks the host to activate the previous window, wrapping
// around.
func (e *Engine) FocusPrevious() { e.focusByOffset(-1) }

func (e *Engine) focusByOffset(offset int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.screens[e.focusedScreen]
	if st == nil || st.WindowCount() == 0 {
		return
	}
	windows := st.TiledWindows()
	n := len(windows)
	target := 0
	if cur := st.WindowPosition(st.FocusedWindow()); cur != WindowNotFound {
		target = ((cur+offset)%n + n) % n
	}
	e.host.FocusWindowRequested(windows[target])
}

// FocusMaster asks the host to activate the master window of the focused
// screen.
func (e *Engine) FocusMaster() {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.screens[e.focusedScreen]
	if st == nil || st.WindowCount() == 0 {
		return
	}
	e.host.FocusWindowRequested(st.TiledWindows()[0])
}

// =============================================================================
// Master Adjustments (global policy: every screen)
// =============================================================================

// IncreaseMasterRatio grows every screen's split ratio by one step.
func (e *Engine) IncreaseMasterRatio() { e.adjustRatio(ratioStep) }

// DecreaseMasterRatio shrinks every screen's split ratio by one step.
func (e *Engine) DecreaseMasterRatio() { e.adjustRatio(-ratioStep) }

func (e *Engine) adjustRatio(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := false
	for _, st := range e.screens {
		if st.SetSplitRatio(st.SplitRatio() + delta) {
			changed = true
		}
	}
	if changed {
		e.retileAll()
	}
}

// IncreaseMasterCount adds a master slot on every screen.
func (e *Engine) IncreaseMasterCount() { e.adjustMasterCount(countStep) }

// DecreaseMasterCount removes a master slot on every screen (floor 1).
func (e *Engine) DecreaseMasterCount() { e.adjustMasterCount(-countStep) }

func (e *Engine) adjustMasterCount(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := false
	for _, st := range e.screens {
		if st.SetMasterCount(st.MasterCount() + delta) {
			changed = true
		}
	}
	if changed {
		e.retileAll()
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config returns the current configuration.
func (e *Engine) Config() config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// ApplyConfig replaces the whole configuration, propagating changed defaults
// to every screen and scheduling one debounced retile.
func (e *Engine) ApplyConfig(cfg config.Config) {
	e.UpdateConfig(func(c *config.Config) { *c = cfg })
}

// UpdateConfig applies a mutation to the configuration. Values are clamped,
// unknown algorithm ids fall back to the default, ratio and master-count
// defaults propagate to every screen, and a retile is scheduled after the
// debounce quiet interval. Repeated calls within the interval coalesce into
// a single retile.
func (e *Engine) UpdateConfig(mutate func(*config.Config)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	old := e.cfg
	next := e.cfg
	mutate(&next)
	next = next.Clamped()

	if !e.registry.Has(next.AlgorithmID) {
		def := e.registry.DefaultAlgorithmID()
		e.logger.Warn("unknown algorithm in config, using default",
			"algorithm", next.AlgorithmID, "default", def)
		next.AlgorithmID = def
	}
	if next == old {
		return
	}
	e.cfg = next

	if next.AlgorithmID != old.AlgorithmID {
		e.host.AlgorithmChanged(next.AlgorithmID)
	}
	if next.SplitRatio != old.SplitRatio {
		for _, st := range e.screens {
			st.SetSplitRatio(next.SplitRatio)
		}
	}
	if next.MasterCount != old.MasterCount {
		for _, st := range e.screens {
			st.SetMasterCount(next.MasterCount)
		}
	}
	e.debounce.Schedule()
}

// Per-field configuration setters, one per Config field. Each schedules a
// debounced retile through UpdateConfig.

func (e *Engine) SetSplitRatio(r float64) { e.UpdateConfig(func(c *config.Config) { c.SplitRatio = r }) }
func (e *Engine) SetMasterCount(n int)    { e.UpdateConfig(func(c *config.Config) { c.MasterCount = n }) }
func (e *Engine) SetInnerGap(px int)      { e.UpdateConfig(func(c *config.Config) { c.InnerGap = px }) }
func (e *Engine) SetOuterGap(px int)      { e.UpdateConfig(func(c *config.Config) { c.OuterGap = px }) }
func (e *Engine) SetInsertionPolicy(p config.InsertionPolicy) {
	e.UpdateConfig(func(c *config.Config) { c.InsertionPolicy = p })
}
func (e *Engine) SetFocusNewWindows(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.FocusNewWindows = v })
}
func (e *Engine) SetFocusFollowsSwap(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.FocusFollowsSwap = v })
}
func (e *Engine) SetShowZoneNumbers(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.ShowZoneNumbers = v })
}
func (e *Engine) SetHighlightMaster(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.HighlightMaster = v })
}
func (e *Engine) SetMonocleHideOthers(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.MonocleHideOthers = v })
}
func (e *Engine) SetMonocleShowCount(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.MonocleShowCount = v })
}
func (e *Engine) SetSmartGaps(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.SmartGaps = v })
}
func (e *Engine) SetRespectMinimumSize(v bool) {
	e.UpdateConfig(func(c *config.Config) { c.RespectMinimumSize = v })
}

// =============================================================================
// Read Accessors
// =============================================================================

// Screens returns the tracked screen names, sorted.
func (e *Engine) Screens() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.screens))
	for name := range e.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TiledWindows returns the ordered window ids of a screen, or nil for
// unknown screens.
func (e *Engine) TiledWindows(screen string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.screens[screen]
	if st == nil {
		return nil
	}
	return st.TiledWindows()
}

// Assignments returns the (window, zone) pairs of a screen's current cache,
// in slot order. The result is empty until a successful recalculation.
func (e *Engine) Assignments(screen string) []Assignment {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.screens[screen]
	if st == nil {
		return nil
	}
	windows := st.TiledWindows()
	zones := st.CalculatedZones()
	if len(windows) != len(zones) {
		return nil
	}
	out := make([]Assignment, len(windows))
	for i := range windows {
		out[i] = Assignment{WindowID: windows[i], Zone: zones[i]}
	}
	return out
}

// WindowScreen returns the screen a window is tiled on.
func (e *Engine) WindowScreen(windowID string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	screen, ok := e.windowScreen[windowID]
	return screen, ok
}

// FocusedScreen returns the screen that most recently reported focus.
func (e *Engine) FocusedScreen() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focusedScreen
}

// stateFor returns the state for a screen, creating it with the configured
// defaults on first sight.
func (e *Engine) stateFor(screen string) *State {
	st, ok := e.screens[screen]
	if !ok {
		st = NewState(screen, e.cfg.MasterCount, e.cfg.SplitRatio)
		e.screens[screen] = st
	}
	return st
}
