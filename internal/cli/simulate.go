package cli

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/pkg/config"
	"github.com/tilekit/tilekit/pkg/engine"
	"github.com/tilekit/tilekit/pkg/geometry"
	"github.com/tilekit/tilekit/pkg/layout"
)

// simScreen is the virtual screen the simulator drives. The pixel geometry is
// fixed; the diagram is normalized to the terminal size.
const simScreen = "SIM-1"

var simGeometry = geometry.NewRect(0, 0, 1920, 1080)

// newSimulateCmd creates the simulate command: an interactive terminal host
// that drives the engine through its inbound surface.
func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Interactive tiling simulator",
		Long: `Simulate runs a terminal host around the layout engine: windows are opened
and closed with keystrokes, and the engine's zone assignments are rendered
live. Useful for exploring algorithms and settings without a compositor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			registry := layout.NewRegistry(logger, layout.Builtins()...)

			cfg := config.Default()
			cfg.InnerGap = 16
			cfg.OuterGap = 16

			host := &simHost{}
			eng := engine.New(registry, host, cfg, logger)
			eng.SetDebounceInterval(50 * time.Millisecond)
			eng.ScreenGeometryChanged(simScreen, simGeometry)

			m := newSimModel(eng, registry, host)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// Host
// =============================================================================

// simHost records the engine's outbound focus requests so the simulator can
// play the host role and feed focus back in. Host callbacks must not call
// into the engine, so requests are taken after the engine call returns.
type simHost struct {
	mu           sync.Mutex
	focusRequest string
	hasRequest   bool
}

func (h *simHost) WindowTiled(string, geometry.Rect) {}
func (h *simHost) TilingChanged(string)              {}
func (h *simHost) EnabledChanged(bool)               {}
func (h *simHost) AlgorithmChanged(string)           {}

func (h *simHost) FocusWindowRequested(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focusRequest = id
	h.hasRequest = true
}

func (h *simHost) takeFocusRequest() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id, ok := h.focusRequest, h.hasRequest
	h.focusRequest, h.hasRequest = "", false
	return id, ok
}

// =============================================================================
// Model
// =============================================================================

type simTickMsg time.Time

// simModel is the bubbletea model wrapping the engine.
type simModel struct {
	engine   *engine.Engine
	registry *layout.Registry
	host     *simHost

	names   map[string]string // window id -> display name
	nextNum int
	focused string

	width  int
	height int
}

func newSimModel(eng *engine.Engine, registry *layout.Registry, host *simHost) simModel {
	return simModel{
		engine:   eng,
		registry: registry,
		host:     host,
		names:    make(map[string]string),
		nextNum:  1,
		width:    80,
		height:   24,
	}
}

func simTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return simTickMsg(t)
	})
}

func (m simModel) Init() tea.Cmd {
	return simTick()
}

func (m simModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case simTickMsg:
		// Debounced retiles land on the timer goroutine; the tick keeps the
		// view in sync with them.
		return m, simTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			m.openWindow()
		case "x":
			m.closeFocused()
		case "tab", "j":
			m.engine.FocusNext()
		case "shift+tab", "k":
			m.engine.FocusPrevious()
		case "m":
			m.engine.FocusMaster()
		case "p":
			m.engine.PromoteToMaster(m.focused)
		case "d":
			m.engine.DemoteFromMaster(m.focused)
		case "r":
			m.engine.RotateWindowOrder(true)
		case "R":
			m.engine.RotateWindowOrder(false)
		case "f":
			m.engine.ToggleFocusedWindowFloat()
		case "a":
			m.cycleAlgorithm()
		case "+", "=":
			m.engine.IncreaseMasterRatio()
		case "-":
			m.engine.DecreaseMasterRatio()
		case "]":
			m.engine.IncreaseMasterCount()
		case "[":
			m.engine.DecreaseMasterCount()
		case "g":
			m.adjustGaps(4)
		case "G":
			m.adjustGaps(-4)
		case "e":
			m.engine.SetEnabled(!m.engine.Enabled())
		}
		m.applyFocusRequest()
	}
	return m, nil
}

func (m *simModel) openWindow() {
	id := uuid.NewString()
	m.names[id] = fmt.Sprintf("w%d", m.nextNum)
	m.nextNum++
	m.engine.WindowOpened(id, simScreen)
}

func (m *simModel) closeFocused() {
	if m.focused == "" {
		return
	}
	delete(m.names, m.focused)
	m.engine.WindowClosed(m.focused)
	m.focused = ""
	if windows := m.engine.TiledWindows(simScreen); len(windows) > 0 {
		m.focused = windows[0]
		m.engine.WindowFocused(m.focused, simScreen)
	}
}

func (m *simModel) cycleAlgorithm() {
	ids := m.registry.AvailableAlgorithms()
	if len(ids) == 0 {
		return
	}
	current := m.engine.Algorithm()
	next := ids[0]
	for i, id := range ids {
		if id == current {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	m.engine.SetAlgorithm(next)
}

func (m *simModel) adjustGaps(delta int) {
	cfg := m.engine.Config()
	m.engine.SetInnerGap(cfg.InnerGap + delta)
	m.engine.SetOuterGap(cfg.OuterGap + delta)
}

// applyFocusRequest plays the host role: focus requests emitted by the last
// engine call are fed back in as focus events.
func (m *simModel) applyFocusRequest() {
	if id, ok := m.host.takeFocusRequest(); ok {
		m.focused = id
		m.engine.WindowFocused(id, simScreen)
	}
}

// =============================================================================
// View
// =============================================================================

func (m simModel) View() string {
	var b strings.Builder

	cfg := m.engine.Config()
	alg := m.registry.Algorithm(m.engine.Algorithm())

	b.WriteString(styleTitle.Render("tilekit simulate"))
	b.WriteString("  ")
	b.WriteString(styleDim.Render(simScreen + " " + simGeometry.String()))
	b.WriteString("\n")

	status := fmt.Sprintf("%s  ratio %.2f  masters %d  gaps %d/%d",
		alg.Name(), cfg.SplitRatio, cfg.MasterCount, cfg.InnerGap, cfg.OuterGap)
	if !m.engine.Enabled() {
		status += "  " + styleFocused.Render("[disabled]")
	}
	b.WriteString(styleValue.Render(status))
	b.WriteString("\n\n")

	cols := m.width - 2
	rows := m.height - 8
	if cols < 20 {
		cols = 20
	}
	if rows < 6 {
		rows = 6
	}

	assignments := m.engine.Assignments(simScreen)
	if len(assignments) == 0 {
		b.WriteString(styleDim.Render("  no tiled windows, press n to open one"))
		b.WriteString("\n")
	} else {
		rects := make([]geometry.RectF, len(assignments))
		labels := make([]string, len(assignments))
		for i, a := range assignments {
			rects[i] = geometry.Normalize(a.Zone, simGeometry)
			labels[i] = m.names[a.WindowID]
			if a.WindowID == m.focused {
				labels[i] = "*" + labels[i]
			}
		}
		b.WriteString(renderZoneDiagram(rects, cols, rows, labels))
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(
		"n new  x close  tab/j next  k prev  m master  p promote  d demote  r rotate\n" +
			"f float  a algorithm  +/- ratio  [/] masters  g/G gaps  e enable  q quit"))
	return b.String()
}
