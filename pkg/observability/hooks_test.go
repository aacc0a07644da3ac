package observability

import (
	"testing"
	"time"
)

type countingLayoutHooks struct {
	starts, completes int
}

func (h *countingLayoutHooks) OnLayoutStart(string, string, int) { h.starts++ }
func (h *countingLayoutHooks) OnLayoutComplete(string, string, int, time.Duration, error) {
	h.completes++
}

type countingEngineHooks struct {
	retiles, scheduled, fired int
}

func (h *countingEngineHooks) OnRetile(string, int) { h.retiles++ }
func (h *countingEngineHooks) OnDebounceScheduled() { h.scheduled++ }
func (h *countingEngineHooks) OnDebounceFired(int)  { h.fired++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Errorf("Layout() = %T, want NoopLayoutHooks", Layout())
	}
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Errorf("Engine() = %T, want NoopEngineHooks", Engine())
	}

	// No-ops must be safely callable.
	Layout().OnLayoutStart("master-stack", "DP-1", 3)
	Layout().OnLayoutComplete("master-stack", "DP-1", 3, time.Millisecond, nil)
	Engine().OnRetile("DP-1", 3)
	Engine().OnDebounceScheduled()
	Engine().OnDebounceFired(2)
}

func TestSetAndResetHooks(t *testing.T) {
	defer Reset()

	lh := &countingLayoutHooks{}
	eh := &countingEngineHooks{}
	SetLayoutHooks(lh)
	SetEngineHooks(eh)

	Layout().OnLayoutStart("bsp", "DP-1", 4)
	Layout().OnLayoutComplete("bsp", "DP-1", 4, time.Millisecond, nil)
	Engine().OnRetile("DP-1", 4)
	Engine().OnDebounceScheduled()
	Engine().OnDebounceFired(3)

	if lh.starts != 1 || lh.completes != 1 {
		t.Errorf("layout hooks = %d/%d, want 1/1", lh.starts, lh.completes)
	}
	if eh.retiles != 1 || eh.scheduled != 1 || eh.fired != 1 {
		t.Errorf("engine hooks = %d/%d/%d, want 1/1/1", eh.retiles, eh.scheduled, eh.fired)
	}

	Reset()
	Engine().OnRetile("DP-1", 4)
	if eh.retiles != 1 {
		t.Error("Reset did not restore no-op hooks")
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	lh := &countingLayoutHooks{}
	SetLayoutHooks(lh)
	SetLayoutHooks(nil)

	Layout().OnLayoutStart("rows", "DP-1", 2)
	if lh.starts != 1 {
		t.Error("nil registration replaced active hooks")
	}
}
