package layout

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewRegistryBuiltins(t *testing.T) {
	reg := NewRegistry(quietLogger(), Builtins()...)

	want := []string{MasterStackID, ColumnsID, RowsID, BSPID, MonocleID}
	got := reg.AvailableAlgorithms()
	if len(got) != len(want) {
		t.Fatalf("available = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("available[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if reg.DefaultAlgorithmID() != MasterStackID {
		t.Errorf("DefaultAlgorithmID() = %q, want %q", reg.DefaultAlgorithmID(), MasterStackID)
	}
	if reg.Default() == nil {
		t.Error("Default() = nil")
	}
}

func TestNewRegistryPriorityOrder(t *testing.T) {
	// Declarations register in ascending priority; ties keep declaration
	// order.
	decls := []Declaration{
		{ID: "c", Priority: 30, Factory: func() Algorithm { return NewColumns() }},
		{ID: "a", Priority: 10, Factory: func() Algorithm { return NewRows() }},
		{ID: "b1", Priority: 20, Factory: func() Algorithm { return NewBSP() }},
		{ID: "b2", Priority: 20, Factory: func() Algorithm { return NewMonocle() }},
	}
	reg := NewRegistry(quietLogger(), decls...)

	want := []string{"a", "b1", "b2", "c"}
	got := reg.AvailableAlgorithms()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("available[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegisterEmptyID(t *testing.T) {
	reg := NewRegistry(quietLogger())
	if reg.Register("", NewColumns()) {
		t.Error("Register with empty id succeeded")
	}
	if len(reg.AvailableAlgorithms()) != 0 {
		t.Error("empty-id registration left a residue")
	}
}

func TestRegisterSameInstanceTwice(t *testing.T) {
	reg := NewRegistry(quietLogger())
	alg := NewColumns()

	if !reg.Register("first", alg) {
		t.Fatal("initial registration failed")
	}
	// The same instance under a different id must be refused, leaving the
	// original registration intact.
	if reg.Register("second", alg) {
		t.Error("duplicate instance registration succeeded")
	}
	if reg.Has("second") {
		t.Error("refused registration still present")
	}
	if reg.Algorithm("first") != Algorithm(alg) {
		t.Error("original registration lost")
	}
}

func TestRegisterReplacesSameID(t *testing.T) {
	reg := NewRegistry(quietLogger())
	first := NewColumns()
	second := NewBSP()

	reg.Register("cols", first)
	reg.Register("other", NewRows())
	if !reg.Register("cols", second) {
		t.Fatal("replacement registration failed")
	}
	if reg.Algorithm("cols") != Algorithm(second) {
		t.Error("replacement did not take")
	}
	// Enumeration position is preserved.
	if got := reg.AvailableAlgorithms()[0]; got != "cols" {
		t.Errorf("first id = %q, want %q", got, "cols")
	}
}

func TestUnregister(t *testing.T) {
	reg := NewRegistry(quietLogger(), Builtins()...)

	if !reg.Unregister(RowsID) {
		t.Error("Unregister(rows) = false, want true")
	}
	if reg.Has(RowsID) {
		t.Error("rows still registered")
	}
	if reg.Unregister(RowsID) {
		t.Error("second Unregister(rows) = true, want false")
	}
	for _, id := range reg.AvailableAlgorithms() {
		if id == RowsID {
			t.Error("rows still enumerated")
		}
	}
}

func TestDefaultFallsBackToFirstRegistered(t *testing.T) {
	reg := NewRegistry(quietLogger())
	reg.Register("only", NewColumns())
	if got := reg.DefaultAlgorithmID(); got != "only" {
		t.Errorf("DefaultAlgorithmID() = %q, want %q", got, "only")
	}
}

func TestPreviewNormalized(t *testing.T) {
	reg := NewRegistry(quietLogger(), Builtins()...)

	rects := reg.Preview(ColumnsID, 4)
	if len(rects) != 4 {
		t.Fatalf("preview count = %d, want 4", len(rects))
	}
	for i, r := range rects {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > 1.000001 || r.Y+r.Height > 1.000001 {
			t.Errorf("rect[%d] outside unit square: %+v", i, r)
		}
		if r.Width < 0.24 || r.Width > 0.26 {
			t.Errorf("rect[%d].Width = %f, want ~0.25", i, r.Width)
		}
	}
}

func TestPreviewMonocleInset(t *testing.T) {
	reg := NewRegistry(quietLogger(), Builtins()...)

	rects := reg.Preview(MonocleID, 3)
	if len(rects) != 3 {
		t.Fatalf("preview count = %d, want 3", len(rects))
	}
	// Identical pixel zones must come back visually distinguishable.
	if rects[0] == rects[1] || rects[1] == rects[2] {
		t.Error("monocle preview rects not inset")
	}
	if rects[1].X <= rects[0].X || rects[2].X <= rects[1].X {
		t.Error("inset not diagonal")
	}
}

func TestPreviewUnknownAlgorithm(t *testing.T) {
	reg := NewRegistry(quietLogger(), Builtins()...)
	if got := reg.Preview("nope", 3); got != nil {
		t.Errorf("Preview(unknown) = %v, want nil", got)
	}
}
