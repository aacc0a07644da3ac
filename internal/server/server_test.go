package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tilekit/tilekit/pkg/config"
	"github.com/tilekit/tilekit/pkg/engine"
	"github.com/tilekit/tilekit/pkg/geometry"
	"github.com/tilekit/tilekit/pkg/layout"
)

func newTestServer() (*Server, *engine.Engine) {
	logger := log.New(io.Discard)
	reg := layout.NewRegistry(logger, layout.Builtins()...)
	cfg := config.Default()
	cfg.InnerGap = 0
	cfg.OuterGap = 0
	cfg.FocusNewWindows = false
	eng := engine.New(reg, nil, cfg, logger)
	return New(eng, reg, logger), eng
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetConfig(t *testing.T) {
	s, _ := newTestServer()

	rec := doJSON(t, s.Handler(), http.MethodGet, "/v1/config", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var cfg config.Config
	if err := json.NewDecoder(rec.Body).Decode(&cfg); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if cfg.AlgorithmID != layout.MasterStackID {
		t.Errorf("algorithm = %q, want %q", cfg.AlgorithmID, layout.MasterStackID)
	}
}

func TestPutConfigClamps(t *testing.T) {
	s, _ := newTestServer()

	body := map[string]any{"algorithm": layout.ColumnsID, "split_ratio": 5.0, "inner_gap": 999}
	rec := doJSON(t, s.Handler(), http.MethodPut, "/v1/config", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var cfg config.Config
	if err := json.NewDecoder(rec.Body).Decode(&cfg); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if cfg.AlgorithmID != layout.ColumnsID {
		t.Errorf("algorithm = %q, want columns", cfg.AlgorithmID)
	}
	if cfg.SplitRatio != layout.MaxSplitRatio {
		t.Errorf("split_ratio = %v, want %v", cfg.SplitRatio, layout.MaxSplitRatio)
	}
	if cfg.InnerGap != config.MaxGap {
		t.Errorf("inner_gap = %d, want %d", cfg.InnerGap, config.MaxGap)
	}
}

func TestPutConfigMalformed(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/v1/config", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAlgorithmsList(t *testing.T) {
	s, _ := newTestServer()

	rec := doJSON(t, s.Handler(), http.MethodGet, "/v1/algorithms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Algorithms []algorithmInfo `json:"algorithms"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.Algorithms) != 5 {
		t.Fatalf("algorithm count = %d, want 5", len(body.Algorithms))
	}
	if body.Algorithms[0].ID != layout.MasterStackID || !body.Algorithms[0].Active {
		t.Errorf("first algorithm = %+v, want active master-stack", body.Algorithms[0])
	}
}

func TestWindowLifecycleAndZones(t *testing.T) {
	s, eng := newTestServer()
	eng.ScreenGeometryChanged("DP-1", geometry.NewRect(0, 0, 1920, 1080))

	for _, id := range []string{"a", "b", "c"} {
		rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/windows",
			openWindowRequest{ID: id, Screen: "DP-1"})
		if rec.Code != http.StatusCreated {
			t.Fatalf("open %q: status = %d, want 201: %s", id, rec.Code, rec.Body)
		}
	}

	rec := doJSON(t, s.Handler(), http.MethodGet, "/v1/screens/DP-1/zones", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("zones: status = %d, want 200", rec.Code)
	}
	var body struct {
		Screen      string              `json:"screen"`
		Windows     []string            `json:"windows"`
		Assignments []engine.Assignment `json:"assignments"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.Assignments) != 3 {
		t.Fatalf("assignments = %d, want 3", len(body.Assignments))
	}
	if body.Assignments[0].Zone.Width != 1152 {
		t.Errorf("master width = %d, want 1152", body.Assignments[0].Zone.Width)
	}

	rec = doJSON(t, s.Handler(), http.MethodDelete, "/v1/windows/b", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("close: status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, s.Handler(), http.MethodDelete, "/v1/windows/b", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("double close: status = %d, want 404", rec.Code)
	}
}

func TestZonesUnknownScreen(t *testing.T) {
	s, _ := newTestServer()
	rec := doJSON(t, s.Handler(), http.MethodGet, "/v1/screens/nope/zones", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestOpenWindowValidation(t *testing.T) {
	s, _ := newTestServer()

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/windows",
		openWindowRequest{ID: "", Screen: "DP-1"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty id: status = %d, want 400", rec.Code)
	}
	rec = doJSON(t, s.Handler(), http.MethodPost, "/v1/windows",
		openWindowRequest{ID: "w", Screen: "DP/1"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad screen: status = %d, want 400", rec.Code)
	}
}

func TestActions(t *testing.T) {
	s, eng := newTestServer()
	eng.ScreenGeometryChanged("DP-1", geometry.NewRect(0, 0, 1920, 1080))
	eng.WindowOpened("a", "DP-1")
	eng.WindowOpened("b", "DP-1")

	rec := doJSON(t, s.Handler(), http.MethodPost, "/v1/actions/set-algorithm",
		actionRequest{ID: layout.MonocleID})
	if rec.Code != http.StatusOK {
		t.Fatalf("set-algorithm: status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if eng.Algorithm() != layout.MonocleID {
		t.Errorf("algorithm = %q, want monocle", eng.Algorithm())
	}

	rec = doJSON(t, s.Handler(), http.MethodPost, "/v1/actions/swap",
		actionRequest{Window: "a", Other: "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("swap: status = %d, want 200", rec.Code)
	}
	if got := eng.TiledWindows("DP-1"); got[0] != "b" {
		t.Errorf("order after swap = %v, want b first", got)
	}

	rec = doJSON(t, s.Handler(), http.MethodPost, "/v1/actions/disable", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("disable: status = %d", rec.Code)
	}
	if eng.Enabled() {
		t.Error("engine still enabled")
	}

	rec = doJSON(t, s.Handler(), http.MethodPost, "/v1/actions/defenestrate", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status = %d, want 400", rec.Code)
	}
}
