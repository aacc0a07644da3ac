// Package server exposes the engine over a local HTTP control API.
//
// The API is a reference host surface: external tools inspect and drive the
// engine with JSON over HTTP. All engine access goes through the engine's own
// mutex, so handlers can run on chi's per-request goroutines without extra
// coordination.
//
// # Routes
//
//	GET    /v1/config                  current configuration
//	PUT    /v1/config                  replace configuration (clamped)
//	GET    /v1/algorithms              registered algorithms
//	GET    /v1/screens                 tracked screens
//	GET    /v1/screens/{name}/zones    window/zone assignments of one screen
//	POST   /v1/windows                 open a window {"id": ..., "screen": ...}
//	DELETE /v1/windows/{id}            close a window
//	POST   /v1/actions/{verb}          invoke an engine operation
package server

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tilekit/tilekit/pkg/config"
	"github.com/tilekit/tilekit/pkg/engine"
	"github.com/tilekit/tilekit/pkg/errors"
	"github.com/tilekit/tilekit/pkg/layout"
)

// Server wires the engine and registry into an http.Handler.
type Server struct {
	engine   *engine.Engine
	registry *layout.Registry
	logger   *log.Logger
	router   chi.Router
}

// New creates a control API server around an engine and its registry. A nil
// logger falls back to log.Default().
func New(eng *engine.Engine, registry *layout.Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{engine: eng, registry: registry, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/screens", s.handleScreens)
		r.Get("/screens/{name}/zones", s.handleZones)
		r.Post("/windows", s.handleOpenWindow)
		r.Delete("/windows/{id}", s.handleCloseWindow)
		r.Post("/actions/{verb}", s.handleAction)
	})
	return r
}

// =============================================================================
// Config
// =============================================================================

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, s.engine.Config())
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding config body"))
		return
	}
	s.engine.ApplyConfig(cfg)
	s.respond(w, http.StatusOK, s.engine.Config())
}

// =============================================================================
// Algorithms
// =============================================================================

type algorithmInfo struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Icon                string `json:"icon,omitempty"`
	SupportsMasterCount bool   `json:"supports_master_count"`
	SupportsSplitRatio  bool   `json:"supports_split_ratio"`
	Active              bool   `json:"active"`
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	active := s.engine.Algorithm()
	algs := s.registry.AllAlgorithms()
	out := make([]algorithmInfo, 0, len(algs))
	for _, alg := range algs {
		out = append(out, algorithmInfo{
			ID:                  alg.ID(),
			Name:                alg.Name(),
			Description:         alg.Description(),
			Icon:                alg.Icon(),
			SupportsMasterCount: alg.SupportsMasterCount(),
			SupportsSplitRatio:  alg.SupportsSplitRatio(),
			Active:              alg.ID() == active,
		})
	}
	s.respond(w, http.StatusOK, map[string]any{"algorithms": out})
}

// =============================================================================
// Screens and Windows
// =============================================================================

func (s *Server) handleScreens(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{
		"screens": s.engine.Screens(),
		"focused": s.engine.FocusedScreen(),
		"enabled": s.engine.Enabled(),
	})
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !slices.Contains(s.engine.Screens(), name) {
		s.respondError(w, errors.New(errors.ErrCodeScreenNotFound, "no state for screen %q", name))
		return
	}
	assignments := s.engine.Assignments(name)
	if assignments == nil {
		assignments = []engine.Assignment{}
	}
	s.respond(w, http.StatusOK, map[string]any{
		"screen":      name,
		"windows":     s.engine.TiledWindows(name),
		"assignments": assignments,
	})
}

type openWindowRequest struct {
	ID     string `json:"id"`
	Screen string `json:"screen"`
}

func (s *Server) handleOpenWindow(w http.ResponseWriter, r *http.Request) {
	var req openWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding window body"))
		return
	}
	if err := errors.ValidateWindowID(req.ID); err != nil {
		s.respondError(w, err)
		return
	}
	if err := errors.ValidateScreenName(req.Screen); err != nil {
		s.respondError(w, err)
		return
	}
	s.engine.WindowOpened(req.ID, req.Screen)
	s.respond(w, http.StatusCreated, map[string]any{"id": req.ID, "screen": req.Screen})
}

func (s *Server) handleCloseWindow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := s.engine.WindowScreen(id); !ok {
		s.respondError(w, errors.New(errors.ErrCodeWindowNotFound, "window %q is not tiled", id))
		return
	}
	s.engine.WindowClosed(id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Actions
// =============================================================================

type actionRequest struct {
	Window string `json:"window,omitempty"`
	Other  string `json:"other,omitempty"`
	ID     string `json:"id,omitempty"`
	Screen string `json:"screen,omitempty"`
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	verb := chi.URLParam(r, "verb")

	var req actionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding action body"))
			return
		}
	}

	switch verb {
	case "retile":
		s.engine.Retile(req.Screen)
	case "enable":
		s.engine.SetEnabled(true)
	case "disable":
		s.engine.SetEnabled(false)
	case "set-algorithm":
		s.engine.SetAlgorithm(req.ID)
	case "swap":
		s.engine.SwapWindows(req.Window, req.Other)
	case "promote":
		s.engine.PromoteToMaster(req.Window)
	case "demote":
		s.engine.DemoteFromMaster(req.Window)
	case "rotate":
		s.engine.RotateWindowOrder(true)
	case "rotate-back":
		s.engine.RotateWindowOrder(false)
	case "float-toggle":
		s.engine.ToggleFocusedWindowFloat()
	case "focus-next":
		s.engine.FocusNext()
	case "focus-previous":
		s.engine.FocusPrevious()
	case "focus-master":
		s.engine.FocusMaster()
	case "increase-ratio":
		s.engine.IncreaseMasterRatio()
	case "decrease-ratio":
		s.engine.DecreaseMasterRatio()
	case "increase-masters":
		s.engine.IncreaseMasterCount()
	case "decrease-masters":
		s.engine.DecreaseMasterCount()
	default:
		s.respondError(w, errors.New(errors.ErrCodeUnsupported, "unknown action %q", verb))
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"action": verb})
}

// =============================================================================
// Responses
// =============================================================================

func (s *Server) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	s.respond(w, statusFor(code), errorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeScreenNotFound,
		errors.ErrCodeWindowNotFound, errors.ErrCodeAlgorithmNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScreen,
		errors.ErrCodeInvalidWindow, errors.ErrCodeInvalidConfig,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
