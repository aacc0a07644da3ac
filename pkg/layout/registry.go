package layout

import (
	"sort"

	"github.com/charmbracelet/log"
)

// Registry owns the set of available algorithms, keyed by id, and preserves
// registration order for UI enumeration.
//
// The registry is an explicitly constructed instance: startup registration
// is driven by the declaration table passed to NewRegistry, sorted by
// ascending priority (ties keep declaration order). Register and Unregister
// are expected only from the orchestration goroutine; the registry performs
// no internal locking.
type Registry struct {
	logger     *log.Logger
	algorithms map[string]Algorithm
	order      []string
}

// NewRegistry builds a registry from the given declarations. Declarations
// are instantiated and registered in ascending priority order. A nil logger
// falls back to log.Default().
func NewRegistry(logger *log.Logger, decls ...Declaration) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	r := &Registry{
		logger:     logger,
		algorithms: make(map[string]Algorithm),
	}

	sorted := make([]Declaration, len(decls))
	copy(sorted, decls)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	for _, d := range sorted {
		if d.Factory == nil {
			r.logger.Warn("skipping algorithm declaration without factory", "id", d.ID)
			continue
		}
		r.Register(d.ID, d.Factory())
	}
	return r
}

// Register takes ownership of alg under id and reports whether the
// registration happened.
//
// An empty id discards the instance. An instance already registered under a
// different id is refused, leaving the original registration intact, so one
// instance is never owned by two ids. Registering a different instance under
// an existing id replaces (and releases) the old one in place, keeping its
// enumeration position.
func (r *Registry) Register(id string, alg Algorithm) bool {
	if alg == nil {
		return false
	}
	if id == "" {
		r.logger.Warn("discarding algorithm registered with empty id")
		return false
	}

	for existingID, existing := range r.algorithms {
		if existing == alg && existingID != id {
			r.logger.Warn("refusing duplicate registration of algorithm instance",
				"id", id, "registered_as", existingID)
			return false
		}
	}

	if existing, ok := r.algorithms[id]; ok {
		if existing == alg {
			return true
		}
		r.logger.Debug("replacing algorithm", "id", id)
		r.algorithms[id] = alg
		return true
	}

	r.algorithms[id] = alg
	r.order = append(r.order, id)
	return true
}

// Unregister removes and releases the algorithm under id, reporting whether
// anything was removed.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.algorithms[id]; !ok {
		return false
	}
	delete(r.algorithms, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Algorithm returns the algorithm registered under id, or nil.
func (r *Registry) Algorithm(id string) Algorithm {
	return r.algorithms[id]
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.algorithms[id]
	return ok
}

// AvailableAlgorithms returns the registered ids in insertion order.
func (r *Registry) AvailableAlgorithms() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AllAlgorithms returns the registered algorithms in insertion order.
func (r *Registry) AllAlgorithms() []Algorithm {
	out := make([]Algorithm, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.algorithms[id])
	}
	return out
}

// DefaultAlgorithmID returns the id of the stable default: master-stack if
// registered, otherwise the first registered algorithm, otherwise "".
func (r *Registry) DefaultAlgorithmID() string {
	if r.Has(MasterStackID) {
		return MasterStackID
	}
	if len(r.order) > 0 {
		return r.order[0]
	}
	return ""
}

// Default returns the default algorithm instance, or nil if the registry is
// empty.
func (r *Registry) Default() Algorithm {
	return r.algorithms[r.DefaultAlgorithmID()]
}
