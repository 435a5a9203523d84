package orchestrator

import (
	"sync"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
)

// Registry holds the managed units in insertion order. It does not own them.
type Registry struct {
	mutex sync.RWMutex
	units []*managed.Unit
	index map[string]*managed.Unit
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*managed.Unit),
	}
}

// Add appends unit; names are unique
func (r *Registry) Add(unit *managed.Unit) error {
	if unit == nil {
		return errors.NewValidationError("unit cannot be nil", nil)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	name := unit.Name()
	if _, exists := r.index[name]; exists {
		return errors.NewConflictError("unit already registered", nil).WithContext("unit", name)
	}
	r.units = append(r.units, unit)
	r.index[name] = unit
	return nil
}

func (r *Registry) Get(name string) (*managed.Unit, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	unit, ok := r.index[name]
	return unit, ok
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Units returns a copy of the registry in insertion order
func (r *Registry) Units() []*managed.Unit {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]*managed.Unit(nil), r.units...)
}

func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	names := make([]string, len(r.units))
	for i, u := range r.units {
		names[i] = u.Name()
	}
	return names
}

func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.units)
}
