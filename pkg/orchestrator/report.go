package orchestrator

import (
	"time"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
)

// CycleReport summarizes one apply cycle
type CycleReport struct {
	Started  time.Time
	Duration time.Duration
	// Dirty lists the units that had pending edits when the cycle began
	Dirty      []string
	Applied    []string
	Suppressed []string
	Failed     map[string]error
	Reloaded   bool
	// ReloadError does not abort the restart phase
	ReloadError error
	Errors      *errors.ErrorCollection
}

func newCycleReport() *CycleReport {
	return &CycleReport{
		Started: time.Now(),
		Failed:  make(map[string]error),
		Errors:  errors.NewErrorCollection(),
	}
}

func (r *CycleReport) fail(name string, err error) {
	if de, ok := err.(*errors.DomainError); ok {
		de.WithContext("unit", name)
	}
	r.Failed[name] = err
	r.Errors.Add(err)
}

// Err returns the collected unit and reload errors, or nil
func (r *CycleReport) Err() error {
	return r.Errors.ToError()
}
