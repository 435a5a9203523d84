// Package orchestrator coalesces edits of all managed units into apply cycles:
// stop and reconfigure, a single daemon reload, then restart.
package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/logging"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
	"github.com/core-tools/hsu-srvcfg/pkg/systemd"
)

const DefaultDelay = 15 * time.Second

// Recorder is told about every finished cycle
type Recorder interface {
	CycleCompleted(report *CycleReport)
}

type Options struct {
	// Delay between the last accepted edit and the start of a cycle
	Delay    time.Duration
	Manager  systemd.UnitManager
	Registry *Registry
	Logger   logging.Logger
	Recorder Recorder
}

// Orchestrator owns the debounce timer and the in-flight flag
type Orchestrator struct {
	options Options
	logger  logging.Logger

	mutex      sync.Mutex
	ctx        context.Context
	timer      *time.Timer
	generation uint64
	inFlight   bool
	stopped    bool
	cycles     sync.WaitGroup
}

func New(options Options) *Orchestrator {
	if options.Delay <= 0 {
		options.Delay = DefaultDelay
	}
	if options.Registry == nil {
		options.Registry = NewRegistry()
	}
	logger := options.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Orchestrator{
		options: options,
		logger:  logger,
		ctx:     context.Background(),
	}
}

func (o *Orchestrator) Registry() *Registry {
	return o.options.Registry
}

// Start sets the context timer-driven cycles run with
func (o *Orchestrator) Start(ctx context.Context) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.ctx = ctx
	o.stopped = false
}

// Stop cancels a pending timer and waits for a running cycle to finish
func (o *Orchestrator) Stop() {
	o.mutex.Lock()
	o.stopped = true
	o.generation++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.mutex.Unlock()

	o.cycles.Wait()
	o.logger.Infof("Orchestrator stopped")
}

// InFlight reports whether an apply cycle is running
func (o *Orchestrator) InFlight() bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return o.inFlight
}

// Armed reports whether a cycle is scheduled
func (o *Orchestrator) Armed() bool {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	return o.timer != nil
}

// Admit implements managed.Scheduler
func (o *Orchestrator) Admit(admit func() (bool, error)) error {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	if o.inFlight {
		return errors.NewConcurrentEditError("apply cycle in flight, retry later", nil)
	}
	arm, err := admit()
	if err != nil {
		return err
	}
	if arm {
		o.rearmLocked()
	}
	return nil
}

func (o *Orchestrator) rearmLocked() {
	if o.stopped {
		return
	}
	if o.timer != nil {
		o.timer.Stop()
	}
	o.generation++
	generation := o.generation
	o.timer = time.AfterFunc(o.options.Delay, func() {
		o.fire(generation)
	})
	o.logger.Debugf("Apply timer armed, delay: %v", o.options.Delay)
}

func (o *Orchestrator) fire(generation uint64) {
	o.mutex.Lock()
	if generation != o.generation || o.stopped || o.inFlight {
		o.mutex.Unlock()
		return
	}
	o.timer = nil
	ctx := o.beginLocked()
	o.mutex.Unlock()

	o.finish(o.apply(ctx))
}

// beginLocked sets the in-flight flag
func (o *Orchestrator) beginLocked() context.Context {
	o.inFlight = true
	o.cycles.Add(1)
	return o.ctx
}

func (o *Orchestrator) finish(report *CycleReport) {
	o.mutex.Lock()
	o.inFlight = false
	o.mutex.Unlock()
	o.cycles.Done()

	if o.options.Recorder != nil {
		o.options.Recorder.CycleCompleted(report)
	}
}

// RunCycle cancels a pending timer and applies all pending edits now
func (o *Orchestrator) RunCycle(ctx context.Context) (*CycleReport, error) {
	o.mutex.Lock()
	if o.inFlight {
		o.mutex.Unlock()
		return nil, errors.NewConcurrentEditError("apply cycle in flight", nil)
	}
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.generation++
	o.beginLocked()
	o.mutex.Unlock()

	report := o.apply(ctx)
	o.finish(report)
	return report, nil
}

// apply runs the three phases over every dirty unit in registry order. A
// failing unit is skipped for the rest of the cycle; the others continue.
func (o *Orchestrator) apply(ctx context.Context) *CycleReport {
	report := newCycleReport()
	all := o.options.Registry.Units()

	o.logger.Infof("Starting apply cycle, units: %d", len(all))

	// Stop and reconfigure
	var ready []*managed.Unit
	for _, unit := range all {
		if !unit.Dirty() {
			continue
		}
		report.Dirty = append(report.Dirty, unit.Name())
		if unit.IsSuppressed() {
			o.logger.Infof("Skipping masked unit, unit: %s, pending: %s", unit.Name(), unit.Pending())
			report.Suppressed = append(report.Suppressed, unit.Name())
			continue
		}
		if err := unit.StopAndReconfigure(ctx); err != nil {
			o.logger.Errorf("Failed to apply settings, unit: %s, error: %v", unit.Name(), err)
			report.fail(unit.Name(), err)
			continue
		}
		ready = append(ready, unit)
	}

	if len(report.Dirty) == 0 {
		o.logger.Debugf("No pending edits, skipping reload")
		report.Duration = time.Since(report.Started)
		return report
	}
	if len(report.Dirty) == len(report.Suppressed) {
		o.logger.Infof("Only masked units pending, skipping reload, suppressed: %d", len(report.Suppressed))
		report.Duration = time.Since(report.Started)
		return report
	}

	// Reload once, after every override is written and before any restart
	if err := o.options.Manager.Reload(ctx); err != nil {
		o.logger.Errorf("Failed to reload unit manager, error: %v", err)
		report.ReloadError = err
		report.Errors.Add(err)
	} else {
		report.Reloaded = true
	}

	// Restart
	for _, unit := range ready {
		if err := unit.Restart(ctx); err != nil {
			o.logger.Errorf("Failed to restart unit, unit: %s, error: %v", unit.Name(), err)
			report.fail(unit.Name(), err)
			continue
		}
		report.Applied = append(report.Applied, unit.Name())
	}

	report.Duration = time.Since(report.Started)
	o.logger.Infof("Apply cycle done, applied: %d, failed: %d, suppressed: %d, duration: %v",
		len(report.Applied), len(report.Failed), len(report.Suppressed), report.Duration)
	return report
}

var _ managed.Scheduler = (*Orchestrator)(nil)
