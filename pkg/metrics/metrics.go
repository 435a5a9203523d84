// Package metrics exports apply cycle, edit and unit state metrics for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/core-tools/hsu-srvcfg/pkg/errors"
	"github.com/core-tools/hsu-srvcfg/pkg/managed"
	"github.com/core-tools/hsu-srvcfg/pkg/orchestrator"
)

const namespace = "srvcfg"

// Edit results used as the "result" label
const (
	ResultAccepted   = "accepted"
	ResultInvalid    = "invalid"
	ResultConcurrent = "concurrent"
	ResultError      = "error"
)

// Metrics implements managed.Observer and orchestrator.Recorder
type Metrics struct {
	registry *prometheus.Registry

	cycles        prometheus.Counter
	cycleDuration prometheus.Histogram
	reloadErrors  prometheus.Counter
	unitFailures  *prometheus.CounterVec
	edits         *prometheus.CounterVec
	unitState     *prometheus.GaugeVec
	unitPort      *prometheus.GaugeVec
	unitPending   *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "apply_cycles_total",
			Help:      "Apply cycles that ran.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "apply_cycle_duration_seconds",
			Help:      "Duration of apply cycles.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		reloadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reload_errors_total",
			Help:      "Failed daemon reloads.",
		}),
		unitFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unit_apply_failures_total",
			Help:      "Units whose apply steps failed, by error type.",
		}, []string{"unit", "type"}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "Edit requests by property and result.",
		}, []string{"unit", "property", "result"}),
		unitState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unit_state",
			Help:      "Cached Masked, Enabled and Running values (1 = true).",
		}, []string{"unit", "property"}),
		unitPort: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unit_listen_port",
			Help:      "Cached listen port of socket units.",
		}, []string{"unit"}),
		unitPending: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unit_pending_edits",
			Help:      "Number of pending edits per unit.",
		}, []string{"unit"}),
	}

	m.registry.MustRegister(
		m.cycles,
		m.cycleDuration,
		m.reloadErrors,
		m.unitFailures,
		m.edits,
		m.unitState,
		m.unitPort,
		m.unitPending,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) UnitChanged(view managed.View) {
	m.unitState.WithLabelValues(view.Name, "masked").Set(boolValue(view.State.Masked))
	m.unitState.WithLabelValues(view.Name, "enabled").Set(boolValue(view.State.Enabled))
	m.unitState.WithLabelValues(view.Name, "running").Set(boolValue(view.State.Running))
	m.unitPending.WithLabelValues(view.Name).Set(float64(len(view.Pending.Fields())))
	if view.HasSocket {
		m.unitPort.WithLabelValues(view.Name).Set(float64(view.State.Port))
	}
}

func (m *Metrics) EditRequested(name string, edit managed.Edit, err error) {
	m.edits.WithLabelValues(name, edit.Field.String(), editResult(err)).Inc()
}

func (m *Metrics) CycleCompleted(report *orchestrator.CycleReport) {
	if len(report.Dirty) == 0 {
		return
	}
	m.cycles.Inc()
	m.cycleDuration.Observe(report.Duration.Seconds())
	if report.ReloadError != nil {
		m.reloadErrors.Inc()
	}
	for name, err := range report.Failed {
		m.unitFailures.WithLabelValues(name, string(errors.TypeOf(err))).Inc()
	}
}

func editResult(err error) string {
	switch {
	case err == nil:
		return ResultAccepted
	case errors.IsInvalidEditError(err), errors.IsValidationError(err):
		return ResultInvalid
	case errors.IsConcurrentEditError(err):
		return ResultConcurrent
	default:
		return ResultError
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

var (
	_ managed.Observer      = (*Metrics)(nil)
	_ orchestrator.Recorder = (*Metrics)(nil)
)
