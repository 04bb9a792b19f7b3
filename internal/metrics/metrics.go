// Package metrics counts capture-wizard activity with Prometheus collectors.
//
// The client has no HTTP surface; the registry can be dumped in the text
// exposition format with WriteTextfile for node_exporter's textfile
// collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fitodo/fitodo/internal/capture"
)

// Recorder owns a registry and the wizard collectors. It implements
// capture.Observer.
type Recorder struct {
	registry *prometheus.Registry

	transitions  *prometheus.CounterVec
	sessions     prometheus.Counter
	attempts     prometheus.Counter
	attemptTimes prometheus.Histogram
	notices      *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fitodo",
				Subsystem: "capture",
				Name:      "transitions_total",
				Help:      "Wizard transitions by source stage, target stage and event",
			},
			[]string{"from", "to", "event"},
		),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitodo",
			Subsystem: "capture",
			Name:      "sessions_total",
			Help:      "Capture wizards mounted",
		}),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitodo",
			Subsystem: "capture",
			Name:      "attempts_finished_total",
			Help:      "Live test attempts finished",
		}),
		attemptTimes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fitodo",
			Subsystem: "capture",
			Name:      "attempt_duration_seconds",
			Help:      "Displayed duration of finished live test attempts",
			Buckets:   prometheus.LinearBuckets(5, 2.5, 8), // 5s to 22.5s
		}),
		notices: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fitodo",
				Subsystem: "host",
				Name:      "notices_total",
				Help:      "Notices shown by the host router by kind",
			},
			[]string{"kind"},
		),
	}

	r.registry.MustRegister(r.transitions, r.sessions, r.attempts, r.attemptTimes, r.notices)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveTransition implements capture.Observer.
func (r *Recorder) ObserveTransition(from, to capture.Stage, event capture.Event) {
	r.transitions.WithLabelValues(from.String(), to.String(), event.String()).Inc()
	if from == capture.StageLiveTest && to == capture.StageResults {
		r.attempts.Inc()
	}
}

// SessionStarted counts a mounted wizard.
func (r *Recorder) SessionStarted() { r.sessions.Inc() }

// AttemptFinished records the packaged attempt time.
func (r *Recorder) AttemptFinished(res capture.TestResults) {
	r.attemptTimes.Observe(res.Elapsed.Seconds())
}

// Notice counts a host notice; kind is "info" or "success".
func (r *Recorder) Notice(kind string) {
	r.notices.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the registry to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
