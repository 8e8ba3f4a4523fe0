// Package metrics provides optional Prometheus instrumentation for the VT
// client. The client owns no process-wide registry — construction takes an
// explicit *prometheus.Registry, or nil to disable instrumentation
// entirely, matching the module's "own no process-wide resource"
// discipline (spec.md §5).
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics is a no-op-safe bundle of counters and gauges tracking VT
// client activity. A nil *Metrics (returned by New(nil)) is valid: every
// method is a no-op on a nil receiver.
type Metrics struct {
	stateTransitions  *prometheus.CounterVec
	framesSent        prometheus.Counter
	framesReceived    prometheus.Counter
	heartbeatsSent    prometheus.Counter
	poolBytesUploaded prometheus.Gauge
}

// New registers the VT client's metrics against reg and returns a Metrics
// bundle. If reg is nil, New returns nil and every method on the result
// is a safe no-op.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		return nil
	}
	m := &Metrics{
		stateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "isovt_state_transitions_total",
			Help: "Count of VT client state machine transitions by destination state.",
		}, []string{"state"}),
		framesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "isovt_frames_sent_total",
			Help: "Count of VT command frames sent.",
		}),
		framesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "isovt_frames_received_total",
			Help: "Count of VT frames received.",
		}),
		heartbeatsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "isovt_heartbeats_sent_total",
			Help: "Count of working-set maintenance messages sent.",
		}),
		poolBytesUploaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "isovt_pool_bytes_uploaded",
			Help: "Cumulative object-pool bytes successfully uploaded to the connected VT.",
		}),
	}
	reg.MustRegister(m.stateTransitions, m.framesSent, m.framesReceived, m.heartbeatsSent, m.poolBytesUploaded)
	return m
}

func (m *Metrics) StateTransition(state string) {
	if m == nil {
		return
	}
	m.stateTransitions.WithLabelValues(state).Inc()
}

func (m *Metrics) FrameSent() {
	if m == nil {
		return
	}
	m.framesSent.Inc()
}

func (m *Metrics) FrameReceived() {
	if m == nil {
		return
	}
	m.framesReceived.Inc()
}

func (m *Metrics) HeartbeatSent() {
	if m == nil {
		return
	}
	m.heartbeatsSent.Inc()
}

func (m *Metrics) PoolBytesUploaded(n float64) {
	if m == nil {
		return
	}
	m.poolBytesUploaded.Add(n)
}
