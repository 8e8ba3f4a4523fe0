package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewWithNilRegistryIsNoop(t *testing.T) {
	m := New(nil)
	// must not panic on any method
	m.StateTransition("Connected")
	m.FrameSent()
	m.FrameReceived()
	m.HeartbeatSent()
	m.PoolBytesUploaded(10)
}

func TestFrameSentIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.FrameSent()
	m.FrameSent()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var got float64
	for _, f := range families {
		if f.GetName() == "isovt_frames_sent_total" {
			for _, metric := range f.Metric {
				got = metric.GetCounter().GetValue()
			}
		}
	}
	if got != 2 {
		t.Fatalf("frames sent = %v, want 2", got)
	}
}
