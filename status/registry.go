package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Frame metric names written by the engine context
const (
	FrameCount        = "frame.count"
	FrameDelta        = "frame.dt"
	FrameDeltaPeak    = "frame.dt.peak"
	CollisionPairs    = "collision.pairs"
	CollisionContacts = "collision.contacts"
	CollisionContains = "collision.containments"
	SweepRemoved      = "sweep.removed"
	EntitiesLive      = "entities.live"
	SignalsHandled    = "signals.handled"
)

// Registry groups integer counters and float gauges
// Phases cache the pointers at setup and write atomics each frame
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into one map, floats and ints side by side
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = float64(v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}

// Fields renders the metrics as zap fields in sorted order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		fields = append(fields, zap.Float64(key, v.Get()))
	})
	return fields
}
