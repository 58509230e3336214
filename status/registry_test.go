package status

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(FrameCount)
	a.Add(3)
	assert.Same(t, a, r.Ints.Get(FrameCount))
	assert.Equal(t, int64(3), r.Ints.Get(FrameCount).Load())
	assert.True(t, r.Ints.Has(FrameCount))
	assert.False(t, r.Ints.Has(SweepRemoved))
}

func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b")
	r.Ints.Get("a")
	r.Ints.Get("c")

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestSnapshotAndFields(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(CollisionContacts).Store(2)
	r.Floats.Get(FrameDelta).Set(0.5)
	assert.Equal(t, 1.5, r.Floats.Get(FrameDelta).Add(1))

	snap := r.Snapshot()
	assert.Equal(t, 2.0, snap[CollisionContacts])
	assert.Equal(t, 1.5, snap[FrameDelta])

	fields := r.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, CollisionContacts, fields[0].Key)
	assert.Equal(t, FrameDelta, fields[1].Key)
}

func TestPeakGauge(t *testing.T) {
	r := NewRegistry()
	peak := r.Floats.Get(FrameDeltaPeak)
	assert.Equal(t, 0.016, peak.Max(0.016))
	assert.Equal(t, 0.05, peak.Max(0.05))
	assert.Equal(t, 0.05, peak.Max(0.02))
	assert.Equal(t, []string{FrameDeltaPeak}, r.Floats.Keys())
}
