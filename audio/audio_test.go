package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
)

func newTestRouter(t *testing.T) (*Router, *NullOutput, SoundID) {
	t.Helper()
	lib := NewLibrary(8000)
	id := lib.Add("blip", Tone{Wave: WaveSquare, Frequency: 440, Duration: 20 * time.Millisecond, Volume: 0.5})
	out := &NullOutput{}
	r := NewRouter(lib, out, nil)
	r.Register(id)
	return r, out, id
}

func TestIDForStable(t *testing.T) {
	assert.Equal(t, IDFor("jump"), IDFor("jump"))
	assert.NotEqual(t, IDFor("jump"), IDFor("land"))
}

func TestPlayRequiresRegistration(t *testing.T) {
	r, out, _ := newTestRouter(t)

	assert.False(t, r.Play(IDFor("unregistered")))
	assert.Equal(t, 0, out.Played())

	id := r.RegisterName("not-in-library")
	assert.True(t, r.Controls(id))
	assert.False(t, r.Play(id))
	assert.Equal(t, Stopped, r.State())
}

func TestPauseResumeNested(t *testing.T) {
	r, out, id := newTestRouter(t)

	require.True(t, r.Play(id))
	require.True(t, r.Play(id))
	assert.Equal(t, 2, out.Played())
	assert.Equal(t, Playing, r.State())

	r.Pause()
	r.Pause()
	assert.Equal(t, Paused, r.State())
	for _, v := range r.active {
		assert.True(t, v.ctrl.Paused)
	}

	r.Resume()
	assert.Equal(t, Paused, r.State())

	r.Resume()
	assert.Equal(t, Playing, r.State())
	for _, v := range r.active {
		assert.False(t, v.ctrl.Paused)
	}
}

func TestFinishedSoundsPruned(t *testing.T) {
	r, out, id := newTestRouter(t)
	require.True(t, r.Play(id))
	assert.Equal(t, 1, r.Active())

	out.Drain()
	assert.Equal(t, 0, r.Active())
	assert.Equal(t, Stopped, r.State())
}

func TestStopClearsPauses(t *testing.T) {
	r, _, id := newTestRouter(t)
	require.True(t, r.Play(id))
	r.Pause()

	r.Stop()
	assert.Equal(t, Stopped, r.State())
	assert.Equal(t, 0, r.Active())

	// Resume after stop is a no-op
	r.Resume()
	assert.Equal(t, Stopped, r.State())
}

func TestPlayWhilePausedStartsPaused(t *testing.T) {
	r, _, id := newTestRouter(t)
	r.Pause()
	require.True(t, r.Play(id))
	require.Len(t, r.active, 1)
	assert.True(t, r.active[0].ctrl.Paused)
}

func TestLibraryLoad(t *testing.T) {
	lib := NewLibrary(0)
	assert.Equal(t, DefaultSampleRate, lib.Rate())

	err := lib.Load([]config.ToneSpec{
		{Name: "hit", Wave: "noise", Frequency: 0, DurationMs: 50},
		{Name: "coin", Wave: "sine", Frequency: 880, DurationMs: 80, Volume: 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"coin", "hit"}, lib.Names())
	assert.True(t, lib.Has(IDFor("hit")))

	name, ok := lib.Name(IDFor("coin"))
	assert.True(t, ok)
	assert.Equal(t, "coin", name)

	err = lib.Load([]config.ToneSpec{{Name: "bad", Wave: "triangle"}})
	require.Error(t, err)
	e, ok := core.AsError(err)
	require.True(t, ok)
	v, _ := e.Detail("Wave")
	assert.Equal(t, "triangle", v)

	err = lib.Load([]config.ToneSpec{{Name: "endless", Wave: "square", Frequency: 220, DurationMs: 60000}})
	require.ErrorIs(t, err, core.ErrInvalidDocument)
	assert.False(t, lib.Has(IDFor("endless")))
}

func TestToneEnvelope(t *testing.T) {
	tone := Tone{Wave: WaveSine, Frequency: 100, Duration: 100 * time.Millisecond, Volume: 1}
	s := tone.Streamer(1000)

	buf := make([][2]float64, 200)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
		for _, smp := range buf[:n] {
			assert.LessOrEqual(t, smp[0], 1.0)
			assert.GreaterOrEqual(t, smp[0], -1.0)
		}
	}
	assert.Equal(t, 100, total)
}
