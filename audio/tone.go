package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

var waveNames = map[string]Wave{
	"":       WaveSine,
	"sine":   WaveSine,
	"square": WaveSquare,
	"saw":    WaveSaw,
	"noise":  WaveNoise,
}

// ParseWave resolves a document wave name
func ParseWave(name string) (Wave, error) {
	w, ok := waveNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown wave %q", name)
	}
	return w, nil
}

// Tone is a synthesized effect: one oscillator under an attack/release envelope
type Tone struct {
	Wave      Wave
	Frequency float64
	Duration  time.Duration
	Volume    float64 // linear gain, 0 is silent, 1 is unity
}

const (
	toneAttack  = 5 * time.Millisecond
	toneRelease = 30 * time.Millisecond
)

// Streamer renders the tone at rate
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	n := rate.N(t.Duration)
	osc := &oscillator{
		wave:    t.Wave,
		step:    t.Frequency / float64(rate),
		total:   n,
		attack:  rate.N(toneAttack),
		release: rate.N(toneRelease),
	}
	return newVolume(beep.Take(n, osc), t.Volume)
}

// newVolume maps linear gain onto the log2 volume effect; 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type oscillator struct {
	wave    Wave
	phase   float64
	step    float64
	pos     int
	total   int
	attack  int
	release int
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		var s float64
		switch o.wave {
		case WaveSine:
			s = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				s = 1
			} else {
				s = -1
			}
		case WaveSaw:
			s = 2 * (o.phase - 0.5)
		case WaveNoise:
			s = rand.Float64()*2 - 1
		}
		s *= o.envelope()

		samples[i][0] = s
		samples[i][1] = s

		o.pos++
		o.phase += o.step
		if o.phase >= 1 {
			o.phase -= 1
		}
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func (o *oscillator) envelope() float64 {
	if o.attack > 0 && o.pos < o.attack {
		return float64(o.pos) / float64(o.attack)
	}
	left := o.total - o.pos
	if o.release > 0 && left < o.release {
		if left < 0 {
			return 0
		}
		return float64(left) / float64(o.release)
	}
	return 1
}
