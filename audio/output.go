package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output is the playback boundary
// Do runs fn while the output is not streaming so controls can be mutated
type Output interface {
	Play(s beep.Streamer)
	Do(fn func())
	Close()
}

// SpeakerOutput mixes into the system speaker
type SpeakerOutput struct {
	mixer *beep.Mixer
}

// NewSpeakerOutput initializes the speaker with the given buffer latency
func NewSpeakerOutput(rate beep.SampleRate, buffer time.Duration) (*SpeakerOutput, error) {
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, err
	}
	out := &SpeakerOutput{mixer: &beep.Mixer{}}
	speaker.Play(out.mixer)
	return out, nil
}

func (o *SpeakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

func (o *SpeakerOutput) Do(fn func()) {
	speaker.Lock()
	defer speaker.Unlock()
	fn()
}

func (o *SpeakerOutput) Close() {
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// NullOutput discards audio; streams are kept so callers can drain them
type NullOutput struct {
	mu      sync.Mutex
	streams []beep.Streamer
}

func (o *NullOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	o.streams = append(o.streams, s)
	o.mu.Unlock()
}

func (o *NullOutput) Do(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn()
}

func (o *NullOutput) Close() {
	o.mu.Lock()
	o.streams = nil
	o.mu.Unlock()
}

// Played returns how many streams were handed to the output
func (o *NullOutput) Played() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.streams)
}

// drainLimit bounds Drain for paused controls, which stream silence forever
const drainLimit = 1 << 14

// Drain streams every received streamer to completion
func (o *NullOutput) Drain() {
	o.mu.Lock()
	streams := o.streams
	o.streams = nil
	o.mu.Unlock()

	buf := make([][2]float64, 512)
	for _, s := range streams {
		for i := 0; i < drainLimit; i++ {
			n, ok := s.Stream(buf)
			if !ok || n == 0 {
				break
			}
		}
	}
}
