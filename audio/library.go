package audio

import (
	"sort"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/constant"
	"github.com/lixenwraith/regolith/core"
)

// DefaultSampleRate is used when the engine document does not set one
const DefaultSampleRate = beep.SampleRate(constant.AudioSampleRate)

type entry struct {
	name string
	tone Tone
}

// Library holds the named sounds available to every context
type Library struct {
	mu     sync.RWMutex
	rate   beep.SampleRate
	sounds map[SoundID]entry
}

func NewLibrary(rate beep.SampleRate) *Library {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Library{rate: rate, sounds: make(map[SoundID]entry)}
}

// Rate returns the sample rate sounds are rendered at
func (l *Library) Rate() beep.SampleRate {
	return l.rate
}

// Add stores a tone under name, replacing any previous definition
func (l *Library) Add(name string, tone Tone) SoundID {
	id := IDFor(name)
	l.mu.Lock()
	l.sounds[id] = entry{name: name, tone: tone}
	l.mu.Unlock()
	return id
}

// Load adds the tones of a scene document
func (l *Library) Load(specs []config.ToneSpec) error {
	for _, s := range specs {
		wave, err := ParseWave(s.Wave)
		if err != nil {
			return core.ConfigError("Library.Load", "invalid sound", err).
				With("Sound", s.Name).With("Wave", s.Wave)
		}
		dur := time.Duration(s.DurationMs) * time.Millisecond
		if dur <= 0 || dur > constant.MaxToneDuration {
			return core.ConfigError("Library.Load", "sound duration out of range", core.ErrInvalidDocument).
				With("Sound", s.Name).With("DurationMs", s.DurationMs)
		}
		vol := s.Volume
		if vol == 0 {
			vol = 1
		}
		l.Add(s.Name, Tone{
			Wave:      wave,
			Frequency: s.Frequency,
			Duration:  dur,
			Volume:    vol,
		})
	}
	return nil
}

func (l *Library) Has(id SoundID) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.sounds[id]
	return ok
}

// Name returns the name a sound was added under
func (l *Library) Name(id SoundID) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.sounds[id]
	return e.name, ok
}

// Streamer renders a fresh streamer for the sound
func (l *Library) Streamer(id SoundID) (beep.Streamer, bool) {
	l.mu.RLock()
	e, ok := l.sounds[id]
	l.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return e.tone.Streamer(l.rate), true
}

// Names returns all sound names sorted
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.sounds))
	for _, e := range l.sounds {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}
