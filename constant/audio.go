package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// MaxToneDuration bounds synthesized sound length
	MaxToneDuration = 5 * time.Second
)
