package constant

import "time"

// Frame Loop Timing
const (
	// FrameInterval is the target frame interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt handed to physics after a stall
	MaxFrameDelta = 100 * time.Millisecond
)

// Physics Defaults
const (
	// DefaultGravity is the downward acceleration in cells per second squared
	DefaultGravity = 30.0

	// DefaultDrag is the velocity-proportional damping coefficient
	DefaultDrag = 0.0
)

// Logging
const (
	LogDir         = "logs"
	LogFile        = "regolith.log"
	LogMaxFileSize = 10 * 1024 * 1024 // rotate above 10 MiB
)
