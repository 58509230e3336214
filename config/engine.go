package config

import (
	"time"

	"github.com/lixenwraith/regolith/constant"
	"github.com/lixenwraith/regolith/core"
)

// Engine is the process-wide document: logging, timing, physics, output
type Engine struct {
	Log     LogConfig     `yaml:"log"`
	Frame   FrameConfig   `yaml:"frame"`
	Physics PhysicsConfig `yaml:"physics"`
	Render  RenderConfig  `yaml:"render"`
	Audio   AudioConfig   `yaml:"audio"`
	Scenes  []string      `yaml:"scenes"`
	Start   string        `yaml:"start,omitempty"` // scene name; first scene when empty
}

type LogConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir,omitempty"`
}

type FrameConfig struct {
	Interval time.Duration `yaml:"interval"`
	MaxDelta time.Duration `yaml:"max_delta"`
}

type PhysicsConfig struct {
	Gravity Point   `yaml:"gravity"`
	Drag    float64 `yaml:"drag,omitempty"`
}

// RenderConfig scales world units to terminal cells and overrides glyphs
type RenderConfig struct {
	Scale   *Point               `yaml:"scale,omitempty"`
	Palette map[string]GlyphSpec `yaml:"palette,omitempty"`
}

// GlyphSpec draws a resource as one rune; colors are tcell color names or #rrggbb
type GlyphSpec struct {
	Rune string `yaml:"rune"`
	Fg   string `yaml:"fg,omitempty"`
	Bg   string `yaml:"bg,omitempty"`
	Bold bool   `yaml:"bold,omitempty"`
}

type AudioConfig struct {
	Enabled    bool          `yaml:"enabled"`
	SampleRate int           `yaml:"sample_rate"`
	Buffer     time.Duration `yaml:"buffer"`
}

// DefaultEngine returns the settings used for fields a document leaves out
func DefaultEngine() Engine {
	return Engine{
		Log: LogConfig{Level: "info", Dir: constant.LogDir},
		Frame: FrameConfig{
			Interval: constant.FrameInterval,
			MaxDelta: constant.MaxFrameDelta,
		},
		Physics: PhysicsConfig{
			Gravity: Point{0, constant.DefaultGravity},
			Drag:    constant.DefaultDrag,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: constant.AudioSampleRate,
			Buffer:     constant.AudioBufferDuration,
		},
	}
}

// Validate checks ranges the engine depends on
func (e *Engine) Validate() error {
	invalid := func(field string, value any) error {
		return core.ConfigError("Engine.Validate", "invalid engine setting", core.ErrInvalidDocument).
			With("Field", field).With("Value", value)
	}
	switch e.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", e.Log.Level)
	}
	if e.Frame.Interval <= 0 {
		return invalid("frame.interval", e.Frame.Interval)
	}
	if e.Frame.MaxDelta < e.Frame.Interval {
		return invalid("frame.max_delta", e.Frame.MaxDelta)
	}
	if e.Physics.Drag < 0 {
		return invalid("physics.drag", e.Physics.Drag)
	}
	if e.Audio.Enabled && e.Audio.SampleRate <= 0 {
		return invalid("audio.sample_rate", e.Audio.SampleRate)
	}
	if e.Audio.Enabled && e.Audio.Buffer <= 0 {
		return invalid("audio.buffer", e.Audio.Buffer)
	}
	if s := e.Render.Scale; s != nil && (s[0] <= 0 || s[1] <= 0) {
		return invalid("render.scale", *s)
	}
	for name, g := range e.Render.Palette {
		if len([]rune(g.Rune)) != 1 {
			return invalid("render.palette."+name, g.Rune)
		}
	}
	return nil
}
