package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/event"
	"github.com/lixenwraith/regolith/physics"
)

// Env is the per-context state objects reach during configuration and frames
type Env struct {
	Tables  component.Tables
	Physics physics.Env
	Audio   *audio.Router
	Events  *event.Queue
	Log     *zap.Logger
	Frame   int64
}

// logger returns a usable logger for a possibly nil env
func (e *Env) logger() *zap.Logger {
	if e == nil || e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}
