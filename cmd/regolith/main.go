package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/logging"
	"github.com/lixenwraith/regolith/objects"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/registry"
	"github.com/lixenwraith/regolith/render"
	"github.com/lixenwraith/regolith/scene"
	"github.com/lixenwraith/regolith/status"
	"github.com/lixenwraith/regolith/vmath"
)

var (
	configFlag = flag.String("config", "assets/engine.yaml", "Engine document")
	sceneFlag  = flag.String("scene", "", "Scene to start (name from the engine document)")
	debugFlag  = flag.Bool("debug", false, "Write JSON logs under the log directory")
	muteFlag   = flag.Bool("mute", false, "Disable audio output")
)

func main() {
	defer func() { core.HandleCrash(recover()) }()
	flag.Parse()

	cfg, err := config.LoadEngine(*configFlag)
	if err != nil {
		exitStartup(err)
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Debug: cfg.Log.Debug, Dir: cfg.Log.Dir})
	if err != nil {
		exitStartup(err)
	}
	defer logger.Close()
	log := logger.Logger

	scenes, err := config.LoadScenes(context.Background(), cfg.Scenes)
	if err != nil {
		exitStartup(err)
	}
	doc, err := pickScene(scenes, cfg.Start, *sceneFlag)
	if err != nil {
		exitStartup(err)
	}

	factory := registry.NewFactory(log.Named("factory"))
	if err := objects.Register(factory); err != nil {
		core.Fatal(log, err)
	}

	palette := render.DefaultPalette()
	if err := palette.Configure(cfg.Render.Palette); err != nil {
		exitStartup(err)
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	if rate <= 0 {
		rate = audio.DefaultSampleRate
	}
	sounds := audio.NewLibrary(rate)
	var out audio.Output = &audio.NullOutput{}
	if cfg.Audio.Enabled {
		if sp, err := audio.NewSpeakerOutput(rate, cfg.Audio.Buffer); err == nil {
			out = sp
		} else {
			log.Warn("audio unavailable, continuing muted", zap.Error(err))
		}
	}
	defer out.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		exitStartup(err)
	}
	if err := screen.Init(); err != nil {
		exitStartup(err)
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	scale := vmath.Vec2{}
	if cfg.Render.Scale != nil {
		scale = cfg.Render.Scale.Vec()
	}
	metrics := status.NewRegistry()
	director := scene.NewDirector(scenes, scene.Deps{
		Factory:     factory,
		Sounds:      sounds,
		Output:      out,
		Physics:     physics.Env{Gravity: cfg.Physics.Gravity.Vec(), Drag: cfg.Physics.Drag},
		RenderScale: scale,
		Metrics:     metrics,
		Log:         log,
	})
	if err := director.Push(doc.Name); err != nil {
		if core.IsRecoverable(err) {
			screen.Fini()
			exitStartup(err)
		}
		core.Fatal(log, err)
	}
	defer director.Close()

	g := &game{
		director: director,
		screen:   screen,
		renderer: &hud{TerminalRenderer: render.NewTerminalRenderer(screen, palette), metrics: metrics},
		frame:    cfg.Frame,
		log:      log,
	}
	g.run()
}

func exitStartup(err error) {
	if e, ok := core.AsError(err); ok {
		fmt.Fprint(os.Stderr, e.Elucidate())
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func pickScene(scenes []*config.Scene, start, override string) (*config.Scene, error) {
	want := start
	if override != "" {
		want = override
	}
	if len(scenes) == 0 {
		return nil, core.ConfigError("pickScene", "engine document lists no scenes", core.ErrInvalidDocument)
	}
	if want == "" {
		return scenes[0], nil
	}
	for _, s := range scenes {
		if s.Name == want {
			return s, nil
		}
	}
	return nil, core.LookupError("pickScene", "scene not found", core.ErrInvalidDocument).With("Scene", want)
}

// game owns the frame loop and the process-level actions
type game struct {
	director *scene.Director
	screen   tcell.Screen
	renderer *hud
	frame    config.FrameConfig
	log      *zap.Logger

	quit   bool
	paused bool
}

func (g *game) OnAction(a input.Action) {
	if !a.Pressed {
		return
	}
	switch a.Name {
	case input.ActionQuit:
		g.quit = true
	case input.ActionPause:
		top, ok := g.director.Top()
		if !ok {
			return
		}
		g.paused = !g.paused
		if g.paused {
			top.Blur()
		} else {
			top.Focus()
		}
		g.renderer.paused = g.paused
	}
}

func (g *game) run() {
	g.director.Listen(input.ActionQuit, g)
	g.director.Listen(input.ActionPause, g)

	events := make(chan tcell.Event, 64)
	go func() {
		defer func() { core.HandleCrash(recover()) }()
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(g.frame.Interval)
	defer ticker.Stop()
	last := time.Now()
	var frames int64

	for !g.quit && g.director.Len() > 0 {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				g.screen.Sync()
				continue
			}
			g.director.HandleEvent(ev)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > g.frame.MaxDelta {
				dt = g.frame.MaxDelta
			}
			if g.paused {
				dt = 0
			}
			if err := g.director.Frame(dt.Seconds(), g.renderer); err != nil {
				core.Fatal(g.log, err)
			}

			frames++
			if frames%300 == 0 {
				g.log.Debug("frame stats", g.renderer.metrics.Fields()...)
			}
		}
	}
	g.log.Info("quit", zap.Int64("frames", frames), zap.Int("depth", g.director.Len()))
}

// hud draws a status line over the frame before it is shown
type hud struct {
	*render.TerminalRenderer
	metrics *status.Registry
	paused  bool
}

func (h *hud) Show() {
	line := fmt.Sprintf(" frame %d  entities %d  contacts %d ",
		h.metrics.Ints.Get(status.FrameCount).Load()+1,
		h.metrics.Ints.Get(status.EntitiesLive).Load(),
		h.metrics.Ints.Get(status.CollisionContacts).Load())
	if h.paused {
		line += " PAUSED "
	}
	h.Text(0, 0, line, tcell.StyleDefault.Reverse(true))
	h.TerminalRenderer.Show()
}
