// Package scene turns scene documents into running contexts
package scene

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/audio"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/input"
	"github.com/lixenwraith/regolith/physics"
	"github.com/lixenwraith/regolith/registry"
	"github.com/lixenwraith/regolith/status"
	"github.com/lixenwraith/regolith/vmath"
)

// Deps are shared across every scene of the process
type Deps struct {
	Factory     *registry.Factory
	Sounds      *audio.Library
	Output      audio.Output
	Physics     physics.Env
	RenderScale vmath.Vec2 // zero means 1:1
	Metrics     *status.Registry
	Log         *zap.Logger
}

// Load builds a context from doc
// On error nothing of the partial context survives
func Load(doc *config.Scene, deps Deps) (*engine.Context, error) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Factory == nil {
		return nil, core.InvariantError("scene.Load", "no object factory", core.ErrTypeNotFound)
	}
	if deps.Sounds == nil {
		deps.Sounds = audio.NewLibrary(audio.DefaultSampleRate)
	}

	ctx, err := load(doc, deps)
	if err != nil {
		if e, ok := core.AsError(err); ok {
			e.With("Scene", doc.Name)
			deps.Log.Error("scene load failed", zap.Object("error", e))
		}
		return nil, err
	}
	deps.Log.Info("scene loaded",
		zap.String("scene", doc.Name),
		zap.String("context", ctx.ID.String()),
		zap.Int("objects", ctx.Pool().Len()),
		zap.Int("layers", len(doc.Layers)))
	return ctx, nil
}

func load(doc *config.Scene, deps Deps) (*engine.Context, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := deps.Sounds.Load(doc.Sounds); err != nil {
		return nil, err
	}

	mapping := input.DefaultMapping()
	if err := mapping.Configure(doc.Input); err != nil {
		return nil, err
	}

	ctx := engine.NewContext(doc.Name, engine.Deps{
		Sounds:  deps.Sounds,
		Output:  deps.Output,
		Mapping: mapping,
		Physics: deps.Physics,
		Metrics: deps.Metrics,
		Log:     deps.Log,
	})
	fail := func(err error) (*engine.Context, error) {
		ctx.Close()
		return nil, err
	}

	for _, name := range doc.Teams {
		ctx.Teams.Register(name)
	}
	for _, name := range doc.CollisionTypes {
		ctx.Types.Register(name)
	}
	for _, s := range doc.Sounds {
		ctx.Audio.RegisterName(s.Name)
	}

	if err := ctx.Collision.Configure(doc.Collision, ctx.Teams); err != nil {
		return fail(err)
	}
	ctx.Collision.Seal()

	for _, ls := range doc.Layers {
		l, err := ctx.AddLayer(ls.Name, ls.Width, ls.Height)
		if err != nil {
			return fail(err)
		}
		if ls.Position != nil {
			l.Position = ls.Position.Vec()
		}
		if ls.MovementScale != nil {
			l.MovementScale = ls.MovementScale.Vec()
		}
		if !deps.RenderScale.IsZero() {
			l.Camera().RenderScale = deps.RenderScale
		}
	}

	for i := range doc.Prototypes {
		spec := &doc.Prototypes[i]
		o, err := deps.Factory.BuildSpec(spec, ctx.Env())
		if err != nil {
			return fail(err)
		}
		ctx.AddPrototype(spec.Name, o)
	}

	for _, ls := range doc.Layers {
		for i := range ls.Objects {
			o, err := deps.Factory.BuildSpec(&ls.Objects[i], ctx.Env())
			if err != nil {
				if e, ok := core.AsError(err); ok {
					e.With("Layer", ls.Name)
				}
				return fail(err)
			}
			if _, err := ctx.Spawn(ls.Name, o); err != nil {
				return fail(err)
			}
		}
	}

	if doc.Camera != nil {
		if err := setupCamera(ctx, doc.Camera); err != nil {
			return fail(err)
		}
	}
	return ctx, nil
}

// setupCamera sizes every layer camera to the viewport and binds the lead follow target
func setupCamera(ctx *engine.Context, spec *config.CameraSpec) error {
	lead, err := ctx.Layer(spec.Layer)
	if err != nil {
		return err
	}
	ctx.SetLead(lead)

	if spec.Width > 0 && spec.Height > 0 {
		for _, l := range ctx.Layers() {
			cam := l.Camera()
			cam.Width, cam.Height = spec.Width, spec.Height
			cam.SetLimits(l.Bounds())
		}
	}

	if spec.Follow == "" {
		return nil
	}
	o, ok := ctx.Find(spec.Follow)
	if !ok || o.Layer() != lead {
		return core.LookupError("scene.setupCamera", "camera target not in lead layer", core.ErrInvalidDocument).
			With("Object", spec.Follow).With("Layer", spec.Layer)
	}
	lead.CameraFollow(o)
	return nil
}
