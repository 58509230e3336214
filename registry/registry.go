package registry

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/regolith/component"
	"github.com/lixenwraith/regolith/config"
	"github.com/lixenwraith/regolith/core"
	"github.com/lixenwraith/regolith/engine"
)

// Traits is the set of capabilities a builder attaches
type Traits uint8

const (
	Movable Traits = 1 << iota
	Collidable
	Drawable
	Interactable
	Audio
	Clickable
)

var traitNames = [...]string{"movable", "collidable", "drawable", "interactable", "audio", "clickable"}

// Has reports whether every trait in x is in t
func (t Traits) Has(x Traits) bool {
	return t&x == x
}

func (t Traits) String() string {
	var parts []string
	for i, name := range traitNames {
		if t&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// TraitsOf returns the traits attached to o
func TraitsOf(o *engine.Object) Traits {
	var t Traits
	if o.HasMovement() {
		t |= Movable
	}
	if o.HasCollision() {
		t |= Collidable
	}
	if o.HasTexture() {
		t |= Drawable
	}
	if o.HasInteraction() {
		t |= Interactable
	}
	if o.HasAudio() {
		t |= Audio
	}
	if o.HasClick() {
		t |= Clickable
	}
	return t
}

// BehaviorFactory allocates the behaviour of a fresh instance
type BehaviorFactory func() engine.Behavior

// Builder allocates objects of one type name
type Builder struct {
	Name        string
	Traits      Traits
	NewBehavior BehaviorFactory // nil for kinds without behaviour
}

// NewBuilder declares a type name with its trait set
func NewBuilder(name string, traits Traits, newBehavior BehaviorFactory) Builder {
	return Builder{Name: name, Traits: traits, NewBehavior: newBehavior}
}

// Instantiate allocates an unconfigured object with the declared traits
func (b Builder) Instantiate() *engine.Object {
	o := engine.NewObject(b.Name)
	if b.Traits.Has(Movable) {
		o.Movable = component.NewMovable(1)
	}
	if b.Traits.Has(Collidable) {
		o.Collidable = component.NewCollidable()
	}
	if b.Traits.Has(Drawable) {
		o.Drawable = component.NewDrawable(b.Name)
	}
	if b.Traits.Has(Interactable) {
		o.Interactable = component.NewInteractable()
	}
	if b.Traits.Has(Audio) {
		o.Audio = component.NewAudioEmitter()
	}
	if b.Traits.Has(Clickable) {
		o.Clickable = component.NewClickable()
	}
	if b.NewBehavior != nil {
		o.Behavior = b.NewBehavior()
	}
	return o
}

// Factory maps type names to builders
// Safe for concurrent use so scene documents can be built in parallel
type Factory struct {
	mu       sync.RWMutex
	builders map[string]Builder
	log      *zap.Logger
}

func NewFactory(log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{
		builders: make(map[string]Builder),
		log:      log,
	}
}

// Add registers a builder; a name can be registered once
func (f *Factory) Add(b Builder) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.builders[b.Name]; ok {
		return core.ConfigError("Factory.Add", "type name already registered", core.ErrDuplicateType).
			Fatal().With("TypeID", b.Name)
	}
	f.builders[b.Name] = b
	return nil
}

// Has reports whether a type name is registered
func (f *Factory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.builders[name]
	return ok
}

// Builder returns the builder for a type name
func (f *Factory) Builder(name string) (Builder, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	b, ok := f.builders[name]
	return b, ok
}

// Names returns registered type names, sorted
func (f *Factory) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.builders))
	for name := range f.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build allocates and configures an object of type name
// The caller owns the result; it is not in any pool until spawned
func (f *Factory) Build(name string, spec *config.ObjectSpec, env *engine.Env) (*engine.Object, error) {
	b, ok := f.Builder(name)
	if !ok {
		err := core.ConfigError("Factory.Build", "no builder for type", core.ErrTypeNotFound).
			With("TypeID", name)
		f.log.Warn("build failed", zap.Object("error", err))
		return nil, err
	}

	o := b.Instantiate()
	if err := o.Configure(spec, env); err != nil {
		if e, ok := core.AsError(err); ok {
			f.log.Warn("configure failed", zap.Object("error", e))
		}
		return nil, err
	}
	return o, nil
}

// BuildSpec builds the type named by the document's resource type
func (f *Factory) BuildSpec(spec *config.ObjectSpec, env *engine.Env) (*engine.Object, error) {
	if spec == nil {
		return nil, core.ConfigError("Factory.BuildSpec", "missing object document", core.ErrInvalidDocument)
	}
	return f.Build(spec.ResourceType, spec, env)
}
