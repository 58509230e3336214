package config

import "github.com/lixenwraith/regolith/vmath"

// Point is a two element [x, y] array in documents
type Point [2]float64

// Vec converts to a vector
func (p Point) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p[0], Y: p[1]}
}

// ObjectSpec is the document fragment describing one entity
// ResourceType selects the builder; trait sections apply only to traits the
// builder attaches
type ObjectSpec struct {
	ResourceType   string         `yaml:"resource_type"`
	Name           string         `yaml:"name,omitempty"`
	Position       *Point         `yaml:"position,omitempty"`
	Width          float64        `yaml:"width,omitempty"`
	Height         float64        `yaml:"height,omitempty"`
	Rotation       float64        `yaml:"rotation,omitempty"`
	Mass           *float64       `yaml:"mass,omitempty"`
	Velocity       *Point         `yaml:"velocity,omitempty"`
	Collision      *CollisionSpec `yaml:"collision,omitempty"`
	Texture        *TextureSpec   `yaml:"texture,omitempty"`
	Signals        []SignalSpec   `yaml:"signals,omitempty"`
	TriggerLimit   *int           `yaml:"trigger_limit,omitempty"`
	Sounds         []string       `yaml:"sounds,omitempty"`
	ClickableState string         `yaml:"clickable_state,omitempty"`
	Actions        []string       `yaml:"actions,omitempty"`
	Params         map[string]any `yaml:"params,omitempty"`
}

// CollisionSpec configures the collidable trait
type CollisionSpec struct {
	Team       string     `yaml:"team"`
	Type       string     `yaml:"type,omitempty"`
	Shape      *ShapeSpec `yaml:"shape,omitempty"`
	Active     *bool      `yaml:"active,omitempty"`
	Elasticity float64    `yaml:"elasticity,omitempty"`
}

// ShapeSpec describes a collision primitive relative to the entity position
// Kind is "box" (default) or "circle"; a zero box size uses the entity size
type ShapeSpec struct {
	Kind   string  `yaml:"kind,omitempty"`
	Offset *Point  `yaml:"offset,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
}

// TextureSpec configures the drawable trait
type TextureSpec struct {
	Resource string      `yaml:"resource"`
	Clip     *[4]float64 `yaml:"clip,omitempty"`
	Visible  *bool       `yaml:"visible,omitempty"`
}

// SignalSpec is one signal emitted when an interactable triggers
type SignalSpec struct {
	Kind   string         `yaml:"kind"`
	Target string         `yaml:"target,omitempty"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Param returns a named builder parameter
func (s *ObjectSpec) Param(key string) (any, bool) {
	if s == nil || s.Params == nil {
		return nil, false
	}
	v, ok := s.Params[key]
	return v, ok
}

// FloatParam returns a numeric parameter or def when absent or not numeric
func (s *ObjectSpec) FloatParam(key string, def float64) float64 {
	v, ok := s.Param(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// StringParam returns a string parameter or def when absent
func (s *ObjectSpec) StringParam(key, def string) string {
	v, ok := s.Param(key)
	if !ok {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return def
}
