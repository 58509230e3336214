package config

import "github.com/lixenwraith/regolith/core"

// Validate checks the structure of a scene document
// Name resolution (teams, types, resource types) happens when the scene is built
func (s *Scene) Validate() error {
	invalid := func(msg string) *core.Error {
		return core.ConfigError("Scene.Validate", msg, core.ErrInvalidDocument).With("Scene", s.Name)
	}
	if s.Name == "" {
		return invalid("scene has no name")
	}
	if len(s.Layers) == 0 {
		return invalid("scene has no layers")
	}
	seen := make(map[string]struct{}, len(s.Layers))
	for _, l := range s.Layers {
		if l.Name == "" {
			return invalid("layer has no name")
		}
		if _, dup := seen[l.Name]; dup {
			return core.ConfigError("Scene.Validate", "duplicate layer", core.ErrDuplicateLayer).
				With("Scene", s.Name).With("Layer", l.Name)
		}
		seen[l.Name] = struct{}{}
		if l.Width <= 0 || l.Height <= 0 {
			return invalid("layer size must be positive").With("Layer", l.Name)
		}
		for i, o := range l.Objects {
			if o.ResourceType == "" {
				return invalid("object has no resource_type").With("Layer", l.Name).With("Index", i)
			}
		}
	}
	for _, p := range s.Prototypes {
		if p.Name == "" || p.ResourceType == "" {
			return invalid("prototype needs name and resource_type").With("Prototype", p.Name)
		}
	}
	if s.Camera != nil {
		if _, ok := seen[s.Camera.Layer]; !ok {
			return core.ConfigError("Scene.Validate", "camera layer does not exist", core.ErrUnknownLayer).
				With("Scene", s.Name).With("Layer", s.Camera.Layer)
		}
	}
	return nil
}
