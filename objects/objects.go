// Package objects provides the concrete object kinds documents can name
package objects

import (
	"github.com/lixenwraith/regolith/engine"
	"github.com/lixenwraith/regolith/registry"
)

// Type names accepted in resource_type
const (
	TypeSprite  = "sprite"
	TypeBlock   = "block"
	TypePlayer  = "player"
	TypeBouncer = "bouncer"
	TypeHazard  = "hazard"
	TypeTrigger = "trigger"
	TypeRegion  = "region"
	TypeButton  = "button"
)

// Builders returns the builders of every kind in this package
func Builders() []registry.Builder {
	return []registry.Builder{
		registry.NewBuilder(TypeSprite, registry.Drawable, nil),
		registry.NewBuilder(TypeBlock, registry.Drawable|registry.Collidable, nil),
		registry.NewBuilder(TypePlayer,
			registry.Drawable|registry.Movable|registry.Collidable|registry.Audio,
			func() engine.Behavior { return NewPlayer() }),
		registry.NewBuilder(TypeBouncer,
			registry.Drawable|registry.Movable|registry.Collidable|registry.Audio,
			func() engine.Behavior { return &Bouncer{} }),
		registry.NewBuilder(TypeHazard,
			registry.Drawable|registry.Collidable|registry.Interactable,
			func() engine.Behavior { return &Toucher{} }),
		registry.NewBuilder(TypeTrigger,
			registry.Collidable|registry.Interactable,
			func() engine.Behavior { return &Toucher{Once: true} }),
		registry.NewBuilder(TypeRegion, registry.Collidable, nil),
		registry.NewBuilder(TypeButton,
			registry.Drawable|registry.Clickable|registry.Interactable,
			func() engine.Behavior { return &Button{} }),
	}
}

// Register adds every kind to f
func Register(f *registry.Factory) error {
	for _, b := range Builders() {
		if err := f.Add(b); err != nil {
			return err
		}
	}
	return nil
}
