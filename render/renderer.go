package render

import "github.com/lixenwraith/regolith/core"

// Renderer is the drawing boundary the engine renders through
// Destination rectangles are already in camera space
type Renderer interface {
	Clear()
	Blit(resource string, dst core.Rect, rotation float64)
	Show()
}
