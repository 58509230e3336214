package render

import "github.com/lixenwraith/regolith/core"

// Blit is one recorded draw call
type Blit struct {
	Resource string
	Dst      core.Rect
	Rotation float64
}

// Recorder keeps the draw calls of the last frame
type Recorder struct {
	Blits  []Blit
	Frames int
}

func (r *Recorder) Clear() {
	r.Blits = r.Blits[:0]
}

func (r *Recorder) Blit(resource string, dst core.Rect, rotation float64) {
	r.Blits = append(r.Blits, Blit{Resource: resource, Dst: dst, Rotation: rotation})
}

func (r *Recorder) Show() {
	r.Frames++
}

// Resources returns the resource names in draw order
func (r *Recorder) Resources() []string {
	out := make([]string, len(r.Blits))
	for i, b := range r.Blits {
		out[i] = b.Resource
	}
	return out
}
