package gfx

import (
	"context"

	"github.com/kjkrol/magiebleue/pkg/input"
)

// Renderer owns the GL resources of a scene. Init runs once with the
// context current, Render once per frame and Close after the loop ends.
type Renderer interface {
	Init(w *Window) error
	Render(w *Window, keys input.KeySet, t float64)
	Close()
}

// RunRenderer drives r with the window loop. Close is called whenever Init
// was attempted, so resources created before an Init failure are released.
func (w *Window) RunRenderer(ctx context.Context, r Renderer) error {
	defer r.Close()
	if err := r.Init(w); err != nil {
		return err
	}
	w.Run(ctx, r.Render)
	return nil
}
