package canvasrenderer

import (
	"github.com/jmoore914/kotwords-minimal/layout"
	"github.com/jmoore914/kotwords-minimal/puzzle"
	"github.com/jmoore914/kotwords-minimal/renderer"
)

// Renderer renders puzzles to single-page US Letter PDFs.
type Renderer struct {
	opts layout.Options
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer returns a PDF renderer with the given layout options.
func NewRenderer(opts layout.Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render implements renderer.Renderer.
func (r *Renderer) Render(p *puzzle.Puzzle) ([]byte, error) {
	surface, err := NewSurface(layout.PageWidth, layout.PageHeight)
	if err != nil {
		return nil, err
	}
	return layout.Render(p, surface, r.opts)
}
