// Package renderer defines the boundary between the layout engine and
// concrete document backends.
package renderer

import "github.com/jmoore914/kotwords-minimal/puzzle"

// Renderer produces a finished document for a puzzle.
type Renderer interface {
	Render(p *puzzle.Puzzle) ([]byte, error)
}
