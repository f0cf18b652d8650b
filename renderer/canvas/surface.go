// Package canvasrenderer implements the layout Canvas on top of
// github.com/tdewolff/canvas and its PDF backend.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/jmoore914/kotwords-minimal/fonts"
	"github.com/jmoore914/kotwords-minimal/layout"
)

// The layout engine works in points; canvas coordinates are millimeters.
const (
	ptToMm = 25.4 / 72.0
	mmToPt = 72.0 / 25.4
)

const pdfCreator = "crosspdf"

var transparent = color.RGBA{}

// Surface is a single-page drawing surface in points with a bottom-left
// origin, backed by a tdewolff canvas. It implements layout.Canvas.
type Surface struct {
	widthPt  float64
	heightPt float64
	c        *canvas.Canvas
	ctx      *canvas.Context

	family *canvas.FontFamily
	faceMu sync.Mutex
	faces  map[faceKey]*canvas.FontFace

	font      layout.Font
	size      float64
	fill      layout.Color
	stroke    layout.Color
	lineWidth float64

	// Shape calls accumulate here until a paint call flushes them.
	paths []pendingPath

	// Text object state in points: the current line origin and the in-line
	// cursor advanced by ShowText.
	lineX, lineY float64
	cursorX      float64

	title  string
	author string
}

type pendingPath struct {
	x, y float64 // millimeters
	path *canvas.Path
}

type faceKey struct {
	font layout.Font
	size float64
	fill layout.Color
}

var (
	_ layout.Canvas             = (*Surface)(nil)
	_ layout.DocumentInfoSetter = (*Surface)(nil)
)

// NewSurface creates a page of the given size in points and loads the four
// built-in font faces.
func NewSurface(widthPt, heightPt float64) (*Surface, error) {
	family := canvas.NewFontFamily("go")
	styles := []struct {
		style canvas.FontStyle
		name  string
	}{
		{canvas.FontRegular, "regular"},
		{canvas.FontBold, "bold"},
		{canvas.FontItalic, "italic"},
		{canvas.FontBold | canvas.FontItalic, "bolditalic"},
	}
	for _, s := range styles {
		data, err := fonts.Load(s.name)
		if err != nil {
			return nil, err
		}
		if err := family.LoadFont(data, 0, s.style); err != nil {
			return nil, fmt.Errorf("load built-in font %s: %w", s.name, err)
		}
	}

	c := canvas.New(widthPt*ptToMm, heightPt*ptToMm)
	return &Surface{
		widthPt:   widthPt,
		heightPt:  heightPt,
		c:         c,
		ctx:       canvas.NewContext(c),
		family:    family,
		faces:     make(map[faceKey]*canvas.FontFace),
		fill:      layout.Black,
		stroke:    layout.Black,
		lineWidth: 1,
	}, nil
}

func (s *Surface) PageWidth() float64  { return s.widthPt }
func (s *Surface) PageHeight() float64 { return s.heightPt }

// SetDocumentInfo records metadata for the PDF info dictionary.
func (s *Surface) SetDocumentInfo(title, author string) {
	s.title, s.author = title, author
}

// face returns a cached font face for the style, size and current fill
// color. Face construction parses font metrics, so reuse matters when the
// size search probes many candidates.
func (s *Surface) face(f layout.Font, size float64) *canvas.FontFace {
	s.faceMu.Lock()
	defer s.faceMu.Unlock()
	key := faceKey{font: f, size: size, fill: s.fill}
	if face, ok := s.faces[key]; ok {
		return face
	}
	style := canvas.FontRegular
	if f.Bold() {
		style = canvas.FontBold
	}
	if f.Italic() {
		style |= canvas.FontItalic
	}
	face := s.family.Face(size, rgba(s.fill), style, canvas.FontNormal)
	s.faces[key] = face
	return face
}

func (s *Surface) TextWidth(text string, f layout.Font, size float64) float64 {
	return s.face(f, size).TextWidth(text) * mmToPt
}

func (s *Surface) SetFont(f layout.Font, size float64) { s.font, s.size = f, size }
func (s *Surface) SetFillColor(c layout.Color)         { s.fill = c }
func (s *Surface) SetStrokeColor(c layout.Color)       { s.stroke = c }
func (s *Surface) SetLineWidth(w float64)              { s.lineWidth = w }

func (s *Surface) BeginText() {
	s.lineX, s.lineY, s.cursorX = 0, 0, 0
}

func (s *Surface) MoveText(dx, dy float64) {
	s.lineX += dx
	s.lineY += dy
	s.cursorX = s.lineX
}

func (s *Surface) ShowText(text string) {
	if text == "" {
		return
	}
	face := s.face(s.font, s.size)
	line := canvas.NewTextLine(face, text, canvas.Left)
	s.ctx.DrawText(s.cursorX*ptToMm, s.lineY*ptToMm, line)
	s.cursorX += s.TextWidth(text, s.font, s.size)
}

func (s *Surface) EndText() {}

func (s *Surface) Rect(x, y, w, h float64) {
	s.paths = append(s.paths, pendingPath{
		x:    x * ptToMm,
		y:    y * ptToMm,
		path: canvas.Rectangle(w*ptToMm, h*ptToMm),
	})
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo((x2-x1)*ptToMm, (y2-y1)*ptToMm)
	s.paths = append(s.paths, pendingPath{x: x1 * ptToMm, y: y1 * ptToMm, path: p})
}

func (s *Surface) Circle(cx, cy, r float64) {
	s.paths = append(s.paths, pendingPath{
		x:    (cx - r) * ptToMm,
		y:    (cy - r) * ptToMm,
		path: canvas.Circle(r * ptToMm),
	})
}

func (s *Surface) Fill()       { s.paint(true, false) }
func (s *Surface) Stroke()     { s.paint(false, true) }
func (s *Surface) FillStroke() { s.paint(true, true) }

// paint flushes the pending paths with the current colors. The unused
// aspect is painted transparent, which is how the canvas API expresses
// fill-only and stroke-only drawing.
func (s *Surface) paint(fill, stroke bool) {
	if fill {
		s.ctx.SetFillColor(rgba(s.fill))
	} else {
		s.ctx.SetFillColor(transparent)
	}
	if stroke {
		s.ctx.SetStrokeColor(rgba(s.stroke))
		s.ctx.SetStrokeWidth(s.lineWidth * ptToMm)
	} else {
		s.ctx.SetStrokeColor(transparent)
	}
	for _, p := range s.paths {
		s.ctx.DrawPath(p.x, p.y, p.path)
	}
	s.paths = s.paths[:0]
}

// Bytes renders the page into a PDF document.
func (s *Surface) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := pdf.New(&buf, s.widthPt*ptToMm, s.heightPt*ptToMm, nil)
	w.SetInfo(s.title, "", "", s.author, pdfCreator)
	s.c.RenderTo(w)
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func rgba(c layout.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}
