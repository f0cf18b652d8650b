package layout

import "fmt"

// Font selects one of the four built-in face styles.
type Font int

const (
	FontRegular Font = iota
	FontBold
	FontItalic
	FontBoldItalic
)

// Bold reports whether the face carries bold weight.
func (f Font) Bold() bool { return f == FontBold || f == FontBoldItalic }

// Italic reports whether the face is slanted.
func (f Font) Italic() bool { return f == FontItalic || f == FontBoldItalic }

// String returns the style name understood by the fonts package.
func (f Font) String() string {
	switch f {
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	case FontBoldItalic:
		return "bolditalic"
	default:
		return "regular"
	}
}

// fontFor maps an active bold/italic combination to a face.
func fontFor(bold, italic bool) Font {
	switch {
	case bold && italic:
		return FontBoldItalic
	case bold:
		return FontBold
	case italic:
		return FontItalic
	default:
		return FontRegular
	}
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Gray returns a neutral gray of the given lightness.
func Gray(v float64) Color { return Color{v, v, v} }

// ParseHexColor interprets "#RGB" and "#RRGGBB" strings.
func ParseHexColor(s string) (Color, error) {
	var r, g, b int
	var err error
	switch len(s) {
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}, nil
}

// Canvas is the drawing surface the layout engine runs against. Coordinates
// are in points with the origin at the bottom-left corner of the page.
//
// Text is drawn inside BeginText/EndText blocks with PDF text-object
// semantics: BeginText resets the line origin to (0, 0); MoveText offsets
// the line origin relative to the previous line origin; ShowText paints at
// the current position and advances it by the text's width. Shape calls
// accumulate paths until painted by Fill, Stroke or FillStroke.
type Canvas interface {
	PageWidth() float64
	PageHeight() float64

	// TextWidth measures text without drawing it.
	TextWidth(text string, font Font, size float64) float64

	SetFont(font Font, size float64)
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)

	BeginText()
	MoveText(dx, dy float64)
	ShowText(text string)
	EndText()

	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	Circle(cx, cy, r float64)
	Fill()
	Stroke()
	FillStroke()

	// Bytes finishes the document and returns its encoded form.
	Bytes() ([]byte, error)
}

// DocumentInfoSetter is optionally implemented by Canvas backends that can
// record document metadata, such as the PDF info dictionary.
type DocumentInfoSetter interface {
	SetDocumentInfo(title, author string)
}

// nopCanvas forwards measurements to a real canvas but discards drawing.
// It backs the measure-only pass of the clue layout, so measuring and
// rendering share one code path.
type nopCanvas struct {
	m Canvas
}

func (n nopCanvas) PageWidth() float64  { return n.m.PageWidth() }
func (n nopCanvas) PageHeight() float64 { return n.m.PageHeight() }

func (n nopCanvas) TextWidth(text string, font Font, size float64) float64 {
	return n.m.TextWidth(text, font, size)
}

func (nopCanvas) SetFont(Font, float64)            {}
func (nopCanvas) SetFillColor(Color)               {}
func (nopCanvas) SetStrokeColor(Color)             {}
func (nopCanvas) SetLineWidth(float64)             {}
func (nopCanvas) BeginText()                       {}
func (nopCanvas) MoveText(float64, float64)        {}
func (nopCanvas) ShowText(string)                  {}
func (nopCanvas) EndText()                         {}
func (nopCanvas) Rect(_, _, _, _ float64)          {}
func (nopCanvas) Line(_, _, _, _ float64)          {}
func (nopCanvas) Circle(_, _, _ float64)           {}
func (nopCanvas) Fill()                            {}
func (nopCanvas) Stroke()                          {}
func (nopCanvas) FillStroke()                      {}
func (nopCanvas) Bytes() ([]byte, error)           { return nil, nil }

var _ Canvas = nopCanvas{}
