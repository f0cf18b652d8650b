package layout

import (
	"encoding/json"
	"os"
	"unicode/utf8"
)

// Op is one recorded canvas operation.
type Op struct {
	Kind string    `json:"kind"`
	Text string    `json:"text,omitempty"`
	Font string    `json:"font,omitempty"`
	Size float64   `json:"size,omitempty"`
	Args []float64 `json:"args,omitempty"`
}

// Recorder is a Canvas that records operations instead of producing a
// document. Text widths come from a fixed-advance measurer to keep the
// layout deterministic; it backs the engine's tests and the CLI's debug
// output.
type Recorder struct {
	Width  float64
	Height float64
	// CharWidth is the advance of one character as a fraction of the font
	// size. Zero means the default of 0.5.
	CharWidth float64
	Ops       []Op
}

// NewRecorder returns a Recorder sized as a standard page.
func NewRecorder() *Recorder {
	return &Recorder{Width: PageWidth, Height: PageHeight}
}

func (r *Recorder) advance() float64 {
	if r.CharWidth > 0 {
		return r.CharWidth
	}
	return 0.5
}

func (r *Recorder) PageWidth() float64  { return r.Width }
func (r *Recorder) PageHeight() float64 { return r.Height }

func (r *Recorder) TextWidth(text string, _ Font, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * r.advance()
}

func (r *Recorder) record(op Op) {
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) SetFont(f Font, size float64) {
	r.record(Op{Kind: "setFont", Font: f.String(), Size: size})
}

func (r *Recorder) SetFillColor(c Color) {
	r.record(Op{Kind: "setFillColor", Args: []float64{c.R, c.G, c.B}})
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.record(Op{Kind: "setStrokeColor", Args: []float64{c.R, c.G, c.B}})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Op{Kind: "setLineWidth", Args: []float64{w}})
}

func (r *Recorder) BeginText() { r.record(Op{Kind: "beginText"}) }

func (r *Recorder) MoveText(dx, dy float64) {
	r.record(Op{Kind: "moveText", Args: []float64{dx, dy}})
}

func (r *Recorder) ShowText(text string) {
	r.record(Op{Kind: "showText", Text: text})
}

func (r *Recorder) EndText() { r.record(Op{Kind: "endText"}) }

func (r *Recorder) Rect(x, y, w, h float64) {
	r.record(Op{Kind: "rect", Args: []float64{x, y, w, h}})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: "line", Args: []float64{x1, y1, x2, y2}})
}

func (r *Recorder) Circle(cx, cy, radius float64) {
	r.record(Op{Kind: "circle", Args: []float64{cx, cy, radius}})
}

func (r *Recorder) Fill()       { r.record(Op{Kind: "fill"}) }
func (r *Recorder) Stroke()     { r.record(Op{Kind: "stroke"}) }
func (r *Recorder) FillStroke() { r.record(Op{Kind: "fillStroke"}) }

// Bytes returns the recorded operations as indented JSON.
func (r *Recorder) Bytes() ([]byte, error) {
	return json.MarshalIndent(r.Ops, "", "  ")
}

// WriteDebugJSON writes the recorded operations to a file.
func (r *Recorder) WriteDebugJSON(path string) error {
	data, err := r.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var _ Canvas = (*Recorder)(nil)
