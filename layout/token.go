package layout

import (
	"strings"

	"github.com/jmoore914/kotwords-minimal/markup"
	"github.com/jmoore914/kotwords-minimal/puzzle"
)

// token is one element of the draw sequence produced for a clue: a text
// run, a line break, or a font change taking effect for subsequent text.
// Order is significant.
type token interface {
	isToken()
}

type textToken string

type lineBreak struct{}

type fontChange Font

func (textToken) isToken()  {}
func (lineBreak) isToken()  {}
func (fontChange) isToken() {}

// tokenizer turns clue text into a token stream, wrapping as it goes. Font
// changes are emitted lazily, just before the next text that needs them, so
// redundant tag pairs produce no tokens.
type tokenizer struct {
	cv       Canvas
	size     float64
	maxWidth float64

	ws      wrapState
	tokens  []token
	current Font // style implied by the open tags
	emitted Font // style last emitted into the stream
}

func newTokenizer(cv Canvas, size, maxWidth, startWidth float64) *tokenizer {
	return &tokenizer{
		cv:       cv,
		size:     size,
		maxWidth: maxWidth,
		ws:       wrapState{width: startWidth},
	}
}

func (tk *tokenizer) measure(f Font) measureFunc {
	return func(s string) float64 { return tk.cv.TextWidth(s, f, tk.size) }
}

// addText wraps one text run in the active style. A literal newline forces
// a line break. The in-progress line width carries over between calls, so
// runs separated only by tags never break mid-word.
func (tk *tokenizer) addText(text string) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			tk.tokens = append(tk.tokens, lineBreak{})
			tk.ws.width = 0
		}
		if part == "" {
			continue
		}
		for j, seg := range tk.ws.wrap(tk.measure(tk.current), part, tk.maxWidth) {
			if j > 0 {
				tk.tokens = append(tk.tokens, lineBreak{})
			}
			if seg == "" {
				continue
			}
			if tk.current != tk.emitted {
				tk.tokens = append(tk.tokens, fontChange(tk.current))
				tk.emitted = tk.current
			}
			tk.tokens = append(tk.tokens, textToken(seg))
		}
	}
}

// addClueText adds a clue body, interpreting markup when the text carries
// it. Close tags without a matching open are ignored; a style still open at
// the end is reset so later text starts from the base face. Markup that
// fails to parse degrades to plain text.
func (tk *tokenizer) addClueText(text puzzle.Text) {
	if !text.HTML {
		tk.addText(text.Raw)
		return
	}
	inline, err := markup.ParseString(text.Raw)
	if err != nil {
		tk.addText(text.Raw)
		return
	}
	var bold, italic int
	for _, part := range inline.Parts {
		switch {
		case part.BoldOpen:
			bold++
		case part.BoldClose:
			if bold > 0 {
				bold--
			}
		case part.ItalicOpen:
			italic++
		case part.ItalicClose:
			if italic > 0 {
				italic--
			}
		case part.Text != "":
			tk.current = fontFor(bold > 0, italic > 0)
			tk.addText(string(part.Text))
		}
	}
	if bold > 0 || italic > 0 {
		tk.current = FontRegular
		if tk.emitted != FontRegular {
			tk.tokens = append(tk.tokens, fontChange(FontRegular))
			tk.emitted = FontRegular
		}
	}
}

// finish appends the terminating line break and returns the stream together
// with the trailing line width.
func (tk *tokenizer) finish() ([]token, float64) {
	tk.tokens = append(tk.tokens, lineBreak{})
	return tk.tokens, tk.ws.width
}

// clueTokens builds the draw sequence for one clue. The number prefix and
// the clue body share the first line through the wrap carry.
func clueTokens(cv Canvas, clue puzzle.Clue, size, maxWidth float64) []token {
	tk := newTokenizer(cv, size, maxWidth, 0)
	if clue.Number != "" {
		tk.addText(clue.Number + ". ")
	}
	tk.addClueText(clue.Text)
	tokens, _ := tk.finish()
	return tokens
}

// countLines returns the number of lines a token stream occupies.
func countLines(tokens []token) int {
	n := 0
	for _, t := range tokens {
		if _, ok := t.(lineBreak); ok {
			n++
		}
	}
	return n
}
