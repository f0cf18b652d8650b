// Package markup parses the inline rich-text subset used in clue text:
// <b> and <i> tags, arbitrarily nested, plus a small set of HTML entities.
// Other tags are recognized and dropped; a stray '<' is ordinary text.
package markup

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	inlineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "BoldOpen", Pattern: `<[bB]>`},
		{Name: "BoldClose", Pattern: `</[bB]>`},
		{Name: "ItalicOpen", Pattern: `<[iI]>`},
		{Name: "ItalicClose", Pattern: `</[iI]>`},
		{Name: "Tag", Pattern: `</?[A-Za-z][A-Za-z0-9]*\s*/?>`},
		{Name: "Text", Pattern: `[^<]+`},
		{Name: "Stray", Pattern: `<`},
	})

	inlineParser = participle.MustBuild[Inline](
		participle.Lexer(inlineLexer),
	)
)

// Inline is the parsed form of a marked-up string: a flat part list in
// document order. Balancing open and close tags is the consumer's concern.
type Inline struct {
	Parts []*Part `parser:"@@*"`
}

// Part is one lexical piece of an inline string. Exactly one field is set.
type Part struct {
	BoldOpen    bool      `parser:"  @BoldOpen"`
	BoldClose   bool      `parser:"| @BoldClose"`
	ItalicOpen  bool      `parser:"| @ItalicOpen"`
	ItalicClose bool      `parser:"| @ItalicClose"`
	Skipped     string    `parser:"| @Tag"`
	Text        TextChunk `parser:"| ( @Text | @Stray )+"`
}

// TextChunk accumulates consecutive text tokens, decoding entities as they
// are captured.
type TextChunk string

// Capture implements participle.Capture.
func (t *TextChunk) Capture(values []string) error {
	for _, v := range values {
		*t += TextChunk(DecodeEntities(v))
	}
	return nil
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&nbsp;", " ",
	"&ndash;", "–",
	"&mdash;", "—",
)

// DecodeEntities resolves the entity subset crossword formats emit.
// Unrecognized entities pass through unchanged.
func DecodeEntities(s string) string {
	return entityReplacer.Replace(s)
}

// ParseString parses an inline-markup string.
func ParseString(input string) (*Inline, error) {
	return inlineParser.ParseString("", input)
}
