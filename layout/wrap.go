package layout

import "strings"

// measureFunc returns the width in points of a string at some fixed font
// and size.
type measureFunc func(s string) float64

// wrapState carries the width of the in-progress line across wrap calls so
// consecutive text runs share one line budget. A clue's number prefix and
// its body, or runs separated only by style tags, wrap as continuous text.
type wrapState struct {
	width float64
}

// wrap splits text into line segments no wider than maxWidth. The first
// returned segment continues the current line; every later segment starts a
// new one. Words are separated on single spaces and the separator is kept
// with the following word when both fit, dropped when the word moves to a
// new line. A word wider than maxWidth on its own is hard-broken character
// by character.
func (ws *wrapState) wrap(measure measureFunc, text string, maxWidth float64) []string {
	segs := []string{""}
	newline := func() {
		segs = append(segs, "")
		ws.width = 0
	}
	appendRun := func(s string) {
		segs[len(segs)-1] += s
		ws.width += measure(s)
	}

	for i, word := range strings.Split(text, " ") {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if measure(word) > maxWidth {
			// The word can never fit on one line. Place the separator if
			// there is room, then break the word character by character.
			if sep != "" {
				if ws.width+measure(sep) > maxWidth {
					newline()
				} else {
					appendRun(sep)
				}
			}
			for _, r := range word {
				if ws.width > 0 && ws.width+measure(string(r)) > maxWidth {
					newline()
				}
				appendRun(string(r))
			}
			continue
		}
		if ws.width+measure(sep+word) > maxWidth {
			newline()
			appendRun(word)
		} else {
			appendRun(sep + word)
		}
	}
	return segs
}
