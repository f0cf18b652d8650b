// Package fonts provides the TTF data for the built-in font faces used by
// the PDF backend.
package fonts

import (
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Load returns the TTF bytes for one of the built-in styles: "regular",
// "bold", "italic" or "bolditalic".
func Load(style string) ([]byte, error) {
	switch style {
	case "", "regular":
		return goregular.TTF, nil
	case "bold":
		return gobold.TTF, nil
	case "italic":
		return goitalic.TTF, nil
	case "bolditalic":
		return gobolditalic.TTF, nil
	}
	return nil, fmt.Errorf("unknown built-in font style %q", style)
}
