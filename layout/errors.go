package layout

import "fmt"

// DoesNotFitError reports content that no font size in its search range can
// fit into its budget: either the clue lists within the page's columns, or
// a given cell's solution within its square.
type DoesNotFitError struct {
	Element string
	MinSize float64
	MaxSize float64
}

func (e *DoesNotFitError) Error() string {
	return fmt.Sprintf("%s do not fit at any font size between %gpt and %gpt",
		e.Element, e.MinSize, e.MaxSize)
}
