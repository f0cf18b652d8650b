// Package puzzle defines the in-memory crossword model consumed by the
// layout engine. Format converters produce this model; the renderer only
// ever sees it.
package puzzle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Text is a string that is either plain or marked up with inline <b>/<i>
// tags and a small entity subset.
type Text struct {
	Raw  string `json:"raw"`
	HTML bool   `json:"html,omitempty"`
}

// Plain wraps a string without markup.
func Plain(s string) Text { return Text{Raw: s} }

// Markup wraps a string carrying inline markup.
func Markup(s string) Text { return Text{Raw: s, HTML: true} }

// Borders marks the extra bold edges drawn on a cell.
type Borders struct {
	Top    bool `json:"top,omitempty"`
	Bottom bool `json:"bottom,omitempty"`
	Left   bool `json:"left,omitempty"`
	Right  bool `json:"right,omitempty"`
}

// Any reports whether at least one edge is marked.
func (b Borders) Any() bool { return b.Top || b.Bottom || b.Left || b.Right }

// Cell is one square of the grid.
type Cell struct {
	// Solution is the intended content of the cell. More than one
	// character makes the cell a rebus.
	Solution string `json:"solution,omitempty"`
	// Number overrides automatic numbering; only honored when the puzzle
	// carries custom word lists.
	Number  string `json:"number,omitempty"`
	Block   bool   `json:"block,omitempty"`
	Circled bool   `json:"circled,omitempty"`
	// Given cells have their solution printed inside the square.
	Given bool `json:"given,omitempty"`
	// Background is an optional #RGB or #RRGGBB fill color.
	Background string  `json:"background,omitempty"`
	Borders    Borders `json:"borders,omitempty"`
}

// Clue pairs a clue number with its text.
type Clue struct {
	Number string `json:"number"`
	Text   Text   `json:"text"`
}

// ClueList is the ordered clue section for one direction.
type ClueList struct {
	Title string `json:"title"`
	Clues []Clue `json:"clues"`
}

// Position addresses a grid cell, zero-based from the top-left corner.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Word lists the cells of one answer. Formats with non-standard numbering
// supply these together with per-cell numbers.
type Word struct {
	Cells []Position `json:"cells"`
}

// Puzzle is the shared model all formats convert through.
type Puzzle struct {
	Title       string   `json:"title,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Copyright   string   `json:"copyright,omitempty"`
	Description string   `json:"description,omitempty"`
	Grid        [][]Cell `json:"grid"`
	AcrossClues ClueList `json:"acrossClues"`
	DownClues   ClueList `json:"downClues"`
	AcrossWords []Word   `json:"acrossWords,omitempty"`
	DownWords   []Word   `json:"downWords,omitempty"`
}

// Rows returns the grid height.
func (p *Puzzle) Rows() int { return len(p.Grid) }

// Cols returns the grid width.
func (p *Puzzle) Cols() int {
	if len(p.Grid) == 0 {
		return 0
	}
	return len(p.Grid[0])
}

// Validate checks that the grid is non-empty and rectangular.
func (p *Puzzle) Validate() error {
	if len(p.Grid) == 0 {
		return fmt.Errorf("puzzle %q has an empty grid", p.Title)
	}
	cols := len(p.Grid[0])
	if cols == 0 {
		return fmt.Errorf("puzzle %q has an empty first row", p.Title)
	}
	for r, row := range p.Grid {
		if len(row) != cols {
			return fmt.Errorf("puzzle %q grid is ragged: row %d has %d cells, want %d",
				p.Title, r, len(row), cols)
		}
	}
	return nil
}

// HasCustomNumbering reports whether the puzzle carries word lists for both
// directions, in which case cells are numbered by their Number field instead
// of the standard rule. A single populated list is not enough; numbering
// then falls back to the standard rule.
func (p *Puzzle) HasCustomNumbering() bool {
	return len(p.AcrossWords) > 0 && len(p.DownWords) > 0
}

// CellNumbers returns the printed number for every cell, empty where none.
// With custom numbering the stored per-cell numbers are used verbatim;
// otherwise cells are numbered sequentially in reading order wherever an
// across or down answer starts.
func (p *Puzzle) CellNumbers() [][]string {
	rows, cols := p.Rows(), p.Cols()
	numbers := make([][]string, rows)
	for r := range numbers {
		numbers[r] = make([]string, cols)
	}
	if p.HasCustomNumbering() {
		for r, row := range p.Grid {
			for c, cell := range row {
				numbers[r][c] = cell.Number
			}
		}
		return numbers
	}
	next := 1
	for r, row := range p.Grid {
		for c, cell := range row {
			if cell.Block {
				continue
			}
			startsAcross := (c == 0 || row[c-1].Block) && c+1 < cols && !row[c+1].Block
			startsDown := (r == 0 || p.Grid[r-1][c].Block) && r+1 < rows && !p.Grid[r+1][c].Block
			if startsAcross || startsDown {
				numbers[r][c] = strconv.Itoa(next)
				next++
			}
		}
	}
	return numbers
}

// FromJSON decodes and validates a puzzle from its JSON form.
func FromJSON(r io.Reader) (*Puzzle, error) {
	var p Puzzle
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode puzzle: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// File loads a puzzle from a JSON file on demand.
type File struct {
	Path string
}

// Puzzle implements Puzzleable.
func (f File) Puzzle() (*Puzzle, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle file: %w", err)
	}
	defer file.Close()
	return FromJSON(file)
}

var _ Puzzleable = File{}
