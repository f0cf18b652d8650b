package layout

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jmoore914/kotwords-minimal/puzzle"
)

func TestSolutionLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"A", []string{"A"}},
		{"ABCD", []string{"ABCD"}},
		{"ABCDE", []string{"ABCD", "E"}},
		{"ABCDEFGH", []string{"ABCD", "EFGH"}},
		{"ABCDEFGHI", []string{"ABCD", "E..."}},
		{"ABCDEFGHIJKLM", []string{"ABCD", "E..."}},
	}
	for _, tt := range tests {
		if got := solutionLines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("solutionLines(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDrawSolutionTooSmallCell(t *testing.T) {
	g := &gridRenderer{cv: NewRecorder(), cellSize: 2}
	err := g.drawSolution("A", 0, 0)
	var dnf *DoesNotFitError
	if !errors.As(err, &dnf) {
		t.Fatalf("err = %v, want *DoesNotFitError", err)
	}
	if dnf.Element != "cell solution" {
		t.Errorf("element = %q, want %q", dnf.Element, "cell solution")
	}
}

func TestDrawSolutionPicksLargestFittingSize(t *testing.T) {
	rec := NewRecorder()
	g := &gridRenderer{cv: rec, cellSize: 20}
	if err := g.drawSolution("AB", 0, 0); err != nil {
		t.Fatal(err)
	}
	// The inner box is 16pt. Two characters at 0.5 advance are one size
	// wide, so the width constraint binds exactly at 16pt.
	for _, op := range rec.Ops {
		if op.Kind == "setFont" {
			if op.Size != 16 {
				t.Errorf("solution size = %v, want 16", op.Size)
			}
			return
		}
	}
	t.Fatal("no font was set")
}

func gridCanvasOps(t *testing.T, p *puzzle.Puzzle) []Op {
	t.Helper()
	rec := NewRecorder()
	g := &gridRenderer{
		cv:         rec,
		x:          100,
		y:          100,
		cellSize:   30,
		numberSize: 8,
		numbers:    p.CellNumbers(),
		blockColor: Black,
	}
	if err := g.render(p); err != nil {
		t.Fatal(err)
	}
	return rec.Ops
}

func shownTexts(ops []Op) []string {
	var texts []string
	for _, op := range ops {
		if op.Kind == "showText" {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

func TestGridDrawsStandardNumbers(t *testing.T) {
	p := &puzzle.Puzzle{
		Grid: [][]puzzle.Cell{
			{{Solution: "A"}, {Solution: "B"}, {Block: true}},
			{{Solution: "C"}, {Solution: "D"}, {Solution: "E"}},
			{{Block: true}, {Solution: "F"}, {Solution: "G"}},
		},
	}
	got := shownTexts(gridCanvasOps(t, p))
	// Reading order: 1=A (across+down), 2=B (down), 3=C (across), 4=E
	// (down, below the block), 5=F (across, right of the block).
	want := []string{"1", "2", "3", "4", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drawn numbers = %v, want %v", got, want)
	}
}

func TestGridDrawsCustomNumbers(t *testing.T) {
	p := &puzzle.Puzzle{
		Grid: [][]puzzle.Cell{
			{{Solution: "A", Number: "7"}, {Solution: "B"}},
			{{Solution: "C", Number: "9"}, {Solution: "D"}},
		},
		AcrossWords: []puzzle.Word{
			{Cells: []puzzle.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
			{Cells: []puzzle.Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}}},
		},
		DownWords: []puzzle.Word{
			{Cells: []puzzle.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}}},
			{Cells: []puzzle.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}}},
		},
	}
	got := shownTexts(gridCanvasOps(t, p))
	want := []string{"7", "9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drawn numbers = %v, want %v", got, want)
	}
}

func TestGridIgnoresStoredNumbersWithoutBothWordLists(t *testing.T) {
	// Only the across word list is populated, so the stored numbers do not
	// qualify as custom numbering and the standard rule is drawn instead.
	p := &puzzle.Puzzle{
		Grid: [][]puzzle.Cell{
			{{Solution: "A", Number: "7"}, {Solution: "B", Number: "8"}},
			{{Solution: "C"}, {Solution: "D"}},
		},
		AcrossWords: []puzzle.Word{
			{Cells: []puzzle.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}},
		},
	}
	got := shownTexts(gridCanvasOps(t, p))
	want := []string{"1", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drawn numbers = %v, want %v", got, want)
	}
}

func TestGridCellDecorations(t *testing.T) {
	p := &puzzle.Puzzle{
		Grid: [][]puzzle.Cell{
			{
				{Solution: "A", Circled: true},
				{Solution: "B", Given: true},
			},
		},
	}
	ops := gridCanvasOps(t, p)

	kinds := map[string]int{}
	for _, op := range ops {
		kinds[op.Kind]++
	}
	if kinds["rect"] < 2 {
		t.Errorf("rect ops = %d, want at least one per cell", kinds["rect"])
	}
	if kinds["circle"] != 1 {
		t.Errorf("circle ops = %d, want 1", kinds["circle"])
	}
	texts := shownTexts(ops)
	found := false
	for _, s := range texts {
		if s == "B" {
			found = true
		}
	}
	if !found {
		t.Errorf("given solution %q was not drawn; texts = %v", "B", texts)
	}
}

func TestGridBorderSegments(t *testing.T) {
	p := &puzzle.Puzzle{
		Grid: [][]puzzle.Cell{
			{{Solution: "A", Borders: puzzle.Borders{Top: true, Left: true}}},
		},
	}
	ops := gridCanvasOps(t, p)

	var lines [][]float64
	for _, op := range ops {
		if op.Kind == "line" {
			lines = append(lines, op.Args)
		}
	}
	want := [][]float64{
		{100, 130, 130, 130}, // top edge
		{100, 100, 100, 130}, // left edge
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("border lines = %v, want %v", lines, want)
	}
}
