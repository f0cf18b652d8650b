package layout

import (
	"github.com/jmoore914/kotwords-minimal/puzzle"
)

// gridRenderer draws the puzzle grid: cell backgrounds, circles, numbers,
// extra borders, and the solution text of given cells.
type gridRenderer struct {
	cv         Canvas
	x, y       float64 // bottom-left corner of the grid
	cellSize   float64
	numberSize float64
	numbers    [][]string
	blockColor Color
}

func (g *gridRenderer) render(p *puzzle.Puzzle) error {
	rows := p.Rows()
	g.cv.SetLineWidth(gridLineWidth)
	for r, row := range p.Grid {
		for c := range row {
			cell := &row[c]
			x := g.x + float64(c)*g.cellSize
			y := g.y + float64(rows-1-r)*g.cellSize
			if err := g.renderCell(cell, g.numbers[r][c], x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *gridRenderer) renderCell(cell *puzzle.Cell, number string, x, y float64) error {
	bg := g.background(cell)
	g.cv.SetStrokeColor(Black)
	g.cv.SetFillColor(bg)
	g.cv.Rect(x, y, g.cellSize, g.cellSize)
	g.cv.FillStroke()

	if cell.Circled {
		g.cv.SetStrokeColor(Black)
		g.cv.Circle(x+g.cellSize/2, y+g.cellSize/2, g.cellSize/2)
		g.cv.Stroke()
	}
	if number != "" {
		g.drawNumber(number, x, y, bg)
	}
	if cell.Given && cell.Solution != "" {
		if err := g.drawSolution(cell.Solution, x, y); err != nil {
			return err
		}
	}
	if cell.Borders.Any() {
		g.drawBorders(cell.Borders, x, y)
	}
	return nil
}

func (g *gridRenderer) background(cell *puzzle.Cell) Color {
	if cell.Background != "" {
		if c, err := ParseHexColor(cell.Background); err == nil {
			return c
		}
	}
	if cell.Block {
		return g.blockColor
	}
	return White
}

// drawNumber paints the cell number in the top-left corner, erasing a
// backing rectangle first so the number stays legible over a circle.
func (g *gridRenderer) drawNumber(number string, x, y float64, bg Color) {
	w := g.cv.TextWidth(number, FontRegular, g.numberSize)
	baseline := y + g.cellSize - numberInset - g.numberSize
	g.cv.SetFillColor(bg)
	g.cv.Rect(x+numberInset, baseline, w, g.numberSize)
	g.cv.Fill()
	g.cv.SetFillColor(Black)
	g.cv.BeginText()
	g.cv.SetFont(FontRegular, g.numberSize)
	g.cv.MoveText(x+numberInset, baseline)
	g.cv.ShowText(number)
	g.cv.EndText()
}

// drawSolution paints a given cell's solution centered in the square,
// chunked over several lines for rebus entries, at the largest size whose
// text block fits the inner box of the cell.
func (g *gridRenderer) drawSolution(solution string, x, y float64) error {
	lines := solutionLines(solution)
	budget := g.cellSize * solutionBoxFraction
	size, ok := findFontSize(solutionMinSize, solutionMaxSize, fontSizeStep, func(s float64) bool {
		if float64(len(lines))*s > budget {
			return false
		}
		for _, line := range lines {
			if g.cv.TextWidth(line, FontRegular, s) > budget {
				return false
			}
		}
		return true
	})
	if !ok {
		return &DoesNotFitError{Element: "cell solution", MinSize: solutionMinSize, MaxSize: solutionMaxSize}
	}

	top := y + (g.cellSize+float64(len(lines))*size)/2
	g.cv.SetFillColor(Black)
	g.cv.BeginText()
	g.cv.SetFont(FontRegular, size)
	var prevX, prevY float64
	for i, line := range lines {
		w := g.cv.TextWidth(line, FontRegular, size)
		lineX := x + (g.cellSize-w)/2
		lineY := top - float64(i+1)*size
		g.cv.MoveText(lineX-prevX, lineY-prevY)
		g.cv.ShowText(line)
		prevX, prevY = lineX, lineY
	}
	g.cv.EndText()
	return nil
}

// solutionLines truncates an over-long solution and splits the rest into
// fixed-size lines: "ABCDEFGHI" becomes "ABCD" and "E...".
func solutionLines(solution string) []string {
	runes := []rune(solution)
	if len(runes) > solutionMaxChars {
		runes = append(runes[:solutionTruncateTo:solutionTruncateTo], []rune("...")...)
	}
	var lines []string
	for len(runes) > solutionChunkSize {
		lines = append(lines, string(runes[:solutionChunkSize]))
		runes = runes[solutionChunkSize:]
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}

// drawBorders strokes the marked cell edges with the heavy border width,
// one segment per edge.
func (g *gridRenderer) drawBorders(b puzzle.Borders, x, y float64) {
	g.cv.SetStrokeColor(Black)
	g.cv.SetLineWidth(borderLineWidth)
	s := g.cellSize
	if b.Top {
		g.cv.Line(x, y+s, x+s, y+s)
	}
	if b.Bottom {
		g.cv.Line(x, y, x+s, y)
	}
	if b.Left {
		g.cv.Line(x, y, x, y+s)
	}
	if b.Right {
		g.cv.Line(x+s, y, x+s, y+s)
	}
	g.cv.Stroke()
	g.cv.SetLineWidth(gridLineWidth)
}
