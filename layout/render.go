// Package layout computes the single-page PDF layout for a crossword: page
// and grid geometry, clue column placement with an iterative font size
// search, and grid drawing, all against an abstract Canvas.
package layout

import (
	"fmt"

	"github.com/jmoore914/kotwords-minimal/puzzle"
)

// Page geometry in points (US Letter).
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	pageMargin = 36.0
)

const (
	titleSize     = 16.0
	authorSize    = 14.0
	copyrightSize = 9.0
	lineSpacing   = 1.15
	columnPadding = 12.0

	clueTextMinSize = 5.0
	clueTextMaxSize = 11.0
	fontSizeStep    = 0.1

	solutionMinSize     = 3.0
	solutionMaxSize     = 16.0
	solutionBoxFraction = 0.8
	solutionMaxChars    = 8
	solutionTruncateTo  = 5
	solutionChunkSize   = 4

	// Grids of fewer rows get a larger share of clue space; tall grids get
	// smaller cell numbers.
	smallGridRows   = 15
	largeNumberRows = 17

	gridClearance      = 8.0
	copyrightClearance = 4.0
	headerCluePadding  = 6.0
	numberInset        = 1.0
	gridLineWidth      = 0.6
	borderLineWidth    = 2.0
)

// Options adjusts rendering.
type Options struct {
	// BlockLightness lightens block cells from solid black (0) towards
	// white (1) to save ink when printing.
	BlockLightness float64
}

// Render lays the puzzle out on a single page and returns the document
// bytes produced by the canvas. It fails with a *DoesNotFitError when no
// font size in range fits the clues into the page's columns or a given
// cell's solution into its square.
func Render(p *puzzle.Puzzle, cv Canvas, opts Options) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("layout: puzzle is nil")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if setter, ok := cv.(DocumentInfoSetter); ok {
		setter.SetDocumentInfo(p.Title, p.Creator)
	}

	rows, cols := p.Rows(), p.Cols()
	gridFraction, columns := 0.7, 4
	if rows < smallGridRows {
		gridFraction, columns = 0.6, 3
	}
	numberSize := 8.0
	if rows > largeNumberRows {
		numberSize = 6.0
	}

	contentWidth := cv.PageWidth() - 2*pageMargin
	gridWidth := contentWidth * gridFraction
	cellSize := gridWidth / float64(cols)
	gridHeight := cellSize * float64(rows)
	gridX := cv.PageWidth() - pageMargin - gridWidth
	gridY := pageMargin + copyrightSize + copyrightClearance

	headerBottom := drawPageHeader(cv, p)
	gridTop := gridY + gridHeight
	if gridTop > headerBottom {
		return nil, fmt.Errorf("layout: grid of %d rows is too tall for the page", rows)
	}

	cl := &clueColumns{
		cv:          cv,
		columns:     columns,
		columnWidth: (contentWidth - float64(columns-1)*columnPadding) / float64(columns),
		top:         headerBottom,
		gridX:       gridX,
		gridTop:     gridTop + gridClearance,
		gridBottom:  gridY,
		margin:      pageMargin,
		padding:     columnPadding,
	}
	if err := cl.render(p.AcrossClues, p.DownClues); err != nil {
		return nil, err
	}

	gr := &gridRenderer{
		cv:         cv,
		x:          gridX,
		y:          gridY,
		cellSize:   cellSize,
		numberSize: numberSize,
		numbers:    p.CellNumbers(),
		blockColor: Gray(clamp01(opts.BlockLightness)),
	}
	if err := gr.render(p); err != nil {
		return nil, err
	}

	drawCopyright(cv, p.Copyright)
	return cv.Bytes()
}

// drawPageHeader paints the title and author block and returns the Y below
// which clue columns may start.
func drawPageHeader(cv Canvas, p *puzzle.Puzzle) float64 {
	y := cv.PageHeight() - pageMargin
	cv.SetFillColor(Black)
	if p.Title != "" {
		y -= titleSize
		cv.BeginText()
		cv.SetFont(FontBold, titleSize)
		cv.MoveText(pageMargin, y)
		cv.ShowText(p.Title)
		cv.EndText()
		y -= titleSize * (lineSpacing - 1)
	}
	if p.Creator != "" {
		y -= authorSize
		cv.BeginText()
		cv.SetFont(FontRegular, authorSize)
		cv.MoveText(pageMargin, y)
		cv.ShowText(p.Creator)
		cv.EndText()
		y -= authorSize * (lineSpacing - 1)
	}
	return y - headerCluePadding
}

func drawCopyright(cv Canvas, text string) {
	if text == "" {
		return
	}
	cv.SetFillColor(Black)
	cv.BeginText()
	cv.SetFont(FontRegular, copyrightSize)
	cv.MoveText(pageMargin, pageMargin)
	cv.ShowText(text)
	cv.EndText()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
