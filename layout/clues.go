package layout

import "github.com/jmoore914/kotwords-minimal/puzzle"

// cluePosition is the cursor threaded through both clue sections: the Y
// offset of the next line's top within the current column, the column
// index, and the Y bound below which that column is full.
type cluePosition struct {
	y      float64
	column int
	bottom float64
}

// clueColumns places the across and down sections into vertical columns
// that flow around the grid. One font size, found by search, is shared by
// all clue text in both sections.
type clueColumns struct {
	cv          Canvas
	columns     int
	columnWidth float64
	top         float64 // top of the clue area, below the page header
	gridX       float64 // left edge of the grid
	gridTop     float64 // grid top edge plus clearance
	gridBottom  float64 // grid bottom edge, also the content floor
	margin      float64
	padding     float64 // horizontal gap between columns
}

func (cl *clueColumns) columnX(col int) float64 {
	return cl.margin + float64(col)*(cl.columnWidth+cl.padding)
}

// columnBottom returns the Y bound of a column. Columns that horizontally
// overlap the grid stop above it; the rest run down to the grid's bottom
// line.
func (cl *clueColumns) columnBottom(col int) float64 {
	if cl.columnX(col)+cl.columnWidth > cl.gridX {
		return cl.gridTop
	}
	return cl.gridBottom
}

// render finds the largest workable clue text size, then draws both
// sections at it.
func (cl *clueColumns) render(across, down puzzle.ClueList) error {
	size, ok := findFontSize(clueTextMinSize, clueTextMaxSize, fontSizeStep, func(s float64) bool {
		_, fits := cl.place(nopCanvas{cl.cv}, across, down, s)
		return fits
	})
	if !ok {
		return &DoesNotFitError{Element: "clues", MinSize: clueTextMinSize, MaxSize: clueTextMaxSize}
	}
	if _, ok := cl.place(cl.cv, across, down, size); !ok {
		// The dry run accepted this size, so the drawing pass must agree.
		return &DoesNotFitError{Element: "clues", MinSize: clueTextMinSize, MaxSize: clueTextMaxSize}
	}
	return nil
}

// place runs one full placement pass at the given size. Drawing goes
// through cv, a no-op surface during measurement, so the control flow is
// identical in both modes. The returned position is where a further
// section would continue.
func (cl *clueColumns) place(cv Canvas, across, down puzzle.ClueList, size float64) (cluePosition, bool) {
	pos := cluePosition{y: cl.top, column: 0, bottom: cl.columnBottom(0)}
	pos, ok := cl.placeList(cv, across, size, pos)
	if !ok {
		return pos, false
	}
	if len(across.Clues) > 0 && len(down.Clues) > 0 {
		pos.y -= size * lineSpacing
	}
	return cl.placeList(cv, down, size, pos)
}

// placeList lays out one clue section from pos. The section header is
// placed together with the first clue so it is never stranded at the bottom
// of a column.
func (cl *clueColumns) placeList(cv Canvas, list puzzle.ClueList, size float64, pos cluePosition) (cluePosition, bool) {
	lineHeight := size * lineSpacing
	for i, clue := range list.Clues {
		tokens := clueTokens(cv, clue, size, cl.columnWidth)
		height := float64(countLines(tokens)) * lineHeight
		needed := height
		if i == 0 {
			needed += lineHeight
		}
		if pos.y-needed < pos.bottom {
			pos.column++
			if pos.column >= cl.columns {
				return pos, false
			}
			pos.y = cl.top
			pos.bottom = cl.columnBottom(pos.column)
			if pos.y-needed < pos.bottom {
				// Taller than a whole fresh column.
				return pos, false
			}
		}
		x := cl.columnX(pos.column)
		if i == 0 {
			cl.drawHeader(cv, list.Title, x, pos.y, size)
			pos.y -= lineHeight
		}
		cl.drawTokens(cv, tokens, x, pos.y, size)
		pos.y -= height
	}
	return pos, true
}

func (cl *clueColumns) drawHeader(cv Canvas, title string, x, y, size float64) {
	if title == "" {
		return
	}
	cv.SetFillColor(Black)
	cv.BeginText()
	cv.SetFont(FontBold, size)
	cv.MoveText(x, y-size)
	cv.ShowText(title)
	cv.EndText()
}

// drawTokens paints one clue's token stream as a text object starting at
// the top-left corner (x, y).
func (cl *clueColumns) drawTokens(cv Canvas, tokens []token, x, y, size float64) {
	cv.SetFillColor(Black)
	cv.BeginText()
	cv.SetFont(FontRegular, size)
	cv.MoveText(x, y-size)
	for _, t := range tokens {
		switch t := t.(type) {
		case textToken:
			cv.ShowText(string(t))
		case fontChange:
			cv.SetFont(Font(t), size)
		case lineBreak:
			cv.MoveText(0, -size*lineSpacing)
		}
	}
	cv.EndText()
}
