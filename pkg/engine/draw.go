package engine

import (
	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/outline"
)

// DrawMode tells a DrawFunc how to render a piece of text.
type DrawMode int

const (
	// DrawNormal is any text outside the current value.
	DrawNormal DrawMode = iota
	// DrawCurrent is the bullet and words of the current value.
	DrawCurrent
	// DrawCursor is the current word.
	DrawCursor
)

// Bullet starts every value on screen.
const Bullet = "* "

// DrawFunc receives one piece of text and its screen position.
type DrawFunc func(mode DrawMode, column, row int, text string)

// Draw renders the neighborhood of the cursor on a columns x rows screen.
// The current value starts on the middle row, the values below it follow
// downward and the values above it are stacked upward until the screen is
// full. Values wrap at columns with continuation lines indented by two.
// While a failed dig has parked the cursor past the last value, that value
// is drawn as current without a current word. Nothing outside the screen is
// passed to fn. Draw does not modify the session.
func (s *Session) Draw(columns, rows int, fn DrawFunc) error {
	if s.closed {
		return errors.New(errors.ErrCodePrecondition, "session is closed")
	}
	if columns <= len(Bullet) || rows <= 0 {
		return nil
	}
	d := s.doc
	sc := screen{
		doc:     d,
		columns: columns,
		rows:    rows,
		current: s.cur.Value,
		cursor:  s.cur.Word,
	}
	if !d.IsValue(sc.current) {
		sc.current = d.Up(sc.current)
		sc.cursor = outline.NoWord
	}
	v := sc.current

	mid := rows / 2
	row := mid + sc.value(v, mid, fn)
	for below := d.Down(v); d.IsValue(below) && row < rows; below = d.Down(below) {
		row += sc.value(below, row, fn)
	}

	row = mid
	for above := d.Up(v); d.IsValue(above) && row > 0; above = d.Up(above) {
		row -= sc.value(above, row, nil)
		sc.value(above, row, fn)
	}
	return nil
}

// screen is the geometry and highlight of one Draw call.
type screen struct {
	doc           *outline.Document
	columns, rows int
	current       outline.ValueID
	cursor        outline.WordID
}

// value lays out v starting at row and returns the number of rows it takes.
// A nil fn only measures.
func (sc screen) value(v outline.ValueID, row int, fn DrawFunc) int {
	d := sc.doc
	current := v == sc.current

	emit := func(mode DrawMode, col, r int, text string) {
		if fn != nil && r >= 0 && r < sc.rows {
			fn(mode, col, r, text)
		}
	}

	mode := DrawNormal
	if current {
		mode = DrawCurrent
	}
	emit(mode, 0, row, Bullet)

	height := 1
	col := len(Bullet)
	for w := d.Right(d.Head(v)); d.IsWord(w); w = d.Right(w) {
		text := d.Text(w)
		if col != len(Bullet) && col+len(text) >= sc.columns {
			col = len(Bullet)
			row++
			height++
		}
		wm := mode
		if current && w == sc.cursor {
			wm = DrawCursor
		}
		emit(wm, col, row, text)
		col += len(text) + 1
	}
	return height
}
