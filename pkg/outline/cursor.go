package outline

import (
	"github.com/matzehuels/outloud/internal/invariant"
)

// Cursor is a working position in a Document: a value and a word within it.
//
// Value is always a real value except transiently inside [Document.Dig],
// which may park it on a page tail sentinel. Word is a real word of Value,
// its head sentinel ("before the first word") or its tail sentinel (an empty
// value, or the end of an exact dig match).
type Cursor struct {
	Value ValueID
	Word  WordID
}

// Focus makes v the current value and its first word (or tail) the current word.
func (d *Document) Focus(c *Cursor, v ValueID) {
	invariant.Check(d.IsValue(v), "focus on non-value %d", v)
	c.Value = v
	c.Word = d.words[d.values[v].head].right
}

// FocusRoot focuses the first value of the root page.
func (d *Document) FocusRoot(c *Cursor) {
	d.Focus(c, d.values[d.root].down)
}

// GoLeft moves the current word left. It reports false at the word boundary.
func (d *Document) GoLeft(c *Cursor) bool {
	left := d.words[c.Word].left
	if !d.IsWord(left) {
		return false
	}
	c.Word = left
	return true
}

// GoRight moves the current word right. It reports false at the word boundary.
func (d *Document) GoRight(c *Cursor) bool {
	right := d.words[c.Word].right
	if !d.IsWord(right) {
		return false
	}
	c.Word = right
	return true
}

// GoUp focuses the value above. It reports false at the page head.
func (d *Document) GoUp(c *Cursor) bool {
	up := d.values[c.Value].up
	if !d.IsValue(up) {
		return false
	}
	d.Focus(c, up)
	return true
}

// GoDown focuses the value below. It reports false at the page tail.
func (d *Document) GoDown(c *Cursor) bool {
	down := d.values[c.Value].down
	if !d.IsValue(down) {
		return false
	}
	d.Focus(c, down)
	return true
}

// GoIn focuses the first value of the nested page. It reports false when
// the current value has none.
func (d *Document) GoIn(c *Cursor) bool {
	in := d.values[c.Value].in
	if in == NoValue {
		return false
	}
	d.Focus(c, d.values[in].down)
	return true
}

// GoOut focuses the value owning the current page. It reports false on the
// root page.
func (d *Document) GoOut(c *Cursor) bool {
	out := d.values[c.Value].out
	if out == NoValue {
		return false
	}
	d.Focus(c, out)
	return true
}

// MostLeft moves the cursor to the first word of the current value.
func (d *Document) MostLeft(c *Cursor) {
	for d.GoLeft(c) {
	}
}

// MostRight moves the cursor to the last word of the current value.
func (d *Document) MostRight(c *Cursor) {
	for d.GoRight(c) {
	}
}

// MostUp focuses the first value of the current page.
func (d *Document) MostUp(c *Cursor) {
	v := c.Value
	for d.IsValue(d.values[v].up) {
		v = d.values[v].up
	}
	d.Focus(c, v)
}

// MostDown focuses the last value of the current page.
func (d *Document) MostDown(c *Cursor) {
	v := c.Value
	for d.IsValue(d.values[v].down) {
		v = d.values[v].down
	}
	d.Focus(c, v)
}

// MostIn follows first-child links until a value without a nested page.
func (d *Document) MostIn(c *Cursor) {
	for d.GoIn(c) {
	}
}

// MostOut follows owner links up to the root page.
func (d *Document) MostOut(c *Cursor) {
	for d.GoOut(c) {
	}
}
