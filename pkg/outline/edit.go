package outline

import (
	"github.com/matzehuels/outloud/internal/invariant"
	"github.com/matzehuels/outloud/pkg/errors"
)

// InsertWord inserts text immediately left of the current word. When the
// current word is the head sentinel the text becomes the first word. The
// cursor is left unchanged, so consecutive inserts keep their order.
func (d *Document) InsertWord(c *Cursor, text string) error {
	if text == "" {
		return errors.New(errors.ErrCodePrecondition, "cannot insert an empty word")
	}
	if err := errors.ValidateWord(text); err != nil {
		return err
	}
	if d.WordCount(c.Value) >= MaxValueLength {
		return errors.New(errors.ErrCodeValueTooLong, "value already holds %d words", MaxValueLength)
	}
	if err := d.reserve(0, 1); err != nil {
		return err
	}

	at := c.Word
	if d.words[at].left == NoWord {
		at = d.words[at].right
	}

	w := d.allocWord(text, false)
	left := d.words[at].left
	d.words[w].left = left
	d.words[w].right = at
	d.words[left].right = w
	d.words[at].left = w
	return nil
}

// InsertValue creates an empty value immediately below before, which is a
// real value or a page head sentinel. The new value joins before's page.
func (d *Document) InsertValue(before ValueID) (ValueID, error) {
	if err := d.reserve(1, 2); err != nil {
		return NoValue, err
	}
	return d.linkNewValue(before), nil
}

func (d *Document) linkNewValue(before ValueID) ValueID {
	invariant.Check(d.values[before].down != NoValue, "insert below tail sentinel %d", before)

	head := d.allocWord("", true)
	tail := d.allocWord("", true)
	d.words[head].right = tail
	d.words[tail].left = head

	v := d.allocValue()
	below := d.values[before].down
	d.values[v].head = head
	d.values[v].up = before
	d.values[v].down = below
	d.values[v].out = d.values[before].out
	d.values[below].up = v
	d.values[before].down = v
	return v
}

// CreatePage allocates a new page and attaches it as parent's nested page.
// parent is NoValue only for the root page. Without withEmpty the page is
// left empty and the caller must put a value in it before returning.
func (d *Document) CreatePage(parent ValueID, withEmpty bool) (ValueID, error) {
	values, words := 2, 0
	if withEmpty {
		values, words = 3, 2
	}
	if err := d.reserve(values, words); err != nil {
		return NoValue, err
	}
	invariant.Check(parent == NoValue || d.values[parent].in == NoValue, "value %d already has a page", parent)

	head := d.allocValue()
	tail := d.allocValue()
	d.values[head].down = tail
	d.values[tail].up = head
	d.values[head].out = parent
	d.values[tail].out = parent
	if withEmpty {
		d.linkNewValue(head)
	}
	if parent != NoValue {
		d.values[parent].in = head
	}
	return head, nil
}

// ClearValue removes every real word of v. When v is the current value the
// cursor is refocused on it.
func (d *Document) ClearValue(c *Cursor, v ValueID) {
	head := d.values[v].head
	for w := d.words[head].right; d.IsWord(w); w = d.words[head].right {
		right := d.words[w].right
		d.words[head].right = right
		d.words[right].left = head
		d.releaseWord(w)
	}
	if c != nil && c.Value == v {
		d.Focus(c, v)
	}
}

// DeleteWord removes the current word if it is real. The cursor moves to
// the word on its right, else the one on its left.
func (d *Document) DeleteWord(c *Cursor) {
	w := c.Word
	if !d.IsWord(w) {
		return
	}
	left, right := d.words[w].left, d.words[w].right
	d.words[left].right = right
	d.words[right].left = left
	if d.IsWord(right) {
		c.Word = right
	} else {
		c.Word = left
	}
	d.releaseWord(w)
}

// DeleteValue removes the current value and its nested page. The sole value
// of the root page is cleared instead. The cursor moves to the value below,
// else above, else the owner, whose emptied page is removed.
func (d *Document) DeleteValue(c *Cursor) {
	v := c.Value
	n := d.values[v]

	if n.out == NoValue && !d.IsValue(n.up) && !d.IsValue(n.down) {
		if n.in != NoValue {
			d.DeletePage(n.in)
		}
		d.ClearValue(c, v)
		return
	}

	if n.in != NoValue {
		d.DeletePage(n.in)
	}
	d.values[n.up].down = n.down
	d.values[n.down].up = n.up
	d.freeValue(v)

	next := n.down
	if !d.IsValue(next) {
		next = n.up
		if !d.IsValue(next) {
			// page is empty now
			page, tail := n.up, n.down
			next = n.out
			d.values[next].in = NoValue
			d.releaseValue(tail)
			d.releaseValue(page)
		}
	}
	d.Focus(c, next)
}

// DeletePage removes a page and every page nested below it, children
// before parents, and detaches it from its owner.
func (d *Document) DeletePage(head ValueID) {
	if head == NoValue {
		return
	}
	if owner := d.values[head].out; owner != NoValue && d.values[owner].in == head {
		d.values[owner].in = NoValue
	}

	pages := []ValueID{head}
	for i := 0; i < len(pages); i++ {
		for v := d.values[pages[i]].down; d.IsValue(v); v = d.values[v].down {
			if in := d.values[v].in; in != NoValue {
				invariant.Check(d.values[in].out == v, "page %d has out %d, want %d", in, d.values[in].out, v)
				pages = append(pages, in)
			}
		}
	}

	for i := len(pages) - 1; i >= 0; i-- {
		page := pages[i]
		v := d.values[page].down
		for d.IsValue(v) {
			next := d.values[v].down
			d.freeValue(v)
			v = next
		}
		d.releaseValue(v)
		d.releaseValue(page)
	}
}

// freeValue releases v and its words. v must already be unlinked or be
// part of a page being torn down.
func (d *Document) freeValue(v ValueID) {
	head := d.values[v].head
	invariant.Check(head != NoWord, "free of sentinel value %d", v)
	w := head
	for w != NoWord {
		next := d.words[w].right
		d.releaseWord(w)
		w = next
	}
	d.releaseValue(v)
}
