package outline

// SwapWordLeft swaps the current word with its left neighbor. It reports
// false when the current word is a sentinel or already first.
func (d *Document) SwapWordLeft(c *Cursor) bool {
	w := c.Word
	if !d.IsWord(w) || !d.IsWord(d.words[w].left) {
		return false
	}
	d.unlinkWord(w)
	left := d.words[w].left
	d.linkWordBefore(w, left)
	return true
}

// SwapWordRight swaps the current word with its right neighbor. It reports
// false when the current word is a sentinel or already last.
func (d *Document) SwapWordRight(c *Cursor) bool {
	w := c.Word
	if !d.IsWord(w) || !d.IsWord(d.words[w].right) {
		return false
	}
	d.unlinkWord(w)
	right := d.words[w].right
	d.linkWordBefore(w, d.words[right].right)
	return true
}

// unlinkWord detaches w from its neighbors but keeps w's own links.
func (d *Document) unlinkWord(w WordID) {
	left, right := d.words[w].left, d.words[w].right
	d.words[left].right = right
	d.words[right].left = left
}

func (d *Document) linkWordBefore(w, at WordID) {
	left := d.words[at].left
	d.words[w].left = left
	d.words[w].right = at
	d.words[left].right = w
	d.words[at].left = w
}

// SwapValueUp swaps the current value with the value above it. It reports
// false at the top of the page.
func (d *Document) SwapValueUp(c *Cursor) bool {
	v := c.Value
	up := d.values[v].up
	if !d.IsValue(up) {
		return false
	}
	d.unlinkValue(v)
	d.linkValueBelow(v, d.values[up].up)
	return true
}

// SwapValueDown swaps the current value with the value below it. It reports
// false at the bottom of the page.
func (d *Document) SwapValueDown(c *Cursor) bool {
	v := c.Value
	down := d.values[v].down
	if !d.IsValue(down) {
		return false
	}
	d.unlinkValue(v)
	d.linkValueBelow(v, down)
	return true
}

// Indent moves the current value to the top of the nested page of the value
// above it, creating that page if needed. It reports false when there is no
// value above.
func (d *Document) Indent(c *Cursor) (bool, error) {
	v := c.Value
	up := d.values[v].up
	if !d.IsValue(up) {
		return false, nil
	}
	if d.values[up].in == NoValue {
		if _, err := d.CreatePage(up, false); err != nil {
			return false, err
		}
	}
	d.unlinkValue(v)
	d.linkValueBelow(v, d.values[up].in)
	d.values[v].out = up
	return true, nil
}

// Outdent moves the current value directly below the value owning its page.
// A page left empty is removed. It reports false on the root page.
func (d *Document) Outdent(c *Cursor) bool {
	v := c.Value
	owner := d.values[v].out
	if owner == NoValue {
		return false
	}
	d.unlinkValue(v)
	d.linkValueBelow(v, owner)
	d.values[v].out = d.values[owner].out

	page := d.values[owner].in
	if tail := d.values[page].down; !d.IsValue(tail) {
		d.values[owner].in = NoValue
		d.releaseValue(tail)
		d.releaseValue(page)
	}
	return true
}

func (d *Document) unlinkValue(v ValueID) {
	up, down := d.values[v].up, d.values[v].down
	d.values[up].down = down
	d.values[down].up = up
}

func (d *Document) linkValueBelow(v, before ValueID) {
	below := d.values[before].down
	d.values[v].up = before
	d.values[v].down = below
	d.values[below].up = v
	d.values[before].down = v
}
