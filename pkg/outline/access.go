package outline

// IsValue reports whether v is a real value (not absent, not a page sentinel).
func (d *Document) IsValue(v ValueID) bool {
	return v != NoValue && d.values[v].head != NoWord
}

// IsWord reports whether w is a real word (not absent, not a sentinel).
func (d *Document) IsWord(w WordID) bool {
	return w != NoWord && !d.words[w].sentinel
}

// Up returns the value above v, the page head sentinel for the first value.
func (d *Document) Up(v ValueID) ValueID { return d.values[v].up }

// Down returns the value below v, the page tail sentinel for the last value.
func (d *Document) Down(v ValueID) ValueID { return d.values[v].down }

// In returns the head sentinel of v's nested page, or NoValue.
func (d *Document) In(v ValueID) ValueID { return d.values[v].in }

// Out returns the value owning the page v lives in, or NoValue on the root page.
func (d *Document) Out(v ValueID) ValueID { return d.values[v].out }

// Head returns the head sentinel of v's words.
func (d *Document) Head(v ValueID) WordID { return d.values[v].head }

// Left returns the word left of w, the head sentinel for the first word.
func (d *Document) Left(w WordID) WordID { return d.words[w].left }

// Right returns the word right of w, the tail sentinel for the last word.
func (d *Document) Right(w WordID) WordID { return d.words[w].right }

// Text returns the text of w; sentinels have none.
func (d *Document) Text(w WordID) string { return d.words[w].text }

// First returns the first value of the page whose head sentinel is page.
func (d *Document) First(page ValueID) ValueID { return d.values[page].down }

// Words returns the text of every real word of v in order.
func (d *Document) Words(v ValueID) []string {
	var out []string
	for w := d.words[d.values[v].head].right; d.IsWord(w); w = d.words[w].right {
		out = append(out, d.words[w].text)
	}
	return out
}

// WordCount returns the number of real words in v.
func (d *Document) WordCount(v ValueID) int {
	n := 0
	for w := d.words[d.values[v].head].right; d.IsWord(w); w = d.words[w].right {
		n++
	}
	return n
}

// Values returns the real values of the page whose head sentinel is page.
func (d *Document) Values(page ValueID) []ValueID {
	var out []ValueID
	for v := d.values[page].down; d.IsValue(v); v = d.values[v].down {
		out = append(out, v)
	}
	return out
}
