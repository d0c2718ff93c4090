package outline

// Dig advances the cursor to the next value of the current page whose words
// start with the confirmed prefix (every word up to and including the
// current word) followed by word. An empty word asks for an exact match:
// nothing may follow the prefix.
//
// The current value is tried first. When no value below matches, the cursor
// is parked on the page tail sentinel; further digs leave it there. Callers
// must refocus a real value afterwards.
func (d *Document) Dig(c *Cursor, word string) {
	if !d.IsValue(c.Value) {
		return
	}
	if next, ok := d.follows(c.Word, word); ok {
		c.Word = next
		return
	}

	for v := d.values[c.Value].down; ; v = d.values[v].down {
		if !d.IsValue(v) {
			c.Value = v
			return
		}
		last, ok := d.prefixMatch(c, v)
		if !ok {
			continue
		}
		if next, ok := d.follows(last, word); ok {
			c.Value = v
			c.Word = next
			return
		}
	}
}

// follows reports whether word comes right after w. For an empty word it
// reports whether w ends its value. The returned id is the matched word (or
// the tail sentinel).
func (d *Document) follows(w WordID, word string) (WordID, bool) {
	right := d.words[w].right
	if right == NoWord {
		// w is a tail: the whole value is the prefix
		return w, word == ""
	}
	if word == "" {
		return right, !d.IsWord(right)
	}
	if d.IsWord(right) && d.words[right].text == word {
		return right, true
	}
	return NoWord, false
}

// prefixMatch compares candidate's words against the current value's words
// up to the current word. It returns candidate's word aligned with the end
// of the prefix.
func (d *Document) prefixMatch(c *Cursor, candidate ValueID) (WordID, bool) {
	w1 := d.values[c.Value].head
	w2 := d.values[candidate].head
	for w1 != c.Word {
		w1 = d.words[w1].right
		if !d.IsWord(w1) {
			break
		}
		w2 = d.words[w2].right
		if !d.IsWord(w2) || d.words[w1].text != d.words[w2].text {
			return NoWord, false
		}
	}
	return w2, true
}
