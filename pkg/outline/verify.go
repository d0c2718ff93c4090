package outline

import (
	"github.com/matzehuels/outloud/pkg/errors"
)

// Stats summarizes the shape of a document.
type Stats struct {
	Pages  int // pages, the root page included
	Values int // real values
	Words  int // real words
	Depth  int // deepest page nesting, 1 for a flat outline
}

// Stats walks the document and counts its pages, values and words.
func (d *Document) Stats() Stats {
	var s Stats
	type item struct {
		page  ValueID
		depth int
	}
	stack := []item{{d.root, 1}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.Pages++
		s.Depth = max(s.Depth, it.depth)
		for v := d.values[it.page].down; d.IsValue(v); v = d.values[v].down {
			s.Values++
			s.Words += d.WordCount(v)
			if in := d.values[v].in; in != NoValue {
				stack = append(stack, item{in, it.depth + 1})
			}
		}
	}
	return s
}

// Verify walks every page reachable from the root and checks the link
// invariants: symmetric up/down and left/right links, a shared out per page
// that names the owning value, non-empty pages, sentinels without text and
// no leaked nodes. Violations are reported as PRECONDITION errors.
func (d *Document) Verify() error {
	if d.root == NoValue {
		return errors.New(errors.ErrCodePrecondition, "document has been freed")
	}
	if d.values[d.root].out != NoValue {
		return errors.New(errors.ErrCodePrecondition, "root page has an owner")
	}

	// bound every walk so a cycle cannot spin forever
	budget := len(d.values) + len(d.words)
	reached := 0

	pages := []ValueID{d.root}
	for len(pages) > 0 {
		page := pages[len(pages)-1]
		pages = pages[:len(pages)-1]

		n := d.values[page]
		if !n.live || n.head != NoWord || n.up != NoValue {
			return errors.New(errors.ErrCodePrecondition, "page %d has a bad head sentinel", page)
		}
		reached++

		prev, count := page, 0
		v := n.down
		for d.IsValue(v) {
			if budget--; budget < 0 {
				return errors.New(errors.ErrCodePrecondition, "page %d does not terminate", page)
			}
			vn := d.values[v]
			if !vn.live || vn.up != prev || d.values[prev].down != v {
				return errors.New(errors.ErrCodePrecondition, "value %d has broken up/down links", v)
			}
			if vn.out != n.out {
				return errors.New(errors.ErrCodePrecondition, "value %d has out %d, page owner is %d", v, vn.out, n.out)
			}
			words, err := d.verifyWords(v, &budget)
			if err != nil {
				return err
			}
			reached += words + 1
			if vn.in != NoValue {
				if d.values[vn.in].out != v {
					return errors.New(errors.ErrCodePrecondition, "page %d is not owned by value %d", vn.in, v)
				}
				pages = append(pages, vn.in)
			}
			prev = v
			v = vn.down
			count++
		}

		if v == NoValue {
			return errors.New(errors.ErrCodePrecondition, "page %d has no tail sentinel", page)
		}
		tn := d.values[v]
		if !tn.live || tn.up != prev || tn.down != NoValue || tn.out != n.out {
			return errors.New(errors.ErrCodePrecondition, "page %d has a bad tail sentinel", page)
		}
		reached++
		if count == 0 {
			return errors.New(errors.ErrCodePrecondition, "page %d is empty", page)
		}
	}

	if reached != d.live {
		return errors.New(errors.ErrCodePrecondition, "%d live nodes but %d reachable", d.live, reached)
	}
	return nil
}

// verifyWords checks the word chain of v and returns the number of words
// visited, sentinels included.
func (d *Document) verifyWords(v ValueID, budget *int) (int, error) {
	head := d.values[v].head
	hn := d.words[head]
	if !hn.live || !hn.sentinel || hn.left != NoWord {
		return 0, errors.New(errors.ErrCodePrecondition, "value %d has a bad word head", v)
	}

	seen, count := 1, 0
	prev, w := head, hn.right
	for w != NoWord {
		if *budget--; *budget < 0 {
			return 0, errors.New(errors.ErrCodePrecondition, "value %d word chain does not terminate", v)
		}
		wn := d.words[w]
		if !wn.live || wn.left != prev {
			return 0, errors.New(errors.ErrCodePrecondition, "word %d of value %d has broken links", w, v)
		}
		seen++
		if wn.sentinel {
			if wn.text != "" || wn.right != NoWord {
				return 0, errors.New(errors.ErrCodePrecondition, "value %d has a bad word tail", v)
			}
			if count > MaxValueLength {
				return 0, errors.New(errors.ErrCodePrecondition, "value %d holds %d words", v, count)
			}
			return seen, nil
		}
		if wn.text == "" {
			return 0, errors.New(errors.ErrCodePrecondition, "word %d of value %d is empty", w, v)
		}
		count++
		prev, w = w, wn.right
	}
	return 0, errors.New(errors.ErrCodePrecondition, "value %d has no word tail", v)
}

// CheckCursor reports whether c names a real value and a word of it.
func (d *Document) CheckCursor(c Cursor) error {
	if c.Value < 0 || int(c.Value) >= len(d.values) || !d.values[c.Value].live || !d.IsValue(c.Value) {
		return errors.New(errors.ErrCodePrecondition, "cursor value %d is not a real value", c.Value)
	}
	for w := d.values[c.Value].head; w != NoWord; w = d.words[w].right {
		if w == c.Word {
			return nil
		}
	}
	return errors.New(errors.ErrCodePrecondition, "cursor word %d is not in value %d", c.Word, c.Value)
}
