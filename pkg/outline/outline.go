package outline

import (
	"github.com/matzehuels/outloud/internal/invariant"
	"github.com/matzehuels/outloud/pkg/errors"
)

// ValueID indexes the value arena of a Document.
type ValueID int32

// WordID indexes the word arena of a Document.
type WordID int32

const (
	// NoValue is the absent value link (no up above a page head, no in, no out).
	NoValue ValueID = -1
	// NoWord is the absent word link (left of a word head, right of a word tail).
	NoWord WordID = -1
)

const (
	// MaxWordLength is the longest word a value can hold.
	MaxWordLength = errors.MaxWordLength
	// MaxValueLength is the most words a single value can hold.
	MaxValueLength = 64
)

type valueNode struct {
	up, down ValueID
	in, out  ValueID
	head     WordID // NoWord on page sentinels
	live     bool
}

type wordNode struct {
	left, right WordID
	text        string
	sentinel    bool
	live        bool
}

// Document is one outline: a root page and every page reachable from it.
// A Document is not safe for concurrent use.
type Document struct {
	values     []valueNode
	words      []wordNode
	freeValues []ValueID
	freeWords  []WordID

	live  int // live value + word nodes, sentinels included
	limit int // 0 means unlimited

	root ValueID // head sentinel of the root page
}

// Option configures a Document.
type Option func(*Document)

// WithNodeLimit caps the number of live nodes (values, words and their
// sentinels). Operations that would exceed it fail with a MEMORY error.
// A limit of zero or less means no limit.
func WithNodeLimit(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.limit = n
		}
	}
}

// New creates a document holding a root page with one empty value.
func New(opts ...Option) (*Document, error) {
	d := &Document{root: NoValue}
	for _, opt := range opts {
		opt(d)
	}
	root, err := d.CreatePage(NoValue, true)
	if err != nil {
		return nil, err
	}
	d.root = root
	return d, nil
}

// Root returns the head sentinel of the root page.
func (d *Document) Root() ValueID { return d.root }

// Nodes reports the number of live arena nodes, sentinels included.
func (d *Document) Nodes() int { return d.live }

// Free releases every page of the document. The document must not be used
// afterwards.
func (d *Document) Free() {
	if d.root == NoValue {
		return
	}
	d.DeletePage(d.root)
	d.root = NoValue
}

// reserve fails when allocating the given node counts would exceed the limit.
func (d *Document) reserve(values, words int) error {
	if d.limit > 0 && d.live+values+words > d.limit {
		return errors.New(errors.ErrCodeMemory, "node limit %d reached", d.limit)
	}
	return nil
}

func (d *Document) allocValue() ValueID {
	n := valueNode{up: NoValue, down: NoValue, in: NoValue, out: NoValue, head: NoWord, live: true}
	d.live++
	if k := len(d.freeValues); k > 0 {
		id := d.freeValues[k-1]
		d.freeValues = d.freeValues[:k-1]
		d.values[id] = n
		return id
	}
	d.values = append(d.values, n)
	return ValueID(len(d.values) - 1)
}

func (d *Document) allocWord(text string, sentinel bool) WordID {
	n := wordNode{left: NoWord, right: NoWord, text: text, sentinel: sentinel, live: true}
	d.live++
	if k := len(d.freeWords); k > 0 {
		id := d.freeWords[k-1]
		d.freeWords = d.freeWords[:k-1]
		d.words[id] = n
		return id
	}
	d.words = append(d.words, n)
	return WordID(len(d.words) - 1)
}

func (d *Document) releaseValue(id ValueID) {
	invariant.Check(d.values[id].live, "double free of value %d", id)
	d.values[id] = valueNode{}
	d.freeValues = append(d.freeValues, id)
	d.live--
}

func (d *Document) releaseWord(id WordID) {
	invariant.Check(d.words[id].live, "double free of word %d", id)
	d.words[id] = wordNode{}
	d.freeWords = append(d.freeWords, id)
	d.live--
}
