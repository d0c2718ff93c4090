// Package codec persists outline documents as a replayable token stream.
//
// The file format is the editing vocabulary itself. Every value is written
// as the commands that would create it:
//
//	new right buy milk done
//	new in whole done
//	new down skim done
//	out
//	new down call literal done done
//
// "new right" fills the first root value, "new down" adds a sibling, "new in"
// opens a nested page and "out" climbs back one level. Data words that
// collide with tokens the interpreter treats specially in data entry (done,
// pause, literal) are escaped with a leading "literal".
//
// Loading is the inverse: [Decode] feeds every token to a [Replayer], the
// same entry point used for live editing.
package codec

import (
	"bufio"
	"io"

	"github.com/matzehuels/outloud/pkg/outline"
)

// Tokens with a meaning inside data entry.
const (
	TokenNew     = "new"
	TokenRight   = "right"
	TokenDown    = "down"
	TokenIn      = "in"
	TokenOut     = "out"
	TokenDone    = "done"
	TokenPause   = "pause"
	TokenLiteral = "literal"
)

// NeedsEscape reports whether word must be prefixed with "literal" to be
// read back as data.
func NeedsEscape(word string) bool {
	switch word {
	case TokenDone, TokenPause, TokenLiteral:
		return true
	}
	return false
}

// Encode writes d to w as a token stream.
func Encode(w io.Writer, d *outline.Document) error {
	bw := bufio.NewWriter(w)
	e := encoder{w: bw, doc: d}
	e.document()
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

type encoder struct {
	w   *bufio.Writer
	doc *outline.Document
	err error
}

func (e *encoder) document() {
	d := e.doc
	v := d.First(d.Root())
	dir := TokenRight
	for v != outline.NoValue {
		e.value(v, dir)
		dir = TokenDown

		for in := d.In(v); in != outline.NoValue; in = d.In(v) {
			v = d.First(in)
			e.value(v, TokenIn)
		}

		v = d.Down(v)
		for !d.IsValue(v) {
			owner := d.Out(v)
			if owner == outline.NoValue {
				v = outline.NoValue
				break
			}
			e.line(TokenOut)
			v = d.Down(owner)
		}
	}
}

func (e *encoder) value(v outline.ValueID, dir string) {
	e.word(TokenNew)
	e.word(dir)
	for _, w := range e.doc.Words(v) {
		if NeedsEscape(w) {
			e.word(TokenLiteral)
		}
		e.word(w)
	}
	e.line(TokenDone)
}

func (e *encoder) word(s string) { e.write(s, ' ') }
func (e *encoder) line(s string) { e.write(s, '\n') }

func (e *encoder) write(s string, sep byte) {
	if e.err != nil {
		return
	}
	if _, err := e.w.WriteString(s); err != nil {
		e.err = err
		return
	}
	e.err = e.w.WriteByte(sep)
}
