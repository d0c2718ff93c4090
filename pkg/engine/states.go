package engine

import (
	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/outline"
)

// edgeOr replies "ok" when moved and "edge" otherwise.
func (s *Session) edgeOr(moved bool) {
	if moved {
		s.say("ok")
	} else {
		s.say("edge")
	}
}

func (s *Session) hello(string) (State, bool, error) {
	s.say("hello")
	return StateNavigate, true, nil
}

func (s *Session) navigate(word string) (State, bool, error) {
	d, c := s.doc, &s.cur

	switch word {
	case "quit":
		if s.loading {
			return StateNavigate, true, errors.New(errors.ErrCodeFileContentBad, "quit inside a document")
		}
		if err := s.save(); err != nil {
			return StateNavigate, true, err
		}
		s.say("goodbye")
		return StateQuit, true, nil
	case "save":
		if s.loading {
			return StateNavigate, true, errors.New(errors.ErrCodeFileContentBad, "save inside a document")
		}
		if err := s.save(); err != nil {
			return StateNavigate, true, err
		}
		s.say("ok")
	case "cancel":
		s.say("navigate")
	case "left":
		s.edgeOr(d.GoLeft(c))
	case "right":
		s.edgeOr(d.GoRight(c))
	case "up":
		s.edgeOr(d.GoUp(c))
	case "down":
		s.edgeOr(d.GoDown(c))
	case "in":
		s.edgeOr(d.GoIn(c))
	case "out":
		s.edgeOr(d.GoOut(c))
	case "root":
		d.FocusRoot(c)
		s.say("ok")
	case "clear":
		d.ClearValue(c, c.Value)
		s.say("ok")
	case "word":
		if !d.IsWord(c.Word) {
			s.say("empty")
			break
		}
		s.say("ok")
		s.say(d.Text(c.Word))
	case "value":
		words := d.Words(c.Value)
		if len(words) == 0 {
			s.say("empty")
			break
		}
		s.say("ok")
		for _, w := range words {
			s.say(w)
		}
	case "most":
		return StateMostChoice, true, nil
	case "new":
		return StateNewChoice, true, nil
	case "delete":
		return StateDeleteChoice, true, nil
	case "move":
		return StateMoveChoice, true, nil
	case "dig":
		c.Word = d.Head(c.Value)
		return StateDig, true, nil
	default:
		return StateNavigate, false, nil
	}
	return StateNavigate, true, nil
}

func (s *Session) mostChoice(word string) (State, bool, error) {
	d, c := s.doc, &s.cur

	switch word {
	case "cancel":
		s.say("cancel")
		return StateNavigate, true, nil
	case "left":
		d.MostLeft(c)
	case "right":
		d.MostRight(c)
	case "up":
		d.MostUp(c)
	case "down":
		d.MostDown(c)
	case "in":
		d.MostIn(c)
	case "out":
		d.MostOut(c)
	default:
		return StateMostChoice, false, nil
	}
	s.say("ok")
	return StateNavigate, true, nil
}

// newChoice picks the insertion point. Horizontal directions insert into the
// current value; vertical ones create a value and focus it.
func (s *Session) newChoice(word string) (State, bool, error) {
	d, c := s.doc, &s.cur

	switch word {
	case "cancel":
		s.say("cancel")
		return StateNavigate, true, nil
	case "left":
		// words go in left of the current word already
	case "right":
		if right := d.Right(c.Word); right != outline.NoWord {
			c.Word = right
		}
	case "up":
		v, err := d.InsertValue(d.Up(c.Value))
		if err != nil {
			return StateNewChoice, true, err
		}
		d.Focus(c, v)
	case "down":
		v, err := d.InsertValue(c.Value)
		if err != nil {
			return StateNewChoice, true, err
		}
		d.Focus(c, v)
	case "in":
		if in := d.In(c.Value); in == outline.NoValue {
			if _, err := d.CreatePage(c.Value, true); err != nil {
				return StateNewChoice, true, err
			}
		} else if _, err := d.InsertValue(in); err != nil {
			return StateNewChoice, true, err
		}
		d.Focus(c, d.First(d.In(c.Value)))
	case "out":
		out := d.Out(c.Value)
		if out == outline.NoValue {
			s.say("edge")
			return StateNewChoice, true, nil
		}
		v, err := d.InsertValue(out)
		if err != nil {
			return StateNewChoice, true, err
		}
		d.Focus(c, v)
	default:
		return StateNewChoice, false, nil
	}
	s.say("new")
	return StateNew, true, nil
}

// newWords inserts data words until "done". "literal" makes the next word
// data even when it is "done", "literal" or "pause".
func (s *Session) newWords(word string) (State, bool, error) {
	d, c := s.doc, &s.cur

	switch {
	case word == "":
	case s.literal:
		if err := d.InsertWord(c, word); err != nil {
			return StateNew, true, err
		}
		s.literal = false
	case word == "literal":
		s.literal = true
	case word == "done":
		if left := d.Left(c.Word); left != outline.NoWord && d.IsWord(left) {
			c.Word = left
		}
		s.say("ok")
		return StateNavigate, true, nil
	default:
		if err := d.InsertWord(c, word); err != nil {
			return StateNew, true, err
		}
	}
	return StateNew, true, nil
}

func (s *Session) deleteChoice(word string) (State, bool, error) {
	switch word {
	case "cancel":
		s.say("cancel")
		return StateNavigate, true, nil
	case "word":
		s.doc.DeleteWord(&s.cur)
	case "value":
		s.doc.DeleteValue(&s.cur)
	default:
		return StateDeleteChoice, false, nil
	}
	s.say("ok")
	return StateNavigate, true, nil
}

// moveChoice moves the current word along its value or the current value
// through the outline.
func (s *Session) moveChoice(word string) (State, bool, error) {
	d, c := s.doc, &s.cur

	switch word {
	case "cancel":
		s.say("cancel")
	case "left":
		s.edgeOr(d.SwapWordLeft(c))
	case "right":
		s.edgeOr(d.SwapWordRight(c))
	case "up":
		s.edgeOr(d.SwapValueUp(c))
	case "down":
		s.edgeOr(d.SwapValueDown(c))
	case "in":
		moved, err := d.Indent(c)
		if err != nil {
			return StateMoveChoice, true, err
		}
		s.edgeOr(moved)
	case "out":
		s.edgeOr(d.Outdent(c))
	default:
		return StateMoveChoice, false, nil
	}
	return StateNavigate, true, nil
}

// dig narrows the search one word at a time. The cursor may sit on the page
// tail while digging, which marks a failed search; "done" and "cancel"
// always leave it on a real value.
func (s *Session) dig(word string) (State, bool, error) {
	d, c := s.doc, &s.cur

	switch {
	case word == "":
	case s.literal:
		d.Dig(c, word)
		s.literal = false
	case word == "literal":
		s.literal = true
	case word == "in":
		d.Dig(c, "")
		if !d.IsValue(c.Value) {
			break
		}
		in := d.In(c.Value)
		if in == outline.NoValue {
			// park on the tail to end the search
			for d.Down(c.Value) != outline.NoValue {
				c.Value = d.Down(c.Value)
			}
			break
		}
		d.Focus(c, d.First(in))
		c.Word = d.Head(c.Value)
	case word == "done":
		d.Dig(c, "")
		s.finishDig()
		return StateNavigate, true, nil
	case word == "cancel":
		s.finishDig()
		return StateNavigate, true, nil
	default:
		d.Dig(c, word)
	}
	return StateDig, true, nil
}

// finishDig refocuses a real value: the match, or the last value of the page
// when the search failed.
func (s *Session) finishDig() {
	d, c := s.doc, &s.cur
	if !d.IsValue(c.Value) {
		d.Focus(c, d.Up(c.Value))
		s.say("edge")
		return
	}
	d.Focus(c, c.Value)
	s.say("ok")
}

func (s *Session) quit(string) (State, bool, error) {
	return StateQuit, true, errors.New(errors.ErrCodePrecondition, "session has quit")
}
