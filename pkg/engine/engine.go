// Package engine interprets outline editing words against a document.
//
// A [Session] owns one document and its backing store. Hosts feed it one
// word per call through [Session.Interact] and print the reply words:
//
//	s, err := engine.Open("notes")
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
//
//	resp, err := s.Interact("new") // no reply, waits for a direction
//	resp, err = s.Interact("right") // replies "new"
//
// Replies are delivered all at once as a bounded slice of at most
// [MaxReplyWords] words, so no call ever needs a follow-up to drain output.
// The empty word is accepted and does nothing outside of data entry; hosts
// may send it freely.
//
// Loading replays the backing file through the same interpreter, starting in
// the navigate state. Saving writes the document back as the commands that
// rebuild it (see package codec).
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/outloud/internal/invariant"
	"github.com/matzehuels/outloud/pkg/codec"
	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/observability"
	"github.com/matzehuels/outloud/pkg/outline"
)

// MaxReplyWords bounds the reply of a single interaction: a status word
// followed by every word of the longest value.
const MaxReplyWords = outline.MaxValueLength + 1

// Status is the non-error outcome of an interaction.
type Status int

const (
	// StatusOK means the session continues.
	StatusOK Status = iota
	// StatusQuit means the document was saved and the session has ended.
	StatusQuit
)

func (s Status) String() string {
	if s == StatusQuit {
		return "quit"
	}
	return "ok"
}

// Response is the reply to one input word.
type Response struct {
	Status Status
	// Words are the reply words in order, at most MaxReplyWords.
	Words []string
	// Unconsumed echoes the input word when it was not understood.
	Unconsumed string
}

// Session is one open document and the interpreter state around it.
// A Session is not safe for concurrent use.
type Session struct {
	id     string
	store  codec.Store
	doc    *outline.Document
	cur    outline.Cursor
	state  State
	logger *log.Logger

	sessionHooks observability.SessionHooks
	persistHooks observability.PersistenceHooks

	paused  bool
	literal bool
	loading bool
	closed  bool

	out []string
}

type options struct {
	logger       *log.Logger
	nodeLimit    int
	store        codec.Store
	sessionHooks observability.SessionHooks
	persistHooks observability.PersistenceHooks
}

// Option configures Open.
type Option func(*options)

// WithLogger sets the logger for session events. Sessions log nothing by
// default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNodeLimit caps the document arena; see outline.WithNodeLimit.
func WithNodeLimit(n int) Option {
	return func(o *options) { o.nodeLimit = n }
}

// WithHooks sets the hooks that receive session and persistence events. A
// nil argument keeps the hooks registered with package observability at the
// time of Open.
func WithHooks(sh observability.SessionHooks, ph observability.PersistenceHooks) Option {
	return func(o *options) {
		o.sessionHooks = sh
		o.persistHooks = ph
	}
}

// WithStore replaces the file store derived from the filename.
func WithStore(s codec.Store) Option {
	return func(o *options) { o.store = s }
}

// Open creates a session for filename and loads the document from it. The
// file must exist; an empty file yields a fresh document with one empty
// value. A missing or unreadable file fails with FILE. The filename's base
// name must be a valid word.
func Open(filename string, opts ...Option) (*Session, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.sessionHooks == nil {
		o.sessionHooks = observability.Session()
	}
	if o.persistHooks == nil {
		o.persistHooks = observability.Persistence()
	}

	id := uuid.NewString()
	s, err := open(id, filename, o)
	o.sessionHooks.OnOpen(id, filename, err)
	if err != nil {
		o.logger.Error("open failed", "session", id, "file", filename, "err", err)
		return nil, err
	}
	return s, nil
}

func open(id, filename string, o options) (*Session, error) {
	store := o.store
	if store == nil {
		f, err := codec.NewFile(filename)
		if err != nil {
			return nil, err
		}
		store = f
	}

	doc, err := outline.New(outline.WithNodeLimit(o.nodeLimit))
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:     id,
		store:  store,
		doc:    doc,
		logger: o.logger.With("session", id[:8]),
		out:    make([]string, 0, MaxReplyWords),

		sessionHooks: o.sessionHooks,
		persistHooks: o.persistHooks,
	}
	doc.FocusRoot(&s.cur)

	if err := s.load(); err != nil {
		doc.Free()
		return nil, err
	}
	return s, nil
}

// load replays the store into the session, starting in navigate.
func (s *Session) load() error {
	s.loading = true
	s.state = StateNavigate
	defer func() { s.loading = false }()

	start := time.Now()
	n, err := s.store.Load(replayer{s})
	elapsed := time.Since(start)

	s.persistHooks.OnLoad(s.store.Path(), n, elapsed, err)
	if err != nil {
		s.logger.Error("load failed", "file", s.store.Path(), "token", n+1, "err", err)
		return err
	}
	s.logger.Info("loaded", "file", s.store.Path(), "tokens", n, "took", elapsed)

	s.doc.FocusRoot(&s.cur)
	s.state = StateHello
	s.paused, s.literal = false, false
	return nil
}

// save writes the document to the store.
func (s *Session) save() error {
	start := time.Now()
	err := s.store.Save(s.doc)
	elapsed := time.Since(start)
	s.persistHooks.OnSave(s.store.Path(), elapsed, err)
	if err != nil {
		s.logger.Error("save failed", "file", s.store.Path(), "err", err)
		return err
	}
	s.logger.Debug("saved", "file", s.store.Path(), "took", elapsed)
	return nil
}

// replayer feeds load tokens through the interpreter.
type replayer struct{ s *Session }

func (r replayer) Replay(word string) ([]string, error) {
	resp, err := r.s.do(word)
	return resp.Words, err
}

// Interact hands one word to the interpreter and returns its reply. Words
// violating the word grammar fail with WORD_BAD or WORD_TOO_LONG and change
// nothing. After a quit, or once released, every call fails with
// PRECONDITION.
func (s *Session) Interact(word string) (Response, error) {
	if s.closed || s.state == StateQuit {
		return Response{}, errors.New(errors.ErrCodePrecondition, "session is closed")
	}

	state := s.state
	resp, err := s.do(word)
	s.sessionHooks.OnInteract(s.id, state.String(), word, len(resp.Words), err)
	if err != nil {
		s.logger.Debug("interaction failed", "state", state, "word", word, "err", err)
		return resp, err
	}
	if resp.Status == StatusQuit {
		s.logger.Info("quit", "file", s.store.Path())
	}
	return resp, nil
}

// do runs one word through pause handling and the current state.
func (s *Session) do(word string) (Response, error) {
	s.out = s.out[:0]
	if err := errors.ValidateWord(word); err != nil {
		return Response{}, err
	}

	if s.paused {
		if word == "resume" {
			s.paused = false
			s.say("resumed")
		}
		return s.reply(StatusOK, ""), nil
	}
	if !s.literal && word == "pause" {
		s.paused = true
		s.say("paused")
		return s.reply(StatusOK, ""), nil
	}

	next, ok, err := transitions[s.state](s, word)
	if err != nil {
		return s.reply(StatusOK, ""), err
	}
	s.state = next
	if !ok && word != "" {
		s.say("huh")
		return s.reply(StatusOK, word), nil
	}
	if next == StateQuit {
		return s.reply(StatusQuit, ""), nil
	}
	return s.reply(StatusOK, ""), nil
}

func (s *Session) say(word string) {
	invariant.Check(len(s.out) < MaxReplyWords, "reply exceeds %d words", MaxReplyWords)
	if len(s.out) < MaxReplyWords {
		s.out = append(s.out, word)
	}
}

func (s *Session) reply(status Status, unconsumed string) Response {
	var words []string
	if len(s.out) > 0 {
		words = append(words, s.out...)
	}
	return Response{Status: status, Words: words, Unconsumed: unconsumed}
}

// Release frees the document without saving. It is safe to call more than
// once.
func (s *Session) Release() {
	if s.closed {
		return
	}
	s.closed = true
	s.doc.Free()
	s.sessionHooks.OnRelease(s.id)
	s.logger.Debug("released")
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Path returns the backing location of the document.
func (s *Session) Path() string { return s.store.Path() }

// State returns the interpreter state.
func (s *Session) State() State { return s.state }

// Paused reports whether input is paused until "resume".
func (s *Session) Paused() bool { return s.paused }

// Cursor returns the current position.
func (s *Session) Cursor() outline.Cursor { return s.cur }

// Document returns the session's document for read-only inspection. It must
// not be modified or used after Release.
func (s *Session) Document() *outline.Document { return s.doc }
