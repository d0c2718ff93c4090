// Package pkg holds the libraries behind the outloud outline editor.
//
// # Overview
//
// Outloud edits an outline, a tree of pages holding values made of words,
// through a stream of single words such as "new", "right", "done" or "save".
// The packages layer as follows:
//
//	words from a host (terminal, stdin, speech recognizer)
//	         ↓
//	    [engine] (interpreter state machine, replies, screen layout)
//	         ↓
//	    [outline] (document graph and cursor operations)
//	         ↕
//	    [codec] (save as replayable words, load by replaying them)
//
// Supporting packages:
//
//   - [errors]: coded errors and the word grammar
//   - [observability]: hooks for session and persistence events
//   - [config]: TOML configuration
//   - [render]: DOT, SVG, PDF and PNG export
//   - [cache]: rendered export cache
//   - [buildinfo]: version information set at link time
//
// # Quick Start
//
//	s, err := engine.Open("notes")
//	if err != nil {
//	    return err
//	}
//	defer s.Release()
//
//	for _, w := range strings.Fields("new right buy milk done quit") {
//	    resp, err := s.Interact(w)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(strings.Join(resp.Words, " "))
//	}
//
// [engine]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/engine
// [outline]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/outline
// [codec]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/codec
// [errors]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/outloud/pkg/buildinfo
package pkg
