// Package outline implements the in-memory document of an outline: pages of
// values, each value a run of words, values optionally owning a nested page.
//
// # Structure
//
// Every page is bounded by a head and a tail sentinel value and linked
// vertically through up/down. A value owns at most one nested page through
// in; every value of that page points back to it through out. Every value's
// words are bounded by a head and a tail sentinel word and linked through
// left/right.
//
//	root head
//	   |
//	 value "groceries" --in--> head
//	   |                         |
//	 value "work"              value "milk"   (out = "groceries")
//	   |                         |
//	root tail                  tail
//
// Nodes live in two arenas (values and words) and refer to each other by
// index, so unlinking and page teardown never leave dangling references.
//
// # Cursor
//
// Editing operations take a [Cursor]: the current value (always a real value
// outside of [Document.Dig]) and the current word (a real word or one of the
// value's sentinels).
//
// # Failure
//
// Operations that allocate check the arena ceiling (see [WithNodeLimit])
// before rewriting any link and report MEMORY errors unchanged. Broken links
// are engine defects; they panic only in builds tagged outlinedebug.
package outline
