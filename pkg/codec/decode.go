package codec

import (
	"bufio"
	"io"

	"github.com/matzehuels/outloud/pkg/errors"
)

// Replayer consumes one token at a time and returns the words it replied.
type Replayer interface {
	Replay(word string) ([]string, error)
}

// Decode feeds every token of r to rp and returns the number of tokens
// replayed. Tokens are separated by space, '\n' or '\r'. A token longer than
// the word limit is a WORD_TOO_LONG error; a reply of more than one word is
// FILE_CONTENT_BAD, since building a document never produces one.
func Decode(r io.Reader, rp Replayer) (int, error) {
	// a token and its separator must fit the buffer, so overlong tokens
	// surface as bufio.ErrTooLong
	sc := bufio.NewScanner(bufio.NewReader(r))
	sc.Buffer(make([]byte, errors.MaxWordLength+1), errors.MaxWordLength+1)
	sc.Split(scanTokens)

	n := 0
	for sc.Scan() {
		tok := sc.Text()
		if len(tok) > errors.MaxWordLength {
			return n, errors.New(errors.ErrCodeWordTooLong, "token %d is longer than %d characters", n+1, errors.MaxWordLength)
		}
		out, err := rp.Replay(tok)
		if err != nil {
			return n, err
		}
		n++
		if len(out) > 1 {
			return n, errors.New(errors.ErrCodeFileContentBad, "token %d (%q) replied %q", n, tok, out)
		}
	}
	if err := sc.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return n, errors.Wrap(errors.ErrCodeWordTooLong, err, "token %d is longer than %d characters", n+1, errors.MaxWordLength)
		}
		return n, errors.Wrap(errors.ErrCodeFile, err, "read token %d", n+1)
	}
	return n, nil
}

func isSeparator(b byte) bool { return b == ' ' || b == '\n' || b == '\r' }

// scanTokens is a bufio.SplitFunc yielding tokens separated by runs of
// space, '\n' and '\r'. A final token without a trailing separator is kept.
func scanTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSeparator(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
