package errors

import (
	"path/filepath"
	"strconv"
)

// MaxWordLength is the longest word, in bytes, the engine accepts.
const MaxWordLength = 31

// ValidateWord checks a single input word against the word grammar.
//
// A word is valid when it is one of:
//   - lowercase letters a-z only, at most MaxWordLength long
//   - a base-10 integer within int64 range, with an optional leading '-',
//     no leading zero unless the word is exactly "0", and no "-0"
//   - the empty word, which hosts send to drain output and which is never stored
//
// Bad characters are reported as ErrCodeWordBad, overlong words as
// ErrCodeWordTooLong. Whichever violation comes first in the word wins.
func ValidateWord(word string) error {
	if word == "" {
		return nil
	}

	switch c := word[0]; {
	case isLower(c):
		for i := 0; i < len(word); i++ {
			if !isLower(word[i]) {
				return New(ErrCodeWordBad, "word %q contains bad characters", word)
			}
			if i >= MaxWordLength {
				return New(ErrCodeWordTooLong, "word is longer than %d characters", MaxWordLength)
			}
		}
		return nil
	case c == '-' || isDigit(c):
		return validateNumber(word)
	default:
		return New(ErrCodeWordBad, "word %q contains bad characters", word)
	}
}

func validateNumber(word string) error {
	if word[0] == '0' && len(word) > 1 {
		return New(ErrCodeWordBad, "number %q has a leading zero", word)
	}

	i := 0
	if word[0] == '-' {
		i = 1
		// no "-" alone and no negative zero
		if len(word) < 2 || word[1] < '1' || word[1] > '9' {
			return New(ErrCodeWordBad, "number %q is malformed", word)
		}
	}

	for ; i < len(word); i++ {
		if !isDigit(word[i]) {
			return New(ErrCodeWordBad, "number %q contains bad characters", word)
		}
		if i >= MaxWordLength {
			return New(ErrCodeWordTooLong, "word is longer than %d characters", MaxWordLength)
		}
	}

	if _, err := strconv.ParseInt(word, 10, 64); err != nil {
		return New(ErrCodeWordBad, "number %q is out of range", word)
	}
	return nil
}

// ValidateFilename checks that the base name of path is a non-empty word.
// The document name is stored and re-validated like any other word, so the
// same grammar applies; word errors are reported with filename codes.
// Directory components are not restricted.
func ValidateFilename(path string) error {
	if path == "" {
		return New(ErrCodeFilenameBad, "filename cannot be empty")
	}

	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return New(ErrCodeFilenameBad, "filename %q has no base name", path)
	}

	switch err := ValidateWord(base); GetCode(err) {
	case "":
		return nil
	case ErrCodeWordTooLong:
		return Wrap(ErrCodeFilenameTooLong, err, "filename %q is too long", base)
	default:
		return Wrap(ErrCodeFilenameBad, err, "filename %q contains bad characters", base)
	}
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
