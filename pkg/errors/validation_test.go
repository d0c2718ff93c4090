package errors

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Code
	}{
		{"empty drain word", "", ""},
		{"single letter", "a", ""},
		{"lowercase word", "hello", ""},
		{"max length letters", strings.Repeat("x", MaxWordLength), ""},
		{"zero", "0", ""},
		{"positive number", "42", ""},
		{"negative number", "-17", ""},
		{"int64 max", "9223372036854775807", ""},
		{"int64 min", "-9223372036854775808", ""},

		{"uppercase", "Hello", ErrCodeWordBad},
		{"mixed letters and digits", "abc1", ErrCodeWordBad},
		{"space inside", "ab cd", ErrCodeWordBad},
		{"punctuation", ".", ErrCodeWordBad},
		{"leading zero", "007", ErrCodeWordBad},
		{"negative zero", "-0", ErrCodeWordBad},
		{"lone minus", "-", ErrCodeWordBad},
		{"digits then letters", "12ab", ErrCodeWordBad},
		{"int64 max plus one", "9223372036854775808", ErrCodeWordBad},
		{"int64 min minus one", "-9223372036854775809", ErrCodeWordBad},
		{"twenty digits", "12345678901234567890", ErrCodeWordBad},
		{"letters too long", strings.Repeat("x", MaxWordLength+1), ErrCodeWordTooLong},
		{"digits too long", strings.Repeat("5", MaxWordLength+1), ErrCodeWordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.input)
			if got := GetCode(err); got != tt.want {
				t.Errorf("ValidateWord(%q) code = %q, want %q (err: %v)", tt.input, got, tt.want, err)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Code
	}{
		{"bare word", "notes", ""},
		{"word in directory", "/tmp/some.dir/notes", ""},
		{"number name", "2024", ""},

		{"empty", "", ErrCodeFilenameBad},
		{"extension", "notes.txt", ErrCodeFilenameBad},
		{"uppercase", "Notes", ErrCodeFilenameBad},
		{"root only", "/", ErrCodeFilenameBad},
		{"too long", strings.Repeat("n", MaxWordLength+1), ErrCodeFilenameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if got := GetCode(err); got != tt.want {
				t.Errorf("ValidateFilename(%q) code = %q, want %q (err: %v)", tt.input, got, tt.want, err)
			}
		})
	}
}
