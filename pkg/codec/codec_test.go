package codec

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/outline"
)

// recorder collects replayed tokens and replies with canned words.
type recorder struct {
	tokens  []string
	replies map[string][]string
	fail    map[string]error
}

func (r *recorder) Replay(word string) ([]string, error) {
	if err := r.fail[word]; err != nil {
		return nil, err
	}
	r.tokens = append(r.tokens, word)
	return r.replies[word], nil
}

// sample builds:
//
//	buy milk
//	  whole
//	  skim
//	call done
//	  later
//	    maybe
func sample(t *testing.T) *outline.Document {
	t.Helper()
	d, err := outline.New()
	if err != nil {
		t.Fatal(err)
	}
	c := &outline.Cursor{}
	d.FocusRoot(c)

	insert := func(words ...string) {
		for _, w := range words {
			if err := d.InsertWord(c, w); err != nil {
				t.Fatalf("InsertWord(%q): %v", w, err)
			}
		}
	}
	below := func(words ...string) {
		v, err := d.InsertValue(c.Value)
		if err != nil {
			t.Fatal(err)
		}
		d.Focus(c, v)
		insert(words...)
	}
	nested := func(words ...string) {
		page, err := d.CreatePage(c.Value, true)
		if err != nil {
			t.Fatal(err)
		}
		d.Focus(c, d.First(page))
		insert(words...)
	}

	insert("buy", "milk")
	first := c.Value
	nested("whole")
	below("skim")
	d.Focus(c, first)
	below("call", "done")
	nested("later")
	nested("maybe")
	return d
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sample(t)); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := strings.Join([]string{
		"new right buy milk done",
		"new in whole done",
		"new down skim done",
		"out",
		"new down call literal done done",
		"new in later done",
		"new in maybe done",
		"out",
		"out",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmpty(t *testing.T) {
	d, err := outline.New()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, d); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "new right done\n" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestNeedsEscape(t *testing.T) {
	for word, want := range map[string]bool{
		"done": true, "pause": true, "literal": true,
		"new": false, "out": false, "dones": false, "": false,
	} {
		if got := NeedsEscape(word); got != want {
			t.Errorf("NeedsEscape(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lines", "new right a done\nout\n", []string{"new", "right", "a", "done", "out"}},
		{"crlf and runs", "new  right\r\n\r\na done\n", []string{"new", "right", "a", "done"}},
		{"no trailing separator", "new right a done", []string{"new", "right", "a", "done"}},
		{"leading separators", "\n\n  out", []string{"out"}},
		{"empty", "", nil},
		{"max length", strings.Repeat("a", errors.MaxWordLength) + "\n", []string{strings.Repeat("a", errors.MaxWordLength)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			n, err := Decode(strings.NewReader(tt.input), rec)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if n != len(tt.want) {
				t.Errorf("Decode() = %d tokens, want %d", n, len(tt.want))
			}
			if diff := cmp.Diff(tt.want, rec.tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	long := strings.Repeat("a", errors.MaxWordLength+1)
	boom := stderrors.New("boom")

	tests := []struct {
		name  string
		input string
		rec   *recorder
		want  errors.Code
	}{
		{"long token", "new right " + long + " done\n", &recorder{}, errors.ErrCodeWordTooLong},
		{"long final token", "new " + long, &recorder{}, errors.ErrCodeWordTooLong},
		{"very long token", strings.Repeat("b", 500), &recorder{}, errors.ErrCodeWordTooLong},
		{"multi word reply", "value\n", &recorder{replies: map[string][]string{"value": {"ok", "x"}}}, errors.ErrCodeFileContentBad},
		{"replay error", "save\n", &recorder{fail: map[string]error{"save": errors.New(errors.ErrCodeFileContentBad, "save during load")}}, errors.ErrCodeFileContentBad},
		{"plain replay error", "x\n", &recorder{fail: map[string]error{"x": boom}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.rec)
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		path string
		want errors.Code
	}{
		{"notes", ""},
		{filepath.Join("some", "dir", "notes"), ""},
		{"", errors.ErrCodeFilenameBad},
		{"notes.txt", errors.ErrCodeFilenameBad},
		{strings.Repeat("n", 40), errors.ErrCodeFilenameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := NewFile(tt.path)
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("NewFile(%q) code = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFileSave(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "notes"))
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Save(sample(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "new right buy milk done\n") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, ".notes")); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}

	rec := &recorder{}
	n, err := f.Load(rec)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != len(strings.Fields(string(data))) {
		t.Errorf("Load() = %d tokens, want %d", n, len(strings.Fields(string(data))))
	}
}

func TestFileSaveFailure(t *testing.T) {
	t.Run("rename onto directory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "notes")
		if err := os.Mkdir(target, 0755); err != nil {
			t.Fatal(err)
		}
		f, err := NewFile(target)
		if err != nil {
			t.Fatal(err)
		}

		err = f.Save(sample(t))
		if !errors.Is(err, errors.ErrCodeFile) {
			t.Fatalf("Save() = %v, want FILE", err)
		}
		if _, err := os.Stat(filepath.Join(dir, ".notes")); !os.IsNotExist(err) {
			t.Errorf("temp file left behind: %v", err)
		}
		if fi, err := os.Stat(target); err != nil || !fi.IsDir() {
			t.Errorf("target was modified: %v", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		f, err := NewFile(filepath.Join(t.TempDir(), "missing", "notes"))
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Save(sample(t)); !errors.Is(err, errors.ErrCodeFile) {
			t.Errorf("Save() = %v, want FILE", err)
		}
	})
}

func TestFileLoadMissing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "notes"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.Load(&recorder{})
	if !errors.Is(err, errors.ErrCodeFile) {
		t.Errorf("Load() = %v, want FILE", err)
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist(%v) = false", err)
	}
}
