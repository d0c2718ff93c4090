package codec

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/outline"
)

// Store persists one document.
type Store interface {
	// Load replays the stored document into rp. A missing document yields a
	// FILE error wrapping fs.ErrNotExist.
	Load(rp Replayer) (int, error)
	// Save replaces the stored document with d.
	Save(d *outline.Document) error
	// Path names the backing location.
	Path() string
}

// File stores a document in a single file. Saves are atomic: the document
// is written to a hidden sibling ("." + base name) which is then renamed
// over the target, so readers see either the old or the new file.
type File struct {
	path string
}

// NewFile validates the filename and returns a store backed by path.
func NewFile(path string) (*File, error) {
	if err := errors.ValidateFilename(path); err != nil {
		return nil, err
	}
	return &File{path: path}, nil
}

// Path returns the document path.
func (f *File) Path() string { return f.path }

func (f *File) tempPath() string {
	return filepath.Join(filepath.Dir(f.path), "."+filepath.Base(f.path))
}

// Load replays the file into rp.
func (f *File) Load(rp Replayer) (int, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFile, err, "open %s", f.path)
	}
	defer fh.Close()
	return Decode(fh, rp)
}

// Save writes d to the temp file and renames it over the target. On any
// failure the temp file is removed and the target is left untouched.
func (f *File) Save(d *outline.Document) (err error) {
	tmp := f.tempPath()
	fh, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "create %s", tmp)
	}
	defer func() {
		if err != nil {
			fh.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = Encode(fh, d); err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "write %s", tmp)
	}
	if err = fh.Sync(); err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "sync %s", tmp)
	}
	if err = fh.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "close %s", tmp)
	}
	if err = os.Rename(tmp, f.path); err != nil {
		return errors.Wrap(errors.ErrCodeFile, err, "rename %s", tmp)
	}
	return nil
}

// IsNotExist reports whether err comes from loading a missing document.
func IsNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

var _ Store = (*File)(nil)
