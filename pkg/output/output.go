package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	// Packages
	goerrors "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Writer persists payloads into files under a root directory
type Writer struct {
	root string
	name NameFunc
}

// Status reports the outcome of a write
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// StreamFunc writes a payload into an open file
type StreamFunc func(io.WriteSeeker) error

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultRoot = "output"

	StatusSuccess = 1
	StatusFailure = -1

	filePermissions = 0o600
	dirPermissions  = 0o750

	// Maximum number of suffixes tried when a file name exists
	maxCollisions = 1000
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a writer for files under the root directory, which defaults
// to "output" when empty
func New(root string, opts ...Opt) (*Writer, error) {
	w := &Writer{
		root: root,
		name: TimestampName(nil),
	}
	if strings.TrimSpace(w.root) == "" {
		w.root = DefaultRoot
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	// Return success
	return w, nil
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Status) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Root returns the root directory
func (w *Writer) Root() string {
	return w.root
}

// Path resolves a directory against the root. An absolute directory is
// returned unchanged
func (w *Writer) Path(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(w.root, dir)
}

// Write creates a new file in the directory and writes the data to it
func (w *Writer) Write(dir, prefix, ext string, data []byte) (Status, error) {
	return w.Stream(dir, prefix, ext, func(f io.WriteSeeker) error {
		_, err := f.Write(data)
		return err
	})
}

// Stream creates a new file in the directory and calls fn to write the
// payload into it. The file is removed if fn returns an error
func (w *Writer) Stream(dir, prefix, ext string, fn StreamFunc) (Status, error) {
	if prefix == "" {
		return failure(goerrors.ErrBadParameter.With("missing file prefix"))
	} else if ext = strings.TrimPrefix(ext, "."); ext == "" {
		return failure(goerrors.ErrBadParameter.With("missing file extension"))
	} else if fn == nil {
		return failure(goerrors.ErrBadParameter.With("missing stream function"))
	}

	// Create the directory
	path := w.Path(dir)
	if err := os.MkdirAll(path, dirPermissions); err != nil {
		return failure(err)
	}

	// Create the file
	f, err := w.create(path, prefix, ext)
	if err != nil {
		return failure(err)
	}

	// Write the payload
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return failure(err)
	} else if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return failure(err)
	}

	// Check the file exists
	if info, err := os.Stat(f.Name()); err != nil {
		return failure(goerrors.ErrNotFound.Withf("%q", f.Name()))
	} else if !info.Mode().IsRegular() {
		return failure(goerrors.ErrInternalAppError.Withf("%q is not a regular file", f.Name()))
	}

	// Return success
	return success(f.Name()), nil
}

// Rename changes the extension of a file written by Stream or Write. The
// numeric suffix is advanced when the new name collides with an existing file
func (w *Writer) Rename(path, ext string) (Status, error) {
	if ext = strings.TrimPrefix(ext, "."); ext == "" {
		return failure(goerrors.ErrBadParameter.With("missing file extension"))
	} else if "."+ext == filepath.Ext(path) {
		return success(path), nil
	}

	// Link the file under the new name, then remove the old one
	dir, name := filepath.Split(strings.TrimSuffix(path, filepath.Ext(path)))
	for i := 0; i < maxCollisions; i++ {
		filename := name
		if i > 0 {
			filename = fmt.Sprintf("%s-%d", name, i)
		}
		dest := filepath.Join(dir, filename+"."+ext)
		if err := os.Link(path, dest); errors.Is(err, fs.ErrExist) {
			continue
		} else if err != nil {
			return failure(err)
		}
		if err := os.Remove(path); err != nil {
			os.Remove(dest)
			return failure(err)
		}
		return success(dest), nil
	}
	return failure(goerrors.ErrInternalAppError.Withf("too many files named %q", name))
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// create opens a new file, appending a numeric suffix to the name until it
// does not collide with an existing file
func (w *Writer) create(dir, prefix, ext string) (*os.File, error) {
	name := w.name(prefix)
	for i := 0; i < maxCollisions; i++ {
		filename := name
		if i > 0 {
			filename = fmt.Sprintf("%s-%d", name, i)
		}
		f, err := os.OpenFile(filepath.Join(dir, filename+"."+ext), os.O_RDWR|os.O_CREATE|os.O_EXCL, filePermissions)
		if errors.Is(err, fs.ErrExist) {
			continue
		} else if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, goerrors.ErrInternalAppError.Withf("too many files named %q", name)
}

func success(path string) Status {
	return Status{
		Code:    StatusSuccess,
		Message: "File written successfully: " + path,
		Path:    path,
	}
}

func failure(err error) (Status, error) {
	return Status{
		Code:    StatusFailure,
		Message: "Error while writing file.",
	}, err
}
