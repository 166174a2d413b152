package archive

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Local implements Store on a local directory tree.
type Local struct {
	root string
}

// NewLocal creates a Store rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

func (l *Local) path(name string) string {
	return filepath.Join(l.root, filepath.FromSlash(name))
}

// Put writes an object, creating parent directories as needed.
func (l *Local) Put(_ context.Context, name string, r io.Reader, _ int64) error {
	target := l.path(name)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, target); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

// Open opens an object for reading.
func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// List returns the object names with the given prefix, sorted.
func (l *Local) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (l *Local) Delete(_ context.Context, name string) error {
	err := os.Remove(l.path(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
