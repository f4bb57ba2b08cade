// Package fs adapts go-billy filesystems to ports.FileSystem so the generator
// and the config store run unchanged against the OS or an in-memory tree.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/xala-technologies/xala-cli/internal/ports"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Billy implements ports.FileSystem on top of a billy.Filesystem.
type Billy struct {
	fs      billy.Filesystem
	resolve func(string) (string, error)
}

// NewOS returns a filesystem rooted at "/" that resolves relative paths against
// the process working directory.
func NewOS() *Billy {
	return &Billy{
		fs:      osfs.New(string(filepath.Separator)),
		resolve: filepath.Abs,
	}
}

// NewMemory returns an empty in-memory filesystem. Paths are used as given.
func NewMemory() *Billy {
	return &Billy{
		fs:      memfs.New(),
		resolve: func(p string) (string, error) { return filepath.Clean(p), nil },
	}
}

// Exists reports whether path exists.
func (b *Billy) Exists(path string) (bool, error) {
	p, err := b.resolve(path)
	if err != nil {
		return false, err
	}
	_, err = b.fs.Stat(p)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) || os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MkdirAll creates path and any missing parents.
func (b *Billy) MkdirAll(path string) error {
	p, err := b.resolve(path)
	if err != nil {
		return err
	}
	return b.fs.MkdirAll(p, dirPerm)
}

// ReadFile returns the contents of path.
func (b *Billy) ReadFile(path string) ([]byte, error) {
	p, err := b.resolve(path)
	if err != nil {
		return nil, err
	}
	return util.ReadFile(b.fs, p)
}

// WriteFile truncates path and writes data in a single call. There is no
// temp-file-then-rename step.
func (b *Billy) WriteFile(path string, data []byte) error {
	p, err := b.resolve(path)
	if err != nil {
		return err
	}
	return util.WriteFile(b.fs, p, data, filePerm)
}

// Glob returns the matches for pattern in lexical order.
func (b *Billy) Glob(pattern string) ([]string, error) {
	p, err := b.resolve(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := util.Glob(b.fs, p)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

var _ ports.FileSystem = (*Billy)(nil)
