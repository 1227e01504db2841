package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// aferoFS implements types.FS on top of an afero filesystem.
type aferoFS struct {
	fs afero.Fs
}

// NewOS returns the real filesystem.
func NewOS() types.FS {
	return NewAfero(afero.NewOsFs())
}

// NewAfero adapts any afero filesystem, e.g. a MemMapFs or a
// ReadOnlyFs, to types.FS.
func NewAfero(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) Rename(oldpath, newpath string) error {
	return a.fs.Rename(oldpath, newpath)
}
