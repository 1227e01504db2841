package testutil

import (
	"io/fs"
	"sync"

	"github.com/spf13/afero"

	"github.com/tbjgolden/install-custom-font/pkg/filesystem"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// AferoFS is a types.FS over an afero filesystem whose individual
// operations can be made to fail with FailOn.
type AferoFS struct {
	afs  afero.Fs
	next types.FS

	mu       sync.Mutex
	failures map[string]error
}

// NewAferoFS wraps an afero filesystem.
func NewAferoFS(afs afero.Fs) *AferoFS {
	return &AferoFS{afs: afs, next: filesystem.NewAfero(afs), failures: make(map[string]error)}
}

// NewOSFS passes everything through to the real filesystem.
func NewOSFS() *AferoFS {
	return NewAferoFS(afero.NewOsFs())
}

// NewReadOnlyOSFS reads the real filesystem but rejects every write.
func NewReadOnlyOSFS() *AferoFS {
	return NewAferoFS(afero.NewReadOnlyFs(afero.NewOsFs()))
}

// NewMemoryFS returns an empty in-memory filesystem.
func NewMemoryFS() *AferoFS {
	return NewAferoFS(afero.NewMemMapFs())
}

// Afero exposes the underlying filesystem for seeding and inspection.
func (a *AferoFS) Afero() afero.Fs {
	return a.afs
}

// FailOn makes every call to op ("stat", "write", "mkdir", "remove" or
// "rename") return err.
func (a *AferoFS) FailOn(op string, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[op] = err
}

func (a *AferoFS) injected(op, path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err, ok := a.failures[op]; ok {
		return &fs.PathError{Op: op, Path: path, Err: err}
	}
	return nil
}

func (a *AferoFS) Stat(name string) (fs.FileInfo, error) {
	if err := a.injected("stat", name); err != nil {
		return nil, err
	}
	return a.next.Stat(name)
}

func (a *AferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := a.injected("write", name); err != nil {
		return err
	}
	return a.next.WriteFile(name, data, perm)
}

func (a *AferoFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := a.injected("mkdir", path); err != nil {
		return err
	}
	return a.next.MkdirAll(path, perm)
}

func (a *AferoFS) Remove(name string) error {
	if err := a.injected("remove", name); err != nil {
		return err
	}
	return a.next.Remove(name)
}

// Rename failures are keyed on the destination path.
func (a *AferoFS) Rename(oldpath, newpath string) error {
	if err := a.injected("rename", newpath); err != nil {
		return err
	}
	return a.next.Rename(oldpath, newpath)
}

var _ types.FS = (*AferoFS)(nil)
