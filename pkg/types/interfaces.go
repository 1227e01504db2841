package types

import "io/fs"

// FS is the filesystem surface the installer writes fonts through:
// existence checks, directory creation and an atomic write-then-rename.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	Rename(oldpath, newpath string) error
}
