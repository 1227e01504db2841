package types

import (
	"path/filepath"
	"strings"
)

// Identity is the canonical full name of a font (name ID 4), e.g.
// "Inter Black". Two files with the same Identity are the same logical
// font regardless of container.
type Identity string

func (id Identity) String() string {
	return string(id)
}

// FileName returns the destination file name for the identity within a
// family. Path separators and NUL cannot appear in a file name and are
// replaced with '-'.
func (id Identity) FileName(family Family) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, string(id))
	return name + family.Extension()
}

// FontFile is a path together with its detected container format.
type FontFile struct {
	Path   string
	Format Format
}

// InstallTarget is where a font ends up.
type InstallTarget struct {
	Dir      string
	FileName string
}

// Path joins the directory and file name.
func (t InstallTarget) Path() string {
	return filepath.Join(t.Dir, t.FileName)
}
