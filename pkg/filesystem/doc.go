// Package filesystem provides the types.FS implementation fonts are
// written through, backed by afero, and the atomic replace-write used to
// place installed fonts.
package filesystem
