// Package fontmeta extracts the identity of a font: the full name
// (name ID 4) from its name table.
//
// Identity is read straight from the container, so a WOFF 2.0 file gets
// the same identity as its decompressed TrueType without running any
// external tool. When several name records qualify, Windows Unicode
// English records are preferred, then any Windows Unicode record, then
// Unicode platform records, then Macintosh Roman.
package fontmeta
