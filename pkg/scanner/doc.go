// Package scanner installs every font found under a directory.
//
// Files are grouped by identity and only one file per identity is
// installed: the one whose format ranks best in the configured
// preference order. A directory holding both Inter.ttf and Inter.woff2
// therefore installs Inter once, from the .ttf, and never runs the WOFF 2.0
// decompressor.
//
// Files that are not fonts are skipped silently. Fonts that cannot be
// read are reported as failed entries without stopping the scan. Only a
// missing or non-directory root is an error.
package scanner
