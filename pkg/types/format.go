package types

import (
	"fmt"
	"strings"
)

// Format is the container format of a font file.
type Format string

const (
	// FormatNone marks a file that is not one of the supported containers.
	FormatNone Format = ""

	// FormatTTF is a native TrueType sfnt (0x00010000 or 'true').
	FormatTTF Format = "ttf"

	// FormatOTF is a native OpenType sfnt with CFF outlines ('OTTO').
	FormatOTF Format = "otf"

	// FormatWOFF is the zlib-compressed web container (WOFF 1.0).
	FormatWOFF Format = "woff"

	// FormatWOFF2 is the brotli-compressed web container (WOFF 2.0).
	FormatWOFF2 Format = "woff2"
)

// AllFormats lists the supported formats in the default preference order.
func AllFormats() []Format {
	return []Format{FormatTTF, FormatOTF, FormatWOFF, FormatWOFF2}
}

// ParseFormat accepts a format name with or without a leading dot,
// case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")) {
	case FormatTTF:
		return FormatTTF, nil
	case FormatOTF:
		return FormatOTF, nil
	case FormatWOFF:
		return FormatWOFF, nil
	case FormatWOFF2:
		return FormatWOFF2, nil
	}
	return FormatNone, fmt.Errorf("unknown font format %q", s)
}

// Valid reports whether f is one of the four supported formats.
func (f Format) Valid() bool {
	switch f {
	case FormatTTF, FormatOTF, FormatWOFF, FormatWOFF2:
		return true
	}
	return false
}

// Native reports whether f can be installed without conversion.
func (f Format) Native() bool {
	return f == FormatTTF || f == FormatOTF
}

// Family returns the destination family a format is filed under once
// converted. Web formats always convert to TrueType-family files.
func (f Format) Family() Family {
	if f == FormatOTF {
		return FamilyOpenType
	}
	return FamilyTrueType
}

func (f Format) String() string {
	if f == FormatNone {
		return "none"
	}
	return string(f)
}

// Family groups formats by the file extension they are installed with.
type Family string

const (
	FamilyTrueType Family = "truetype"
	FamilyOpenType Family = "opentype"
)

// Extension returns the destination file extension, including the dot.
func (f Family) Extension() string {
	if f == FamilyOpenType {
		return ".otf"
	}
	return ".ttf"
}

// Sibling returns the other family.
func (f Family) Sibling() Family {
	if f == FamilyOpenType {
		return FamilyTrueType
	}
	return FamilyOpenType
}

// Families returns both families in a stable order.
func Families() []Family {
	return []Family{FamilyTrueType, FamilyOpenType}
}
