package container

import "encoding/binary"

// Tag is a four-byte table tag.
type Tag uint32

// MakeTag packs a four-character string into a Tag.
func MakeTag(s string) Tag {
	var b [4]byte
	copy(b[:], s)
	return Tag(binary.BigEndian.Uint32(b[:]))
}

func (t Tag) String() string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(t))
	return string(b[:])
}

// Table tags used directly by this package and its callers.
var (
	TagName = MakeTag("name")
	TagHead = MakeTag("head")
	TagGlyf = MakeTag("glyf")
	TagLoca = MakeTag("loca")
)

// MaxSFNTSize bounds the decoded size of a font. Declared lengths above it
// are rejected before anything is allocated.
const MaxSFNTSize = 256 << 20

// Container signatures and sfnt flavors.
const (
	FlavorTrueType   uint32 = 0x00010000
	FlavorApple      uint32 = 0x74727565 // 'true'
	FlavorCFF        uint32 = 0x4F54544F // 'OTTO'
	FlavorCollection uint32 = 0x74746366 // 'ttcf'
	SignatureWOFF    uint32 = 0x774F4646 // 'wOFF'
	SignatureWOFF2   uint32 = 0x774F4632 // 'wOF2'
)

// woff2KnownTags is indexed by the low six bits of a WOFF 2.0 table
// directory flags byte. Index 63 means the tag follows explicitly.
var woff2KnownTags = [63]string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca", "prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern", "LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS", "GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL", "SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar", "fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar", "mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat", "Gloc", "Feat", "Sill",
}

// KnownTagIndex returns the WOFF 2.0 known-tag index of t, or 63 when t
// must be written explicitly.
func KnownTagIndex(t Tag) byte {
	s := t.String()
	for i, known := range woff2KnownTags {
		if known == s {
			return byte(i)
		}
	}
	return 63
}
