package container

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
)

const woff2HeaderSize = 48

// WOFF2Entry is one entry of a WOFF 2.0 table directory.
type WOFF2Entry struct {
	Tag              Tag
	TransformVersion byte
	OrigLength       uint32
	TransformLength  uint32
	Transformed      bool
}

// streamLength is the number of bytes the table occupies in the
// decompressed stream.
func (e WOFF2Entry) streamLength() uint32 {
	if e.Transformed {
		return e.TransformLength
	}
	return e.OrigLength
}

// WOFF2Directory is the parsed header and table directory of a WOFF 2.0
// file.
type WOFF2Directory struct {
	Flavor              uint32
	Entries             []WOFF2Entry
	TotalSfntSize       uint32
	TotalCompressedSize uint32

	// streamOffset is where the brotli stream starts.
	streamOffset int
}

// ParseWOFF2Directory reads the WOFF 2.0 header and table directory
// without decompressing anything.
func ParseWOFF2Directory(data []byte) (*WOFF2Directory, error) {
	if len(data) < woff2HeaderSize {
		return nil, errors.New(errors.ErrParse, "woff2 header is truncated")
	}
	if binary.BigEndian.Uint32(data) != SignatureWOFF2 {
		return nil, errors.New(errors.ErrParse, "missing wOF2 signature")
	}

	dir := &WOFF2Directory{
		Flavor:              binary.BigEndian.Uint32(data[4:]),
		TotalSfntSize:       binary.BigEndian.Uint32(data[16:]),
		TotalCompressedSize: binary.BigEndian.Uint32(data[20:]),
	}
	if dir.Flavor == FlavorCollection {
		return nil, errCollection()
	}
	if dir.TotalSfntSize > MaxSFNTSize {
		return nil, errors.Newf(errors.ErrParse, "woff2 declares a %d byte font", dir.TotalSfntSize)
	}

	numTables := int(binary.BigEndian.Uint16(data[12:]))
	if numTables == 0 {
		return nil, errors.New(errors.ErrParse, "woff2 has no tables")
	}

	pos := woff2HeaderSize
	for i := 0; i < numTables; i++ {
		if pos >= len(data) {
			return nil, errors.New(errors.ErrParse, "woff2 table directory is truncated")
		}
		flags := data[pos]
		pos++

		var entry WOFF2Entry
		if idx := flags & 0x3f; idx == 63 {
			if pos+4 > len(data) {
				return nil, errors.New(errors.ErrParse, "woff2 table tag is truncated")
			}
			entry.Tag = Tag(binary.BigEndian.Uint32(data[pos:]))
			pos += 4
		} else {
			entry.Tag = MakeTag(woff2KnownTags[idx])
		}
		entry.TransformVersion = (flags >> 6) & 0x03

		n, size, err := ReadUIntBase128(data[pos:])
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrParse, "bad origLength for woff2 table %q", entry.Tag.String())
		}
		entry.OrigLength = n
		pos += size

		// glyf and loca use version 3 for the null transform; every
		// other table uses version 0.
		if entry.Tag == TagGlyf || entry.Tag == TagLoca {
			entry.Transformed = entry.TransformVersion == 0
		} else {
			entry.Transformed = entry.TransformVersion != 0
		}
		if entry.Transformed {
			n, size, err := ReadUIntBase128(data[pos:])
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrParse, "bad transformLength for woff2 table %q", entry.Tag.String())
			}
			entry.TransformLength = n
			pos += size
		}

		dir.Entries = append(dir.Entries, entry)
	}

	dir.streamOffset = pos
	if uint64(pos)+uint64(dir.TotalCompressedSize) > uint64(len(data)) {
		return nil, errors.New(errors.ErrParse, "woff2 compressed stream is truncated")
	}

	return dir, nil
}

// WOFF2Table returns an untransformed table from a WOFF 2.0 file by
// decompressing the shared brotli stream up to the end of that table.
// Only the table itself is buffered; the stream before it is discarded.
func WOFF2Table(data []byte, tag Tag) ([]byte, error) {
	dir, err := ParseWOFF2Directory(data)
	if err != nil {
		return nil, err
	}

	var start uint64
	found := -1
	for i, e := range dir.Entries {
		if e.Tag == tag {
			found = i
			break
		}
		start += uint64(e.streamLength())
	}
	if found < 0 {
		return nil, errors.Newf(errors.ErrParse, "font has no %q table", tag.String())
	}
	entry := dir.Entries[found]
	if entry.Transformed {
		return nil, errors.Newf(errors.ErrParse, "woff2 table %q is transformed", tag.String())
	}

	if start+uint64(entry.OrigLength) > uint64(dir.TotalSfntSize) {
		return nil, errors.Newf(errors.ErrParse, "woff2 table %q lies outside the declared %d byte font", tag.String(), dir.TotalSfntSize)
	}

	stream := data[dir.streamOffset : dir.streamOffset+int(dir.TotalCompressedSize)]
	r := brotli.NewReader(bytes.NewReader(stream))

	if _, err := io.CopyN(io.Discard, r, int64(start)); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "cannot decompress woff2 table data")
	}
	buf := make([]byte, entry.OrigLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "cannot decompress woff2 table data")
	}

	return buf, nil
}

// ReadUIntBase128 decodes the WOFF 2.0 variable-length integer at the
// start of b and returns it together with its encoded size.
func ReadUIntBase128(b []byte) (uint32, int, error) {
	var accum uint32
	for i := 0; i < 5; i++ {
		if i >= len(b) {
			return 0, 0, errors.New(errors.ErrParse, "UIntBase128 is truncated")
		}
		d := b[i]
		if i == 0 && d == 0x80 {
			return 0, 0, errors.New(errors.ErrParse, "UIntBase128 has leading zeros")
		}
		if accum&0xFE000000 != 0 {
			return 0, 0, errors.New(errors.ErrParse, "UIntBase128 overflows 32 bits")
		}
		accum = accum<<7 | uint32(d&0x7f)
		if d&0x80 == 0 {
			return accum, i + 1, nil
		}
	}
	return 0, 0, errors.New(errors.ErrParse, "UIntBase128 is longer than 5 bytes")
}

// AppendUIntBase128 appends the WOFF 2.0 encoding of v to b.
func AppendUIntBase128(b []byte, v uint32) []byte {
	var tmp [5]byte
	n := 0
	for {
		tmp[n] = byte(v & 0x7f)
		n++
		v >>= 7
		if v == 0 {
			break
		}
	}
	for i := n - 1; i >= 0; i-- {
		d := tmp[i]
		if i > 0 {
			d |= 0x80
		}
		b = append(b, d)
	}
	return b
}
