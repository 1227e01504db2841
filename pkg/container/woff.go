package container

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
)

const (
	woffHeaderSize     = 44
	woffTableEntrySize = 20
)

// ParseWOFF decodes every table of a WOFF 1.0 file.
func ParseWOFF(data []byte) (*Font, error) {
	if len(data) < woffHeaderSize {
		return nil, errors.New(errors.ErrParse, "woff header is truncated")
	}
	if binary.BigEndian.Uint32(data) != SignatureWOFF {
		return nil, errors.New(errors.ErrParse, "missing wOFF signature")
	}

	flavor := binary.BigEndian.Uint32(data[4:])
	if flavor == FlavorCollection {
		return nil, errCollection()
	}
	length := binary.BigEndian.Uint32(data[8:])
	if uint64(length) > uint64(len(data)) {
		return nil, errors.Newf(errors.ErrParse, "woff declares %d bytes but file has %d", length, len(data))
	}

	numTables := int(binary.BigEndian.Uint16(data[12:]))
	if numTables == 0 {
		return nil, errors.New(errors.ErrParse, "woff has no tables")
	}
	if uint64(woffHeaderSize+numTables*woffTableEntrySize) > uint64(length) {
		return nil, errors.Newf(errors.ErrParse, "woff declares %d bytes, too short for %d tables", length, numTables)
	}
	data = data[:length]

	font := &Font{Flavor: flavor, Tables: make([]Table, 0, numTables)}
	var total uint64
	for i := 0; i < numTables; i++ {
		entry := data[woffHeaderSize+i*woffTableEntrySize:]
		tag := Tag(binary.BigEndian.Uint32(entry))
		offset := uint64(binary.BigEndian.Uint32(entry[4:]))
		compLength := uint64(binary.BigEndian.Uint32(entry[8:]))
		origLength := uint64(binary.BigEndian.Uint32(entry[12:]))
		checksum := binary.BigEndian.Uint32(entry[16:])

		if offset+compLength > uint64(len(data)) {
			return nil, errors.Newf(errors.ErrParse, "woff table %q extends past end of file", tag.String())
		}
		if compLength > origLength {
			return nil, errors.Newf(errors.ErrParse, "woff table %q is larger compressed than uncompressed", tag.String())
		}
		total += origLength
		if total > MaxSFNTSize {
			return nil, errors.Newf(errors.ErrParse, "woff tables exceed %d bytes", MaxSFNTSize)
		}

		raw := data[offset : offset+compLength]
		if compLength < origLength {
			inflated, err := inflate(raw, origLength)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrParse, "cannot inflate woff table %q", tag.String())
			}
			raw = inflated
		}

		font.Tables = append(font.Tables, Table{Tag: tag, Checksum: checksum, Data: raw})
	}

	return font, nil
}

// UnwrapWOFF converts a WOFF 1.0 file into the equivalent native sfnt.
// The output depends only on the input.
func UnwrapWOFF(data []byte) ([]byte, error) {
	font, err := ParseWOFF(data)
	if err != nil {
		return nil, err
	}
	return font.SFNT(), nil
}

func inflate(compressed []byte, want uint64) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, int64(want)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != want {
		return nil, errors.Newf(errors.ErrParse, "inflated %d bytes, expected %d", len(out), want)
	}
	return out, nil
}
