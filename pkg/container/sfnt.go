package container

import (
	"encoding/binary"
	"sort"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

const (
	sfntHeaderSize      = 12
	sfntTableRecordSize = 16
)

// Table is one decoded font table.
type Table struct {
	Tag      Tag
	Checksum uint32
	Data     []byte
}

// Font is the table set of a single font, independent of container.
type Font struct {
	Flavor uint32
	Tables []Table
}

// Table returns the data for tag.
func (f *Font) Table(tag Tag) ([]byte, bool) {
	for _, t := range f.Tables {
		if t.Tag == tag {
			return t.Data, true
		}
	}
	return nil, false
}

// Sniff classifies data by its leading signature. It looks at four bytes
// only and performs no validation.
func Sniff(data []byte) types.Format {
	if len(data) < 4 {
		return types.FormatNone
	}
	switch binary.BigEndian.Uint32(data) {
	case FlavorTrueType, FlavorApple:
		return types.FormatTTF
	case FlavorCFF:
		return types.FormatOTF
	case SignatureWOFF:
		return types.FormatWOFF
	case SignatureWOFF2:
		return types.FormatWOFF2
	}
	return types.FormatNone
}

// ParseSFNT reads the table directory of a native font.
func ParseSFNT(data []byte) (*Font, error) {
	if len(data) < sfntHeaderSize {
		return nil, errors.New(errors.ErrParse, "sfnt header is truncated")
	}

	flavor := binary.BigEndian.Uint32(data)
	switch flavor {
	case FlavorTrueType, FlavorApple, FlavorCFF:
	case FlavorCollection:
		return nil, errCollection()
	default:
		return nil, errors.Newf(errors.ErrParse, "unknown sfnt version 0x%08x", flavor)
	}

	numTables := int(binary.BigEndian.Uint16(data[4:]))
	if numTables == 0 {
		return nil, errors.New(errors.ErrParse, "sfnt has no tables")
	}
	if sfntHeaderSize+numTables*sfntTableRecordSize > len(data) {
		return nil, errors.New(errors.ErrParse, "sfnt table directory is truncated")
	}

	font := &Font{Flavor: flavor, Tables: make([]Table, 0, numTables)}
	for i := 0; i < numTables; i++ {
		rec := data[sfntHeaderSize+i*sfntTableRecordSize:]
		tag := Tag(binary.BigEndian.Uint32(rec))
		offset := uint64(binary.BigEndian.Uint32(rec[8:]))
		length := uint64(binary.BigEndian.Uint32(rec[12:]))
		if offset+length > uint64(len(data)) {
			return nil, errors.Newf(errors.ErrParse, "table %q extends past end of file", tag.String())
		}
		font.Tables = append(font.Tables, Table{
			Tag:      tag,
			Checksum: binary.BigEndian.Uint32(rec[4:]),
			Data:     data[offset : offset+length],
		})
	}

	return font, nil
}

// SFNT encodes the font as a native sfnt file. Tables are written in tag
// order, each padded to four bytes.
func (f *Font) SFNT() []byte {
	tables := make([]Table, len(f.Tables))
	copy(tables, f.Tables)
	sort.Slice(tables, func(i, j int) bool { return tables[i].Tag < tables[j].Tag })

	numTables := len(tables)
	entrySelector := 0
	for (1 << (entrySelector + 1)) <= numTables {
		entrySelector++
	}
	searchRange := (1 << entrySelector) * sfntTableRecordSize
	rangeShift := numTables*sfntTableRecordSize - searchRange
	if rangeShift < 0 {
		rangeShift = 0
	}

	size := sfntHeaderSize + numTables*sfntTableRecordSize
	for _, t := range tables {
		size += pad4(len(t.Data))
	}

	out := make([]byte, size)
	binary.BigEndian.PutUint32(out[0:], f.Flavor)
	binary.BigEndian.PutUint16(out[4:], uint16(numTables))
	binary.BigEndian.PutUint16(out[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(out[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(out[10:], uint16(rangeShift))

	offset := sfntHeaderSize + numTables*sfntTableRecordSize
	for i, t := range tables {
		rec := out[sfntHeaderSize+i*sfntTableRecordSize:]
		binary.BigEndian.PutUint32(rec[0:], uint32(t.Tag))
		binary.BigEndian.PutUint32(rec[4:], t.Checksum)
		binary.BigEndian.PutUint32(rec[8:], uint32(offset))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t.Data)))
		copy(out[offset:], t.Data)
		offset += pad4(len(t.Data))
	}

	return out
}

// ReadTable returns one table from any supported container.
func ReadTable(data []byte, tag Tag) ([]byte, error) {
	switch Sniff(data) {
	case types.FormatTTF, types.FormatOTF:
		font, err := ParseSFNT(data)
		if err != nil {
			return nil, err
		}
		return lookup(font, tag)
	case types.FormatWOFF:
		font, err := ParseWOFF(data)
		if err != nil {
			return nil, err
		}
		return lookup(font, tag)
	case types.FormatWOFF2:
		return WOFF2Table(data, tag)
	}
	if len(data) >= 4 && binary.BigEndian.Uint32(data) == FlavorCollection {
		return nil, errCollection()
	}
	return nil, errors.New(errors.ErrParse, "not a font container")
}

func lookup(font *Font, tag Tag) ([]byte, error) {
	table, ok := font.Table(tag)
	if !ok {
		return nil, errors.Newf(errors.ErrParse, "font has no %q table", tag.String())
	}
	return table, nil
}

func errCollection() error {
	return errors.New(errors.ErrParse, "font collections are not supported")
}

func pad4(n int) int {
	return (n + 3) &^ 3
}
