package fontmeta

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
)

// NameIDFullName is the name table ID of the full font name.
const NameIDFullName = 4

const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3

	encodingMacRoman   = 0
	encodingWindowsBMP = 1
	encodingWindowsUCS = 10

	languageMacEnglish = 0
	languageWinEnUS    = 0x0409
)

// NameRecord is one entry of a name table.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      []byte
}

// ParseNameTable returns every record of a name table. Records whose
// string data lies outside the table are an error.
func ParseNameTable(table []byte) ([]NameRecord, error) {
	if len(table) < 6 {
		return nil, errors.New(errors.ErrParse, "name table is truncated")
	}
	count := int(binary.BigEndian.Uint16(table[2:]))
	storage := int(binary.BigEndian.Uint16(table[4:]))
	if 6+count*12 > len(table) {
		return nil, errors.New(errors.ErrParse, "name records are truncated")
	}

	records := make([]NameRecord, 0, count)
	for i := 0; i < count; i++ {
		rec := table[6+i*12:]
		length := int(binary.BigEndian.Uint16(rec[8:]))
		offset := storage + int(binary.BigEndian.Uint16(rec[10:]))
		if offset+length > len(table) {
			return nil, errors.Newf(errors.ErrParse, "name record %d extends past end of table", i)
		}
		records = append(records, NameRecord{
			PlatformID: binary.BigEndian.Uint16(rec[0:]),
			EncodingID: binary.BigEndian.Uint16(rec[2:]),
			LanguageID: binary.BigEndian.Uint16(rec[4:]),
			NameID:     binary.BigEndian.Uint16(rec[6:]),
			Value:      table[offset : offset+length],
		})
	}
	return records, nil
}

// FullName returns the best full name in a name table.
func FullName(table []byte) (string, error) {
	records, err := ParseNameTable(table)
	if err != nil {
		return "", err
	}

	best, bestScore := "", 0
	for _, r := range records {
		if r.NameID != NameIDFullName {
			continue
		}
		score := rank(r)
		if score <= bestScore {
			continue
		}
		s, err := decode(r)
		if err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			best, bestScore = s, score
		}
	}

	if best == "" {
		return "", errors.New(errors.ErrParse, "font has no full name")
	}
	return best, nil
}

// rank orders usable records; zero means the encoding is not supported.
func rank(r NameRecord) int {
	switch r.PlatformID {
	case platformWindows:
		if r.EncodingID != encodingWindowsBMP && r.EncodingID != encodingWindowsUCS {
			return 0
		}
		if r.LanguageID == languageWinEnUS {
			return 5
		}
		return 4
	case platformUnicode:
		return 3
	case platformMacintosh:
		if r.EncodingID != encodingMacRoman {
			return 0
		}
		if r.LanguageID == languageMacEnglish {
			return 2
		}
		return 1
	}
	return 0
}

func decode(r NameRecord) (string, error) {
	if r.PlatformID == platformMacintosh {
		b, err := charmap.Macintosh.NewDecoder().Bytes(r.Value)
		return string(b), err
	}
	b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(r.Value)
	return string(b), err
}
