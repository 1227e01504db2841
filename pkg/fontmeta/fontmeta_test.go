// pkg/fontmeta/fontmeta_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), in-memory font fixtures
// PURPOSE: Test identity extraction across containers and name record selection

package fontmeta_test

import (
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/fontmeta"
	"github.com/tbjgolden/install-custom-font/pkg/testutil"
)

func TestExtractIdentity_AllContainers(t *testing.T) {
	dir := t.TempDir()
	want := testutil.FullName(t, testutil.GoMono)
	require.NotEmpty(t, want)

	files := map[string][]byte{
		"mono.ttf":   testutil.GoMono,
		"mono.otf":   testutil.OTF(t, testutil.GoMono),
		"mono.woff":  testutil.WOFF(t, testutil.GoMono),
		"mono.woff2": testutil.WOFF2(t, testutil.GoMono),
	}
	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, name, data)
			got, err := fontmeta.ExtractIdentity(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestExtractIdentity_DistinctFonts(t *testing.T) {
	regular, err := fontmeta.IdentityFromBytes(testutil.GoRegular)
	require.NoError(t, err)
	bold, err := fontmeta.IdentityFromBytes(testutil.GoBold)
	require.NoError(t, err)

	assert.NotEqual(t, regular, bold)
	assert.Equal(t, testutil.FullName(t, testutil.GoBold), bold)
}

func TestExtractIdentity_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := fontmeta.ExtractIdentity(filepath.Join(dir, "nope.ttf"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	})

	t.Run("corrupt font", func(t *testing.T) {
		path := testutil.WriteFile(t, dir, "broken.ttf", testutil.GoRegular[:200])
		_, err := fontmeta.ExtractIdentity(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
	})

	t.Run("truncated woff2 stream", func(t *testing.T) {
		data := testutil.WOFF2(t, testutil.GoRegular)
		binary.BigEndian.PutUint32(data[20:], uint32(len(data)))
		path := testutil.WriteFile(t, dir, "broken.woff2", data)
		_, err := fontmeta.ExtractIdentity(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
	})
}

type record struct {
	platform, encoding, language, nameID uint16
	value                                []byte
}

func buildNameTable(records []record) []byte {
	storageOffset := 6 + 12*len(records)
	table := make([]byte, storageOffset)
	binary.BigEndian.PutUint16(table[2:], uint16(len(records)))
	binary.BigEndian.PutUint16(table[4:], uint16(storageOffset))

	var storage []byte
	for i, r := range records {
		rec := table[6+12*i:]
		binary.BigEndian.PutUint16(rec[0:], r.platform)
		binary.BigEndian.PutUint16(rec[2:], r.encoding)
		binary.BigEndian.PutUint16(rec[4:], r.language)
		binary.BigEndian.PutUint16(rec[6:], r.nameID)
		binary.BigEndian.PutUint16(rec[8:], uint16(len(r.value)))
		binary.BigEndian.PutUint16(rec[10:], uint16(len(storage)))
		storage = append(storage, r.value...)
	}
	return append(table, storage...)
}

func utf16be(t *testing.T, s string) []byte {
	b, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestFullName_RecordPreference(t *testing.T) {
	mac := record{1, 0, 0, 4, []byte("Mac Name")}
	macFrench := record{1, 0, 2, 4, []byte("Nom Mac")}
	unicodePlatform := record{0, 3, 0, 4, utf16be(t, "Unicode Name")}
	winGerman := record{3, 1, 0x0407, 4, utf16be(t, "Windows Deutsch")}
	winEnglish := record{3, 1, 0x0409, 4, utf16be(t, "Windows English")}
	family := record{3, 1, 0x0409, 1, utf16be(t, "Family Only")}

	tests := []struct {
		name    string
		records []record
		want    string
	}{
		{"windows english wins", []record{mac, unicodePlatform, winGerman, winEnglish}, "Windows English"},
		{"any windows language next", []record{mac, winGerman, unicodePlatform}, "Windows Deutsch"},
		{"unicode platform before mac", []record{mac, unicodePlatform}, "Unicode Name"},
		{"mac english", []record{macFrench, mac}, "Mac Name"},
		{"mac other language", []record{macFrench}, "Nom Mac"},
		{"other name ids ignored", []record{family, mac}, "Mac Name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fontmeta.FullName(buildNameTable(tt.records))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFullName_MacRoman(t *testing.T) {
	// 0x8E is e-acute in Mac Roman.
	got, err := fontmeta.FullName(buildNameTable([]record{{1, 0, 0, 4, []byte("Caf\x8e Sans")}}))
	require.NoError(t, err)
	assert.Equal(t, "Café Sans", got)
}

func TestFullName_Missing(t *testing.T) {
	tests := map[string][]byte{
		"no records":     buildNameTable(nil),
		"only family":    buildNameTable([]record{{3, 1, 0x0409, 1, utf16be(t, "Family")}}),
		"blank":          buildNameTable([]record{{3, 1, 0x0409, 4, utf16be(t, "   ")}}),
		"unknown symbol": buildNameTable([]record{{3, 0, 0x0409, 4, utf16be(t, "Symbol")}}),
		"truncated":      {0, 0, 0},
	}

	for name, table := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := fontmeta.FullName(table)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
		})
	}
}

func TestParseNameTable_OutOfBounds(t *testing.T) {
	table := buildNameTable([]record{{3, 1, 0x0409, 4, utf16be(t, "Name")}})
	_, err := fontmeta.ParseNameTable(table[:len(table)-2])
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}
