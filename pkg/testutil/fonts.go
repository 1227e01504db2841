package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/tbjgolden/install-custom-font/pkg/container"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// Real TrueType fonts with distinct full names.
var (
	GoRegular = goregular.TTF
	GoBold    = gobold.TTF
	GoItalic  = goitalic.TTF
	GoMono    = gomono.TTF
)

// FullName reads name ID 4 with x/image/font/sfnt, independently of the
// code under test.
func FullName(t testing.TB, ttf []byte) types.Identity {
	t.Helper()
	f, err := sfnt.Parse(ttf)
	require.NoError(t, err)
	name, err := f.Name(nil, sfnt.NameIDFull)
	require.NoError(t, err)
	return types.Identity(name)
}

// OTF retags a TrueType font as 'OTTO'. The result is enough for
// container sniffing and name extraction; it is not a renderable CFF font.
func OTF(t testing.TB, ttf []byte) []byte {
	t.Helper()
	out := bytes.Clone(ttf)
	binary.BigEndian.PutUint32(out, container.FlavorCFF)
	return out
}

// WOFF wraps a native font as WOFF 1.0, zlib-compressing each table that
// shrinks.
func WOFF(t testing.TB, native []byte) []byte {
	t.Helper()
	font, err := container.ParseSFNT(native)
	require.NoError(t, err)

	tables := sortedTables(font)
	numTables := len(tables)
	const headerSize, entrySize = 44, 20

	dir := make([]byte, numTables*entrySize)
	var body []byte
	offset := headerSize + len(dir)
	totalSfntSize := 12 + 16*numTables

	for i, table := range tables {
		stored := table.Data
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		_, err := zw.Write(table.Data)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		if buf.Len() < len(table.Data) {
			stored = buf.Bytes()
		}

		entry := dir[i*entrySize:]
		binary.BigEndian.PutUint32(entry[0:], uint32(table.Tag))
		binary.BigEndian.PutUint32(entry[4:], uint32(offset+len(body)))
		binary.BigEndian.PutUint32(entry[8:], uint32(len(stored)))
		binary.BigEndian.PutUint32(entry[12:], uint32(len(table.Data)))
		binary.BigEndian.PutUint32(entry[16:], table.Checksum)

		body = append(body, stored...)
		for len(body)%4 != 0 {
			body = append(body, 0)
		}
		totalSfntSize += (len(table.Data) + 3) &^ 3
	}

	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[0:], container.SignatureWOFF)
	binary.BigEndian.PutUint32(header[4:], font.Flavor)
	binary.BigEndian.PutUint32(header[8:], uint32(headerSize+len(dir)+len(body)))
	binary.BigEndian.PutUint16(header[12:], uint16(numTables))
	binary.BigEndian.PutUint32(header[16:], uint32(totalSfntSize))
	binary.BigEndian.PutUint16(header[20:], 1)

	return append(append(header, dir...), body...)
}

// WOFF2 wraps a native font as WOFF 2.0 using the null transform for
// every table, so name extraction works but outline reconstruction is
// trivial for the fake decompressor.
func WOFF2(t testing.TB, native []byte) []byte {
	t.Helper()
	font, err := container.ParseSFNT(native)
	require.NoError(t, err)

	tables := sortedTables(font)
	var dir, stream []byte
	totalSfntSize := 12 + 16*len(tables)
	for _, table := range tables {
		flags := container.KnownTagIndex(table.Tag)
		if table.Tag == container.TagGlyf || table.Tag == container.TagLoca {
			flags |= 3 << 6
		}
		dir = append(dir, flags)
		if flags&0x3f == 63 {
			dir = binary.BigEndian.AppendUint32(dir, uint32(table.Tag))
		}
		dir = container.AppendUIntBase128(dir, uint32(len(table.Data)))
		stream = append(stream, table.Data...)
		totalSfntSize += (len(table.Data) + 3) &^ 3
	}

	var compressed bytes.Buffer
	bw := brotli.NewWriter(&compressed)
	_, err = bw.Write(stream)
	require.NoError(t, err)
	require.NoError(t, bw.Close())

	const headerSize = 48
	body := append(dir, compressed.Bytes()...)
	for len(body)%4 != 0 {
		body = append(body, 0)
	}

	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[0:], container.SignatureWOFF2)
	binary.BigEndian.PutUint32(header[4:], font.Flavor)
	binary.BigEndian.PutUint32(header[8:], uint32(headerSize+len(body)))
	binary.BigEndian.PutUint16(header[12:], uint16(len(tables)))
	binary.BigEndian.PutUint32(header[16:], uint32(totalSfntSize))
	binary.BigEndian.PutUint32(header[20:], uint32(compressed.Len()))
	binary.BigEndian.PutUint16(header[24:], 1)

	return append(header, body...)
}

// ShortWOFF is a 64-byte WOFF header whose declared length of 4 bytes
// cannot hold the one table it claims.
func ShortWOFF() []byte {
	data := make([]byte, 64)
	binary.BigEndian.PutUint32(data[0:], container.SignatureWOFF)
	binary.BigEndian.PutUint32(data[4:], container.FlavorTrueType)
	binary.BigEndian.PutUint32(data[8:], 4)
	binary.BigEndian.PutUint16(data[12:], 1)
	return data
}

// OversizedWOFF2 is a WOFF2 header whose table directory declares
// lengths of 0xFFFFFFFF ahead of a name table, for a font of
// totalSfntSize bytes. Nothing follows the directory.
func OversizedWOFF2(totalSfntSize uint32) []byte {
	const entries = 1000
	dir := make([]byte, 0, entries*6+2)
	for i := 0; i < entries; i++ {
		dir = append(dir, container.KnownTagIndex(container.MakeTag("cmap")))
		dir = container.AppendUIntBase128(dir, 0xFFFFFFFF)
	}
	dir = append(dir, container.KnownTagIndex(container.TagName))
	dir = container.AppendUIntBase128(dir, 64)

	header := make([]byte, 48)
	binary.BigEndian.PutUint32(header[0:], container.SignatureWOFF2)
	binary.BigEndian.PutUint32(header[4:], container.FlavorTrueType)
	binary.BigEndian.PutUint32(header[8:], uint32(len(header)+len(dir)))
	binary.BigEndian.PutUint16(header[12:], entries+1)
	binary.BigEndian.PutUint32(header[16:], totalSfntSize)
	return append(header, dir...)
}

func sortedTables(font *container.Font) []container.Table {
	tables := make([]container.Table, len(font.Tables))
	copy(tables, font.Tables)
	sort.Slice(tables, func(i, j int) bool { return tables[i].Tag < tables[j].Tag })
	return tables
}

// WriteFile writes data under dir, creating parents, and returns the path.
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
