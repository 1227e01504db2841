// pkg/detect/detect_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), in-memory font fixtures
// PURPOSE: Test content sniffing and extension-based detection

package detect_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbjgolden/install-custom-font/pkg/detect"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/testutil"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

func fixtures(t *testing.T) map[types.Format][]byte {
	return map[types.Format][]byte{
		types.FormatTTF:   testutil.GoRegular,
		types.FormatOTF:   testutil.OTF(t, testutil.GoRegular),
		types.FormatWOFF:  testutil.WOFF(t, testutil.GoRegular),
		types.FormatWOFF2: testutil.WOFF2(t, testutil.GoRegular),
	}
}

func TestDetect_ContentAndFastAgree(t *testing.T) {
	dir := t.TempDir()

	for format, data := range fixtures(t) {
		t.Run(format.String(), func(t *testing.T) {
			path := testutil.WriteFile(t, dir, "font."+format.String(), data)

			slow, err := detect.Detect(path, false)
			require.NoError(t, err)
			assert.Equal(t, format, slow)

			fast, err := detect.Detect(path, true)
			require.NoError(t, err)
			assert.Equal(t, format, fast)
		})
	}
}

func TestDetect_MislabeledExtension(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "really-a-woff.ttf", testutil.WOFF(t, testutil.GoBold))

	got, err := detect.Detect(path, false)
	require.NoError(t, err)
	assert.Equal(t, types.FormatWOFF, got, "content wins over extension")

	got, err = detect.Detect(path, true)
	require.NoError(t, err)
	assert.Equal(t, types.FormatTTF, got, "fast mode trusts the extension")
}

func TestDetect_NotAFont(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{"text", "notes.txt", []byte("just some text\n")},
		{"text named like a font", "fake.ttf", []byte("just some text\n")},
		{"empty", "empty.otf", nil},
		{"png", "image.woff", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")},
		{"collection", "family.ttc", []byte("ttcf\x00\x01\x00\x00\x00\x00\x00\x01\x00\x00\x00\x0c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, dir, tt.file, tt.data)
			got, err := detect.Detect(path, false)
			require.NoError(t, err)
			assert.Equal(t, types.FormatNone, got)
		})
	}
}

func TestDetect_AppleTrueType(t *testing.T) {
	data := append([]byte("true"), testutil.GoRegular[4:]...)
	assert.Equal(t, types.FormatTTF, detect.Bytes(data))
}

func TestDetect_Missing(t *testing.T) {
	_, err := detect.Detect(filepath.Join(t.TempDir(), "missing.ttf"), false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestFromExtension(t *testing.T) {
	tests := map[string]types.Format{
		"a.ttf":          types.FormatTTF,
		"b.OTF":          types.FormatOTF,
		"dir/c.woff":     types.FormatWOFF,
		"d.WOFF2":        types.FormatWOFF2,
		"e.ttc":          types.FormatNone,
		"f":              types.FormatNone,
		"archive.tar.gz": types.FormatNone,
	}

	for path, want := range tests {
		assert.Equal(t, want, detect.FromExtension(path), path)
	}
}
