package detect

import (
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/tbjgolden/install-custom-font/pkg/container"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// sniffLimit matches the number of bytes mimetype inspects by default.
const sniffLimit = 3072

// mimeFormats maps the mimetype names of supported containers to formats.
var mimeFormats = []struct {
	mime   string
	format types.Format
}{
	{"font/ttf", types.FormatTTF},
	{"font/otf", types.FormatOTF},
	{"font/woff", types.FormatWOFF},
	{"font/woff2", types.FormatWOFF2},
}

// Detect returns the container format of path, or types.FormatNone when
// the file is not a supported font. An error is returned only when the
// file cannot be read.
func Detect(path string, fast bool) (types.Format, error) {
	if fast {
		return FromExtension(path), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return types.FormatNone, errors.Wrapf(err, errors.ErrIO, "cannot open %s", path)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, sniffLimit)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return types.FormatNone, errors.Wrapf(err, errors.ErrIO, "cannot read %s", path)
	}

	format := Bytes(head[:n])
	logger := logging.GetLogger("detect")
	logger.Trace().
		Str("path", path).
		Str("format", format.String()).
		Msg("Sniffed content")
	return format, nil
}

// Bytes classifies in-memory content the same way Detect does.
func Bytes(data []byte) types.Format {
	m := mimetype.Detect(data)
	for _, mf := range mimeFormats {
		if m.Is(mf.mime) {
			return mf.format
		}
	}
	// mimetype does not know the Apple 'true' sfnt version.
	if container.Sniff(data) == types.FormatTTF {
		return types.FormatTTF
	}
	return types.FormatNone
}

// FromExtension trusts the file name.
func FromExtension(path string) types.Format {
	f, err := types.ParseFormat(filepath.Ext(path))
	if err != nil {
		return types.FormatNone
	}
	return f
}
