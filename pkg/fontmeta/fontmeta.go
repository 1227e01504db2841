package fontmeta

import (
	"os"

	"github.com/tbjgolden/install-custom-font/pkg/container"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// ExtractIdentity reads the font at path and returns its full name.
// Unreadable files are IO errors; anything wrong with the font data is a
// PARSE error. No fallback identity is ever derived from the file name.
func ExtractIdentity(path string) (types.Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot read %s", path)
	}

	id, err := IdentityFromBytes(data)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrParse, "cannot read identity of %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("fontmeta")
	logger.Debug().
		Str("path", path).
		Str("identity", id.String()).
		Msg("Extracted identity")
	return id, nil
}

// IdentityFromBytes reads the identity of a font held in memory.
func IdentityFromBytes(data []byte) (types.Identity, error) {
	table, err := container.ReadTable(data, container.TagName)
	if err != nil {
		return "", ensureParse(err)
	}
	name, err := FullName(table)
	if err != nil {
		return "", err
	}
	return types.Identity(name), nil
}

func ensureParse(err error) error {
	if errors.IsErrorCode(err, errors.ErrParse) {
		return err
	}
	return errors.Wrap(err, errors.ErrParse, "cannot parse font")
}
