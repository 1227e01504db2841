package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

var tempCounter atomic.Uint64

// WriteFileAtomic writes data next to name and renames it into place, so
// a reader sees either the old file or the complete new one. A stale file
// at name is replaced. On failure nothing is left at name that was not
// there before.
func WriteFileAtomic(fsys types.FS, name string, data []byte, perm fs.FileMode) error {
	tmpPath := filepath.Join(filepath.Dir(name),
		fmt.Sprintf(".%s.%d-%d.tmp", filepath.Base(name), os.Getpid(), tempCounter.Add(1)))

	if err := fsys.WriteFile(tmpPath, data, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrIO, "cannot write %s", name)
	}

	if err := fsys.Rename(tmpPath, name); err != nil {
		_ = fsys.Remove(tmpPath)
		return errors.Wrapf(err, errors.ErrIO, "cannot move font into place at %s", name)
	}

	return nil
}

// Exists reports whether name exists. Errors other than not-exist are
// returned so callers do not mistake an unreadable directory for an
// empty one.
func Exists(fsys types.FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrIO, "cannot stat %s", name)
}
