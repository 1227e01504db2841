package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// Destination directories. Home-relative entries are joined onto the
// user's home directory.
const (
	LinuxSystemTrueTypeDir = "/usr/share/fonts/truetype"
	LinuxSystemOpenTypeDir = "/usr/share/fonts/opentype"
	LinuxUserDir           = ".fonts"
	MacSystemDir           = "/Library/Fonts"
	MacUserDir             = "Library/Fonts"
)

// Resolve maps (scope, family, platform) to a destination directory.
// It has no side effects and does not require the directory to exist.
func Resolve(scope types.Scope, family types.Family, platform types.Platform, home string) string {
	if platform.IsLinux() {
		if scope == types.ScopeSystem {
			if family == types.FamilyOpenType {
				return LinuxSystemOpenTypeDir
			}
			return LinuxSystemTrueTypeDir
		}
		return filepath.Join(home, LinuxUserDir)
	}

	if scope == types.ScopeSystem {
		return MacSystemDir
	}
	return filepath.Join(home, MacUserDir)
}

// Layout is Resolve bound to a concrete home directory, platform and
// destination root.
type Layout struct {
	Root     string
	Home     string
	Platform types.Platform
}

// NewLayout builds a Layout from options, falling back to the current
// user's home directory and the running platform.
func NewLayout(opts types.Options) (Layout, error) {
	home := opts.Home
	if home == "" {
		h, err := GetHomeDirectory()
		if err != nil {
			return Layout{}, err
		}
		home = h
	}
	platform := opts.Platform
	if platform == "" {
		platform = types.CurrentPlatform()
	}
	return Layout{Root: opts.DestRoot, Home: home, Platform: platform}, nil
}

// Dir returns the destination directory for a scope and family.
func (l Layout) Dir(scope types.Scope, family types.Family) string {
	dir := Resolve(scope, family, l.Platform, l.Home)
	if l.Root == "" {
		return dir
	}
	return filepath.Join(l.Root, dir)
}

// Target returns where a font with the given identity is filed.
func (l Layout) Target(scope types.Scope, family types.Family, id types.Identity) types.InstallTarget {
	return types.InstallTarget{
		Dir:      l.Dir(scope, family),
		FileName: id.FileName(family),
	}
}

// SiblingTarget returns the cross-family location checked for duplicates.
// Only Linux system installs segregate families into separate
// directories, so ok is false everywhere else.
func (l Layout) SiblingTarget(scope types.Scope, family types.Family, id types.Identity) (target types.InstallTarget, ok bool) {
	if !l.Platform.IsLinux() || scope != types.ScopeSystem {
		return types.InstallTarget{}, false
	}
	return l.Target(scope, family.Sibling(), id), true
}

// EnsureDir creates dir if it is absent. An existing directory is not
// an error.
func EnsureDir(fsys types.FS, dir string) error {
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create destination directory %s", dir)
	}
	return nil
}

// GetHomeDirectory returns the user's home directory. It prefers the xdg
// lookup and falls back to os.UserHomeDir and then $HOME.
func GetHomeDirectory() (string, error) {
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrIO, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
