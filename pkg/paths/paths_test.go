// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (EnsureDir only)
// PURPOSE: Test destination directory mapping by platform, scope and format

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbjgolden/install-custom-font/pkg/filesystem"
	"github.com/tbjgolden/install-custom-font/pkg/paths"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

func TestResolve(t *testing.T) {
	home := "/home/alex"

	tests := []struct {
		name     string
		scope    types.Scope
		format   types.Format
		platform types.Platform
		want     string
	}{
		{"linux system ttf", types.ScopeSystem, types.FormatTTF, types.PlatformLinux, "/usr/share/fonts/truetype"},
		{"linux system otf", types.ScopeSystem, types.FormatOTF, types.PlatformLinux, "/usr/share/fonts/opentype"},
		{"linux system woff", types.ScopeSystem, types.FormatWOFF, types.PlatformLinux, "/usr/share/fonts/truetype"},
		{"linux system woff2", types.ScopeSystem, types.FormatWOFF2, types.PlatformLinux, "/usr/share/fonts/truetype"},

		{"darwin system ttf", types.ScopeSystem, types.FormatTTF, types.PlatformDarwin, "/Library/Fonts"},
		{"darwin system otf", types.ScopeSystem, types.FormatOTF, types.PlatformDarwin, "/Library/Fonts"},
		{"darwin system woff", types.ScopeSystem, types.FormatWOFF, types.PlatformDarwin, "/Library/Fonts"},
		{"darwin system woff2", types.ScopeSystem, types.FormatWOFF2, types.PlatformDarwin, "/Library/Fonts"},

		{"linux user ttf", types.ScopeUser, types.FormatTTF, types.PlatformLinux, filepath.Join(home, ".fonts")},
		{"linux user otf", types.ScopeUser, types.FormatOTF, types.PlatformLinux, filepath.Join(home, ".fonts")},
		{"linux user woff", types.ScopeUser, types.FormatWOFF, types.PlatformLinux, filepath.Join(home, ".fonts")},
		{"linux user woff2", types.ScopeUser, types.FormatWOFF2, types.PlatformLinux, filepath.Join(home, ".fonts")},

		{"darwin user ttf", types.ScopeUser, types.FormatTTF, types.PlatformDarwin, filepath.Join(home, "Library/Fonts")},
		{"darwin user otf", types.ScopeUser, types.FormatOTF, types.PlatformDarwin, filepath.Join(home, "Library/Fonts")},
		{"darwin user woff", types.ScopeUser, types.FormatWOFF, types.PlatformDarwin, filepath.Join(home, "Library/Fonts")},
		{"darwin user woff2", types.ScopeUser, types.FormatWOFF2, types.PlatformDarwin, filepath.Join(home, "Library/Fonts")},

		{"unknown platform uses mac layout", types.ScopeSystem, types.FormatOTF, types.Platform("freebsd"), "/Library/Fonts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths.Resolve(tt.scope, tt.format.Family(), tt.platform, home)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutTarget(t *testing.T) {
	layout := paths.Layout{Root: "/stage", Home: "/home/alex", Platform: types.PlatformLinux}

	target := layout.Target(types.ScopeSystem, types.FamilyOpenType, "Inter Black")
	assert.Equal(t, "/stage/usr/share/fonts/opentype", target.Dir)
	assert.Equal(t, "Inter Black.otf", target.FileName)
	assert.Equal(t, "/stage/usr/share/fonts/opentype/Inter Black.otf", target.Path())

	user := paths.Layout{Home: "/home/alex", Platform: types.PlatformDarwin}
	assert.Equal(t, "/home/alex/Library/Fonts/Go Mono.ttf", user.Target(types.ScopeUser, types.FamilyTrueType, "Go Mono").Path())
}

func TestLayoutSiblingTarget(t *testing.T) {
	linux := paths.Layout{Home: "/home/alex", Platform: types.PlatformLinux}

	sibling, ok := linux.SiblingTarget(types.ScopeSystem, types.FamilyTrueType, "Inter Regular")
	require.True(t, ok)
	assert.Equal(t, "/usr/share/fonts/opentype/Inter Regular.otf", sibling.Path())

	sibling, ok = linux.SiblingTarget(types.ScopeSystem, types.FamilyOpenType, "Inter Regular")
	require.True(t, ok)
	assert.Equal(t, "/usr/share/fonts/truetype/Inter Regular.ttf", sibling.Path())

	_, ok = linux.SiblingTarget(types.ScopeUser, types.FamilyTrueType, "Inter Regular")
	assert.False(t, ok, "user scope shares one directory")

	darwin := paths.Layout{Home: "/Users/alex", Platform: types.PlatformDarwin}
	_, ok = darwin.SiblingTarget(types.ScopeSystem, types.FamilyTrueType, "Inter Regular")
	assert.False(t, ok, "mac layout is not format-segregated")
}

func TestIdentityFileNameSanitizes(t *testing.T) {
	assert.Equal(t, "AC-DC Bold.ttf", types.Identity("AC/DC Bold").FileName(types.FamilyTrueType))
	assert.Equal(t, "Plain.otf", types.Identity("Plain").FileName(types.FamilyOpenType))
}

func TestNewLayout(t *testing.T) {
	layout, err := paths.NewLayout(types.Options{Home: "/h", Platform: types.PlatformLinux, DestRoot: "/r"})
	require.NoError(t, err)
	assert.Equal(t, paths.Layout{Root: "/r", Home: "/h", Platform: types.PlatformLinux}, layout)

	layout, err = paths.NewLayout(types.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, layout.Home)
	assert.Equal(t, types.CurrentPlatform(), layout.Platform)
}

func TestEnsureDir(t *testing.T) {
	fsys := filesystem.NewOS()
	dir := filepath.Join(t.TempDir(), "a", "b", ".fonts")

	require.NoError(t, paths.EnsureDir(fsys, dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Already present is not an error.
	require.NoError(t, paths.EnsureDir(fsys, dir))
}

func TestExpandHome(t *testing.T) {
	home, err := paths.GetHomeDirectory()
	require.NoError(t, err)

	assert.Equal(t, home, paths.ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "fonts"), paths.ExpandHome("~/fonts"))
	assert.Equal(t, "/abs", paths.ExpandHome("/abs"))
	assert.Equal(t, "~other", paths.ExpandHome("~other"))
}
