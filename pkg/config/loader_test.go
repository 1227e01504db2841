// pkg/config/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir), environment (t.Setenv)
// PURPOSE: Test configuration layering and validation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// isolate points the user config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "user", cfg.Scope)
	assert.Equal(t, []string{"ttf", "otf", "woff", "woff2"}, cfg.PreferenceOrder)
	assert.Equal(t, 1, cfg.Concurrency)
	assert.Equal(t, "woff2_decompress", cfg.Convert.Woff2Tool)
	assert.Equal(t, 60*time.Second, cfg.Convert.ToolTimeout)
	assert.Empty(t, cfg.Sources)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, types.ScopeUser, opts.Scope)
	assert.Equal(t, types.DefaultPreferenceOrder(), opts.PreferenceOrder)
	assert.Equal(t, types.CurrentPlatform(), opts.Platform)
	assert.False(t, opts.Fast)
	assert.False(t, opts.InteractiveCacheClear)
}

func TestLoad_UserFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "fontinstall", "config.toml"), `
scope = "system"
preference_order = ["woff2", "woff", "otf", "ttf"]

[convert]
tool_timeout = "5s"

[paths]
platform = "linux"
dest_root = "/tmp/stage"
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{UserConfigPath()}, cfg.Sources)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, types.ScopeSystem, opts.Scope)
	assert.Equal(t, types.FormatWOFF2, opts.PreferenceOrder[0])
	assert.Equal(t, 5*time.Second, opts.ToolTimeout)
	assert.Equal(t, types.PlatformLinux, opts.Platform)
	assert.Equal(t, "/tmp/stage", opts.DestRoot)
	assert.Equal(t, "woff2_decompress", opts.Woff2Tool, "unset keys keep their defaults")
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	explicit := filepath.Join(dir, "custom.toml")
	writeConfig(t, explicit, `
concurrency = 2
fast = true

[convert]
woff2_tool = "/from/file"
`)

	t.Setenv("FONTINSTALL_CONCURRENCY", "3")
	t.Setenv("FONTINSTALL_CONVERT__WOFF2_TOOL", "/from/env")
	t.Setenv("FONTINSTALL_PREFERENCE_ORDER", "otf,ttf,woff,woff2")

	cfg, err := Load(explicit, map[string]interface{}{
		"concurrency": 4,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{explicit}, cfg.Sources)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, 4, opts.Concurrency, "flags beat env")
	assert.Equal(t, "/from/env", opts.Woff2Tool, "env beats file")
	assert.True(t, opts.Fast, "file beats defaults")
	assert.Equal(t, types.FormatOTF, opts.PreferenceOrder[0])
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeConfig(t, path, "scope = [unterminated")

	_, err := Load(path, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestOptions_Invalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name      string
		overrides map[string]interface{}
	}{
		{"scope", map[string]interface{}{"scope": "everyone"}},
		{"short preference order", map[string]interface{}{"preference_order": []string{"ttf", "otf"}}},
		{"duplicate preference", map[string]interface{}{"preference_order": []string{"ttf", "ttf", "woff", "woff2"}}},
		{"concurrency", map[string]interface{}{"concurrency": 0}},
		{"timeout", map[string]interface{}{"convert.tool_timeout": "-1s"}},
		{"empty tool", map[string]interface{}{"convert.woff2_tool": " "}},
		{"platform", map[string]interface{}{"paths.platform": "plan9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("", tt.overrides)
			require.NoError(t, err)
			_, err = cfg.Options()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid), err.Error())
		})
	}
}

func TestGlobalAlias(t *testing.T) {
	isolate(t)
	cfg, err := Load("", map[string]interface{}{"scope": "global"})
	require.NoError(t, err)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, types.ScopeSystem, opts.Scope)
}

func TestTOML(t *testing.T) {
	isolate(t)
	cfg, err := Load("", map[string]interface{}{"convert.woff2_tool": "/opt/bin/woff2_decompress"})
	require.NoError(t, err)

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "/opt/bin/woff2_decompress")
	assert.Contains(t, string(out), "[paths]")
	assert.Contains(t, DefaultConfigContent(), "preference_order")
}
