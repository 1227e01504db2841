package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	tomlv2 "github.com/pelletier/go-toml/v2"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/paths"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

const (
	appDirName     = "fontinstall"
	configFileName = "config.toml"

	// EnvPrefix starts every environment override.
	EnvPrefix = "FONTINSTALL_"
)

// Config mirrors the configuration file.
type Config struct {
	Scope                 string   `koanf:"scope"`
	PreferenceOrder       []string `koanf:"preference_order"`
	Fast                  bool     `koanf:"fast"`
	InteractiveCacheClear bool     `koanf:"interactive_cache_clear"`
	Concurrency           int      `koanf:"concurrency"`

	Convert ConvertConfig `koanf:"convert"`
	Paths   PathsConfig   `koanf:"paths"`

	// Sources lists the files that were loaded, lowest precedence first.
	Sources []string `koanf:"-"`

	k *koanf.Koanf
}

// ConvertConfig configures WOFF 2.0 conversion.
type ConvertConfig struct {
	Woff2Tool   string        `koanf:"woff2_tool"`
	ToolTimeout time.Duration `koanf:"tool_timeout"`
	TempDir     string        `koanf:"temp_dir"`
}

// PathsConfig configures where fonts are installed.
type PathsConfig struct {
	DestRoot string `koanf:"dest_root"`
	Platform string `koanf:"platform"`
	Home     string `koanf:"home"`
}

// UserConfigPath returns the per-user configuration file location. It
// respects XDG_CONFIG_HOME if set, otherwise uses the xdg default.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, appDirName, configFileName)
}

// Load builds the configuration. configFile, when not empty, replaces the
// user config file and must exist. overrides holds flag values keyed by
// dotted config path, e.g. "convert.woff2_tool".
func Load(configFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User or explicit config file
	path := configFile
	if path == "" {
		path = UserConfigPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		path = paths.ExpandHome(path)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
		sources = append(sources, path)
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	cfg := Config{Sources: sources, k: k}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to decode configuration")
	}

	return &cfg, nil
}

// Options validates the configuration and converts it for the pipeline.
func (c *Config) Options() (types.Options, error) {
	opts := types.DefaultOptions()

	scope, err := types.ParseScope(c.Scope)
	if err != nil {
		return opts, errors.Wrap(err, errors.ErrConfigInvalid, "invalid scope")
	}
	opts.Scope = scope

	order, err := types.ParsePreferenceOrder(c.PreferenceOrder)
	if err != nil {
		return opts, errors.Wrap(err, errors.ErrConfigInvalid, "invalid preference_order")
	}
	opts.PreferenceOrder = order

	if c.Concurrency < 1 {
		return opts, errors.Newf(errors.ErrConfigInvalid, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	opts.Concurrency = c.Concurrency

	if c.Convert.ToolTimeout <= 0 {
		return opts, errors.Newf(errors.ErrConfigInvalid, "convert.tool_timeout must be positive, got %s", c.Convert.ToolTimeout)
	}
	opts.ToolTimeout = c.Convert.ToolTimeout

	if strings.TrimSpace(c.Convert.Woff2Tool) == "" {
		return opts, errors.New(errors.ErrConfigInvalid, "convert.woff2_tool must not be empty")
	}
	opts.Woff2Tool = paths.ExpandHome(c.Convert.Woff2Tool)

	platform, err := types.ParsePlatform(c.Paths.Platform)
	if err != nil {
		return opts, errors.Wrap(err, errors.ErrConfigInvalid, "invalid paths.platform")
	}
	opts.Platform = platform

	opts.Fast = c.Fast
	opts.InteractiveCacheClear = c.InteractiveCacheClear
	opts.TempDir = paths.ExpandHome(c.Convert.TempDir)
	opts.DestRoot = paths.ExpandHome(c.Paths.DestRoot)
	opts.Home = paths.ExpandHome(c.Paths.Home)

	return opts, nil
}

// TOML renders the effective configuration.
func (c *Config) TOML() ([]byte, error) {
	if c.k == nil {
		return nil, errors.New(errors.ErrInternal, "configuration was not loaded")
	}
	out, err := tomlv2.Marshal(c.k.Raw())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
	}
	return out, nil
}
