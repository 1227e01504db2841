package fontinstall

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbjgolden/install-custom-font/pkg/config"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
	"github.com/tbjgolden/install-custom-font/pkg/ui"
)

// flagKeys maps command-line flags onto configuration keys. Only flags
// the user actually set override the configuration.
var flagKeys = map[string]string{
	"fast":        "fast",
	"prefer":      "preference_order",
	"clear-cache": "interactive_cache_clear",
	"concurrency": "concurrency",
	"woff2-tool":  "convert.woff2_tool",
}

func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	overrides := make(map[string]interface{})

	if flags.Changed("global") {
		global, _ := flags.GetBool("global")
		scope := types.ScopeUser
		if global {
			scope = types.ScopeSystem
		}
		overrides["scope"] = string(scope)
	}

	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			overrides[key], _ = flags.GetBool(name)
		case "int":
			overrides[key], _ = flags.GetInt(name)
		case "stringSlice":
			overrides[key], _ = flags.GetStringSlice(name)
		default:
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, flagOverrides(cmd))
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func loadOptions(cmd *cobra.Command) (types.Options, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return types.Options{}, err
	}
	return cfg.Options()
}

func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Flags().GetString("format")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// renderFailure reports err on stdout as well when the output format is
// machine-readable, so consumers parsing stdout always get a document.
// err is returned unchanged.
func renderFailure(cmd *cobra.Command, err error) error {
	name, _ := cmd.Flags().GetString("format")
	format, perr := ui.ParseFormat(name)
	if perr != nil || !format.MachineReadable() {
		return err
	}
	if r, rerr := ui.NewRenderer(format, cmd.OutOrStdout()); rerr == nil {
		_ = r.RenderError(err)
	}
	return err
}
