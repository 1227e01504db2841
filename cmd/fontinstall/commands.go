package fontinstall

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbjgolden/install-custom-font/internal/version"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/fontcache"
	"github.com/tbjgolden/install-custom-font/pkg/install"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/paths"
	"github.com/tbjgolden/install-custom-font/pkg/scanner"
	"github.com/tbjgolden/install-custom-font/pkg/types"
	"github.com/tbjgolden/install-custom-font/pkg/ui"
)

// fontExtensions drives file completion for font arguments.
var fontExtensions = []string{"ttf", "otf", "woff", "woff2"}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "fontinstall",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().String("format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolP("global", "g", false, MsgFlagGlobal)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newWhereCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install PATH...",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.GetLogger("cmd.install")

			opts, err := loadOptions(cmd)
			if err != nil {
				return renderFailure(cmd, err)
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			installer, err := install.New(opts, nil)
			if err != nil {
				return renderFailure(cmd, err)
			}
			sc := scanner.New(installer, fontcache.New(opts.Platform, fontcache.ExecRunner{}))
			sc.Confirm = ui.ConfirmCacheClear

			logger.Info().
				Str("scope", string(opts.Scope)).
				Str("platform", string(opts.Platform)).
				Str("prefer", opts.PreferenceOrder.String()).
				Bool("fast", opts.Fast).
				Strs("paths", args).
				Msg("Installing fonts")

			batch := &types.Batch{}
			for _, arg := range args {
				if info, err := os.Stat(arg); err == nil && info.IsDir() {
					report, err := sc.Scan(ctx, arg)
					if err != nil {
						return renderFailure(cmd, err)
					}
					batch.Add(report.Results...)
					batch.Skipped += report.Skipped
					continue
				}
				batch.Add(installer.Install(ctx, arg))
			}
			batch.Cache = sc.ClearCache(ctx)

			if err := renderer.RenderResult(batch); err != nil {
				return err
			}
			if batch.Failed() {
				return fmt.Errorf(MsgErrInstallFailed, batch.Summary.Failed, len(batch.Results))
			}
			return nil
		},
	}

	cmd.Flags().Bool("fast", false, MsgFlagFast)
	cmd.Flags().StringSlice("prefer", nil, MsgFlagPrefer)
	cmd.Flags().Bool("clear-cache", false, MsgFlagClearCache)
	cmd.Flags().Int("concurrency", types.DefaultConcurrency, MsgFlagConcurrency)
	cmd.Flags().String("woff2-tool", "", MsgFlagWoff2Tool)

	_ = cmd.RegisterFlagCompletionFunc("prefer", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return fontExtensions, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detect FILE...",
		Short:   MsgDetectShort,
		Long:    MsgDetectLong,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return fontExtensions, cobra.ShellCompDirectiveFilterFileExt
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return renderFailure(cmd, err)
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			installer, err := install.New(opts, nil)
			if err != nil {
				return renderFailure(cmd, err)
			}

			inspections := make([]types.Inspection, 0, len(args))
			failed := 0
			for _, arg := range args {
				in := inspect(installer, arg)
				if in.Error != "" {
					failed++
				}
				inspections = append(inspections, in)
			}

			if err := renderer.RenderResult(inspections); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf(MsgErrDetectFailed, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().Bool("fast", false, MsgFlagFast)

	return cmd
}

// inspect describes a file the way install would see it.
func inspect(installer *install.Installer, path string) types.Inspection {
	plan, err := installer.Plan(path)
	in := types.Inspection{
		Path:     path,
		Format:   plan.File.Format,
		Identity: plan.Identity,
	}
	if plan.File.Format.Valid() {
		in.Family = plan.File.Format.Family()
	}
	if err != nil {
		in.Error = errors.Reason(err)
		return in
	}
	in.Target = plan.Target.Path()
	return in
}

func newWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "where",
		Short:   MsgWhereShort,
		Long:    MsgWhereLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return renderFailure(cmd, err)
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			layout, err := paths.NewLayout(opts)
			if err != nil {
				return renderFailure(cmd, err)
			}

			result := &types.Layout{Scope: opts.Scope, Platform: layout.Platform}
			for _, family := range types.Families() {
				result.Destinations = append(result.Destinations, types.Destination{
					Family: family,
					Dir:    layout.Dir(opts.Scope, family),
				})
			}
			return renderer.RenderResult(result)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := cfg.Options(); err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, source := range cfg.Sources {
				fmt.Fprintf(w, MsgConfigSource, source)
			}
			_, err = w.Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
