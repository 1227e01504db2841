package fontinstall

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install TTF, OTF, WOFF and WOFF2 fonts"
	MsgInstallShort    = "Install font files or directories of fonts"
	MsgDetectShort     = "Show what install would do with font files"
	MsgWhereShort      = "Print the font install directories"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigSource = "# loaded from %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrInstallFailed = "%d of %d fonts failed to install"
	MsgErrDetectFailed  = "%d of %d files could not be inspected"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/fontinstall/config.toml)"
	MsgFlagFormat      = "Output format: auto, term, text, json or yaml"
	MsgFlagGlobal      = "Install for all users instead of the current user"
	MsgFlagFast        = "Trust file extensions instead of reading file contents"
	MsgFlagPrefer      = "Format preference when a font exists in several formats"
	MsgFlagClearCache  = "Refresh the OS font cache after installing"
	MsgFlagConcurrency = "Number of fonts installed at once from a directory"
	MsgFlagWoff2Tool   = "Path or name of the woff2_decompress executable"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/detect-long.txt
	msgDetectLongRaw string
	MsgDetectLong    = strings.TrimSpace(msgDetectLongRaw)

	//go:embed msgs/where-long.txt
	msgWhereLongRaw string
	MsgWhereLong    = strings.TrimSpace(msgWhereLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
