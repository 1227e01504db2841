// Package fontcache refreshes the operating system's font cache after
// fonts have been installed. Failures are reported but never undo an
// install.
package fontcache

import (
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// Runner executes one external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Commands returns the cache refresh commands for a platform, in order.
func Commands(platform types.Platform) [][]string {
	if platform.IsLinux() {
		return [][]string{{"fc-cache", "-f"}}
	}
	return [][]string{
		{"atsutil", "databases", "-remove"},
		{"atsutil", "server", "-shutdown"},
		{"atsutil", "server", "-ping"},
	}
}

// Invalidator clears the font cache of one platform.
type Invalidator struct {
	platform types.Platform
	runner   Runner
	logger   zerolog.Logger
}

// New creates an invalidator. A nil runner uses ExecRunner.
func New(platform types.Platform, runner Runner) *Invalidator {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Invalidator{
		platform: platform,
		runner:   runner,
		logger:   logging.GetLogger("fontcache"),
	}
}

// Clear runs every refresh command, even after one fails, and returns a
// CACHE_CLEAR error listing the failures.
func (i *Invalidator) Clear(ctx context.Context) error {
	var failures []error
	for _, command := range Commands(i.platform) {
		logging.LogCommand(i.logger, command[0], command[1:])
		output, err := i.runner.Run(ctx, command[0], command[1:]...)
		if out := strings.TrimSpace(string(output)); out != "" {
			i.logger.Debug().Str("command", command[0]).Str("output", out).Msg("Cache command output")
		}
		if err != nil {
			failures = append(failures, errors.Wrapf(err, errors.ErrCacheClear, "%s failed", strings.Join(command, " ")))
		}
	}

	if len(failures) == 0 {
		i.logger.Info().Str("platform", string(i.platform)).Msg("Font cache cleared")
		return nil
	}

	err := errors.Wrap(stderrors.Join(failures...), errors.ErrCacheClear, "font cache could not be cleared")
	i.logger.Warn().Err(err).Msg("Font cache refresh failed")
	return err
}
