package convert

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/font/sfnt"

	"github.com/tbjgolden/install-custom-font/pkg/container"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// UsageSignature is the fragment of woff2_decompress's usage message that
// identifies the tool when it is run without arguments.
const UsageSignature = "One argument"

// toolWaitDelay bounds how long output pipes are drained after the tool
// exits or times out, so a lingering child cannot hold them open.
const toolWaitDelay = time.Second

// Converter produces native font bytes from a detected font file.
type Converter struct {
	tool    string
	timeout time.Duration
	tempDir string
	logger  zerolog.Logger
}

// New creates a converter from the conversion settings in opts.
func New(opts types.Options) *Converter {
	opts = opts.WithDefaults()
	return &Converter{
		tool:    opts.Woff2Tool,
		timeout: opts.ToolTimeout,
		tempDir: opts.TempDir,
		logger:  logging.GetLogger("convert"),
	}
}

// Convert returns the bytes to install for file. The identity names the
// temporary files used for WOFF 2.0 conversion.
func (c *Converter) Convert(ctx context.Context, file types.FontFile, id types.Identity) ([]byte, error) {
	switch file.Format {
	case types.FormatTTF, types.FormatOTF:
		data, err := os.ReadFile(file.Path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "cannot read %s", file.Path)
		}
		return data, nil

	case types.FormatWOFF:
		return c.unwrapWOFF(file.Path)

	case types.FormatWOFF2:
		return c.decompressWOFF2(ctx, file.Path, id)
	}

	return nil, errors.Newf(errors.ErrUnsupported, "cannot convert format %q", file.Format.String())
}

func (c *Converter) unwrapWOFF(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read %s", path)
	}

	out, err := container.UnwrapWOFF(data)
	if err != nil {
		return nil, err
	}
	if err := validateNative(out); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("path", path).Int("bytes", len(out)).Msg("Unwrapped woff")
	return out, nil
}

// ProbeTool checks that the configured decompressor exists and answers
// with its usage message when given no arguments.
func (c *Converter) ProbeTool(ctx context.Context) error {
	path, err := exec.LookPath(c.tool)
	if err != nil {
		return errors.Wrapf(err, errors.ErrToolMissing, "%s is not installed", c.tool)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// The tool exits non-zero when run without arguments; only its
	// output matters here.
	cmd := exec.CommandContext(ctx, path)
	cmd.WaitDelay = toolWaitDelay
	output, _ := cmd.CombinedOutput()
	if !strings.Contains(string(output), UsageSignature) {
		return errors.Newf(errors.ErrToolMissing, "%s is not installed (unexpected usage output)", c.tool).
			WithDetail("output", strings.TrimSpace(string(output)))
	}
	return nil
}

func (c *Converter) decompressWOFF2(ctx context.Context, path string, id types.Identity) ([]byte, error) {
	if err := c.ProbeTool(ctx); err != nil {
		return nil, err
	}

	work, err := os.MkdirTemp(c.tempDir, "fontinstall-*")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "cannot create temporary directory")
	}
	defer func() {
		if err := os.RemoveAll(work); err != nil {
			c.logger.Warn().Err(err).Str("dir", work).Msg("Failed to remove temporary directory")
		}
	}()

	stem := filepath.Join(work, strings.TrimSuffix(id.FileName(types.FamilyTrueType), types.FamilyTrueType.Extension()))
	input := stem + ".woff2"
	output := stem + types.FamilyTrueType.Extension()

	for _, stale := range []string{input, output} {
		if err := os.Remove(stale); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrIO, "cannot remove stale %s", stale)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read %s", path)
	}
	if err := os.WriteFile(input, data, 0600); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot stage %s", path)
	}

	if err := c.run(ctx, input); err != nil {
		return nil, err
	}

	out, err := os.ReadFile(output)
	if os.IsNotExist(err) {
		return nil, errors.Newf(errors.ErrConversion, "%s produced no output", c.tool)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read converted %s", output)
	}
	if err := validateNative(out); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("path", path).Int("bytes", len(out)).Msg("Decompressed woff2")
	return out, nil
}

func (c *Converter) run(ctx context.Context, input string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := []string{input}
	logging.LogCommand(c.logger, c.tool, args)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.tool, args...)
	cmd.Dir = filepath.Dir(input)
	cmd.Stderr = &stderr
	cmd.WaitDelay = toolWaitDelay

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrapf(ctx.Err(), errors.ErrConversion, "%s did not finish", c.tool)
		}
		return errors.Wrapf(err, errors.ErrConversion, "%s failed", c.tool).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// validateNative checks that converted output is a native font.
// TrueType output is parsed by an independent reader; CFF outlines are
// accepted on their signature alone.
func validateNative(data []byte) error {
	switch container.Sniff(data) {
	case types.FormatTTF:
		if _, err := sfnt.Parse(data); err != nil {
			return errors.Wrap(err, errors.ErrConversion, "converted font is not valid TrueType")
		}
		return nil
	case types.FormatOTF:
		return nil
	}
	return errors.New(errors.ErrConversion, "converted output is not a native font")
}
