package install

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tbjgolden/install-custom-font/pkg/convert"
	"github.com/tbjgolden/install-custom-font/pkg/detect"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/filesystem"
	"github.com/tbjgolden/install-custom-font/pkg/fontmeta"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/paths"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// Installer installs single font files.
type Installer struct {
	opts      types.Options
	fs        types.FS
	layout    paths.Layout
	converter *convert.Converter
	logger    zerolog.Logger
}

// Plan is what Install would do with a file, worked out without touching
// the destination.
type Plan struct {
	File     types.FontFile
	Identity types.Identity
	Target   types.InstallTarget
}

// New creates an installer writing through fsys. A nil fsys means the
// real filesystem.
func New(opts types.Options, fsys types.FS) (*Installer, error) {
	opts = opts.WithDefaults()
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	layout, err := paths.NewLayout(opts)
	if err != nil {
		return nil, err
	}
	return &Installer{
		opts:      opts,
		fs:        fsys,
		layout:    layout,
		converter: convert.New(opts),
		logger:    logging.GetLogger("install"),
	}, nil
}

// Layout returns the destination layout in use.
func (i *Installer) Layout() paths.Layout {
	return i.layout
}

// Options returns the effective options.
func (i *Installer) Options() types.Options {
	return i.opts
}

// Plan validates, detects and identifies path and resolves its target.
// On error the returned Plan holds whatever was learnt before the
// failure.
func (i *Installer) Plan(path string) (Plan, error) {
	plan := Plan{File: types.FontFile{Path: path}}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return plan, errors.Newf(errors.ErrNotFound, "not found: %s", path)
	}

	format, err := detect.Detect(path, i.opts.Fast)
	if err != nil {
		return plan, err
	}
	if format == types.FormatNone {
		return plan, errors.New(errors.ErrUnsupported, "unsupported or undetected format")
	}
	plan.File.Format = format

	id, err := fontmeta.ExtractIdentity(path)
	if err != nil {
		return plan, err
	}
	plan.Identity = id
	plan.Target = i.layout.Target(i.opts.Scope, format.Family(), id)

	return plan, nil
}

// Install puts the font at path into place and reports what happened.
func (i *Installer) Install(ctx context.Context, path string) (result types.InstallResult) {
	done := logging.LogOperationStart(i.logger, "install")
	defer done()

	var plan Plan
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf(errors.ErrInternal, "unexpected failure: %v", r)
			result = types.Failed(plan.File, plan.Identity, targetPath(plan), err)
			i.logger.Error().Str("path", path).Interface("panic", r).Msg("Install panicked")
		}
		i.logResult(result)
	}()

	plan, err := i.Plan(path)
	if err != nil {
		return types.Failed(plan.File, plan.Identity, "", err)
	}
	return i.installPlan(ctx, plan)
}

func (i *Installer) installPlan(ctx context.Context, plan Plan) types.InstallResult {
	file, id, target := plan.File, plan.Identity, plan.Target.Path()

	if err := paths.EnsureDir(i.fs, plan.Target.Dir); err != nil {
		return types.Failed(file, id, target, err)
	}

	exists, err := filesystem.Exists(i.fs, target)
	if err != nil {
		return types.Failed(file, id, target, err)
	}
	if exists {
		return types.AlreadyPresent(file, id, target, "already installed")
	}

	if sibling, ok := i.layout.SiblingTarget(i.opts.Scope, file.Format.Family(), id); ok {
		exists, err := filesystem.Exists(i.fs, sibling.Path())
		if err != nil {
			return types.Failed(file, id, target, err)
		}
		if exists {
			family := file.Format.Family().Sibling()
			msg := fmt.Sprintf("already installed in the %s directory as %s", family, sibling.Path())
			return types.AlreadyPresent(file, id, target, msg)
		}
	}

	if err := ctx.Err(); err != nil {
		return types.Failed(file, id, target, errors.Wrap(err, errors.ErrInternal, "install cancelled"))
	}

	data, err := i.converter.Convert(ctx, file, id)
	if err != nil {
		return types.Failed(file, id, target, err)
	}

	if err := filesystem.WriteFileAtomic(i.fs, target, data, 0644); err != nil {
		return types.Failed(file, id, target, err)
	}

	return types.Installed(file, id, target)
}

func (i *Installer) logResult(r types.InstallResult) {
	event := i.logger.Info()
	if r.Kind == types.ResultFailed {
		event = i.logger.Warn().
			Str("code", string(r.Code)).
			Fields(errors.GetErrorDetails(r.Err))
	}
	event.
		Str("source", r.Source).
		Str("identity", r.Identity.String()).
		Str("target", r.Target).
		Str("result", string(r.Kind)).
		Str("message", r.Message).
		Msg("Install finished")
}

func targetPath(plan Plan) string {
	if plan.Target.FileName == "" {
		return ""
	}
	return plan.Target.Path()
}
