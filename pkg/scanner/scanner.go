package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tbjgolden/install-custom-font/pkg/detect"
	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/fontmeta"
	"github.com/tbjgolden/install-custom-font/pkg/install"
	"github.com/tbjgolden/install-custom-font/pkg/logging"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// CacheInvalidator refreshes the system font cache.
type CacheInvalidator interface {
	Clear(ctx context.Context) error
}

// ConfirmFunc asks whether the font cache should be cleared.
type ConfirmFunc func(ctx context.Context) bool

// Report is the outcome of scanning one directory.
type Report struct {
	Root string `json:"root" yaml:"root"`

	// Results holds one entry per identity, sorted by identity, followed
	// by fonts whose identity could not be read, sorted by path.
	Results []types.InstallResult `json:"results" yaml:"results"`

	// Candidates counts recognised font files, Skipped everything else.
	Candidates int `json:"candidates" yaml:"candidates"`
	Skipped    int `json:"skipped" yaml:"skipped"`

	Cache *types.CacheOutcome `json:"cache,omitempty" yaml:"cache,omitempty"`
}

// Summary tallies the report's results.
func (r *Report) Summary() types.Summary {
	return types.Summarize(r.Results)
}

// Scanner finds, selects and installs fonts under a directory.
type Scanner struct {
	opts        types.Options
	installer   *install.Installer
	invalidator CacheInvalidator
	logger      zerolog.Logger

	// Confirm, when set, is asked before clearing the cache.
	Confirm ConfirmFunc
}

// New creates a scanner that installs through installer. invalidator may
// be nil when the cache is never cleared.
func New(installer *install.Installer, invalidator CacheInvalidator) *Scanner {
	return &Scanner{
		opts:        installer.Options(),
		installer:   installer,
		invalidator: invalidator,
		logger:      logging.GetLogger("scanner"),
	}
}

// ScanAndInstall installs the best file of every font under root and then
// clears the font cache if configured to.
func (s *Scanner) ScanAndInstall(ctx context.Context, root string) (*Report, error) {
	report, err := s.Scan(ctx, root)
	if err != nil {
		return nil, err
	}
	report.Cache = s.ClearCache(ctx)
	return report, nil
}

// Scan installs the best file of every font under root without touching
// the font cache.
func (s *Scanner) Scan(ctx context.Context, root string) (*Report, error) {
	done := logging.LogOperationStart(s.logger, "scan")
	defer done()

	if err := checkRoot(root); err != nil {
		return nil, err
	}

	report := &Report{Root: root}
	groups := make(map[types.Identity]types.FontFile)
	var unreadable []types.InstallResult

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Warn().Err(walkErr).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}

		file, id, err := s.examine(path)
		if err == nil && file.Format == types.FormatNone {
			report.Skipped++
			return nil
		}
		report.Candidates++
		if err != nil {
			unreadable = append(unreadable, types.Failed(file, "", "", err))
			return nil
		}

		s.choose(groups, id, file)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot scan %s", root)
	}

	report.Results = append(s.installAll(ctx, groups), sortByPath(unreadable)...)

	s.logger.Info().
		Str("root", root).
		Int("identities", len(groups)).
		Int("candidates", report.Candidates).
		Int("skipped", report.Skipped).
		Msg("Scan finished")
	return report, nil
}

// examine detects and identifies one file. A file that is not a font
// comes back with FormatNone and no error. A panic while parsing is
// reported as an INTERNAL error for that file alone.
func (s *Scanner) examine(path string) (file types.FontFile, id types.Identity, err error) {
	file.Path = path
	defer func() {
		if r := recover(); r != nil {
			id = ""
			err = errors.Newf(errors.ErrInternal, "unexpected failure reading %s: %v", path, r)
			s.logger.Error().Str("path", path).Interface("panic", r).Msg("Reading font panicked")
		}
	}()

	file.Format, err = detect.Detect(path, s.opts.Fast)
	if err != nil || file.Format == types.FormatNone {
		return file, "", err
	}
	id, err = fontmeta.ExtractIdentity(path)
	return file, id, err
}

// choose keeps the better of the current and new candidate for id. On
// equal rank the file found last wins.
func (s *Scanner) choose(groups map[types.Identity]types.FontFile, id types.Identity, file types.FontFile) {
	current, ok := groups[id]
	if !ok || s.opts.PreferenceOrder.Rank(file.Format) <= s.opts.PreferenceOrder.Rank(current.Format) {
		if ok {
			s.logger.Debug().
				Str("identity", id.String()).
				Str("chosen", file.Path).
				Str("dropped", current.Path).
				Msg("Replacing candidate")
		}
		groups[id] = file
		return
	}
	s.logger.Debug().
		Str("identity", id.String()).
		Str("chosen", current.Path).
		Str("dropped", file.Path).
		Msg("Keeping candidate")
}

func (s *Scanner) installAll(ctx context.Context, groups map[types.Identity]types.FontFile) []types.InstallResult {
	ids := make([]types.Identity, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	results := make([]types.InstallResult, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)

	for i, id := range ids {
		i, file := i, groups[id]
		g.Go(func() error {
			results[i] = s.installer.Install(ctx, file.Path)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ClearCache runs the cache invalidator when the options ask for it. The
// outcome is nil when clearing is not configured.
func (s *Scanner) ClearCache(ctx context.Context) *types.CacheOutcome {
	if !s.opts.InteractiveCacheClear || s.invalidator == nil {
		return nil
	}

	outcome := &types.CacheOutcome{}
	if s.Confirm != nil && !s.Confirm(ctx) {
		outcome.Declined = true
		return outcome
	}

	outcome.Attempted = true
	if err := s.invalidator.Clear(ctx); err != nil {
		outcome.Warning = errors.Reason(err)
		return outcome
	}
	outcome.Cleared = true
	return outcome
}

// isRegularFile reports whether a walked entry is a regular file,
// following symlinks.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return errors.Newf(errors.ErrNotFound, "directory not found: %s", root)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot stat %s", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrNotADirectory, "not a directory: %s", root)
	}
	return nil
}

func sortByPath(results []types.InstallResult) []types.InstallResult {
	sort.Slice(results, func(i, j int) bool { return results[i].Source < results[j].Source })
	return results
}
