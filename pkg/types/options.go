package types

import (
	"fmt"
	"strings"
	"time"
)

// PreferenceOrder ranks formats when several files share an Identity.
// Lower index wins.
type PreferenceOrder []Format

// DefaultPreferenceOrder is ttf, otf, woff, woff2.
func DefaultPreferenceOrder() PreferenceOrder {
	return PreferenceOrder(AllFormats())
}

// ParsePreferenceOrder parses a list of format names and validates it.
func ParsePreferenceOrder(names []string) (PreferenceOrder, error) {
	order := make(PreferenceOrder, 0, len(names))
	for _, name := range names {
		f, err := ParseFormat(name)
		if err != nil {
			return nil, err
		}
		order = append(order, f)
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks that the order is a permutation of the four formats.
func (p PreferenceOrder) Validate() error {
	if len(p) != len(AllFormats()) {
		return fmt.Errorf("preference order must list all %d formats, got %d", len(AllFormats()), len(p))
	}
	seen := make(map[Format]bool, len(p))
	for _, f := range p {
		if !f.Valid() {
			return fmt.Errorf("preference order contains unknown format %q", string(f))
		}
		if seen[f] {
			return fmt.Errorf("preference order lists %s twice", f)
		}
		seen[f] = true
	}
	return nil
}

// Rank returns the index of f, or len(p) when f is absent.
func (p PreferenceOrder) Rank(f Format) int {
	for i, candidate := range p {
		if candidate == f {
			return i
		}
	}
	return len(p)
}

func (p PreferenceOrder) String() string {
	names := make([]string, len(p))
	for i, f := range p {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

// Default values for Options.
const (
	DefaultWoff2Tool   = "woff2_decompress"
	DefaultToolTimeout = 60 * time.Second
	DefaultConcurrency = 1
)

// Options configures the install pipeline and the directory scanner.
type Options struct {
	// Scope selects user or system-wide installation.
	Scope Scope

	// PreferenceOrder breaks ties between files sharing an Identity.
	PreferenceOrder PreferenceOrder

	// Fast trusts file extensions instead of sniffing content.
	Fast bool

	// InteractiveCacheClear runs the cache invalidator after a scan.
	InteractiveCacheClear bool

	// Concurrency bounds how many identity groups install at once.
	Concurrency int

	// Platform picks the destination layout.
	Platform Platform

	// Home is the user's home directory for user-scope installs.
	Home string

	// DestRoot is prepended to every destination directory. Empty means
	// the real filesystem root.
	DestRoot string

	// Woff2Tool is the decompressor executable name or path.
	Woff2Tool string

	// ToolTimeout bounds a single decompressor run.
	ToolTimeout time.Duration

	// TempDir is where per-conversion working directories are created.
	// Empty means os.TempDir().
	TempDir string
}

// DefaultOptions returns options for a user-scope install on the running
// platform. Home is left empty and resolved by the paths package.
func DefaultOptions() Options {
	return Options{
		Scope:           ScopeUser,
		PreferenceOrder: DefaultPreferenceOrder(),
		Concurrency:     DefaultConcurrency,
		Platform:        CurrentPlatform(),
		Woff2Tool:       DefaultWoff2Tool,
		ToolTimeout:     DefaultToolTimeout,
	}
}

// WithDefaults fills zero-valued fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Scope == "" {
		o.Scope = d.Scope
	}
	if len(o.PreferenceOrder) == 0 {
		o.PreferenceOrder = d.PreferenceOrder
	}
	if o.Concurrency < 1 {
		o.Concurrency = d.Concurrency
	}
	if o.Platform == "" {
		o.Platform = d.Platform
	}
	if o.Woff2Tool == "" {
		o.Woff2Tool = d.Woff2Tool
	}
	if o.ToolTimeout <= 0 {
		o.ToolTimeout = d.ToolTimeout
	}
	return o
}
