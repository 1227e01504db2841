package types

// CacheOutcome records what happened to the font cache after installing.
type CacheOutcome struct {
	Attempted bool   `json:"attempted" yaml:"attempted"`
	Declined  bool   `json:"declined,omitempty" yaml:"declined,omitempty"`
	Cleared   bool   `json:"cleared" yaml:"cleared"`
	Warning   string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// Batch is everything one install invocation did, across all of its
// file and directory arguments.
type Batch struct {
	Results []InstallResult `json:"results" yaml:"results"`
	Summary Summary         `json:"summary" yaml:"summary"`

	// Skipped counts files under scanned directories that were not fonts.
	Skipped int `json:"skipped" yaml:"skipped"`

	Cache *CacheOutcome `json:"cache,omitempty" yaml:"cache,omitempty"`
}

// Add appends results and refreshes the summary.
func (b *Batch) Add(results ...InstallResult) {
	b.Results = append(b.Results, results...)
	b.Summary = Summarize(b.Results)
}

// Failed reports whether any result failed.
func (b *Batch) Failed() bool {
	return b.Summary.Failed > 0
}

// Inspection describes a file as the install pipeline would see it,
// without writing anything.
type Inspection struct {
	Path     string   `json:"path" yaml:"path"`
	Format   Format   `json:"format,omitempty" yaml:"format,omitempty"`
	Family   Family   `json:"family,omitempty" yaml:"family,omitempty"`
	Identity Identity `json:"identity,omitempty" yaml:"identity,omitempty"`
	Target   string   `json:"target,omitempty" yaml:"target,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Destination is the install directory of one family.
type Destination struct {
	Family Family `json:"family" yaml:"family"`
	Dir    string `json:"dir" yaml:"dir"`
}

// Layout lists the destinations for a scope and platform.
type Layout struct {
	Scope        Scope         `json:"scope" yaml:"scope"`
	Platform     Platform      `json:"platform" yaml:"platform"`
	Destinations []Destination `json:"destinations" yaml:"destinations"`
}

// ErrorReport is how machine-readable output reports a command error.
type ErrorReport struct {
	Error string `json:"error" yaml:"error"`
	Code  string `json:"code" yaml:"code"`
}
