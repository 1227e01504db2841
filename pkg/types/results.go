package types

import (
	"github.com/tbjgolden/install-custom-font/pkg/errors"
)

// ResultKind is the outcome of one install attempt.
type ResultKind string

const (
	// ResultInstalled means the font was newly placed at its target.
	ResultInstalled ResultKind = "installed"

	// ResultAlreadyPresent means the target, or on Linux system installs
	// its cross-family sibling, already exists. Not a failure.
	ResultAlreadyPresent ResultKind = "already-present"

	// ResultFailed means the font could not be installed; Message and
	// Code say why.
	ResultFailed ResultKind = "failed"
)

// InstallResult is created once per install attempt and never mutated
// afterwards.
type InstallResult struct {
	Kind     ResultKind       `json:"result" yaml:"result"`
	Identity Identity         `json:"identity,omitempty" yaml:"identity,omitempty"`
	Source   string           `json:"source" yaml:"source"`
	Format   Format           `json:"format,omitempty" yaml:"format,omitempty"`
	Target   string           `json:"target,omitempty" yaml:"target,omitempty"`
	Message  string           `json:"message,omitempty" yaml:"message,omitempty"`
	Code     errors.ErrorCode `json:"code,omitempty" yaml:"code,omitempty"`
	Err      error            `json:"-" yaml:"-"`
}

// Installed builds a successful result.
func Installed(file FontFile, id Identity, target string) InstallResult {
	return InstallResult{
		Kind:     ResultInstalled,
		Identity: id,
		Source:   file.Path,
		Format:   file.Format,
		Target:   target,
	}
}

// AlreadyPresent builds a result for a font whose target (or sibling)
// already exists.
func AlreadyPresent(file FontFile, id Identity, target, message string) InstallResult {
	return InstallResult{
		Kind:     ResultAlreadyPresent,
		Identity: id,
		Source:   file.Path,
		Format:   file.Format,
		Target:   target,
		Message:  message,
		Code:     errors.ErrAlreadyInstalled,
	}
}

// Failed builds a failure result from err. Identity and target may be
// empty when the failure happened before they were known.
func Failed(file FontFile, id Identity, target string, err error) InstallResult {
	return InstallResult{
		Kind:     ResultFailed,
		Identity: id,
		Source:   file.Path,
		Format:   file.Format,
		Target:   target,
		Message:  errors.Reason(err),
		Code:     errors.GetErrorCode(err),
		Err:      err,
	}
}

// OK reports whether the result is not a failure.
func (r InstallResult) OK() bool {
	return r.Kind != ResultFailed
}

// Summary counts results by kind.
type Summary struct {
	Installed      int `json:"installed" yaml:"installed"`
	AlreadyPresent int `json:"alreadyPresent" yaml:"alreadyPresent"`
	Failed         int `json:"failed" yaml:"failed"`
}

// Summarize tallies a batch of results.
func Summarize(results []InstallResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Kind {
		case ResultInstalled:
			s.Installed++
		case ResultAlreadyPresent:
			s.AlreadyPresent++
		case ResultFailed:
			s.Failed++
		}
	}
	return s
}
