// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Batch:
		return r.renderBatch(v)
	case []types.Inspection:
		return r.renderInspections(v)
	case *types.Layout:
		return r.renderLayout(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderBatch(b *types.Batch) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, res := range b.Results {
		if _, err := fmt.Fprintln(tw, ResultLine(res)); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(b.Results) > 0 {
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.output, SummaryLine(b)); err != nil {
		return err
	}
	if b.Cache != nil && b.Cache.Warning != "" {
		if _, err := fmt.Fprintf(r.output, "warning: %s\n", b.Cache.Warning); err != nil {
			return err
		}
	}
	return nil
}

// ResultLine is the tab-separated line for one result.
func ResultLine(res types.InstallResult) string {
	name := res.Identity.String()
	if name == "" {
		name = res.Source
	}
	switch res.Kind {
	case types.ResultInstalled:
		return fmt.Sprintf("%s\t%s\t%s", res.Kind, name, res.Target)
	case types.ResultAlreadyPresent:
		return fmt.Sprintf("%s\t%s\t%s (%s)", res.Kind, name, res.Target, res.Message)
	default:
		return fmt.Sprintf("%s\t%s\t[%s] %s", res.Kind, name, res.Code, res.Message)
	}
}

// SummaryLine counts the results of a batch.
func SummaryLine(b *types.Batch) string {
	s := b.Summary
	total := s.Installed + s.AlreadyPresent + s.Failed
	noun := "fonts"
	if total == 1 {
		noun = "font"
	}
	line := fmt.Sprintf("%d %s: %d installed, %d already present, %d failed",
		total, noun, s.Installed, s.AlreadyPresent, s.Failed)
	if b.Skipped > 0 {
		line += fmt.Sprintf(" (%d other files skipped)", b.Skipped)
	}
	return line
}

func (r *Renderer) renderInspections(list []types.Inspection) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, in := range list {
		var line string
		if in.Error != "" {
			line = fmt.Sprintf("%s\terror: %s", in.Path, in.Error)
		} else {
			line = fmt.Sprintf("%s\t%s\t%s\t%s\t%s", in.Path, in.Format, in.Family, in.Identity, in.Target)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (r *Renderer) renderLayout(l *types.Layout) error {
	if _, err := fmt.Fprintf(r.output, "%s scope on %s\n", l.Scope, l.Platform); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, d := range l.Destinations {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", d.Family, d.Dir); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		_, err2 := fmt.Fprintf(r.output, "Error [%s]: %s\n", code, errors.Reason(err))
		return err2
	}
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}
