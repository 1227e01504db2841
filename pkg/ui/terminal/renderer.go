// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/tbjgolden/install-custom-font/pkg/style"
	"github.com/tbjgolden/install-custom-font/pkg/types"
	"github.com/tbjgolden/install-custom-font/pkg/ui/text"
)

// Renderer provides rich terminal output using pterm and lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
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
	for _, res := range b.Results {
		if _, err := fmt.Fprintln(r.output, resultLine(res)); err != nil {
			return err
		}
	}
	if len(b.Results) > 0 {
		if _, err := fmt.Fprintln(r.output); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.output, style.Bold(text.SummaryLine(b))); err != nil {
		return err
	}
	if b.Cache != nil {
		switch {
		case b.Cache.Warning != "":
			_, err := fmt.Fprintln(r.output, style.Warning(b.Cache.Warning))
			return err
		case b.Cache.Cleared:
			_, err := fmt.Fprintf(r.output, "%s font cache cleared\n", style.SuccessIndicator)
			return err
		}
	}
	return nil
}

func resultLine(res types.InstallResult) string {
	name := res.Identity.String()
	if name == "" {
		name = res.Source
	}
	line := fmt.Sprintf("%s %s %s", style.Indicator(res.Kind), style.Badge(res.Kind), style.Bold(name))
	switch res.Kind {
	case types.ResultInstalled:
		return line + " → " + style.PathStyle.Render(res.Target)
	case types.ResultAlreadyPresent:
		return line + " " + style.MutedStyle.Render(res.Message) + " " + style.PathStyle.Render(res.Target)
	default:
		return line + " " + style.ErrorStyle.Render(fmt.Sprintf("[%s]", res.Code)) + " " + res.Message
	}
}

func (r *Renderer) renderInspections(list []types.Inspection) error {
	data := pterm.TableData{{"File", "Format", "Family", "Identity", "Target"}}
	for _, in := range list {
		if in.Error != "" {
			data = append(data, []string{in.Path, "", "", style.ErrorStyle.Render(in.Error), ""})
			continue
		}
		data = append(data, []string{
			in.Path,
			in.Format.String(),
			style.FamilyStyle(in.Family).Render(string(in.Family)),
			in.Identity.String(),
			style.PathStyle.Render(in.Target),
		})
	}
	return r.renderTable(data)
}

func (r *Renderer) renderLayout(l *types.Layout) error {
	if _, err := fmt.Fprintf(r.output, "%s scope on %s\n", style.Bold(string(l.Scope)), style.Bold(string(l.Platform))); err != nil {
		return err
	}
	data := pterm.TableData{{"Family", "Directory"}}
	for _, d := range l.Destinations {
		data = append(data, []string{style.FamilyStyle(d.Family).Render(string(d.Family)), style.PathStyle.Render(d.Dir)})
	}
	return r.renderTable(data)
}

func (r *Renderer) renderTable(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, style.Error(err))
	return err2
}
