// Package ui renders command results as rich terminal output, plain
// text, JSON or YAML, and asks the user for confirmation.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/tbjgolden/install-custom-font/pkg/ui/json"
	"github.com/tbjgolden/install-custom-font/pkg/ui/terminal"
	"github.com/tbjgolden/install-custom-font/pkg/ui/text"
	"github.com/tbjgolden/install-custom-font/pkg/ui/yaml"
)

// Renderer is implemented by every output format.
type Renderer interface {
	// RenderResult renders a *types.Batch, []types.Inspection or
	// *types.Layout.
	RenderResult(result interface{}) error

	// RenderError renders a command-level error.
	RenderError(err error) error
}

// Resolve turns FormatAuto into a concrete format for output. Writers
// that are not files get plain text.
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// NewRenderer creates a renderer writing to output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
