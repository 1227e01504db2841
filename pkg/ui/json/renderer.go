// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// Renderer writes one indented JSON document per call.
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes a batch, inspections or layout.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes err with its code.
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(types.ErrorReport{
		Error: errors.Reason(err),
		Code:  string(errors.GetErrorCode(err)),
	})
}
