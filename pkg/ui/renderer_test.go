// pkg/ui/renderer_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test that every renderer handles batches, inspections and layouts

package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
	"github.com/tbjgolden/install-custom-font/pkg/ui"
)

func sampleBatch() *types.Batch {
	b := &types.Batch{Skipped: 2}
	b.Add(
		types.Installed(types.FontFile{Path: "/src/Go-Regular.ttf", Format: types.FormatTTF},
			"Go Regular", "/home/u/.fonts/truetype/Go Regular.ttf"),
		types.AlreadyPresent(types.FontFile{Path: "/src/Go-Bold.woff", Format: types.FormatWOFF},
			"Go Bold", "/home/u/.fonts/truetype/Go Bold.ttf", "already installed"),
		types.Failed(types.FontFile{Path: "/src/Go-Italic.woff2", Format: types.FormatWOFF2},
			"Go Italic", "", errors.New(errors.ErrToolMissing, "woff2_decompress is not installed")),
	)
	b.Cache = &types.CacheOutcome{Attempted: true, Warning: "fc-cache failed"}
	return b
}

func sampleInspections() []types.Inspection {
	return []types.Inspection{
		{
			Path:     "/src/Go-Regular.ttf",
			Format:   types.FormatTTF,
			Family:   types.FamilyTrueType,
			Identity: "Go Regular",
			Target:   "/home/u/.fonts/truetype/Go Regular.ttf",
		},
		{Path: "/src/notes.txt", Error: "unsupported or undetected format"},
	}
}

func sampleLayout() *types.Layout {
	return &types.Layout{
		Scope:    types.ScopeSystem,
		Platform: types.PlatformLinux,
		Destinations: []types.Destination{
			{Family: types.FamilyTrueType, Dir: "/usr/share/fonts/truetype"},
			{Family: types.FamilyOpenType, Dir: "/usr/share/fonts/opentype"},
		},
	}
}

func render(t *testing.T, format ui.Format, v interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(format, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(v))
	return buf.String()
}

func TestNewRenderer_AutoWithBufferIsText(t *testing.T) {
	out := render(t, ui.FormatAuto, sampleLayout())
	assert.Equal(t, "system scope on linux\ntruetype  /usr/share/fonts/truetype\nopentype  /usr/share/fonts/opentype\n", out)
}

func TestNewRenderer_RejectsUnknownFormat(t *testing.T) {
	_, err := ui.NewRenderer(ui.Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRenderer_Batch(t *testing.T) {
	out := render(t, ui.FormatText, sampleBatch())

	assert.Contains(t, out, "installed")
	assert.Contains(t, out, "/home/u/.fonts/truetype/Go Regular.ttf")
	assert.Contains(t, out, "(already installed)")
	assert.Contains(t, out, "[TOOL_MISSING] woff2_decompress is not installed")
	assert.Contains(t, out, "3 fonts: 1 installed, 1 already present, 1 failed (2 other files skipped)")
	assert.Contains(t, out, "warning: fc-cache failed")
	assert.NotContains(t, out, "\x1b[")
}

func TestTextRenderer_Inspections(t *testing.T) {
	out := render(t, ui.FormatText, sampleInspections())

	assert.Contains(t, out, "ttf")
	assert.Contains(t, out, "Go Regular")
	assert.Contains(t, out, "error: unsupported or undetected format")
}

func TestTextRenderer_EmptyBatch(t *testing.T) {
	out := render(t, ui.FormatText, &types.Batch{})
	assert.Equal(t, "0 fonts: 0 installed, 0 already present, 0 failed\n", out)
}

func TestTerminalRenderer(t *testing.T) {
	for name, v := range map[string]interface{}{
		"batch":       sampleBatch(),
		"inspections": sampleInspections(),
		"layout":      sampleLayout(),
	} {
		t.Run(name, func(t *testing.T) {
			out := render(t, ui.FormatTerminal, v)
			assert.NotEmpty(t, out)
		})
	}

	t.Run("batch mentions every font", func(t *testing.T) {
		out := render(t, ui.FormatTerminal, sampleBatch())
		for _, name := range []string{"Go Regular", "Go Bold", "Go Italic", "fc-cache failed"} {
			assert.Contains(t, out, name)
		}
	})
}

func TestJSONRenderer_Batch(t *testing.T) {
	out := render(t, ui.FormatJSON, sampleBatch())

	var decoded struct {
		Results []map[string]string `json:"results"`
		Summary struct {
			Installed      int `json:"installed"`
			AlreadyPresent int `json:"alreadyPresent"`
			Failed         int `json:"failed"`
		} `json:"summary"`
		Skipped int `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Results, 3)
	assert.Equal(t, "installed", decoded.Results[0]["result"])
	assert.Equal(t, "TOOL_MISSING", decoded.Results[2]["code"])
	assert.Equal(t, 2, decoded.Skipped)
}

func TestYAMLRenderer_Layout(t *testing.T) {
	out := render(t, ui.FormatYAML, sampleLayout())

	var decoded types.Layout
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *sampleLayout(), decoded)
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found: /nope")

	for _, f := range []ui.Format{ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r, rerr := ui.NewRenderer(f, &buf)
			require.NoError(t, rerr)
			require.NoError(t, r.RenderError(err))
			assert.Contains(t, buf.String(), "NOT_FOUND")
			assert.Contains(t, buf.String(), "not found: /nope")
		})
	}
}
