// Package style holds the colors and text styles of terminal output.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/tbjgolden/install-custom-font/pkg/errors"
	"github.com/tbjgolden/install-custom-font/pkg/types"
)

// Base styles
var (
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Result indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)

// ResultStyle returns the badge style for a result kind.
func ResultStyle(kind types.ResultKind) *pterm.Style {
	switch kind {
	case types.ResultInstalled:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.ResultAlreadyPresent:
		return pterm.NewStyle(pterm.FgCyan)
	case types.ResultFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Indicator returns the leading symbol for a result kind.
func Indicator(kind types.ResultKind) string {
	switch kind {
	case types.ResultInstalled:
		return SuccessIndicator
	case types.ResultFailed:
		return ErrorIndicator
	default:
		return InfoIndicator
	}
}

// FamilyStyle colors a family name.
func FamilyStyle(family types.Family) lipgloss.Style {
	if family == types.FamilyOpenType {
		return lipgloss.NewStyle().Foreground(OpenTypeColor)
	}
	return lipgloss.NewStyle().Foreground(TrueTypeColor)
}

// Badge renders a fixed-width result label.
func Badge(kind types.ResultKind) string {
	return ResultStyle(kind).Sprint(fmt.Sprintf(" %-15s ", kind))
}

// Error renders an error with its code.
func Error(err error) string {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s [%s] %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(code),
			errors.Reason(err))
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// Warning renders a soft warning.
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", WarningIndicator, WarningStyle.Render(msg))
}

// Bold renders s in bold.
func Bold(s string) string {
	return pterm.Bold.Sprint(s)
}
