package ui

import (
	"context"
	"os"

	"github.com/pterm/pterm"

	"github.com/tbjgolden/install-custom-font/pkg/logging"
)

// CacheClearQuestion is asked before the font cache is cleared.
const CacheClearQuestion = "Clear the system font cache now?"

// Confirm asks a yes/no question on the terminal. Without a terminal on
// stdin there is nobody to ask and the answer is yes.
func Confirm(_ context.Context, question string) bool {
	if !IsTerminal(os.Stdin) {
		return true
	}
	answer, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(true).
		Show(question)
	if err != nil {
		logger := logging.GetLogger("ui")
		logger.Warn().Err(err).Msg("Confirmation prompt failed")
		return false
	}
	return answer
}

// ConfirmCacheClear adapts Confirm to the scanner's confirmation hook.
func ConfirmCacheClear(ctx context.Context) bool {
	return Confirm(ctx, CacheClearQuestion)
}
