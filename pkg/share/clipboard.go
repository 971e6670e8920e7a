package share

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// CopyText attempts a clipboard write and reports whether any path
// succeeded. When no system clipboard is available (headless terminal,
// missing xclip) it falls back to printing the text to stdout for manual
// copying. Never returns an error.
func CopyText(text string) bool {
	if err := clipboard.WriteAll(text); err == nil {
		return true
	}

	if _, err := fmt.Fprintln(os.Stdout, text); err != nil {
		return false
	}
	return true
}
