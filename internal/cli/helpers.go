package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Console owns user-facing status output for the command layer: where
// messages go and how the global flags shape them. Commands talk to the
// shared package-level console; tests build their own around buffers.
type Console struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader

	Quiet   bool // -q: suppress success/info messages
	NoColor bool // --no-color: plain labels instead of symbols
	Yes     bool // -y: answer confirmation prompts with yes
}

var console = &Console{Out: os.Stdout, Err: os.Stderr, In: os.Stdin}

// SetGlobalFlags configures the shared console from the root command's
// persistent flags.
func SetGlobalFlags(quiet, noColor, yes bool) {
	console.Quiet = quiet
	console.NoColor = noColor
	console.Yes = yes
}

// Confirm asks the user to confirm an action. The -y flag answers yes
// without prompting.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	return console.Confirm(prompt, defaultYes)
}

func (c *Console) Confirm(prompt string, defaultYes bool) (bool, error) {
	if c.Yes {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Fprint(c.Out, prompt+suffix)

	response, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	if response == "" {
		return defaultYes, nil
	}
	return response == "y" || response == "yes", nil
}

// PrintSuccess reports a completed action; suppressed by -q.
func PrintSuccess(format string, args ...interface{}) {
	console.Success(format, args...)
}

// PrintInfo reports neutral information; suppressed by -q.
func PrintInfo(format string, args ...interface{}) {
	console.Info(format, args...)
}

// PrintWarning reports a non-fatal problem on stderr. Warnings survive
// -q; quiet mode only drops the happy-path chatter.
func PrintWarning(format string, args ...interface{}) {
	console.Warning(format, args...)
}

// PrintError reports a failure on stderr.
func PrintError(format string, args ...interface{}) {
	console.Error(format, args...)
}

func (c *Console) Success(format string, args ...interface{}) {
	if c.Quiet {
		return
	}
	c.emit(c.Out, "✓", "OK", format, args...)
}

func (c *Console) Info(format string, args ...interface{}) {
	if c.Quiet {
		return
	}
	c.emit(c.Out, "ℹ", "INFO", format, args...)
}

func (c *Console) Warning(format string, args ...interface{}) {
	c.emit(c.Err, "⚠", "WARNING", format, args...)
}

func (c *Console) Error(format string, args ...interface{}) {
	c.emit(c.Err, "✗", "ERROR", format, args...)
}

func (c *Console) emit(w io.Writer, symbol, label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.NoColor {
		fmt.Fprintf(w, "%s: %s\n", label, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", symbol, msg)
}
