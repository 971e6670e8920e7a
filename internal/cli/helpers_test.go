package cli

import (
	"bytes"
	"strings"
	"testing"
)

func testConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &Console{Out: out, Err: errOut, In: strings.NewReader("")}, out, errOut
}

func TestConsoleRouting(t *testing.T) {
	c, out, errOut := testConsole()

	c.Success("saved '%s'", "Lisbon")
	c.Info("nothing to do")
	c.Warning("disk nearly full")
	c.Error("cannot write")

	if got := out.String(); !strings.Contains(got, "✓ saved 'Lisbon'") || !strings.Contains(got, "ℹ nothing to do") {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); !strings.Contains(got, "⚠ disk nearly full") || !strings.Contains(got, "✗ cannot write") {
		t.Errorf("stderr = %q", got)
	}
	if strings.Contains(out.String(), "disk") || strings.Contains(errOut.String(), "saved") {
		t.Error("message routed to the wrong stream")
	}
}

func TestConsoleQuietSuppressesHappyPath(t *testing.T) {
	c, out, errOut := testConsole()
	c.Quiet = true

	c.Success("saved")
	c.Info("info")
	c.Warning("still shown")
	c.Error("still shown")

	if out.Len() != 0 {
		t.Errorf("quiet mode leaked stdout output: %q", out.String())
	}
	if got := errOut.String(); !strings.Contains(got, "still shown") {
		t.Errorf("quiet mode dropped stderr output: %q", got)
	}
}

func TestConsoleNoColorLabels(t *testing.T) {
	c, out, errOut := testConsole()
	c.NoColor = true

	c.Success("saved")
	c.Error("broken")

	if got := out.String(); got != "OK: saved\n" {
		t.Errorf("stdout = %q", got)
	}
	if got := errOut.String(); got != "ERROR: broken\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestConsoleConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		yesFlag    bool
		want       bool
	}{
		{"explicit yes", "y\n", false, false, true},
		{"full word", "YES\n", false, false, true},
		{"explicit no", "n\n", true, false, false},
		{"empty takes default no", "\n", false, false, false},
		{"empty takes default yes", "\n", true, false, true},
		{"yes flag skips prompt", "", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			c := &Console{Out: out, Err: &bytes.Buffer{}, In: strings.NewReader(tt.input), Yes: tt.yesFlag}

			got, err := c.Confirm("Delete trip 'Lisbon'?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if tt.yesFlag && out.Len() != 0 {
				t.Errorf("-y should not prompt, wrote %q", out.String())
			}
		})
	}
}
