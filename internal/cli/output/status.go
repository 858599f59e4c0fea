package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// IsSuccess reports whether an HTTP status code counts as success.
// Anything below 300 succeeds, 300 and above fails.
func IsSuccess(code int) bool {
	return code < 300
}

// Status renders a status code green on success and red on failure.
func (p *Printer) Status(code int) string {
	return p.Outcome(code, strconv.Itoa(code))
}

// Outcome renders text in the color matching the status code.
func (p *Printer) Outcome(code int, text string) string {
	if IsSuccess(code) {
		return p.success.Render(text)
	}
	return p.failure.Render(text)
}

// Label starts a progress line such as "Creating (1/2) -> " without a
// trailing newline, so the status can follow once the request returns.
func (p *Printer) Label(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+" -> ", args...)
}

// StatusLine finishes a line started with Label.
func (p *Printer) StatusLine(code int) {
	_, _ = fmt.Fprintln(p.out, p.Status(code))
}

// ColorSupported reports whether w is a terminal that can render colors.
func ColorSupported(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorMode resolves a color setting ("auto", "always", "never") against
// the writer. noColor wins over everything.
func ColorMode(mode string, noColor bool, w io.Writer) bool {
	if noColor {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return ColorSupported(w)
	}
}
