package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/examzen/internal/api"
	"golang.org/x/term"
)

// Color palette.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("34")  // Green
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

const (
	symbolCheck  = "✓"
	symbolCross  = "✗"
	symbolBullet = "•"
)

// Printer writes command results. Styling is applied only when the output is
// an interactive terminal.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a Printer for w. Output is styled when w is a terminal
// and NO_COLOR is unset.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Header prints a section title.
func (p *Printer) Header(title string) {
	if p.styled {
		fmt.Fprintln(p.w, headerStyle.Render(title))
		return
	}
	fmt.Fprintf(p.w, "== %s ==\n\n", title)
}

// Result prints generated Markdown followed by the model that produced it.
func (p *Printer) Result(text, model string) {
	fmt.Fprintln(p.w, strings.TrimSpace(text))
	if model != "" {
		fmt.Fprintln(p.w, p.render(mutedStyle, "\n("+model+")"))
	}
}

// Success prints a confirmation line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(successStyle, symbolCheck+" "+fmt.Sprintf(format, args...)))
}

// Item prints one list entry.
func (p *Printer) Item(label, text string) {
	if label == "" {
		fmt.Fprintf(p.w, "%s %s\n", symbolBullet, text)
		return
	}
	fmt.Fprintf(p.w, "%s %s %s\n", symbolBullet, p.render(mutedStyle, label), text)
}

// Muted prints secondary information.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(mutedStyle, fmt.Sprintf(format, args...)))
}

// Error prints the user-facing message for err.
func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.render(errorStyle, symbolCross+" "+UserMessage(err)))
}

// UserMessage returns the message shown for err. It never includes internal
// details.
func UserMessage(err error) string {
	var local *localError
	if errors.As(err, &local) {
		return local.Error()
	}
	return api.GetSafeErrorMessage(err)
}
