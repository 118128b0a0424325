package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jsprint/jsprint/internal/agile"
	"github.com/muesli/termenv"
)

// defaultWidth is used when the terminal size is unknown
const defaultWidth = 120

// Printer writes shell output, styled when color is enabled.
type Printer struct {
	out    io.Writer
	isTTY  bool
	color  bool
	width  int
	styles styles
}

// New creates a printer on out. With color disabled every render helper
// returns its input unchanged apart from padding.
func New(out io.Writer, isTTY, color bool, width int) *Printer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	if width <= 0 {
		width = defaultWidth
	}
	return &Printer{
		out:    out,
		isTTY:  isTTY,
		color:  color,
		width:  width,
		styles: newStyles(r),
	}
}

// FromEnv creates a printer on standard output, detecting TTY, color
// support and width from the environment. noColor forces plain output.
func FromEnv(noColor bool) *Printer {
	t := term.FromEnv()
	width := defaultWidth
	if w, _, err := t.Size(); err == nil && w > 0 {
		width = w
	}
	return New(t.Out(), t.IsTerminalOutput(), t.IsColorEnabled() && !noColor, width)
}

// Out is the writer commands print to
func (p *Printer) Out() io.Writer {
	return p.out
}

// IsTTY reports whether output goes to a terminal
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Bold renders s in bold
func (p *Printer) Bold(s string) string {
	return p.render(p.styles.bold, s)
}

// Fail renders s as an error
func (p *Printer) Fail(s string) string {
	return p.render(p.styles.fail, s)
}

// Status renders the issue status left-aligned to width, colored by its category
func (p *Printer) Status(issue agile.Issue, width int) string {
	style, ok := p.styles.status[issue.StatusCategory()]
	if !ok || issue.Status == "" {
		style = p.styles.fallback
	}
	return p.render(style, Pad(issue.DisplayStatus(), width))
}

// Review renders the marker of a review level padded to ReviewPadding
func (p *Printer) Review(level agile.ReviewLevel) string {
	return p.render(p.styles.review[level], Pad(ReviewMarker(level), ReviewPadding))
}

// Table returns a table printer sized to the terminal. Non-TTY output is
// tab separated without headers.
func (p *Printer) Table() tableprinter.TablePrinter {
	return tableprinter.New(p.out, p.isTTY, p.width)
}

// Pad left-aligns s to width
func Pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
