package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorNote    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	severity map[Severity]lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	help     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		severity: map[Severity]lipgloss.Style{
			SeverityError:   r.NewStyle().Bold(true).Foreground(colorError),
			SeverityWarning: r.NewStyle().Bold(true).Foreground(colorWarning),
			SeverityNote:    r.NewStyle().Bold(true).Foreground(colorNote),
		},
		gutter: r.NewStyle().Foreground(colorMuted),
		caret:  r.NewStyle().Bold(true).Foreground(colorError),
		help:   r.NewStyle().Bold(true),
	}
}

// Formatter prints diagnostics with the offending source line and a caret
// underline.
type Formatter struct {
	out         io.Writer
	color       bool
	styles      styles
	sourceCache map[string]string // Cache of source text by filename
}

// NewFormatter creates a formatter writing to out. Styling is applied only
// when color is set and out supports it.
func NewFormatter(out io.Writer, color bool) *Formatter {
	return &Formatter{
		out:         out,
		color:       color,
		styles:      newStyles(lipgloss.NewRenderer(out)),
		sourceCache: make(map[string]string),
	}
}

// AddSource registers source text under filename, which may be empty for
// anonymous input.
func (f *Formatter) AddSource(filename, src string) {
	f.sourceCache[filename] = src
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	if filename == "" {
		return "", fmt.Errorf("no source registered for anonymous input")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// FormatAll formats every diagnostic in order.
func (f *Formatter) FormatAll(ds []Diagnostic) {
	for _, d := range ds {
		f.Format(d)
	}
}

// Format formats and prints a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if d.Span.IsValid() {
		fmt.Fprintf(f.out, "  %s %s\n", f.paint(f.styles.gutter, "-->"), d.Span.String())
		if src, err := f.LoadSource(d.Span.Filename); err == nil {
			f.printSnippet(src, d.Span)
		}
	}

	f.printHelp(d)
}

func (f *Formatter) paint(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

// printHeader prints the error header (error[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := d.Severity
	if severity == "" {
		severity = SeverityError
	}

	label := string(severity)
	if d.Code != "" {
		label = fmt.Sprintf("%s[%s]", severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s: %s\n", f.paint(f.styles.severity[severity], label), d.Message)
}

func (f *Formatter) printSnippet(src string, span Span) {
	lines := strings.Split(src, "\n")
	if span.Line > len(lines) {
		return
	}
	lineContent := strings.TrimRight(lines[span.Line-1], "\r")

	lineNumStr := fmt.Sprintf("%d", span.Line)
	pad := strings.Repeat(" ", len(lineNumStr))
	bar := f.paint(f.styles.gutter, "|")

	fmt.Fprintf(f.out, " %s %s\n", pad, bar)
	fmt.Fprintf(f.out, " %s %s %s\n", f.paint(f.styles.gutter, lineNumStr), bar, lineContent)

	width := max(1, span.End-span.Start)
	underline := strings.Repeat(" ", span.Column-1) + strings.Repeat("^", width)
	fmt.Fprintf(f.out, " %s %s %s\n", pad, bar, f.paint(f.styles.caret, underline))
}

// printHelp prints notes and help text.
func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "%s: %s\n", f.paint(f.styles.help, "help"), d.Help)
	}
}
