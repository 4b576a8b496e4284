// Package pretty provides Lipgloss-based styled output for the livemark
// CLI: render-instruction tables and element dumps.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Instruction table components.
	Header      lipgloss.Style
	Border      lipgloss.Style
	Offset      lipgloss.Style
	KindLine    lipgloss.Style
	KindReplace lipgloss.Style
	KindMark    lipgloss.Style
	KindWidget  lipgloss.Style
	Class       lipgloss.Style
	Content     lipgloss.Style

	// Element dump components.
	ElementKind lipgloss.Style
	Span        lipgloss.Style
	Payload     lipgloss.Style

	// Misc.
	Title lipgloss.Style
	Dim   lipgloss.Style
	Bold  lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Offset:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		KindLine:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		KindReplace: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		KindMark:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		KindWidget:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Class:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Content:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		ElementKind: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Span:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Payload:     lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		Title: lipgloss.NewStyle().Bold(true),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:  lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:      plain,
		Border:      plain,
		Offset:      plain,
		KindLine:    plain,
		KindReplace: plain,
		KindMark:    plain,
		KindWidget:  plain,
		Class:       plain,
		Content:     plain,
		ElementKind: plain,
		Span:        plain,
		Payload:     plain,
		Title:       plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and
// writer. Mode values: "auto" (default), "always", "never". In auto mode,
// color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
