package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/deitnotify/nutrisearch/internal/utils"
	"github.com/deitnotify/nutrisearch/pkg/lookup"
)

const bannerWidth = 50

// terminal renders the session chrome. Styles are bound to the output
// writer, so anything that is not a terminal receives plain text.
type terminal struct {
	out    io.Writer
	title  lipgloss.Style
	accent lipgloss.Style
	index  lipgloss.Style
	dim    lipgloss.Style
}

func newTerminal(out io.Writer) *terminal {
	r := lipgloss.NewRenderer(out)
	return &terminal{
		out: out,
		title: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}),
		accent: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		index: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ebbcba"}),
		dim: r.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"}),
	}
}

func (t *terminal) loaded(rows int) {
	fmt.Fprintf(t.out, "Database Loaded: %s food items.\n", utils.FormatWithCommas(rows))
}

func (t *terminal) banner() {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, rule)
	fmt.Fprintln(t.out, t.title.Render("   NUTRITION DATABASE SEARCH   "))
	fmt.Fprintln(t.out, rule)
	fmt.Fprintln(t.out, "Type a food name to search.")
	fmt.Fprintln(t.out, "Type 'q' or 'exit' to quit.")
}

func (t *terminal) prompt(text string) {
	fmt.Fprint(t.out, text)
}

func (t *terminal) notice(text string) {
	fmt.Fprintln(t.out, t.accent.Render(text))
}

func (t *terminal) menu(sel lookup.Selection) {
	fmt.Fprintln(t.out, "\nPlease select an item:")
	for i, rec := range sel.Menu {
		fmt.Fprintf(t.out, "%s %s\n", t.index.Render(fmt.Sprintf("[%d]", i+1)), rec.Food())
	}
	if sel.Overflow > 0 {
		fmt.Fprintln(t.out, t.dim.Render(fmt.Sprintf("... and %d more.", sel.Overflow)))
	}
	fmt.Fprintf(t.out, "%s Cancel Search\n", t.index.Render("[0]"))
}

func (t *terminal) farewell() {
	fmt.Fprintln(t.out, "\nGoodbye!")
}
