package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/freesound/pkg/freesound"
)

// Terminal width below which the results table drops secondary columns.
const compactWidth = 100

// renderHeader renders the top bar: logo, query options and paging.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("freesound", styles.Logo),
		bg.Render("Sort:", styles.MutedText) + bg.Space() + bg.Render(m.sort.String(), styles.Text),
	}
	if m.groupByPack {
		parts = append(parts, bg.Render("Grouped by pack", styles.InfoText))
	}
	if m.searched && m.page > 0 {
		parts = append(parts,
			bg.Render("Page", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", m.page), styles.Text))
		parts = append(parts,
			bg.Render("Results", styles.MutedText)+bg.Space()+
				bg.Render(FormatCount(m.results.Count), styles.Text))
	}
	if m.loading {
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

func (m Model) renderSearchBar() string {
	bgColor := m.theme.SurfaceAlt
	if m.input.Focused() {
		bgColor = m.theme.FocusBg
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bgColor)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.input.View())
}

// renderResults renders the visible window of the current results page.
func (m Model) renderResults() string {
	styles := m.theme.Styles()
	height := m.contentHeight()
	box := lipgloss.NewStyle().Width(m.width).Height(height)

	switch {
	case !m.searched:
		return box.Render(styles.FaintText.Render("  Type a query and press enter to search Freesound"))
	case len(m.results.Results) == 0 && m.loading:
		return box.Render(styles.WarningText.Render("  Searching..."))
	case len(m.results.Results) == 0:
		return box.Render(styles.MutedText.Render("  No sounds found"))
	}

	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	end := min(len(m.results.Results), start+height)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := m.formatRow(m.results.Results[i])
		if i == m.selected {
			lines = append(lines, styles.Selected.Width(m.width).Render(row))
			continue
		}
		lines = append(lines, styles.Text.Render(row))
	}
	return box.Render(strings.Join(lines, "\n"))
}

// formatRow lays out one sound as fixed-width columns. The name column
// absorbs whatever width remains.
func (m Model) formatRow(s freesound.Sound) string {
	format := strings.ToLower(s.Type)
	if format == "" {
		format = "-"
	}

	if m.width < compactWidth {
		nameWidth := max(10, m.width-8-2-16-4)
		return fmt.Sprintf(" %s  %8s  %s",
			padRight(Truncate(s.Name, nameWidth), nameWidth),
			FormatDuration(s.Duration),
			Truncate(s.Username, 16),
		)
	}

	const fixed = 8 + 5 + 9 + 16 + 10 + 2*6
	nameWidth := max(10, m.width-fixed)
	return fmt.Sprintf(" %s  %8s  %-5s  %9s  %s  %10s",
		padRight(Truncate(s.Name, nameWidth), nameWidth),
		FormatDuration(s.Duration),
		Truncate(format, 5),
		FormatSize(s.Filesize),
		padRight(Truncate(s.Username, 16), 16),
		FormatCount(s.NumDownloads),
	)
}

// renderStatus renders the bottom line: the last error or status message
// plus a help hint.
func (m Model) renderStatus() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var left string
	switch {
	case m.err != nil:
		left = bg.Render(errorText(m.err), styles.DangerText)
	case m.status != "":
		left = bg.Render(m.status, styles.MutedText)
	case m.currentView == ViewDetail:
		left = bg.Render("esc back", styles.FaintText)
	}
	hint := bg.Render("h help", styles.FaintText)

	gap := m.width - 2 - lipgloss.Width(left) - lipgloss.Width(hint)
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + hint)
}

// errorText describes a client error in one line.
func errorText(err error) string {
	var authErr *freesound.AuthError
	var reqErr *freesound.RequestError
	var apiErr *freesound.APIError
	switch {
	case errors.As(err, &authErr):
		return "Invalid API key: " + authErr.Message
	case errors.As(err, &reqErr):
		return "Network error: " + reqErr.Error()
	case errors.As(err, &apiErr):
		return "API error: " + apiErr.Error()
	default:
		return "Error: " + err.Error()
	}
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
