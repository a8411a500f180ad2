package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const detailLabelWidth = 13

// renderDetail renders the full record of the sound opened from the results.
func (m Model) renderDetail() string {
	s := m.sound
	if s == nil {
		return ""
	}
	styles := m.theme.Styles()
	label := styles.MutedText.Width(detailLabelWidth)
	valueWidth := max(20, m.width-detailLabelWidth-4)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(styles.AccentText.Bold(true).Render(s.Name))
	if s.Type != "" {
		b.WriteString(" ")
		b.WriteString(styles.FormatStyle(s.Type).Render(strings.ToUpper(s.Type)))
	}
	b.WriteString("\n ")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("#%d by %s", s.ID, s.Username)))
	b.WriteString("\n\n")

	bitdepth := "-"
	if s.Bitdepth != nil && *s.Bitdepth > 0 {
		bitdepth = fmt.Sprintf("%d bit", *s.Bitdepth)
	}
	bitrate := "-"
	if s.Bitrate != nil && *s.Bitrate > 0 {
		bitrate = fmt.Sprintf("%.0f kbps", *s.Bitrate)
	}
	preview := "-"
	if s.Previews != nil && s.Previews.HQMP3 != "" {
		preview = truncateMiddle(s.Previews.HQMP3, valueWidth)
	}

	rows := []struct{ label, value string }{
		{"Duration", FormatDuration(s.Duration)},
		{"Channels", FormatChannels(s.Channels)},
		{"Sample rate", FormatSampleRate(s.Samplerate)},
		{"Bit depth", bitdepth},
		{"Bitrate", bitrate},
		{"Size", FormatSize(s.Filesize)},
		{"Created", FormatAge(s.CreatedAt(), m.now())},
		{"Downloads", FormatCount(s.NumDownloads)},
		{"Rating", FormatRating(s.AvgRating, s.NumRatings)},
		{"Comments", FormatCount(s.NumComments)},
		{"License", orDash(s.License)},
		{"Pack", optional(s.Pack)},
		{"Geotag", optional(s.Geotag)},
		{"Preview", preview},
		{"URL", orDash(truncateMiddle(s.URL, valueWidth))},
	}
	for _, row := range rows {
		b.WriteString(" ")
		b.WriteString(label.Render(row.label))
		b.WriteString(styles.Text.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString(" ")
	b.WriteString(label.Render("Tags"))
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Info)).Width(valueWidth).
		Render(formatTags(s.Tags, valueWidth*3)))
	b.WriteString("\n")

	if desc := strings.TrimSpace(s.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(max(20, m.width-2)).PaddingLeft(1).Render(desc))
		b.WriteString("\n")
	}
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
