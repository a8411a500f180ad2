package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Truncate shortens s to at most max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// truncateMiddle keeps both ends of long values such as URLs.
func truncateMiddle(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	half := (max - 1) / 2
	return string(runes[:half]) + "…" + string(runes[len(runes)-(max-1-half):])
}

// FormatDuration renders a length in seconds. Sounds under a minute keep
// one decimal; longer ones use clock notation.
func FormatDuration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		return "0.0s"
	}
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	total := int64(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSize renders a byte count with SI units.
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "-"
	}
	return humanize.Bytes(uint64(bytes))
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatAge renders t relative to now, e.g. "3 days ago".
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatRating renders the average rating and the number of votes.
func FormatRating(avg float64, votes int) string {
	if votes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f (%s)", avg, FormatCount(votes))
}

// FormatSampleRate renders a sample rate such as "44.1 kHz".
func FormatSampleRate(rate float64) string {
	if rate <= 0 {
		return "-"
	}
	return humanize.SI(rate, "Hz")
}

// FormatChannels names common channel layouts.
func FormatChannels(n int) string {
	switch n {
	case 0:
		return "-"
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d ch", n)
	}
}

func formatTags(tags []string, max int) string {
	if len(tags) == 0 {
		return "-"
	}
	return Truncate(strings.Join(tags, ", "), max)
}

func optional(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "-"
	}
	return *value
}
