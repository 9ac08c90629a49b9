// Package style renders schedules and verdicts for the terminal.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/siteswap/schedule"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"}
)

var (
	// Header styles table headings and orbit titles.
	Header = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// Pass marks a schedule that validated.
	Pass = lipgloss.NewStyle().Bold(true).Foreground(colorPass)
	// Fail marks a schedule that was rejected, with its error.
	Fail = lipgloss.NewStyle().Bold(true).Foreground(colorFail)
	// Dim mutes placeholders, idle releases and secondary details.
	Dim = lipgloss.NewStyle().Foreground(colorMuted)

	cell = lipgloss.NewStyle().PaddingRight(2)
)

// Release renders the tosses of r separated by spaces, "-" when r is empty.
func Release(r schedule.Release) string {
	if len(r) == 0 {
		return "-"
	}
	parts := make([]string, len(r))
	for i, t := range r {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}

// RenderSchedule lays s out with one row per beat and one column per hand.
// Releases that throw nothing are dimmed; placeholders show as "·".
func RenderSchedule(s schedule.Schedule) string {
	hands := s.Hands()
	rows := make([][]string, 0, len(s)+1)

	head := []string{"beat"}
	for hand := 0; hand < hands; hand++ {
		head = append(head, fmt.Sprintf("hand %d", hand))
	}
	rows = append(rows, head)
	for beat, action := range s {
		row := []string{fmt.Sprint(beat)}
		for _, release := range action {
			if release.IsPlaceholder() {
				row = append(row, "·")
				continue
			}
			row = append(row, Release(release))
		}
		rows = append(rows, row)
	}

	widths := make([]int, hands+1)
	for _, row := range rows {
		for col, text := range row {
			widths[col] = max(widths[col], lipgloss.Width(text))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for col, text := range row {
			st := cell.Width(widths[col] + 2)
			switch {
			case r == 0:
				st = st.Inherit(Header)
			case col > 0 && !s[r-1][col-1].Active():
				st = st.Inherit(Dim)
			}
			cells[col] = st.Render(text)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
		b.WriteByte('\n')
	}

	return b.String()
}
