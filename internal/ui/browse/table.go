package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"qbank/internal/question"
)

const (
	defaultWidth    = 100
	defaultHeight   = 24
	maxTableHeight  = 20
	idWidth         = 8
	difficultyWidth = 10
	topicWidth      = 20
	minTextWidth    = 20
)

// detailHeight leaves room for the header and footer lines.
func detailHeight(height int) int {
	return max(height-2, 1)
}

// tableStyles returns table styles for the browser.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

func columnsForWidth(width int) []table.Column {
	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "Difficulty", Width: difficultyWidth},
		{Title: "Topic", Width: topicWidth},
		{Title: "Question", Width: textWidth(width)},
	}
}

func textWidth(width int) int {
	// Cell padding adds two columns per cell.
	remaining := width - idWidth - difficultyWidth - topicWidth - 8
	return max(remaining, minTextWidth)
}

// tableHeight leaves room for the header row on top of the visible rows.
func tableHeight(rows int) int {
	return min(max(rows, 1), maxTableHeight) + 2
}

func rowsForRecords(records []question.Question, width int) []table.Row {
	limit := textWidth(width)
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, table.Row{
			record.ID,
			string(record.Difficulty),
			truncate(record.Topic, topicWidth),
			truncate(collapseWhitespace(record.Text), limit),
		})
	}
	return rows
}

// collapseWhitespace joins all whitespace runs into single spaces.
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// truncate shortens text to limit runes, marking the cut with "...".
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
