package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qbank/internal/question"
)

func renderHeader(count int, noColor bool) string {
	return stylize("Questions: "+strconv.Itoa(count), noColor, lipgloss.Color("33"))
}

func renderFooter(detail bool, noColor bool) string {
	help := "up/down move | enter details | q quit"
	if detail {
		help = "up/down scroll | esc back | q quit"
	}
	return stylize(help, noColor, lipgloss.Color("242"))
}

// renderDetail shows every field, with the text and ideal answer verbatim.
func renderDetail(record question.Question, noColor bool) string {
	var builder strings.Builder
	builder.WriteString(stylize(record.ID+" | "+string(record.Difficulty)+" | "+record.Topic, noColor, lipgloss.Color("212")))
	builder.WriteString("\n\n")
	builder.WriteString(record.Text)
	builder.WriteString("\n\n")
	builder.WriteString(stylize("Ideal answer", noColor, lipgloss.Color("240")))
	builder.WriteString("\n")
	builder.WriteString(record.IdealAnswer)
	return builder.String()
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
