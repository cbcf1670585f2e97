package browse

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"qbank/internal/question"
)

// Run starts the browser on the given terminal streams and blocks until it quits.
func Run(c *question.Collection, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(
		NewModel(c, opts),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
