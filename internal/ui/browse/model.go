package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qbank/internal/question"
)

// Options configures the browser.
type Options struct {
	NoColor bool
}

// Model is a read-only Bubble Tea browser over a question collection.
type Model struct {
	records    []question.Question
	table      table.Model
	detail     viewport.Model
	showDetail bool
	width      int
	height     int
	noColor    bool
}

// NewModel builds a browser for the collection.
func NewModel(c *question.Collection, opts Options) Model {
	records := c.Records()
	t := table.New(
		table.WithColumns(columnsForWidth(defaultWidth)),
		table.WithRows(rowsForRecords(records, defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(len(records))),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		records: records,
		table:   t,
		detail:  viewport.New(defaultWidth, detailHeight(defaultHeight)),
		width:   defaultWidth,
		height:  defaultHeight,
		noColor: opts.NoColor,
	}
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.table.SetRows(rowsForRecords(m.records, typed.Width))
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-4, 1))
		m.height = typed.Height
		m.detail.Width = typed.Width
		m.detail.Height = detailHeight(typed.Height)
		if m.showDetail {
			m.setDetailContent()
		}
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if len(m.records) > 0 {
				m.showDetail = !m.showDetail
				if m.showDetail {
					m.setDetailContent()
					m.detail.GotoTop()
				}
			}
			return m, nil
		case "esc":
			m.showDetail = false
			return m, nil
		}
		if m.showDetail {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table, or the selected record when the detail pane is open.
func (m Model) View() string {
	header := renderHeader(len(m.records), m.noColor)
	if len(m.records) == 0 {
		return strings.Join([]string{header, "No questions.", renderFooter(false, m.noColor)}, "\n")
	}
	if m.showDetail {
		return strings.Join([]string{header, m.detail.View(), renderFooter(true, m.noColor)}, "\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), renderFooter(false, m.noColor))
}

// setDetailContent wraps the selected record to the window width so the
// viewport counts the lines that are actually drawn.
func (m *Model) setDetailContent() {
	record, _ := m.Selected()
	content := renderDetail(record, m.noColor)
	m.detail.SetContent(lipgloss.NewStyle().Width(max(m.width, 1)).Render(content))
}

// DetailScrolled reports the detail pane's vertical offset.
func (m Model) DetailScrolled() int {
	return m.detail.YOffset
}

// Selected returns the record under the cursor.
func (m Model) Selected() (question.Question, bool) {
	index := m.table.Cursor()
	if index < 0 || index >= len(m.records) {
		return question.Question{}, false
	}
	return m.records[index], true
}

// ShowingDetail reports whether the detail pane is open.
func (m Model) ShowingDetail() bool {
	return m.showDetail
}
