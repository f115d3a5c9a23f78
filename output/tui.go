package output

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/criteo/git-review/scm"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// Pick shows an interactive picker over the given requests and returns the
// selected one, or nil if the user aborted.
func Pick(requests []*scm.Request) (*scm.Request, error) {
	items := make([]list.Item, len(requests))
	for i, req := range requests {
		items[i] = pickerItem{req: req}
	}

	model := pickerModel{list: list.New(items, list.NewDefaultDelegate(), 0, 0)}
	model.list.Title = "Open requests"

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run request picker: %w", err)
	}

	if m, ok := final.(pickerModel); ok {
		return m.choice, nil
	}

	return nil, nil
}

type pickerItem struct {
	req *scm.Request
}

func (i pickerItem) Title() string {
	return fmt.Sprintf("#%d %s", i.req.Number, i.req.Title)
}

func (i pickerItem) Description() string {
	comments := i.req.Comments + i.req.ReviewComments

	return fmt.Sprintf("%s -> %s | %d comments | created %s",
		i.req.SourceBranch, i.req.TargetBranch, comments, i.req.CreatedAt.Format("02-Jan"))
}

func (i pickerItem) FilterValue() string {
	return i.req.Title
}

type pickerModel struct {
	list   list.Model
	choice *scm.Request
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = item.req
			}

			return m, tea.Quit
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m pickerModel) View() string {
	return docStyle.Render(m.list.View())
}
