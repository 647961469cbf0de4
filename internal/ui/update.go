package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.detail.Width = msg.Width - 4
		b.detail.Height = msg.Height - 6
		return b, nil

	case tea.KeyMsg:
		if b.filtering {
			return b.updateFiltering(msg)
		}
		if b.state == stateDetail {
			return b.updateDetail(msg)
		}
		return b.updateList(msg)
	}

	return b, nil
}

func (b Browser) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		b.filtering = false
		b.filter.Blur()
		return b, nil
	case "esc":
		b.filtering = false
		b.filter.Blur()
		b.filter.SetValue("")
		b.applyFilter("")
		return b, nil
	}

	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.applyFilter(b.filter.Value())
	return b, cmd
}

func (b Browser) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "esc":
		if b.filter.Value() != "" {
			b.filter.SetValue("")
			b.applyFilter("")
			return b, nil
		}
		return b, tea.Quit
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(b.filtered)-1 {
			b.selected++
		}
	case "/":
		b.filtering = true
		return b, b.filter.Focus()
	case "enter":
		if r := b.current(); r != nil {
			b.state = stateDetail
			b.detail.SetContent(renderDetail(r))
			b.detail.GotoTop()
		}
	}
	return b, nil
}

func (b Browser) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit
	case "esc", "backspace":
		b.state = stateList
		return b, nil
	}

	var cmd tea.Cmd
	b.detail, cmd = b.detail.Update(msg)
	return b, cmd
}
