package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.maxWidth > 0 && m.width > m.maxWidth {
			m.width = m.maxWidth
		}
		if m.maxHeight > 0 && m.height > m.maxHeight {
			m.height = m.maxHeight
		}
		m.ready = true

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The sidebar toggle works everywhere: collapse state is cosmetic
	// and independent of whatever the user is doing.
	if key.Matches(msg, keys.Sidebar) {
		m.ctrl.ToggleSidebar()
		m.log.Debug().Bool("expanded", m.ctrl.SidebarExpanded()).Msg("sidebar toggled")
		return m, nil
	}

	if m.inputFocused {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

// handleInputKey routes keys while the buy-price field has focus.
// Every edit is forwarded verbatim to the controller; interpretation
// only happens when the valuation is read back.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Select):
		m.inputFocused = false
		m.priceInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.priceInput, cmd = m.priceInput.Update(msg)
	m.ctrl.SetBuyPriceText(m.priceInput.Value())
	return m, cmd
}

// handleListKey routes keys while the sidebar list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.instruments())-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Select):
		insts := m.instruments()
		if m.cursor >= len(insts) {
			break
		}
		inst := insts[m.cursor]
		m.ctrl.SelectInstrument(inst)
		// Selection cleared the controller's field; mirror that in the
		// widget so the screen and the state cannot disagree.
		m.priceInput.SetValue("")
		m.inputFocused = true
		m.log.Debug().Str("symbol", inst.Symbol).Msg("instrument selected")
		return m, m.priceInput.Focus()
	}

	return m, nil
}
