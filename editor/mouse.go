package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Textarea) updateMouse(msg tea.MouseMsg) (Textarea, tea.Cmd) {
	if isWheel(msg) {
		if m.cfg.ScrollPolicy != ScrollAllowManual {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if err := m.caret.Rescroll(m.host()); err != nil {
			cmd = tea.Batch(cmd, m.fail(err))
		}
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || !m.mouseInBounds(msg.X, msg.Y) {
		return m, nil
	}
	switch {
	case msg.Button == tea.MouseButtonLeft && m.state == stateListening:
		off, err := m.ScreenToOffset(msg.X, msg.Y)
		if err == nil {
			err = m.caret.SetLinear(m.host(), off)
		}
		if err != nil {
			cmd := m.fail(err)
			return m, cmd
		}
		cmd := m.followCaret()
		return m, cmd
	case msg.Button == tea.MouseButtonRight && m.state == stateIdle:
		return m.ReadEditor()
	}
	return m, nil
}

func (m Textbox) updateMouse(msg tea.MouseMsg) (Textbox, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Y != 0 || msg.X < 0 || (m.width > 0 && msg.X >= m.width) {
		return m, nil
	}
	switch {
	case msg.Button == tea.MouseButtonLeft && m.state == stateListening:
		off, err := m.ScreenToOffset(msg.X)
		if err == nil {
			err = m.caret.SetLinear(m.host(), off)
		}
		if err != nil {
			cmd := m.fail(err)
			return m, cmd
		}
		m.scrollToCaret()
	case msg.Button == tea.MouseButtonRight && m.state == stateIdle:
		return m.ReadEditor()
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Textarea) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
