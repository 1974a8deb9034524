package main

import tea "github.com/charmbracelet/bubbletea"

// handleNavigation pans the viewport one cell per keypress, two with shift
// held. Mouse dragging does the same thing; the keys are for terminals
// without mouse reporting.
func (m model) handleNavigation(key string) (tea.Model, tea.Cmd) {
	speed := float64(m.getMoveSpeed(key))
	switch key {
	case "h", "left", "H", "shift+left":
		m.engine.PanBy(cellWidth*speed, 0)
	case "l", "right", "L", "shift+right":
		m.engine.PanBy(-cellWidth*speed, 0)
	case "k", "up", "K", "shift+up":
		m.engine.PanBy(0, cellHeight*speed)
	case "j", "down", "J", "shift+down":
		m.engine.PanBy(0, -cellHeight*speed)
	}
	return m, nil
}

func (m model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}
