package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellStyle int

const (
	styleNone cellStyle = iota
	styleEdge
	styleNode
	styleSelected
	styleRubber
)

var (
	edgeColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nodeColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	selectedColor = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rubberColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	statusColor   = lipgloss.NewStyle().Faint(true)
)

type screenCell struct {
	r     rune
	style cellStyle
}

// renderCanvas rasterizes the engine snapshot into a cell grid. Edges are
// drawn first, then node boxes in creation order so later nodes cover
// earlier ones, matching hit-test priority. The rubber band goes on top.
func renderCanvas(e *Engine, width, height int) [][]screenCell {
	grid := make([][]screenCell, height)
	for y := range grid {
		row := make([]screenCell, width)
		for x := range row {
			row[x] = screenCell{r: ' '}
		}
		grid[y] = row
	}

	offX, offY := e.Offset()
	nodes := e.Nodes()

	byID := make(map[int]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	for _, n := range nodes {
		for _, childID := range n.Children {
			child, ok := byID[childID]
			if !ok {
				continue
			}
			px, py := toCell(n.X+offX, n.Y+offY)
			cx, cy := toCell(child.X+offX, child.Y+offY)
			drawEdge(grid, px, py, cx, cy)
		}
	}

	w, h := NodeSize(e.ViewportWidth())
	for _, n := range nodes {
		style := styleNode
		if e.IsSelected(n.ID) {
			style = styleSelected
		}
		drawNodeBox(grid, n, offX, offY, w, h, style)
	}

	if r, ok := e.AreaRect(); ok {
		drawRubberBand(grid, r)
	}

	return grid
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}

func putCell(grid [][]screenCell, x, y int, r rune, style cellStyle) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = screenCell{r: r, style: style}
}

// drawEdge draws a right-angle segment: horizontal from the parent toward
// the child's column, then vertical down (or up) to the child's row.
func drawEdge(grid [][]screenCell, px, py, cx, cy int) {
	step := 1
	if cx < px {
		step = -1
	}
	for x := px; x != cx; x += step {
		putCell(grid, x, py, '─', styleEdge)
	}
	if cy == py {
		putCell(grid, cx, py, '─', styleEdge)
		return
	}
	corner := '┐'
	if cy < py {
		corner = '┘'
	}
	if cx == px {
		corner = '│'
	}
	putCell(grid, cx, py, corner, styleEdge)
	step = 1
	if cy < py {
		step = -1
	}
	for y := py + step; y != cy; y += step {
		putCell(grid, cx, y, '│', styleEdge)
	}
	putCell(grid, cx, cy, '│', styleEdge)
}

func drawNodeBox(grid [][]screenCell, n Node, offX, offY, w, h float64, style cellStyle) {
	left, top := toCell(n.X+offX-w/2, n.Y+offY-h/2)
	right, bottom := toCell(n.X+offX+w/2, n.Y+offY+h/2)
	if right <= left {
		right = left + 1
	}
	if bottom <= top {
		bottom = top + 1
	}

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			var r rune
			switch {
			case y == top && x == left:
				r = '┌'
			case y == top && x == right:
				r = '┐'
			case y == bottom && x == left:
				r = '└'
			case y == bottom && x == right:
				r = '┘'
			case y == top || y == bottom:
				r = '─'
			case x == left || x == right:
				r = '│'
			default:
				r = ' '
			}
			putCell(grid, x, y, r, style)
		}
	}

	// Label centered on the middle row, truncated to the interior width.
	interior := right - left - 1
	if interior < 1 {
		return
	}
	label := strings.ReplaceAll(n.Text, "\n", " ")
	runes := []rune(label)
	if len(runes) > interior {
		runes = runes[:interior]
	}
	row := (top + bottom) / 2
	start := left + 1 + (interior-len(runes))/2
	for i, r := range runes {
		putCell(grid, start+i, row, r, style)
	}
}

func drawRubberBand(grid [][]screenCell, r rect) {
	left, top := toCell(r.MinX, r.MinY)
	right, bottom := toCell(r.MaxX, r.MaxY)
	for x := left; x <= right; x++ {
		putCell(grid, x, top, '░', styleRubber)
		putCell(grid, x, bottom, '░', styleRubber)
	}
	for y := top; y <= bottom; y++ {
		putCell(grid, left, y, '░', styleRubber)
		putCell(grid, right, y, '░', styleRubber)
	}
}

// styledLine flattens one grid row into a string, batching runs of cells
// that share a style so each line carries only a handful of escapes.
func styledLine(row []screenCell) string {
	var out strings.Builder
	var run strings.Builder
	current := styleNone

	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := run.String()
		switch current {
		case styleEdge:
			out.WriteString(edgeColor.Render(s))
		case styleNode:
			out.WriteString(nodeColor.Render(s))
		case styleSelected:
			out.WriteString(selectedColor.Render(s))
		case styleRubber:
			out.WriteString(rubberColor.Render(s))
		default:
			out.WriteString(s)
		}
		run.Reset()
	}

	for _, c := range row {
		if c.style != current {
			flush()
			current = c.style
		}
		run.WriteRune(c.r)
	}
	flush()
	return out.String()
}

func (m model) View() string {
	if m.help && m.mode != UIModeStartup {
		return m.helpView()
	}
	if m.mode == UIModeStartup {
		return m.startupView()
	}
	if m.mode == UIModeFileInput && m.fileOp == FileOpOpen {
		return m.fileListView()
	}

	width := m.width
	if width < 1 {
		width = 1
	}
	grid := renderCanvas(m.engine, width, m.canvasHeight())

	var result strings.Builder
	for _, row := range grid {
		result.WriteString(styledLine(row))
		result.WriteString("\n")
	}
	result.WriteString(statusColor.Render(m.statusLine()))
	return result.String()
}

func (m model) startupView() string {
	lines := []string{
		"",
		"  mapterm — a terminal mind mapper",
		"",
		"  'n' or Enter  Start a new map",
		"  'o'           Open a saved map",
		"  'q'           Quit",
	}
	return strings.Join(lines, "\n")
}

func (m model) fileListView() string {
	var result strings.Builder
	result.WriteString("Select a saved map:\n")
	width := m.width
	if width < 1 {
		width = 1
	}
	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")

	if len(m.fileList) == 0 {
		result.WriteString("(no .txt maps found)\n")
	} else {
		maxFiles := m.canvasHeight() - 4
		if maxFiles < 1 {
			maxFiles = 1
		}
		startIdx := 0
		if m.selectedFileIndex >= maxFiles {
			startIdx = m.selectedFileIndex - maxFiles + 1
		}
		endIdx := startIdx + maxFiles
		if endIdx > len(m.fileList) {
			endIdx = len(m.fileList)
		}
		for i := startIdx; i < endIdx; i++ {
			name := trimMapExt(m.fileList[i])
			if i == m.selectedFileIndex {
				result.WriteString("> " + name + " <")
			} else {
				result.WriteString("  " + name)
			}
			result.WriteString("\n")
		}
	}

	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")
	result.WriteString("Filename: ")
	result.WriteString(m.filename)
	result.WriteString("█")
	if m.errorMessage != "" {
		result.WriteString("\nERROR: " + m.errorMessage)
	}
	return result.String()
}

func (m model) statusLine() string {
	switch m.mode {
	case UIModeEditText, UIModeAddChild:
		label := "EDIT"
		if m.mode == UIModeAddChild {
			label = "ADD CHILD"
		}
		return fmt.Sprintf("Mode: %s | Text: %s | Enter=confirm, Esc=cancel", label, inputWithCursor(m.inputText, m.inputCursor))
	case UIModeFileInput:
		var opStr string
		switch m.fileOp {
		case FileOpSave:
			opStr = "Save"
		case FileOpSavePNG:
			opStr = "Export PNG"
		case FileOpOpen:
			opStr = "Open"
		}
		if m.errorMessage != "" {
			return fmt.Sprintf("Mode: FILE | ERROR: %s | %s filename: %s█ | Enter=retry, Esc=cancel", m.errorMessage, opStr, m.filename)
		}
		return fmt.Sprintf("Mode: FILE | %s filename: %s█ | Enter=confirm, Esc=cancel", opStr, m.filename)
	case UIModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmQuit:
			message = "Quit mapterm? (y/n)"
		case ConfirmNewMap:
			message = "Start a new map? Unsaved changes will be lost. (y/n)"
		case ConfirmOverwriteFile:
			message = fmt.Sprintf("File %s.txt already exists. Overwrite? (y/n)", m.filename)
		}
		return "Mode: CONFIRM | " + message
	}

	modeStr := "NORMAL"
	switch {
	case m.engine.ForcePan():
		modeStr = "PAN"
	case m.engine.Dragging():
		modeStr = "DRAG"
	case m.engine.Panning():
		modeStr = "PANNING"
	}
	if _, ok := m.engine.AreaRect(); ok {
		modeStr = "SELECT"
	}

	ox, oy := m.engine.Offset()
	status := fmt.Sprintf("Mode: %s | Offset: (%.0f,%.0f) | Nodes: %d", modeStr, ox, oy, m.engine.Doc().Len())
	if n := len(m.engine.SelectedIDs()); n == 1 {
		if text, ok := m.engine.SelectedText(); ok {
			status += fmt.Sprintf(" | Selected: %q", text)
		}
	} else if n > 1 {
		status += fmt.Sprintf(" | Selected: %d nodes", n)
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	if m.errorMessage != "" {
		status += " | ERROR: " + m.errorMessage
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func inputWithCursor(text string, pos int) string {
	runes := []rune(text)
	if pos > len(runes) {
		pos = len(runes)
	}
	if pos == len(runes) {
		return text + "█"
	}
	display := append([]rune(nil), runes...)
	display[pos] = '█'
	return string(display)
}

var helpLines = []string{
	"mapterm Help",
	"============",
	"",
	"Mouse:",
	"------",
	"  Click node         Select it (click a selected node to keep a multi-selection)",
	"  Drag node          Move it; a multi-selection moves as a group",
	"  Double-click node  Select just that node",
	"  Drag empty space   Pan the canvas",
	"  Shift+drag empty   Rubber-band select nodes whose centers fall inside",
	"  Wheel              Pan vertically",
	"",
	"Keys:",
	"-----",
	"  h/j/k/l, arrows    Pan the canvas (Shift doubles the step)",
	"  space or z         Toggle force-pan: every drag pans, even over nodes",
	"  a                  Add a child to the selected node",
	"  e or Enter         Edit the selected node's label",
	"  d, Delete, Bksp    Delete the selected node(s) and their subtrees",
	"                     (the root cannot be deleted)",
	"  c                  Copy the selected node's label to the clipboard",
	"  p                  Paste clipboard text as a new child",
	"",
	"Files:",
	"------",
	"  s                  Save map",
	"  S                  Export map as PNG",
	"  o                  Open a saved map",
	"  n                  Start a new map",
	"",
	"General:",
	"--------",
	"  Esc                Cancel input / clear messages / drop force-pan",
	"  ?                  Toggle this help",
	"  q, Ctrl+C          Quit",
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	start := m.helpScroll
	if start >= len(helpLines) {
		start = len(helpLines) - visible
		if start < 0 {
			start = 0
		}
	}
	end := start + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}
	result := strings.Join(helpLines[start:end], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, any other key to close", start+1, end, len(helpLines))
	return result
}
