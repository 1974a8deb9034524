package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	engine *Engine
	config *Config

	width  int
	height int

	mode       UIMode
	help       bool
	helpScroll int

	// Shared line editor for label editing and new-child input.
	inputText   string
	inputCursor int

	filename          string
	fileOp            FileOperation
	fileList          []string
	selectedFileIndex int
	fromStartup       bool

	confirmAction ConfirmAction

	errorMessage   string
	successMessage string

	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
}

func initialModel(config *Config, startFile string) model {
	m := model{
		engine:            NewEngine(config.RootLabel, 80*cellWidth, 23*cellHeight),
		config:            config,
		mode:              UIModeStartup,
		selectedFileIndex: -1,
	}
	if startFile != "" {
		if err := m.openFile(startFile); err != nil {
			m.errorMessage = err.Error()
		}
		m.mode = UIModeNormal
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

// canvasHeight is the number of rows available to the map; the bottom row is
// the status line.
func (m *model) canvasHeight() int {
	h := m.height - 1
	if h < 1 {
		h = 1
	}
	return h
}

// cellToScreen maps a terminal cell to screen-space coordinates at the cell's
// center, using the shared cell metrics.
func cellToScreen(cx, cy int) (float64, float64) {
	return float64(cx)*cellWidth + cellWidth/2, float64(cy)*cellHeight + cellHeight/2
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetViewportSize(float64(msg.Width)*cellWidth, float64(m.canvasHeight())*cellHeight)
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help && m.mode != UIModeStartup {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case UIModeStartup:
			return m.handleStartupKey(msg)
		case UIModeNormal:
			return m.handleNormalKey(msg)
		case UIModeEditText, UIModeAddChild:
			return m.handleTextInputKey(msg)
		case UIModeFileInput:
			return m.handleFileInputKey(msg)
		case UIModeConfirm:
			return m.handleConfirmKey(msg)
		}
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != UIModeNormal || m.help {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			x, y := cellToScreen(msg.X, msg.Y)
			now := time.Now()
			if now.Sub(m.lastClickTime) < doubleClickWindow && msg.X == m.lastClickX && msg.Y == m.lastClickY {
				m.engine.DoubleClick(x, y)
				m.lastClickTime = time.Time{}
			} else {
				m.engine.PointerDown(x, y, Modifiers{Shift: msg.Shift})
				m.lastClickTime = now
				m.lastClickX, m.lastClickY = msg.X, msg.Y
			}
			m.successMessage = ""
		case tea.MouseButtonWheelUp:
			m.engine.PanBy(0, cellHeight)
		case tea.MouseButtonWheelDown:
			m.engine.PanBy(0, -cellHeight)
		}
	case tea.MouseActionMotion:
		x, y := cellToScreen(msg.X, msg.Y)
		m.engine.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.engine.PointerUp()
	}
	return m, nil
}

func (m model) handleStartupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n", "enter":
		m.engine = NewEngine(m.config.RootLabel, m.engine.viewportWidth, m.engine.viewportHeight)
		m.mode = UIModeNormal
		m.errorMessage = ""
	case "o":
		m.mode = UIModeFileInput
		m.fileOp = FileOpOpen
		m.filename = ""
		m.fromStartup = true
		m.errorMessage = ""
		m.scanMapFiles()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.engine.SetForcePan(false)
		m.errorMessage = ""
		m.successMessage = ""
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if !m.config.Confirmations {
			return m, tea.Quit
		}
		m.mode = UIModeConfirm
		m.confirmAction = ConfirmQuit
	case "n":
		if !m.config.Confirmations {
			m.newMap()
			return m, nil
		}
		m.mode = UIModeConfirm
		m.confirmAction = ConfirmNewMap
	case "?":
		m.help = !m.help
	case " ", "z":
		// Terminals report no key releases, so force-pan is a toggle rather
		// than a held modifier.
		m.engine.SetForcePan(!m.engine.ForcePan())
	case "a":
		if _, ok := m.engine.SelectedText(); ok {
			m.mode = UIModeAddChild
			m.inputText = ""
			m.inputCursor = 0
		} else {
			m.errorMessage = "select exactly one node to add a child"
		}
	case "e", "enter":
		if text, ok := m.engine.SelectedText(); ok {
			m.mode = UIModeEditText
			m.inputText = text
			m.inputCursor = len([]rune(text))
		} else {
			m.errorMessage = "select exactly one node to edit"
		}
	case "d", "delete", "backspace":
		m.engine.KeyDown("delete")
	case "c":
		m.copySelectedText()
	case "p":
		m.pasteAsChild()
	case "s":
		m.mode = UIModeFileInput
		m.fileOp = FileOpSave
		m.setDefaultFilename()
		m.errorMessage = ""
	case "S":
		m.mode = UIModeFileInput
		m.fileOp = FileOpSavePNG
		m.setDefaultFilename()
		m.errorMessage = ""
	case "o":
		m.mode = UIModeFileInput
		m.fileOp = FileOpOpen
		m.fromStartup = false
		m.errorMessage = ""
		m.scanMapFiles()
	default:
		return m.handleNavigation(msg.String())
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		total := len(helpLines)
		visible := m.height - 1
		if visible < 1 {
			visible = 1
		}
		if m.helpScroll < total-visible {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m model) handleTextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = UIModeNormal
	case tea.KeyEnter:
		m.commitTextInput()
	case tea.KeyBackspace:
		if m.inputCursor > 0 {
			runes := []rune(m.inputText)
			m.inputText = string(runes[:m.inputCursor-1]) + string(runes[m.inputCursor:])
			m.inputCursor--
		}
	case tea.KeyLeft:
		if m.inputCursor > 0 {
			m.inputCursor--
		}
	case tea.KeyRight:
		if m.inputCursor < len([]rune(m.inputText)) {
			m.inputCursor++
		}
	case tea.KeySpace:
		m.insertInput(" ")
	case tea.KeyRunes:
		m.insertInput(string(msg.Runes))
	}
	return m, nil
}

func (m *model) insertInput(s string) {
	runes := []rune(m.inputText)
	m.inputText = string(runes[:m.inputCursor]) + s + string(runes[m.inputCursor:])
	m.inputCursor += len([]rune(s))
}

func (m *model) commitTextInput() {
	switch m.mode {
	case UIModeEditText:
		m.engine.UpdateSelectedText(m.inputText)
	case UIModeAddChild:
		if _, ok := m.engine.AddChildToSelected(m.inputText); !ok {
			m.errorMessage = "no single node selected"
		}
	}
	m.mode = UIModeNormal
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		if m.fromStartup {
			m.mode = UIModeStartup
		} else {
			m.mode = UIModeNormal
		}
		m.errorMessage = ""
	case tea.KeyEnter:
		return m.commitFileOp()
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
	case tea.KeyUp:
		if m.fileOp == FileOpOpen && m.selectedFileIndex > 0 {
			m.selectedFileIndex--
			m.filename = trimMapExt(m.fileList[m.selectedFileIndex])
		}
	case tea.KeyDown:
		if m.fileOp == FileOpOpen && m.selectedFileIndex >= 0 && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
			m.filename = trimMapExt(m.fileList[m.selectedFileIndex])
		}
	case tea.KeySpace:
		m.filename += " "
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m model) commitFileOp() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.filename) == "" {
		m.errorMessage = "filename cannot be empty"
		return m, nil
	}

	switch m.fileOp {
	case FileOpSave:
		path := m.config.GetSavePath(m.filename + ".txt")
		if m.config.Confirmations {
			if _, err := os.Stat(path); err == nil {
				m.mode = UIModeConfirm
				m.confirmAction = ConfirmOverwriteFile
				return m, nil
			}
		}
		m.saveMap(path)
	case FileOpSavePNG:
		path := m.config.GetSavePath(m.filename + ".png")
		if err := ExportPNG(m.engine, path); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("exported %s", path)
			m.mode = UIModeNormal
		}
	case FileOpOpen:
		path := m.config.GetSavePath(m.filename + ".txt")
		if err := m.openFile(path); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = fmt.Sprintf("opened %s", path)
			m.mode = UIModeNormal
			m.fromStartup = false
		}
	}
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewMap:
			m.newMap()
		case ConfirmOverwriteFile:
			m.saveMap(m.config.GetSavePath(m.filename + ".txt"))
		}
	case "n", "N", "esc":
		m.mode = UIModeNormal
	}
	return m, nil
}

func (m *model) newMap() {
	m.engine = NewEngine(m.config.RootLabel, m.engine.viewportWidth, m.engine.viewportHeight)
	m.mode = UIModeNormal
	m.filename = ""
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) saveMap(path string) {
	ox, oy := m.engine.Offset()
	if err := m.engine.Doc().SaveToFile(path, ox, oy); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = fmt.Sprintf("saved %s", path)
	m.mode = UIModeNormal
}

func (m *model) openFile(path string) error {
	doc, panX, panY, err := LoadMindMap(path)
	if err != nil {
		return err
	}
	m.engine.AdoptDocument(doc, panX, panY)
	m.filename = trimMapExt(filepath.Base(path))
	return nil
}

func (m *model) setDefaultFilename() {
	if m.filename == "" {
		if text, ok := m.engine.SelectedText(); ok && text != "" {
			m.filename = strings.ToLower(strings.ReplaceAll(text, " ", "-"))
		}
	}
}

// scanMapFiles lists saved maps in the configured save directory, falling
// back to the working directory.
func (m *model) scanMapFiles() {
	m.fileList = m.fileList[:0]

	dir := m.config.SaveDirectory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			m.selectedFileIndex = -1
			return
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		m.selectedFileIndex = -1
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)

	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
		m.filename = trimMapExt(m.fileList[0])
	} else {
		m.selectedFileIndex = -1
	}
}

func trimMapExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".txt") {
		return name[:len(name)-4]
	}
	return name
}
