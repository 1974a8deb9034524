package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) copySelectedText() {
	text, ok := m.engine.SelectedText()
	if !ok {
		m.errorMessage = "select exactly one node to copy"
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "copied label to clipboard"
}

func (m *model) pasteAsChild() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	text = cleanClipboardText(text)
	if text == "" {
		m.errorMessage = "clipboard is empty"
		return
	}
	if _, ok := m.engine.AddChildToSelected(text); !ok {
		m.errorMessage = "select exactly one node to paste under"
		return
	}
	m.successMessage = "pasted clipboard as child"
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		// pbpaste with a plain-text preference sidesteps RTF clipboards.
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText normalizes line endings, collapses the label onto one
// line and strips control characters. Node labels are single opaque strings.
func cleanClipboardText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			result.WriteRune(' ')
		case r >= 32:
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}
