package main

import "time"

// UIMode is the front-end mode, separate from the engine's pointer mode: it
// tracks which overlay (text input, file prompt, confirm) owns the keyboard.
type UIMode int

const (
	UIModeStartup UIMode = iota
	UIModeNormal
	UIModeEditText
	UIModeAddChild
	UIModeFileInput
	UIModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewMap
	ConfirmOverwriteFile
)

// Terminal cell metrics: how many virtual-space units one character cell
// spans. The same metrics the PNG exporter uses, so what you see in the
// terminal matches the exported image.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// Two presses on the same cell within this window count as a double click.
const doubleClickWindow = 400 * time.Millisecond
