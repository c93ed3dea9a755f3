package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/pool"
)

// TestHelper provides utilities for testing TUI components
type TestHelper struct {
	model  Model
	copied []string
}

// NewTestHelper creates a test helper over the demo pool with first fit selected.
// Clipboard writes are captured instead of reaching the system clipboard.
func NewTestHelper() *TestHelper {
	h := &TestHelper{model: NewModel(pool.Default(), "default", alloc.FirstFit)}
	h.model.copyText = func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}
	return h
}

// SendKey simulates a key press but does not execute the returned command
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	updated, _ := h.model.Update(tea.KeyMsg{Type: keyType})
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	updated, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = updated.(Model)
	return h
}

// AddProcess types a size into the input and presses Enter
func (h *TestHelper) AddProcess(size string) *TestHelper {
	for _, r := range size {
		h.SendKeyRune(r)
	}
	return h.SendKey(tea.KeyEnter)
}

// AddProcesses adds each size in order
func (h *TestHelper) AddProcesses(sizes ...string) *TestHelper {
	for _, s := range sizes {
		h.AddProcess(s)
	}
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}
