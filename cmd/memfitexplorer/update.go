package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memfit/internal/logger"
)

// clearStatusMsg clears the status bar message.
type clearStatusMsg struct{}

const statusTimeout = 2 * time.Second

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward everything else (cursor blink) to the input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// If help is showing, only keys that close it do anything
	if m.showHelp {
		if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Debug("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	}

	if m.mode == SimulationMode {
		return m.handleSimulationKey(msg)
	}
	return m.handleEditKey(msg)
}

func (m Model) handleSimulationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Stop), key.Matches(msg, m.keys.Esc):
		m.stopSimulation()
		return m.setStatus("Simulation stopped")

	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Delete),
		key.Matches(msg, m.keys.Clear), key.Matches(msg, m.keys.NextStrategy),
		key.Matches(msg, m.keys.PrevStrategy), isSizeKey(msg):
		return m.setStatus("Stop the simulation (x) to edit processes")
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		return m.handleAdd()

	case key.Matches(msg, m.keys.Delete):
		if m.selected < 0 {
			return m, nil
		}
		if err := m.workload.Remove(m.selected); err != nil {
			return m.setStatus(err.Error())
		}
		m.selected = min(m.selected, m.workload.Len()-1)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.workload.Clear()
		m.selected = -1
		return m.setStatus("Processes cleared")

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.workload.Len()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextStrategy):
		m.cycleStrategy(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevStrategy):
		m.cycleStrategy(-1)
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if err := m.startSimulation(); err != nil {
			logger.Warn("simulation not started", "error", err)
			return m.setStatus(capitalize(err.Error()))
		}
		logger.Info("simulation started", "strategy", m.strategy.String(), "processes", m.workload.Len())
		return m, nil
	}

	// Only digits and editing keys reach the size input
	if !isSizeKey(msg) && !isInputEditKey(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleAdd() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m.setStatus("Enter a process size first")
	}

	size, err := strconv.Atoi(text)
	if err != nil || size <= 0 {
		return m.setStatus("Process size must be a positive number")
	}
	if err := m.workload.Add(size); err != nil {
		return m.setStatus(err.Error())
	}

	m.input.Reset()
	m.selected = m.workload.Len() - 1
	logger.Debug("process added", "size", size, "processes", m.workload.Len())
	return m, nil
}

func (m Model) handleCopy() (tea.Model, tea.Cmd) {
	if m.report == nil {
		return m.setStatus("Nothing to copy: start a simulation first")
	}
	if err := m.copyText(m.summaryText()); err != nil {
		logger.Warn("clipboard write failed", "error", err)
		return m.setStatus("Failed to copy summary")
	}
	return m.setStatus("Summary copied to clipboard")
}

// setStatus shows a temporary status message.
func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusMessage = text
	return m, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// isSizeKey reports whether msg types digits into the size input.
func isSizeKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isInputEditKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU:
		return true
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
