package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/joshuapare/memfit/internal/render"
	"github.com/joshuapare/memfit/internal/units"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.showHelp {
		// Recreated each render so the background reflects the latest model
		helpOverlay := overlay.New(
			&HelpViewModel{keys: m.keys},
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// renderHeader renders the title and pool description
func (m Model) renderHeader() string {
	title := "Memory Allocation Simulator"
	poolInfo := fmt.Sprintf("Pool: %s (%d blocks, %s)", m.poolName, m.pool.Len(), units.Size(m.pool.TotalSize()))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render(title),
		"  ",
		poolStyle.Render(poolInfo),
	)
}

// renderContent renders the process pane beside the memory pane
func (m Model) renderContent() string {
	// Borders and padding take 4 columns per pane
	memoryWidth := max(m.width-processPaneWidth-8, 20)
	paneHeight := max(m.height-6, 8)

	processBox := paneStyle
	memoryBox := paneStyle
	if m.mode == EditMode {
		processBox = activePaneStyle
	} else {
		memoryBox = activePaneStyle
	}

	left := processBox.
		Width(processPaneWidth).
		Height(paneHeight).
		Render(m.renderProcesses())
	right := memoryBox.
		Width(memoryWidth).
		Height(paneHeight).
		Render(m.renderMemory(memoryWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderProcesses() string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render(fmt.Sprintf("Processes (%d)", m.workload.Len())))
	b.WriteString("\n\n")

	sizes := m.workload.Sizes()
	if len(sizes) == 0 {
		b.WriteString(helpStyle.Render("No processes yet"))
		b.WriteByte('\n')
	}
	for i, size := range sizes {
		line := fmt.Sprintf("%3d  %12s", i+1, units.Size(size))
		if m.report != nil && i < len(m.report.Result.Placements) && !m.report.Result.Placements[i].IsPlaced() {
			line += "  ✗"
		}
		if i == m.selected && m.mode == EditMode {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString(processStyle.Render("  " + line))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString("Strategy: ")
	b.WriteString(strategyStyle.Render(m.strategyLabel()))
	return b.String()
}

// strategyLabel shows the strategy, with cycling arrows while it can change.
func (m Model) strategyLabel() string {
	if m.mode == SimulationMode {
		return m.strategy.String()
	}
	return "‹ " + m.strategy.String() + " ›"
}

func (m Model) renderMemory(width int) string {
	r := render.New(width, true)

	var b strings.Builder
	if m.report == nil {
		b.WriteString(paneTitleStyle.Render("Memory"))
		b.WriteString("\n\n")
		b.WriteString(r.Pool(m.pool))
		return b.String()
	}

	sum := m.report.Summary()
	b.WriteString(paneTitleStyle.Render("Memory"))
	b.WriteString("  ")
	b.WriteString(simulatingStyle.Render("simulating " + m.report.Strategy.String()))
	b.WriteString("\n\n")
	b.WriteString(r.Result(m.report.Result, m.report.TotalSize))
	b.WriteByte('\n')
	b.WriteString(r.Placements(m.report.Result))
	fmt.Fprintf(&b, "\nPlaced %d of %d, %s fragmentation, %s utilization",
		sum.Placed, sum.Requests, units.Size(sum.Fragmentation), units.Percent(sum.Utilization))
	return b.String()
}

// renderStatus renders the status bar with help text
func (m Model) renderStatus() string {
	// Show status message if set (takes priority over normal help)
	if m.statusMessage != "" {
		return statusStyle.Width(m.width).Render(statusMessageStyle.Render(m.statusMessage))
	}

	var hints []string
	if m.mode == SimulationMode {
		hints = []string{"x: Stop", "y: Copy summary", "?: Help", "q: Quit"}
	} else {
		hints = []string{"enter: Add", "del: Delete", "tab: Strategy", "s: Start", "?: Help", "q: Quit"}
	}

	var help strings.Builder
	for i, hint := range hints {
		if i > 0 {
			help.WriteString(" │ ")
		}
		help.WriteString(helpStyle.Render(hint))
	}
	return statusStyle.Width(m.width).Render(help.String())
}

// renderHelp renders the keyboard shortcut box
func renderHelp(keys KeyMap) string {
	var content strings.Builder
	content.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")

	// Key column width for alignment
	const keyWidth = 12

	for i, section := range keys.helpSections() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(sectionTitleStyle.Render(section.title))
		content.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			content.WriteString(helpKeyStyle.Width(keyWidth).Render(h.Key))
			content.WriteString("  ")
			content.WriteString(helpDescStyle.Render(h.Desc))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Press Esc, ?, or q to close this help"))

	return modalStyle.Width(56).Render(content.String())
}
