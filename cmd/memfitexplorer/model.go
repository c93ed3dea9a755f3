package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/internal/logger"
	"github.com/joshuapare/memfit/internal/render"
	"github.com/joshuapare/memfit/internal/units"
	"github.com/joshuapare/memfit/pkg/memfit"
	"github.com/joshuapare/memfit/pool"
)

// Mode is what the explorer is currently doing.
type Mode int

const (
	// EditMode lets the user build the process list and pick a strategy.
	EditMode Mode = iota
	// SimulationMode shows a finished run. Editing is locked until stopped.
	SimulationMode
)

// Layout constants
const (
	processPaneWidth = 32
	defaultWidth     = 100
	defaultHeight    = 30
	maxSizeDigits    = 7
)

// Model is the main application model
type Model struct {
	pool     *pool.Pool
	poolName string

	workload memfit.Workload
	selected int // index into workload, -1 when empty
	strategy alloc.Strategy
	input    textinput.Model

	mode   Mode
	report *memfit.Report

	keys   KeyMap
	width  int
	height int

	// Help overlay
	showHelp bool

	// Status message for temporary feedback
	statusMessage string

	// copyText writes to the system clipboard; tests replace it.
	copyText func(string) error

	// err is fatal; the view shows only it and every key but quit is ignored.
	err error
}

// NewModel creates a new TUI model over p. poolName labels the pool in the header.
func NewModel(p *pool.Pool, poolName string, strategy alloc.Strategy) Model {
	input := textinput.New()
	input.Placeholder = "size in KB"
	input.CharLimit = maxSizeDigits
	input.Width = maxSizeDigits + 1
	input.Prompt = "Size: "
	input.Focus()

	if !strategy.Valid() {
		strategy = alloc.FirstFit
	}

	var err error
	if p == nil {
		err = memfit.ErrNilPool
	}

	return Model{
		pool:     p,
		poolName: poolName,
		selected: -1,
		strategy: strategy,
		input:    input,
		mode:     EditMode,
		keys:     DefaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
		copyText: clipboard.WriteAll,
		err:      err,
	}
}

// Init starts the cursor blinking in the size input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// startSimulation runs the selected strategy over the current processes.
func (m *Model) startSimulation() error {
	if m.workload.Len() == 0 {
		return errors.New("add a process before starting")
	}

	rep, err := memfit.Run(m.pool, m.strategy, m.workload.Sizes(), &memfit.Options{Logger: logger.L})
	if err != nil {
		return err
	}

	m.report = rep
	m.mode = SimulationMode
	m.input.Blur()
	return nil
}

// stopSimulation discards the current run and returns to editing.
func (m *Model) stopSimulation() {
	m.report = nil
	m.mode = EditMode
	m.input.Focus()
}

// cycleStrategy moves the strategy selection by delta, wrapping around.
func (m *Model) cycleStrategy(delta int) {
	all := alloc.Strategies()
	cur := 0
	for i, s := range all {
		if s == m.strategy {
			cur = i
		}
	}
	m.strategy = all[(cur+delta+len(all))%len(all)]
}

// summaryText renders the current run as plain text for the clipboard.
func (m Model) summaryText() string {
	if m.report == nil {
		return ""
	}

	r := render.New(defaultWidth, false)
	sum := m.report.Summary()

	var b strings.Builder
	fmt.Fprintf(&b, "Strategy: %s\n\n", m.report.Strategy)
	b.WriteString(r.Result(m.report.Result, m.report.TotalSize))
	b.WriteByte('\n')
	b.WriteString(r.Placements(m.report.Result))
	fmt.Fprintf(&b, "\nPlaced %d of %d processes, %s allocated, %s internal fragmentation (%s utilization)\n",
		sum.Placed, sum.Requests,
		units.Size(sum.Allocated), units.Size(sum.Fragmentation), units.Percent(sum.Utilization))
	return b.String()
}
