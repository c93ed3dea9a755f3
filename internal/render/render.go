// Package render draws pools and allocation results as terminal text.
//
// Each block is drawn as a bar whose length is proportional to its share of
// the pool's total capacity. After a run, the part of the bar occupied by the
// placed process is filled; the rest is internal fragmentation.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/internal/units"
	"github.com/joshuapare/memfit/pool"
)

const (
	filledCell = "█"
	emptyCell  = "░"

	// labelColumns is the space reserved beside each bar for the block
	// name and size label.
	labelColumns = 36
	minBarWidth  = 10
)

// Renderer draws pools, results and placement tables.
type Renderer struct {
	// Width is the total line width available, usually the terminal width.
	Width int
	// Color enables lipgloss styling.
	Color bool
}

// New returns a renderer for the given width.
func New(width int, color bool) *Renderer {
	return &Renderer{Width: width, Color: color}
}

// Pool draws the pool before any simulation: empty bars sized by capacity.
func (r *Renderer) Pool(p *pool.Pool) string {
	var b strings.Builder
	total := p.TotalSize()
	for _, blk := range p.Blocks() {
		r.writeBar(&b, blk, total, 0, lipgloss.Color(""))
		b.WriteString(units.Size(blk.Size))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total: %s in %d blocks\n", units.Size(total), p.Len())
	return b.String()
}

// Result draws the blocks of a finished run. total is the pool's capacity.
func (r *Renderer) Result(res *alloc.Result, total int) string {
	colors := blockColors(res)

	var b strings.Builder
	for i, blk := range res.Blocks {
		filled := 0
		label := "free / " + units.Size(blk.Size)
		if blk.Allocated {
			filled = fillCells(blk.ProcessSize, blk.Size, barCells(blk.Size, total, r.barWidth()))
			label = units.Size(blk.ProcessSize) + " / " + units.Size(blk.Size)
		}
		r.writeBar(&b, blk, total, filled, colors[i])
		b.WriteString(label)
		b.WriteByte('\n')
	}
	return b.String()
}

// Placements draws the per-process table. Unplaced processes are marked
// so they stand out from placed ones even without color.
func (r *Renderer) Placements(res *alloc.Result) string {
	var b strings.Builder
	b.WriteString(r.style(headerStyle, fmt.Sprintf("%-4s %12s  %-10s %s", "#", "Size", "Outcome", "Block")))
	b.WriteByte('\n')

	for _, pl := range res.Placements {
		target := "-"
		if pl.IsPlaced() {
			target = fmt.Sprintf("%d", pl.BlockID)
		}
		line := fmt.Sprintf("%-4d %12s  %-10s %s", pl.Index+1, units.Size(pl.Size), pl.Outcome, target)
		if pl.IsPlaced() {
			b.WriteString(r.style(placedStyle, line))
		} else {
			b.WriteString(r.style(unplacedStyle, line+"  ✗"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SummaryRow is one line of a strategy comparison table.
type SummaryRow struct {
	Strategy      alloc.Strategy
	Placed        int
	Unplaced      int
	Allocated     int
	Fragmentation int
	Utilization   float64
}

// Summary draws a comparison table with one row per strategy.
func (r *Renderer) Summary(rows []SummaryRow) string {
	var b strings.Builder
	b.WriteString(r.style(headerStyle, fmt.Sprintf("%-10s %7s %9s %12s %14s %12s",
		"Strategy", "Placed", "Unplaced", "Allocated", "Fragmentation", "Utilization")))
	b.WriteByte('\n')

	for _, row := range rows {
		line := fmt.Sprintf("%-10s %7d %9d %12s %14s %12s",
			row.Strategy, row.Placed, row.Unplaced,
			units.Size(row.Allocated), units.Size(row.Fragmentation), units.Percent(row.Utilization))
		if row.Unplaced > 0 {
			line = r.style(unplacedStyle, line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// writeBar writes the block name and its bar, padded to the bar width.
func (r *Renderer) writeBar(b *strings.Builder, blk pool.Block, total, filled int, color lipgloss.Color) {
	width := r.barWidth()
	cells := barCells(blk.Size, total, width)

	fmt.Fprintf(b, "%-9s ", fmt.Sprintf("block %d", blk.ID))
	b.WriteString(r.style(lipgloss.NewStyle().Foreground(color), strings.Repeat(filledCell, filled)))
	b.WriteString(r.style(freeStyle, strings.Repeat(emptyCell, cells-filled)))
	b.WriteString(strings.Repeat(" ", max(width-cells, 0)+1))
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.Color || text == "" {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) barWidth() int {
	return max(r.Width-labelColumns, minBarWidth)
}

// barCells returns the bar length for a block, at least one cell.
func barCells(size, total, width int) int {
	if total <= 0 {
		return 1
	}
	cells := int(math.Round(float64(size) / float64(total) * float64(width)))
	return min(max(cells, 1), width)
}

// fillCells returns how many of a block's cells the process occupies. Any
// non-empty process gets at least one cell.
func fillCells(process, size, cells int) int {
	if process <= 0 || size <= 0 {
		return 0
	}
	filled := int(math.Round(float64(process) / float64(size) * float64(cells)))
	return min(max(filled, 1), cells)
}

// blockColors assigns palette colors to allocated blocks in placement order.
func blockColors(res *alloc.Result) []lipgloss.Color {
	colors := make([]lipgloss.Color, len(res.Blocks))
	for n, pl := range res.Placed() {
		colors[pl.Block] = processPalette[n%len(processPalette)]
	}
	return colors
}
