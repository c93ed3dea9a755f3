package main

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memfit/alloc"
)

const sampleOutput = `goos: linux
goarch: amd64
pkg: github.com/joshuapare/memfit/alloc
BenchmarkAllocate/first-fit/5x4-8         	 4000000	       301.0 ns/op	     480 B/op	       3 allocs/op
BenchmarkAllocate/best-fit/5x4-8          	 3000000	       402.0 ns/op	     480 B/op	       3 allocs/op
BenchmarkAllocate/first-fit/256x512-8     	   10000	    112000 ns/op	   26624 B/op	       3 allocs/op
BenchmarkAllocate/worst-fit/256x512-8     	    5000	    224000 ns/op	   26624 B/op	       3 allocs/op
BenchmarkAllocate/first-fit/5x4-8         	 4000000	       280.0 ns/op	     480 B/op	       3 allocs/op
BenchmarkSomethingElse-8                  	 1000000	      1000 ns/op
{"Action":"output","Output":"BenchmarkAllocate/next-fit/5x4-8   3500000   350.0 ns/op   480 B/op   3 allocs/op\n"}
PASS
`

func parseSample(t *testing.T) []BenchmarkResult {
	t.Helper()
	return parseBenchmarks(bufio.NewScanner(strings.NewReader(sampleOutput)))
}

func TestParseBenchmarks(t *testing.T) {
	results := parseSample(t)
	require.Len(t, results, 6, "non-Allocate benchmarks are skipped")

	first := results[0]
	assert.Equal(t, alloc.FirstFit, first.Strategy)
	assert.Equal(t, "5x4", first.Scale)
	assert.Equal(t, 4000000, first.Iterations)
	assert.InDelta(t, 301.0, first.NsPerOp, 1e-9)
	assert.Equal(t, int64(480), first.BytesPerOp)
	assert.Equal(t, int64(3), first.AllocsPerOp)

	last := results[5]
	assert.Equal(t, alloc.NextFit, last.Strategy, "lines inside -json events are parsed")
}

func TestGroupByScale(t *testing.T) {
	reports := groupByScale(parseSample(t))
	require.Len(t, reports, 2)

	small := reports[0]
	assert.Equal(t, "5x4", small.Scale)
	require.Len(t, small.Results, 3)
	assert.Equal(t, alloc.FirstFit, small.Results[0].Strategy)
	assert.InDelta(t, 280.0, small.Results[0].NsPerOp, 1e-9, "repeated runs keep the fastest")
	assert.Equal(t, alloc.NextFit, small.Results[1].Strategy)
	assert.Equal(t, alloc.BestFit, small.Results[2].Strategy)

	assert.Equal(t, "256x512", reports[1].Scale)
}

func TestGenerateMarkdownReport(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	report := generateMarkdownReport(groupByScale(parseSample(t)), now)

	assert.Contains(t, report, "Generated: 2025-03-01 12:00:00")
	assert.Contains(t, report, "## 5x4 (blocks x requests)")
	assert.Contains(t, report, "| first-fit | 280 | **fastest** | 480 | 3 |")
	assert.Contains(t, report, "| worst-fit | 224.0K | 2.00x | 26,624 | 3 |")
}

func TestGenerateMarkdownReport_Empty(t *testing.T) {
	report := generateMarkdownReport(nil, time.Now())
	assert.Contains(t, report, "No BenchmarkAllocate results found.")
}

func TestTrimProcs(t *testing.T) {
	assert.Equal(t, "64x128", trimProcs("64x128-16"))
	assert.Equal(t, "64x128", trimProcs("64x128"))
}
