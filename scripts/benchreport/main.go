// Command benchreport turns `go test -bench Allocate ./alloc` output into a
// markdown table comparing the placement strategies at each pool scale.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/internal/units"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Strategy    alloc.Strategy
	Scale       string // <blocks>x<requests>
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ScaleReport ranks the strategies measured at one scale, fastest first.
type ScaleReport struct {
	Scale   string
	Results []BenchmarkResult
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

// BenchmarkAllocate/best-fit/64x128-8    52118    22871 ns/op    6400 B/op    3 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(BenchmarkAllocate/\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	report := generateMarkdownReport(groupByScale(results), time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		// Name format: BenchmarkAllocate/<strategy>/<scale>-<procs>
		parts := strings.Split(matches[1], "/")
		if len(parts) != 3 {
			continue
		}
		strategy, err := alloc.ParseStrategy(parts[1])
		if err != nil {
			continue
		}

		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)
		bytesPerOp, _ := strconv.ParseInt(matches[4], 10, 64)
		allocsPerOp, _ := strconv.ParseInt(matches[5], 10, 64)

		results = append(results, BenchmarkResult{
			Name:        matches[1],
			Strategy:    strategy,
			Scale:       trimProcs(parts[2]),
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

// trimProcs removes the -GOMAXPROCS suffix the test runner appends.
func trimProcs(s string) string {
	if i := strings.LastIndex(s, "-"); i > 0 {
		if _, err := strconv.Atoi(s[i+1:]); err == nil {
			return s[:i]
		}
	}
	return s
}

// groupByScale groups results by scale in first-seen order. Repeated runs
// of the same benchmark (-count) keep the fastest.
func groupByScale(results []BenchmarkResult) []ScaleReport {
	var reports []ScaleReport
	index := map[string]int{}

	for _, r := range results {
		i, ok := index[r.Scale]
		if !ok {
			i = len(reports)
			index[r.Scale] = i
			reports = append(reports, ScaleReport{Scale: r.Scale})
		}

		rep := &reports[i]
		j := slices.IndexFunc(rep.Results, func(e BenchmarkResult) bool { return e.Strategy == r.Strategy })
		switch {
		case j < 0:
			rep.Results = append(rep.Results, r)
		case r.NsPerOp < rep.Results[j].NsPerOp:
			rep.Results[j] = r
		}
	}

	for i := range reports {
		slices.SortStableFunc(reports[i].Results, func(a, b BenchmarkResult) int {
			switch {
			case a.NsPerOp < b.NsPerOp:
				return -1
			case a.NsPerOp > b.NsPerOp:
				return 1
			}
			return int(a.Strategy) - int(b.Strategy)
		})
	}
	return reports
}

func generateMarkdownReport(reports []ScaleReport, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Allocation Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	if len(reports) == 0 {
		sb.WriteString("No BenchmarkAllocate results found.\n")
		return sb.String()
	}

	for _, rep := range reports {
		fmt.Fprintf(&sb, "## %s (blocks x requests)\n\n", rep.Scale)
		sb.WriteString("| Strategy | ns/op | Relative | Memory (B/op) | Allocs |\n")
		sb.WriteString("|----------|-------|----------|---------------|--------|\n")

		fastest := rep.Results[0].NsPerOp
		for _, r := range rep.Results {
			relative := "**fastest**"
			if r.NsPerOp > fastest && fastest > 0 {
				relative = fmt.Sprintf("%.2fx", r.NsPerOp/fastest)
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
				r.Strategy,
				formatNumber(r.NsPerOp),
				relative,
				units.Number(int(r.BytesPerOp)),
				units.Number(int(r.AllocsPerOp)),
			)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **Relative**: time per run compared to the fastest strategy at that scale\n")
	sb.WriteString("- Best and worst fit scan every block per request; first and next fit stop at the first fit\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}
