package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memfit/internal/config"
	"github.com/joshuapare/memfit/internal/logger"
	"github.com/joshuapare/memfit/internal/render"
	"github.com/joshuapare/memfit/internal/termsize"
	"github.com/joshuapare/memfit/pkg/memfit"
	"github.com/joshuapare/memfit/pool"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	noColor  bool
	poolFile string

	logLevel string

	// Loaded in setup
	cfg     = &config.Config{Strategy: "first-fit", LogLevel: "info"}
	memPool *pool.Pool
)

var rootCmd = &cobra.Command{
	Use:   "memfitctl",
	Short: "Simulate contiguous memory placement strategies",
	Long: `memfitctl places an ordered list of process sizes into a fixed pool of
memory blocks using first-fit, best-fit, next-fit or worst-fit, and shows
which block each process landed in, which processes could not be placed,
and how much space was left unused inside allocated blocks.

The pool defaults to five blocks of 100, 500, 200, 300 and 600 KB. Use
--pool or MEMFIT_POOL_FILE to load a YAML or JSON pool definition.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setup() },
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&poolFile, "pool", "", "Pool definition file (YAML or JSON)")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration, initializes logging and loads the pool.
func setup() error {
	loaded, err := config.Load(".env")
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	if poolFile != "" {
		cfg.PoolFile = poolFile
	}
	if logLevel != "" {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = level.String()
	}

	opts := logger.Options{App: "memfitctl", LogDir: cfg.LogDir, Level: cfg.Level()}
	switch {
	case verbose:
		opts.Enabled = true
		opts.Writer = os.Stderr
		if logLevel == "" {
			opts.Level = slog.LevelDebug
		}
	case cfg.LogDir != "":
		opts.Enabled = true
	}
	if err := logger.Init(opts); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}

	memPool, err = cfg.Pool()
	if err != nil {
		return err
	}
	printVerbose("Pool: %d blocks, %d KB\n", memPool.Len(), memPool.TotalSize())
	return nil
}

// activePool returns the loaded pool, falling back to the configured one.
func activePool() (*pool.Pool, error) {
	if memPool != nil {
		return memPool, nil
	}
	if poolFile != "" {
		return pool.LoadFile(poolFile)
	}
	return cfg.Pool()
}

func simOptions() *memfit.Options {
	return &memfit.Options{Logger: logger.L}
}

func newRenderer() *render.Renderer {
	return render.New(termsize.Width(os.Stdout, 80), !noColor && !cfg.NoColor)
}

// parseSizes parses process sizes given as separate arguments or as
// comma-separated lists.
func parseSizes(args []string) ([]int, error) {
	var sizes []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid process size %q", field)
			}
			sizes = append(sizes, n)
		}
	}
	return sizes, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
