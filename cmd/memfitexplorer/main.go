package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/memfit/internal/config"
	"github.com/joshuapare/memfit/internal/logger"
	"github.com/joshuapare/memfit/pool"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("memfitexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}
	if len(filteredArgs) > 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(".env")
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	level := cfg.Level()
	if debugMode {
		level = slog.LevelDebug
	}
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		App:     "memfitexplorer",
		LogDir:  cfg.LogDir,
		Level:   level,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	poolArg := ""
	if len(filteredArgs) == 1 {
		poolArg = filteredArgs[0]
	}

	p, poolName, err := loadPool(cfg, poolArg)
	if err != nil {
		logger.Error("failed to load pool", "path", cfg.PoolFile, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Validate already checked the name
	strategy, _ := cfg.StrategyValue()

	logger.Info("starting memfitexplorer", "pool", poolName, "blocks", p.Len(), "debug", debugMode)

	m := NewModel(p, poolName, strategy)

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("memfitexplorer exited normally")
}

// loadPool resolves the pool from the command line argument or the config.
// An argument overrides MEMFIT_POOL_FILE.
func loadPool(cfg *config.Config, arg string) (*pool.Pool, string, error) {
	if arg != "" {
		cfg.PoolFile = arg
	}
	name := "default"
	if cfg.PoolFile != "" {
		name = cfg.PoolFile
	}
	p, err := cfg.Pool()
	return p, name, err
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: memfitexplorer [options] [pool-file]\n")
	fmt.Fprintf(os.Stderr, "Try 'memfitexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("memfitexplorer - Interactive memory allocation simulator")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  memfitexplorer [options] [pool-file]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Build a list of process sizes, pick a placement strategy, and watch how")
	fmt.Println("  the processes land in a fixed pool of memory blocks.")
	fmt.Println()
	fmt.Println("  Without a pool file the demo pool of 100, 500, 200, 300 and 600 KB is used.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    0-9, Enter  Type a size and add the process")
	fmt.Println("    ↑/k, ↓/j    Select a process")
	fmt.Println("    Del         Delete the selected process")
	fmt.Println("    Tab         Cycle first/best/next/worst fit")
	fmt.Println("    s / x       Start / stop the simulation")
	fmt.Println("    y           Copy the result summary")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.memfitexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Println("  MEMFIT_POOL_FILE, MEMFIT_STRATEGY, MEMFIT_LOG_LEVEL, MEMFIT_LOG_DIR")
	fmt.Println()
	fmt.Println("For non-interactive runs, use the 'memfitctl' command instead.")
}
