// Package main is the entry point for the AWD shipment dashboard.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"awdash/internal/app"
	"awdash/internal/config"
	"awdash/internal/services"
	"awdash/internal/ui/tabs/dashboard"
	"awdash/internal/ui/tabs/history"
	"awdash/internal/ui/tabs/info"
	"awdash/internal/ui/tabs/status"
	"awdash/internal/version"
)

func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Handle help flag
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	// An optional positional argument names a report file to open at
	// startup instead of the newest file in the reports directory.
	reportArg := ""
	if len(os.Args) > 1 {
		reportArg = os.Args[1]
		if _, err := os.Stat(reportArg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: report file %q: %v\n", reportArg, err)
			os.Exit(1)
		}
	}

	if err := run(reportArg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run(reportArg string) error {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize the service manager
	// This starts the report watcher and opens the history database
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Ensure cleanup on exit
	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	// 3. Create the root Bubble Tea model
	model := app.NewModel(svcManager)

	// 4. Initialize tabs with shared state and services
	state := model.GetState()
	tabs := []app.Tab{
		dashboard.New(state),           // Tab 0: Dashboard - reception overview
		status.New(state),              // Tab 1: Status - shipment status breakdown
		history.New(state, svcManager), // Tab 2: History - past analyses
		info.New(state, cfg),           // Tab 3: Info - configuration and app info
	}
	model.SetTabs(tabs)

	// 5. Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// 6. Create and configure the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// 7. Handle signals in a separate goroutine
	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if reportArg != "" {
		go p.Send(app.LoadReportMsg{Path: reportArg})
	}

	// 8. Run the TUI program
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`awdash - AWD shipment reception dashboard

Usage:
  awdash [report-file] [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-4             Switch between tabs (Dashboard, Status, History, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  Enter           Open selected report
  o               Open a report by path
  r               Reload the latest report
  e               Export summary to Excel
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  REPORTS_DIR        Directory watched for shipment reports
  DATABASE_PATH      SQLite analysis-history database path
  EXPORT_DIR         Directory for Excel exports
  RECEIVED_STATUSES  Statuses counted as received (default: RECEIVED,CLOSED)
  CURRENT_MONTH_MODE Gauge month selection: latest or clock
  SKIP_ROWS          Preamble rows before the report header (default: 1)
  HISTORY_DISABLED   Set to 1 to disable the persisted history

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/awdash/.env
  - ~/.awdash/.env`)
}
