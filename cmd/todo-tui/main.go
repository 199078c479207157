// Package main is the entry point for the To-Do TUI application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/store"
	"github.com/hy4ri/todo-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `todo-tui - Terminal to-do list with due dates

USAGE:
    todo-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --file PATH     Use PATH as the task file
    --debug         Write debug messages to the log file

CONFIGURATION:
    Config file: ~/.config/todo-tui/config.yaml
    Task file:   ~/.local/share/todo-tui/tasks.json

KEYBINDINGS:
    Adding:
        Type, Enter     Enter a description, then a due date (YYYY-MM-DD)
        a               Focus the entry

    Navigation:
        j/k             Move down/up
        g/G             Go to top/bottom
        Tab/Shift+Tab   Cycle entry, To Do and Done
        h/l             Focus To Do/Done
        Esc             Back to the entry

    Task Actions:
        x / Space       Mark as Done / Mark as To Do
        d               Remove task
        y               Copy task

    Other:
        ?               Show help
        q               Quit

Row colors: blue is to do, red is overdue, green is done.
`

const configTemplate = `# To-Do TUI Configuration
# Location: ~/.config/todo-tui/config.yaml

storage:
  # Task file (default: ~/.local/share/todo-tui/tasks.json)
  # file: "~/tasks.json"

ui:
  # Column widths in characters
  description_width: 30
  due_date_width: 15
  # Maximum number of visible rows per list
  list_height: 15

notifications:
  # Send a desktop notification when a task becomes overdue
  enabled: false

log:
  # debug, info, warn, error
  level: info
  # file: "~/.local/share/todo-tui/todo-tui.log"
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		debug       bool
		taskFile    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.StringVar(&taskFile, "file", "", "Task file path")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("todo-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if taskFile != "" {
		cfg.Storage.File = taskFile
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp opens the log and task file and starts the TUI.
func runApp(cfg *config.Config) error {
	logPath, err := cfg.LogFile()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}
	logger, err := logging.Open(logPath, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logger.Close()

	path, err := cfg.TaskFile()
	if err != nil {
		return fmt.Errorf("failed to get task file path: %w", err)
	}

	// A corrupt file has been reset; the app reports it and keeps going.
	s, loadErr := store.Load(path)
	if loadErr != nil && !store.IsCorrupt(loadErr) {
		return fmt.Errorf("failed to load tasks: %w", loadErr)
	}
	logger.Info("starting", "version", version, "tasks", s.Len(), "file", path)

	app := tui.NewApp(s, cfg, logger.Logger, loadErr)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if err := app.Err(); err != nil {
		return err
	}

	logger.Info("exiting")
	return nil
}
