package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoview/internal/api"
	"github.com/idilsaglam/todoview/internal/logging"
	"github.com/idilsaglam/todoview/internal/tui"
)

func main() {
	// Root flags (apply to the whole session)
	baseURL := flag.String("api", api.DefaultBaseURL, "base URL of the todo service")
	todoID := flag.Int("todo", 0, "open the detail view for this todo id")
	debug := flag.Bool("debug", false, "write debug logs to todoview.log")
	flag.Parse()

	logger, closeLog, err := logging.Setup(*debug, "todoview.log")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer closeLog()

	m := tui.New(api.New(*baseURL), logger)
	if *todoID > 0 {
		m = m.WithInitialTodo(*todoID)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
