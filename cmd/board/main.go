package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"worktrack/client"
	"worktrack/config"
	"worktrack/internal/board"
	"worktrack/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	api := client.New(cfg)

	p := tea.NewProgram(board.New(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "board crashed:", err)
		os.Exit(1)
	}
}
