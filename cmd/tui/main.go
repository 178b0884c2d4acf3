package main

import (
	"fmt"
	"os"

	"codeberg.org/musegrid/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	app := tui.NewApp()
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running musegrid tui: %v\n", err)
		os.Exit(1)
	}
}
