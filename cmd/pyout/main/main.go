package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/vsoch/pyout/cmd/pyout"
)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("1")).
	Bold(true)

func main() {
	rootCmd := pyout.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors is set on the root command, so print here
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
