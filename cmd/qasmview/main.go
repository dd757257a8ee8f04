// Command qasmview renders an OpenQASM file as an interactive circuit view:
// the translated circuit diagram, the source text, and per-qubit
// probabilities simulated up to a movable cursor.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	qasmparser "github.com/thierry-martinez/graphix-qasm-parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: qasmview <file.qasm>")
		os.Exit(2)
	}
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	circuit, err := qasmparser.New().ParseString(string(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(path, string(source), circuit), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
