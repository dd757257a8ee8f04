package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	qasmparser "github.com/thierry-martinez/graphix-qasm-parser"
)

// model is the viewer state: a parsed circuit, the source text in a
// scrollable viewport, and a cursor selecting how many instructions have
// been applied in the probability panel.
type model struct {
	path       string
	circuit    *qasmparser.Circuit
	source     viewport.Model
	cursorStep int
	width      int
	height     int
	ready      bool
}

func newModel(path, source string, c *qasmparser.Circuit) model {
	vp := viewport.New(40, 20)
	vp.SetContent(source)
	return model{
		path:       path,
		circuit:    c,
		source:     vp,
		cursorStep: len(c.Instructions),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.source.Width = max(msg.Width/3-6, 20)
		m.source.Height = max(msg.Height-14, 4)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursorStep > 0 {
				m.cursorStep--
			}
		case "right", "l":
			if m.cursorStep < len(m.circuit.Instructions) {
				m.cursorStep++
			}
		default:
			var cmd tea.Cmd
			m.source, cmd = m.source.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sourceWidth := m.width / 3
	circuitWidth := m.width - sourceWidth - 4
	probHeight := 8
	topHeight := max(m.height-probHeight-2, 6)

	circuitPanel := circuitStyle.Width(circuitWidth).Height(topHeight).Render(
		titleStyle.Render("Quantum Circuit") + "\n\n" + m.circuit.Diagram() + "\n" + m.statusLine())
	sourcePanel := sourceStyle.Width(sourceWidth).Height(topHeight).Render(
		titleStyle.Render(m.path) + "\n\n" + m.source.View())
	probPanel := probStyle.Width(m.width - 4).Height(probHeight - 2).Render(m.renderProbabilities())

	top := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, sourcePanel)
	return lipgloss.JoinVertical(lipgloss.Left, top, probPanel)
}

func (m model) statusLine() string {
	if m.cursorStep == 0 {
		return dimStyle.Render("initial state   ←/→ step  q quit")
	}
	in := m.circuit.Instructions[m.cursorStep-1]
	return dimStyle.Render(fmt.Sprintf("after %d/%d: %s   ←/→ step  q quit",
		m.cursorStep, len(m.circuit.Instructions), describe(in)))
}

// describe formats one instruction for the status line.
func describe(in qasmparser.Instruction) string {
	switch in.Kind {
	case qasmparser.CCX:
		return fmt.Sprintf("CCX q[%d],q[%d] → q[%d]", in.Controls[0], in.Controls[1], in.Target)
	case qasmparser.RZZ:
		return fmt.Sprintf("RZZ(%.4g) q[%d],q[%d]", in.Angle, in.Control, in.Target)
	case qasmparser.CX:
		return fmt.Sprintf("CX q[%d] → q[%d]", in.Control, in.Target)
	case qasmparser.SWAP:
		return fmt.Sprintf("SWAP q[%d],q[%d]", in.Control, in.Target)
	case qasmparser.RX, qasmparser.RY, qasmparser.RZ:
		return fmt.Sprintf("%s(%.4g) q[%d]", in.Kind, in.Angle, in.Target)
	default:
		return fmt.Sprintf("%s q[%d]", in.Kind, in.Target)
	}
}

func (m model) renderProbabilities() string {
	state := qasmparser.Simulate(m.circuit, m.cursorStep)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Qubit probabilities"))
	sb.WriteString("\n")
	for q, p := range state.Probabilities() {
		bar := strings.Repeat("█", int(p.Prob1*20+0.5))
		fmt.Fprintf(&sb, "q[%d]  P(1)=%.3f  %s\n", q, p.Prob1, barStyle.Render(bar))
	}
	return sb.String()
}
