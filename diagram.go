package qasmparser

import (
	"fmt"
	"strings"
)

// cellInfo describes what occupies one cell of the diagram grid, the cell
// at (instruction column, qubit wire).
type cellInfo struct {
	in          *Instruction
	isControl   bool
	isTarget    bool
	vertAbove   bool
	vertBelow   bool
	passThrough bool
}

// cellAt returns rendering information for the given instruction and qubit.
func cellAt(in *Instruction, qubit int) cellInfo {
	var info cellInfo

	touched := false
	for _, q := range in.qubits() {
		if q == qubit {
			touched = true
			break
		}
	}
	if touched {
		info.in = in
		info.isControl = in.Control == qubit
		for _, ctrl := range in.Controls {
			if ctrl == qubit {
				info.isControl = true
			}
		}
		info.isTarget = in.Target == qubit && (in.Control >= 0 || len(in.Controls) > 0)
	}

	// Vertical connector span for multi-qubit gates.
	if in.Control >= 0 || len(in.Controls) > 0 {
		minQ, maxQ := in.Target, in.Target
		for _, q := range in.qubits() {
			if q < minQ {
				minQ = q
			}
			if q > maxQ {
				maxQ = q
			}
		}
		if qubit >= minQ && qubit <= maxQ {
			if qubit > minQ {
				info.vertAbove = true
			}
			if qubit < maxQ {
				info.vertBelow = true
			}
			if qubit > minQ && qubit < maxQ && info.in == nil {
				info.passThrough = true
			}
		}
	}

	return info
}

// controlSymbol returns the wire symbol for a control qubit.
func controlSymbol(kind Kind) string {
	if kind == SWAP {
		return "×"
	}
	return "●"
}

// targetSymbol returns the wire symbol for the target qubit of a
// multi-qubit gate.
func targetSymbol(kind Kind) string {
	if kind == SWAP {
		return "×"
	}
	return "⊕"
}

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	total := width - len(runes)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// renderCell returns 3 lines (top, mid, bot) for a single cell, each exactly
// cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	switch {
	case info.in != nil && info.isControl:
		top, bot = emptyRow, emptyRow
		if info.vertAbove {
			top = vertRow
		}
		if info.vertBelow {
			bot = vertRow
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render(controlSymbol(info.in.Kind)) + strings.Repeat("─", dashR)

	case info.in != nil && info.isTarget:
		top, bot = emptyRow, emptyRow
		if info.vertAbove {
			top = vertRow
		}
		if info.vertBelow {
			bot = vertRow
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render(targetSymbol(info.in.Kind)) + strings.Repeat("─", dashR)

	case info.in != nil:
		// Single-qubit gate box.
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(string(info.in.Kind), gateNameW)
		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)

	case info.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow

	default:
		// Empty wire.
		top, bot = emptyRow, emptyRow
		mid = strings.Repeat("─", cellW)
	}

	return
}

// Diagram renders the circuit as terminal art: one column per instruction,
// three text rows per qubit wire.
func (c *Circuit) Diagram() string {
	width := c.Width
	if width < 1 {
		width = 1
	}

	var sb strings.Builder

	// Instruction index header.
	header := strings.Repeat(" ", labelVisualW)
	for step := range c.Instructions {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	for qubit := 0; qubit < width; qubit++ {
		topLine := strings.Repeat(" ", labelVisualW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for i := range c.Instructions {
			top, mid, bot := renderCell(cellAt(&c.Instructions[i], qubit))
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	return sb.String()
}
