package qasmparser

import (
	"fmt"
	"strings"
)

// Kind identifies a circuit instruction.
type Kind string

const (
	CCX  Kind = "CCX"
	RZZ  Kind = "RZZ"
	CX   Kind = "CX"
	SWAP Kind = "SWAP"
	H    Kind = "H"
	S    Kind = "S"
	X    Kind = "X"
	Y    Kind = "Y"
	Z    Kind = "Z"
	RX   Kind = "RX"
	RY   Kind = "RY"
	RZ   Kind = "RZ"
)

// Instruction is a single gate application with operands resolved to global
// qubit indices.
type Instruction struct {
	Kind     Kind
	Target   int
	Control  int     // -1 unless the gate pairs qubits (CX, RZZ, SWAP)
	Controls []int   // CCX control qubits, in argument order
	Angle    float64 // rotation angle for RX, RY, RZ, RZZ
}

// qubits returns every qubit index the instruction references.
func (in Instruction) qubits() []int {
	q := []int{in.Target}
	if in.Control >= 0 {
		q = append(q, in.Control)
	}
	return append(q, in.Controls...)
}

// Circuit accumulates gate applications in declaration order over Width
// qubits indexed 0..Width-1.
type Circuit struct {
	Width        int
	Instructions []Instruction
}

// append adds an instruction, growing Width to cover any qubit it touches.
func (c *Circuit) append(in Instruction) {
	for _, q := range in.qubits() {
		if q >= c.Width {
			c.Width = q + 1
		}
	}
	c.Instructions = append(c.Instructions, in)
}

// AddGate appends a single-qubit gate.
func (c *Circuit) AddGate(kind Kind, target int) {
	c.append(Instruction{Kind: kind, Target: target, Control: -1})
}

// AddRotation appends a single-qubit rotation with the given angle.
func (c *Circuit) AddRotation(kind Kind, target int, angle float64) {
	c.append(Instruction{Kind: kind, Target: target, Control: -1, Angle: angle})
}

// AddControlled appends a two-qubit gate (CX, SWAP).
func (c *Circuit) AddControlled(kind Kind, control, target int) {
	c.append(Instruction{Kind: kind, Target: target, Control: control})
}

// AddRZZ appends a ZZ interaction between control and target.
func (c *Circuit) AddRZZ(control, target int, angle float64) {
	c.append(Instruction{Kind: RZZ, Target: target, Control: control, Angle: angle})
}

// AddCCX appends a Toffoli gate.
func (c *Circuit) AddCCX(control0, control1, target int) {
	c.append(Instruction{Kind: CCX, Target: target, Control: -1, Controls: []int{control0, control1}})
}

// QASM renders the circuit as OpenQASM 2.0 source. Angles are written in pi
// notation when a common fraction matches, so the output parses back to a
// structurally equal circuit.
func (c *Circuit) QASM() string {
	width := c.Width
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", width)

	for _, in := range c.Instructions {
		switch in.Kind {
		case CCX:
			fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", in.Controls[0], in.Controls[1], in.Target)
		case RZZ:
			fmt.Fprintf(&sb, "crz(%s) q[%d], q[%d];\n", formatAngle(in.Angle), in.Control, in.Target)
		case CX:
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", in.Control, in.Target)
		case SWAP:
			fmt.Fprintf(&sb, "swap q[%d], q[%d];\n", in.Control, in.Target)
		case RX, RY, RZ:
			fmt.Fprintf(&sb, "%s(%s) q[%d];\n", strings.ToLower(string(in.Kind)), formatAngle(in.Angle), in.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(string(in.Kind)), in.Target)
		}
	}
	return sb.String()
}
