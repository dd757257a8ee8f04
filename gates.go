package qasmparser

import (
	"fmt"

	"github.com/itsubaki/qasm/gen/parser"
)

// gateSpec is one entry of the gate mapping table: the operand and parameter
// counts the gate takes, and how to build the instruction once operands are
// resolved to global indices and parameters evaluated.
type gateSpec struct {
	operands int
	params   int
	build    func(q []int, angles []float64) Instruction
}

// gateTable maps the supported OpenQASM standard-library gate names to
// circuit instructions. https://openqasm.com/language/standard_library.html
var gateTable = map[string]gateSpec{
	"ccx": {operands: 3, build: func(q []int, _ []float64) Instruction {
		return Instruction{Kind: CCX, Target: q[2], Control: -1, Controls: []int{q[0], q[1]}}
	}},
	"crz": {operands: 2, params: 1, build: func(q []int, a []float64) Instruction {
		return Instruction{Kind: RZZ, Target: q[1], Control: q[0], Angle: a[0]}
	}},
	"cx": {operands: 2, build: func(q []int, _ []float64) Instruction {
		return Instruction{Kind: CX, Target: q[1], Control: q[0]}
	}},
	"swap": {operands: 2, build: func(q []int, _ []float64) Instruction {
		return Instruction{Kind: SWAP, Target: q[1], Control: q[0]}
	}},
	"h":  single(H),
	"s":  single(S),
	"x":  single(X),
	"y":  single(Y),
	"z":  single(Z),
	"rx": rotation(RX),
	"ry": rotation(RY),
	"rz": rotation(RZ),
}

func single(kind Kind) gateSpec {
	return gateSpec{operands: 1, build: func(q []int, _ []float64) Instruction {
		return Instruction{Kind: kind, Target: q[0], Control: -1}
	}}
}

func rotation(kind Kind) gateSpec {
	return gateSpec{operands: 1, params: 1, build: func(q []int, a []float64) Instruction {
		return Instruction{Kind: kind, Target: q[0], Control: -1, Angle: a[0]}
	}}
}

// gateCall translates one gate-call statement into a circuit instruction.
func (t *translator) gateCall(ctx *parser.GateCallStatementContext) error {
	id := ctx.Identifier()
	if id == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedGate, ctx.GetText())
	}
	name := id.GetText()
	g, ok := gateTable[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedGate, name)
	}

	operandList := ctx.GateOperandList()
	if operandList == nil {
		return fmt.Errorf("%w: %s takes %d qubit operands, got none", ErrUnsupportedGate, name, g.operands)
	}
	operands := operandList.AllGateOperand()
	if len(operands) != g.operands {
		return fmt.Errorf("%w: %s takes %d qubit operands, got %d", ErrUnsupportedGate, name, g.operands, len(operands))
	}
	qubits := make([]int, len(operands))
	for i, operand := range operands {
		index, err := t.resolveQubit(operand)
		if err != nil {
			return err
		}
		qubits[i] = index
	}

	var angles []float64
	if list := ctx.ExpressionList(); list != nil {
		for _, expr := range list.AllExpression() {
			v, err := t.evalExpression(expr)
			if err != nil {
				return err
			}
			angle, err := v.asFloat()
			if err != nil {
				return fmt.Errorf("non-numeric parameter %q for gate %s", expr.GetText(), name)
			}
			angles = append(angles, angle)
		}
	}
	if len(angles) != g.params {
		return fmt.Errorf("%w: %s takes %d parameters, got %d", ErrUnsupportedGate, name, g.params, len(angles))
	}

	t.circ.append(g.build(qubits, angles))
	return nil
}
