package qasmparser

import (
	"fmt"

	"github.com/itsubaki/qasm/gen/parser"
)

// declareRegister allocates a contiguous block of global indices for a
// register declaration, size 1 for scalars and size n for arrays. Quantum
// and classical registers draw from separate counters.
func (t *translator) declareRegister(kind valueKind, name string, designator parser.IDesignatorContext) error {
	if _, ok := t.env[name]; ok {
		return fmt.Errorf("%w: %s is already declared", ErrRedeclaration, name)
	}

	if designator == nil {
		t.env[name] = value{kind: kind, index: t.alloc(kind, 1)}
		return nil
	}

	sizeExpr := designator.Expression()
	if sizeExpr == nil {
		return fmt.Errorf("%w: missing size for register %s", ErrReference, name)
	}
	sizeVal, err := t.evalExpression(sizeExpr)
	if err != nil {
		return err
	}
	size, err := sizeVal.asInt()
	if err != nil || size < 0 {
		return fmt.Errorf("%w: invalid size for register %s", ErrReference, name)
	}

	base := t.alloc(kind, size)
	elems := make([]value, size)
	for i := range elems {
		elems[i] = value{kind: kind, index: base + i}
	}
	t.env[name] = value{kind: kindArray, elems: elems}
	return nil
}

func (t *translator) alloc(kind valueKind, n int) int {
	if kind == kindBit {
		base := t.bits
		t.bits += n
		return base
	}
	base := t.width
	t.width += n
	return base
}

// resolveQubit resolves a gate operand to a global qubit index, walking any
// index operators through the register table.
func (t *translator) resolveQubit(operand parser.IGateOperandContext) (int, error) {
	indexed := operand.IndexedIdentifier()
	if indexed == nil {
		return 0, fmt.Errorf("%w: hardware qubit operands are not supported", ErrReference)
	}
	name := indexed.Identifier().GetText()
	v, ok := t.env[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s is not defined", ErrReference, name)
	}
	for _, op := range indexed.AllIndexOperator() {
		if v.kind != kindArray {
			return 0, fmt.Errorf("%w: %s is not an array", ErrReference, name)
		}
		// Range and set index operands have no plain expression child.
		idxExpr := op.Expression(0)
		if idxExpr == nil {
			return 0, fmt.Errorf("%w: unsupported index form %s", ErrReference, op.GetText())
		}
		idxVal, err := t.evalExpression(idxExpr)
		if err != nil {
			return 0, err
		}
		idx, err := idxVal.asInt()
		if err != nil {
			return 0, fmt.Errorf("%w: non-integer index into %s", ErrReference, name)
		}
		if idx < 0 || idx >= len(v.elems) {
			return 0, fmt.Errorf("%w: index %d out of range for %s of length %d", ErrReference, idx, name, len(v.elems))
		}
		v = v.elems[idx]
	}
	if v.kind != kindQubit {
		return 0, fmt.Errorf("%w: %s does not name a qubit", ErrReference, indexed.GetText())
	}
	return v.index, nil
}
