package qasmparser

import (
	"fmt"
	"math"
	"strconv"

	"github.com/itsubaki/qasm/gen/parser"
)

// value is the result of evaluating an OpenQASM expression or resolving an
// identifier: a number, a single qubit or classical bit, or a whole register.
type value struct {
	kind  valueKind
	n     int     // kindInt
	f     float64 // kindFloat
	index int     // kindQubit, kindBit: global index
	elems []value // kindArray
}

type valueKind int

const (
	kindInt valueKind = iota
	kindFloat
	kindQubit
	kindBit
	kindArray
)

func intVal(n int) value       { return value{kind: kindInt, n: n} }
func floatVal(f float64) value { return value{kind: kindFloat, f: f} }

func (v value) isNumber() bool { return v.kind == kindInt || v.kind == kindFloat }

func (v value) asFloat() (float64, error) {
	switch v.kind {
	case kindInt:
		return float64(v.n), nil
	case kindFloat:
		return v.f, nil
	}
	return 0, fmt.Errorf("not a numeric value")
}

// asInt requires an integral value; floats do not truncate.
func (v value) asInt() (int, error) {
	if v.kind != kindInt {
		return 0, fmt.Errorf("not an integer value")
	}
	return v.n, nil
}

// evalExpression evaluates the arithmetic subset of OpenQASM expressions:
// literals, named constants, unary minus, parentheses, and + - * / %.
func (t *translator) evalExpression(expr parser.IExpressionContext) (value, error) {
	switch ctx := expr.(type) {
	case *parser.ParenthesisExpressionContext:
		return t.evalExpression(ctx.Expression())
	case *parser.UnaryExpressionContext:
		if op := ctx.GetOp().GetText(); op != "-" {
			return value{}, fmt.Errorf("unsupported unary operator %q", op)
		}
		v, err := t.evalExpression(ctx.Expression())
		if err != nil {
			return value{}, err
		}
		switch v.kind {
		case kindInt:
			return intVal(-v.n), nil
		case kindFloat:
			return floatVal(-v.f), nil
		}
		return value{}, fmt.Errorf("cannot negate %q", ctx.GetText())
	case *parser.MultiplicativeExpressionContext:
		return t.evalBinary(ctx.GetOp().GetText(), ctx.Expression(0), ctx.Expression(1))
	case *parser.AdditiveExpressionContext:
		return t.evalBinary(ctx.GetOp().GetText(), ctx.Expression(0), ctx.Expression(1))
	case *parser.LiteralExpressionContext:
		return t.evalLiteral(ctx)
	}
	return value{}, fmt.Errorf("cannot evaluate expression %q", expr.GetText())
}

func (t *translator) evalLiteral(ctx *parser.LiteralExpressionContext) (value, error) {
	if id := ctx.Identifier(); id != nil {
		name := id.GetText()
		v, ok := t.env[name]
		if !ok {
			return value{}, fmt.Errorf("%w: %s is not defined", ErrReference, name)
		}
		return v, nil
	}
	if lit := ctx.DecimalIntegerLiteral(); lit != nil {
		n, err := strconv.Atoi(lit.GetText())
		if err != nil {
			return value{}, fmt.Errorf("bad integer literal %q: %w", lit.GetText(), err)
		}
		return intVal(n), nil
	}
	if lit := ctx.FloatLiteral(); lit != nil {
		f, err := strconv.ParseFloat(lit.GetText(), 64)
		if err != nil {
			return value{}, fmt.Errorf("bad float literal %q: %w", lit.GetText(), err)
		}
		return floatVal(f), nil
	}
	return value{}, fmt.Errorf("unsupported literal %q", ctx.GetText())
}

// evalBinary applies a binary arithmetic operator. Integer operands stay
// integral except under /, which always divides as floats.
func (t *translator) evalBinary(op string, lhsExpr, rhsExpr parser.IExpressionContext) (value, error) {
	lhs, err := t.evalExpression(lhsExpr)
	if err != nil {
		return value{}, err
	}
	rhs, err := t.evalExpression(rhsExpr)
	if err != nil {
		return value{}, err
	}
	if !lhs.isNumber() || !rhs.isNumber() {
		return value{}, fmt.Errorf("non-numeric operand for %q", op)
	}

	if lhs.kind == kindInt && rhs.kind == kindInt {
		switch op {
		case "+":
			return intVal(lhs.n + rhs.n), nil
		case "-":
			return intVal(lhs.n - rhs.n), nil
		case "*":
			return intVal(lhs.n * rhs.n), nil
		case "%":
			if rhs.n == 0 {
				return value{}, fmt.Errorf("modulo by zero")
			}
			return intVal(lhs.n % rhs.n), nil
		case "/":
			if rhs.n == 0 {
				return value{}, fmt.Errorf("division by zero")
			}
			return floatVal(float64(lhs.n) / float64(rhs.n)), nil
		}
	}

	a, _ := lhs.asFloat()
	b, _ := rhs.asFloat()
	switch op {
	case "+":
		return floatVal(a + b), nil
	case "-":
		return floatVal(a - b), nil
	case "*":
		return floatVal(a * b), nil
	case "/":
		if b == 0 {
			return value{}, fmt.Errorf("division by zero")
		}
		return floatVal(a / b), nil
	case "%":
		if b == 0 {
			return value{}, fmt.Errorf("modulo by zero")
		}
		return floatVal(math.Mod(a, b)), nil
	}
	return value{}, fmt.Errorf("unsupported operator %q", op)
}
