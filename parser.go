// Package qasmparser converts OpenQASM 2/3 circuit descriptions into an
// in-memory quantum circuit. Lexing and parsing are delegated to the
// ANTLR-generated OpenQASM 3 parser; this package owns the gate mapping
// table and the register-indexing logic in between.
package qasmparser

import (
	"fmt"
	"math"
	"os"

	"github.com/antlr4-go/antlr/v4"
	"github.com/itsubaki/qasm/gen/parser"
)

// Parser translates OpenQASM source into a Circuit.
type Parser struct{}

// New returns a Parser.
func New() *Parser { return &Parser{} }

// ParseString parses the OpenQASM circuit described in the given string.
func (p *Parser) ParseString(s string) (*Circuit, error) {
	return p.parse(antlr.NewInputStream(s))
}

// ParseFile reads the file at path and parses the OpenQASM circuit it
// describes.
func (p *Parser) ParseFile(path string) (*Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.ParseString(string(data))
}

func (p *Parser) parse(input antlr.CharStream) (*Circuit, error) {
	errs := &errorCollector{DefaultErrorListener: antlr.NewDefaultErrorListener()}

	lexer := parser.Newqasm3Lexer(input)
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(errs)

	qp := parser.Newqasm3Parser(antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel))
	qp.RemoveErrorListeners()
	qp.AddErrorListener(errs)

	tree := qp.Program()
	if err := errs.Err(); err != nil {
		return nil, err
	}

	t := &translator{
		env: map[string]value{
			"pi": floatVal(math.Pi),
			"π":  floatVal(math.Pi),
		},
		circ: &Circuit{},
	}
	if err := t.walk(tree); err != nil {
		return nil, err
	}
	t.circ.Width = t.width
	return t.circ, nil
}

// translator walks the parse tree in source order, dispatching declarations
// to the register allocator and gate calls to the gate table.
type translator struct {
	env   map[string]value
	width int // next free qubit index
	bits  int // next free classical bit index
	circ  *Circuit
}

func (t *translator) walk(tree antlr.Tree) error {
	switch ctx := tree.(type) {
	case *parser.QuantumDeclarationStatementContext:
		var designator parser.IDesignatorContext
		if qt := ctx.QubitType(); qt != nil {
			designator = qt.Designator()
		}
		return t.declareRegister(kindQubit, ctx.Identifier().GetText(), designator)
	case *parser.OldStyleDeclarationStatementContext:
		kind := kindQubit
		if ctx.CREG() != nil {
			kind = kindBit
		}
		return t.declareRegister(kind, ctx.Identifier().GetText(), ctx.Designator())
	case *parser.ConstDeclarationStatementContext:
		return t.declareConst(ctx)
	case *parser.GateCallStatementContext:
		return t.gateCall(ctx)
	}
	// Version, include, and statements outside the translated subset are
	// skipped; their children are still searched for nested statements.
	for i := 0; i < tree.GetChildCount(); i++ {
		if err := t.walk(tree.GetChild(i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *translator) declareConst(ctx *parser.ConstDeclarationStatementContext) error {
	name := ctx.Identifier().GetText()
	if _, ok := t.env[name]; ok {
		return fmt.Errorf("%w: %s is already declared", ErrRedeclaration, name)
	}
	decl := ctx.DeclarationExpression()
	if decl == nil || decl.Expression() == nil {
		return fmt.Errorf("cannot evaluate const %s", name)
	}
	v, err := t.evalExpression(decl.Expression())
	if err != nil {
		return err
	}
	if !v.isNumber() {
		return fmt.Errorf("const %s is not numeric", name)
	}
	t.env[name] = v
	return nil
}

// errorCollector gathers lexer and parser diagnostics; the first one wins.
type errorCollector struct {
	*antlr.DefaultErrorListener
	errs []*SyntaxError
}

func (c *errorCollector) SyntaxError(_ antlr.Recognizer, _ interface{}, line, column int, msg string, _ antlr.RecognitionException) {
	c.errs = append(c.errs, &SyntaxError{Line: line, Column: column, Msg: msg})
}

func (c *errorCollector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs[0]
}
