package qasmparser

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleCircuit(t *testing.T) {
	s := `
include "qelib1.inc";
qreg q[1];
rz(5*pi/4) q[0];
`
	c, err := New().ParseString(s)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Width)
	require.Len(t, c.Instructions, 1)

	in := c.Instructions[0]
	assert.Equal(t, RZ, in.Kind)
	assert.Equal(t, 0, in.Target)
	assert.Equal(t, -1, in.Control)
	assert.InDelta(t, 5*math.Pi/4, in.Angle, 1e-12)
}

func TestParseAllInstructions(t *testing.T) {
	s := `
include "qelib1.inc";
qreg q[3];
ccx q[0], q[1], q[2];
crz(pi/3) q[0], q[1];
cx q[0], q[1];
swap q[0], q[1];
h q[0];
s q[0];
x q[0];
y q[0];
z q[0];
rx(pi/4) q[0];
ry(pi/4) q[0];
rz(pi/4) q[0];
`
	c, err := New().ParseString(s)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Width)
	require.Len(t, c.Instructions, 12)

	ccx := c.Instructions[0]
	assert.Equal(t, CCX, ccx.Kind)
	assert.Equal(t, 2, ccx.Target)
	assert.Equal(t, []int{0, 1}, ccx.Controls)

	rzz := c.Instructions[1]
	assert.Equal(t, RZZ, rzz.Kind)
	assert.Equal(t, 0, rzz.Control)
	assert.Equal(t, 1, rzz.Target)
	assert.InDelta(t, math.Pi/3, rzz.Angle, 1e-12)

	cnot := c.Instructions[2]
	assert.Equal(t, CX, cnot.Kind)
	assert.Equal(t, 0, cnot.Control)
	assert.Equal(t, 1, cnot.Target)

	sw := c.Instructions[3]
	assert.Equal(t, SWAP, sw.Kind)
	assert.Equal(t, 0, sw.Control)
	assert.Equal(t, 1, sw.Target)

	for i, kind := range []Kind{H, S, X, Y, Z} {
		in := c.Instructions[4+i]
		assert.Equal(t, kind, in.Kind)
		assert.Equal(t, 0, in.Target)
		assert.Equal(t, -1, in.Control)
	}

	for i, kind := range []Kind{RX, RY, RZ} {
		in := c.Instructions[9+i]
		assert.Equal(t, kind, in.Kind)
		assert.Equal(t, 0, in.Target)
		assert.InDelta(t, math.Pi/4, in.Angle, 1e-12)
	}
}

func TestParseQubitDeclarations(t *testing.T) {
	s := `OPENQASM 3.0;
qubit[3] a;
qubit b;
cx a[2], b;
`
	c, err := New().ParseString(s)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Width)
	require.Len(t, c.Instructions, 1)
	assert.Equal(t, CX, c.Instructions[0].Kind)
	assert.Equal(t, 2, c.Instructions[0].Control)
	assert.Equal(t, 3, c.Instructions[0].Target)
}

func TestCCXOperandOrder(t *testing.T) {
	s := `OPENQASM 3.0;
qubit[3] a;
ccx a[0], a[1], a[2];
`
	c, err := New().ParseString(s)
	require.NoError(t, err)

	require.Len(t, c.Instructions, 1)
	assert.Equal(t, Instruction{
		Kind:     CCX,
		Target:   2,
		Control:  -1,
		Controls: []int{0, 1},
	}, c.Instructions[0])
}

func TestIndexOutOfRange(t *testing.T) {
	s := `OPENQASM 3.0;
qubit[3] q;
x q[3];
`
	_, err := New().ParseString(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReference)
}

func TestRangeIndexUnsupported(t *testing.T) {
	for _, s := range []string{
		"qreg q[3];\nx q[0:2];\n",
		"qreg q[3];\nx q[{0, 1}];\n",
	} {
		_, err := New().ParseString(s)
		require.Error(t, err, s)
		assert.ErrorIs(t, err, ErrReference, s)
	}
}

func TestInvalidRegisterSize(t *testing.T) {
	for _, s := range []string{
		"qreg q[-1];\n",
		"qreg q[pi];\n",
	} {
		_, err := New().ParseString(s)
		require.Error(t, err, s)
		assert.ErrorIs(t, err, ErrReference, s)
	}
}

func TestNegativeIndex(t *testing.T) {
	_, err := New().ParseString("qreg q[2];\nx q[-1];\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReference)
}

func TestUndeclaredRegister(t *testing.T) {
	_, err := New().ParseString("qreg q[1];\nh r[0];\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReference)
}

func TestClassicalOperandRejected(t *testing.T) {
	_, err := New().ParseString("creg c[1];\nx c[0];\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReference)
}

func TestUnsupportedGate(t *testing.T) {
	_, err := New().ParseString("qreg q[1];\nt q[0];\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedGate)
}

func TestArityMismatch(t *testing.T) {
	for _, s := range []string{
		"qreg q[2];\ncx q[0];\n",
		"qreg q[2];\nh q[0], q[1];\n",
		"qreg q[1];\nrz q[0];\n",
		"qreg q[1];\nh(pi) q[0];\n",
	} {
		_, err := New().ParseString(s)
		require.Error(t, err, s)
		assert.ErrorIs(t, err, ErrUnsupportedGate, s)
	}
}

func TestRedeclaration(t *testing.T) {
	_, err := New().ParseString("qreg q[1];\nqreg q[2];\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRedeclaration)
}

func TestClassicalRegistersDoNotWiden(t *testing.T) {
	c, err := New().ParseString("qreg q[2];\ncreg c[5];\nh q[0];\n")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Width)
}

func TestConstDeclaration(t *testing.T) {
	s := `OPENQASM 3.0;
qubit q;
const float theta = pi / 3;
rx(2 * theta) q;
`
	c, err := New().ParseString(s)
	require.NoError(t, err)

	require.Len(t, c.Instructions, 1)
	assert.Equal(t, RX, c.Instructions[0].Kind)
	assert.InDelta(t, 2*math.Pi/3, c.Instructions[0].Angle, 1e-12)
}

func TestParseDeterminism(t *testing.T) {
	s := `
qreg q[2];
h q[0];
cx q[0], q[1];
rz(3*pi/4) q[1];
`
	c1, err := New().ParseString(s)
	require.NoError(t, err)
	c2, err := New().ParseString(s)
	require.NoError(t, err)

	assert.Equal(t, c1, c2)
}

func TestSyntaxError(t *testing.T) {
	_, err := New().ParseString("qreg q[;\n")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestParseFile(t *testing.T) {
	s := "qreg q[2];\nh q[0];\ncx q[0], q[1];\n"
	path := filepath.Join(t.TempDir(), "bell.qasm")
	require.NoError(t, os.WriteFile(path, []byte(s), 0o644))

	fromFile, err := New().ParseFile(path)
	require.NoError(t, err)
	fromString, err := New().ParseString(s)
	require.NoError(t, err)

	assert.Equal(t, fromString, fromFile)
}

func TestParseFileMissing(t *testing.T) {
	_, err := New().ParseFile(filepath.Join(t.TempDir(), "missing.qasm"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestScalarQubitGate(t *testing.T) {
	c, err := New().ParseString("OPENQASM 3.0;\nqubit a;\nqubit b;\nswap a, b;\n")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Width)
	require.Len(t, c.Instructions, 1)
	assert.Equal(t, SWAP, c.Instructions[0].Kind)
}

func TestWholeRegisterOperandRejected(t *testing.T) {
	// No broadcasting: an array register used without an index is not a qubit.
	_, err := New().ParseString("qreg q[2];\nh q;\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReference)
}
