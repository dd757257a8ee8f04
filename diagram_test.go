package qasmparser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagramBell(t *testing.T) {
	c, err := New().ParseString("qreg q[2];\nh q[0];\ncx q[0], q[1];\n")
	require.NoError(t, err)

	d := c.Diagram()
	assert.Contains(t, d, "q[0]")
	assert.Contains(t, d, "q[1]")
	assert.Contains(t, d, "H")
	assert.Contains(t, d, "●")
	assert.Contains(t, d, "⊕")
}

func TestDiagramSwapSymbol(t *testing.T) {
	c := &Circuit{}
	c.AddControlled(SWAP, 0, 1)

	assert.Contains(t, c.Diagram(), "×")
}

func TestPadCenterTruncatesRunes(t *testing.T) {
	assert.Equal(t, "●●●", padCenter("●●●●●", 3))
	assert.True(t, utf8.ValidString(padCenter("┤●├──", 2)))
	assert.Equal(t, " ab ", padCenter("ab", 4))
}

func TestDiagramEmptyCircuit(t *testing.T) {
	c := &Circuit{}
	d := c.Diagram()

	// A bare wire still renders for one qubit.
	assert.Contains(t, d, "q[0]")
	assert.Greater(t, len(strings.Split(d, "\n")), 1)
}
