package viz_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatesim/gatesim"
	"github.com/gatesim/gatesim/viz"
)

func halfAdder(t *testing.T) *gatesim.Circuit {
	t.Helper()
	c := gatesim.New()
	require.NoError(t, c.AddInput("A"))
	require.NoError(t, c.AddInput("B"))
	require.NoError(t, c.AddOutput("Sum"))
	require.NoError(t, c.AddOutput("Carry"))
	require.NoError(t, c.AddGate(gatesim.Xor, "Sum", "A", "B"))
	require.NoError(t, c.AddGate(gatesim.And, "Carry", "A", "B"))
	return c
}

func TestGraph(t *testing.T) {
	g := viz.Graph("HalfAdder", halfAdder(t))
	s := g.String()

	assert.Contains(t, s, "digraph")
	assert.Contains(t, s, "HalfAdder")
	assert.Contains(t, s, "rankdir")

	// one node per gate, ided by position and type
	assert.Contains(t, s, "gate_0_XOR")
	assert.Contains(t, s, "gate_1_AND")

	// primary I/O color coding
	assert.Contains(t, s, "lightgreen")
	assert.Contains(t, s, "lightcoral")
	assert.Contains(t, s, `A\nIN`)
	assert.Contains(t, s, `Sum\nOUT`)

	// signal flow edges
	assert.Contains(t, s, "->")
}

func TestGraph_distinctGateNodes(t *testing.T) {
	// two gates of the same type must not collapse into one node
	c := gatesim.New()
	require.NoError(t, c.AddInput("A"))
	require.NoError(t, c.AddOutput("Y"))
	require.NoError(t, c.AddGate(gatesim.Not, "w", "A"))
	require.NoError(t, c.AddGate(gatesim.Not, "Y", "w"))

	s := viz.Graph("inverters", c).String()
	assert.Contains(t, s, "gate_0_NOT")
	assert.Contains(t, s, "gate_1_NOT")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, viz.Write(&buf, "HalfAdder", halfAdder(t)))
	assert.True(t, strings.HasPrefix(buf.String(), "digraph"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ha.dot")
	require.NoError(t, viz.WriteFile(path, "HalfAdder", halfAdder(t)))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "gate_0_XOR")
}
