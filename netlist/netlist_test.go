package netlist_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatesim/gatesim"
	"github.com/gatesim/gatesim/netlist"
)

const halfAdder = `# half adder
circuit HalfAdder
input A B
output Sum Carry

XOR Sum A B
AND Carry A B
`

func TestParse(t *testing.T) {
	name, c, err := netlist.Parse(strings.NewReader(halfAdder))
	require.NoError(t, err)
	assert.Equal(t, "HalfAdder", name)
	assert.Equal(t, []string{"A", "B"}, c.Inputs())
	assert.Equal(t, []string{"Carry", "Sum"}, c.Outputs())
	require.Equal(t, 2, c.NumGates())
	assert.Equal(t, "XOR Sum A B", c.Gates()[0].String())
	assert.Equal(t, "AND Carry A B", c.Gates()[1].String())

	v := c.Eval(gatesim.Assignment{"A": true, "B": true})
	assert.False(t, v["Sum"])
	assert.True(t, v["Carry"])
}

func TestParse_lowerCaseGates(t *testing.T) {
	_, c, err := netlist.Parse(strings.NewReader("input A\noutput Y\nnot Y A\n"))
	require.NoError(t, err)
	require.Equal(t, 1, c.NumGates())
	assert.Equal(t, gatesim.Not, c.Gates()[0].Type)
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown gate", "input A\noutput Y\nFOO Y A\n", `line 3: unknown gate type "FOO"`},
		{"bad arity", "input A\noutput Y\nNOT Y A A\n", "line 3: NOT gate requires exactly 1 input(s), got 2"},
		{"missing output name", "input A\noutput Y\nNOT\n", "line 3: gate NOT: output name required"},
		{"bad circuit directive", "circuit a b\n", "line 1: circuit directive takes exactly one name"},
		{"bare input directive", "input\n", "line 1: input directive takes at least one name"},
		{"no inputs", "output Y\nNOT Y A\n", "no primary inputs"},
		{"no outputs", "input A\nNOT Y A\n", "no primary outputs"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, _, err := netlist.Parse(strings.NewReader(d.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

func TestParseGate(t *testing.T) {
	typ, out, ins, err := netlist.ParseGate("  AND Z A B ")
	require.NoError(t, err)
	assert.Equal(t, "AND", typ)
	assert.Equal(t, "Z", out)
	assert.Equal(t, []string{"A", "B"}, ins)

	_, _, _, err = netlist.ParseGate("")
	assert.Error(t, err)
	_, _, _, err = netlist.ParseGate("NOT")
	assert.Error(t, err)
}

func TestParseValues(t *testing.T) {
	inputs := []string{"A", "B", "Cin"}

	a, err := netlist.ParseValues("1 0 1", inputs)
	require.NoError(t, err)
	assert.Equal(t, gatesim.Assignment{"A": true, "B": false, "Cin": true}, a)

	_, err = netlist.ParseValues("1 0", inputs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 input value(s), got 2")

	_, err = netlist.ParseValues("1 0 1 1", inputs)
	assert.Error(t, err)

	_, err = netlist.ParseValues("1 0 2", inputs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be 0 or 1")

	_, err = netlist.ParseValues("1 0 x", inputs)
	assert.Error(t, err)
}

func TestWrite_roundTrip(t *testing.T) {
	name, c, err := netlist.Parse(strings.NewReader(halfAdder))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, netlist.Write(&buf, name, c))
	assert.Equal(t, "circuit HalfAdder\ninput A B\noutput Carry Sum\nXOR Sum A B\nAND Carry A B\n", buf.String())

	name2, c2, err := netlist.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, name, name2)
	assert.Equal(t, c.Inputs(), c2.Inputs())
	assert.Equal(t, c.Outputs(), c2.Outputs())
	assert.Equal(t, c.Gates(), c2.Gates())
}
