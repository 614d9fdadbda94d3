// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"sort"
	"strconv"
)

// A Circuit is a combinational logic circuit: a set of primary input
// nets, a set of primary output nets and an ordered list of gates.
//
// A Circuit is built once with AddInput, AddOutput and AddGate, then
// evaluated any number of times with Eval or EvalStrict. Construction
// and evaluation are distinct phases: callers must not add to a circuit
// once they start evaluating it. Within the evaluation phase a Circuit
// is immutable and safe for concurrent use.
//
// Gate order is insertion order and is significant: Eval runs a single
// forward pass, so every gate's inputs must be driven by a primary
// input or an earlier gate. This ordering is trusted, not verified; see
// Validate for an advisory check.
//
type Circuit struct {
	inputs  map[string]struct{}
	outputs map[string]struct{}
	gates   []Gate
}

// New returns an empty circuit.
//
func New() *Circuit {
	return &Circuit{
		inputs:  make(map[string]struct{}),
		outputs: make(map[string]struct{}),
	}
}

// AddInput registers a primary input net. Adding the same name twice is
// a no-op.
//
func (c *Circuit) AddInput(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.inputs[name] = struct{}{}
	return nil
}

// AddOutput registers a primary output net. Adding the same name twice
// is a no-op.
//
func (c *Circuit) AddOutput(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.outputs[name] = struct{}{}
	return nil
}

// AddGate appends a gate driving net out from the given input nets.
// The gate type must be one of the supported types and the input count
// must match the type's arity. On error, the gate list is left
// untouched.
//
func (c *Circuit) AddGate(typ GateType, out string, ins ...string) error {
	if !typ.valid() {
		return UnknownGateTypeError(strconv.Itoa(int(typ)))
	}
	if out == "" {
		return ErrMissingOutput
	}
	if len(ins) != typ.Arity() {
		return &ArityError{Type: typ, Want: typ.Arity(), Got: len(ins)}
	}
	g := Gate{Type: typ, Out: out, In: make([]string, len(ins))}
	copy(g.In, ins)
	c.gates = append(c.gates, g)
	return nil
}

// AddGateString is AddGate taking the raw gate type token, for front
// ends that read gate definitions as text. The token is matched
// case-insensitively.
//
func (c *Circuit) AddGateString(typ, out string, ins ...string) error {
	t, err := ParseGateType(typ)
	if err != nil {
		return err
	}
	return c.AddGate(t, out, ins...)
}

// CheckInterface reports whether the circuit has a usable external
// interface: at least one primary input and one primary output. Front
// ends call it before accepting gate definitions or starting
// simulation.
//
func (c *Circuit) CheckInterface() error {
	if len(c.inputs) == 0 {
		return ErrNoInputs
	}
	if len(c.outputs) == 0 {
		return ErrNoOutputs
	}
	return nil
}

// Inputs returns the primary input names, sorted.
//
func (c *Circuit) Inputs() []string {
	return sortedKeys(c.inputs)
}

// Outputs returns the primary output names, sorted.
//
func (c *Circuit) Outputs() []string {
	return sortedKeys(c.outputs)
}

// IsInput reports whether name is a primary input.
//
func (c *Circuit) IsInput(name string) bool {
	_, ok := c.inputs[name]
	return ok
}

// IsOutput reports whether name is a primary output.
//
func (c *Circuit) IsOutput(name string) bool {
	_, ok := c.outputs[name]
	return ok
}

// Gates returns a copy of the gate list in insertion order.
//
func (c *Circuit) Gates() []Gate {
	g := make([]Gate, len(c.gates))
	copy(g, c.gates)
	return g
}

// NumGates returns the gate count.
//
func (c *Circuit) NumGates() int { return len(c.gates) }

func sortedKeys(m map[string]struct{}) []string {
	s := make([]string, 0, len(m))
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return s
}

// A Problem is an advisory finding from Validate. Gate is the index of
// the offending gate in Gates(), or -1 for circuit-level findings.
//
type Problem struct {
	Gate int
	Net  string
	Desc string
}

func (p Problem) String() string {
	if p.Gate < 0 {
		return "net " + strconv.Quote(p.Net) + ": " + p.Desc
	}
	return "gate " + strconv.Itoa(p.Gate) + ", net " + strconv.Quote(p.Net) + ": " + p.Desc
}

// Validate checks the caller-supplied gate order against the forward
// evaluation pass and reports, without failing:
//
//   - gates reading a net that no primary input or earlier gate defines
//     (such reads evaluate as false),
//   - gate outputs that overwrite a primary input value,
//   - primary outputs that no gate drives.
//
// A nil result means the circuit evaluates with no surprises. Validate
// never mutates the circuit and is entirely optional.
//
func (c *Circuit) Validate() []Problem {
	var ps []Problem

	defined := make(map[string]struct{}, len(c.inputs)+len(c.gates))
	for in := range c.inputs {
		defined[in] = struct{}{}
	}
	for i, g := range c.gates {
		for _, in := range g.In {
			if _, ok := defined[in]; !ok {
				ps = append(ps, Problem{Gate: i, Net: in, Desc: "read before any gate or primary input defines it"})
			}
		}
		if _, ok := c.inputs[g.Out]; ok {
			ps = append(ps, Problem{Gate: i, Net: g.Out, Desc: "gate output overwrites a primary input"})
		}
		defined[g.Out] = struct{}{}
	}
	for _, out := range c.Outputs() {
		if _, ok := defined[out]; !ok {
			ps = append(ps, Problem{Gate: -1, Net: out, Desc: "primary output is never driven"})
		}
	}
	return ps
}
