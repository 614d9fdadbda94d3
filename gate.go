// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"
	"strings"
)

// A GateType identifies one of the supported boolean gates. The set is
// closed: anything outside it is rejected at construction time and the
// evaluator never has to deal with an unknown type.
//
type GateType int

// Supported gate types.
//
const (
	And GateType = iota
	Or
	Nand
	Nor
	Xor
	Xnor
	Not
)

var gateNames = [...]string{
	And:  "AND",
	Or:   "OR",
	Nand: "NAND",
	Nor:  "NOR",
	Xor:  "XOR",
	Xnor: "XNOR",
	Not:  "NOT",
}

var gateFns = [...]func(a, b bool) bool{
	And:  func(a, b bool) bool { return a && b },
	Or:   func(a, b bool) bool { return a || b },
	Nand: func(a, b bool) bool { return !(a && b) },
	Nor:  func(a, b bool) bool { return !(a || b) },
	Xor:  func(a, b bool) bool { return a && !b || !a && b },
	Xnor: func(a, b bool) bool { return a && b || !a && !b },
	Not:  func(a, _ bool) bool { return !a },
}

func (t GateType) valid() bool {
	return And <= t && t <= Not
}

// Arity returns the number of inputs required by gates of type t:
// 1 for NOT, 2 for everything else.
//
func (t GateType) Arity() int {
	if t == Not {
		return 1
	}
	return 2
}

// Eval computes the gate function for the given input states.
// Unary gates ignore b.
//
func (t GateType) Eval(a, b bool) bool {
	return gateFns[t](a, b)
}

// String returns the canonical upper-case token for t.
//
func (t GateType) String() string {
	if !t.valid() {
		return "GateType(" + strconv.Itoa(int(t)) + ")"
	}
	return gateNames[t]
}

// ParseGateType parses a gate type token. Matching is case-insensitive;
// the result is always one of the canonical GateType values. Unknown
// tokens fail with an UnknownGateTypeError.
//
func ParseGateType(s string) (GateType, error) {
	u := strings.ToUpper(s)
	for t, n := range gateNames {
		if n == u {
			return GateType(t), nil
		}
	}
	return 0, UnknownGateTypeError(s)
}

// A Gate is one node of a circuit: a gate type, the net it drives and
// the nets it reads. Gates are immutable once added to a Circuit.
//
type Gate struct {
	Type GateType
	Out  string
	In   []string
}

// String formats the gate the way the netlist format spells it:
// TYPE OUT IN...
//
func (g Gate) String() string {
	var b strings.Builder
	b.WriteString(g.Type.String())
	b.WriteByte(' ')
	b.WriteString(g.Out)
	for _, in := range g.In {
		b.WriteByte(' ')
		b.WriteString(in)
	}
	return b.String()
}
