package gatesim_test

import (
	"testing"

	"github.com/gatesim/gatesim"
)

func TestGateType_Eval(t *testing.T) {
	td := []struct {
		typ    gatesim.GateType
		result []bool // a=0 b=0, a=0 b=1, a=1 b=0, a=1 b=1 (NOT: a=0, a=1)
	}{
		{gatesim.And, []bool{false, false, false, true}},
		{gatesim.Or, []bool{false, true, true, true}},
		{gatesim.Nand, []bool{true, true, true, false}},
		{gatesim.Nor, []bool{true, false, false, false}},
		{gatesim.Xor, []bool{false, true, true, false}},
		{gatesim.Xnor, []bool{true, false, false, true}},
		{gatesim.Not, []bool{true, false}},
	}
	for _, d := range td {
		t.Run(d.typ.String(), func(t *testing.T) {
			if d.typ.Arity() == 1 {
				for i, exp := range d.result {
					a := i != 0
					if got := d.typ.Eval(a, false); got != exp {
						t.Errorf("%s(%v) = %v, expected %v", d.typ, a, got, exp)
					}
				}
				return
			}
			for i, exp := range d.result {
				a, b := i&2 != 0, i&1 != 0
				if got := d.typ.Eval(a, b); got != exp {
					t.Errorf("%s(%v, %v) = %v, expected %v", d.typ, a, b, got, exp)
				}
			}
		})
	}
}

func TestGateType_Arity(t *testing.T) {
	for _, typ := range []gatesim.GateType{gatesim.And, gatesim.Or, gatesim.Nand, gatesim.Nor, gatesim.Xor, gatesim.Xnor} {
		if typ.Arity() != 2 {
			t.Errorf("%s.Arity() = %d, expected 2", typ, typ.Arity())
		}
	}
	if gatesim.Not.Arity() != 1 {
		t.Errorf("NOT.Arity() = %d, expected 1", gatesim.Not.Arity())
	}
}

func TestParseGateType(t *testing.T) {
	for _, s := range []string{"AND", "and", "And", "aNd"} {
		typ, err := gatesim.ParseGateType(s)
		if err != nil {
			t.Fatalf("ParseGateType(%q): %v", s, err)
		}
		if typ != gatesim.And {
			t.Fatalf("ParseGateType(%q) = %v, expected AND", s, typ)
		}
	}

	_, err := gatesim.ParseGateType("NANDY")
	if err == nil {
		t.Fatal("expected error for unknown gate type")
	}
	if _, ok := err.(gatesim.UnknownGateTypeError); !ok {
		t.Fatalf("expected UnknownGateTypeError, got %T: %v", err, err)
	}
}

func TestGate_String(t *testing.T) {
	g := gatesim.Gate{Type: gatesim.Xor, Out: "Sum", In: []string{"A", "B"}}
	if s := g.String(); s != "XOR Sum A B" {
		t.Errorf("Gate.String() = %q", s)
	}
	g = gatesim.Gate{Type: gatesim.Not, Out: "nS", In: []string{"Select"}}
	if s := g.String(); s != "NOT nS Select" {
		t.Errorf("Gate.String() = %q", s)
	}
}
