// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing circuits.
//
package gatetest

import (
	"sort"
	"strings"
	"testing"

	"github.com/gatesim/gatesim"
)

// maxEnumInputs bounds exhaustive enumeration to 2^20 evaluations.
const maxEnumInputs = 20

// Compare evaluates two circuits over every possible primary input
// assignment and fails the test on the first diverging primary output.
// Both circuits must expose the same input and output interface.
//
func Compare(t *testing.T, a, b *gatesim.Circuit) {
	t.Helper()

	ins := a.Inputs()
	if !equalNames(ins, b.Inputs()) {
		t.Fatalf("input interfaces differ: %v != %v", ins, b.Inputs())
	}
	outs := a.Outputs()
	if !equalNames(outs, b.Outputs()) {
		t.Fatalf("output interfaces differ: %v != %v", outs, b.Outputs())
	}
	if len(ins) > maxEnumInputs {
		t.Fatalf("%d inputs: too many to enumerate", len(ins))
	}

	in := make(gatesim.Assignment, len(ins))
	for i := 0; i < 1<<uint(len(ins)); i++ {
		for bit, n := range ins {
			in[n] = i&(1<<uint(len(ins)-bit-1)) != 0
		}
		va, vb := a.Eval(in), b.Eval(in)
		for _, o := range outs {
			if va[o] != vb[o] {
				t.Fatalf("%s => %s: got %v and %v", assignString(ins, in), o, va[o], vb[o])
			}
		}
	}
}

// A Row is one line of an expected truth table: an input assignment and
// the output values it must produce.
//
type Row struct {
	In  gatesim.Assignment
	Out gatesim.Assignment
}

// TruthTable evaluates c for every row's inputs and checks the expected
// outputs.
//
func TruthTable(t *testing.T, c *gatesim.Circuit, rows []Row) {
	t.Helper()

	for _, row := range rows {
		got := c.Eval(row.In)
		for _, n := range sortedNames(row.Out) {
			if got[n] != row.Out[n] {
				t.Errorf("%s => %s: expected %v, got %v", assignString(sortedNames(row.In), row.In), n, row.Out[n], got[n])
			}
		}
	}
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedNames(a gatesim.Assignment) []string {
	names := make([]string, 0, len(a))
	for n := range a {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func assignString(names []string, a gatesim.Assignment) string {
	var b strings.Builder
	for _, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte('=')
		if a[n] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
