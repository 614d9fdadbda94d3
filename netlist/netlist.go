// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist reads and writes circuits in a line-oriented text
// format:
//
//	# half adder
//	circuit HalfAdder
//	input A B
//	output Sum Carry
//	XOR Sum A B
//	AND Carry A B
//
// Lines starting with # are comments. The circuit directive is
// optional; input and output lines may repeat. Every other non-empty
// line is a gate definition: TYPE OUT IN1 [IN2], with gates listed in
// dependency order.
//
// The package also provides the single-line parsers used by
// interactive front ends.
package netlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/gatesim/gatesim"
)

// Parse reads a circuit description from r. It returns the declared
// circuit name (empty if the description has no circuit line) and the
// built circuit. Errors carry the offending line number.
//
func Parse(r io.Reader) (name string, c *gatesim.Circuit, err error) {
	c = gatesim.New()
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		switch strings.ToLower(fields[0]) {
		case "circuit":
			if len(fields) != 2 {
				return "", nil, errors.Errorf("line %d: circuit directive takes exactly one name", line)
			}
			name = fields[1]
		case "input", "inputs":
			if len(fields) < 2 {
				return "", nil, errors.Errorf("line %d: input directive takes at least one name", line)
			}
			for _, n := range fields[1:] {
				if err := c.AddInput(n); err != nil {
					return "", nil, errors.Wrapf(err, "line %d", line)
				}
			}
		case "output", "outputs":
			if len(fields) < 2 {
				return "", nil, errors.Errorf("line %d: output directive takes at least one name", line)
			}
			for _, n := range fields[1:] {
				if err := c.AddOutput(n); err != nil {
					return "", nil, errors.Wrapf(err, "line %d", line)
				}
			}
		default:
			typ, out, ins, err := ParseGate(text)
			if err != nil {
				return "", nil, errors.Wrapf(err, "line %d", line)
			}
			if err := c.AddGateString(typ, out, ins...); err != nil {
				return "", nil, errors.Wrapf(err, "line %d", line)
			}
		}
	}
	if err := s.Err(); err != nil {
		return "", nil, errors.Wrap(err, "read netlist")
	}
	if err := c.CheckInterface(); err != nil {
		return "", nil, err
	}
	return name, c, nil
}

// ParseGate splits one gate definition line of the form
//
//	TYPE OUT IN1 [IN2]
//
// The gate type token and input counts are not checked here; feeding
// the pieces to Circuit.AddGateString does that.
//
func ParseGate(s string) (typ, out string, ins []string, err error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return "", "", nil, errors.New("empty gate definition")
	case 1:
		return "", "", nil, errors.Errorf("gate %s: output name required", fields[0])
	}
	return fields[0], fields[1], fields[2:], nil
}

// ParseValues parses a whitespace-separated line of 0/1 values into an
// assignment for the given input names, matched positionally. The value
// count must equal the input count: incomplete assignments are rejected
// here rather than silently evaluated.
//
func ParseValues(s string, inputs []string) (gatesim.Assignment, error) {
	fields := strings.Fields(s)
	if len(fields) != len(inputs) {
		return nil, errors.Errorf("expected %d input value(s), got %d", len(inputs), len(fields))
	}
	a := make(gatesim.Assignment, len(inputs))
	for i, f := range fields {
		switch f {
		case "0":
			a[inputs[i]] = false
		case "1":
			a[inputs[i]] = true
		default:
			return nil, errors.Errorf("invalid input value %q: values must be 0 or 1", f)
		}
	}
	return a, nil
}

// Write emits c in the format read by Parse. The circuit line is
// omitted when name is empty. Write and Parse round-trip.
//
func Write(w io.Writer, name string, c *gatesim.Circuit) error {
	b := bufio.NewWriter(w)
	if name != "" {
		b.WriteString("circuit ")
		b.WriteString(name)
		b.WriteByte('\n')
	}
	writeNames(b, "input", c.Inputs())
	writeNames(b, "output", c.Outputs())
	for _, g := range c.Gates() {
		b.WriteString(g.String())
		b.WriteByte('\n')
	}
	return errors.Wrap(b.Flush(), "write netlist")
}

func writeNames(b *bufio.Writer, directive string, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteString(directive)
	for _, n := range names {
		b.WriteByte(' ')
		b.WriteString(n)
	}
	b.WriteByte('\n')
}
