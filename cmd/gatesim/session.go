// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gatesim/gatesim"
	"github.com/gatesim/gatesim/netlist"
)

// defaultName is used when the user declines to name the circuit.
const defaultName = "MyCircuit"

// A session runs the interactive define/simulate dialogue over a pair
// of streams. Tests script it by injecting their own reader and writer.
type session struct {
	in *bufio.Scanner
	w  io.Writer
}

func newSession(r io.Reader, w io.Writer) *session {
	return &session{in: bufio.NewScanner(r), w: w}
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.w, format, args...)
}

// readLine prompts and reads one line. ok is false once the input
// stream is exhausted.
func (s *session) readLine(prompt string) (line string, ok bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *session) header() {
	s.printf("gatesim - combinational logic circuit simulator\n\n")
	s.printf("Supported gates:\n")
	s.printf("  AND, OR, NAND, NOR, XOR, XNOR (2 inputs), NOT (1 input)\n\n")
}

// define runs the circuit definition dialogue: circuit name, primary
// inputs, primary outputs, then gates until END. Per-gate errors are
// reported and the dialogue continues; an unusable interface (no
// inputs or no outputs) aborts it.
func (s *session) define() (string, *gatesim.Circuit, error) {
	name, ok := s.readLine("Enter circuit name: ")
	if !ok {
		return "", nil, errors.New("unexpected end of input")
	}
	if name == "" {
		name = defaultName
		s.printf("Using default name: %s\n", name)
	}

	c := gatesim.New()
	if err := s.defineNets(c, "input", (*gatesim.Circuit).AddInput); err != nil {
		return "", nil, err
	}
	if err := s.defineNets(c, "output", (*gatesim.Circuit).AddOutput); err != nil {
		return "", nil, err
	}
	if err := c.CheckInterface(); err != nil {
		return "", nil, err
	}

	s.printf("\nEnter gates one by one. Format: TYPE OUTPUT INPUT1 [INPUT2]\n")
	s.printf("Type 'END' to finish gate definition.\n\n")
	for {
		line, ok := s.readLine(fmt.Sprintf("Gate %d: ", c.NumGates()+1))
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "END") {
			break
		}
		typ, out, ins, err := netlist.ParseGate(line)
		if err != nil {
			s.printf("Error: %v\n", err)
			continue
		}
		if err := c.AddGateString(typ, out, ins...); err != nil {
			s.printf("Error: %v\n", err)
			continue
		}
		gates := c.Gates()
		s.printf("Added gate: %s\n", gates[len(gates)-1])
	}
	if c.NumGates() == 0 {
		return "", nil, errors.New("no gates defined: cannot simulate an empty circuit")
	}
	return name, c, nil
}

// defineNets reads the net count and then that many net names,
// registering each through add.
func (s *session) defineNets(c *gatesim.Circuit, kind string, add func(*gatesim.Circuit, string) error) error {
	line, ok := s.readLine(fmt.Sprintf("\nEnter number of primary %ss: ", kind))
	if !ok {
		return errors.New("unexpected end of input")
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return errors.Wrapf(err, "invalid primary %s count", kind)
	}
	if n <= 0 {
		return errors.Errorf("circuit must have at least one primary %s", kind)
	}
	s.printf("Enter names of primary %ss:\n", kind)
	label := strings.ToUpper(kind[:1]) + kind[1:]
	for i := 0; i < n; i++ {
		name, ok := s.readLine(fmt.Sprintf("  %s %d: ", label, i+1))
		if !ok {
			return errors.New("unexpected end of input")
		}
		if fields := strings.Fields(name); len(fields) > 0 {
			name = fields[0]
		}
		if err := add(c, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) summary(name string, c *gatesim.Circuit) {
	ins, outs := c.Inputs(), c.Outputs()
	s.printf("\nCircuit name: %s\n", name)
	s.printf("Total gates: %d\n", c.NumGates())
	s.printf("Primary inputs (%d): %s\n", len(ins), strings.Join(ins, " "))
	s.printf("Primary outputs (%d): %s\n", len(outs), strings.Join(outs, " "))
}

// warn logs dependency-order findings. The reference behavior is
// permissive, so these never stop the simulation.
func warn(c *gatesim.Circuit) {
	for _, p := range c.Validate() {
		logrus.Warn(p)
	}
}

// simulate runs the evaluation loop: one complete input assignment per
// round, until EXIT or end of input.
func (s *session) simulate(c *gatesim.Circuit) {
	ins := c.Inputs()
	for {
		s.printf("\nEnter values for primary inputs (space-separated):\n")
		s.printf("Format: %s\n", strings.Join(ins, " "))
		line, ok := s.readLine("Input (or 'EXIT' to quit): ")
		if !ok {
			return
		}
		if strings.EqualFold(line, "EXIT") {
			return
		}
		in, err := netlist.ParseValues(line, ins)
		if err != nil {
			s.printf("Error: %v\nPlease try again.\n", err)
			continue
		}
		s.report(c, c.Eval(in))
	}
}

// report prints the evaluated state: primary inputs, primary outputs,
// then every net the pass touched.
func (s *session) report(c *gatesim.Circuit, vals gatesim.Assignment) {
	s.printf("\nInputs:\n")
	for _, in := range c.Inputs() {
		s.printf("  %s = %s\n", in, bit(vals[in]))
	}
	s.printf("\nOutputs:\n")
	for _, out := range c.Outputs() {
		if v, ok := vals[out]; ok {
			s.printf("  %s = %s\n", out, bit(v))
		} else {
			s.printf("  %s = undefined\n", out)
		}
	}
	s.printf("\nAll nets:\n")
	nets := make([]string, 0, len(vals))
	for n := range vals {
		nets = append(nets, n)
	}
	sort.Strings(nets)
	for _, n := range nets {
		s.printf("  %s = %s\n", n, bit(vals[n]))
	}
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
