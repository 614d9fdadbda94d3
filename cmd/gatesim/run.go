// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gatesim/gatesim"
	"github.com/gatesim/gatesim/netlist"
	"github.com/gatesim/gatesim/viz"
)

var runCmd = &cobra.Command{
	Use:   "run [netlist]",
	Short: "Define a circuit and simulate it interactively.",
	Long: `Run simulates a combinational circuit for input assignments read from
standard input, one assignment per line, until EXIT.

With a netlist file argument the circuit is loaded from the file;
without one, the circuit is defined interactively first.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := newSession(os.Stdin, os.Stdout)
		var (
			name string
			c    *gatesim.Circuit
			err  error
		)
		if len(args) == 1 {
			name, c, err = loadNetlist(args[0])
		} else {
			s.header()
			name, c, err = s.define()
		}
		if err != nil {
			fatal(err)
		}
		s.summary(name, c)
		warn(c)
		if getFlag(cmd, "draw") {
			drawCircuit(cmd, name, c)
		}
		s.simulate(c)
	},
}

// loadNetlist parses a netlist file. A file with no circuit directive
// is named after its base name.
func loadNetlist(path string) (string, *gatesim.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, errors.Wrap(err, "open netlist")
	}
	defer f.Close()
	name, c, err := netlist.Parse(f)
	if err != nil {
		return "", nil, errors.Wrapf(err, "parse %s", path)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	logrus.Debugf("loaded circuit %s: %d inputs, %d outputs, %d gates",
		name, len(c.Inputs()), len(c.Outputs()), c.NumGates())
	return name, c, nil
}

// drawCircuit writes name.dot and tries a Graphviz render alongside it.
// Rendering is best effort: a missing dot binary only logs a warning.
func drawCircuit(cmd *cobra.Command, name string, c *gatesim.Circuit) {
	dotPath := name + ".dot"
	if err := viz.WriteFile(dotPath, name, c); err != nil {
		fatal(err)
	}
	fmt.Printf("DOT file saved as %s\n", dotPath)
	pngPath := name + ".png"
	if err := viz.Render(cmd.Context(), dotPath, pngPath); err != nil {
		logrus.Warnf("could not render %s: %v", pngPath, err)
		return
	}
	fmt.Printf("Circuit diagram saved as %s\n", pngPath)
}

func fatal(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Bool("draw", false, "also write a DOT file and render it before simulating")
}
