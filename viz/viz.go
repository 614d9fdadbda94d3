// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package viz renders the structure of a circuit as a Graphviz graph:
// nets and gates become nodes, signal flow becomes edges. It only reads
// the circuit's structural data; evaluated values never appear in the
// drawing.
package viz

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/emicklei/dot"
	"github.com/pkg/errors"

	"github.com/gatesim/gatesim"
)

// Graph builds a left-to-right directed graph of c. Primary inputs are
// green, primary outputs coral, gates yellow; internal nets keep the
// default light blue. Gate nodes are ided gate_<index>_<TYPE> so that
// distinct gates of the same type stay distinct.
//
func Graph(name string, c *gatesim.Circuit) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	if name != "" {
		g.ID(name)
	}
	g.Attr("rankdir", "LR")
	g.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box").Attr("style", "filled").Attr("color", "lightblue")
	})

	for _, in := range c.Inputs() {
		g.Node(in).Attr("color", "lightgreen").Attr("label", in+`\nIN`)
	}
	for _, out := range c.Outputs() {
		g.Node(out).Attr("color", "lightcoral").Attr("label", out+`\nOUT`)
	}
	for i, gate := range c.Gates() {
		n := g.Node("gate_" + strconv.Itoa(i) + "_" + gate.Type.String())
		n.Attr("label", gate.Type.String()).Attr("color", "lightyellow")
		for _, in := range gate.In {
			g.Edge(g.Node(in), n)
		}
		g.Edge(n, g.Node(gate.Out))
	}
	return g
}

// Write writes the DOT text for c to w.
//
func Write(w io.Writer, name string, c *gatesim.Circuit) error {
	_, err := io.WriteString(w, Graph(name, c).String())
	return errors.Wrap(err, "write dot")
}

// WriteFile writes the DOT text for c to the named file.
//
func WriteFile(path, name string, c *gatesim.Circuit) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create dot file")
	}
	if err := Write(f, name, c); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "close dot file")
}

// Render runs the Graphviz dot tool on dotPath, producing a PNG at
// pngPath. Graphviz is an external collaborator: a missing dot binary
// or a render failure comes back as an error for the caller to report.
//
func Render(ctx context.Context, dotPath, pngPath string) error {
	if _, err := exec.LookPath("dot"); err != nil {
		return errors.Wrap(err, "graphviz not installed")
	}
	cmd := exec.CommandContext(ctx, "dot", "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "dot failed: %s", out)
	}
	return nil
}
