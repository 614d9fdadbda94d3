// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gatesim/gatesim/viz"
)

var drawCmd = &cobra.Command{
	Use:   "draw [netlist]",
	Short: "Export a circuit as a Graphviz DOT file.",
	Long: `Draw serializes the structure of a circuit (nets, gates and their
connections) as a Graphviz DOT file, and optionally renders it to PNG
with the external dot tool.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, c, err := loadNetlist(args[0])
		if err != nil {
			fatal(err)
		}
		dotPath := getString(cmd, "out")
		if dotPath == "" {
			dotPath = name + ".dot"
		}
		if err := viz.WriteFile(dotPath, name, c); err != nil {
			fatal(err)
		}
		fmt.Printf("DOT file saved as %s\n", dotPath)
		if !getFlag(cmd, "png") {
			return
		}
		pngPath := name + ".png"
		if err := viz.Render(cmd.Context(), dotPath, pngPath); err != nil {
			logrus.Warnf("could not render %s: %v", pngPath, err)
			logrus.Warn("install Graphviz (https://graphviz.org/) to generate circuit diagrams")
			return
		}
		fmt.Printf("Circuit diagram saved as %s\n", pngPath)
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)
	drawCmd.Flags().StringP("out", "o", "", "output DOT file (defaults to <circuit>.dot)")
	drawCmd.Flags().Bool("png", false, "render a PNG with the Graphviz dot tool")
}
