// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command gatesim defines, simulates and draws combinational logic
// circuits, either interactively or from netlist files.
package main

func main() {
	Execute()
}
