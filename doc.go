/*
Package gatesim models and evaluates combinational digital logic
circuits.

A circuit is a set of named primary inputs, an ordered list of boolean
gates (AND, OR, NAND, NOR, XOR, XNOR, NOT) driving named nets, and a set
of named primary outputs. Evaluation is a single forward pass over the
gate list, so gates must be supplied in dependency order.

The package performs no I/O. Reading circuit descriptions is handled by
package netlist, drawing them by package viz.

*/
package gatesim
