// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// An Assignment maps net names to boolean states. Eval takes one
// covering the primary inputs and returns one covering every net the
// pass touched.
//
type Assignment map[string]bool

// Clone returns a copy of a.
//
func (a Assignment) Clone() Assignment {
	n := make(Assignment, len(a))
	for k, v := range a {
		n[k] = v
	}
	return n
}

// Eval evaluates the circuit for the given primary input assignment and
// returns the resulting state of every net: the primary inputs plus
// every gate output.
//
// Gates run once each, in insertion order, reading the states produced
// so far. A net that nothing has defined yet reads as false, matching
// the permissive reference behavior; use EvalStrict to surface such
// reads as errors instead.
//
// Eval owns its working map: in is copied, never written to, and the
// result is freshly allocated on every call. Repeated calls with the
// same inputs yield equal results, and concurrent calls on the same
// circuit are safe as long as the construction phase is over.
//
func (c *Circuit) Eval(in Assignment) Assignment {
	vals := in.Clone()
	for _, g := range c.gates {
		vals[g.Out] = evalGate(g, vals)
	}
	return vals
}

// EvalStrict is Eval with undefined net reads upgraded to errors: the
// first gate input that no primary input or prior gate has defined
// fails the evaluation with an UndefinedNetError. The pass stops there;
// no partial result is returned.
//
func (c *Circuit) EvalStrict(in Assignment) (Assignment, error) {
	vals := in.Clone()
	for _, g := range c.gates {
		for _, n := range g.In {
			if _, ok := vals[n]; !ok {
				return nil, &UndefinedNetError{Net: n, Gate: g}
			}
		}
		vals[g.Out] = evalGate(g, vals)
	}
	return vals, nil
}

func evalGate(g Gate, vals Assignment) bool {
	a := vals[g.In[0]]
	var b bool
	if len(g.In) > 1 {
		b = vals[g.In[1]]
	}
	return g.Type.Eval(a, b)
}
