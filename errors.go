// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Configuration errors: a usable circuit needs at least one primary
// input and one primary output. These abort circuit definition; all
// other construction errors reject a single gate and let the caller
// carry on.
//
var (
	ErrNoInputs  = errors.New("circuit has no primary inputs")
	ErrNoOutputs = errors.New("circuit has no primary outputs")

	// ErrMissingOutput is returned by AddGate for an empty output net name.
	ErrMissingOutput = errors.New("gate output name required")

	// ErrEmptyName is returned by AddInput and AddOutput for an empty net name.
	ErrEmptyName = errors.New("net name required")
)

// An UnknownGateTypeError reports a gate type token outside the
// supported set. It carries the token as given by the caller.
//
type UnknownGateTypeError string

func (e UnknownGateTypeError) Error() string {
	return "unknown gate type " + strconv.Quote(string(e))
}

// An ArityError reports a gate definition with the wrong number of
// inputs for its type.
//
type ArityError struct {
	Type GateType
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return e.Type.String() + " gate requires exactly " + strconv.Itoa(e.Want) +
		" input(s), got " + strconv.Itoa(e.Got)
}

// An UndefinedNetError reports a gate reading a net that holds no value
// at the time the gate evaluates. Only EvalStrict returns it; Eval
// reads undefined nets as false.
//
type UndefinedNetError struct {
	Net  string
	Gate Gate
}

func (e *UndefinedNetError) Error() string {
	return "gate " + strconv.Quote(e.Gate.String()) + " reads undefined net " +
		strconv.Quote(e.Net)
}
