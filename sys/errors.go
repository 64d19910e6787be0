// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"
)

// ErrKind classifies fatal solver errors so callers can branch on the
// failure class instead of parsing messages
type ErrKind int

const (
	// ErrNone marks errors without a class
	ErrNone ErrKind = iota

	// ErrConfig marks missing or invalid configuration: unknown
	// stabilization kind, unsupported preconditioner type, missing section
	ErrConfig

	// ErrDegenerate marks numerical degeneracy such as a vanishing damping
	// denominator; typically a corrupted or degenerate grid
	ErrDegenerate

	// ErrFactorization marks a failed numeric factorization in the linear
	// solver backend
	ErrFactorization

	// ErrInputOutput marks a failed read or write of result files
	ErrInputOutput
)

// kindError attaches a class to an ordinary error
type kindError struct {
	kind ErrKind
	err  error
}

func (o *kindError) Error() string {
	return o.err.Error()
}

// ErrCfg creates a configuration error
func ErrCfg(msg string, prm ...interface{}) error {
	return &kindError{ErrConfig, chk.Err(msg, prm...)}
}

// ErrDegen creates a numerical degeneracy error
func ErrDegen(msg string, prm ...interface{}) error {
	return &kindError{ErrDegenerate, chk.Err(msg, prm...)}
}

// ErrFact creates a factorization failure error
func ErrFact(msg string, prm ...interface{}) error {
	return &kindError{ErrFactorization, chk.Err(msg, prm...)}
}

// ErrIO creates a file input/output error
func ErrIO(msg string, prm ...interface{}) error {
	return &kindError{ErrInputOutput, chk.Err(msg, prm...)}
}

// Kind reports the class of an error; ErrNone for nil and unclassified errors
func Kind(err error) ErrKind {
	if e, ok := err.(*kindError); ok {
		return e.kind
	}
	return ErrNone
}
