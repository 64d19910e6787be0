// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/goflow/sys"
)

// Stabilization discretizes the convective term N(w) at a frozen velocity
// field w, plus the stabilization proper, in two modes: accumulation into
// the velocity operator (matrix mode) and direct application to a vector
// (defect mode, which never materializes the operator). The same scalar
// operator acts on both velocity components. Vectors are system sized
// [u, v, p]; the pressure part is never touched.
type Stabilization interface {

	// Init sets the equation weights and the stabilization parameters
	Init(eq CoreEquation, dupsam, djump float64)

	// AddMatrix accumulates Gamma*N(w) plus stabilization into a
	AddMatrix(g *sys.Grid, a *sys.Matrix, w []float64)

	// AddDefect accumulates coef times the same operator applied to x into
	// y, componentwise, without materializing it
	AddDefect(g *sys.Grid, w, x, y []float64, coef float64)

	// ExtraPattern returns velocity couplings beyond the diffusion pattern
	// needed by this stabilization, or nil
	ExtraPattern(g *sys.Grid) *sys.Matrix
}

// stballocators maps stabilization kinds to allocators
var stballocators = map[string]func() Stabilization{}

// NewStab returns a stabilization strategy by kind. Unknown kinds are a
// configuration error; the caller must not retry.
func NewStab(kind string, eq CoreEquation, dupsam, djump float64) (o Stabilization, err error) {
	allocator, ok := stballocators[kind]
	if !ok {
		return nil, sys.ErrCfg("unsupported stabilization: %q", kind)
	}
	o = allocator()
	o.Init(eq, dupsam, djump)
	return
}
