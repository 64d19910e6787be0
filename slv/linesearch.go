// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slv

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goflow/asm"
	"github.com/cpmech/goflow/sys"
)

// LineSearch computes the damping factor of a defect-correction update by
// the linearized 1-D minimization
//
//	omg = <K*dx, b-K*x> / <K*dx, K*dx>
//
// where K is re-linearized at the shifted point x + omgOld*dx whenever the
// convective weight is nonzero.
type LineSearch struct {

	// input
	OmgIni float64 // first shift factor
	OmgMin float64 // lower bound
	OmgMax float64 // upper bound

	// state
	Omg float64 // last damping factor

	// scratch
	xp []float64 // shifted point
	r  []float64 // filtered defect at x
	t  []float64 // filtered K*dx
}

// Init sets the bounds and allocates scratch for systems of size n
func (o *LineSearch) Init(omgIni, omgMin, omgMax float64, n int) {
	o.OmgIni, o.OmgMin, o.OmgMax = omgIni, omgMin, omgMax
	o.Omg = omgIni
	o.xp = make([]float64, n)
	o.r = make([]float64, n)
	o.t = make([]float64, n)
}

// Search computes the damping factor for the update x += omg*dx against
// right-hand side b. With OmgMin >= OmgMax the search is disabled and OmgMin
// is returned without touching the operator; otherwise the finest operator
// is re-assembled at the shifted point (skipped for Gamma=0, where it does
// not depend on the iterate), the raw factor is computed and then clamped to
// [OmgMin, OmgMax].
func (o *LineSearch) Search(a *asm.Assembler, levs []*sys.Level, x, dx, b []float64) (omg float64, err error) {

	// disabled
	if o.OmgMin >= o.OmgMax {
		o.Omg = o.OmgMin
		return o.OmgMin, nil
	}

	// re-linearize at the shifted point
	lev := levs[len(levs)-1]
	if a.Eq.Gamma != 0 {
		la.VecCopy(o.xp, 1, x)
		la.VecAdd(o.xp, o.Omg, dx)
		a.AssembleTop(levs, o.xp)
	}

	// filtered defect at the original point
	la.VecCopy(o.r, 1, b)
	lev.K.MatVecMulAdd(o.r, x, -1)
	lev.Ebc.ApplyDefect(o.r)

	// filtered image of the direction
	la.VecFill(o.t, 0)
	lev.K.MatVecMulAdd(o.t, dx, 1)
	lev.Ebc.ApplyDefect(o.t)

	// minimizer of the linearized defect norm
	den := la.VecDot(o.t, o.t)
	if den < 1e-40 {
		return 0, sys.ErrDegen("damping search direction is degenerate: <t,t>=%g", den)
	}
	omg = la.VecDot(o.t, o.r) / den

	// clamp
	if omg < o.OmgMin {
		omg = o.OmgMin
	}
	if omg > o.OmgMax {
		omg = o.OmgMax
	}
	o.Omg = omg
	return
}
