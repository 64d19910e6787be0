// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goflow/sys"
)

// Interpolator carries a primal solution from a fine grid down to the next
// coarser grid. The multigrid transfer package provides the implementation;
// it is injected here so assembly stays independent of the linear solver.
type Interpolator interface {
	Interpolate(cg *sys.Grid, coarse []float64, fg *sys.Grid, fine []float64)
}

// Assembler rebuilds the linearized velocity operator of every level at the
// current iterate. Ncalls counts assembly passes; the damping search must
// not trigger any when the operator does not depend on the iterate.
type Assembler struct {
	Eq           CoreEquation
	Stab         Stabilization
	Interp       Interpolator
	FilterInterp bool // apply Dirichlet values to interpolated iterates
	Adapt        AdaptRestrict
	Ncalls       int
}

// NewAssembler allocates an assembler. Unknown stabilization or adaptive
// restriction kinds are configuration errors.
func NewAssembler(eq CoreEquation, stabKind string, dupsam, djump float64, adaptKind string, adaptTol float64, interp Interpolator) (o *Assembler, err error) {
	stb, err := NewStab(stabKind, eq, dupsam, djump)
	if err != nil {
		return nil, err
	}
	if adaptKind != AdaptOff && adaptKind != AdaptThreshold {
		return nil, sys.ErrCfg("unsupported adaptive restriction: %q", adaptKind)
	}
	o = new(Assembler)
	o.Eq = eq
	o.Stab = stb
	o.Interp = interp
	o.Adapt = AdaptRestrict{Kind: adaptKind, Tol: adaptTol}
	return
}

// ExtraPattern returns the stabilization couplings beyond the diffusion
// pattern on grid g, or nil; levels fold it into their operator pattern
func (o *Assembler) ExtraPattern(g *sys.Grid) *sys.Matrix {
	return o.Stab.ExtraPattern(g)
}

// AssembleAll rebuilds the operators of all levels at iterate x. The finest
// level uses x directly; each lower level gets the iterate interpolated from
// the level above (primal interpolation, not residual restriction). Coarse
// operators are then optionally rebuilt by adaptive restriction, and the
// Dirichlet conditions are implemented into every matrix.
func (o *Assembler) AssembleAll(levs []*sys.Level, x []float64) {
	o.Ncalls++
	top := len(levs) - 1
	if top > 0 && o.Interp == nil {
		chk.Panic("assembling %d levels requires an interpolator", len(levs))
	}
	w := x
	for i := top; i >= 0; i-- {
		lev := levs[i]
		if i < top {
			o.Interp.Interpolate(lev.Grid, lev.Wsol, levs[i+1].Grid, w)
			if o.FilterInterp {
				lev.Ebc.ApplySolution(lev.Wsol)
			}
			w = lev.Wsol
		}
		o.assembleRaw(lev, w)
	}
	for i := top - 1; i >= 0; i-- {
		o.Adapt.Apply(levs[i], levs[i+1])
	}
	for _, lev := range levs {
		o.finishLevel(lev)
	}
}

// AssembleTop rebuilds the finest level only, at iterate x. The damping
// search uses it when Gamma is nonzero.
func (o *Assembler) AssembleTop(levs []*sys.Level, x []float64) {
	o.Ncalls++
	lev := levs[len(levs)-1]
	o.assembleRaw(lev, x)
	o.finishLevel(lev)
}

// AddConvDefect accumulates coef times the convective operator at w applied
// to x into y, for both velocity components, without materializing it
func (o *Assembler) AddConvDefect(g *sys.Grid, w, x, y []float64, coef float64) {
	o.Stab.AddDefect(g, w, x, y, coef)
}

// assembleRaw writes Alpha*M + Theta*Nu*St + stabilized convection at w into
// the velocity operator, without boundary conditions
func (o *Assembler) assembleRaw(lev *sys.Level, w []float64) {
	a := lev.K.A11
	a.Start()
	if o.Eq.Alpha != 0 {
		a.AddScaled(o.Eq.Alpha, lev.M)
	}
	if c := o.Eq.Theta * o.Eq.Nu; c != 0 {
		a.AddScaled(c, lev.St)
	}
	o.Stab.AddMatrix(lev.Grid, a, w)
}

// finishLevel synchronizes the second velocity block and implements the
// Dirichlet conditions into the matrix
func (o *Assembler) finishLevel(lev *sys.Level) {
	K := lev.K
	if !K.A22.SharesValuesWith(K.A11) {
		K.A22.CopyValues(K.A11)
	}
	lev.Ebc.ApplyK(K)
}
