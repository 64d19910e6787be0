// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"github.com/cpmech/goflow/sys"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Multigrid runs cycles over the grid hierarchy: Vanka smoothing on every
// level, restriction of the smoothed residual, a recursive coarse
// correction repeated Cycle times (1 = V-cycle, 2 = W-cycle) and a direct
// factorization on the coarsest level.
type Multigrid struct {
	prm     *Params
	levs    []*sys.Level
	smo     Vanka
	coarse  *Direct
	d, c, r [][]float64 // per-level defect, correction and residual scratch
}

func init() {
	allocators["mg"] = func(prm *Params) Preconditioner { return &Multigrid{prm: prm} }
}

// NeedsPhysicalBT reports whether the continuity rows must be materialized
func (o *Multigrid) NeedsPhysicalBT() bool { return true }

// Prepare binds the hierarchy and allocates per-level scratch
func (o *Multigrid) Prepare(levs []*sys.Level) (err error) {
	if o.prm.Cycle < 1 {
		return sys.ErrCfg("cycle index must be at least 1. Cycle=%d is invalid", o.prm.Cycle)
	}
	for _, lev := range levs[1:] {
		if !lev.K.BTPhysical() {
			chk.Panic("continuity rows must be physical before preparing the multigrid")
		}
	}
	o.levs = levs
	o.smo = Vanka{Relax: o.prm.Relax}
	nl := len(levs)
	o.d = make([][]float64, nl)
	o.c = make([][]float64, nl)
	o.r = make([][]float64, nl)
	for l, lev := range levs {
		n := lev.Ntot()
		o.d[l] = make([]float64, n)
		o.c[l] = make([]float64, n)
		o.r[l] = make([]float64, n)
	}
	o.coarse = &Direct{prm: o.prm}
	return o.coarse.Prepare(levs[:1])
}

// Precondition overwrites d with the result of one cycle started from zero
func (o *Multigrid) Precondition(d []float64) (err error) {
	top := len(o.levs) - 1
	lev := o.levs[top]
	K := lev.K
	copy(o.d[top], d)
	lev.Ebc.ApplyDefect(o.d[top])
	if K.PLock >= 0 {
		o.d[top][2*K.Nu+K.PLock] = 0
	}
	if err = o.cycle(top); err != nil {
		return
	}
	copy(d, o.c[top])
	if K.PLock >= 0 {
		_, _, p := K.Split(d)
		sys.ZeroMeanP(p)
	}
	return
}

// cycle approximately solves K·c = d at level l. Defects and corrections
// pass through the level's filters on every transfer, so corrections stay
// exactly zero on prescribed rows all the way up.
func (o *Multigrid) cycle(l int) (err error) {
	if l == 0 {
		copy(o.c[0], o.d[0])
		return o.coarse.Precondition(o.c[0])
	}
	lev := o.levs[l]
	below := o.levs[l-1]
	la.VecFill(o.c[l], 0)
	o.smo.Sweep(lev, o.c[l], o.d[l], o.prm.NPre)
	for cyc := 0; cyc < o.prm.Cycle; cyc++ {
		copy(o.r[l], o.d[l])
		lev.K.MatVecMulAdd(o.r[l], o.c[l], -1)
		Restrict(below.Grid, o.d[l-1], lev.Grid, o.r[l])
		below.Ebc.ApplyDefect(o.d[l-1])
		if K := below.K; K.PLock >= 0 {
			o.d[l-1][2*K.Nu+K.PLock] = 0
		}
		if err = o.cycle(l - 1); err != nil {
			return
		}
		Prolongate(lev.Grid, o.r[l], below.Grid, o.c[l-1])
		lev.Ebc.ApplyDefect(o.r[l])
		la.VecAdd(o.c[l], 1, o.r[l])
	}
	o.smo.Sweep(lev, o.c[l], o.d[l], o.prm.NPost)
	return
}

// Release frees the coarse factorization
func (o *Multigrid) Release() {
	if o.coarse != nil {
		o.coarse.Release()
	}
}
