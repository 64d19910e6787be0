// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"github.com/cpmech/goflow/sys"
	"github.com/cpmech/gosl/la"
)

// Direct factors the full locked matrix of the finest level. The symbolic
// phase of the sparse backend runs once at Prepare; every Precondition
// refills the triplet from the current values and refactors. Name "dense"
// selects the internal fallback factorization instead of a sparse library.
type Direct struct {
	prm   *Params
	lev   *sys.Level
	dense bool
	tr    *la.Triplet
	lis   la.LinSol
	lu    denseLU
	x     []float64
}

func init() {
	allocators["direct"] = func(prm *Params) Preconditioner { return &Direct{prm: prm} }
}

// NeedsPhysicalBT reports whether the continuity rows must be materialized
func (o *Direct) NeedsPhysicalBT() bool { return false }

// Prepare binds the finest level and initializes the sparse solver
func (o *Direct) Prepare(levs []*sys.Level) (err error) {
	o.lev = levs[len(levs)-1]
	switch o.prm.Name {
	case "dense":
		o.dense = true
		return
	case "umfpack", "mumps":
	default:
		return sys.ErrCfg("unknown direct solver name %q", o.prm.Name)
	}
	n := o.lev.Ntot()
	o.x = make([]float64, n)
	o.tr = new(la.Triplet)
	o.tr.Init(n, n, o.lev.K.NnzUpperBound())
	o.fill()
	o.lis = la.GetSolver(o.prm.Name)
	if err = o.lis.InitR(o.tr, o.prm.Symmetric, o.prm.Verbose, false); err != nil {
		return sys.ErrFact("cannot initialize linear solver: %v", err)
	}
	return
}

// fill copies the current matrix values into the triplet
func (o *Direct) fill() {
	K := o.lev.K
	o.tr.Start()
	K.PutToTriplet(o.tr, K.PLock >= 0)
}

// Precondition overwrites d with K⁻¹d
func (o *Direct) Precondition(d []float64) (err error) {
	K := o.lev.K
	if K.PLock >= 0 {
		d[2*K.Nu+K.PLock] = 0
	}
	if o.dense {
		if err = o.lu.factor(K.ToDense(K.PLock >= 0)); err != nil {
			return
		}
		o.lu.solve(d)
	} else {
		o.fill()
		if err = o.lis.Fact(); err != nil {
			return sys.ErrFact("factorization failed: %v", err)
		}
		if err = o.lis.SolveR(o.x, d, false); err != nil {
			return sys.ErrFact("sparse solve failed: %v", err)
		}
		copy(d, o.x)
	}
	if K.PLock >= 0 {
		_, _, p := K.Split(d)
		sys.ZeroMeanP(p)
	}
	return
}

// Release frees backend resources
func (o *Direct) Release() {
	if o.lis != nil {
		o.lis.Free()
		o.lis = nil
	}
}
