// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"math"

	"github.com/cpmech/goflow/sys"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/gonum/floats"
)

// macheps is the double precision unit roundoff
const macheps = 1.0 / (1 << 53)

// BiCGStab accelerates the stabilized bi-conjugate gradient method with one
// multigrid cycle as right preconditioner. The Krylov loop runs on the
// locked finest operator until the residual drops below Tol relative to the
// defect norm or Maxit is reached; an incomplete solve is still a valid
// preconditioner for the outer defect correction.
type BiCGStab struct {
	prm   *Params
	levs  []*sys.Level
	inner Preconditioner

	x, r, rt, p, v, t, phat, s, shat []float64
}

func init() {
	allocators["bicgstab"] = func(prm *Params) Preconditioner { return &BiCGStab{prm: prm} }
}

// NeedsPhysicalBT reports whether the continuity rows must be materialized
func (o *BiCGStab) NeedsPhysicalBT() bool { return true }

// Prepare binds the hierarchy, allocates Krylov scratch and prepares the
// inner multigrid
func (o *BiCGStab) Prepare(levs []*sys.Level) (err error) {
	o.levs = levs
	n := levs[len(levs)-1].Ntot()
	o.x = make([]float64, n)
	o.r = make([]float64, n)
	o.rt = make([]float64, n)
	o.p = make([]float64, n)
	o.v = make([]float64, n)
	o.t = make([]float64, n)
	o.phat = make([]float64, n)
	o.s = make([]float64, n)
	o.shat = make([]float64, n)
	o.inner = &Multigrid{prm: o.prm}
	return o.inner.Prepare(levs)
}

// apply evaluates the locked finest operator: y = K·x with the continuity
// row of the locked pressure DOF replaced by its unit equation
func (o *BiCGStab) apply(y, x []float64) {
	K := o.levs[len(o.levs)-1].K
	la.VecFill(y, 0)
	K.MatVecMulAdd(y, x, 1)
	if K.PLock >= 0 {
		y[2*K.Nu+K.PLock] = x[2*K.Nu+K.PLock]
	}
}

// Precondition overwrites d with an approximate solution of K·x = d
func (o *BiCGStab) Precondition(d []float64) (err error) {
	K := o.levs[len(o.levs)-1].K
	if K.PLock >= 0 {
		d[2*K.Nu+K.PLock] = 0
	}
	bnorm := floats.Norm(d, 2)
	if bnorm == 0 {
		return
	}
	tol := o.prm.Tol * bnorm
	maxit := o.prm.Maxit
	if maxit < 1 {
		maxit = 2 * len(d)
	}

	// zero initial guess, so the initial residual is the defect itself
	la.VecFill(o.x, 0)
	copy(o.r, d)
	copy(o.rt, d)
	var rho, rhoPrev, alpha, omega float64
	first := true
	for it := 0; it < maxit; it++ {
		rho = floats.Dot(o.rt, o.r)
		if math.Abs(rho) < macheps*macheps {
			return sys.ErrDegen("rho breakdown in BiCGStab at iteration %d", it)
		}
		if first {
			copy(o.p, o.r)
			first = false
		} else {
			beta := (rho / rhoPrev) * (alpha / omega)
			floats.AddScaled(o.p, -omega, o.v) // p -= ω v
			floats.Scale(beta, o.p)            // p *= β
			floats.Add(o.p, o.r)               // p += r
		}
		copy(o.phat, o.p)
		if err = o.inner.Precondition(o.phat); err != nil {
			return
		}
		o.apply(o.v, o.phat)
		alpha = rho / floats.Dot(o.rt, o.v)
		floats.AddScaled(o.r, -alpha, o.v)
		copy(o.s, o.r)
		if floats.Norm(o.r, 2) <= tol {
			floats.AddScaled(o.x, alpha, o.phat)
			break
		}
		copy(o.shat, o.r)
		if err = o.inner.Precondition(o.shat); err != nil {
			return
		}
		o.apply(o.t, o.shat)
		omega = floats.Dot(o.t, o.s) / floats.Dot(o.t, o.t)
		floats.AddScaled(o.x, alpha, o.phat)
		floats.AddScaled(o.x, omega, o.shat)
		floats.AddScaled(o.r, -omega, o.t)
		if o.prm.Verbose {
			io.Pf("  bicgstab: it=%3d resid=%13.7e\n", it, floats.Norm(o.r, 2))
		}
		if floats.Norm(o.r, 2) <= tol {
			break
		}
		if math.Abs(omega) < macheps*macheps {
			return sys.ErrDegen("omega breakdown in BiCGStab")
		}
		rhoPrev = rho
	}
	copy(d, o.x)
	if K.PLock >= 0 {
		_, _, p := K.Split(d)
		sys.ZeroMeanP(p)
	}
	return
}

// Release frees the inner multigrid
func (o *BiCGStab) Release() {
	if o.inner != nil {
		o.inner.Release()
	}
}
