// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// BlockMatrix holds the linearized saddle-point system of one level:
//
//	| A11  0    B1 | |u|   |f1|
//	| 0    A22  B2 | |v| = |f2|
//	| B1t  B2t  0  | |p|   |fp|
//
// A22 may share all storage with A11 (coupled velocity components) or own
// separate values (decoupled boundary conditions per component). The lower
// blocks are virtual transposes of B1/B2 until a final-assembly step creates
// the physical transposes D1/D2.
type BlockMatrix struct {
	Nu, Np   int     // velocity DOFs per component; pressure DOFs
	A11, A22 *Matrix // velocity diagonal blocks (Nu x Nu)
	B1, B2   *Matrix // pressure coupling (Nu x Np), rows filtered at Dirichlet DOFs
	D1, D2   *Matrix // physical transposes (Np x Nu); nil while virtual
	PLock    int     // pressure DOF locked on enclosed problems; -1 otherwise
}

// Ntot returns the total number of equations
func (o *BlockMatrix) Ntot() int {
	return 2*o.Nu + o.Np
}

// BTPhysical tells whether the lower blocks are physically transposed
func (o *BlockMatrix) BTPhysical() bool {
	return o.D1 != nil
}

// Split returns the component views of a system-sized vector
func (o *BlockMatrix) Split(x []float64) (u, v, p []float64) {
	return x[:o.Nu], x[o.Nu : 2*o.Nu], x[2*o.Nu:]
}

// MatVecMulAdd computes y += α * K * x over the whole block system. The
// continuity rows use the physical transposes when present and the virtual
// transposed view of B1/B2 otherwise; both paths produce the same numbers.
func (o *BlockMatrix) MatVecMulAdd(y, x []float64, α float64) {
	u, v, p := o.Split(x)
	yu, yv, yp := o.Split(y)
	o.A11.MatVecMulAdd(yu, α, u)
	o.A22.MatVecMulAdd(yv, α, v)
	o.B1.MatVecMulAdd(yu, α, p)
	o.B2.MatVecMulAdd(yv, α, p)
	if o.D1 != nil {
		o.D1.MatVecMulAdd(yp, α, u)
		o.D2.MatVecMulAdd(yp, α, v)
		return
	}
	o.B1.MatTrVecMulAdd(yp, α, u)
	o.B2.MatTrVecMulAdd(yp, α, v)
}

// NnzUpperBound returns an upper bound for the number of triplet entries
// needed by PutToTriplet
func (o *BlockMatrix) NnzUpperBound() int {
	return o.A11.Nnz() + o.A22.Nnz() + 2*o.B1.Nnz() + 2*o.B2.Nnz() + 1
}

// PutToTriplet scatters the whole system into a sparse triplet using the
// global ordering [u, v, p]. With lock=true the continuity row of the locked
// pressure DOF is replaced by a unit row, making the matrix nonsingular for
// direct factorization on enclosed problems.
func (o *BlockMatrix) PutToTriplet(tr *la.Triplet, lock bool) {
	nu := o.Nu
	o.A11.PutToTriplet(tr, 0, 0, 1)
	o.A22.PutToTriplet(tr, nu, nu, 1)
	o.B1.PutToTriplet(tr, 0, 2*nu, 1)
	o.B2.PutToTriplet(tr, nu, 2*nu, 1)
	skip := -1
	if lock {
		if o.PLock < 0 {
			chk.Panic("cannot lock pressure DOF: no DOF was selected")
		}
		skip = o.PLock
	}
	o.putLowerToTriplet(tr, skip)
	if lock {
		tr.Put(2*nu+o.PLock, 2*nu+o.PLock, 1)
	}
}

// putLowerToTriplet scatters the continuity rows, skipping one row if asked
func (o *BlockMatrix) putLowerToTriplet(tr *la.Triplet, skip int) {
	nu := o.Nu
	put := func(src *Matrix, colOff int, physical bool) {
		m, _ := src.Dims()
		for i := 0; i < m; i++ {
			cols, vals := src.Row(i)
			for k, j := range cols {
				if physical {
					if i == skip {
						continue
					}
					tr.Put(2*nu+i, colOff+j, vals[k])
				} else {
					if j == skip {
						continue
					}
					tr.Put(2*nu+j, colOff+i, vals[k])
				}
			}
		}
	}
	if o.D1 != nil {
		put(o.D1, 0, true)
		put(o.D2, nu, true)
		return
	}
	put(o.B1, 0, false)
	put(o.B2, nu, false)
}

// ToDense assembles the whole system into a dense matrix, honoring the
// pressure lock in the same way as PutToTriplet
func (o *BlockMatrix) ToDense(lock bool) (a [][]float64) {
	n := o.Ntot()
	nu := o.Nu
	a = la.MatAlloc(n, n)
	o.A11.PutToDense(a, 0, 0, 1)
	o.A22.PutToDense(a, nu, nu, 1)
	o.B1.PutToDense(a, 0, 2*nu, 1)
	o.B2.PutToDense(a, nu, 2*nu, 1)
	if o.D1 != nil {
		o.D1.PutToDense(a, 2*nu, 0, 1)
		o.D2.PutToDense(a, 2*nu, nu, 1)
	} else {
		o.B1.PutTrToDense(a, 2*nu, 0, 1)
		o.B2.PutTrToDense(a, 2*nu, nu, 1)
	}
	if lock {
		if o.PLock < 0 {
			chk.Panic("cannot lock pressure DOF: no DOF was selected")
		}
		r := 2*nu + o.PLock
		for j := 0; j < n; j++ {
			a[r][j] = 0
		}
		a[r][r] = 1
	}
	return
}
