// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"math"

	"github.com/cpmech/goflow/sys"
)

// denseLU factors a dense copy of the locked matrix with partial pivoting.
// Fallback backend for small systems and for builds without a sparse solver.
type denseLU struct {
	n   int
	a   [][]float64
	piv []int
}

// factor overwrites a with its combined L and U factors
func (o *denseLU) factor(a [][]float64) error {
	o.n = len(a)
	o.a = a
	if len(o.piv) < o.n {
		o.piv = make([]int, o.n)
	}
	for k := 0; k < o.n; k++ {
		p, amax := k, math.Abs(a[k][k])
		for i := k + 1; i < o.n; i++ {
			if v := math.Abs(a[i][k]); v > amax {
				p, amax = i, v
			}
		}
		if amax == 0 {
			return sys.ErrFact("dense factorization failed: zero pivot at equation %d", k)
		}
		o.piv[k] = p
		if p != k {
			a[k], a[p] = a[p], a[k]
		}
		for i := k + 1; i < o.n; i++ {
			m := a[i][k] / a[k][k]
			a[i][k] = m
			if m == 0 {
				continue
			}
			for j := k + 1; j < o.n; j++ {
				a[i][j] -= m * a[k][j]
			}
		}
	}
	return nil
}

// solve overwrites x with A⁻¹x using the stored factors
func (o *denseLU) solve(x []float64) {
	for k := 0; k < o.n; k++ {
		if p := o.piv[k]; p != k {
			x[k], x[p] = x[p], x[k]
		}
		for i := k + 1; i < o.n; i++ {
			x[i] -= o.a[i][k] * x[k]
		}
	}
	for k := o.n - 1; k >= 0; k-- {
		for j := k + 1; j < o.n; j++ {
			x[k] -= o.a[k][j] * x[j]
		}
		x[k] /= o.a[k][k]
	}
}
