// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/goflow/sys"
)

// Upwind implements simple algebraic upwinding: the central convection
// operator is assembled first, then for each coupling pair the artificial
// diffusion d = max(0, c_ij, c_ji) is added to the two diagonals and
// subtracted from the two off-diagonal entries. Off-diagonals of the
// convective part end up non-positive. Legal with Gamma=0 (no-op).
type Upwind struct {
	gam     float64
	nu      float64
	scratch map[*sys.Grid]*sys.Matrix
}

func init() {
	stballocators["upwind"] = func() Stabilization { return new(Upwind) }
}

// Init sets the equation weights
func (o *Upwind) Init(eq CoreEquation, dupsam, djump float64) {
	o.gam = eq.Gamma
	o.nu = eq.Nu
	o.scratch = make(map[*sys.Grid]*sys.Matrix)
}

// AddMatrix accumulates Gamma times the upwinded convection operator into a
func (o *Upwind) AddMatrix(g *sys.Grid, a *sys.Matrix, w []float64) {
	if o.gam == 0 {
		return
	}
	t := o.operatorAt(g, w)
	a.AddScaled(o.gam, t)
}

// AddDefect accumulates coef*Gamma times the upwinded operator applied to x
// into y for both components. The upwinding couples matrix pairs, so this
// mode works on the cached scratch operator instead of cellwise.
func (o *Upwind) AddDefect(g *sys.Grid, w, x, y []float64, coef float64) {
	if o.gam == 0 {
		return
	}
	t := o.operatorAt(g, w)
	ne := g.Nedge
	t.MatVecMulAdd(y[:ne], coef*o.gam, x[:ne])
	t.MatVecMulAdd(y[ne:2*ne], coef*o.gam, x[ne:2*ne])
}

// ExtraPattern returns nil: upwinding redistributes within the cell
// adjacency pattern
func (o *Upwind) ExtraPattern(g *sys.Grid) *sys.Matrix {
	return nil
}

// operatorAt fills the scratch operator with the central convection at w and
// upwinds it in place. The scratch matrix is allocated once per grid.
func (o *Upwind) operatorAt(g *sys.Grid, w []float64) (t *sys.Matrix) {
	t = o.scratch[g]
	if t == nil {
		t = sys.NewMatrix(g.Nedge, g.Nedge)
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				eds := g.CellEdges(i, j)
				for m := 0; m < 4; m++ {
					for n := 0; n < 4; n++ {
						t.Put(eds[m], eds[n], 0)
					}
				}
			}
		}
		t.Compress()
		o.scratch[g] = t
	}
	t.Start()

	// central part
	wu, wv := w[:g.Nedge], w[g.Nedge:2*g.Nedge]
	var wu4, wv4 [4]float64
	var c [4][4]float64
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			eds := g.CellEdges(i, j)
			for m := 0; m < 4; m++ {
				wu4[m] = wu[eds[m]]
				wv4[m] = wv[eds[m]]
			}
			cellConv(&c, g, &wu4, &wv4, 0)
			for m := 0; m < 4; m++ {
				for n := 0; n < 4; n++ {
					t.Put(eds[m], eds[n], c[m][n])
				}
			}
		}
	}

	// upwinding pass over the pairs
	for i := 0; i < g.Nedge; i++ {
		cols, vals := t.Row(i)
		for k, j := range cols {
			if j <= i {
				continue
			}
			d := 0.0
			if vals[k] > d {
				d = vals[k]
			}
			if cji := t.Val(j, i); cji > d {
				d = cji
			}
			if d > 0 {
				t.Put(i, i, d)
				t.Put(i, j, -d)
				t.Put(j, j, d)
				t.Put(j, i, -d)
			}
		}
	}
	return
}
