// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"github.com/cpmech/goflow/sys"
)

// Vanka is the pressure-coupled cell smoother: for every cell, the eight
// velocity DOFs on its edges and the cell pressure are solved together with
// off-cell couplings frozen at their current values, sweeping cells in
// lexicographic Gauss-Seidel order. The momentum blocks enter through their
// diagonal only, which makes the local solve a rank-one update.
type Vanka struct {
	Relax float64 // under-relaxation of the local corrections
}

// Sweep runs nsweeps passes over one level, updating x in place so that K·x
// approaches d. The continuity rows must be physical (D1/D2 materialized).
func (o *Vanka) Sweep(lev *sys.Level, x, d []float64, nsweeps int) {
	K := lev.K
	g := lev.Grid
	nu := K.Nu
	u, v, p := K.Split(x)
	var ru, rv, au, av, bu, bv [4]float64
	for n := 0; n < nsweeps; n++ {
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				t := g.Cell(i, j)
				eds := g.CellEdges(i, j)

				// local residuals and couplings
				num, den := 0.0, 0.0
				for m, e := range eds {
					ru[m] = d[e] - K.A11.RowDot(e, u) - K.B1.RowDot(e, p)
					rv[m] = d[nu+e] - K.A22.RowDot(e, v) - K.B2.RowDot(e, p)
					au[m] = K.A11.Diag(e)
					av[m] = K.A22.Diag(e)
					bu[m] = K.B1.Val(e, t)
					bv[m] = K.B2.Val(e, t)
					num += bu[m]*ru[m]/au[m] + bv[m]*rv[m]/av[m]
					den += bu[m]*bu[m]/au[m] + bv[m]*bv[m]/av[m]
				}

				// pressure update; den vanishes when every velocity DOF of
				// the cell is constrained
				var δp float64
				if t == K.PLock {
					δp = d[2*nu+t] - p[t]
				} else if den != 0 {
					rt := d[2*nu+t] - K.D1.RowDot(t, u) - K.D2.RowDot(t, v)
					δp = (num - rt) / den
				}

				// velocity updates given the new pressure
				p[t] += o.Relax * δp
				for m, e := range eds {
					u[e] += o.Relax * (ru[m] - bu[m]*δp) / au[m]
					v[e] += o.Relax * (rv[m] - bv[m]*δp) / av[m]
				}
			}
		}
	}
}
