// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prb

import (
	"github.com/cpmech/goflow/shp"
	"github.com/cpmech/goflow/sys"
	"github.com/cpmech/gosl/la"
)

// Operators assembles the constant operators of one grid: the viscosity-free
// diffusion matrix, the mass matrix and the pressure-gradient blocks. The
// gradient entry of edge e against cell t is
//   B1[e,t] = -∫_t ∂x φ_e   and   B2[e,t] = -∫_t ∂y φ_e
// so that [[A,B],[Bᵀ,0]] is the symmetric saddle-point form and a continuity
// row equals the negative net outflux of its cell.
func Operators(g *sys.Grid) (st, m, b1, b2 *sys.Matrix) {
	st = sys.NewMatrix(g.Nedge, g.Nedge)
	m = sys.NewMatrix(g.Nedge, g.Nedge)
	b1 = sys.NewMatrix(g.Nedge, g.Ncell)
	b2 = sys.NewMatrix(g.Nedge, g.Ncell)
	kloc := la.MatAlloc(4, 4)
	mloc := la.MatAlloc(4, 4)
	shp.StiffLoc(kloc, g.Hx, g.Hy)
	shp.MassLoc(mloc, g.Hx, g.Hy)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			t := g.Cell(i, j)
			eds := g.CellEdges(i, j)
			for a, ea := range eds {
				for b, eb := range eds {
					st.Put(ea, eb, kloc[a][b])
					m.Put(ea, eb, mloc[a][b])
				}
				if v := -g.Hy * shp.DivX[a]; v != 0 {
					b1.Put(ea, t, v)
				}
				if v := -g.Hx * shp.DivY[a]; v != 0 {
					b2.Put(ea, t, v)
				}
			}
		}
	}
	st.Compress()
	m.Compress()
	b1.Compress()
	b2.Compress()
	return
}
