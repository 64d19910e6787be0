// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// VertexPressure extrapolates the piecewise-constant cell pressures to the
// grid vertices by averaging over the adjacent cells. Vertices are numbered
// row by row, bottom-left first.
func VertexPressure() (pv []float64) {
	g := Lev.Grid
	nu := Lev.K.Nu
	p := X[2*nu : Lev.Ntot()]

	// accumulate over cells
	nv := (g.Nx + 1) * (g.Ny + 1)
	pv = make([]float64, nv)
	counts := make([]float64, nv)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			t := g.Cell(i, j)
			for _, v := range [4]int{
				j*(g.Nx+1) + i,
				j*(g.Nx+1) + i + 1,
				(j+1)*(g.Nx+1) + i,
				(j+1)*(g.Nx+1) + i + 1,
			} {
				pv[v] += p[t]
				counts[v]++
			}
		}
	}

	// compute average
	for v := 0; v < nv; v++ {
		pv[v] /= counts[v]
	}
	return
}

// VertexCoords returns the coordinates of grid vertex v
func VertexCoords(v int) (x, y float64) {
	g := Lev.Grid
	i := v % (g.Nx + 1)
	j := v / (g.Nx + 1)
	return float64(i) * g.Hx, float64(j) * g.Hy
}
