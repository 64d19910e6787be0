// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"github.com/cpmech/goflow/shp"
	"github.com/cpmech/goflow/sys"
)

// The interlevel operators connect two grids of a 2:1 hierarchy. Primal
// quantities (solutions) move with Prolongate and Interpolate, dual
// quantities (defects) with Restrict, which is the exact transpose of
// Prolongate. All three preserve constant fields. Vectors are system sized
// [u, v, p].

// Interpolate averages a primal fine solution down to the coarse grid: each
// coarse edge value is the mean of its two coincident fine edges, each
// coarse pressure the mean of its four children
func Interpolate(cg *sys.Grid, coarse []float64, fg *sys.Grid, fine []float64) {
	for comp := 0; comp < 2; comp++ {
		co := comp * cg.Nedge
		fo := comp * fg.Nedge
		for j := 0; j < cg.Ny; j++ {
			for i := 0; i <= cg.Nx; i++ {
				c := cg.VertEdge(i, j)
				f0 := fg.VertEdge(2*i, 2*j)
				f1 := fg.VertEdge(2*i, 2*j+1)
				coarse[co+c] = 0.5 * (fine[fo+f0] + fine[fo+f1])
			}
		}
		for j := 0; j <= cg.Ny; j++ {
			for i := 0; i < cg.Nx; i++ {
				c := cg.HorEdge(i, j)
				f0 := fg.HorEdge(2*i, 2*j)
				f1 := fg.HorEdge(2*i+1, 2*j)
				coarse[co+c] = 0.5 * (fine[fo+f0] + fine[fo+f1])
			}
		}
	}
	cpo := 2 * cg.Nedge
	fpo := 2 * fg.Nedge
	for j := 0; j < cg.Ny; j++ {
		for i := 0; i < cg.Nx; i++ {
			s := fine[fpo+fg.Cell(2*i, 2*j)] + fine[fpo+fg.Cell(2*i+1, 2*j)] +
				fine[fpo+fg.Cell(2*i, 2*j+1)] + fine[fpo+fg.Cell(2*i+1, 2*j+1)]
			coarse[cpo+cg.Cell(i, j)] = 0.25 * s
		}
	}
}

// evalCell evaluates one velocity component of the coarse interpolant at
// natural coordinates of coarse cell (i,j)
func evalCell(cg *sys.Grid, vals []float64, i, j int, ξ, η float64) float64 {
	eds := cg.CellEdges(i, j)
	var u4 [4]float64
	for m := 0; m < 4; m++ {
		u4[m] = vals[eds[m]]
	}
	return shp.Eval(u4[:], ξ, η)
}

// scatterCell adds v times the basis values at (ξ,η) onto the coarse edge
// DOFs of cell (i,j); the adjoint of evalCell
func scatterCell(cg *sys.Grid, vals []float64, i, j int, ξ, η, v float64) {
	eds := cg.CellEdges(i, j)
	var s [4]float64
	shp.Func(s[:], ξ, η)
	for m := 0; m < 4; m++ {
		vals[eds[m]] += s[m] * v
	}
}

// Prolongate evaluates the coarse interpolant at every fine edge midpoint.
// The nonconforming interpolant is two valued on coarse cell interfaces, so
// midpoints sitting on an interface average the traces of both cells.
// Pressure children inherit their parent value.
func Prolongate(fg *sys.Grid, fine []float64, cg *sys.Grid, coarse []float64) {
	for comp := 0; comp < 2; comp++ {
		cvals := coarse[comp*cg.Nedge : (comp+1)*cg.Nedge]
		fo := comp * fg.Nedge
		for j := 0; j < fg.Ny; j++ {
			η := -0.5
			if j%2 == 1 {
				η = 0.5
			}
			jc := j / 2
			for i := 0; i <= fg.Nx; i++ {
				f := fo + fg.VertEdge(i, j)
				if i%2 == 1 {
					fine[f] = evalCell(cg, cvals, (i-1)/2, jc, 0, η)
					continue
				}
				ic := i / 2
				switch {
				case ic == 0:
					fine[f] = evalCell(cg, cvals, 0, jc, -1, η)
				case ic == cg.Nx:
					fine[f] = evalCell(cg, cvals, cg.Nx-1, jc, +1, η)
				default:
					fine[f] = 0.5 * (evalCell(cg, cvals, ic-1, jc, +1, η) + evalCell(cg, cvals, ic, jc, -1, η))
				}
			}
		}
		for j := 0; j <= fg.Ny; j++ {
			jc := j / 2
			for i := 0; i < fg.Nx; i++ {
				ξ := -0.5
				if i%2 == 1 {
					ξ = 0.5
				}
				f := fo + fg.HorEdge(i, j)
				if j%2 == 1 {
					fine[f] = evalCell(cg, cvals, i/2, (j-1)/2, ξ, 0)
					continue
				}
				switch {
				case jc == 0:
					fine[f] = evalCell(cg, cvals, i/2, 0, ξ, -1)
				case jc == cg.Ny:
					fine[f] = evalCell(cg, cvals, i/2, cg.Ny-1, ξ, +1)
				default:
					fine[f] = 0.5 * (evalCell(cg, cvals, i/2, jc-1, ξ, +1) + evalCell(cg, cvals, i/2, jc, ξ, -1))
				}
			}
		}
	}
	for j := 0; j < fg.Ny; j++ {
		for i := 0; i < fg.Nx; i++ {
			fine[2*fg.Nedge+fg.Cell(i, j)] = coarse[2*cg.Nedge+cg.Cell(i/2, j/2)]
		}
	}
}

// Restrict moves a dual fine vector (defect) to the coarse grid with the
// exact transpose of Prolongate; coarse pressure rows collect the sum of
// their four children
func Restrict(cg *sys.Grid, coarse []float64, fg *sys.Grid, fine []float64) {
	for i := range coarse {
		coarse[i] = 0
	}
	for comp := 0; comp < 2; comp++ {
		cvals := coarse[comp*cg.Nedge : (comp+1)*cg.Nedge]
		fo := comp * fg.Nedge
		for j := 0; j < fg.Ny; j++ {
			η := -0.5
			if j%2 == 1 {
				η = 0.5
			}
			jc := j / 2
			for i := 0; i <= fg.Nx; i++ {
				v := fine[fo+fg.VertEdge(i, j)]
				if i%2 == 1 {
					scatterCell(cg, cvals, (i-1)/2, jc, 0, η, v)
					continue
				}
				ic := i / 2
				switch {
				case ic == 0:
					scatterCell(cg, cvals, 0, jc, -1, η, v)
				case ic == cg.Nx:
					scatterCell(cg, cvals, cg.Nx-1, jc, +1, η, v)
				default:
					scatterCell(cg, cvals, ic-1, jc, +1, η, 0.5*v)
					scatterCell(cg, cvals, ic, jc, -1, η, 0.5*v)
				}
			}
		}
		for j := 0; j <= fg.Ny; j++ {
			jc := j / 2
			for i := 0; i < fg.Nx; i++ {
				ξ := -0.5
				if i%2 == 1 {
					ξ = 0.5
				}
				v := fine[fo+fg.HorEdge(i, j)]
				if j%2 == 1 {
					scatterCell(cg, cvals, i/2, (j-1)/2, ξ, 0, v)
					continue
				}
				switch {
				case jc == 0:
					scatterCell(cg, cvals, i/2, 0, ξ, -1, v)
				case jc == cg.Ny:
					scatterCell(cg, cvals, i/2, cg.Ny-1, ξ, +1, v)
				default:
					scatterCell(cg, cvals, i/2, jc-1, ξ, +1, 0.5*v)
					scatterCell(cg, cvals, i/2, jc, ξ, -1, 0.5*v)
				}
			}
		}
	}
	for j := 0; j < fg.Ny; j++ {
		for i := 0; i < fg.Nx; i++ {
			coarse[2*cg.Nedge+cg.Cell(i/2, j/2)] += fine[2*fg.Nedge+fg.Cell(i, j)]
		}
	}
}

// TempSize returns the scratch length preconditioning and transfers need on
// a hierarchy: the finest-level equation count
func TempSize(levs []*sys.Level) (n int) {
	for _, lev := range levs {
		if nt := lev.Ntot(); nt > n {
			n = nt
		}
	}
	return
}

// Interp plugs the package transfer into the assembler's injection point
type Interp struct{}

// Interpolate carries a primal fine solution down one level
func (o Interp) Interpolate(cg *sys.Grid, coarse []float64, fg *sys.Grid, fine []float64) {
	Interpolate(cg, coarse, fg, fine)
}
