// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling for analyses and plotting
package out

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/goflow/slv"
	"github.com/cpmech/goflow/sys"
)

// Global variables
var (

	// data set by Start
	Sim  *inp.Simulation // simulation input
	Sol  *slv.Solver     // solver after its last run
	Levs []*sys.Level    // hierarchy, coarsest first
	Lev  *sys.Level      // finest level
	X    []float64       // finest-level solution
)

// Start starts handling of results from a solved simulation
func Start(sim *inp.Simulation, levs []*sys.Level, sol *slv.Solver, x []float64) {
	Sim = sim
	Sol = sol
	Levs = levs
	Lev = levs[len(levs)-1]
	X = x
}

// Report prints the outcome of the last nonlinear solve
func Report() {
	io.Pf("\n")
	io.Pf("%14s = %v\n", "status", Sol.Status)
	io.Pf("%14s = %d\n", "iterations", Sol.It)
	io.Pf("%14s = %g\n", "rho", Sol.Rho)
	io.Pf("%14s = %g\n", "resU", Sol.Res[0])
	io.Pf("%14s = %g\n", "resDIV", Sol.Res[1])
	io.Pf("%14s = %g\n", "resTOT", Sol.Res[2])
}

// ProfileU samples the horizontal velocity along the vertical edge line
// closest to station xs, bottom to top
func ProfileU(xs float64) (Y, u []float64) {
	g := Lev.Grid
	i := station(xs, g.Hx, g.Nx)
	Y = make([]float64, g.Ny)
	u = make([]float64, g.Ny)
	for j := 0; j < g.Ny; j++ {
		e := g.VertEdge(i, j)
		_, y := g.EdgeMid(e)
		Y[j] = y
		u[j] = X[e]
	}
	return
}

// ProfileV samples the vertical velocity along the horizontal edge line
// closest to elevation ys, left to right
func ProfileV(ys float64) (Xs, v []float64) {
	g := Lev.Grid
	nu := Lev.K.Nu
	j := station(ys, g.Hy, g.Ny)
	Xs = make([]float64, g.Nx)
	v = make([]float64, g.Nx)
	for i := 0; i < g.Nx; i++ {
		e := g.HorEdge(i, j)
		x, _ := g.EdgeMid(e)
		Xs[i] = x
		v[i] = X[nu+e]
	}
	return
}

// SectionRate integrates the horizontal velocity over the vertical edge
// line i: the discrete volumetric flow rate through that section
func SectionRate(i int) (q float64) {
	g := Lev.Grid
	for j := 0; j < g.Ny; j++ {
		q += X[g.VertEdge(i, j)] * g.Hy
	}
	return
}

// station returns the edge-line index closest to coordinate s
func station(s, h float64, n int) int {
	i := int(math.Floor(s/h + 0.5))
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}
