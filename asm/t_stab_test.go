// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/goflow/sys"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// velPattern returns an empty compressed velocity-operator matrix spanning
// the cell adjacency pattern of g plus the given extra couplings
func velPattern(g *sys.Grid, extra *sys.Matrix) (a *sys.Matrix) {
	a = sys.NewMatrix(g.Nedge, g.Nedge)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			eds := g.CellEdges(i, j)
			for m := 0; m < 4; m++ {
				for n := 0; n < 4; n++ {
					a.Put(eds[m], eds[n], 0)
				}
			}
		}
	}
	if extra != nil {
		for i := 0; i < g.Nedge; i++ {
			cols, _ := extra.Row(i)
			for _, j := range cols {
				a.Put(i, j, 0)
			}
		}
	}
	a.Compress()
	a.Start()
	return
}

func randVec(n int, lo, hi float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = rnd.Float64(lo, hi)
	}
	return
}

func Test_stab01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stab01. allocation and unknown kinds")

	eq := CoreEquation{Theta: 1, Gamma: 1, Nu: 0.01}
	for _, kind := range []string{"supg", "upwind", "jump"} {
		if _, err := NewStab(kind, eq, 1, 0.01); err != nil {
			tst.Errorf("%q should allocate: %v\n", kind, err)
			return
		}
	}
	_, err := NewStab("galerkin-least-squares", eq, 1, 0)
	if err == nil {
		tst.Errorf("unknown kind must fail\n")
		return
	}
	if sys.Kind(err) != sys.ErrConfig {
		tst.Errorf("unknown kind must be a configuration error\n")
		return
	}
}

func Test_stab02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stab02. matrix mode equals defect mode")

	rnd.Init(0)
	g := sys.NewGrid(4, 3, 2.0, 1.5)
	eq := CoreEquation{Theta: 1, Gamma: 1, Nu: 0.01}
	ntot := 2*g.Nedge + g.Ncell
	w := randVec(ntot, -1, 1)
	x := randVec(ntot, -1, 1)

	for _, kind := range []string{"supg", "upwind", "jump"} {
		stb, err := NewStab(kind, eq, 1, 0.01)
		if err != nil {
			tst.Errorf("%v\n", err)
			return
		}

		a := velPattern(g, stb.ExtraPattern(g))
		stb.AddMatrix(g, a, w)
		ymat := make([]float64, ntot)
		a.MatVecMulAdd(ymat[:g.Nedge], 1, x[:g.Nedge])
		a.MatVecMulAdd(ymat[g.Nedge:2*g.Nedge], 1, x[g.Nedge:2*g.Nedge])

		ydef := make([]float64, ntot)
		stb.AddDefect(g, w, x, ydef, 1)

		chk.Vector(tst, io.Sf("%s: N*x matrix vs defect", kind), 1e-13, ymat, ydef)
	}
}

func Test_stab03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stab03. constants are transported exactly; upwind signs")

	rnd.Init(123)
	g := sys.NewGrid(3, 4, 1.0, 2.0)
	eq := CoreEquation{Theta: 1, Gamma: 1, Nu: 0.005}
	ntot := 2*g.Nedge + g.Ncell
	w := randVec(ntot, -2, 2)

	// constant fields produce zero convective defect
	ones := make([]float64, ntot)
	for i := range ones {
		ones[i] = 1
	}
	for _, kind := range []string{"supg", "upwind", "jump"} {
		stb, _ := NewStab(kind, eq, 1, 0.01)
		y := make([]float64, ntot)
		stb.AddDefect(g, w, ones, y, 1)
		for i := 0; i < 2*g.Nedge; i++ {
			if y[i] < -1e-13 || y[i] > 1e-13 {
				tst.Errorf("%s: constants must be annihilated. row %d gives %g\n", kind, i, y[i])
				return
			}
		}
	}

	// off-diagonals of the upwinded operator are non-positive
	stb, _ := NewStab("upwind", eq, 0, 0)
	a := velPattern(g, nil)
	stb.AddMatrix(g, a, w)
	for i := 0; i < g.Nedge; i++ {
		cols, vals := a.Row(i)
		for k, j := range cols {
			if j != i && vals[k] > 1e-14 {
				tst.Errorf("upwinded off-diagonal (%d,%d)=%g must be non-positive\n", i, j, vals[k])
				return
			}
		}
	}
}

func Test_stab04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stab04. edge-jump penalty vanishes on linear fields")

	g := sys.NewGrid(4, 4, 1.0, 3.0)
	eq := CoreEquation{Theta: 1, Gamma: 0, Nu: 0.01}
	stb, _ := NewStab("jump", eq, 0, 1)

	ntot := 2*g.Nedge + g.Ncell
	x := make([]float64, ntot)
	for e := 0; e < g.Nedge; e++ {
		mx, my := g.EdgeMid(e)
		x[e] = 0.7 - 1.3*mx + 0.4*my
		x[g.Nedge+e] = -0.2 + 0.9*mx - 2.1*my
	}
	y := make([]float64, ntot)
	stb.AddDefect(g, nil, x, y, 1)
	for i := range y {
		chk.Scalar(tst, "penalty on a linear field", 1e-14, y[i], 0)
	}

	// quadratic fields are penalized
	for e := 0; e < g.Nedge; e++ {
		mx, my := g.EdgeMid(e)
		x[e] = mx*mx + my*my
	}
	y = make([]float64, ntot)
	stb.AddDefect(g, nil, x, y, 1)
	sum := 0.0
	for _, v := range y {
		sum += v * v
	}
	if sum < 1e-12 {
		tst.Errorf("quadratic field must be penalized\n")
		return
	}
}

func Test_stab05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stab05. linear transport at constant velocity")

	g := sys.NewGrid(5, 4, 1.0, 1.0)
	eq := CoreEquation{Theta: 1, Gamma: 1, Nu: 0.01}
	stb, _ := NewStab("supg", eq, 1, 0)

	// constant velocity field (a,b) and linear scalar c0 + c1 x + c2 y
	a, b := 0.8, -0.3
	c1, c2 := 1.7, 0.6
	ntot := 2*g.Nedge + g.Ncell
	w := make([]float64, ntot)
	x := make([]float64, ntot)
	for e := 0; e < g.Nedge; e++ {
		mx, my := g.EdgeMid(e)
		w[e], w[g.Nedge+e] = a, b
		x[e] = 0.5 + c1*mx + c2*my
	}
	y := make([]float64, ntot)
	stb.AddDefect(g, w, x, y, 1)

	// interior rows carry the exact weak transport (a c1 + b c2) ∫ Sm
	want := (a*c1 + b*c2) * g.Hx * g.Hy / 2.0
	for e := 0; e < g.Nedge; e++ {
		if g.OnBoundary(e) {
			continue
		}
		chk.Scalar(tst, io.Sf("transport row %d", e), 1e-13, y[e], want)
	}
}
