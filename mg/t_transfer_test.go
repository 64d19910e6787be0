// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mg

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
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

// fillConst writes constant component values into a system-sized vector
func fillConst(g *sys.Grid, x []float64, cu, cv, cp float64) {
	for e := 0; e < g.Nedge; e++ {
		x[e] = cu
		x[g.Nedge+e] = cv
	}
	for t := 0; t < g.Ncell; t++ {
		x[2*g.Nedge+t] = cp
	}
}

func Test_tran01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tran01. transfers preserve constants")

	cg := sys.NewGrid(3, 2, 3.0, 1.0)
	fg := cg.Refine()
	coarse := make([]float64, 2*cg.Nedge+cg.Ncell)
	fine := make([]float64, 2*fg.Nedge+fg.Ncell)

	fillConst(cg, coarse, 1.5, -2.5, 3.25)
	Prolongate(fg, fine, cg, coarse)
	want := make([]float64, len(fine))
	fillConst(fg, want, 1.5, -2.5, 3.25)
	chk.Vector(tst, "prolongated constants", 1e-15, fine, want)

	fillConst(fg, fine, -0.25, 0.75, 2.0)
	Interpolate(cg, coarse, fg, fine)
	wantc := make([]float64, len(coarse))
	fillConst(cg, wantc, -0.25, 0.75, 2.0)
	chk.Vector(tst, "interpolated constants", 1e-15, coarse, wantc)
}

func Test_tran02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tran02. transfers reproduce linear fields")

	cg := sys.NewGrid(2, 3, 2.0, 1.5)
	fg := cg.Refine()
	lin := func(g *sys.Grid, x []float64) {
		for e := 0; e < g.Nedge; e++ {
			xm, ym := g.EdgeMid(e)
			x[e] = 0.3 + 1.2*xm - 0.7*ym
			x[g.Nedge+e] = -0.8 + 0.5*xm + 0.9*ym
		}
		for t := 0; t < g.Ncell; t++ {
			x[2*g.Nedge+t] = 0
		}
	}
	coarse := make([]float64, 2*cg.Nedge+cg.Ncell)
	fine := make([]float64, 2*fg.Nedge+fg.Ncell)
	want := make([]float64, len(fine))

	// the interpolant of a linear field is the field itself, and averaging
	// two equal traces changes nothing
	lin(cg, coarse)
	lin(fg, want)
	Prolongate(fg, fine, cg, coarse)
	chk.Vector(tst, "prolongated linear field", 1e-14, fine, want)

	lin(fg, fine)
	wantc := make([]float64, len(coarse))
	lin(cg, wantc)
	Interpolate(cg, coarse, fg, fine)
	chk.Vector(tst, "interpolated linear field", 1e-14, coarse, wantc)
}

func Test_tran03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tran03. restriction is the transpose of prolongation")

	cg := sys.NewGrid(3, 2, 1.0, 2.0)
	fg := cg.Refine()
	nc := 2*cg.Nedge + cg.Ncell
	nf := 2*fg.Nedge + fg.Ncell

	rnd.Init(0)
	c := make([]float64, nc)
	f := make([]float64, nf)
	for i := range c {
		c[i] = rnd.Float64(-1, 1)
	}
	for i := range f {
		f[i] = rnd.Float64(-1, 1)
	}

	pc := make([]float64, nf)
	rf := make([]float64, nc)
	Prolongate(fg, pc, cg, c)
	Restrict(cg, rf, fg, f)
	chk.Scalar(tst, "<P c, f> == <c, R f>", 1e-13, la.VecDot(pc, f), la.VecDot(c, rf))

	levs := []*sys.Level{
		{Num: 0, Grid: cg},
		{Num: 1, Grid: fg},
	}
	if TempSize(levs) != nf {
		tst.Errorf("TempSize must return the finest equation count\n")
		return
	}
}
