// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/goflow/sys"
)

func fillSentinel(a *sys.Matrix, val float64) {
	m, _ := a.Dims()
	for i := 0; i < m; i++ {
		cols, _ := a.Row(i)
		for _, j := range cols {
			a.Set(i, j, val)
		}
	}
}

func Test_adapt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adapt01. silent no-op cases")

	rnd.Init(0)
	cg := sys.NewGrid(1, 1, 1.0, 5.0)
	fg := cg.Refine()
	ebc := sys.NewEssentialBcs(cg, true)
	febc := sys.NewEssentialBcs(fg, true)
	clev := testLevel(0, cg, ebc, nil)
	flev := testLevel(1, fg, febc, nil)

	fillSentinel(clev.K.A11, 7.0)

	// disabled
	AdaptRestrict{Kind: AdaptOff}.Apply(clev, flev)
	chk.Scalar(tst, "disabled keeps values", 1e-17, clev.K.A11.Diag(0), 7.0)

	// aspect below threshold
	AdaptRestrict{Kind: AdaptThreshold, Tol: 10}.Apply(clev, flev)
	chk.Scalar(tst, "mild anisotropy keeps values", 1e-17, clev.K.A11.Diag(0), 7.0)

	// foreign element family
	clev.Grid.Kind = "taylor-hood"
	AdaptRestrict{Kind: AdaptThreshold, Tol: 2}.Apply(clev, flev)
	chk.Scalar(tst, "foreign family keeps values", 1e-17, clev.K.A11.Diag(0), 7.0)
}

func Test_adapt02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adapt02. Galerkin gather on an anisotropic pair")

	rnd.Init(7)
	cg := sys.NewGrid(1, 1, 1.0, 5.0)
	fg := cg.Refine()
	clev := testLevel(0, cg, sys.NewEssentialBcs(cg, true), nil)
	flev := testLevel(1, fg, sys.NewEssentialBcs(fg, true), nil)

	// random fine operator
	fa := flev.K.A11
	for i := 0; i < fg.Nedge; i++ {
		cols, _ := fa.Row(i)
		for _, j := range cols {
			fa.Set(i, j, rnd.Float64(-3, 3))
		}
	}

	AdaptRestrict{Kind: AdaptThreshold, Tol: 2}.Apply(clev, flev)

	// parent table of the 2x2 -> 1x1 pair, written out by hand: coarse edges
	// are 0 (left), 1 (right), 2 (bottom), 3 (top); fine vertical edges are
	// 0..5, fine horizontal edges 6..11
	type pw struct {
		p int
		w float64
	}
	ptab := [][]pw{
		{{0, 1}},
		{{0, 0.5}, {1, 0.5}},
		{{1, 1}},
		{{0, 1}},
		{{0, 0.5}, {1, 0.5}},
		{{1, 1}},
		{{2, 1}},
		{{2, 1}},
		{{2, 0.5}, {3, 0.5}},
		{{2, 0.5}, {3, 0.5}},
		{{3, 1}},
		{{3, 1}},
	}
	fd := fa.Dense()
	want := [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	for i := 0; i < fg.Nedge; i++ {
		for k := 0; k < fg.Nedge; k++ {
			for _, a := range ptab[i] {
				for _, b := range ptab[k] {
					want[a.p][b.p] += 0.25 * a.w * b.w * fd[i][k]
				}
			}
		}
	}
	chk.Deep2(tst, "gathered coarse operator", 1e-14, clev.K.A11.Dense(), want)
}
