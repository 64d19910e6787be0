// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements helpers to test complete flow simulations
package tests

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goflow/sys"
)

// CheckEnclosedPressure asserts that the pressure of a fully enclosed
// problem came out zero-mean
func CheckEnclosedPressure(tst *testing.T, lev *sys.Level, x []float64, tol float64) {
	nu := lev.K.Nu
	mean := 0.0
	for _, pt := range x[2*nu:lev.Ntot()] {
		mean += pt
	}
	mean /= float64(lev.Grid.Ncell)
	if math.Abs(mean) > tol {
		tst.Errorf("cell pressures must have zero mean: %g\n", mean)
	}
}

// CheckWalls asserts that the solved velocities still honor the prescribed
// boundary values on every Dirichlet edge
func CheckWalls(tst *testing.T, lev *sys.Level, x []float64, ubc, vbc func(side string, x, y float64) float64, tol float64) {
	g := lev.Grid
	nu := lev.K.Nu
	for e := 0; e < g.Nedge; e++ {
		side := g.Side(e)
		if side == "" {
			continue
		}
		xm, ym := g.EdgeMid(e)
		if lev.Ebc.UMask[e] {
			chk.AnaNum(tst, "u at wall", tol, x[e], ubc(side, xm, ym), false)
		}
		if lev.Ebc.VMask[e] {
			chk.AnaNum(tst, "v at wall", tol, x[nu+e], vbc(side, xm, ym), false)
		}
	}
}
