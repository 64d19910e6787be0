// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. nodal values and partition of unity")

	// delta property at edge midpoints
	s := make([]float64, 4)
	for n := 0; n < 4; n++ {
		Func(s, NatCoords[n][0], NatCoords[n][1])
		for m := 0; m < 4; m++ {
			if n == m {
				chk.Scalar(tst, io.Sf("S%d @ node %d", m, n), 1e-17, s[m], 1.0)
			} else {
				chk.Scalar(tst, io.Sf("S%d @ node %d", m, n), 1e-17, s[m], 0.0)
			}
		}
	}

	// partition of unity at interior points
	pts := [][]float64{{0, 0}, {0.3, -0.7}, {-0.9, 0.2}, {0.577, 0.577}}
	for _, p := range pts {
		Func(s, p[0], p[1])
		sum := s[0] + s[1] + s[2] + s[3]
		chk.Scalar(tst, io.Sf("ΣS @ (%g,%g)", p[0], p[1]), 1e-15, sum, 1.0)
	}

	// linear fields are reproduced exactly
	u4 := make([]float64, 4)
	a, b, c := 0.8, -1.2, 2.5 // u = a + b ξ + c η
	for e := 0; e < 4; e++ {
		u4[e] = a + b*NatCoords[e][0] + c*NatCoords[e][1]
	}
	for _, p := range pts {
		chk.Scalar(tst, "linear interp", 1e-14, Eval(u4, p[0], p[1]), a+b*p[0]+c*p[1])
	}
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02. derivatives vs finite differences")

	pts := [][]float64{{0, 0}, {0.5, 0.5}, {-0.3, 0.8}, {0.9, -0.9}}
	dξ := make([]float64, 4)
	dη := make([]float64, 4)
	stmp := make([]float64, 4)
	for _, p := range pts {
		Deriv(dξ, dη, p[0], p[1])
		for n := 0; n < 4; n++ {
			nn := n
			dnum, _ := num.DerivCentral(func(t float64, args ...interface{}) (Sn float64) {
				Func(stmp, t, p[1])
				Sn = stmp[nn]
				return
			}, p[0], 1e-1)
			if math.Abs(dξ[n]-dnum) > 1e-10 {
				tst.Errorf("dS%d/dξ failed with err = %g\n", n, math.Abs(dξ[n]-dnum))
				return
			}
			dnum, _ = num.DerivCentral(func(t float64, args ...interface{}) (Sn float64) {
				Func(stmp, p[0], t)
				Sn = stmp[nn]
				return
			}, p[1], 1e-1)
			if math.Abs(dη[n]-dnum) > 1e-10 {
				tst.Errorf("dS%d/dη failed with err = %g\n", n, math.Abs(dη[n]-dnum))
				return
			}
		}
	}
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03. local matrices: closed forms vs quadrature")

	hx, hy := 0.7, 0.3
	k := la.MatAlloc(4, 4)
	m := la.MatAlloc(4, 4)
	StiffLoc(k, hx, hy)
	MassLoc(m, hx, hy)

	// quadrature versions
	knum := la.MatAlloc(4, 4)
	mnum := la.MatAlloc(4, 4)
	dξ := make([]float64, 4)
	dη := make([]float64, 4)
	s := make([]float64, 4)
	w := hx * hy / 4.0
	for _, gp := range GaussPts {
		Func(s, gp[0], gp[1])
		Deriv(dξ, dη, gp[0], gp[1])
		for i := 0; i < 4; i++ {
			gxi := dξ[i] * 2.0 / hx
			gyi := dη[i] * 2.0 / hy
			for j := 0; j < 4; j++ {
				gxj := dξ[j] * 2.0 / hx
				gyj := dη[j] * 2.0 / hy
				knum[i][j] += w * (gxi*gxj + gyi*gyj)
				mnum[i][j] += w * s[i] * s[j]
			}
		}
	}
	chk.Deep2(tst, "K: closed-form vs 2x2 Gauss", 1e-14, k, knum)

	// the mass basis is not integrated exactly by 2x2 Gauss (ξ⁴ and η⁴ terms);
	// check row sums against ∫Si dΩ = hx*hy/4 instead and symmetry entrywise
	for i := 0; i < 4; i++ {
		sum := 0.0
		for j := 0; j < 4; j++ {
			sum += m[i][j]
			chk.Scalar(tst, io.Sf("M%d%d symm", i, j), 1e-17, m[i][j], m[j][i])
		}
		chk.Scalar(tst, io.Sf("ΣM row %d", i), 1e-15, sum, hx*hy/4.0)
	}

	// stiffness row sums vanish (constants in the basis)
	for i := 0; i < 4; i++ {
		sum := 0.0
		for j := 0; j < 4; j++ {
			sum += k[i][j]
		}
		chk.Scalar(tst, io.Sf("ΣK row %d", i), 1e-14, sum, 0.0)
	}

	// divergence integrals vs quadrature
	for e := 0; e < 4; e++ {
		gx, gy := 0.0, 0.0
		for _, gp := range GaussPts {
			Deriv(dξ, dη, gp[0], gp[1])
			gx += w * dξ[e] * 2.0 / hx
			gy += w * dη[e] * 2.0 / hy
		}
		chk.Scalar(tst, io.Sf("∫dS%d/dx", e), 1e-14, gx, DivX[e]*hy)
		chk.Scalar(tst, io.Sf("∫dS%d/dy", e), 1e-14, gy, DivY[e]*hx)
	}
}
