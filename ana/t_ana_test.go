// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// simpson integrates f over [a,b] with n panels (n even)
func simpson(f func(float64) float64, a, b float64, n int) (res float64) {
	h := (b - a) / float64(n)
	res = f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			res += 4.0 * f(x)
		} else {
			res += 2.0 * f(x)
		}
	}
	return res * h / 3.0
}

func Test_couette01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("couette01. plane Couette flow")

	var cou PlaneCouette
	cou.Init(2.0, 0.5, 0.1)

	chk.Scalar(tst, "u(0)", 1e-17, cou.VelX(0), 0)
	chk.Scalar(tst, "u(H)", 1e-17, cou.VelX(cou.H), cou.U)
	chk.Scalar(tst, "u(H/2)", 1e-15, cou.VelX(cou.H/2), cou.U/2)
	chk.Scalar(tst, "tau", 1e-15, cou.Shear(), 0.4)
	chk.Scalar(tst, "Q", 1e-15, cou.Rate(), simpson(cou.VelX, 0, cou.H, 10))

	ubc := cou.Profile()
	chk.Scalar(tst, "profile at wall", 1e-17, ubc("left", 0, 0), 0)
	chk.Scalar(tst, "profile at lid", 1e-15, ubc("right", 1, cou.H), cou.U)
}

func Test_poiseuille01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poiseuille01. plane Poiseuille flow")

	var poi PlanePoiseuille
	poi.Init(1.5, 1.0, 4.0, 0.1)

	// profile
	chk.Scalar(tst, "u(0)", 1e-17, poi.VelX(0), 0)
	chk.Scalar(tst, "u(H)", 1e-15, poi.VelX(poi.H), 0)
	chk.Scalar(tst, "u(H/2)", 1e-15, poi.VelX(poi.H/2), poi.Umax)
	for _, y := range []float64{0.1, 0.25, 0.4} {
		chk.Scalar(tst, io.Sf("symmetry at %g", y), 1e-15, poi.VelX(y), poi.VelX(poi.H-y))
	}

	// flow rate against quadrature (exact for a parabola)
	chk.Scalar(tst, "Q", 1e-14, poi.Rate(), simpson(poi.VelX, 0, poi.H, 4))

	// momentum balance: nu・u'' equals the pressure gradient
	h := 1e-4
	for _, y := range []float64{0.2, 0.5, 0.8} {
		d2u := (poi.VelX(y+h) - 2.0*poi.VelX(y) + poi.VelX(y-h)) / (h * h)
		chk.Scalar(tst, io.Sf("nu u'' at %g", y), 1e-6, poi.Nu*d2u, poi.Gradient())
	}

	// pressure drop
	chk.Scalar(tst, "p(L)", 1e-17, poi.Pressure(poi.L), 0)
	chk.Scalar(tst, "p(0)", 1e-15, poi.Pressure(0), -poi.Gradient()*poi.L)

	// exact samples have zero error
	np := 11
	Y := utl.LinSpace(0, poi.H, np)
	u := make([]float64, np)
	for i, y := range Y {
		u[i] = poi.VelX(y)
	}
	chk.Scalar(tst, "max error of exact samples", 1e-17, poi.MaxErrorU(Y, u), 0)

	if chk.Verbose {
		plt.Reset()
		plt.SetForEps(0.75, 250)
		plt.Plot(u, Y, "'b-', marker='o', label='u(y)'")
		plt.Gll("$u$", "$y$", "")
		plt.SaveD("/tmp/goflow", "fig_poiseuille01.eps")
	}
}
