// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/goflow/out"
	"github.com/cpmech/goflow/slv"
	"github.com/cpmech/goflow/tests"
)

// wall profiles of the unit-lid cavity
func ubc(side string, x, y float64) float64 {
	if side == "top" {
		return 1.0
	}
	return 0
}

func vbc(side string, x, y float64) float64 { return 0 }

func Test_cavity01(tst *testing.T) {

	/* Enclosed box, the top wall sliding with u=1
	 *
	 *      →   →   →
	 *    o---o---o---o
	 *    |           |
	 *    o           o    no-slip on the
	 *    |           |    other three walls
	 *    o           o
	 *    |           |
	 *    o---o---o---o
	 *
	 * gamma=0 keeps the operator linear, so the single correction from the
	 * dense factorization removes the whole defect and the next iteration
	 * only confirms it
	 */

	//tests.Verbose()
	chk.PrintTitle("cavity01. Stokes cavity, direct preconditioner")

	_, levs, sol, x, err := tests.RunSim("data/cavstk.sim", true)
	if err != nil {
		tst.Errorf("simulation failed:\n%v\n", err)
		return
	}
	defer sol.Free()

	// convergence in one effective iteration
	if sol.Status != slv.Converged {
		tst.Errorf("status must be converged. %v is invalid\n", sol.Status)
		return
	}
	if sol.It != 2 {
		tst.Errorf("one correction must suffice on a linear problem. It=%d\n", sol.It)
		return
	}
	if len(sol.Hist.Vals) != sol.It+1 {
		tst.Errorf("history must carry It+1 entries: %d\n", len(sol.Hist.Vals))
		return
	}
	if sol.Hist.Vals[1] > 1e-10 {
		tst.Errorf("first correction left a defect of %g\n", sol.Hist.Vals[1])
		return
	}
	if sol.Asm.Ncalls != 1 {
		tst.Errorf("gamma=0 must assemble exactly once. Ncalls=%d\n", sol.Asm.Ncalls)
		return
	}

	// solution
	lev := levs[len(levs)-1]
	chk.Scalar(tst, "max |u| on the lid", 1e-14, la.VecLargest(x[:lev.K.Nu], 1), 1.0)
	tests.CheckWalls(tst, lev, x, ubc, vbc, 1e-14)
	tests.CheckEnclosedPressure(tst, lev, x, 1e-12)
}

func Test_cavity02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("cavity02. Re=10 cavity, multigrid preconditioner")

	sim, levs, sol, x, err := tests.RunSim("data/cavns.sim", true)
	if err != nil {
		tst.Errorf("simulation failed:\n%v\n", err)
		return
	}
	defer sol.Free()

	// nonlinear convergence
	if sol.Status != slv.Converged {
		tst.Errorf("status must be converged. %v is invalid\n", sol.Status)
		return
	}
	if sol.It < 2 || sol.It > 30 {
		tst.Errorf("unexpected iteration count: %d\n", sol.It)
		return
	}
	if sol.Asm.Ncalls != 1+2*sol.It {
		tst.Errorf("each iteration must assemble twice: It=%d Ncalls=%d\n", sol.It, sol.Asm.Ncalls)
		return
	}
	if sol.Res[0] > 1e-6 {
		tst.Errorf("momentum residual must honor the tolerance: %g\n", sol.Res[0])
		return
	}
	if !(sol.Rho > 0 && sol.Rho < 1) {
		tst.Errorf("convergence rate must sit in (0,1): %g\n", sol.Rho)
		return
	}

	// interlevel filters keep the walls exact
	lev := levs[len(levs)-1]
	tests.CheckWalls(tst, lev, x, ubc, vbc, 1e-14)
	tests.CheckEnclosedPressure(tst, lev, x, 1e-10)

	// reporting round trip
	out.Start(sim, levs, sol, x)
	out.Report()
	sum := out.NewSummary()
	if err = sum.Save(); err != nil {
		tst.Errorf("cannot save summary:\n%v\n", err)
		return
	}
	rs, err := out.ReadSum(sim.DirOut, sim.Key)
	if err != nil {
		tst.Errorf("cannot read summary back:\n%v\n", err)
		return
	}
	chk.String(tst, rs.Status, "converged")
	if rs.Niter != sol.It {
		tst.Errorf("saved iteration count differs: %d != %d\n", rs.Niter, sol.It)
		return
	}
	chk.Vector(tst, "saved residuals", 1e-15, rs.Res, sol.Res[:])
}