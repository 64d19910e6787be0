// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goflow/ana"
	"github.com/cpmech/goflow/out"
	"github.com/cpmech/goflow/slv"
	"github.com/cpmech/goflow/tests"
)

// wall profiles of the channel: parabolic inflow on the left, no-slip top
// and bottom, natural outflow on the right
func ubc(side string, x, y float64) float64 {
	if side == "left" {
		return 4 * y * (1 - y)
	}
	return 0
}

func vbc(side string, x, y float64) float64 { return 0 }

func Test_channel01(tst *testing.T) {

	/* Wall-bounded channel, 4:1 box
	 *
	 *    o---o---o---o---o---o---o---o---o
	 *    |          no-slip              |
	 *    →
	 *    →  parabolic inflow        free outflow
	 *    →
	 *    |          no-slip              |
	 *    o---o---o---o---o---o---o---o---o
	 *
	 * every continuity row is retained (nothing is locked on a problem with
	 * a natural side), so the discrete flow rate through consecutive
	 * vertical sections telescopes to the inflow rate exactly
	 */

	//tests.Verbose()
	chk.PrintTitle("channel01. Stokes channel, mass conservation")

	sim, levs, sol, x, err := tests.RunSim("data/channel1.sim", true)
	if err != nil {
		tst.Errorf("simulation failed:\n%v\n", err)
		return
	}
	defer sol.Free()
	if sol.Status != slv.Converged {
		tst.Errorf("status must be converged. %v is invalid\n", sol.Status)
		return
	}
	if sol.It != 2 {
		tst.Errorf("one correction must suffice on a linear problem. It=%d\n", sol.It)
		return
	}
	if sol.Asm.Ncalls != 1 {
		tst.Errorf("gamma=0 must assemble exactly once. Ncalls=%d\n", sol.Asm.Ncalls)
		return
	}
	lev := levs[len(levs)-1]
	tests.CheckWalls(tst, lev, x, ubc, vbc, 1e-14)

	// prescribed inflow reproduced verbatim
	var pois ana.PlanePoiseuille
	pois.Init(1.0, 1.0, 4.0, 0.1)
	out.Start(sim, levs, sol, x)
	Y, uin := out.ProfileU(0)
	uana := make([]float64, len(Y))
	for j, y := range Y {
		uana[j] = pois.VelX(y)
	}
	chk.Vector(tst, "inflow profile", 1e-15, uin, uana)

	// flow rate equal through every vertical section
	q0 := out.SectionRate(0)
	for i := 1; i <= lev.Grid.Nx; i++ {
		if q := out.SectionRate(i); math.Abs(q-q0) > 1e-9 {
			tst.Errorf("section %d does not conserve mass: %g != %g\n", i, q, q0)
			return
		}
	}

	// mid-channel profile within the expected discretization error
	_, umid := out.ProfileU(2.0)
	if e := pois.MaxErrorU(Y, umid); e > 0.25 {
		tst.Errorf("mid-channel profile error too large: %g\n", e)
		return
	}

	// pressure decays monotonically toward the free outflow
	nu := lev.K.Nu
	jmid := lev.Grid.Ny / 2
	prev := math.Inf(1)
	for i := 0; i < lev.Grid.Nx; i++ {
		p := x[2*nu+lev.Grid.Cell(i, jmid)]
		if p >= prev {
			tst.Errorf("pressure must decrease along the channel: p[%d]=%g p[%d]=%g\n", i-1, prev, i, p)
			return
		}
		prev = p
	}
	if x[2*nu+lev.Grid.Cell(0, jmid)] <= 0 {
		tst.Errorf("inlet pressure must sit above the outlet level\n")
		return
	}
}

func Test_channel02(tst *testing.T) {

	//tests.Verbose()
	chk.PrintTitle("channel02. profile error decays under refinement")

	var pois ana.PlanePoiseuille
	pois.Init(1.0, 1.0, 4.0, 0.1)

	// coarse grid, direct preconditioner
	simA, levsA, solA, xA, err := tests.RunSim("data/channel1.sim", true)
	if err != nil {
		tst.Errorf("coarse simulation failed:\n%v\n", err)
		return
	}
	defer solA.Free()
	out.Start(simA, levsA, solA, xA)
	YA, uA := out.ProfileU(2.0)
	errA := pois.MaxErrorU(YA, uA)

	// refined grid, multigrid-accelerated Krylov preconditioner
	simB, levsB, solB, xB, err := tests.RunSim("data/channel2.sim", true)
	if err != nil {
		tst.Errorf("refined simulation failed:\n%v\n", err)
		return
	}
	defer solB.Free()
	if solB.Status != slv.Converged {
		tst.Errorf("status must be converged. %v is invalid\n", solB.Status)
		return
	}
	if solB.It != 2 {
		tst.Errorf("a tight Krylov correction must behave like a direct one. It=%d\n", solB.It)
		return
	}
	out.Start(simB, levsB, solB, xB)
	YB, uB := out.ProfileU(2.0)
	errB := pois.MaxErrorU(YB, uB)

	// the interpolation error of the parabola halves at least once per
	// refinement; second order halves it twice
	if errA > 1e-10 && errB > 0.6*errA+1e-12 {
		tst.Errorf("profile error must decay under refinement: %g -> %g\n", errA, errB)
		return
	}
	if errA > 0.25 {
		tst.Errorf("coarse profile error too large: %g\n", errA)
		return
	}

	// mass conservation holds on the refined hierarchy as well
	q0 := out.SectionRate(0)
	for i := 1; i <= levsB[len(levsB)-1].Grid.Nx; i++ {
		if q := out.SectionRate(i); math.Abs(q-q0) > 1e-9 {
			tst.Errorf("section %d does not conserve mass: %g != %g\n", i, q, q0)
			return
		}
	}
}