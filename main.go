// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Goflow solves steady incompressible flow on rectangular boxes with the
// damped defect-correction method and geometric multigrid preconditioning.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/goflow/mg"
	"github.com/cpmech/goflow/out"
	"github.com/cpmech/goflow/slv"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
	}()

	// input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)
	doprof := io.ArgToInt(4, 0)

	// message
	if verbose {
		io.PfWhite("\nGoflow -- steady incompressible flow by defect correction\n")
		io.Pf("Copyright 2017 The Goflow Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"save summary", "saveSummary", saveSummary,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath, erasePrev)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}

	// hierarchy, assembler and preconditioner
	a, err := sim.Assembler()
	if err != nil {
		chk.Panic("cannot build assembler:\n%v", err)
	}
	box, err := sim.Box()
	if err != nil {
		chk.Panic("cannot build problem:\n%v", err)
	}
	levs := box.Levels()
	prec, err := mg.New(sim.PrecondParams())
	if err != nil {
		chk.Panic("cannot build preconditioner:\n%v", err)
	}
	sol, err := slv.NewSolver(levs, a, prec, sim.Nonlinear, verbose && sim.Data.ShowR)
	if err != nil {
		chk.Panic("cannot build solver:\n%v", err)
	}
	defer sol.Free()

	// run simulation
	top := levs[len(levs)-1]
	x := make([]float64, top.Ntot())
	b := make([]float64, top.Ntot())
	if err = sol.Solve(x, b); err != nil {
		chk.Panic("solve failed:\n%v", err)
	}

	// results
	out.Start(sim, levs, sol, x)
	if verbose {
		out.Report()
	}
	if saveSummary {
		if err = out.NewSummary().Save(); err != nil {
			chk.Panic("cannot save summary:\n%v", err)
		}
	}
	if sol.Status != slv.Converged {
		chk.Panic("simulation did not converge: %v after %d iterations", sol.Status, sol.It)
	}
}