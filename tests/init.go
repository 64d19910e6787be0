// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tests

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/goflow/mg"
	"github.com/cpmech/goflow/slv"
	"github.com/cpmech/goflow/sys"
)

func init() {
	io.Verbose = false
}

func Verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// RunSim reads the simulation file, wires the hierarchy, the assembler and
// the preconditioner, and runs one nonlinear solve from a zero start
func RunSim(simfilepath string, erasefiles bool) (sim *inp.Simulation, levs []*sys.Level, sol *slv.Solver, x []float64, err error) {
	sim, err = inp.ReadSim(simfilepath, erasefiles)
	if err != nil {
		return
	}
	a, err := sim.Assembler()
	if err != nil {
		return
	}
	box, err := sim.Box()
	if err != nil {
		return
	}
	levs = box.Levels()
	prec, err := mg.New(sim.PrecondParams())
	if err != nil {
		return
	}
	sol, err = slv.NewSolver(levs, a, prec, sim.Nonlinear, sim.Data.ShowR && chk.Verbose)
	if err != nil {
		return
	}
	top := levs[len(levs)-1]
	x = make([]float64, top.Ntot())
	b := make([]float64, top.Ntot())
	err = sol.Solve(x, b)
	return
}
