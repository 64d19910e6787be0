// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goflow/inp"
	"github.com/cpmech/goflow/out"
)

// readSummary loads the saved summary of one simulation
func readSummary(simfn string) (*out.Summary, string) {
	if simfn == "" {
		return nil, ""
	}
	if io.FnExt(simfn) == "" {
		simfn += ".sim"
	}
	sim, err := inp.ReadSim(simfn, false)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	sum, err := out.ReadSum(sim.DirOut, sim.Key)
	if err != nil {
		chk.Panic("cannot read summary (did the simulation run?):\n%v", err)
	}
	return sum, sim.Key
}

// countIters returns the number of iterations of each solve in a history
func countIters(resids *utl.DblSlist) (N []float64) {
	P := resids.Ptrs
	for i := 0; i < len(P)-1; i++ {
		N = append(N, float64(P[i+1]-P[i]-1))
	}
	return
}

// printResids prints one residual history, one line per solve
func printResids(resids *utl.DblSlist) {
	P := resids.Ptrs
	for i := 0; i < len(P)-1; i++ {
		for j := P[i]; j < P[i+1]; j++ {
			io.Pf("%10.2e", resids.Vals[j])
		}
		io.Pf("\n")
	}
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	simfnA, _ := io.ArgToFilename(0, "cavity4", ".sim", true)
	simfnB, _ := io.ArgToFilename(1, "", ".sim", false)
	labelA := io.ArgToString(2, "")
	labelB := io.ArgToString(3, "")

	// print input data
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"simulation filename", "simfnA", simfnA,
		"simulation filename for comparison", "simfnB", simfnB,
		"label for histogram", "labelA", labelA,
		"label for histogram", "labelB", labelB,
	))

	// read residuals
	sumA, fnkA := readSummary(simfnA)
	sumB, fnkB := readSummary(simfnB)

	// residuals: it => residuals
	io.Pf("\nResiduals A\n")
	io.Pf("===========\n")
	printResids(&sumA.Resids)
	if sumB != nil {
		io.Pf("\nResiduals B\n")
		io.Pf("===========\n")
		printResids(&sumB.Resids)
	}
	io.Pf("\n")

	// plot convergence curves
	out.PlotResid(sumA, "/tmp/goflow", "residplot_"+fnkA+"_curves.eps")
	if sumB != nil {
		out.PlotResid(sumB, "/tmp/goflow", "residplot_"+fnkB+"_curves.eps")
	}

	// plot histogram of iteration counts
	X := [][]float64{countIters(&sumA.Resids)}
	labels := []string{fnkA}
	if labelA != "" {
		labels[0] = labelA
	}
	if sumB != nil {
		X = append(X, countIters(&sumB.Resids))
		labels = append(labels, fnkB)
		if labelB != "" {
			labels[1] = labelB
		}
	}
	plt.Reset()
	plt.SetForEps(0.75, 300)
	plt.Hist(X, labels, "")
	plt.Gll("number of iterations", "counts", "")
	plt.SaveD("/tmp/goflow", "residplot_"+fnkA+"_"+fnkB+"_hist.eps")
}