// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotResid draws the total-residual history of each solve recorded in sum,
// in log scale against the iteration number, and saves the figure
func PlotResid(sum *Summary, dirout, fname string) {
	R := sum.Resids
	nsol := len(R.Ptrs) - 1
	plt.Reset()
	plt.SetForEps(0.75, 300)
	for i := 0; i < nsol; i++ {
		a, b := R.Ptrs[i], R.Ptrs[i+1]
		n := b - a
		Xi := utl.LinSpace(0, float64(n-1), n)
		Yi := make([]float64, n)
		for k := 0; k < n; k++ {
			Yi[k] = math.Log10(R.Vals[a+k])
		}
		plt.Plot(Xi, Yi, CurveStyles[i%len(CurveStyles)].GetArgs("clip_on=0"))
	}
	plt.Gll(GetTexLabel("iter", ""), GetTexLabel("restot", ""), "")
	plt.SaveD(dirout, fname)
}

// PlotProfilesU draws horizontal-velocity sections at the given stations and
// saves the figure
func PlotProfilesU(stations []float64, dirout, fname string) {
	sty := GetProfileStyles(stations)
	plt.Reset()
	plt.SetForEps(0.75, 300)
	for k, xs := range stations {
		Y, u := ProfileU(xs)
		plt.Plot(u, Y, sty[k].GetArgs("clip_on=0"))
	}
	plt.Gll(GetTexLabel("u", ""), "$y$", "")
	plt.SaveD(dirout, fname)
}
