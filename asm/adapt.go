// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/goflow/sys"
)

// adaptive coarse-operator kinds
const (
	AdaptOff       = "off"
	AdaptThreshold = "threshold"
)

// AdaptRestrict rebuilds coarse velocity operators from the next finer level
// by Galerkin projection with constant transfer. On strongly anisotropic
// grids the directly assembled coarse operator misrepresents the fine-grid
// couplings and degrades the multigrid preconditioner; the rebuilt operator
// follows the fine one instead. Defined for the edge-midpoint element family
// only; any other kind passes through untouched.
type AdaptRestrict struct {
	Kind string  // "off" or "threshold"
	Tol  float64 // aspect-ratio threshold
}

// Apply replaces the coarse velocity-operator values when the coarse grid's
// aspect ratio exceeds the threshold. The fine operator must hold the raw
// (unfiltered) values.
func (o AdaptRestrict) Apply(coarse, fine *sys.Level) {
	if o.Kind != AdaptThreshold {
		return
	}
	cg := coarse.Grid
	if cg.Kind != sys.KindEdgeMidpoint {
		return
	}
	if cg.Aspect() <= o.Tol {
		return
	}
	fg := fine.Grid
	a := coarse.K.A11
	fa := fine.K.A11
	a.Start()
	var pi, pj [2]int
	var wi, wj [2]float64
	for e := 0; e < fg.Nedge; e++ {
		ni := parentEdges(fg, cg, e, &pi, &wi)
		cols, vals := fa.Row(e)
		for k, col := range cols {
			nj := parentEdges(fg, cg, col, &pj, &wj)
			for p := 0; p < ni; p++ {
				for q := 0; q < nj; q++ {
					a.Put(pi[p], pj[q], 0.25*wi[p]*wj[q]*vals[k])
				}
			}
		}
	}
}

// parentEdges maps a fine edge onto its coarse parent edges under 2:1
// refinement. Fine edges on even grid lines coincide with a coarse edge
// (weight 1); fine edges on odd lines sit between two coarse edges and
// average them (weight 1/2 each). This transfer reproduces constants.
func parentEdges(fg, cg *sys.Grid, e int, pe *[2]int, wt *[2]float64) int {
	i, j := fg.EdgeIndices(e)
	if fg.IsVert(e) {
		jc := j / 2
		if i%2 == 0 {
			pe[0] = cg.VertEdge(i/2, jc)
			wt[0] = 1
			return 1
		}
		pe[0] = cg.VertEdge((i-1)/2, jc)
		pe[1] = cg.VertEdge((i+1)/2, jc)
		wt[0], wt[1] = 0.5, 0.5
		return 2
	}
	ic := i / 2
	if j%2 == 0 {
		pe[0] = cg.HorEdge(ic, j/2)
		wt[0] = 1
		return 1
	}
	pe[0] = cg.HorEdge(ic, (j-1)/2)
	pe[1] = cg.HorEdge(ic, (j+1)/2)
	wt[0], wt[1] = 0.5, 0.5
	return 2
}
