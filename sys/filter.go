// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"github.com/cpmech/gosl/chk"
)

// EssentialBcs holds the Dirichlet velocity conditions of one level, one mask
// and value per component per edge DOF, plus the pressure-lock decision used
// on enclosed problems (no Neumann side anywhere).
type EssentialBcs struct {
	Grid       *Grid
	UMask      []bool    // x-velocity DOF is prescribed
	VMask      []bool    // y-velocity DOF is prescribed
	UVal       []float64 // prescribed x-velocity values
	VVal       []float64 // prescribed y-velocity values
	HasNeumann bool      // at least one boundary side is natural
	ForceSplit bool      // make A22 own its values even with identical masks
}

// NewEssentialBcs allocates the masks for one grid
func NewEssentialBcs(g *Grid, hasNeumann bool) (o *EssentialBcs) {
	o = new(EssentialBcs)
	o.Grid = g
	o.UMask = make([]bool, g.Nedge)
	o.VMask = make([]bool, g.Nedge)
	o.UVal = make([]float64, g.Nedge)
	o.VVal = make([]float64, g.Nedge)
	o.HasNeumann = hasNeumann
	return
}

// SetU prescribes the x-velocity at edge e
func (o *EssentialBcs) SetU(e int, v float64) {
	o.UMask[e] = true
	o.UVal[e] = v
}

// SetV prescribes the y-velocity at edge e
func (o *EssentialBcs) SetV(e int, v float64) {
	o.VMask[e] = true
	o.VVal[e] = v
}

// Decoupled tells whether the two velocity components carry different masks,
// in which case A22 must own its values instead of sharing A11's
func (o *EssentialBcs) Decoupled() bool {
	if o.ForceSplit {
		return true
	}
	for e := 0; e < o.Grid.Nedge; e++ {
		if o.UMask[e] != o.VMask[e] {
			return true
		}
	}
	return false
}

// Ndir returns the number of prescribed velocity DOFs
func (o *EssentialBcs) Ndir() (n int) {
	for e := 0; e < o.Grid.Nedge; e++ {
		if o.UMask[e] {
			n++
		}
		if o.VMask[e] {
			n++
		}
	}
	return
}

// PLock returns the pressure DOF to lock, or -1 when a Neumann side already
// fixes the pressure level
func (o *EssentialBcs) PLock() int {
	if o.HasNeumann {
		return -1
	}
	return 0
}

// ApplySolution writes the prescribed values into a system-sized solution
// vector [u, v, p]
func (o *EssentialBcs) ApplySolution(x []float64) {
	nu := o.Grid.Nedge
	for e := 0; e < nu; e++ {
		if o.UMask[e] {
			x[e] = o.UVal[e]
		}
		if o.VMask[e] {
			x[nu+e] = o.VVal[e]
		}
	}
}

// ApplyRhs writes the prescribed values into the Dirichlet rows of a
// system-sized right-hand side vector
func (o *EssentialBcs) ApplyRhs(b []float64) {
	o.ApplySolution(b)
}

// ApplyDefect zeroes the Dirichlet rows of a system-sized defect vector
func (o *EssentialBcs) ApplyDefect(d []float64) {
	nu := o.Grid.Nedge
	for e := 0; e < nu; e++ {
		if o.UMask[e] {
			d[e] = 0
		}
		if o.VMask[e] {
			d[nu+e] = 0
		}
	}
}

// ApplyK implements the Dirichlet conditions into the system matrix:
// prescribed rows of A11/A22 become unit rows and the matching rows of the
// coupling blocks are zeroed. The sparsity patterns are untouched, so
// symbolic factorizations remain valid.
func (o *EssentialBcs) ApplyK(K *BlockMatrix) {
	if K.A11.SharesValuesWith(K.A22) && o.Decoupled() {
		chk.Panic("A22 shares values with A11 but the velocity components have different masks")
	}
	for e := 0; e < o.Grid.Nedge; e++ {
		if o.UMask[e] {
			K.A11.SetUnitRow(e)
			K.B1.ZeroRow(e)
		}
		if o.VMask[e] {
			K.A22.SetUnitRow(e)
			K.B2.ZeroRow(e)
		}
	}
}

// ZeroMeanP subtracts the mean from a pressure vector. On enclosed problems
// the pressure is determined up to a constant only; solved pressures are
// re-centered with this.
func ZeroMeanP(p []float64) {
	if len(p) == 0 {
		return
	}
	mean := 0.0
	for _, v := range p {
		mean += v
	}
	mean /= float64(len(p))
	for i := range p {
		p[i] -= mean
	}
}
