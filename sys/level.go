// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

// Level holds one grid level of the hierarchy: the constant operators built
// at setup time, the linearized block system rebuilt every nonlinear
// iteration, the Dirichlet filter set, and the solution interpolated down
// from the finer level for assembling the linearization.
type Level struct {
	Num  int   // level number (coarsest numbered lowest)
	Grid *Grid // geometry and DOF numbering

	// constant operators (never touched by linearization or filters)
	St *Matrix // scalar diffusion operator (Nedge x Nedge), viscosity excluded
	M  *Matrix // scalar mass matrix (Nedge x Nedge)
	B1 *Matrix // x pressure coupling (Nedge x Ncell)
	B2 *Matrix // y pressure coupling (Nedge x Ncell)

	// linear system and filters
	K   *BlockMatrix
	Ebc *EssentialBcs

	// scratch
	Wsol []float64 // system-sized solution on this level
}

// NewLevel wires one level. The velocity-block sparsity pattern of K is the
// union of the diffusion and mass patterns plus the optional extra pattern
// (for example edge-jump couplings); it is frozen here once so downstream
// symbolic factorizations stay valid. K gets its own coupling-block values
// because the Dirichlet filter zeroes rows there, while the pristine B1/B2
// keep driving defect computations.
func NewLevel(num int, g *Grid, st, m, b1, b2 *Matrix, ebc *EssentialBcs, extra *Matrix) (o *Level) {
	o = new(Level)
	o.Num = num
	o.Grid = g
	o.St, o.M = st, m
	o.B1, o.B2 = b1, b2
	o.Ebc = ebc

	// velocity block pattern
	a11 := NewMatrix(g.Nedge, g.Nedge)
	seed := func(src *Matrix) {
		if src == nil {
			return
		}
		nrows, _ := src.Dims()
		for i := 0; i < nrows; i++ {
			cols, _ := src.Row(i)
			for _, j := range cols {
				a11.Put(i, j, 0)
			}
		}
	}
	seed(st)
	seed(m)
	seed(extra)
	a11.Compress()

	// second velocity block
	var a22 *Matrix
	if ebc.Decoupled() {
		a22 = a11.Clone(DupShareStruct)
	} else {
		a22 = a11.Clone(DupShareAll)
	}

	o.K = &BlockMatrix{
		Nu:    g.Nedge,
		Np:    g.Ncell,
		A11:   a11,
		A22:   a22,
		B1:    b1.Clone(DupCopy),
		B2:    b2.Clone(DupCopy),
		PLock: ebc.PLock(),
	}
	o.Wsol = make([]float64, o.Ntot())
	return
}

// Ntot returns the total number of equations on this level
func (o *Level) Ntot() int {
	return 2*o.Grid.Nedge + o.Grid.Ncell
}
