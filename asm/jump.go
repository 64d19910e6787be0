// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"github.com/cpmech/goflow/sys"
)

// JumpStab implements edge-jump penalty stabilization on top of the plain
// central Galerkin convection (the streamline weight is forced to zero).
// Across every interior edge the jump of the tangential derivative of the
// nonconforming interpolant is penalized with weight Djump*h². The penalty
// does not depend on the iterate, so it also serves as a standalone
// pure-diffusion stabilizer when Gamma=0.
type JumpStab struct {
	gam   float64
	nu    float64
	djump float64
}

func init() {
	stballocators["jump"] = func() Stabilization { return new(JumpStab) }
}

// Init sets the equation weights and the penalty parameter; dupsam is
// ignored since the central base carries no streamline term
func (o *JumpStab) Init(eq CoreEquation, dupsam, djump float64) {
	o.gam = eq.Gamma
	o.nu = eq.Nu
	o.djump = djump
}

// per-stencil weights of the two tangential-slope jumps. The interpolant's
// tangential derivative along an interior edge is linear: dS/dt = S + t*Q
// per adjacent cell; the first weight set spans the jump of S, the second
// the jump of Q. The shared edge DOF cancels out of the Q jump, leaving six
// active DOFs ordered {b1, t1, l1, b2, t2, r2} for a vertical edge between
// cells 1 (left) and 2 (right), and the x mirror for horizontal edges.
var (
	jmpS = [6]float64{-0.5, +0.5, 0, +0.5, -0.5, 0}
	jmpQ = [6]float64{+0.5, +0.5, -0.5, -0.5, -0.5, +0.5}
)

// forEachJumpStencil visits every interior edge with its six-DOF stencil and
// the edge length
func forEachJumpStencil(g *sys.Grid, fn func(dofs *[6]int, h float64)) {
	var dofs [6]int

	// vertical interior edges: tangential direction is y
	for j := 0; j < g.Ny; j++ {
		for i := 1; i < g.Nx; i++ {
			el := g.CellEdges(i-1, j)
			er := g.CellEdges(i, j)
			dofs[0], dofs[1], dofs[2] = el[0], el[2], el[3]
			dofs[3], dofs[4], dofs[5] = er[0], er[2], er[1]
			fn(&dofs, g.Hy)
		}
	}

	// horizontal interior edges: tangential direction is x
	for j := 1; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			eb := g.CellEdges(i, j-1)
			et := g.CellEdges(i, j)
			dofs[0], dofs[1], dofs[2] = eb[3], eb[1], eb[0]
			dofs[3], dofs[4], dofs[5] = et[3], et[1], et[2]
			fn(&dofs, g.Hx)
		}
	}
}

// JumpPattern returns the velocity coupling pattern of the edge-jump term.
// The stencil reaches across neighboring cells, beyond the diffusion
// pattern, so levels must fold it into the frozen operator pattern.
func JumpPattern(g *sys.Grid) (t *sys.Matrix) {
	t = sys.NewMatrix(g.Nedge, g.Nedge)
	forEachJumpStencil(g, func(dofs *[6]int, h float64) {
		for p := 0; p < 6; p++ {
			for q := 0; q < 6; q++ {
				t.Put(dofs[p], dofs[q], 0)
			}
		}
	})
	t.Compress()
	return
}

// AddMatrix accumulates Gamma*N(w) plus the edge-jump penalty into a
func (o *JumpStab) AddMatrix(g *sys.Grid, a *sys.Matrix, w []float64) {
	if o.gam != 0 {
		central := StreamDiff{gam: o.gam, nu: o.nu}
		central.AddMatrix(g, a, w)
	}
	if o.djump == 0 {
		return
	}
	forEachJumpStencil(g, func(dofs *[6]int, h float64) {
		cs := 4.0 * o.djump * h
		cq := 4.0 * o.djump * h / 3.0
		for p := 0; p < 6; p++ {
			for q := 0; q < 6; q++ {
				a.Put(dofs[p], dofs[q], cs*jmpS[p]*jmpS[q]+cq*jmpQ[p]*jmpQ[q])
			}
		}
	})
}

// AddDefect accumulates coef times (Gamma*N(w) + penalty) applied to x into
// y for both components
func (o *JumpStab) AddDefect(g *sys.Grid, w, x, y []float64, coef float64) {
	if o.gam != 0 {
		central := StreamDiff{gam: o.gam, nu: o.nu}
		central.AddDefect(g, w, x, y, coef)
	}
	if o.djump == 0 {
		return
	}
	ne := g.Nedge
	forEachJumpStencil(g, func(dofs *[6]int, h float64) {
		cs := 4.0 * o.djump * h
		cq := 4.0 * o.djump * h / 3.0
		for comp := 0; comp < 2; comp++ {
			off := comp * ne
			ds, dq := 0.0, 0.0
			for p := 0; p < 6; p++ {
				ds += jmpS[p] * x[off+dofs[p]]
				dq += jmpQ[p] * x[off+dofs[p]]
			}
			for p := 0; p < 6; p++ {
				y[off+dofs[p]] += coef * (cs*jmpS[p]*ds + cq*jmpQ[p]*dq)
			}
		}
	})
}

// ExtraPattern returns the jump coupling pattern
func (o *JumpStab) ExtraPattern(g *sys.Grid) *sys.Matrix {
	return JumpPattern(g)
}
