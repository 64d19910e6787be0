// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions to steady flow benchmarks
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goflow/sys"
)

// PlaneCouette computes the steady shear flow between two parallel walls,
// the top one sliding with speed U:
//
//	 u = U  →→→→→→→→→→→
//	        o---------o
//	        |      →  |
//	   H    |    →    |      u(y) = U・y/H
//	        |  →      |      v    = 0
//	        o---------o      p    = constant
//	 u = 0
//
// The profile is linear, hence contained in the rotated-bilinear edge space:
// a discrete solve with the exact profile prescribed on the whole boundary
// reproduces it at machine precision on any grid.
type PlaneCouette struct {
	U  float64 // speed of the sliding wall
	H  float64 // distance between the walls
	Nu float64 // kinematic viscosity
}

// Init initialises this structure
func (o *PlaneCouette) Init(U, H, nu float64) {
	o.U = U
	o.H = H
	o.Nu = nu
}

// VelX computes the horizontal velocity at elevation y
func (o PlaneCouette) VelX(y float64) float64 {
	return o.U * y / o.H
}

// Shear computes the (constant) wall shear stress
func (o PlaneCouette) Shear() float64 {
	return o.Nu * o.U / o.H
}

// Rate computes the volumetric flow rate per unit depth
func (o PlaneCouette) Rate() float64 {
	return o.U * o.H / 2.0
}

// Profile returns the boundary condition function driving this flow on a box
func (o PlaneCouette) Profile() func(side string, x, y float64) float64 {
	return func(side string, x, y float64) float64 { return o.VelX(y) }
}

// CheckFlow compares a discrete solution on lev against the exact flow.
// The pressure is constant and zero-mean, hence zero.
func (o PlaneCouette) CheckFlow(tst *testing.T, lev *sys.Level, x []float64, tol, tolp float64) {
	g := lev.Grid
	nu := lev.K.Nu
	uana := make([]float64, nu)
	vana := make([]float64, nu)
	for e := 0; e < g.Nedge; e++ {
		_, y := g.EdgeMid(e)
		uana[e] = o.VelX(y)
	}
	chk.Vector(tst, "u", tol, x[:nu], uana)
	chk.Vector(tst, "v", tol, x[nu:2*nu], vana)
	pana := make([]float64, lev.Ntot()-2*nu)
	chk.Vector(tst, "p", tolp, x[2*nu:lev.Ntot()], pana)
}
