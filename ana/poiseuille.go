// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// PlanePoiseuille computes the steady pressure-driven flow between two
// fixed walls:
//
//	        o--------------------o
//	        |  →                 |
//	   H    |    →→         ⇒    |      u(y) = 4・umax・y・(H-y)/H²
//	        |  →                 |      v    = 0
//	        o--------------------o      dp/dx = -8・ν・umax/H²
//	                 L
//
// The parabola is NOT contained in the rotated-bilinear edge space, so a
// discrete solve driven by the inflow profile carries an O(h²) consistency
// error; Check tolerances must account for it.
type PlanePoiseuille struct {
	Umax float64 // centerline speed
	H    float64 // distance between the walls
	L    float64 // channel length
	Nu   float64 // kinematic viscosity
}

// Init initialises this structure
func (o *PlanePoiseuille) Init(umax, H, L, nu float64) {
	o.Umax = umax
	o.H = H
	o.L = L
	o.Nu = nu
}

// VelX computes the horizontal velocity at elevation y
func (o PlanePoiseuille) VelX(y float64) float64 {
	return 4.0 * o.Umax * y * (o.H - y) / (o.H * o.H)
}

// Gradient computes the (constant) streamwise pressure gradient
func (o PlanePoiseuille) Gradient() float64 {
	return -8.0 * o.Nu * o.Umax / (o.H * o.H)
}

// Pressure computes the pressure at station x, zero at the outflow
func (o PlanePoiseuille) Pressure(x float64) float64 {
	return o.Gradient() * (x - o.L)
}

// Rate computes the volumetric flow rate per unit depth
func (o PlanePoiseuille) Rate() float64 {
	return 2.0 * o.Umax * o.H / 3.0
}

// MaxErrorU computes the largest pointwise velocity error of a sampled
// profile at the section stations Y
func (o PlanePoiseuille) MaxErrorU(Y, u []float64) (e float64) {
	for i, y := range Y {
		if d := math.Abs(u[i] - o.VelX(y)); d > e {
			e = d
		}
	}
	return
}
