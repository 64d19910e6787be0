// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm assembles the linearized velocity operator
//   A(w) = Alpha*M + Theta*Nu*St + Gamma*N(w)
// on every level of a grid hierarchy, with pluggable convection
// stabilization, and rebuilds anisotropic coarse operators from the fine
// ones when adaptive restriction is enabled.
package asm

// CoreEquation holds the scalar weights selecting the flow equation variant.
// Stationary Stokes: Alpha=0, Theta=1, Gamma=0. Stationary Navier-Stokes:
// Alpha=0, Theta=1, Gamma=1. Time-stepping schemes use nonzero Alpha.
// The values are fixed for the whole of one nonlinear solve.
type CoreEquation struct {
	Alpha float64 // mass weight
	Theta float64 // diffusion weight
	Gamma float64 // convection weight
	Nu    float64 // kinematic viscosity
}
