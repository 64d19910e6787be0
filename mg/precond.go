// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mg implements the linear preconditioners of the defect-correction
// loop and the interlevel transfer operators they rely on. Three backends
// are available: a sparse direct factorization of the saddle-point matrix
// ("direct"), a geometric multigrid cycle smoothed by pressure-coupled cell
// relaxation ("mg"), and a BiCGSTAB accelerator wrapped around one such
// cycle ("bicgstab").
package mg

import (
	"github.com/cpmech/goflow/sys"
)

// Preconditioner approximates the inverse of the finest-level saddle-point
// matrix. Prepare binds a hierarchy and allocates scratch; Precondition
// overwrites the defect d with C⁻¹ d in place. Implementations that read
// the divergence rows entry-wise report NeedsPhysicalBT true so the caller
// can materialize D1/D2 before Prepare.
type Preconditioner interface {
	Prepare(levs []*sys.Level) error
	Precondition(d []float64) error
	NeedsPhysicalBT() bool
	Release()
}

// Params holds the linear-solver parameters
type Params struct {
	Kind      string  // "direct", "mg" or "bicgstab"
	Name      string  // direct backend: "umfpack", "mumps" or "dense"
	Symmetric bool    // sparse backend may assume symmetry
	Verbose   bool    // backend chatter
	NPre      int     // smoothing sweeps before coarse correction
	NPost     int     // smoothing sweeps after coarse correction
	Cycle     int     // cycle index: 1 = V, 2 = W
	Maxit     int     // Krylov iteration cap
	Tol       float64 // Krylov relative tolerance
	Relax     float64 // smoother relaxation factor
}

// SetDefault initializes parameters
func (o *Params) SetDefault() {
	o.Kind = "direct"
	o.Name = "umfpack"
	o.Symmetric = false
	o.Verbose = false
	o.NPre = 2
	o.NPost = 2
	o.Cycle = 1
	o.Maxit = 100
	o.Tol = 1e-8
	o.Relax = 0.9
}

// allocators maps backend kinds to constructors
var allocators = map[string]func(prm *Params) Preconditioner{}

// New returns a preconditioner for the given parameters
func New(prm *Params) (Preconditioner, error) {
	alloc, ok := allocators[prm.Kind]
	if !ok {
		return nil, sys.ErrCfg("unknown preconditioner kind %q", prm.Kind)
	}
	return alloc(prm), nil
}
