// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goflow/asm"
	"github.com/cpmech/goflow/mg"
	"github.com/cpmech/goflow/prb"
	"github.com/cpmech/goflow/sys"
)

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goflow
	ShowR   bool   `json:"showr"`   // show residual table during iterations
	Verbose bool   `json:"verbose"` // print progress messages
}

// CoreEqData holds the coefficients of the momentum operator
//   A = alpha*M + theta*nu*St + gamma*N(u)
type CoreEqData struct {
	Alpha       float64 `json:"alpha"`       // reactive (mass) coefficient
	Theta       float64 `json:"theta"`       // diffusion weight
	Gamma       float64 `json:"gamma"`       // convection weight; 0 turns the problem linear
	Nu          float64 `json:"nu"`          // kinematic viscosity; 1/Re on unit boxes
	DecoupledXY bool    `json:"decoupledxy"` // assemble A22 independently of A11
}

// StabData holds the convective stabilization choice
type StabData struct {
	Kind         string  `json:"kind"`         // "supg", "upwind" or "jump"
	DUpsam       float64 `json:"dupsam"`       // streamline-diffusion weight
	DJump        float64 `json:"djump"`        // edge-jump penalty weight
	FilterInterp bool    `json:"filterinterp"` // re-impose Dirichlet values on interpolated states
}

// NonlinearData holds the defect-correction loop controls
type NonlinearData struct {
	NminIt int     `json:"nminit"`       // minimum number of iterations
	NmaxIt int     `json:"nmaxit"`       // maximum number of iterations
	EpsUR  float64 `json:"epsur"`        // relative velocity-change tolerance
	EpsPR  float64 `json:"epspr"`        // relative pressure-change tolerance
	EpsD   float64 `json:"epsd"`         // momentum defect tolerance
	EpsDiv float64 `json:"epsdiv"`       // continuity defect tolerance
	DmpD   float64 `json:"dmpd"`         // required damping of the total defect
	OmgIni float64 `json:"omgini"`       // initial correction damping factor
	OmgMin float64 `json:"omgmin"`       // lower damping bound
	OmgMax float64 `json:"omgmax"`       // upper damping bound
	ItPrec int     `json:"itypeprecond"` // preconditioner type; only 1 (linear solver) is available
}

// LinSolData holds the linear preconditioner parameters
type LinSolData struct {
	Kind      string  `json:"kind"`      // "direct", "mg" or "bicgstab"
	Name      string  `json:"name"`      // direct backend: "umfpack", "mumps" or "dense"
	Symmetric bool    `json:"symmetric"` // use symmetric solver
	Verbose   bool    `json:"verbose"`   // verbose?
	NPre      int     `json:"npre"`      // pre-smoothing sweeps
	NPost     int     `json:"npost"`     // post-smoothing sweeps
	Cycle     int     `json:"cycles"`    // cycle index: 1 = V, 2 = W
	Maxit     int     `json:"maxit"`     // Krylov iteration cap
	Tol       float64 `json:"tol"`       // Krylov relative tolerance
	Relax     float64 `json:"relax"`     // smoother relaxation factor
}

// AmrData holds the adaptive coarse-operator controls
type AmrData struct {
	Kind string  `json:"kind"` // "off" or "threshold"
	Tol  float64 `json:"tol"`  // aspect-ratio threshold
}

// ProblemData describes the benchmark family and its grid hierarchy. The
// base grid has NxCoarse by NyCoarse cells and the hierarchy spans the
// refinements NLmin up to NLmax of it.
type ProblemData struct {
	Name     string  `json:"name"`     // "cavity" or "channel"
	NLmin    int     `json:"nlmin"`    // coarsest refinement of the base grid
	NLmax    int     `json:"nlmax"`    // finest refinement of the base grid
	NxCoarse int     `json:"nxcoarse"` // base grid divisions along x
	NyCoarse int     `json:"nycoarse"` // base grid divisions along y
	Lx       float64 `json:"lx"`       // box width
	Ly       float64 `json:"ly"`       // box height
	Lid      string  `json:"lid"`      // cavity: lid profile function name; "" = unit lid
	Umax     float64 `json:"umax"`     // channel: inflow peak velocity
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data          `json:"data"`      // global data
	CoreEq    CoreEqData    `json:"coreeq"`    // momentum operator coefficients
	Stab      StabData      `json:"stab"`      // convective stabilization
	Nonlinear NonlinearData `json:"nonlinear"` // defect-correction controls
	LinSol    LinSolData    `json:"linsol"`    // linear preconditioner
	Amr       AmrData       `json:"amr"`       // adaptive coarse operators
	Problem   ProblemData   `json:"problem"`   // benchmark description
	Functions FuncsData     `json:"functions"` // boundary profile functions

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. cavity4.sim => cavity4
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	o.CoreEq = CoreEqData{Alpha: 0, Theta: 1, Gamma: 1, Nu: 1}
	o.Stab = StabData{Kind: "supg", DUpsam: 1}
	o.Nonlinear = NonlinearData{
		NminIt: 1, NmaxIt: 10,
		EpsUR: 1e-5, EpsPR: 1e-5, EpsD: 1e-5, EpsDiv: 1e-5,
		DmpD: 0.1, OmgIni: 1, OmgMin: 0, OmgMax: 2, ItPrec: 1,
	}
	o.LinSol = LinSolData{
		Kind: "direct", Name: "umfpack",
		NPre: 2, NPost: 2, Cycle: 1, Maxit: 100, Tol: 1e-8, Relax: 0.9,
	}
	o.Amr = AmrData{Kind: "off", Tol: 20}
	o.Problem = ProblemData{
		Name: "cavity", NLmin: 0, NLmax: 2,
		NxCoarse: 2, NyCoarse: 2, Lx: 1, Ly: 1, Umax: 1,
	}
}

// Validate checks the consistency of the input sections
func (o *Simulation) Validate() error {
	e := &o.CoreEq
	if e.Nu <= 0 {
		return sys.ErrCfg("viscosity must be positive. nu=%g is invalid", e.Nu)
	}
	if e.Alpha == 0 && e.Theta == 0 {
		return sys.ErrCfg("momentum operator vanishes: alpha and theta are both zero")
	}
	if o.Stab.DUpsam < 0 || o.Stab.DJump < 0 {
		return sys.ErrCfg("stabilization weights must not be negative")
	}
	n := &o.Nonlinear
	if n.ItPrec != 1 {
		return sys.ErrCfg("unsupported preconditioner type: itypeprecond=%d (only 1 is available)", n.ItPrec)
	}
	if n.NmaxIt < 1 || n.NminIt < 0 || n.NminIt > n.NmaxIt {
		return sys.ErrCfg("iteration bounds are inconsistent: nminit=%d nmaxit=%d", n.NminIt, n.NmaxIt)
	}
	if n.EpsUR <= 0 || n.EpsPR <= 0 || n.EpsD <= 0 || n.EpsDiv <= 0 || n.DmpD <= 0 {
		return sys.ErrCfg("convergence tolerances must be positive")
	}
	l := &o.LinSol
	if l.NPre < 0 || l.NPost < 0 {
		return sys.ErrCfg("smoothing sweep counts must not be negative")
	}
	if l.Tol <= 0 || l.Relax <= 0 {
		return sys.ErrCfg("linear solver tolerance and relaxation must be positive")
	}
	if o.Amr.Kind == asm.AdaptThreshold && o.Amr.Tol <= 0 {
		return sys.ErrCfg("adaptive restriction needs a positive aspect-ratio threshold")
	}
	p := &o.Problem
	if p.Name != "cavity" && p.Name != "channel" {
		return sys.ErrCfg("unknown problem name %q", p.Name)
	}
	if p.NLmin < 0 || p.NLmax < p.NLmin {
		return sys.ErrCfg("refinement bounds are inconsistent: nlmin=%d nlmax=%d", p.NLmin, p.NLmax)
	}
	if p.NxCoarse < 2 || p.NyCoarse < 2 {
		return sys.ErrCfg("base grid must have at least 2x2 cells. %dx%d is invalid", p.NxCoarse, p.NyCoarse)
	}
	if p.Lx <= 0 || p.Ly <= 0 {
		return sys.ErrCfg("box dimensions must be positive. lx=%g ly=%g is invalid", p.Lx, p.Ly)
	}
	return nil
}

// Nlevels returns the number of hierarchy levels
func (o *Simulation) Nlevels() int {
	return o.Problem.NLmax - o.Problem.NLmin + 1
}

// CoarseDivisions returns the cell divisions of the coarsest hierarchy grid
func (o *Simulation) CoarseDivisions() (nx, ny int) {
	return o.Problem.NxCoarse << uint(o.Problem.NLmin), o.Problem.NyCoarse << uint(o.Problem.NLmin)
}

// Assembler wires the matrix assembler described by the coreeq, stab and
// amr sections, with the hierarchy transfer plugged in
func (o *Simulation) Assembler() (*asm.Assembler, error) {
	eq := asm.CoreEquation{
		Alpha: o.CoreEq.Alpha,
		Theta: o.CoreEq.Theta,
		Gamma: o.CoreEq.Gamma,
		Nu:    o.CoreEq.Nu,
	}
	a, err := asm.NewAssembler(eq, o.Stab.Kind, o.Stab.DUpsam, o.Stab.DJump, o.Amr.Kind, o.Amr.Tol, mg.Interp{})
	if err != nil {
		return nil, err
	}
	a.FilterInterp = o.Stab.FilterInterp
	return a, nil
}

// PrecondParams converts the linsol section into preconditioner parameters
func (o *Simulation) PrecondParams() *mg.Params {
	return &mg.Params{
		Kind:      o.LinSol.Kind,
		Name:      o.LinSol.Name,
		Symmetric: o.LinSol.Symmetric,
		Verbose:   o.LinSol.Verbose,
		NPre:      o.LinSol.NPre,
		NPost:     o.LinSol.NPost,
		Cycle:     o.LinSol.Cycle,
		Maxit:     o.LinSol.Maxit,
		Tol:       o.LinSol.Tol,
		Relax:     o.LinSol.Relax,
	}
}

// Box builds the benchmark described by the problem section
func (o *Simulation) Box() (b *prb.Box, err error) {
	p := &o.Problem
	nx, ny := o.CoarseDivisions()
	switch p.Name {
	case "cavity":
		lid, err := o.LidProfile()
		if err != nil {
			return nil, err
		}
		b = prb.Cavity(nx, ny, o.Nlevels(), p.Lx, p.Ly, lid)
	case "channel":
		b = prb.Channel(nx, ny, o.Nlevels(), p.Lx, p.Ly, p.Umax)
	default:
		return nil, sys.ErrCfg("unknown problem name %q", p.Name)
	}
	b.SplitXY = o.CoreEq.DecoupledXY
	return b, nil
}

// LidProfile resolves the cavity lid function; an empty name means the
// unit lid
func (o *Simulation) LidProfile() (lid func(x float64) float64, err error) {
	if o.Problem.Lid == "" {
		return func(x float64) float64 { return 1.0 }, nil
	}
	fcn, err := o.Functions.Get(o.Problem.Lid)
	if err != nil {
		return nil, err
	}
	return func(x float64) float64 { return fcn.F(x, nil) }, nil
}

// ReadSim reads a simulation file, fills in defaults and validates
func ReadSim(simfilepath string, erasefiles bool) (o *Simulation, err error) {
	o = new(Simulation)
	o.SetDefault()
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, sys.ErrCfg("cannot read simulation file %q", simfilepath)
	}
	if err = json.Unmarshal(b, o); err != nil {
		return nil, sys.ErrCfg("cannot unmarshal simulation file %q: %v", simfilepath, err)
	}
	o.Key = io.FnKey(filepath.Base(simfilepath))
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/goflow/" + o.Key
	}
	if erasefiles {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return nil, sys.ErrCfg("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}
