// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goflow/sys"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "gob" {
		return gob.NewEncoder(w)
	}
	return json.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "gob" {
		return gob.NewDecoder(r)
	}
	return json.NewDecoder(r)
}

// Summary records summary of a run
type Summary struct {
	Fnkey  string       // filename key of simulation
	Dirout string       // directory where results are stored
	Status string       // outcome of the last solve
	Niter  int          // nonlinear iterations of the last solve
	Rho    float64      // convergence rate estimate
	Res    []float64    // final residuals: resU, resDIV, resTOT
	Resids utl.DblSlist // total-residual history, one sublist per solve
}

// NewSummary collects the summary of the solver bound by Start
func NewSummary() *Summary {
	return &Summary{
		Fnkey:  Sim.Key,
		Dirout: Sim.DirOut,
		Status: Sol.Status.String(),
		Niter:  Sol.It,
		Rho:    Sol.Rho,
		Res:    []float64{Sol.Res[0], Sol.Res[1], Sol.Res[2]},
		Resids: Sol.Hist,
	}
}

// Save saves the summary to Dirout
func (o *Summary) Save() (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, "json")
	if err = enc.Encode(o); err != nil {
		return sys.ErrIO("cannot encode summary: %v", err)
	}
	return saveFile(sumPath(o.Dirout, o.Fnkey), &buf)
}

// ReadSum reads a summary back
func ReadSum(dir, fnkey string) (o *Summary, err error) {
	fil, err := os.Open(sumPath(dir, fnkey))
	if err != nil {
		return nil, sys.ErrIO("cannot open summary file: %v", err)
	}
	defer fil.Close()
	o = new(Summary)
	dec := GetDecoder(fil, "json")
	if err = dec.Decode(o); err != nil {
		return nil, sys.ErrIO("cannot decode summary: %v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func sumPath(dir, fnkey string) string {
	return path.Join(dir, io.Sf("%s_sum.json", fnkey))
}

func saveFile(filename string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return sys.ErrIO("cannot create file: %v", err)
	}
	defer func() {
		if e := fil.Close(); err == nil && e != nil {
			err = sys.ErrIO("cannot close file: %v", e)
		}
	}()
	if _, err = fil.Write(buf.Bytes()); err != nil {
		return sys.ErrIO("cannot write file: %v", err)
	}
	return
}
