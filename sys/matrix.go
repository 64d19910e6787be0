// Copyright 2017 The Goflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// DupMode selects how much a duplicated matrix shares with its source
type DupMode int

const (
	// DupCopy duplicates structure and values; the clone owns everything
	DupCopy DupMode = iota + 1

	// DupShareStruct shares the sparsity structure (row pointers and column
	// indices) with the source but owns a separate copy of the values
	DupShareStruct

	// DupShareAll shares structure and values; writing to either matrix is
	// visible through both
	DupShareAll
)

// Matrix implements a compressed sparse row matrix with a two-phase life:
// entries are first collected with Put, then Compress freezes the sparsity
// structure. Afterwards Put accumulates into existing slots only, so the
// pattern never changes and symbolic factorizations downstream stay valid.
type Matrix struct {
	m, n int

	// collection stage
	ti, tj []int
	tv     []float64

	// compressed stage
	ap, aj []int
	ax     []float64
	shared bool // ap/aj belong to another matrix
}

// NewMatrix creates an empty m by n matrix in collection stage
func NewMatrix(m, n int) (o *Matrix) {
	o = new(Matrix)
	o.m, o.n = m, n
	return
}

// Dims returns the number of rows and columns
func (o *Matrix) Dims() (m, n int) {
	return o.m, o.n
}

// Nnz returns the number of stored entries after compression
func (o *Matrix) Nnz() int {
	return len(o.ax)
}

// Compressed tells whether the sparsity structure has been frozen
func (o *Matrix) Compressed() bool {
	return o.ap != nil
}

// Put adds v to entry (i,j). Before Compress the entry is collected;
// afterwards the entry must exist in the frozen pattern.
func (o *Matrix) Put(i, j int, v float64) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("entry (%d,%d) is outside %d x %d matrix", i, j, o.m, o.n)
	}
	if o.ap == nil {
		o.ti = append(o.ti, i)
		o.tj = append(o.tj, j)
		o.tv = append(o.tv, v)
		return
	}
	p := o.pos(i, j)
	if p < 0 {
		chk.Panic("entry (%d,%d) is not in the frozen sparsity pattern", i, j)
	}
	o.ax[p] += v
}

// Set overwrites entry (i,j); compressed stage only
func (o *Matrix) Set(i, j int, v float64) {
	p := o.pos(i, j)
	if p < 0 {
		chk.Panic("entry (%d,%d) is not in the frozen sparsity pattern", i, j)
	}
	o.ax[p] = v
}

// pos returns the slot of entry (i,j) or -1
func (o *Matrix) pos(i, j int) int {
	lo, hi := o.ap[i], o.ap[i+1]
	k := lo + sort.SearchInts(o.aj[lo:hi], j)
	if k < hi && o.aj[k] == j {
		return k
	}
	return -1
}

// Compress builds the CSR arrays from the collected entries, summing
// duplicates, and frees the collection storage
func (o *Matrix) Compress() {
	if o.ap != nil {
		chk.Panic("matrix is compressed already")
	}

	// row counts and offsets
	o.ap = make([]int, o.m+1)
	for _, i := range o.ti {
		o.ap[i+1]++
	}
	for i := 0; i < o.m; i++ {
		o.ap[i+1] += o.ap[i]
	}

	// scatter
	nnz := len(o.ti)
	o.aj = make([]int, nnz)
	o.ax = make([]float64, nnz)
	fill := make([]int, o.m)
	for k, i := range o.ti {
		p := o.ap[i] + fill[i]
		o.aj[p] = o.tj[k]
		o.ax[p] = o.tv[k]
		fill[i]++
	}

	// sort rows by column and merge duplicates
	w := 0
	start := 0
	for i := 0; i < o.m; i++ {
		lo, hi := o.ap[i], o.ap[i+1]
		sortRow(o.aj[lo:hi], o.ax[lo:hi])
		for k := lo; k < hi; k++ {
			if w > start && o.aj[w-1] == o.aj[k] {
				o.ax[w-1] += o.ax[k]
				continue
			}
			o.aj[w] = o.aj[k]
			o.ax[w] = o.ax[k]
			w++
		}
		o.ap[i] = start
		start = w
	}
	o.ap[o.m] = w
	o.aj = o.aj[:w]
	o.ax = o.ax[:w]

	// release collection storage
	o.ti, o.tj, o.tv = nil, nil, nil
}

// sortRow sorts one row's (column,value) pairs by column
func sortRow(cols []int, vals []float64) {
	for k := 1; k < len(cols); k++ {
		c, v := cols[k], vals[k]
		l := k - 1
		for l >= 0 && cols[l] > c {
			cols[l+1], vals[l+1] = cols[l], vals[l]
			l--
		}
		cols[l+1], vals[l+1] = c, v
	}
}

// Start zeroes all values, keeping the frozen pattern, so a new assembly
// pass can accumulate into the same structure
func (o *Matrix) Start() {
	for k := range o.ax {
		o.ax[k] = 0
	}
}

// Row returns the column indices and values of row i as subslices
func (o *Matrix) Row(i int) (cols []int, vals []float64) {
	return o.aj[o.ap[i]:o.ap[i+1]], o.ax[o.ap[i]:o.ap[i+1]]
}

// Diag returns the value of the diagonal entry of row i (zero if absent)
func (o *Matrix) Diag(i int) float64 {
	p := o.pos(i, i)
	if p < 0 {
		return 0
	}
	return o.ax[p]
}

// Val returns the value of entry (i,j), zero if outside the pattern
func (o *Matrix) Val(i, j int) float64 {
	p := o.pos(i, j)
	if p < 0 {
		return 0
	}
	return o.ax[p]
}

// SetUnitRow zeroes row i and sets its diagonal entry to one
func (o *Matrix) SetUnitRow(i int) {
	found := false
	for k := o.ap[i]; k < o.ap[i+1]; k++ {
		if o.aj[k] == i {
			o.ax[k] = 1
			found = true
		} else {
			o.ax[k] = 0
		}
	}
	if !found {
		chk.Panic("row %d has no diagonal entry; cannot set unit row", i)
	}
}

// ZeroRow zeroes all values of row i, keeping the pattern
func (o *Matrix) ZeroRow(i int) {
	for k := o.ap[i]; k < o.ap[i+1]; k++ {
		o.ax[k] = 0
	}
}

// RowDot returns the product of row i with vector x
func (o *Matrix) RowDot(i int, x []float64) (res float64) {
	for k := o.ap[i]; k < o.ap[i+1]; k++ {
		res += o.ax[k] * x[o.aj[k]]
	}
	return
}

// MatVecMulAdd computes y += α * M * x
func (o *Matrix) MatVecMulAdd(y []float64, α float64, x []float64) {
	for i := 0; i < o.m; i++ {
		sum := 0.0
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			sum += o.ax[k] * x[o.aj[k]]
		}
		y[i] += α * sum
	}
}

// MatTrVecMulAdd computes y += α * transpose(M) * x
func (o *Matrix) MatTrVecMulAdd(y []float64, α float64, x []float64) {
	for i := 0; i < o.m; i++ {
		c := α * x[i]
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			y[o.aj[k]] += c * o.ax[k]
		}
	}
}

// Clone duplicates the matrix according to mode; compressed stage only
func (o *Matrix) Clone(mode DupMode) (c *Matrix) {
	if o.ap == nil {
		chk.Panic("cannot clone matrix before Compress")
	}
	c = new(Matrix)
	c.m, c.n = o.m, o.n
	switch mode {
	case DupCopy:
		c.ap = make([]int, len(o.ap))
		c.aj = make([]int, len(o.aj))
		c.ax = make([]float64, len(o.ax))
		copy(c.ap, o.ap)
		copy(c.aj, o.aj)
		copy(c.ax, o.ax)
	case DupShareStruct:
		c.ap, c.aj = o.ap, o.aj
		c.ax = make([]float64, len(o.ax))
		copy(c.ax, o.ax)
		c.shared = true
	case DupShareAll:
		c.ap, c.aj, c.ax = o.ap, o.aj, o.ax
		c.shared = true
	default:
		chk.Panic("duplication mode %d is invalid", mode)
	}
	return
}

// SharesStructWith tells whether the two matrices use the same structure arrays
func (o *Matrix) SharesStructWith(other *Matrix) bool {
	return len(o.ap) > 0 && len(other.ap) > 0 && &o.ap[0] == &other.ap[0]
}

// SharesValuesWith tells whether the two matrices use the same values array
func (o *Matrix) SharesValuesWith(other *Matrix) bool {
	return len(o.ax) > 0 && len(other.ax) > 0 && &o.ax[0] == &other.ax[0]
}

// CopyValues copies the values of src, which must have the same pattern size
func (o *Matrix) CopyValues(src *Matrix) {
	if len(o.ax) != len(src.ax) {
		chk.Panic("matrices have different nnz: %d != %d", len(o.ax), len(src.ax))
	}
	copy(o.ax, src.ax)
}

// AddScaled accumulates α times src, whose pattern must be contained in this
// matrix's frozen pattern
func (o *Matrix) AddScaled(α float64, src *Matrix) {
	for i := 0; i < src.m; i++ {
		for k := src.ap[i]; k < src.ap[i+1]; k++ {
			o.Put(i, src.aj[k], α*src.ax[k])
		}
	}
}

// Transpose returns a new compressed matrix with structure and values of the
// transpose; the result owns its storage
func (o *Matrix) Transpose() (t *Matrix) {
	t = new(Matrix)
	t.m, t.n = o.n, o.m
	nnz := len(o.ax)
	t.ap = make([]int, t.m+1)
	t.aj = make([]int, nnz)
	t.ax = make([]float64, nnz)
	for _, j := range o.aj {
		t.ap[j+1]++
	}
	for i := 0; i < t.m; i++ {
		t.ap[i+1] += t.ap[i]
	}
	fill := make([]int, t.m)
	for i := 0; i < o.m; i++ {
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			j := o.aj[k]
			p := t.ap[j] + fill[j]
			t.aj[p] = i
			t.ax[p] = o.ax[k]
			fill[j]++
		}
	}
	return
}

// TransposeInto writes this matrix's values, transposed, into the existing
// pattern of t. No structure is allocated or changed and no arithmetic is
// performed on the values, so round trips are bit-exact.
func (o *Matrix) TransposeInto(t *Matrix) {
	if t.m != o.n || t.n != o.m {
		chk.Panic("transpose target is %d x %d; need %d x %d", t.m, t.n, o.n, o.m)
	}
	for i := 0; i < o.m; i++ {
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			t.Set(o.aj[k], i, o.ax[k])
		}
	}
}

// PutToTriplet scatters all entries into a sparse triplet with the given
// offsets and coefficient
func (o *Matrix) PutToTriplet(tr *la.Triplet, rowOff, colOff int, coef float64) {
	for i := 0; i < o.m; i++ {
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			tr.Put(rowOff+i, colOff+o.aj[k], coef*o.ax[k])
		}
	}
}

// PutTrToTriplet scatters the transposed entries into a sparse triplet,
// avoiding a physical transpose
func (o *Matrix) PutTrToTriplet(tr *la.Triplet, rowOff, colOff int, coef float64) {
	for i := 0; i < o.m; i++ {
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			tr.Put(rowOff+o.aj[k], colOff+i, coef*o.ax[k])
		}
	}
}

// PutToDense adds all entries into a dense matrix with the given offsets
func (o *Matrix) PutToDense(a [][]float64, rowOff, colOff int, coef float64) {
	for i := 0; i < o.m; i++ {
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			a[rowOff+i][colOff+o.aj[k]] += coef * o.ax[k]
		}
	}
}

// PutTrToDense adds the transposed entries into a dense matrix
func (o *Matrix) PutTrToDense(a [][]float64, rowOff, colOff int, coef float64) {
	for i := 0; i < o.m; i++ {
		for k := o.ap[i]; k < o.ap[i+1]; k++ {
			a[rowOff+o.aj[k]][colOff+i] += coef * o.ax[k]
		}
	}
}

// Dense returns the dense version of this matrix; handy in tests
func (o *Matrix) Dense() (a [][]float64) {
	a = la.MatAlloc(o.m, o.n)
	o.PutToDense(a, 0, 0, 1)
	return
}
