package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

// Data returns the backing slice in row-major order.
func (m Matrix) Data() []float64 { return m.M.RawMatrix().Data }

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
		data   = make([]float64, nr*nc)
	)
	copy(data, m.Data())
	R = NewMatrix(nr, nc, data)
	return
}

// Row returns row i as a Vector backed by fresh storage.
func (m Matrix) Row(i int) (V Vector) {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	copy(data, m.M.RawRowView(i))
	V = NewVector(nc, data)
	return
}

// Col returns column j as a Vector backed by fresh storage.
func (m Matrix) Col(j int) (V Vector) {
	var (
		nr, _ = m.Dims()
		data  = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		data[i] = m.At(i, j)
	}
	V = NewVector(nr, data)
	return
}

func (m Matrix) SetRow(i int, data []float64) Matrix {
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

// SliceRows returns the rows of m selected by I, in the order of I.
func (m Matrix) SliceRows(I Index) (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(len(I), nc)
	for i, row := range I {
		if row < 0 || row > nr-1 {
			err := fmt.Errorf("unable to subset row %d from a %dx%d matrix", row, nr, nc)
			panic(err)
		}
		R.SetRow(i, m.M.RawRowView(row))
	}
	return
}

// SliceCols returns the columns of m selected by I, in the order of I.
func (m Matrix) SliceCols(I Index) (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, len(I))
	for j, col := range I {
		if col < 0 || col > nc-1 {
			err := fmt.Errorf("unable to subset column %d from a %dx%d matrix", col, nr, nc)
			panic(err)
		}
		for i := 0; i < nr; i++ {
			R.M.Set(i, j, m.At(i, col))
		}
	}
	return
}

// Subset gathers the rectangular patch addressed by the cross product of
// row indices RI and column indices CI, preserving index order.
func (m Matrix) Subset(RI, CI Index) (R Matrix) {
	R = NewMatrix(len(RI), len(CI))
	for i, row := range RI {
		for j, col := range CI {
			R.M.Set(i, j, m.At(row, col))
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.Data()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.Data()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", name, mat.Formatted(m.M, mat.Squeeze()))
	return
}
