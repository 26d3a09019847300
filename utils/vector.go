package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	V = Vector{v}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// Data returns the backing slice.
func (v Vector) Data() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() (R Vector) {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	R = NewVector(v.Len(), data)
	return
}

// Subset returns the elements of v selected by I, in the order of I.
func (v Vector) Subset(I Index) (R Vector) {
	var (
		n    = v.Len()
		data = make([]float64, len(I))
	)
	for i, ind := range I {
		if ind < 0 || ind > n-1 {
			err := fmt.Errorf("unable to subset element %d from a length %d vector", ind, n)
			panic(err)
		}
		data[i] = v.AtVec(ind)
	}
	R = NewVector(len(I), data)
	return
}

func (v Vector) Min() (min float64) {
	var (
		data = v.Data()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.Data()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

// ToIndex converts v to an Index by truncation.
func (v Vector) ToIndex() (I Index) {
	I = NewFromFloat(v.Data())
	return
}

func (v Vector) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", name, mat.Formatted(v.V, mat.Squeeze()))
	return
}
