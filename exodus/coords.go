package exodus

import (
	"fmt"

	"github.com/nalutools/exomesh/utils"
)

// axisCoords fetches and caches one coordinate column. The cache fills on
// first access and is read-only afterwards; masked reads copy out of it.
func (msh *Mesh) axisCoords(axis string, cache **utils.Vector, maskO []utils.Index) (V utils.Vector, err error) {
	if msh.closed {
		return V, ErrClosed
	}
	varName := "coord" + axis
	if *cache == nil {
		if !msh.store.HasVar(varName) {
			return V, fmt.Errorf("%w: no %s coordinate field found in mesh: %s",
				ErrMissingVariable, axis, msh.path)
		}
		data, err := msh.store.VarFloat64(varName)
		if err != nil {
			return V, err
		}
		col := utils.NewVector(len(data), data)
		*cache = &col
	}
	if len(maskO) == 0 {
		return **cache, nil
	}
	if err = msh.checkNodeMask(maskO[0]); err != nil {
		return V, err
	}
	return (*cache).Subset(maskO[0]), nil
}

func (msh *Mesh) checkNodeMask(mask utils.Index) error {
	for _, ind := range mask {
		if ind < 0 || ind > msh.NumNodes-1 {
			return fmt.Errorf("%w: node index %d not in [0, %d) in mesh: %s",
				ErrOutOfRange, ind, msh.NumNodes, msh.path)
		}
	}
	return nil
}

// X returns the x coordinates of the mesh, optionally masked by a node
// index selector.
func (msh *Mesh) X(maskO ...utils.Index) (utils.Vector, error) {
	return msh.axisCoords("x", &msh.xco, maskO)
}

// Y returns the y coordinates of the mesh, optionally masked.
func (msh *Mesh) Y(maskO ...utils.Index) (utils.Vector, error) {
	return msh.axisCoords("y", &msh.yco, maskO)
}

// Z returns the z coordinates of the mesh, optionally masked.
func (msh *Mesh) Z(maskO ...utils.Index) (utils.Vector, error) {
	return msh.axisCoords("z", &msh.zco, maskO)
}

// Coordinates column-stacks the coordinate axes into an N x NDim matrix,
// X then Y then, for 3-D meshes, Z. An optional mask selects node rows; the
// same mask applies to every axis so rows stay aligned.
func (msh *Mesh) Coordinates(maskO ...utils.Index) (R utils.Matrix, err error) {
	xco, err := msh.X(maskO...)
	if err != nil {
		return R, err
	}
	yco, err := msh.Y(maskO...)
	if err != nil {
		return R, err
	}
	if msh.NDim == 3 {
		zco, err := msh.Z(maskO...)
		if err != nil {
			return R, err
		}
		R = utils.NewMatrix(xco.Len(), 3)
		R.SetCol(0, xco.Data())
		R.SetCol(1, yco.Data())
		R.SetCol(2, zco.Data())
		return R, nil
	}
	R = utils.NewMatrix(xco.Len(), 2)
	R.SetCol(0, xco.Data())
	R.SetCol(1, yco.Data())
	return R, nil
}
