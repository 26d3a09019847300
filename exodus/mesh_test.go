package exodus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshMetadata(t *testing.T) {
	// Decoded names are trimmed and lowercased
	{
		msh := openMesh(quadStore())
		defer msh.Close()
		assert.Equal(t, 2, msh.NDim)
		assert.Equal(t, 4, msh.NumElements)
		assert.Equal(t, 9, msh.NumNodes)
		assert.Equal(t, []string{"fluid"}, msh.Blocks())
		assert.Equal(t, []string{"bottom", "right"}, msh.SideSets())
		assert.Equal(t, 1, msh.NumBlocks())
		assert.Equal(t, 2, msh.NumSideSets())
	}
	// Without eb_names, block names synthesize from the block count
	{
		ms := quadStore()
		delete(ms.names, "eb_names")
		msh := openMesh(ms)
		defer msh.Close()
		assert.Equal(t, []string{"block-1"}, msh.Blocks())
	}
	// A ss_names variable declared but not populated synthesizes
	// surface-<i> names for every side set
	{
		ms := quadStore()
		ms.SetNameVar("ss_names", []string{"\x00\x00\x00", "\x00\x00\x00"})
		msh := openMesh(ms)
		defer msh.Close()
		assert.Equal(t, []string{"surface-1", "surface-2"}, msh.SideSets())
	}
	// An absent ss_names variable leaves the side set list empty
	{
		ms := quadStore()
		delete(ms.names, "ss_names")
		msh := openMesh(ms)
		defer msh.Close()
		assert.Empty(t, msh.SideSets())
	}
	// So does a zero or absent side set count
	{
		ms := quadStore()
		ms.SetDim("num_side_sets", 0)
		msh := openMesh(ms)
		defer msh.Close()
		assert.Empty(t, msh.SideSets())
	}
}

func TestMeshOpenFailures(t *testing.T) {
	// Each required dimension is fatal when absent, and the store is
	// released on the error path
	for _, dim := range []string{"num_dim", "num_elem", "num_nodes", "num_el_in_blk1"} {
		ms := quadStore()
		delete(ms.dims, dim)
		_, err := NewMesh(ms)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingDimension)
		assert.Contains(t, err.Error(), dim)
		assert.True(t, ms.closed)
	}
}

func TestMeshClose(t *testing.T) {
	ms := quadStore()
	msh := openMesh(ms)
	require.NoError(t, msh.Close())
	assert.True(t, ms.closed)
	// idempotent
	require.NoError(t, msh.Close())
	// operations on a closed mesh fail
	_, err := msh.X()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = msh.BlockNodes("fluid")
	assert.ErrorIs(t, err, ErrClosed)
	_, err = msh.SideSetNodes("bottom")
	assert.ErrorIs(t, err, ErrClosed)
}
