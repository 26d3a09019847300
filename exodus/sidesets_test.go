package exodus

import (
	"sort"
	"testing"

	"github.com/nalutools/exomesh/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockNodes(t *testing.T) {
	msh := openMesh(quadStore())
	defer msh.Close()

	// The raw table keeps one row per element, node ids 0-based
	{
		EToV, err := msh.BlockNodeTable("fluid")
		require.NoError(t, err)
		nr, nc := EToV.Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 4, nc)
		assert.Equal(t, []float64{3, 4, 7, 6}, EToV.Row(2).Data())
		assert.GreaterOrEqual(t, EToV.Min(), 0.)
		assert.Less(t, EToV.Max(), float64(msh.NumNodes))
	}
	// Flattened ids are strictly increasing and match the deduplicated
	// table
	{
		I, err := msh.BlockNodes("fluid")
		require.NoError(t, err)
		assert.Equal(t, utils.Index{0, 1, 2, 3, 4, 5, 6, 7, 8}, I)
		assert.True(t, sort.IntsAreSorted(I))
		EToV, err := msh.BlockNodeTable("fluid")
		require.NoError(t, err)
		assert.Equal(t, utils.NewFromFloat(EToV.Data()).Unique(), I)
	}
	// Lookups are case-insensitive; unknown names fail without a partial
	// result
	{
		I, err := msh.BlockNodes("FLUID")
		require.NoError(t, err)
		assert.Len(t, I, 9)
		I, err = msh.BlockNodes("solid")
		assert.ErrorIs(t, err, ErrUnknownName)
		assert.Nil(t, I)
	}
}

func TestSideSetNodes(t *testing.T) {
	// QUAD4 side 2 selects local nodes [1 2] of each referenced element
	{
		msh := openMesh(quadStore())
		defer msh.Close()
		R, err := msh.SideSetNodeTable("right")
		require.NoError(t, err)
		assert.Equal(t, R, utils.NewMatrix(2, 2, []float64{
			2, 5,
			5, 8,
		}))
		I, err := msh.SideSetNodes("right")
		require.NoError(t, err)
		assert.Equal(t, utils.Index{2, 5, 8}, I)
	}
	// Bottom edge of the quad grid
	{
		msh := openMesh(quadStore())
		defer msh.Close()
		I, err := msh.SideSetNodes("Bottom")
		require.NoError(t, err)
		assert.Equal(t, utils.Index{0, 1, 2}, I)
	}
	// HEX8 side 6 on the second block resolves through the element id
	// partition
	{
		msh := openMesh(hexStore())
		defer msh.Close()
		R, err := msh.SideSetNodeTable("top")
		require.NoError(t, err)
		assert.Equal(t, R, utils.NewMatrix(2, 4, []float64{
			84, 85, 86, 87,
			92, 93, 94, 95,
		}))
		I, err := msh.SideSetNodes("top")
		require.NoError(t, err)
		assert.Equal(t, utils.Index{84, 85, 86, 87, 92, 93, 94, 95}, I)
		for _, id := range I {
			assert.GreaterOrEqual(t, id, 0)
			assert.Less(t, id, msh.NumNodes)
		}
	}
}

func TestSideSetFailures(t *testing.T) {
	// Unknown side set
	{
		msh := openMesh(quadStore())
		defer msh.Close()
		_, err := msh.SideSetNodes("lid")
		assert.ErrorIs(t, err, ErrUnknownName)
	}
	// Mixed side ids within one set fail fast instead of mis-mapping
	{
		msh := openMesh(hexStore())
		defer msh.Close()
		_, err := msh.SideSetNodes("mixed")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrHeterogeneousSideSet)
		assert.Contains(t, err.Error(), "mixed")
	}
	// A set whose elements cross the probed block's range is rejected
	{
		msh := openMesh(hexStore())
		defer msh.Close()
		_, err := msh.SideSetNodes("span")
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
	// Topologies outside the static table fail, as do sides outside the
	// topology's range
	{
		ms := quadStore()
		ms.SetAttr("connect1", "elem_type", "PYRAMID5")
		msh := openMesh(ms)
		defer msh.Close()
		_, err := msh.SideSetNodes("bottom")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedTopology)
		assert.Contains(t, err.Error(), "PYRAMID5")
	}
	// An elem_type wider than the stored connectivity is a corrupt file:
	// the gather must refuse the columns rather than read past the table
	{
		ms := quadStore()
		ms.SetAttr("connect1", "elem_type", "HEX8")
		ms.SetIntVar("side_ss1", []int{6, 6})
		msh := openMesh(ms)
		defer msh.Close()
		_, err := msh.SideSetNodes("bottom")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Contains(t, err.Error(), "nodes per element")
	}
	{
		ms := quadStore()
		ms.SetIntVar("side_ss1", []int{5, 5})
		msh := openMesh(ms)
		defer msh.Close()
		_, err := msh.SideSetNodes("bottom")
		assert.ErrorIs(t, err, ErrUnsupportedTopology)
	}
	// An empty side set resolves to an empty table and an empty id list,
	// not an error
	{
		ms := quadStore()
		ms.SetIntVar("elem_ss1", []int{})
		ms.SetIntVar("side_ss1", []int{})
		msh := openMesh(ms)
		defer msh.Close()
		R, err := msh.SideSetNodeTable("bottom")
		require.NoError(t, err)
		assert.True(t, R.IsEmpty())
		I, err := msh.SideSetNodes("bottom")
		require.NoError(t, err)
		assert.Empty(t, I)
	}
	// A missing parallel array is a malformed file
	{
		ms := quadStore()
		delete(ms.ints, "side_ss1")
		msh := openMesh(ms)
		defer msh.Close()
		_, err := msh.SideSetNodes("bottom")
		assert.ErrorIs(t, err, ErrMissingVariable)
	}
}
