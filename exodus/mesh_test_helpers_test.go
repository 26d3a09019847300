package exodus

// Synthetic meshes used across the package tests.

// quadStore builds a 2-D mesh: one QUAD4 block of 4 elements on a 3x3 node
// grid, with a bottom edge side set (elements 1,2 / side 1) and a right
// edge side set (elements 2,4 / side 2).
func quadStore() *MemStore {
	ms := NewMemStore("quad.exo")
	ms.SetDim("num_dim", 2).
		SetDim("num_elem", 4).
		SetDim("num_nodes", 9).
		SetDim("num_el_blk", 1).
		SetDim("num_el_in_blk1", 4).
		SetDim("num_side_sets", 2)
	ms.SetNameVar("eb_names", []string{"Fluid\x00\x00\x00"})
	ms.SetNameVar("ss_names", []string{"Bottom\x00", "Right\x00\x00"})
	ms.SetFloatVar("coordx", []float64{0, 1, 2, 0, 1, 2, 0, 1, 2})
	ms.SetFloatVar("coordy", []float64{0, 0, 0, 1, 1, 1, 2, 2, 2})
	ms.SetIntVar("connect1", []int{
		1, 2, 5, 4,
		2, 3, 6, 5,
		4, 5, 8, 7,
		5, 6, 9, 8,
	})
	ms.SetAttr("connect1", "elem_type", "QUAD4")
	ms.SetIntVar("elem_ss1", []int{1, 2})
	ms.SetIntVar("side_ss1", []int{1, 1})
	ms.SetIntVar("elem_ss2", []int{2, 4})
	ms.SetIntVar("side_ss2", []int{2, 2})
	return ms
}

// hexStore builds a 3-D mesh of two HEX8 blocks with 10 and 5 elements.
// Element k (1-based) references nodes (k-1)*8+1 .. k*8, so the blocks
// partition 120 nodes. Side sets: "top" on block 2, "mixed" with varying
// side ids, "span" whose elements cross the block boundary.
func hexStore() *MemStore {
	var (
		nElem  = 15
		nNodes = 8 * nElem
	)
	ms := NewMemStore("hex.exo")
	ms.SetDim("num_dim", 3).
		SetDim("num_elem", nElem).
		SetDim("num_nodes", nNodes).
		SetDim("num_el_blk", 2).
		SetDim("num_el_in_blk1", 10).
		SetDim("num_el_in_blk2", 5).
		SetDim("num_side_sets", 3)
	ms.SetNameVar("eb_names", []string{"Inner", "Outer"})
	ms.SetNameVar("ss_names", []string{"top", "mixed", "span"})

	coords := make([]float64, nNodes)
	for i := range coords {
		coords[i] = float64(i)
	}
	ms.SetFloatVar("coordx", coords)
	ms.SetFloatVar("coordy", coords)
	ms.SetFloatVar("coordz", coords)

	conn := func(first, count int) []int {
		ids := make([]int, 8*count)
		for i := range ids {
			ids[i] = first + i
		}
		return ids
	}
	ms.SetIntVar("connect1", conn(1, 10))
	ms.SetAttr("connect1", "elem_type", "HEX8")
	ms.SetIntVar("connect2", conn(81, 5))
	ms.SetAttr("connect2", "elem_type", "HEX8")

	ms.SetIntVar("elem_ss1", []int{11, 12})
	ms.SetIntVar("side_ss1", []int{6, 6})
	ms.SetIntVar("elem_ss2", []int{1, 2})
	ms.SetIntVar("side_ss2", []int{1, 2})
	ms.SetIntVar("elem_ss3", []int{10, 11})
	ms.SetIntVar("side_ss3", []int{6, 6})
	return ms
}

func openMesh(ms *MemStore) *Mesh {
	msh, err := NewMesh(ms)
	if err != nil {
		panic(err)
	}
	return msh
}
