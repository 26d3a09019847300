package types

import "strings"

// Topology identifies the reference cell shape of an element block.
type Topology uint8

const (
	TOPO_None Topology = iota
	TOPO_Hex
	TOPO_Tetra
	TOPO_Wedge
	TOPO_Quad
)

// TopologyNameMap translates elem_type strings found in Exodus files to
// topology tags. Lookups go through NewTopology, which lowercases first.
var TopologyNameMap = map[string]Topology{
	"hex":    TOPO_Hex,
	"hex8":   TOPO_Hex,
	"tetra":  TOPO_Tetra,
	"tetra4": TOPO_Tetra,
	"tet4":   TOPO_Tetra,
	"wedge":  TOPO_Wedge,
	"wedge6": TOPO_Wedge,
	"quad":   TOPO_Quad,
	"quad4":  TOPO_Quad,
}

func NewTopology(label string) (t Topology, ok bool) {
	t, ok = TopologyNameMap[strings.ToLower(strings.TrimSpace(label))]
	return
}

func (t Topology) String() string {
	switch t {
	case TOPO_Hex:
		return "HEX"
	case TOPO_Tetra:
		return "TETRA"
	case TOPO_Wedge:
		return "WEDGE"
	case TOPO_Quad:
		return "QUAD4"
	}
	return "NONE"
}

// NumNodes returns the node count of the reference cell.
func (t Topology) NumNodes() int {
	switch t {
	case TOPO_Hex:
		return 8
	case TOPO_Tetra:
		return 4
	case TOPO_Wedge:
		return 6
	case TOPO_Quad:
		return 4
	}
	return 0
}

// NumSides returns the number of sides (faces in 3D, edges in 2D) of the
// reference cell.
func (t Topology) NumSides() int {
	switch t {
	case TOPO_Hex:
		return 6
	case TOPO_Tetra:
		return 4
	case TOPO_Wedge:
		return 5
	case TOPO_Quad:
		return 4
	}
	return 0
}

// sideNodeMap fixes, per topology, the ordered local node indices (0-based)
// bounding each local side (1-based, Exodus convention). The table is
// read-only.
var sideNodeMap = map[Topology]map[int][]int{
	TOPO_Hex: {
		1: {0, 1, 5, 4},
		2: {1, 2, 6, 5},
		3: {2, 3, 7, 6},
		4: {0, 4, 7, 3},
		5: {0, 3, 2, 1},
		6: {4, 5, 6, 7},
	},
	TOPO_Tetra: {
		1: {0, 1, 3},
		2: {1, 2, 3},
		3: {0, 2, 3},
		4: {0, 1, 2},
	},
	TOPO_Wedge: {
		1: {0, 1, 3, 4},
		2: {1, 2, 4, 5},
		3: {0, 2, 3, 5},
		4: {0, 1, 2},
		5: {3, 4, 5},
	},
	TOPO_Quad: {
		1: {0, 1},
		2: {1, 2},
		3: {2, 3},
		4: {3, 0},
	},
}

// SideNodes returns the ordered local node indices bounding local side
// "side" of topology t. ok is false when the topology or side number is not
// in the table.
func SideNodes(t Topology, side int) (nodes []int, ok bool) {
	sides, found := sideNodeMap[t]
	if !found {
		return nil, false
	}
	nodes, ok = sides[side]
	return
}
