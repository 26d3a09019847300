package exodus

import (
	"fmt"
	"strings"

	"github.com/nalutools/exomesh/types"
	"github.com/nalutools/exomesh/utils"
)

// blockConnectivity reads and caches a block's connectivity table. Node ids
// are stored 1-based in the file and held 0-based in the cache, together
// with the elem_type attribute of the connect variable.
func (msh *Mesh) blockConnectivity(ord int) (bc *blockConn, err error) {
	if bc, ok := msh.conn[ord]; ok {
		return bc, nil
	}
	varName := fmt.Sprintf("connect%d", ord)
	raw, err := msh.store.VarInt(varName)
	if err != nil {
		return nil, err
	}
	count := msh.index.ElementCount(ord)
	if count == 0 || len(raw)%count != 0 {
		return nil, fmt.Errorf("%w: %s has %d entries for %d elements in mesh: %s",
			ErrOutOfRange, varName, len(raw), count, msh.path)
	}
	data := make([]float64, len(raw))
	for i, id := range raw {
		data[i] = float64(id - 1)
	}
	topo, _ := msh.store.Attr(varName, "elem_type")
	bc = &blockConn{
		EToV: utils.NewMatrix(count, len(raw)/count, data),
		Topo: topo,
	}
	msh.conn[ord] = bc
	return bc, nil
}

func (msh *Mesh) blockTable(blkName string) (R utils.Matrix, err error) {
	if msh.closed {
		return R, ErrClosed
	}
	ord, err := msh.index.Ordinal(strings.ToLower(blkName))
	if err != nil {
		return R, fmt.Errorf("%w in mesh: %s", err, msh.path)
	}
	bc, err := msh.blockConnectivity(ord)
	if err != nil {
		return R, err
	}
	return bc.EToV, nil
}

// BlockNodeTable returns a block's connectivity table as a
// num_elements x nodes_per_element matrix of 0-based global node ids.
// The matrix is shared with the cache; callers must not modify it.
func (msh *Mesh) BlockNodeTable(blkName string) (utils.Matrix, error) {
	return msh.blockTable(blkName)
}

// BlockNodes returns the sorted unique 0-based global node ids referenced
// by a block's connectivity table. Block name lookup is case-insensitive.
func (msh *Mesh) BlockNodes(blkName string) (I utils.Index, err error) {
	EToV, err := msh.blockTable(blkName)
	if err != nil {
		return nil, err
	}
	I = utils.NewFromFloat(EToV.Data()).Unique()
	return
}

// sideSetTable resolves a side set to the node ids bounding each
// referenced side: fetch the (element id, local side id) pairs, verify the
// single side id invariant, locate the owning block through the element id
// partition, map the side id to the topology's local node pattern, and
// gather those connectivity columns for every referenced element.
func (msh *Mesh) sideSetTable(ssName string) (R utils.Matrix, err error) {
	if msh.closed {
		return R, ErrClosed
	}
	sname := strings.ToLower(ssName)
	ssid := 0
	for i, name := range msh.sideSets {
		if name == sname {
			ssid = i + 1
			break
		}
	}
	if ssid == 0 {
		return R, fmt.Errorf("%w: no side set named %q in mesh: %s",
			ErrUnknownName, ssName, msh.path)
	}

	elemIDs, err := msh.store.VarInt(fmt.Sprintf("elem_ss%d", ssid))
	if err != nil {
		return R, err
	}
	sideIDs, err := msh.store.VarInt(fmt.Sprintf("side_ss%d", ssid))
	if err != nil {
		return R, err
	}
	if len(elemIDs) == 0 {
		// empty side set resolves to an empty table
		return utils.Matrix{}, nil
	}

	// A mix of side ids would need a per-entry node pattern; fail instead
	// of guessing.
	for _, sid := range sideIDs {
		if sid != sideIDs[0] {
			return R, fmt.Errorf("%w: side set %q mixes side ids %d and %d in mesh: %s",
				ErrHeterogeneousSideSet, sname, sideIDs[0], sid, msh.path)
		}
	}

	// The owning block is probed via the minimum referenced element id; a
	// side set is assumed to stay within one block, and the per-element
	// range check below rejects sets that do not.
	ord, err := msh.index.LocateBlock(utils.Index(elemIDs).Min())
	if err != nil {
		return R, err
	}
	bc, err := msh.blockConnectivity(ord)
	if err != nil {
		return R, err
	}
	topo, ok := types.NewTopology(bc.Topo)
	if !ok {
		return R, fmt.Errorf("%w: elem_type %q of block %d in mesh: %s",
			ErrUnsupportedTopology, bc.Topo, ord, msh.path)
	}
	sideNodes, ok := types.SideNodes(topo, sideIDs[0])
	if !ok {
		return R, fmt.Errorf("%w: side %d of %s in mesh: %s",
			ErrUnsupportedTopology, sideIDs[0], topo, msh.path)
	}
	// An elem_type claiming a wider cell than the connectivity table holds
	// marks the file as corrupt.
	_, nodesPerElem := bc.EToV.Dims()
	for _, node := range sideNodes {
		if node > nodesPerElem-1 {
			return R, fmt.Errorf("%w: side %d of %s needs local node %d but block %d stores %d nodes per element in mesh: %s",
				ErrOutOfRange, sideIDs[0], topo, node, ord, nodesPerElem, msh.path)
		}
	}

	var (
		start = msh.index.StartOffset(ord)
		count = msh.index.ElementCount(ord)
		rows  = utils.NewIndex(len(elemIDs))
	)
	for i, eid := range elemIDs {
		local := eid - start - 1
		if local < 0 || local > count-1 {
			return R, fmt.Errorf("%w: element id %d outside block %d of side set %q in mesh: %s",
				ErrOutOfRange, eid, ord, sname, msh.path)
		}
		rows[i] = local
	}
	R = bc.EToV.Subset(rows, utils.Index(sideNodes))
	return R, nil
}

// SideSetNodeTable returns, for each (element, side) entry of a side set,
// the 0-based global node ids bounding that side, one row per entry with
// columns in canonical side-local order. Side set lookup is
// case-insensitive.
func (msh *Mesh) SideSetNodeTable(ssName string) (utils.Matrix, error) {
	return msh.sideSetTable(ssName)
}

// SideSetNodes returns the sorted unique 0-based global node ids lying on a
// side set.
func (msh *Mesh) SideSetNodes(ssName string) (I utils.Index, err error) {
	R, err := msh.sideSetTable(ssName)
	if err != nil {
		return nil, err
	}
	if R.IsEmpty() {
		return utils.Index{}, nil
	}
	I = utils.NewFromFloat(R.Data()).Unique()
	return
}
