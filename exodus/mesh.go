// Package exodus is a read-only access layer over Exodus-II meshes stored
// in NetCDF containers. It recovers the domain concepts an analyst needs
// from the raw columnar arrays: named element blocks and their
// connectivity, named side sets resolved to the node ids bounding them, and
// node coordinates.
package exodus

import (
	"fmt"

	"github.com/nalutools/exomesh/utils"
)

// Mesh is an opened Exodus-II mesh. It owns its Store exclusively and
// releases it on Close. All derived views (names, block partition,
// coordinates, connectivity) are built once and never mutated afterwards;
// coordinate and connectivity caches fill on first access. The Mesh
// performs no internal locking: concurrent readers must pre-warm caches or
// serialize first-access calls.
type Mesh struct {
	path  string
	store Store

	// NDim is the dimensionality of the mesh.
	NDim int
	// NumElements is the total number of elements in the mesh.
	NumElements int
	// NumNodes is the total number of nodes in the mesh.
	NumNodes int

	blocks   []string
	sideSets []string
	index    *BlockIndex

	xco, yco, zco *utils.Vector
	conn          map[int]*blockConn

	closed bool
}

type blockConn struct {
	EToV utils.Matrix // element to vertex table, 0-based node ids
	Topo string       // elem_type attribute as stored
}

// Open opens the Exodus-II NetCDF file at path.
func Open(path string) (msh *Mesh, err error) {
	store, err := OpenNetCDF(path)
	if err != nil {
		return nil, err
	}
	return NewMesh(store)
}

// NewMesh builds a Mesh over an opened Store. Ownership of the store
// transfers to the Mesh; it is closed on every construction error path.
func NewMesh(store Store) (msh *Mesh, err error) {
	msh = &Mesh{
		path:  store.Path(),
		store: store,
		conn:  make(map[int]*blockConn),
	}
	defer func() {
		if err != nil {
			store.Close()
		}
	}()

	if msh.NDim, err = msh.requireDim("num_dim"); err != nil {
		return nil, err
	}
	if msh.NumElements, err = msh.requireDim("num_elem"); err != nil {
		return nil, err
	}
	if msh.NumNodes, err = msh.requireDim("num_nodes"); err != nil {
		return nil, err
	}
	if err = msh.processBlockNames(); err != nil {
		return nil, err
	}
	if err = msh.processSideSetNames(); err != nil {
		return nil, err
	}
	return msh, nil
}

func (msh *Mesh) requireDim(name string) (size int, err error) {
	size, ok := msh.store.Dim(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s in mesh: %s", ErrMissingDimension, name, msh.path)
	}
	return size, nil
}

// processBlockNames derives the ordered block name list and builds the
// element id partition. Names come from eb_names when present, otherwise
// they are synthesized as block-<i> from the block count dimension.
func (msh *Mesh) processBlockNames() (err error) {
	switch {
	case msh.store.HasVar("eb_names"):
		raw, err := msh.store.VarNames("eb_names")
		if err != nil {
			return err
		}
		msh.blocks = convertNames(raw)
	default:
		if nblk, ok := msh.store.Dim("num_el_blk"); ok {
			msh.blocks = make([]string, nblk)
			for i := range msh.blocks {
				msh.blocks[i] = fmt.Sprintf("block-%d", i+1)
			}
		}
	}

	counts := make([]int, len(msh.blocks))
	for i := range msh.blocks {
		if counts[i], err = msh.requireDim(fmt.Sprintf("num_el_in_blk%d", i+1)); err != nil {
			return err
		}
	}
	msh.index = NewBlockIndex(msh.blocks, counts)
	return nil
}

// processSideSetNames derives the ordered side set name list. A file can
// declare a ss_names variable without populating it; when the first decoded
// entry is empty the whole list is synthesized as surface-<i>.
func (msh *Mesh) processSideSetNames() error {
	nss, ok := msh.store.Dim("num_side_sets")
	if !ok || nss == 0 {
		return nil
	}
	if !msh.store.HasVar("ss_names") {
		return nil
	}
	raw, err := msh.store.VarNames("ss_names")
	if err != nil {
		return err
	}
	names := convertNames(raw)
	if len(names) == 0 || names[0] == "" {
		names = make([]string, nss)
		for i := range names {
			names[i] = fmt.Sprintf("surface-%d", i+1)
		}
	}
	msh.sideSets = names
	return nil
}

// Path returns the filename being processed.
func (msh *Mesh) Path() string { return msh.path }

// Blocks returns the ordered element block names, lowercased. Callers must
// not modify the returned slice.
func (msh *Mesh) Blocks() []string { return msh.blocks }

// SideSets returns the ordered side set names, lowercased. Callers must not
// modify the returned slice.
func (msh *Mesh) SideSets() []string { return msh.sideSets }

// NumBlocks returns the number of element blocks present in the file.
func (msh *Mesh) NumBlocks() int { return len(msh.blocks) }

// NumSideSets returns the number of side sets present in the file.
func (msh *Mesh) NumSideSets() int { return len(msh.sideSets) }

// Index returns the block index over the global element id partition.
func (msh *Mesh) Index() *BlockIndex { return msh.index }

// Close releases the backing store. Safe to call more than once.
func (msh *Mesh) Close() error {
	if msh.closed {
		return nil
	}
	msh.closed = true
	return msh.store.Close()
}
