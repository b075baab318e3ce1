package table

import (
	"encoding/binary"

	"db_tutorial/pager"
)

// nodeType returns the page's node type byte. Only leaf nodes exist in
// this engine; the byte is still read/written so the on-disk layout
// matches spec.md's common header exactly.
func nodeType(p *pager.Page) byte {
	return p.Data[nodeTypeOffset]
}

func setNodeType(p *pager.Page, t byte) {
	p.Data[nodeTypeOffset] = t
}

func isRoot(p *pager.Page) bool {
	return p.Data[isRootOffset] != 0
}

func setIsRoot(p *pager.Page, v bool) {
	if v {
		p.Data[isRootOffset] = 1
	} else {
		p.Data[isRootOffset] = 0
	}
}

func parentPointer(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[parentPointerOffset : parentPointerOffset+4])
}

func setParentPointer(p *pager.Page, parent uint32) {
	binary.LittleEndian.PutUint32(p.Data[parentPointerOffset:parentPointerOffset+4], parent)
}

func leafNumCells(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[leafNumCellsOffset : leafNumCellsOffset+4])
}

func setLeafNumCells(p *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(p.Data[leafNumCellsOffset:leafNumCellsOffset+4], n)
}

// leafCell returns the raw 297-byte cell (key + serialized row) at i.
func leafCell(p *pager.Page, i uint32) []byte {
	off := leafCellOffset(i)
	return p.Data[off : off+LeafNodeCellSize]
}

func leafKey(p *pager.Page, i uint32) uint32 {
	cell := leafCell(p, i)
	return binary.LittleEndian.Uint32(cell[leafNodeKeyOffset : leafNodeKeyOffset+LeafNodeKeySize])
}

func setLeafKey(p *pager.Page, i uint32, key uint32) {
	cell := leafCell(p, i)
	binary.LittleEndian.PutUint32(cell[leafNodeKeyOffset:leafNodeKeyOffset+LeafNodeKeySize], key)
}

// leafValue returns the cell's value region, sized exactly row.Size.
func leafValue(p *pager.Page, i uint32) []byte {
	cell := leafCell(p, i)
	return cell[leafNodeValueOffset : leafNodeValueOffset+LeafNodeCellSize-LeafNodeKeySize]
}

// initializeLeaf resets a page to an empty leaf: node type leaf,
// is_root=false (the caller overrides for the root page), num_cells=0.
func initializeLeaf(p *pager.Page) {
	setNodeType(p, NodeTypeLeaf)
	setIsRoot(p, false)
	setLeafNumCells(p, 0)
}
