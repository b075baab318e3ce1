package table

import (
	"db_tutorial/pager"
	"db_tutorial/row"
)

// Leaf node layout constants. These are the public contract reported
// verbatim by the REPL's .constants meta-command — never let the
// compiler's own struct padding stand in for them.
const (
	NodeTypeInternal = byte(0)
	NodeTypeLeaf     = byte(1)

	// Common node header: node_type(1) + is_root(1) + parent_pointer(4).
	CommonNodeHeaderSize = 6
	nodeTypeOffset       = 0
	isRootOffset         = 1
	parentPointerOffset  = 2

	// Leaf header adds num_cells(4) on top of the common header.
	LeafNodeHeaderSize   = CommonNodeHeaderSize + 4
	leafNumCellsOffset   = CommonNodeHeaderSize

	LeafNodeKeySize    = 4
	leafNodeKeyOffset  = 0
	leafNodeValueOffset = LeafNodeKeySize

	LeafNodeCellSize       = LeafNodeKeySize + row.Size // 297
	LeafNodeSpaceForCells  = pager.PageSize - LeafNodeHeaderSize
	LeafNodeMaxCells       = LeafNodeSpaceForCells / LeafNodeCellSize // 13
)

func leafCellOffset(cellNum uint32) uint32 {
	return LeafNodeHeaderSize + cellNum*LeafNodeCellSize
}
