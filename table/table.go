// Package table implements the single-leaf B-tree: node layout, cursor,
// and the table that owns the pager and the root page.
package table

import (
	"errors"
	"fmt"

	"db_tutorial/pager"
	"db_tutorial/row"

	"github.com/spf13/afero"
)

// ErrTableFull and ErrDuplicateKey are the two execute-time errors this
// engine can raise; both are statement-local per spec.md §7.
var (
	ErrTableFull    = errors.New("Error: Table full.")
	ErrDuplicateKey = errors.New("Error: Duplicate key.")
)

const rootPageNum = 0

// Table pairs a pager with the (fixed) root page number.
type Table struct {
	pager       *pager.Pager
	RootPageNum uint32
}

// Open maps path through the pager and, on a brand-new file, initializes
// page 0 in memory as an empty leaf root.
func Open(fs afero.Fs, path string) (*Table, error) {
	pg, err := pager.Open(fs, path)
	if err != nil {
		return nil, err
	}

	t := &Table{pager: pg, RootPageNum: rootPageNum}

	if pg.NumPages() == 0 {
		root, err := pg.GetPage(rootPageNum)
		if err != nil {
			return nil, err
		}
		initializeLeaf(root)
		setIsRoot(root, true)
	}

	return t, nil
}

// Close flushes every resident page and releases the pager.
func (t *Table) Close() error {
	return t.pager.Close()
}

// NumRows reports how many cells currently live in the root leaf.
func (t *Table) NumRows() (uint32, error) {
	page, err := t.pager.GetPage(t.RootPageNum)
	if err != nil {
		return 0, err
	}
	return leafNumCells(page), nil
}

// BTreeCell is one row the .btree meta-command prints: its cell index
// within the leaf and its key.
type BTreeCell struct {
	Index uint32
	Key   uint32
}

// LeafCells returns every (index, key) pair in the root leaf, in cell
// order, for the .btree meta-command.
func (t *Table) LeafCells() ([]BTreeCell, error) {
	page, err := t.pager.GetPage(t.RootPageNum)
	if err != nil {
		return nil, err
	}
	n := leafNumCells(page)
	cells := make([]BTreeCell, 0, n)
	for i := uint32(0); i < n; i++ {
		cells = append(cells, BTreeCell{Index: i, Key: leafKey(page, i)})
	}
	return cells, nil
}

// Constants renders the .constants block in the bit-exact form spec.md §6
// requires.
func Constants() string {
	return fmt.Sprintf(
		"Constants:\nROW_SIZE: %d\nCOMMON_NODE_HEADER_SIZE: %d\nLEAF_NODE_HEADER_SIZE: %d\nLEAF_NODE_CELL_SIZE: %d\nLEAF_NODE_SPACE_FOR_CELLS: %d\nLEAF_NODE_MAX_CELLS: %d",
		row.Size,
		CommonNodeHeaderSize,
		LeafNodeHeaderSize,
		LeafNodeCellSize,
		LeafNodeSpaceForCells,
		LeafNodeMaxCells,
	)
}
