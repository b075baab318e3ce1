package table

import "fmt"

// Cursor is a logical position into the table: page number, cell index,
// and an end-of-table flag. It carries a short-lived reference to the
// table it iterates; it is not meant to outlive the call that created it.
type Cursor struct {
	table      *Table
	PageNum    uint32
	CellNum    uint32
	EndOfTable bool
}

// TableStart returns a cursor positioned at the first cell of the table.
func TableStart(t *Table) (*Cursor, error) {
	c, err := TableFind(t, 0)
	if err != nil {
		return nil, err
	}
	page, err := t.pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	c.EndOfTable = leafNumCells(page) == 0
	c.CellNum = 0
	return c, nil
}

// TableFind performs a binary search over the root leaf's cells and
// returns a cursor at the matching key if present, else at the smallest
// index whose key is greater than key (the insertion point).
func TableFind(t *Table, key uint32) (*Cursor, error) {
	page, err := t.pager.GetPage(t.RootPageNum)
	if err != nil {
		return nil, err
	}

	numCells := leafNumCells(page)
	lo, hi := uint32(0), numCells
	for lo < hi {
		mid := lo + (hi-lo)/2
		midKey := leafKey(page, mid)
		switch {
		case midKey == key:
			return &Cursor{table: t, PageNum: t.RootPageNum, CellNum: mid}, nil
		case key < midKey:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	return &Cursor{table: t, PageNum: t.RootPageNum, CellNum: lo}, nil
}

// Advance moves the cursor to the next cell, setting EndOfTable once it
// runs past the last one.
func (c *Cursor) Advance() error {
	page, err := c.table.pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}
	c.CellNum++
	if c.CellNum >= leafNumCells(page) {
		c.EndOfTable = true
	}
	return nil
}

// Value returns the raw value region of the cursor's current cell.
func (c *Cursor) Value() ([]byte, error) {
	page, err := c.table.pager.GetPage(c.PageNum)
	if err != nil {
		return nil, err
	}
	return leafValue(page, c.CellNum), nil
}

// Key returns the key of the cursor's current cell.
func (c *Cursor) Key() (uint32, error) {
	page, err := c.table.pager.GetPage(c.PageNum)
	if err != nil {
		return 0, err
	}
	return leafKey(page, c.CellNum), nil
}

// LeafInsert inserts key/serialized-row at the cursor's position,
// shifting later cells right. The cursor must have been positioned by
// TableFind(key) first. This engine holds to a single leaf node: once
// LeafNodeMaxCells is reached it reports ErrTableFull instead of
// splitting.
func (c *Cursor) LeafInsert(key uint32, serializedRow []byte) error {
	page, err := c.table.pager.GetPage(c.PageNum)
	if err != nil {
		return err
	}

	numCells := leafNumCells(page)
	if numCells >= LeafNodeMaxCells {
		return ErrTableFull
	}

	if c.CellNum < numCells && leafKey(page, c.CellNum) == key {
		return ErrDuplicateKey
	}

	for i := numCells; i > c.CellNum; i-- {
		copy(leafCell(page, i), leafCell(page, i-1))
	}

	setLeafKey(page, c.CellNum, key)
	value := leafValue(page, c.CellNum)
	if len(value) != len(serializedRow) {
		return fmt.Errorf("table: leaf value region is %d bytes, row is %d", len(value), len(serializedRow))
	}
	copy(value, serializedRow)

	setLeafNumCells(page, numCells+1)
	return nil
}
