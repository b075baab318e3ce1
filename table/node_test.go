package table

import (
	"testing"

	"db_tutorial/pager"

	"github.com/stretchr/testify/assert"
)

func TestInitializeLeafSetsHeaderFields(t *testing.T) {
	p := &pager.Page{}
	initializeLeaf(p)

	assert.Equal(t, NodeTypeLeaf, nodeType(p))
	assert.False(t, isRoot(p))
	assert.EqualValues(t, 0, leafNumCells(p))
}

func TestLeafKeyValueRoundTrip(t *testing.T) {
	p := &pager.Page{}
	initializeLeaf(p)
	setLeafNumCells(p, 2)

	setLeafKey(p, 0, 42)
	copy(leafValue(p, 0), []byte("hello"))

	setLeafKey(p, 1, 7)
	copy(leafValue(p, 1), []byte("world"))

	assert.EqualValues(t, 42, leafKey(p, 0))
	assert.EqualValues(t, 7, leafKey(p, 1))
	assert.Equal(t, byte('h'), leafValue(p, 0)[0])
	assert.Equal(t, byte('w'), leafValue(p, 1)[0])
}

func TestMaxCellsFitsInSpace(t *testing.T) {
	assert.LessOrEqual(t, uint32(LeafNodeMaxCells)*uint32(LeafNodeCellSize)+uint32(LeafNodeHeaderSize), uint32(pager.PageSize))
	assert.Greater(t, (uint32(LeafNodeMaxCells)+1)*uint32(LeafNodeCellSize)+uint32(LeafNodeHeaderSize), uint32(pager.PageSize))
}
