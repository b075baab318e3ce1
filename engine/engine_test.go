package engine

import (
	"testing"

	"db_tutorial/row"
	"db_tutorial/table"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) *table.Table {
	t.Helper()
	fs := afero.NewMemMapFs()
	tbl, err := table.Open(fs, "test.db")
	require.NoError(t, err)
	return tbl
}

func TestInsertThenSelectRoundTrip(t *testing.T) {
	tbl := newTable(t)

	lines, err := Execute(tbl, Statement{
		Kind: StatementInsert,
		Row:  row.Row{ID: 1, Username: "user1", Email: "person1@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Executed."}, lines)

	lines, err = Execute(tbl, Statement{Kind: StatementSelect})
	require.NoError(t, err)
	assert.Equal(t, []string{"(1, user1, person1@example.com)", "Executed."}, lines)
}

func TestSelectOnEmptyTableOnlyExecuted(t *testing.T) {
	tbl := newTable(t)
	lines, err := Execute(tbl, Statement{Kind: StatementSelect})
	require.NoError(t, err)
	assert.Equal(t, []string{"Executed."}, lines)
}

func TestDuplicateKeyIsRenderedAsExecuteError(t *testing.T) {
	tbl := newTable(t)
	stmt := Statement{Kind: StatementInsert, Row: row.Row{ID: 1, Username: "user1", Email: "person1@example.com"}}

	lines, err := Execute(tbl, stmt)
	require.NoError(t, err)
	assert.Equal(t, []string{"Executed."}, lines)

	lines, err = Execute(tbl, stmt)
	require.NoError(t, err)
	assert.Equal(t, []string{"Error: Duplicate key."}, lines)
}

func TestTableFullIsRenderedAsExecuteError(t *testing.T) {
	tbl := newTable(t)
	for id := uint32(1); id <= table.LeafNodeMaxCells; id++ {
		lines, err := Execute(tbl, Statement{Kind: StatementInsert, Row: row.Row{ID: id, Username: "u", Email: "e@x.com"}})
		require.NoError(t, err)
		require.Equal(t, []string{"Executed."}, lines)
	}

	lines, err := Execute(tbl, Statement{Kind: StatementInsert, Row: row.Row{ID: table.LeafNodeMaxCells + 1, Username: "u", Email: "e@x.com"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Error: Table full."}, lines)
}
