// Package engine is the command executor: it drives a table's cursor on
// behalf of already-parsed statements and renders the exact user-visible
// output lines spec.md defines. The REPL sends every insert and select
// through it; the REPL still uses table directly to open and close the
// table and for the .constants and .btree meta-commands.
package engine

import (
	"errors"
	"strconv"

	"db_tutorial/row"
	"db_tutorial/table"
)

// StatementKind distinguishes the two SQL-like commands this engine
// supports.
type StatementKind int

const (
	StatementInsert StatementKind = iota
	StatementSelect
)

// Statement is a fully parsed, already-validated command. The REPL's
// parser builds one of these from a line of input; Execute never sees
// raw text.
type Statement struct {
	Kind StatementKind
	Row  row.Row
}

// Execute runs stmt against t and returns the output lines a REPL prints,
// in order, not including the trailing prompt.
func Execute(t *table.Table, stmt Statement) ([]string, error) {
	switch stmt.Kind {
	case StatementInsert:
		return executeInsert(t, stmt.Row)
	case StatementSelect:
		return executeSelect(t)
	default:
		return nil, nil
	}
}

func executeInsert(t *table.Table, r row.Row) ([]string, error) {
	cursor, err := table.TableFind(t, r.ID)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, row.Size)
	if err := row.Serialize(r, buf); err != nil {
		return nil, err
	}

	if err := cursor.LeafInsert(r.ID, buf); err != nil {
		if errors.Is(err, table.ErrTableFull) || errors.Is(err, table.ErrDuplicateKey) {
			return []string{err.Error()}, nil
		}
		return nil, err
	}

	return []string{"Executed."}, nil
}

func executeSelect(t *table.Table) ([]string, error) {
	cursor, err := table.TableStart(t)
	if err != nil {
		return nil, err
	}

	var lines []string
	for !cursor.EndOfTable {
		buf, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		r, err := row.Deserialize(buf)
		if err != nil {
			return nil, err
		}
		lines = append(lines, formatRow(r))
		if err := cursor.Advance(); err != nil {
			return nil, err
		}
	}
	lines = append(lines, "Executed.")
	return lines, nil
}

func formatRow(r row.Row) string {
	return "(" + strconv.FormatUint(uint64(r.ID), 10) + ", " + r.Username + ", " + r.Email + ")"
}
