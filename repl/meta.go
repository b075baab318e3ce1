package repl

import (
	"fmt"
	"strconv"

	"db_tutorial/table"
)

// MetaResult tells the caller what a meta-command did, since ".exit"
// needs to trigger a clean shutdown rather than just print a line.
type MetaResult int

const (
	MetaHandled MetaResult = iota
	MetaExit
	MetaUnrecognized
)

// HandleMeta dispatches a leading-dot command and returns the output
// lines to print (if any) alongside what the caller should do next.
func HandleMeta(t *table.Table, line string) (MetaResult, []string) {
	switch line {
	case ".exit":
		return MetaExit, nil
	case ".constants":
		return MetaHandled, []string{table.Constants()}
	case ".btree":
		return MetaHandled, []string{btreeLines(t)}
	default:
		return MetaUnrecognized, []string{fmt.Sprintf("Unrecognized command '%s'.", line)}
	}
}

// btreeLines renders the .btree output: a "Tree:" header, the leaf size,
// and one "  - i : key" line per cell, in cell order.
func btreeLines(t *table.Table) string {
	cells, err := t.LeafCells()
	if err != nil {
		return "Tree:\nleaf (size 0)"
	}

	out := "Tree:\nleaf (size " + strconv.Itoa(len(cells)) + ")"
	for _, c := range cells {
		out += "\n  - " + strconv.FormatUint(uint64(c.Index), 10) + " : " + strconv.FormatUint(uint64(c.Key), 10)
	}
	return out
}
