// Package repl is the outer, non-core layer: the statement tokenizer and
// the interactive loop that dispatches parsed commands to engine.Execute.
// None of the storage core depends on this package. Statements go through
// engine.Statement and engine.Execute; the table itself is used directly
// for closing and for the .constants and .btree meta-commands.
package repl

import (
	"fmt"
	"strconv"
	"strings"

	"db_tutorial/engine"
	"db_tutorial/row"
)

// ParseError is a statement-local parse failure rendered verbatim by the
// REPL; its Error() text matches spec.md §6/§7 exactly.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string { return e.msg }

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// Parse tokenizes one line of input into an engine.Statement. Only
// "insert <id> <username> <email>" and "select" are recognized.
func Parse(line string) (engine.Statement, *ParseError) {
	if line == "select" {
		return engine.Statement{Kind: engine.StatementSelect}, nil
	}
	if strings.HasPrefix(line, "insert") {
		return parseInsert(line)
	}
	return engine.Statement{}, parseErrorf("Unrecognized keyword at start of '%s'.", line)
}

func parseInsert(line string) (engine.Statement, *ParseError) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return engine.Statement{}, parseErrorf("Syntax error. Could not parse statement.")
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return engine.Statement{}, parseErrorf("Syntax error. Could not parse statement.")
	}
	if id < 1 {
		return engine.Statement{}, parseErrorf("ID must be positive.")
	}

	username, email := fields[2], fields[3]
	if len(username) > row.UsernameMaxLength || len(email) > row.EmailMaxLength {
		return engine.Statement{}, parseErrorf("String is too long.")
	}

	return engine.Statement{
		Kind: engine.StatementInsert,
		Row:  row.Row{ID: uint32(id), Username: username, Email: email},
	}, nil
}
