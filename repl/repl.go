package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"db_tutorial/engine"
	"db_tutorial/table"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
)

// Prompt is the literal prompt spec.md requires before every command.
const Prompt = "db > "

// Run drives the interactive loop: read a line, dispatch it as a
// meta-command or a statement, print the resulting lines, repeat. It
// returns the process exit code: 0 on a clean ".exit", non-zero if a
// fatal I/O or corruption error surfaced from the core.
func Run(t *table.Table, rl *readline.Instance, log *logrus.Logger) int {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return closeTable(t, log)
		}
		if err != nil {
			log.WithError(err).Error("repl: reading input")
			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			result, lines := HandleMeta(t, line)
			printLines(lines)
			if result == MetaExit {
				return closeTable(t, log)
			}
			continue
		}

		stmt, perr := Parse(line)
		if perr != nil {
			printLines([]string{perr.Error()})
			continue
		}

		lines, err := engine.Execute(t, stmt)
		if err != nil {
			log.WithError(err).WithField("line", line).Error("repl: executing statement")
			return 1
		}
		printLines(lines)
	}
}

func closeTable(t *table.Table, log *logrus.Logger) int {
	if err := t.Close(); err != nil {
		log.WithError(err).Error("repl: closing table")
		return 1
	}
	return 0
}

func printLines(lines []string) {
	for _, l := range lines {
		fmt.Println(l)
	}
}
