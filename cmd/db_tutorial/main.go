// Command db_tutorial is the interactive REPL entry point: it opens (or
// creates) the given database file and drives the read-eval-print loop
// until ".exit".
package main

import (
	"os"

	"db_tutorial/repl"
	"db_tutorial/table"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var cli struct {
	DatabasePath string `arg:"" name:"database-file-path" help:"Path to the database file to open or create."`
	LogLevel     string `name:"log-level" default:"error" help:"Logging verbosity for fatal/corruption conditions."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("db_tutorial"),
		kong.Description("A minimal single-file relational storage engine."),
	)

	log := logrus.New()
	if level, err := logrus.ParseLevel(cli.LogLevel); err == nil {
		log.SetLevel(level)
	}

	t, err := table.Open(afero.NewOsFs(), cli.DatabasePath)
	if err != nil {
		log.WithError(err).WithField("path", cli.DatabasePath).Error("db_tutorial: opening database file")
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{Prompt: repl.Prompt})
	if err != nil {
		log.WithError(err).Error("db_tutorial: starting readline")
		os.Exit(1)
	}
	defer rl.Close()

	os.Exit(repl.Run(t, rl, log))
}
