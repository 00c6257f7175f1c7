package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"

	"github.com/lox/holdem/cmd/holdem/shared"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Debug    bool `help:"Enable debug logging"`
	JSONLogs bool `name:"json-logs" help:"Log engine events as JSON"`

	out io.Writer
}

// Logger returns the engine logger for the selected output.
func (g *Globals) Logger() zerolog.Logger {
	if g.JSONLogs {
		return shared.SetupStructuredLogger(os.Stderr, g.Debug)
	}
	return shared.SetupLogger(g.Debug)
}

// Status returns the logger for progress messages.
func (g *Globals) Status() *log.Logger {
	return shared.SetupStatusLogger(g.Debug)
}

// Out is where command results are written.
func (g *Globals) Out() io.Writer {
	if g.out == nil {
		return os.Stdout
	}
	return g.out
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Eval     EvalCmd          `cmd:"" help:"Evaluate a hand with optional board"`
	Equity   EquityCmd        `cmd:"" help:"Estimate equity by Monte Carlo simulation"`
	Simulate SimulateCmd      `cmd:"" help:"Play check/call hands at the configured tables"`
	Inspect  InspectCmd       `cmd:"" help:"Print a saved snapshot or PHH hand history"`
}

func main() {
	var cli CLI
	parser := kong.Must(&cli, options()...)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("holdem"),
		kong.Description("Texas Hold'em rules engine tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}
}
