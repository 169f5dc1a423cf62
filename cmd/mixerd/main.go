// Package main is the entry point for mixerd, the mixer status daemon, and
// its command-line client.
package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edumarques81/mixerd/internal/config"
	"github.com/edumarques81/mixerd/internal/version"
)

// CLI is the root command.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path." default:"${config_path}" type:"path"`
	Debug   bool             `short:"d" help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Show version and exit."`

	Serve  ServeCmd  `cmd:"" default:"withargs" help:"Run the daemon."`
	Status StatusCmd `cmd:"" help:"Fetch and print the status from a running daemon."`
	Conf   ConfCmd   `cmd:"" name:"config" help:"Manage the configuration file."`
}

// AfterApply sets up logging once flags are parsed.
func (c *CLI) AfterApply() error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}

// ConfCmd groups configuration subcommands.
type ConfCmd struct {
	Init ConfInitCmd `cmd:"" help:"Write an example configuration file."`
}

type ConfInitCmd struct {
	Force bool `help:"Overwrite an existing file."`
}

func (c *ConfInitCmd) Run(cli *CLI) error {
	if err := config.WriteExample(cli.Config, c.Force); err != nil {
		return err
	}
	log.Info().Str("path", cli.Config).Msg("Configuration written")
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name(version.Name),
		kong.Description("Mixer status daemon."),
		kong.UsageOnError(),
		kong.Vars{
			"config_path": config.DefaultPath,
			"version":     version.GetInfo().String(),
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli); err != nil {
		log.Fatal().Err(err).Str("command", ctx.Command()).Msg("Command failed")
	}
}
