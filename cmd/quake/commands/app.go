package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/seiskit/quake/cmd/quake/catutil"
	"github.com/urfave/cli/v2"
)

// NewApp creates the quake CLI app.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "quake"
	app.Usage = "Inspect, convert and store seismic event catalogs"
	app.EnableBashCompletion = true

	app.Commands = []*cli.Command{
		NewInspectCommand(),
		NewProbeCommand(),
		NewConvertCommand(),
		NewStoreCommand(),
		NewVersionCommand(),
	}

	// inject cancelable context to all commands
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		defer cancel()
		<-ch
	}()

	var inject func(cmds []*cli.Command)
	inject = func(cmds []*cli.Command) {
		for i := range cmds {
			if action := cmds[i].Action; action != nil {
				cmds[i].Action = func(c *cli.Context) error {
					c.Context = ctx
					return action(c)
				}
			}
			inject(cmds[i].Subcommands)
		}
	}
	inject(app.Commands)

	// Root command: "quake file..." behaves like "quake inspect file...".
	app.Action = func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return cli.ShowAppHelp(c)
		}

		return catutil.Summarize(os.Stdout, c.Args().Slice()...)
	}

	app.After = func(c *cli.Context) error {
		cancel()
		return nil
	}

	return app
}
