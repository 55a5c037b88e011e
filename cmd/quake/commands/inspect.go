package commands

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake/cmd/quake/catutil"
	"github.com/urfave/cli/v2"
)

// NewInspectCommand returns a cli.Command for "quake inspect".
func NewInspectCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "inspect",
		Usage:     "Print a per-event summary of one or more catalog files.",
		UsageText: `quake inspect file [file...]`,
		Description: `The inspect command reads catalog files of any supported format and
prints the detected format followed by a one-line summary per event:

$ quake inspect catalog.xml
catalog.xml: quakeml
2 Event(s) in Catalog:
2011-03-11T05:46:24.000000Z | +38.297, +142.373 | 9.1 MW
2006-09-10T04:26:33.000000Z | +9.614, +121.961 | 5.8 MS`,
	}

	cmd.Action = func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return errors.New(cmd.UsageText)
		}

		return catutil.Summarize(os.Stdout, c.Args().Slice()...)
	}

	return &cmd
}
