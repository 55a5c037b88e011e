package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake/cmd/quake/catutil"
	"github.com/urfave/cli/v2"
)

// NewConvertCommand returns a cli.Command for "quake convert".
func NewConvertCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "convert",
		Usage:     "Convert catalog files of any supported format to QuakeML.",
		UsageText: `quake convert [options] file [file...]`,
		Description: `The convert command reads one or more catalog files and writes a single
QuakeML document. Events from several inputs are merged in argument order.

By default, the document is sent to the standard output:

$ quake convert feed.json

The convert command can also write directly into a file:

$ quake convert -o catalog.xml feed.json more.xml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
		},
	}

	cmd.Action = func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return errors.New(cmd.UsageText)
		}

		var w io.Writer = os.Stdout

		if f := c.String("output"); f != "" {
			file, err := os.Create(f)
			if err != nil {
				return err
			}
			defer file.Close()

			w = file
		}

		return catutil.Convert(w, c.Args().Slice()...)
	}

	return &cmd
}
