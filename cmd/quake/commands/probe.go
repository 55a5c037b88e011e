package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake"
	"github.com/urfave/cli/v2"
)

// NewProbeCommand returns a cli.Command for "quake probe".
func NewProbeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "probe",
		Usage:     "Report the detected format of each file.",
		UsageText: `quake probe file [file...]`,
		Description: `The probe command reports which registered format recognizes each file:

$ quake probe catalog.xml feed.json notes.txt
catalog.xml: quakeml
feed.json: geojson
notes.txt: unknown

It exits with an error if any file is not recognized.`,
	}

	cmd.Action = func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return errors.New(cmd.UsageText)
		}

		var unknown int
		for _, path := range c.Args().Slice() {
			name, ok := quake.DetectFormat(path)
			if !ok {
				name = "unknown"
				unknown++
			}
			fmt.Printf("%s: %s\n", path, name)
		}
		if unknown > 0 {
			return errors.Newf("%d file(s) not recognized", unknown)
		}

		return nil
	}

	return &cmd
}
