package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake/cmd/quake/catutil"
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/quakeml"
	"github.com/urfave/cli/v2"
)

// NewStoreCommand returns a cli.Command for "quake store".
func NewStoreCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "store",
		Usage:     "Manage a local event store.",
		UsageText: `quake store [options] command [arguments...]`,
		Description: `The store command keeps events in a local key-value store so catalogs
can be collected from several files and exported as one document:

$ quake store --db events.db ingest feed.json catalog.xml
3 event(s) ingested
$ quake store --db events.db ls
$ quake store --db events.db export -o merged.xml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "path to the event store. Defaults to an in-memory store.",
			},
		},
	}

	cmd.Subcommands = []*cli.Command{
		newStoreIngestCommand(),
		newStoreLsCommand(),
		newStoreGetCommand(),
		newStoreExportCommand(),
	}

	return &cmd
}

func newStoreIngestCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "ingest",
		Usage:     "Read catalog files into the store.",
		UsageText: `quake store --db path ingest file [file...]`,
	}

	cmd.Action = func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return errors.New(cmd.UsageText)
		}

		s, err := catutil.OpenStore(c.String("db"))
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := catutil.Ingest(s, c.Args().Slice()...)
		if err != nil {
			return err
		}

		fmt.Printf("%d event(s) ingested\n", n)
		return nil
	}

	return &cmd
}

func newStoreLsCommand() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List the stored events, one line per event.",
		UsageText: `quake store --db path ls`,
		Action: func(c *cli.Context) error {
			s, err := catutil.OpenStore(c.String("db"))
			if err != nil {
				return err
			}
			defer s.Close()

			return s.ForEach(func(ev *event.Event) error {
				_, err := fmt.Printf("%s\t%s\n", ev.ResourceID, ev)
				return err
			})
		},
	}
}

func newStoreGetCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "get",
		Usage:     "Write one stored event as QuakeML to the standard output.",
		UsageText: `quake store --db path get id`,
	}

	cmd.Action = func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return errors.New(cmd.UsageText)
		}

		s, err := catutil.OpenStore(c.String("db"))
		if err != nil {
			return err
		}
		defer s.Close()

		ev, err := s.Get(event.ResourceIdentifier(c.Args().First()))
		if err != nil {
			return err
		}

		var out event.Catalog
		out.Append(*ev)
		return quakeml.Encode(&out, os.Stdout)
	}

	return &cmd
}

func newStoreExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write the whole store as one QuakeML document.",
		UsageText: `quake store --db path export [options]`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "name of the file to output to. Defaults to STDOUT.",
			},
		},
		Action: func(c *cli.Context) error {
			s, err := catutil.OpenStore(c.String("db"))
			if err != nil {
				return err
			}
			defer s.Close()

			cat, err := s.Catalog()
			if err != nil {
				return err
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

			return quakeml.Encode(cat, w)
		},
	}
}
