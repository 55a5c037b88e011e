// Package catutil provides helpers shared by the quake CLI commands.
package catutil

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake"
	"github.com/seiskit/quake/quakeml"
)

// Summarize reads each file and writes its detected format followed by a
// one-line summary per event. Summaries of several files are separated by a
// blank line.
func Summarize(w io.Writer, paths ...string) error {
	for i, path := range paths {
		// Blank separation between files.
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		name, ok := quake.DetectFormat(path)
		if !ok {
			return errors.Wrap(quake.ErrUnknownFormat, path)
		}

		c, err := quake.ReadEvents(path)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n%s\n", path, name, c); err != nil {
			return err
		}
	}

	return nil
}

// Convert reads every input file and writes a single QuakeML document to w.
// Events from several inputs are merged in argument order.
func Convert(w io.Writer, paths ...string) error {
	c, err := quake.ReadEventsAll(paths...)
	if err != nil {
		return err
	}

	return quakeml.Encode(c, w)
}
