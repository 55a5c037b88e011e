// Package quake reads seismic event catalogs without the caller knowing
// what kind of file they were handed.
//
// The model lives in the event package and the file formats in quakeml and
// geojson; this package ties them together. ReadEvents probes a file
// against the registered formats and decodes it with the first one that
// recognizes it. Additional formats can be added with RegisterFormat.
package quake

import (
	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake/event"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownFormat is returned when no registered format recognizes a file.
var ErrUnknownFormat = errors.New("no registered format recognizes the file")

// ReadEvents reads the catalog in the file at path, whatever its format.
func ReadEvents(path string) (*event.Catalog, error) {
	f, ok := detect(path)
	if !ok {
		return nil, errors.Wrap(ErrUnknownFormat, path)
	}

	return f.Decode(path)
}

// ReadEventsAll reads several catalog files concurrently and merges their
// events in the order the paths were given. A single path keeps its
// catalog-level metadata; when several catalogs are merged only the events
// carry over.
func ReadEventsAll(paths ...string) (*event.Catalog, error) {
	switch len(paths) {
	case 0:
		return &event.Catalog{}, nil
	case 1:
		return ReadEvents(paths[0])
	}

	catalogs := make([]*event.Catalog, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			c, err := ReadEvents(path)
			if err != nil {
				return err
			}
			catalogs[i] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged event.Catalog
	for _, c := range catalogs {
		merged.Events = append(merged.Events, c.Events...)
	}

	return &merged, nil
}
