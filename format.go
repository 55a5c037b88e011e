package quake

import (
	"sync"

	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/geojson"
	"github.com/seiskit/quake/quakeml"
)

// Format is a catalog file format known to the registry: a detector that
// probes a file and a decoder that reads it.
type Format struct {
	// Name identifies the format in listings and errors.
	Name string
	// Detect reports whether the file at path is in this format. It must
	// not error: an unreadable or unrecognized file is simply not a match.
	Detect func(path string) bool
	// Decode reads the catalog in the file at path.
	Decode func(path string) (*event.Catalog, error)
}

// The built-in formats come first; RegisterFormat appends after them.
var (
	formatMu sync.RWMutex
	formats  = []Format{
		{Name: "quakeml", Detect: quakeml.IsFile, Decode: quakeml.DecodeFile},
		{Name: "geojson", Detect: geojson.IsFile, Decode: geojson.DecodeFile},
	}
)

// RegisterFormat adds f to the registry. Formats are probed in registration
// order, so a format registered later never shadows an earlier one.
func RegisterFormat(f Format) {
	formatMu.Lock()
	defer formatMu.Unlock()
	formats = append(formats, f)
}

// Formats returns the names of the registered formats, in probe order.
func Formats() []string {
	formatMu.RLock()
	defer formatMu.RUnlock()

	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name
	}

	return names
}

// DetectFormat probes the file at path and returns the name of the first
// format that recognizes it.
func DetectFormat(path string) (string, bool) {
	f, ok := detect(path)
	if !ok {
		return "", false
	}

	return f.Name, true
}

func detect(path string) (Format, bool) {
	formatMu.RLock()
	defer formatMu.RUnlock()

	for _, f := range formats {
		if f.Detect(path) {
			return f, true
		}
	}

	return Format{}, false
}
