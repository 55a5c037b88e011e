package catutil

import (
	"github.com/seiskit/quake"
	"github.com/seiskit/quake/store"
)

// OpenStore is a helper function that takes raw unvalidated parameters and
// opens an event store.
func OpenStore(dbPath string) (*store.Store, error) {
	if dbPath == "" {
		dbPath = store.MemoryPath
	}

	return store.Open(dbPath)
}

// Ingest reads every file into the store and returns the number of events
// written. Events already in the store are overwritten.
func Ingest(s *store.Store, paths ...string) (int, error) {
	n := 0
	for _, path := range paths {
		c, err := quake.ReadEvents(path)
		if err != nil {
			return n, err
		}

		if err := s.PutCatalog(c); err != nil {
			return n, err
		}
		n += c.Len()
	}

	return n, nil
}
