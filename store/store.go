// Package store persists event catalogs in a local Pebble database.
//
// Every event is stored as a standalone QuakeML document under its resource
// identifier, so anything another tool can read from a QuakeML file it can
// read from an exported catalog. Iteration yields events in identifier
// order. The store is an ingestion buffer for catalog tooling, not a query
// engine: lookups are by identifier only.
package store

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/quakeml"
)

// MemoryPath opens a volatile in-memory store instead of a directory.
const MemoryPath = ":memory:"

const separator byte = 0x1F

// Event keys are the prefix 'e' + separator + resource identifier. The
// prefix leaves room for other record kinds in the same database.
var eventPrefix = []byte{'e', separator}

var (
	// ErrEventNotFound is returned when no event is stored under the
	// requested resource identifier.
	ErrEventNotFound = errors.New("event not found")

	// ErrMissingResourceID is returned when storing an event without a
	// resource identifier: the identifier is the key.
	ErrMissingResourceID = errors.New("cannot store an event without a resource identifier")
)

// Store is a Pebble-backed collection of events. It is safe for concurrent
// use by multiple goroutines.
type Store struct {
	db *pebble.DB
}

// Open opens the store at path, creating it as needed. The MemoryPath
// constant opens a volatile store backed by an in-memory filesystem.
func Open(path string) (*Store, error) {
	var opts pebble.Options
	if path == MemoryPath {
		opts.FS = vfs.NewMem()
		path = ""
	}
	db, err := pebble.Open(path, &opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database. The store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

func eventKey(id event.ResourceIdentifier) []byte {
	key := make([]byte, 0, len(eventPrefix)+len(id))
	key = append(key, eventPrefix...)
	key = append(key, id...)

	return key
}

// Put stores ev under its resource identifier, replacing any previous
// version.
func (s *Store) Put(ev *event.Event) error {
	if ev.ResourceID == "" {
		return errors.WithStack(ErrMissingResourceID)
	}
	doc, err := encodeEvent(ev)
	if err != nil {
		return err
	}

	return s.db.Set(eventKey(ev.ResourceID), doc, pebble.Sync)
}

// PutCatalog stores every event of c in one atomic batch: either all events
// land or none do.
func (s *Store) PutCatalog(c *event.Catalog) error {
	b := s.db.NewBatch()
	defer b.Close()

	for i := range c.Events {
		ev := &c.Events[i]
		if ev.ResourceID == "" {
			return errors.WithStack(ErrMissingResourceID)
		}
		doc, err := encodeEvent(ev)
		if err != nil {
			return err
		}
		if err := b.Set(eventKey(ev.ResourceID), doc, nil); err != nil {
			return err
		}
	}

	return b.Commit(pebble.Sync)
}

// Get returns the event stored under id, or ErrEventNotFound.
func (s *Store) Get(id event.ResourceIdentifier) (*event.Event, error) {
	value, closer, err := s.db.Get(eventKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.WithStack(ErrEventNotFound)
		}

		return nil, err
	}
	doc := make([]byte, len(value))
	copy(doc, value)
	if err := closer.Close(); err != nil {
		return nil, err
	}

	return decodeEvent(doc)
}

// Has reports whether an event is stored under id.
func (s *Store) Has(id event.ResourceIdentifier) (bool, error) {
	_, closer, err := s.db.Get(eventKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, closer.Close()
}

// Delete removes the event stored under id. Deleting an absent id returns
// ErrEventNotFound.
func (s *Store) Delete(id event.ResourceIdentifier) error {
	ok, err := s.Has(id)
	if err != nil {
		return err
	}
	if !ok {
		return errors.WithStack(ErrEventNotFound)
	}

	return s.db.Delete(eventKey(id), pebble.Sync)
}

// ForEach calls fn for every stored event, in resource identifier order.
// Iteration stops at the first error, which is returned.
func (s *Store) ForEach(fn func(*event.Event) error) error {
	upper := append([]byte{}, eventPrefix...)
	upper = append(upper, 0xff)
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: eventPrefix,
		UpperBound: upper,
	})
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		doc := make([]byte, len(it.Value()))
		copy(doc, it.Value())
		ev, err := decodeEvent(doc)
		if err != nil {
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
	}

	return it.Error()
}

// Len returns the number of stored events. Only keys are visited, the
// documents are not decoded.
func (s *Store) Len() (int, error) {
	upper := append([]byte{}, eventPrefix...)
	upper = append(upper, 0xff)
	it := s.db.NewIter(&pebble.IterOptions{
		LowerBound: eventPrefix,
		UpperBound: upper,
	})
	defer it.Close()

	var n int
	for it.First(); it.Valid(); it.Next() {
		n++
	}

	return n, it.Error()
}

// Catalog assembles every stored event into a catalog, in identifier order.
func (s *Store) Catalog() (*event.Catalog, error) {
	var c event.Catalog
	err := s.ForEach(func(ev *event.Event) error {
		c.Events = append(c.Events, *ev)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// encodeEvent renders ev as a single-event QuakeML document.
func encodeEvent(ev *event.Event) ([]byte, error) {
	c := event.Catalog{Events: []event.Event{*ev}}
	var buf bytes.Buffer
	if err := quakeml.Encode(&c, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeEvent(doc []byte) (*event.Event, error) {
	c, err := quakeml.Decode(bytes.NewReader(doc))
	if err != nil {
		return nil, errors.Wrap(err, "stored event")
	}
	if c.Len() != 1 {
		return nil, errors.Errorf("stored document holds %d events, want 1", c.Len())
	}

	return &c.Events[0], nil
}
