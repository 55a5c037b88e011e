// Package geojson imports USGS-style GeoJSON earthquake feeds.
//
// The feeds are FeatureCollection documents whose features describe one
// event each: magnitude, place and status in the properties object, the
// hypocenter as [longitude, latitude, depth-in-km] point coordinates.
// Decode maps them onto the event.Catalog model so that a feed can be
// handled, and re-encoded, like any other catalog. The mapping is
// read-only: there is no encoder for this format.
package geojson

import (
	"io"
	"os"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake/event"
)

// ErrNotGeoJSON is returned when the input is not a GeoJSON
// FeatureCollection document.
var ErrNotGeoJSON = errors.New("not a GeoJSON feature collection")

// Decode reads a GeoJSON feed and returns the catalog it describes.
func Decode(r io.Reader) (*event.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return decode(data)
}

// DecodeFile reads the GeoJSON feed at path.
func DecodeFile(path string) (*event.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// DecodeString parses a GeoJSON feed held in a string.
func DecodeString(s string) (*event.Catalog, error) {
	return decode([]byte(s))
}

// Is reports whether r holds a GeoJSON feature collection. It consumes r.
func Is(r io.Reader) bool {
	data, err := io.ReadAll(r)
	if err != nil {
		return false
	}

	return isFeatureCollection(data)
}

// IsFile reports whether the file at path holds a GeoJSON feature
// collection.
func IsFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return Is(f)
}

func isFeatureCollection(data []byte) bool {
	t, err := jsonparser.GetString(data, "type")

	return err == nil && t == "FeatureCollection"
}

func decode(data []byte) (*event.Catalog, error) {
	if !isFeatureCollection(data) {
		return nil, ErrNotGeoJSON
	}

	var c event.Catalog
	if url, err := optString(data, "metadata", "url"); err != nil {
		return nil, err
	} else if url != nil {
		rid := event.ResourceIdentifier(*url)
		c.ResourceID = &rid
	}
	var err error
	if c.Description, err = optString(data, "metadata", "title"); err != nil {
		return nil, err
	}
	generated, err := optInt(data, "metadata", "generated")
	if err != nil {
		return nil, err
	}
	if generated != nil {
		c.CreationInfo = &event.CreationInfo{CreationTime: event.Ptr(msTime(*generated))}
	}

	var ferr error
	_, aerr := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if ferr != nil {
			return
		}
		if err != nil {
			ferr = err
			return
		}
		ev, err := decodeFeature(value)
		if err != nil {
			ferr = err
			return
		}
		c.Events = append(c.Events, ev)
	}, "features")
	if aerr != nil {
		return nil, errors.Wrap(aerr, "features array")
	}
	if ferr != nil {
		return nil, ferr
	}

	return &c, nil
}
