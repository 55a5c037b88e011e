// Package event defines the in-memory model of a seismic event catalog:
// events, their origins, magnitudes and phase picks, together with the
// value-with-uncertainty quantities the interchange formats use.
//
// Absence of an optional field is expressed with a nil pointer. The codecs
// never fabricate values for absent fields, so a decoded catalog reflects
// exactly what the source document contained.
package event

import (
	"fmt"
	"strings"
	"time"
)

// EventDescription is a free-form description of an event, optionally
// qualified by a description type such as "earthquake name" or
// "Flinn-Engdahl region".
type EventDescription struct {
	Text *string
	Type *string
}

// Event is a single seismic event with all of its derived products. The
// slices keep document order: decoding then encoding a catalog preserves the
// order of origins, magnitudes and picks.
type Event struct {
	ResourceID                ResourceIdentifier
	PreferredOriginID         *ResourceIdentifier
	PreferredMagnitudeID      *ResourceIdentifier
	PreferredFocalMechanismID *ResourceIdentifier
	Type                      *string
	TypeCertainty             *string
	Descriptions              []EventDescription
	Comments                  []Comment
	CreationInfo              *CreationInfo

	Origins           []Origin
	Magnitudes        []Magnitude
	StationMagnitudes []StationMagnitude
	Picks             []Pick
}

// PreferredOrigin resolves PreferredOriginID against the owned origins.
// It returns the first origin carrying the preferred id, or nil when the id
// is unset or matches nothing.
func (e *Event) PreferredOrigin() *Origin {
	if e.PreferredOriginID == nil {
		return nil
	}
	for i := range e.Origins {
		if e.Origins[i].ResourceID == *e.PreferredOriginID {
			return &e.Origins[i]
		}
	}

	return nil
}

// PreferredMagnitude resolves PreferredMagnitudeID against the owned
// magnitudes, like PreferredOrigin.
func (e *Event) PreferredMagnitude() *Magnitude {
	if e.PreferredMagnitudeID == nil {
		return nil
	}
	for i := range e.Magnitudes {
		if e.Magnitudes[i].ResourceID == *e.PreferredMagnitudeID {
			return &e.Magnitudes[i]
		}
	}

	return nil
}

// String returns a one-line summary of the event: origin time, coordinates
// and magnitude, as far as they are known. Falls back to the resource
// identifier for events without any origin.
func (e *Event) String() string {
	origin := e.PreferredOrigin()
	if origin == nil && len(e.Origins) > 0 {
		origin = &e.Origins[0]
	}
	magnitude := e.PreferredMagnitude()
	if magnitude == nil && len(e.Magnitudes) > 0 {
		magnitude = &e.Magnitudes[0]
	}

	if origin == nil {
		return string(e.ResourceID)
	}

	var parts []string
	if origin.Time.Value != nil {
		parts = append(parts, origin.Time.Value.UTC().Format("2006-01-02T15:04:05.000000Z"))
	}
	if origin.Latitude.Value != nil && origin.Longitude.Value != nil {
		parts = append(parts, fmt.Sprintf("%+.3f, %+.3f", *origin.Latitude.Value, *origin.Longitude.Value))
	}
	if magnitude != nil && magnitude.Mag.Value != nil {
		m := fmt.Sprintf("%.1f", *magnitude.Mag.Value)
		if magnitude.Type != nil {
			m += " " + *magnitude.Type
		}
		parts = append(parts, m)
	}

	if len(parts) == 0 {
		return string(e.ResourceID)
	}

	return strings.Join(parts, " | ")
}

// Catalog is an ordered collection of events plus catalog-level metadata.
type Catalog struct {
	ResourceID   *ResourceIdentifier
	Description  *string
	Comments     []Comment
	CreationInfo *CreationInfo
	Events       []Event
}

// Append adds ev to the catalog.
func (c *Catalog) Append(ev Event) {
	c.Events = append(c.Events, ev)
}

// Len returns the number of events.
func (c *Catalog) Len() int {
	return len(c.Events)
}

// String returns a multi-line summary: an event count followed by one
// summary line per event.
func (c *Catalog) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d Event(s) in Catalog:", len(c.Events))
	for i := range c.Events {
		sb.WriteByte('\n')
		sb.WriteString(c.Events[i].String())
	}

	return sb.String()
}

// CreationInfo describes who produced an object and when. A nil
// *CreationInfo means the source carried no creation-info block at all;
// an all-nil CreationInfo is silently dropped on encode.
type CreationInfo struct {
	AgencyID     *string
	AgencyURI    *ResourceIdentifier
	Author       *string
	AuthorURI    *ResourceIdentifier
	CreationTime *time.Time
	Version      *string
}

// Comment is a free-form annotation. Comments form ordered lists; order is
// preserved across decode/encode.
type Comment struct {
	Text         string
	ResourceID   *ResourceIdentifier
	CreationInfo *CreationInfo
}

// WaveformStreamID identifies the recording stream a pick or station
// magnitude refers to. The codes are attributes on the wire; the optional
// resource identifier travels as element text.
type WaveformStreamID struct {
	NetworkCode  string
	StationCode  string
	LocationCode *string
	ChannelCode  *string
	ResourceID   *ResourceIdentifier
}
