// Package quakeml reads and writes QuakeML event catalog documents.
//
// QuakeML is an XML interchange format for seismic event catalogs. Decode
// builds an event.Catalog from a document, accepting any schema namespace
// that carries the eventParameters catalog element; Encode writes the 1.2
// namespace pair. Decoding then encoding a conforming document reproduces
// it byte for byte up to insignificant whitespace: optional elements absent
// from the source stay absent, present ones keep their document order.
//
// The legacy single-event SeisHub variant is handled by DecodeSeisHub,
// which wraps the event in the missing catalog elements before decoding.
package quakeml

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

// Namespaces accepted at the document root. Decode works with any
// namespace; these are the published ones. Encode writes the 1.2 pair.
const (
	NSQuakeML12 = "http://quakeml.org/xmlns/quakeml/1.2"
	NSQuakeML11 = "http://quakeml.org/xmlns/quakeml/1.1"
	NSQuakeML10 = "http://quakeml.org/xmlns/quakeml/1.0"
	NSBed12     = "http://quakeml.org/xmlns/bed/1.2"
)

// Decode reads a QuakeML document and returns the catalog it contains.
// It returns ErrNotQuakeML when the document is well-formed XML but has no
// catalog element at the root, and a *CoercionError when an element's text
// does not parse as its schema type. There are no partial results: the
// whole catalog decodes or the first error is returned.
func Decode(r io.Reader) (*event.Catalog, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}

	cel, ok := catalogElement(root)
	if !ok {
		return nil, ErrNotQuakeML
	}

	d := &decoder{ns: cel.Space}
	return d.catalog(cel)
}

// DecodeFile reads the QuakeML document at path.
func DecodeFile(path string) (*event.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// DecodeString parses a QuakeML document held in a string.
func DecodeString(s string) (*event.Catalog, error) {
	return Decode(strings.NewReader(s))
}

// Encode writes c as a QuakeML document. It never modifies the catalog, and
// encoding the result of Decode reproduces the source document up to
// whitespace.
func Encode(c *event.Catalog, w io.Writer) error {
	return xmltree.Serialize(w, encodeCatalog(c))
}

// EncodeString returns c as a QuakeML document string.
func EncodeString(c *event.Catalog) (string, error) {
	var buf bytes.Buffer
	if err := Encode(c, &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Is reports whether r holds a QuakeML document: well-formed XML with a
// catalog element at the root, in any namespace. It consumes r.
func Is(r io.Reader) bool {
	root, err := xmltree.Parse(r)
	if err != nil {
		return false
	}
	_, ok := catalogElement(root)

	return ok
}

// IsFile reports whether the file at path holds a QuakeML document.
func IsFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return Is(f)
}

// catalogElement locates the eventParameters element below the document
// root. The namespace is taken from the root's first child, so any schema
// version is accepted as long as the catalog element is where the schema
// puts it.
func catalogElement(root *xmltree.Element) (*xmltree.Element, bool) {
	var ns string
	if len(root.Nodes) > 0 {
		ns = root.Nodes[0].Space
	}
	cel := root.Child(ns, "eventParameters")
	if cel == nil {
		return nil, false
	}

	return cel, true
}

func (d *decoder) catalog(cel *xmltree.Element) (*event.Catalog, error) {
	var c event.Catalog
	if id, ok := cel.AttrValue("publicID"); ok {
		rid := event.ResourceIdentifier(id)
		c.ResourceID = &rid
	}
	c.Description = d.str(cel, "description")

	var err error
	if c.Comments, err = d.comments(cel); err != nil {
		return nil, err
	}
	if c.CreationInfo, err = d.creationInfo(cel); err != nil {
		return nil, err
	}

	for _, eel := range d.children(cel, "event") {
		ev, err := d.event(eel)
		if err != nil {
			return nil, err
		}
		c.Events = append(c.Events, ev)
	}

	return &c, nil
}

func (d *decoder) event(el *xmltree.Element) (event.Event, error) {
	var ev event.Event
	if id, ok := el.AttrValue("publicID"); ok {
		ev.ResourceID = event.ResourceIdentifier(id)
	}
	ev.PreferredOriginID = d.resourceRef(el, "preferredOriginID")
	ev.PreferredMagnitudeID = d.resourceRef(el, "preferredMagnitudeID")
	ev.PreferredFocalMechanismID = d.resourceRef(el, "preferredFocalMechanismID")
	ev.Type = d.str(el, "type")
	ev.TypeCertainty = d.str(el, "typeCertainty")
	ev.Descriptions = d.eventDescriptions(el)

	var err error
	if ev.Comments, err = d.comments(el); err != nil {
		return ev, err
	}
	if ev.CreationInfo, err = d.creationInfo(el); err != nil {
		return ev, err
	}

	for _, oel := range d.children(el, "origin") {
		o, err := d.origin(oel)
		if err != nil {
			return ev, err
		}
		ev.Origins = append(ev.Origins, o)
	}
	for _, mel := range d.children(el, "magnitude") {
		m, err := d.magnitude(mel)
		if err != nil {
			return ev, err
		}
		ev.Magnitudes = append(ev.Magnitudes, m)
	}
	for _, mel := range d.children(el, "stationMagnitude") {
		m, err := d.stationMagnitude(mel)
		if err != nil {
			return ev, err
		}
		ev.StationMagnitudes = append(ev.StationMagnitudes, m)
	}
	for _, pel := range d.children(el, "pick") {
		p, err := d.pick(pel)
		if err != nil {
			return ev, err
		}
		ev.Picks = append(ev.Picks, p)
	}

	return ev, nil
}

func encodeCatalog(c *event.Catalog) *xmltree.Element {
	root := xmltree.New("q:quakeml")
	root.SetAttr("xmlns:q", NSQuakeML12)
	root.SetAttr("xmlns", NSBed12)

	cel := xmltree.New("eventParameters")
	if c.ResourceID != nil {
		cel.SetAttr("publicID", string(*c.ResourceID))
	}
	appendStr(cel, "description", c.Description, false)
	appendComments(cel, c.Comments)
	appendCreationInfo(cel, c.CreationInfo)
	for i := range c.Events {
		appendEvent(cel, &c.Events[i])
	}
	root.Append(cel)

	return root
}

func appendEvent(parent *xmltree.Element, ev *event.Event) {
	el := xmltree.New("event")
	el.SetAttr("publicID", string(ev.ResourceID))
	appendResourceRef(el, "preferredOriginID", ev.PreferredOriginID, false)
	appendResourceRef(el, "preferredMagnitudeID", ev.PreferredMagnitudeID, false)
	appendResourceRef(el, "preferredFocalMechanismID", ev.PreferredFocalMechanismID, false)
	appendStr(el, "type", ev.Type, false)
	appendStr(el, "typeCertainty", ev.TypeCertainty, false)
	appendEventDescriptions(el, ev.Descriptions)
	appendComments(el, ev.Comments)
	appendCreationInfo(el, ev.CreationInfo)
	for i := range ev.Origins {
		appendOrigin(el, &ev.Origins[i])
	}
	for i := range ev.Magnitudes {
		appendMagnitude(el, &ev.Magnitudes[i])
	}
	for i := range ev.StationMagnitudes {
		appendStationMagnitude(el, &ev.StationMagnitudes[i])
	}
	for i := range ev.Picks {
		appendPick(el, &ev.Picks[i])
	}
	parent.Append(el)
}
