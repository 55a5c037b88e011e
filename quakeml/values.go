package quakeml

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

// decoder walks a parsed document. It carries the namespace detected at the
// catalog root; every child lookup resolves against it, so documents using
// any schema version decode the same way.
type decoder struct {
	ns string
}

// find resolves a '/'-separated path of child elements below el. It returns
// nil as soon as a segment is missing.
func (d *decoder) find(el *xmltree.Element, path string) *xmltree.Element {
	cur := el
	for {
		if cur == nil {
			return nil
		}
		name, rest, more := strings.Cut(path, "/")
		cur = cur.Child(d.ns, name)
		if !more {
			return cur
		}
		path = rest
	}
}

// children returns the direct children of el named name, in document order.
func (d *decoder) children(el *xmltree.Element, name string) []*xmltree.Element {
	return el.ChildrenNamed(d.ns, name)
}

// text returns the trimmed text of the element at path. A missing element
// and an empty one both report false: the format treats both as absence.
func (d *decoder) text(el *xmltree.Element, path string) (string, bool) {
	c := d.find(el, path)
	if c == nil || c.Text == "" {
		return "", false
	}

	return c.Text, true
}

func (d *decoder) str(el *xmltree.Element, path string) *string {
	s, ok := d.text(el, path)
	if !ok {
		return nil
	}

	return &s
}

func (d *decoder) resourceRef(el *xmltree.Element, path string) *event.ResourceIdentifier {
	s, ok := d.text(el, path)
	if !ok {
		return nil
	}
	id := event.ResourceIdentifier(s)

	return &id
}

func (d *decoder) float(el *xmltree.Element, path string) (*float64, error) {
	s, ok := d.text(el, path)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, newCoercionError(path, "float", s, err)
	}

	return &v, nil
}

func (d *decoder) int(el *xmltree.Element, path string) (*int64, error) {
	s, ok := d.text(el, path)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, newCoercionError(path, "int", s, err)
	}

	return &v, nil
}

// bool decodes the element text as a boolean. Only the literal "true" is
// true; any other text is false. This conversion is total and never fails.
func (d *decoder) bool(el *xmltree.Element, path string) *bool {
	s, ok := d.text(el, path)
	if !ok {
		return nil
	}
	v := s == "true"

	return &v
}

func (d *decoder) time(el *xmltree.Element, path string) (*time.Time, error) {
	s, ok := d.text(el, path)
	if !ok {
		return nil, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return nil, newCoercionError(path, "timestamp", s, err)
	}

	return &t, nil
}

// parseTime accepts the timestamp shapes found in the wild: with or without
// a zone designator, with or without fractional seconds.
func parseTime(s string) (time.Time, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, c.Error
	}

	return c.ToStdTime(), nil
}

// Encode-side helpers. Each appends a child element carrying the formatted
// value; nil values append nothing unless always is set, in which case an
// empty element marks the mandatory node.

func appendText(parent *xmltree.Element, tag, text string) {
	el := xmltree.New(tag)
	el.Text = text
	parent.Append(el)
}

func appendStr(parent *xmltree.Element, tag string, v *string, always bool) {
	if v == nil && !always {
		return
	}
	var s string
	if v != nil {
		s = *v
	}
	appendText(parent, tag, s)
}

func appendResourceRef(parent *xmltree.Element, tag string, v *event.ResourceIdentifier, always bool) {
	if v == nil && !always {
		return
	}
	var s string
	if v != nil {
		s = string(*v)
	}
	appendText(parent, tag, s)
}

func appendFloat(parent *xmltree.Element, tag string, v *float64) {
	if v == nil {
		return
	}
	appendText(parent, tag, formatFloat(*v))
}

func appendInt(parent *xmltree.Element, tag string, v *int64) {
	if v == nil {
		return
	}
	appendText(parent, tag, formatInt(*v))
}

func appendBool(parent *xmltree.Element, tag string, v *bool) {
	if v == nil {
		return
	}
	appendText(parent, tag, formatBool(*v))
}

func appendTime(parent *xmltree.Element, tag string, v *time.Time) {
	if v == nil {
		return
	}
	appendText(parent, tag, formatTime(*v))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatBool(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

// formatTime renders a timestamp in the fixed +00:00 form. Sub-second
// precision is not representable in this form and is dropped.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "+00:00"
}
