// Package xmltree provides a minimal ordered element tree for XML documents.
//
// The tree keeps exactly what the catalog codecs need: element names resolved
// against their namespace, attribute and child order as found in the document,
// and trimmed character data. Everything else (comments, processing
// instructions, namespaced attributes) is dropped on parse.
package xmltree

import (
	"io"
	"strings"

	"encoding/xml"

	"github.com/cockroachdb/errors"
)

// Attr is a single attribute. Namespace prefixes are not carried: the formats
// handled here only use plain attribute names.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the tree. Space holds the resolved namespace URI of
// the element, or the empty string when the element has none.
type Element struct {
	Space string
	Name  string
	Attr  []Attr
	Text  string
	Nodes []*Element
}

// New returns an element with the given name and no namespace.
func New(name string) *Element {
	return &Element{Name: name}
}

// Append adds c as the last child of e.
func (e *Element) Append(c *Element) {
	e.Nodes = append(e.Nodes, c)
}

// Len returns the number of child elements.
func (e *Element) Len() int {
	return len(e.Nodes)
}

// Child returns the first child element matching space and name, or nil.
func (e *Element) Child(space, name string) *Element {
	for _, c := range e.Nodes {
		if c.Space == space && c.Name == name {
			return c
		}
	}

	return nil
}

// ChildrenNamed returns all child elements matching space and name, in
// document order.
func (e *Element) ChildrenNamed(space, name string) []*Element {
	var out []*Element
	for _, c := range e.Nodes {
		if c.Space == space && c.Name == name {
			out = append(out, c)
		}
	}

	return out
}

// ChildText returns the text of the first child element matching space and
// name. It reports false when the child is missing or its text is empty:
// the formats handled here treat both as absence of a value.
func (e *Element) ChildText(space, name string) (string, bool) {
	c := e.Child(space, name)
	if c == nil || c.Text == "" {
		return "", false
	}

	return c.Text, true
}

// AttrValue returns the value of the named attribute.
func (e *Element) AttrValue(name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}

	return "", false
}

// SetAttr appends an attribute. Attributes are written in insertion order.
func (e *Element) SetAttr(name, value string) {
	e.Attr = append(e.Attr, Attr{Name: name, Value: value})
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "malformed XML")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Space: t.Name.Space, Name: t.Name.Local}
			for _, a := range t.Attr {
				// xmlns declarations are namespace machinery, already
				// reflected in Space; namespaced attributes are not part
				// of the formats handled here.
				if a.Name.Space != "" || a.Name.Local == "xmlns" {
					continue
				}
				el.Attr = append(el.Attr, Attr{Name: a.Name.Local, Value: a.Value})
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("malformed XML: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Nodes = append(parent.Nodes, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			cur := stack[len(stack)-1]
			cur.Text = strings.TrimSpace(cur.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("empty document")
	}

	return root, nil
}
