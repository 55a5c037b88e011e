package xmltree

import (
	"bytes"
	"io"
	"strings"
)

const header = "<?xml version='1.0' encoding='utf-8'?>\n"

// Serialize writes the document rooted at e to w, pretty-printed with
// two-space indentation and preceded by an XML declaration. Child elements
// and attributes are written in insertion order, so the output is fully
// deterministic.
func Serialize(w io.Writer, e *Element) error {
	var buf bytes.Buffer
	buf.WriteString(header)
	writeElement(&buf, e, 0)

	_, err := w.Write(buf.Bytes())
	return err
}

// Marshal returns the serialized document rooted at e.
func Marshal(e *Element) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	writeElement(&buf, e, 0)
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, e *Element, depth int) {
	indent(buf, depth)
	buf.WriteByte('<')
	buf.WriteString(e.Name)
	for _, a := range e.Attr {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		buf.WriteString(escapeAttr(a.Value))
		buf.WriteByte('"')
	}

	if e.Text == "" && len(e.Nodes) == 0 {
		buf.WriteString("/>\n")
		return
	}

	buf.WriteByte('>')
	if e.Text != "" {
		buf.WriteString(escapeText(e.Text))
	}

	if len(e.Nodes) > 0 {
		buf.WriteByte('\n')
		for _, c := range e.Nodes {
			writeElement(buf, c, depth+1)
		}
		indent(buf, depth)
	}

	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteString(">\n")
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
