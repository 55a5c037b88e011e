package quakeml

import (
	"bytes"
	"io"
	"os"

	"github.com/seiskit/quake/event"
)

// DecodeSeisHub reads the legacy SeisHub event XML variant: a bare event
// element without the quakeml and eventParameters wrappers. The wrappers
// are injected textually, then the document decodes like regular QuakeML.
// The result is a catalog holding the single event.
func DecodeSeisHub(r io.Reader) (*event.Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(wrapSeisHub(raw)))
}

// DecodeSeisHubString parses a SeisHub event XML document held in a string.
func DecodeSeisHubString(s string) (*event.Catalog, error) {
	return Decode(bytes.NewReader(wrapSeisHub([]byte(s))))
}

// DecodeSeisHubFile reads the SeisHub event XML file at path.
func DecodeSeisHubFile(path string) (*event.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeSeisHub(f)
}

// EncodeSeisHub always fails with ErrSeisHubEncodeUnsupported: the legacy
// variant is read-only, catalogs are written as regular QuakeML.
func EncodeSeisHub(c *event.Catalog, w io.Writer) error {
	return ErrSeisHubEncodeUnsupported
}

// wrapSeisHub splices the catalog wrappers around the document body,
// keeping an XML declaration in front if one is present.
func wrapSeisHub(raw []byte) []byte {
	var head []byte
	body := raw
	if bytes.HasPrefix(bytes.TrimLeft(raw, " \t\r\n"), []byte("<?xml")) {
		if i := bytes.Index(raw, []byte("?>")); i >= 0 {
			head, body = raw[:i+2], raw[i+2:]
		}
	}

	var buf bytes.Buffer
	buf.Write(head)
	buf.WriteString("\n<quakeml xmlns=\"" + NSQuakeML10 + "\">\n<eventParameters>\n")
	buf.Write(body)
	buf.WriteString("\n</eventParameters>\n</quakeml>\n")

	return buf.Bytes()
}
