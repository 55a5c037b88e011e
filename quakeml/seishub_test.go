package quakeml_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/quakeml"
	"github.com/stretchr/testify/require"
)

func TestDecodeSeisHub(t *testing.T) {
	c, err := quakeml.DecodeSeisHubFile(filepath.Join("testdata", "seishub_event.xml"))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	ev := c.Events[0]
	require.Equal(t, event.ResourceIdentifier("smi:de.erdbeben-in-bayern/event/20080828120818"), ev.ResourceID)
	require.Equal(t, "earthquake", *ev.Type)
	require.Len(t, ev.Descriptions, 1)
	require.Equal(t, "Bad Reichenhall", *ev.Descriptions[0].Text)
	require.Equal(t, "region name", *ev.Descriptions[0].Type)

	require.Len(t, ev.Origins, 1)
	o := ev.Origins[0]
	require.Equal(t, utc(2008, 8, 28, 11, 58, 34), *o.Time.Value)
	require.Equal(t, 47.737, *o.Latitude.Value)
	require.Equal(t, 12.879, *o.Longitude.Value)
	require.Equal(t, 2100.0, *o.Depth.Value)

	require.Len(t, ev.Magnitudes, 1)
	require.Equal(t, 2.2, *ev.Magnitudes[0].Mag.Value)
	require.Equal(t, "ML", *ev.Magnitudes[0].Type)

	require.Len(t, ev.Picks, 1)
	p := ev.Picks[0]
	require.Equal(t, utc(2008, 8, 28, 11, 58, 35), *p.Time.Value)
	require.Equal(t, "BW", p.WaveformID.NetworkCode)
	require.Equal(t, "MANZ", p.WaveformID.StationCode)
	require.Equal(t, "EHZ", *p.WaveformID.ChannelCode)
	require.Nil(t, p.WaveformID.ResourceID)
	require.Equal(t, "Pg", *p.PhaseHint)
}

func TestDecodeSeisHubWithoutDeclaration(t *testing.T) {
	doc := `<event publicID="smi:local/event/7">
  <type>quarry blast</type>
</event>`

	c, err := quakeml.DecodeSeisHubString(doc)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	require.Equal(t, "quarry blast", *c.Events[0].Type)
}

func TestDecodeSeisHubMalformed(t *testing.T) {
	_, err := quakeml.DecodeSeisHubString("<event><unterminated></event>")
	require.Error(t, err)
}

func TestEncodeSeisHub(t *testing.T) {
	err := quakeml.EncodeSeisHub(&event.Catalog{}, io.Discard)
	require.ErrorIs(t, err, quakeml.ErrSeisHubEncodeUnsupported)
}
