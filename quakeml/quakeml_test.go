package quakeml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
	"github.com/seiskit/quake/quakeml"
	"github.com/stretchr/testify/require"
)

func decodeFixture(t *testing.T, name string) *event.Catalog {
	t.Helper()
	c, err := quakeml.DecodeFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return c
}

// requireRoundTrip encodes c and compares it against the fixture it was
// decoded from, ignoring whitespace: both documents are parsed back into
// element trees and diffed structurally.
func requireRoundTrip(t *testing.T, name string, c *event.Catalog) {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	encoded, err := quakeml.EncodeString(c)
	require.NoError(t, err)

	want, err := xmltree.Parse(strings.NewReader(string(raw)))
	require.NoError(t, err)
	got, err := xmltree.Parse(strings.NewReader(encoded))
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("re-encoded document differs (-want +got):\n%s", diff)
	}
}

func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func rid(s string) *event.ResourceIdentifier {
	id := event.ResourceIdentifier(s)
	return &id
}

func TestDecodeCatalog(t *testing.T) {
	c := decodeFixture(t, "catalog.xml")

	require.Equal(t, 2, c.Len())
	require.Equal(t, rid("smi:www.iris.edu/ws/event/query"), c.ResourceID)
	require.Equal(t, "IRIS event query results", *c.Description)
	require.NotNil(t, c.CreationInfo)
	require.Equal(t, "IRIS", *c.CreationInfo.AgencyID)
	require.Equal(t, utc(2011, 3, 12, 0, 0, 0), *c.CreationInfo.CreationTime)

	require.Equal(t, event.ResourceIdentifier("smi:www.iris.edu/ws/event/query?eventId=3279407"), c.Events[0].ResourceID)
	require.Equal(t, event.ResourceIdentifier("smi:www.iris.edu/ws/event/query?eventId=2318174"), c.Events[1].ResourceID)

	// the preferred ids resolve against the owned objects
	o := c.Events[0].PreferredOrigin()
	require.NotNil(t, o)
	require.Equal(t, 38.297, *o.Latitude.Value)
	m := c.Events[0].PreferredMagnitude()
	require.NotNil(t, m)
	require.Equal(t, 9.1, *m.Mag.Value)

	lines := strings.Split(c.String(), "\n")
	require.Equal(t, []string{
		"2 Event(s) in Catalog:",
		"2011-03-11T05:46:24.000000Z | +38.297, +142.373 | 9.1 MW",
		"2006-09-10T04:26:33.000000Z | +9.614, +121.961 | 5.8 MS",
	}, lines)

	requireRoundTrip(t, "catalog.xml", c)
}

func TestDecodeEvent(t *testing.T) {
	c := decodeFixture(t, "event.xml")
	require.Equal(t, 1, c.Len())
	require.Nil(t, c.ResourceID)

	ev := c.Events[0]
	require.Equal(t, event.ResourceIdentifier("smi:ch.ethz.sed/event/historical/1165"), ev.ResourceID)
	require.Equal(t, "earthquake", *ev.Type)
	require.Equal(t, "suspected", *ev.TypeCertainty)

	require.Len(t, ev.Comments, 2)
	require.Equal(t, "Relocated after re-evaluation", ev.Comments[0].Text)
	require.Nil(t, ev.Comments[0].ResourceID)
	require.Equal(t, "EMSC", *ev.Comments[0].CreationInfo.AgencyID)
	require.Equal(t, "Another comment", ev.Comments[1].Text)
	require.Equal(t, rid("smi:some/comment/id/number_3"), ev.Comments[1].ResourceID)
	require.Nil(t, ev.Comments[1].CreationInfo)

	require.Len(t, ev.Descriptions, 3)
	require.Equal(t, "1906 San Francisco Earthquake", *ev.Descriptions[0].Text)
	require.Equal(t, "earthquake name", *ev.Descriptions[0].Type)
	require.Equal(t, "NEAR EAST COAST OF HONSHU, JAPAN", *ev.Descriptions[1].Text)
	require.Equal(t, "Flinn-Engdahl region", *ev.Descriptions[1].Type)
	require.Equal(t, "free-form string", *ev.Descriptions[2].Text)
	require.Nil(t, ev.Descriptions[2].Type)

	ci := ev.CreationInfo
	require.NotNil(t, ci)
	require.Equal(t, "Erika Mustermann", *ci.Author)
	require.Equal(t, "EMSC", *ci.AgencyID)
	require.Equal(t, rid("smi:smi-registry/organization/EMSC"), ci.AgencyURI)
	require.Equal(t, rid("smi:smi-registry/organization/EMSC"), ci.AuthorURI)
	require.Equal(t, utc(2012, 4, 4, 16, 40, 50), *ci.CreationTime)
	require.Equal(t, "1.0.1", *ci.Version)

	requireRoundTrip(t, "event.xml", c)
}

func TestDecodeOrigin(t *testing.T) {
	c := decodeFixture(t, "origin.xml")
	require.Equal(t, 1, c.Len())
	require.Len(t, c.Events[0].Origins, 1)

	o := c.Events[0].Origins[0]
	require.Equal(t, event.ResourceIdentifier("smi:www.iris.edu/ws/event/query?originId=7680412"), o.ResourceID)
	require.Equal(t, utc(2011, 3, 11, 5, 46, 24), *o.Time.Value)
	require.Equal(t, 38.297, *o.Latitude.Value)
	require.Nil(t, o.Latitude.LowerUncertainty)
	require.Equal(t, 142.373, *o.Longitude.Value)
	require.Nil(t, o.Longitude.Uncertainty)
	require.Equal(t, 29.0, *o.Depth.Value)
	require.Equal(t, 50.0, *o.Depth.ConfidenceLevel)
	require.Equal(t, "from location", *o.DepthType)
	require.Nil(t, o.TimeFixed)
	require.False(t, *o.EpicenterFixed)
	require.Equal(t, rid("smi:some/reference/muh"), o.ReferenceSystemID)
	require.Equal(t, rid("smi:some/method/NA"), o.MethodID)
	require.Equal(t, rid("smi:same/model/maeh"), o.EarthModelID)
	require.Equal(t, "hypocenter", *o.Type)
	require.Equal(t, event.EvaluationModeManual, *o.EvaluationMode)
	require.Equal(t, event.EvaluationStatusPreliminary, *o.EvaluationStatus)

	require.Len(t, o.CompositeTimes, 2)
	require.Equal(t, int64(2029), *o.CompositeTimes[0].Year.Value)
	require.Nil(t, o.CompositeTimes[0].Month.Value)
	require.Equal(t, int64(12), *o.CompositeTimes[0].Hour.Value)
	require.Nil(t, o.CompositeTimes[1].Year.Value)
	require.Equal(t, int64(1), *o.CompositeTimes[1].Hour.Value)
	require.Equal(t, 29.124234, *o.CompositeTimes[1].Second.Value)

	q := o.Quality
	require.NotNil(t, q)
	require.Equal(t, int64(16), *q.UsedStationCount)
	require.Equal(t, 0.0, *q.StandardError)
	require.Equal(t, 231.0, *q.AzimuthalGap)
	require.Equal(t, 2.45, *q.MinimumDistance)
	require.Equal(t, 53.03, *q.MaximumDistance)
	require.Nil(t, q.AssociatedPhaseCount)
	require.Nil(t, q.GroundTruthLevel)
	require.Nil(t, q.MedianDistance)

	require.Len(t, o.Comments, 2)
	require.Equal(t, "Some comment", o.Comments[0].Text)
	require.Equal(t, rid("smi:some/comment/reference"), o.Comments[0].ResourceID)
	require.Equal(t, "EMSC", *o.Comments[0].CreationInfo.Author)
	require.Equal(t, "Another comment", o.Comments[1].Text)
	require.Nil(t, o.Comments[1].ResourceID)
	require.Nil(t, o.Comments[1].CreationInfo)

	require.Equal(t, "NEIC", *o.CreationInfo.Author)
	require.Nil(t, o.CreationInfo.AgencyID)
	require.Nil(t, o.CreationInfo.CreationTime)

	u := o.Uncertainty
	require.NotNil(t, u)
	require.Equal(t, event.UncertaintyEllipse, *u.PreferredDescription)
	require.Equal(t, 9000.0, *u.HorizontalUncertainty)
	require.Equal(t, 6000.0, *u.MinHorizontalUncertainty)
	require.Equal(t, 10000.0, *u.MaxHorizontalUncertainty)
	require.Equal(t, 80.0, *u.AzimuthMaxHorizontalUncertainty)

	ce := u.ConfidenceEllipsoid
	require.NotNil(t, ce)
	require.Equal(t, 0.123, *ce.SemiMajorAxisLength)
	require.Equal(t, 1.123, *ce.SemiMinorAxisLength)
	require.Equal(t, 2.123, *ce.SemiIntermediateAxisLength)
	require.Equal(t, 3.123, *ce.MajorAxisPlunge)
	require.Equal(t, 4.123, *ce.MajorAxisAzimuth)
	require.Equal(t, 5.123, *ce.MajorAxisRotation)

	requireRoundTrip(t, "origin.xml", c)
}

func TestDecodeMagnitude(t *testing.T) {
	c := decodeFixture(t, "magnitude.xml")
	require.Len(t, c.Events[0].Magnitudes, 1)

	m := c.Events[0].Magnitudes[0]
	require.Equal(t, event.ResourceIdentifier("smi:ch.ethz.sed/magnitude/37465"), m.ResourceID)
	require.Equal(t, 5.5, *m.Mag.Value)
	require.Equal(t, 0.1, *m.Mag.Uncertainty)
	require.Equal(t, "MS", *m.Type)
	require.Nil(t, m.OriginID)
	require.Equal(t, rid("smi:ch.ethz.sed/magnitude/generic/surface_wave_magnitude"), m.MethodID)
	require.Equal(t, int64(8), *m.StationCount)
	require.Nil(t, m.AzimuthalGap)
	require.Equal(t, event.EvaluationStatusPreliminary, *m.EvaluationStatus)
	require.Len(t, m.Comments, 2)
	require.Equal(t, "NEIC", *m.CreationInfo.Author)

	requireRoundTrip(t, "magnitude.xml", c)
}

func TestDecodeMagnitudeValueOnly(t *testing.T) {
	doc := `<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0"><eventParameters><event publicID="e">` +
		`<magnitude publicID="m"><mag><value>3.2</value></mag></magnitude></event></eventParameters></quakeml>`

	c, err := quakeml.DecodeString(doc)
	require.NoError(t, err)

	m := c.Events[0].Magnitudes[0]
	require.Equal(t, event.ResourceIdentifier("m"), m.ResourceID)
	require.Equal(t, 3.2, *m.Mag.Value)
	require.Nil(t, m.Mag.Uncertainty)
	require.Nil(t, m.Type)
	require.Nil(t, m.StationCount)

	encoded, err := quakeml.EncodeString(c)
	require.NoError(t, err)
	require.Contains(t, encoded, "<value>3.2</value>")
	require.NotContains(t, encoded, "uncertainty")
}

func TestDecodeStationMagnitude(t *testing.T) {
	c := decodeFixture(t, "stationmagnitude.xml")
	require.Len(t, c.Events[0].StationMagnitudes, 1)

	m := c.Events[0].StationMagnitudes[0]
	require.Equal(t, event.ResourceIdentifier("smi:ch.ethz.sed/magnitude/station/881342"), m.ResourceID)
	require.Equal(t, event.ResourceIdentifier("smi:some/example/id"), m.OriginID)
	require.Equal(t, 6.5, *m.Mag.Value)
	require.Equal(t, 0.2, *m.Mag.Uncertainty)
	require.Equal(t, "MS", *m.Type)
	require.Equal(t, rid("smi:ch.ethz.sed/amplitude/824315"), m.AmplitudeID)
	require.Equal(t, rid("smi:ch.ethz.sed/magnitude/generic/surface_wave_magnitude"), m.MethodID)
	require.Equal(t, event.WaveformStreamID{
		NetworkCode: "BW",
		StationCode: "FUR",
		ResourceID:  rid("smi:ch.ethz.sed/waveform/201754"),
	}, m.WaveformID)
	require.Nil(t, m.CreationInfo)

	requireRoundTrip(t, "stationmagnitude.xml", c)
}

func TestDecodeArrival(t *testing.T) {
	c := decodeFixture(t, "arrival.xml")
	require.Len(t, c.Events[0].Origins, 1)
	require.Len(t, c.Events[0].Origins[0].Arrivals, 2)

	ar := c.Events[0].Origins[0].Arrivals[0]
	require.Equal(t, event.ResourceIdentifier("smi:ch.ethz.sed/pick/117634"), ar.PickID)
	require.Equal(t, "Pn", ar.Phase)
	require.Equal(t, 12.0, *ar.Azimuth)
	require.Equal(t, 0.5, *ar.Distance)
	require.Nil(t, ar.TimeResidual)
	require.Nil(t, ar.TimeUsed)
	require.Nil(t, ar.TimeWeight)
	require.Equal(t, rid("smi:ch.ethz.sed/earthmodel/U21"), ar.EarthModelID)
	require.True(t, *ar.Preliminary)
	require.Len(t, ar.Comments, 1)
	require.Equal(t, "Erika Mustermann", *ar.CreationInfo.Author)

	// the mandatory origin nodes survive as empty elements
	o := c.Events[0].Origins[0]
	require.True(t, o.Time.IsEmpty())
	require.True(t, o.Latitude.IsEmpty())
	require.True(t, o.Longitude.IsEmpty())

	second := c.Events[0].Origins[0].Arrivals[1]
	require.Equal(t, "Sg", second.Phase)
	require.Nil(t, second.Preliminary)

	requireRoundTrip(t, "arrival.xml", c)
}

func TestArrivalPreliminaryAttribute(t *testing.T) {
	doc := `<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0"><eventParameters><event publicID="e">` +
		`<origin publicID="o"><time/><latitude/><longitude/>` +
		`<arrival publicID="a" preliminary="false"><pickID>smi:local/pick/1</pickID><phase>Pg</phase></arrival>` +
		`</origin></event></eventParameters></quakeml>`

	c, err := quakeml.DecodeString(doc)
	require.NoError(t, err)

	ar := c.Events[0].Origins[0].Arrivals[0]
	require.NotNil(t, ar.Preliminary)
	require.False(t, *ar.Preliminary)

	// the attribute mirrors the source document, even when false
	encoded, err := quakeml.EncodeString(c)
	require.NoError(t, err)
	require.Contains(t, encoded, `<arrival publicID="a" preliminary="false">`)

	c.Events[0].Origins[0].Arrivals[0].Preliminary = nil
	encoded, err = quakeml.EncodeString(c)
	require.NoError(t, err)
	require.NotContains(t, encoded, "preliminary")
}

func TestDecodePick(t *testing.T) {
	c := decodeFixture(t, "pick.xml")
	require.Len(t, c.Events[0].Picks, 2)

	p := c.Events[0].Picks[0]
	require.Equal(t, event.ResourceIdentifier("smi:ch.ethz.sed/pick/117634"), p.ResourceID)
	require.Equal(t, utc(2005, 9, 18, 22, 4, 35), *p.Time.Value)
	require.Equal(t, 0.012, *p.Time.Uncertainty)
	require.Equal(t, event.WaveformStreamID{
		NetworkCode: "BW",
		StationCode: "FUR",
		ResourceID:  rid("smi:ch.ethz.sed/waveform/201754"),
	}, p.WaveformID)
	require.Equal(t, rid("smi:ch.ethz.sed/filter/lowpass/standard"), p.FilterID)
	require.Equal(t, rid("smi:ch.ethz.sed/picker/autopicker/6.0.2"), p.MethodID)
	require.Equal(t, 44.0, *p.Backazimuth.Value)
	require.Equal(t, event.OnsetImpulsive, *p.Onset)
	require.Equal(t, "Pn", *p.PhaseHint)
	require.Equal(t, event.PolarityPositive, *p.Polarity)
	require.Equal(t, event.EvaluationModeManual, *p.EvaluationMode)
	require.Equal(t, event.EvaluationStatusConfirmed, *p.EvaluationStatus)
	require.Len(t, p.Comments, 2)
	require.Equal(t, "Erika Mustermann", *p.CreationInfo.Author)

	second := c.Events[0].Picks[1]
	require.True(t, second.Time.IsEmpty())
	require.Equal(t, event.WaveformStreamID{}, second.WaveformID)

	requireRoundTrip(t, "pick.xml", c)
}

func TestDecodeNamespaces(t *testing.T) {
	const body = `<eventParameters><event publicID="smi:local/event/1"><type>earthquake</type></event></eventParameters>`

	tests := []struct {
		name string
		doc  string
	}{
		{
			"1.0 default namespace",
			`<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0">` + body + `</quakeml>`,
		},
		{
			"1.1 default namespace",
			`<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.1">` + body + `</quakeml>`,
		},
		{
			"1.2 prefixed with bed",
			`<q:quakeml xmlns:q="http://quakeml.org/xmlns/quakeml/1.2" xmlns="http://quakeml.org/xmlns/bed/1.2">` + body + `</q:quakeml>`,
		},
		{
			"no namespace at all",
			`<quakeml>` + body + `</quakeml>`,
		},
	}

	var first *event.Catalog
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := quakeml.DecodeString(tt.doc)
			require.NoError(t, err)
			require.Equal(t, 1, c.Len())
			require.Equal(t, "earthquake", *c.Events[0].Type)

			if first == nil {
				first = c
				return
			}
			if diff := cmp.Diff(first, c); diff != "" {
				t.Fatalf("catalog differs between namespaces (-first +current):\n%s", diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			"empty input",
			"",
			nil,
		},
		{
			"not XML at all",
			"MAGIC 0x1F seismogram header",
			nil,
		},
		{
			"well-formed XML without a catalog",
			`<inventory><station code="FUR"/></inventory>`,
			quakeml.ErrNotQuakeML,
		},
		{
			"catalog element at the wrong depth",
			`<a><b><eventParameters/></b></a>`,
			quakeml.ErrNotQuakeML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quakeml.DecodeString(tt.doc)
			require.Error(t, err)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestDecodeCoercionErrors(t *testing.T) {
	doc := func(origin string) string {
		return `<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0"><eventParameters><event publicID="e"><origin publicID="o">` +
			origin + `</origin></event></eventParameters></quakeml>`
	}

	tests := []struct {
		name    string
		doc     string
		element string
		typ     string
		text    string
	}{
		{
			"bad float in quantity value",
			doc(`<latitude><value>abc</value></latitude>`),
			"value", "float", "abc",
		},
		{
			"bad float in nested quality",
			doc(`<quality><standardError>big</standardError></quality>`),
			"quality/standardError", "float", "big",
		},
		{
			"bad int in quality",
			doc(`<quality><usedPhaseCount>7.5</usedPhaseCount></quality>`),
			"quality/usedPhaseCount", "int", "7.5",
		},
		{
			"bad timestamp in creation info",
			doc(`<creationInfo><creationTime>not a time</creationTime></creationInfo>`),
			"creationInfo/creationTime", "timestamp", "not a time",
		},
		{
			"bad float in confidence ellipsoid",
			doc(`<originUncertainty><confidenceEllipsoid><majorAxisPlunge>x</majorAxisPlunge></confidenceEllipsoid></originUncertainty>`),
			"majorAxisPlunge", "float", "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quakeml.DecodeString(tt.doc)
			require.Error(t, err)

			var cerr *quakeml.CoercionError
			require.ErrorAs(t, err, &cerr)
			require.Equal(t, tt.element, cerr.Element)
			require.Equal(t, tt.typ, cerr.Type)
			require.Equal(t, tt.text, cerr.Text)
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"quakeml 1.0", `<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0"><eventParameters/></quakeml>`, true},
		{"quakeml without events", `<quakeml><eventParameters/></quakeml>`, true},
		{"empty string", ``, false},
		{"not XML", `#!/bin/sh`, false},
		{"catalog element under a foreign root", `<inventory><eventParameters/></inventory>`, true},
		{"no catalog element", `<inventory><network/></inventory>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, quakeml.Is(strings.NewReader(tt.doc)))
		})
	}
}

func TestIsFile(t *testing.T) {
	require.True(t, quakeml.IsFile(filepath.Join("testdata", "catalog.xml")))
	require.False(t, quakeml.IsFile(filepath.Join("testdata", "notquakeml.xml")))
	require.False(t, quakeml.IsFile(filepath.Join("testdata", "missing.xml")))
}

func TestEncodeEmptyCatalog(t *testing.T) {
	got, err := quakeml.EncodeString(&event.Catalog{})
	require.NoError(t, err)

	want := "<?xml version='1.0' encoding='utf-8'?>\n" +
		"<q:quakeml xmlns:q=\"http://quakeml.org/xmlns/quakeml/1.2\" xmlns=\"http://quakeml.org/xmlns/bed/1.2\">\n" +
		"  <eventParameters/>\n" +
		"</q:quakeml>\n"
	require.Equal(t, want, got)

	back, err := quakeml.DecodeString(got)
	require.NoError(t, err)
	require.Equal(t, 0, back.Len())
}

func TestEncodeBuiltCatalog(t *testing.T) {
	c := &event.Catalog{
		Events: []event.Event{{
			ResourceID: "smi:local/event/1",
			Picks: []event.Pick{{
				ResourceID: "smi:local/pick/1",
				Time:       event.TimeQuantity{Value: event.Ptr(utc(2005, 9, 18, 22, 4, 35))},
				WaveformID: event.WaveformStreamID{NetworkCode: "BW", StationCode: "FUR"},
				PhaseHint:  event.Ptr("Pg"),
			}},
		}},
	}

	got, err := quakeml.EncodeString(c)
	require.NoError(t, err)

	want := "<?xml version='1.0' encoding='utf-8'?>\n" +
		"<q:quakeml xmlns:q=\"http://quakeml.org/xmlns/quakeml/1.2\" xmlns=\"http://quakeml.org/xmlns/bed/1.2\">\n" +
		"  <eventParameters>\n" +
		"    <event publicID=\"smi:local/event/1\">\n" +
		"      <pick publicID=\"smi:local/pick/1\">\n" +
		"        <time>\n" +
		"          <value>2005-09-18T22:04:35+00:00</value>\n" +
		"        </time>\n" +
		"        <waveformID networkCode=\"BW\" stationCode=\"FUR\"/>\n" +
		"        <phaseHint>Pg</phaseHint>\n" +
		"      </pick>\n" +
		"    </event>\n" +
		"  </eventParameters>\n" +
		"</q:quakeml>\n"
	require.Equal(t, want, got)
}

func TestEncodeBuiltOrigin(t *testing.T) {
	c := &event.Catalog{
		Events: []event.Event{{
			ResourceID: "smi:local/event/1",
			Origins:    []event.Origin{{ResourceID: "smi:local/origin/1"}},
		}},
	}

	got, err := quakeml.EncodeString(c)
	require.NoError(t, err)

	// time, latitude and longitude are emitted even when empty; every
	// other member of a zero origin stays out of the document
	want := "<?xml version='1.0' encoding='utf-8'?>\n" +
		"<q:quakeml xmlns:q=\"http://quakeml.org/xmlns/quakeml/1.2\" xmlns=\"http://quakeml.org/xmlns/bed/1.2\">\n" +
		"  <eventParameters>\n" +
		"    <event publicID=\"smi:local/event/1\">\n" +
		"      <origin publicID=\"smi:local/origin/1\">\n" +
		"        <time/>\n" +
		"        <latitude/>\n" +
		"        <longitude/>\n" +
		"      </origin>\n" +
		"    </event>\n" +
		"  </eventParameters>\n" +
		"</q:quakeml>\n"
	require.Equal(t, want, got)
}

func TestUncertaintyOnlyQuantityIsDropped(t *testing.T) {
	doc := `<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0"><eventParameters><event publicID="e">` +
		`<origin publicID="o"><time/><latitude/><longitude/><depth><uncertainty>0.5</uncertainty></depth></origin>` +
		`</event></eventParameters></quakeml>`

	c, err := quakeml.DecodeString(doc)
	require.NoError(t, err)

	o := c.Events[0].Origins[0]
	require.Nil(t, o.Depth.Value)
	require.Equal(t, 0.5, *o.Depth.Uncertainty)

	// without a value the whole quantity is dropped on encode
	encoded, err := quakeml.EncodeString(c)
	require.NoError(t, err)
	require.NotContains(t, encoded, "depth")
	require.Contains(t, encoded, "<time/>")
}

func TestEmptyCreationInfoIsDropped(t *testing.T) {
	doc := `<quakeml xmlns="http://quakeml.org/xmlns/quakeml/1.0"><eventParameters>` +
		`<event publicID="e"><creationInfo/></event></eventParameters></quakeml>`

	c, err := quakeml.DecodeString(doc)
	require.NoError(t, err)
	require.NotNil(t, c.Events[0].CreationInfo)

	encoded, err := quakeml.EncodeString(c)
	require.NoError(t, err)
	require.NotContains(t, encoded, "creationInfo")
}

func TestEncodeDoesNotMutate(t *testing.T) {
	c := decodeFixture(t, "origin.xml")
	before, err := quakeml.EncodeString(c)
	require.NoError(t, err)
	again, err := quakeml.EncodeString(c)
	require.NoError(t, err)
	require.Equal(t, before, again)
}
