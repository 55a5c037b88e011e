package geojson_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/geojson"
	"github.com/stretchr/testify/require"
)

func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func TestDecodeFeed(t *testing.T) {
	c, err := geojson.DecodeFile(filepath.Join("testdata", "feed.json"))
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	require.Equal(t, "USGS Magnitude 2.5+ Earthquakes, Past Day", *c.Description)
	require.NotNil(t, c.ResourceID)
	require.Equal(t, "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/2.5_day.geojson", string(*c.ResourceID))
	require.NotNil(t, c.CreationInfo)
	require.Equal(t, utc(2021, 3, 19, 13, 47, 0), *c.CreationInfo.CreationTime)

	ev := c.Events[0]
	require.Equal(t, event.ResourceIdentifier("smi:earthquake.usgs.gov/event/us7000dfl4"), ev.ResourceID)
	require.Equal(t, "earthquake", *ev.Type)
	require.Len(t, ev.Descriptions, 1)
	require.Equal(t, "100 km SSW of Raoul Island, New Zealand", *ev.Descriptions[0].Text)
	require.Equal(t, "region name", *ev.Descriptions[0].Type)
	require.Equal(t, "us", *ev.CreationInfo.AgencyID)
	require.Equal(t, utc(2011, 3, 11, 7, 53, 20), *ev.CreationInfo.CreationTime)

	o := ev.PreferredOrigin()
	require.NotNil(t, o)
	require.Equal(t, event.ResourceIdentifier("smi:earthquake.usgs.gov/origin/us7000dfl4"), o.ResourceID)
	require.Equal(t, utc(2011, 3, 11, 5, 46, 24), *o.Time.Value)
	require.Equal(t, -30.368, *o.Latitude.Value)
	require.Equal(t, -178.281, *o.Longitude.Value)
	require.Equal(t, 10000.0, *o.Depth.Value)
	require.Equal(t, event.EvaluationModeManual, *o.EvaluationMode)
	require.Equal(t, event.EvaluationStatusReviewed, *o.EvaluationStatus)
	require.NotNil(t, o.Quality)
	require.Equal(t, int64(123), *o.Quality.UsedStationCount)
	require.Equal(t, 0.7, *o.Quality.StandardError)
	require.Equal(t, 11.0, *o.Quality.AzimuthalGap)
	require.Equal(t, 0.253, *o.Quality.MinimumDistance)

	m := ev.PreferredMagnitude()
	require.NotNil(t, m)
	require.Equal(t, 5.5, *m.Mag.Value)
	require.Equal(t, "mb", *m.Type)
	require.Equal(t, o.ResourceID, *m.OriginID)

	require.Equal(t, "2011-03-11T05:46:24.000000Z | -30.368, -178.281 | 5.5 mb", ev.String())

	// sparse feature: nulls decode to absence
	sparse := c.Events[1]
	require.Equal(t, event.ResourceIdentifier("smi:earthquake.usgs.gov/event/ak0219neiszm"), sparse.ResourceID)
	require.Empty(t, sparse.Magnitudes)
	require.Nil(t, sparse.PreferredMagnitudeID)
	require.Equal(t, "ak", *sparse.CreationInfo.AgencyID)
	require.Nil(t, sparse.CreationInfo.CreationTime)

	so := sparse.Origins[0]
	require.Equal(t, utc(2021, 3, 19, 13, 46, 56), *so.Time.Value)
	require.Equal(t, 63.1922, *so.Latitude.Value)
	require.Equal(t, -150.5873, *so.Longitude.Value)
	require.Nil(t, so.Depth.Value)
	require.Equal(t, event.EvaluationModeAutomatic, *so.EvaluationMode)
	require.Nil(t, so.EvaluationStatus)
	require.Nil(t, so.Quality)
}

func TestDecodeEmptyCollection(t *testing.T) {
	c, err := geojson.DecodeString(`{"type":"FeatureCollection","features":[]}`)
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
	require.Nil(t, c.ResourceID)
	require.Nil(t, c.Description)
	require.Nil(t, c.CreationInfo)
}

func TestDecodeNotGeoJSON(t *testing.T) {
	for _, doc := range []string{
		`{"type":"Topology"}`,
		`{"features":[]}`,
		`plainly not JSON`,
		``,
	} {
		_, err := geojson.DecodeString(doc)
		require.ErrorIs(t, err, geojson.ErrNotGeoJSON, "input %q", doc)
	}
}

func TestDecodeFeatureWithoutID(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"mag":1.0}}]}`
	_, err := geojson.DecodeString(doc)
	require.Error(t, err)
	require.ErrorContains(t, err, "feature id")
}

func TestIs(t *testing.T) {
	require.True(t, geojson.Is(strings.NewReader(`{"type":"FeatureCollection","features":[]}`)))
	require.False(t, geojson.Is(strings.NewReader(`<quakeml><eventParameters/></quakeml>`)))
	require.False(t, geojson.Is(strings.NewReader(``)))
}

func TestIsFile(t *testing.T) {
	require.True(t, geojson.IsFile(filepath.Join("testdata", "feed.json")))
	require.False(t, geojson.IsFile(filepath.Join("testdata", "missing.json")))
}
