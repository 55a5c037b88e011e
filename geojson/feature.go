package geojson

import (
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/seiskit/quake/event"
)

// Resource identifiers fabricated for imported objects. The feeds carry a
// short event code ("us7000dfl4"); origins and magnitudes have no ids of
// their own, so both derive from the event code.
const (
	eventIDPrefix     = "smi:earthquake.usgs.gov/event/"
	originIDPrefix    = "smi:earthquake.usgs.gov/origin/"
	magnitudeIDPrefix = "smi:earthquake.usgs.gov/magnitude/"
)

// decodeFeature maps one feature onto an event with a single origin and, if
// the feed carries a magnitude, a single magnitude. Both are preferred.
func decodeFeature(data []byte) (event.Event, error) {
	var ev event.Event

	code, err := jsonparser.GetString(data, "id")
	if err != nil {
		return ev, errors.Wrap(err, "feature id")
	}
	ev.ResourceID = event.ResourceIdentifier(eventIDPrefix + code)

	props, _, _, err := jsonparser.Get(data, "properties")
	if err != nil {
		return ev, errors.Wrapf(err, "feature %s: properties", code)
	}

	if ev.Type, err = optString(props, "type"); err != nil {
		return ev, err
	}
	place, err := optString(props, "place")
	if err != nil {
		return ev, err
	}
	if place != nil {
		ev.Descriptions = append(ev.Descriptions, event.EventDescription{
			Text: place,
			Type: event.Ptr("region name"),
		})
	}

	net, err := optString(props, "net")
	if err != nil {
		return ev, err
	}
	updated, err := optInt(props, "updated")
	if err != nil {
		return ev, err
	}
	if net != nil || updated != nil {
		ci := event.CreationInfo{AgencyID: net}
		if updated != nil {
			ci.CreationTime = event.Ptr(msTime(*updated))
		}
		ev.CreationInfo = &ci
	}

	o, err := decodeOrigin(data, props, code)
	if err != nil {
		return ev, errors.Wrapf(err, "feature %s", code)
	}
	ev.Origins = append(ev.Origins, o)
	ev.PreferredOriginID = event.Ptr(o.ResourceID)

	mag, err := optFloat(props, "mag")
	if err != nil {
		return ev, err
	}
	magType, err := optString(props, "magType")
	if err != nil {
		return ev, err
	}
	if mag != nil || magType != nil {
		m := event.Magnitude{
			ResourceID: event.ResourceIdentifier(magnitudeIDPrefix + code),
			Mag:        event.FloatQuantity{Value: mag},
			Type:       magType,
			OriginID:   event.Ptr(o.ResourceID),
		}
		ev.Magnitudes = append(ev.Magnitudes, m)
		ev.PreferredMagnitudeID = event.Ptr(m.ResourceID)
	}

	return ev, nil
}

func decodeOrigin(data, props []byte, code string) (event.Origin, error) {
	o := event.Origin{ResourceID: event.ResourceIdentifier(originIDPrefix + code)}

	ms, err := optInt(props, "time")
	if err != nil {
		return o, err
	}
	if ms != nil {
		o.Time.Value = event.Ptr(msTime(*ms))
	}

	coords, err := coordinates(data)
	if err != nil {
		return o, err
	}
	if len(coords) >= 2 {
		o.Longitude.Value = event.Ptr(coords[0])
		o.Latitude.Value = event.Ptr(coords[1])
	}
	// feed depths are kilometers, the model keeps meters
	if len(coords) >= 3 {
		o.Depth.Value = event.Ptr(coords[2] * 1000)
	}

	status, err := optString(props, "status")
	if err != nil {
		return o, err
	}
	if status != nil {
		switch *status {
		case "reviewed":
			o.EvaluationMode = event.Ptr(event.EvaluationModeManual)
			o.EvaluationStatus = event.Ptr(event.EvaluationStatusReviewed)
		case "automatic":
			o.EvaluationMode = event.Ptr(event.EvaluationModeAutomatic)
		}
	}

	var q event.OriginQuality
	if q.UsedStationCount, err = optInt(props, "nst"); err != nil {
		return o, err
	}
	if q.StandardError, err = optFloat(props, "rms"); err != nil {
		return o, err
	}
	if q.AzimuthalGap, err = optFloat(props, "gap"); err != nil {
		return o, err
	}
	if q.MinimumDistance, err = optFloat(props, "dmin"); err != nil {
		return o, err
	}
	if !q.IsEmpty() {
		o.Quality = &q
	}

	return o, nil
}

// coordinates collects the point coordinates of the feature's geometry:
// longitude, latitude and, when present, depth in kilometers.
func coordinates(data []byte) ([]float64, error) {
	var out []float64
	var cerr error
	_, aerr := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if cerr != nil {
			return
		}
		if err != nil {
			cerr = err
			return
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			cerr = err
			return
		}
		out = append(out, f)
	}, "geometry", "coordinates")
	if aerr != nil {
		if errors.Is(aerr, jsonparser.KeyPathNotFoundError) {
			return nil, nil
		}
		return nil, errors.Wrap(aerr, "geometry coordinates")
	}
	if cerr != nil {
		return nil, errors.Wrap(cerr, "geometry coordinates")
	}

	return out, nil
}

// Optional field accessors. The feeds use null and omission interchangeably;
// both decode to nil. A present value of the wrong type is an error.

func optString(data []byte, keys ...string) (*string, error) {
	v, t, _, err := jsonparser.Get(data, keys...)
	if t == jsonparser.NotExist || t == jsonparser.Null {
		return nil, nil
	}
	if err != nil {
		return nil, wrapKey(err, keys)
	}
	s, err := jsonparser.ParseString(v)
	if err != nil {
		return nil, wrapKey(err, keys)
	}

	return &s, nil
}

func optFloat(data []byte, keys ...string) (*float64, error) {
	v, t, _, err := jsonparser.Get(data, keys...)
	if t == jsonparser.NotExist || t == jsonparser.Null {
		return nil, nil
	}
	if err != nil {
		return nil, wrapKey(err, keys)
	}
	f, err := jsonparser.ParseFloat(v)
	if err != nil {
		return nil, wrapKey(err, keys)
	}

	return &f, nil
}

func optInt(data []byte, keys ...string) (*int64, error) {
	v, t, _, err := jsonparser.Get(data, keys...)
	if t == jsonparser.NotExist || t == jsonparser.Null {
		return nil, nil
	}
	if err != nil {
		return nil, wrapKey(err, keys)
	}
	i, err := jsonparser.ParseInt(v)
	if err != nil {
		return nil, wrapKey(err, keys)
	}

	return &i, nil
}

func wrapKey(err error, keys []string) error {
	return errors.Wrap(err, strings.Join(keys, "."))
}

// msTime converts a feed timestamp, milliseconds since the epoch, to UTC.
func msTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
