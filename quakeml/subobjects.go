package quakeml

import (
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

// Shared sub-objects: comments, creation info, event descriptions, waveform
// stream identifiers, composite times, origin quality and origin uncertainty.
// Each has a decode method on decoder and a matching append function; the
// append functions emit wrapper elements only when they would carry content.

func (d *decoder) comments(el *xmltree.Element) ([]event.Comment, error) {
	var out []event.Comment
	for _, cel := range d.children(el, "comment") {
		var c event.Comment
		c.Text, _ = d.text(cel, "text")
		if id, ok := cel.AttrValue("id"); ok {
			rid := event.ResourceIdentifier(id)
			c.ResourceID = &rid
		}
		ci, err := d.creationInfo(cel)
		if err != nil {
			return nil, err
		}
		c.CreationInfo = ci
		out = append(out, c)
	}

	return out, nil
}

func appendComments(parent *xmltree.Element, comments []event.Comment) {
	for _, c := range comments {
		el := xmltree.New("comment")
		if c.ResourceID != nil {
			el.SetAttr("id", string(*c.ResourceID))
		}
		appendText(el, "text", c.Text)
		appendCreationInfo(el, c.CreationInfo)
		parent.Append(el)
	}
}

// creationInfo returns nil when el has no creationInfo child at all; a
// present but empty wrapper decodes to an all-absent value.
func (d *decoder) creationInfo(el *xmltree.Element) (*event.CreationInfo, error) {
	if el.Child(d.ns, "creationInfo") == nil {
		return nil, nil
	}
	var ci event.CreationInfo
	ci.AgencyID = d.str(el, "creationInfo/agencyID")
	ci.AgencyURI = d.resourceRef(el, "creationInfo/agencyURI")
	ci.Author = d.str(el, "creationInfo/author")
	ci.AuthorURI = d.resourceRef(el, "creationInfo/authorURI")
	var err error
	if ci.CreationTime, err = d.time(el, "creationInfo/creationTime"); err != nil {
		return nil, err
	}
	ci.Version = d.str(el, "creationInfo/version")

	return &ci, nil
}

func appendCreationInfo(parent *xmltree.Element, ci *event.CreationInfo) {
	if ci == nil {
		return
	}
	el := xmltree.New("creationInfo")
	appendStr(el, "agencyID", ci.AgencyID, false)
	appendResourceRef(el, "agencyURI", ci.AgencyURI, false)
	appendStr(el, "author", ci.Author, false)
	appendResourceRef(el, "authorURI", ci.AuthorURI, false)
	appendTime(el, "creationTime", ci.CreationTime)
	appendStr(el, "version", ci.Version, false)
	if el.Len() > 0 {
		parent.Append(el)
	}
}

func (d *decoder) eventDescriptions(el *xmltree.Element) []event.EventDescription {
	var out []event.EventDescription
	for _, del := range d.children(el, "description") {
		out = append(out, event.EventDescription{
			Text: d.str(del, "text"),
			Type: d.str(del, "type"),
		})
	}

	return out
}

func appendEventDescriptions(parent *xmltree.Element, descriptions []event.EventDescription) {
	for _, desc := range descriptions {
		el := xmltree.New("description")
		appendStr(el, "text", desc.Text, true)
		appendStr(el, "type", desc.Type, false)
		parent.Append(el)
	}
}

// waveformID decodes the waveformID child of an entity element. An absent
// child yields the zero value: the stream identifier is a mandatory node for
// the entities carrying one.
func (d *decoder) waveformID(el *xmltree.Element) event.WaveformStreamID {
	var w event.WaveformStreamID
	wel := el.Child(d.ns, "waveformID")
	if wel == nil {
		return w
	}
	w.NetworkCode, _ = wel.AttrValue("networkCode")
	w.StationCode, _ = wel.AttrValue("stationCode")
	if v, ok := wel.AttrValue("locationCode"); ok {
		w.LocationCode = &v
	}
	if v, ok := wel.AttrValue("channelCode"); ok {
		w.ChannelCode = &v
	}
	if wel.Text != "" {
		rid := event.ResourceIdentifier(wel.Text)
		w.ResourceID = &rid
	}

	return w
}

func appendWaveformID(parent *xmltree.Element, w event.WaveformStreamID) {
	el := xmltree.New("waveformID")
	if w.NetworkCode != "" {
		el.SetAttr("networkCode", w.NetworkCode)
	}
	if w.StationCode != "" {
		el.SetAttr("stationCode", w.StationCode)
	}
	if w.LocationCode != nil && *w.LocationCode != "" {
		el.SetAttr("locationCode", *w.LocationCode)
	}
	if w.ChannelCode != nil && *w.ChannelCode != "" {
		el.SetAttr("channelCode", *w.ChannelCode)
	}
	if w.ResourceID != nil {
		el.Text = string(*w.ResourceID)
	}
	parent.Append(el)
}

func (d *decoder) compositeTimes(el *xmltree.Element) ([]event.CompositeTime, error) {
	var out []event.CompositeTime
	for _, cel := range d.children(el, "compositeTime") {
		var ct event.CompositeTime
		var err error
		if ct.Year, err = d.intQuantity(cel, "year"); err != nil {
			return nil, err
		}
		if ct.Month, err = d.intQuantity(cel, "month"); err != nil {
			return nil, err
		}
		if ct.Day, err = d.intQuantity(cel, "day"); err != nil {
			return nil, err
		}
		if ct.Hour, err = d.intQuantity(cel, "hour"); err != nil {
			return nil, err
		}
		if ct.Minute, err = d.intQuantity(cel, "minute"); err != nil {
			return nil, err
		}
		if ct.Second, err = d.floatQuantity(cel, "second"); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}

	return out, nil
}

func appendCompositeTimes(parent *xmltree.Element, times []event.CompositeTime) {
	for _, ct := range times {
		el := xmltree.New("compositeTime")
		appendIntQuantity(el, "year", ct.Year, false)
		appendIntQuantity(el, "month", ct.Month, false)
		appendIntQuantity(el, "day", ct.Day, false)
		appendIntQuantity(el, "hour", ct.Hour, false)
		appendIntQuantity(el, "minute", ct.Minute, false)
		appendFloatQuantity(el, "second", ct.Second, false)
		if el.Len() > 0 {
			parent.Append(el)
		}
	}
}

// originQuality decodes the quality block below an origin element. It
// returns nil when no figure is present, whether the wrapper exists or not.
func (d *decoder) originQuality(el *xmltree.Element) (*event.OriginQuality, error) {
	var q event.OriginQuality
	var err error
	if q.AssociatedPhaseCount, err = d.int(el, "quality/associatedPhaseCount"); err != nil {
		return nil, err
	}
	if q.UsedPhaseCount, err = d.int(el, "quality/usedPhaseCount"); err != nil {
		return nil, err
	}
	if q.AssociatedStationCount, err = d.int(el, "quality/associatedStationCount"); err != nil {
		return nil, err
	}
	if q.UsedStationCount, err = d.int(el, "quality/usedStationCount"); err != nil {
		return nil, err
	}
	if q.DepthPhaseCount, err = d.int(el, "quality/depthPhaseCount"); err != nil {
		return nil, err
	}
	if q.StandardError, err = d.float(el, "quality/standardError"); err != nil {
		return nil, err
	}
	if q.AzimuthalGap, err = d.float(el, "quality/azimuthalGap"); err != nil {
		return nil, err
	}
	if q.SecondaryAzimuthalGap, err = d.float(el, "quality/secondaryAzimuthalGap"); err != nil {
		return nil, err
	}
	q.GroundTruthLevel = d.str(el, "quality/groundTruthLevel")
	if q.MinimumDistance, err = d.float(el, "quality/minimumDistance"); err != nil {
		return nil, err
	}
	if q.MaximumDistance, err = d.float(el, "quality/maximumDistance"); err != nil {
		return nil, err
	}
	if q.MedianDistance, err = d.float(el, "quality/medianDistance"); err != nil {
		return nil, err
	}

	if q.IsEmpty() {
		return nil, nil
	}

	return &q, nil
}

func appendOriginQuality(parent *xmltree.Element, q *event.OriginQuality) {
	if q == nil {
		return
	}
	el := xmltree.New("quality")
	appendInt(el, "associatedPhaseCount", q.AssociatedPhaseCount)
	appendInt(el, "usedPhaseCount", q.UsedPhaseCount)
	appendInt(el, "associatedStationCount", q.AssociatedStationCount)
	appendInt(el, "usedStationCount", q.UsedStationCount)
	appendInt(el, "depthPhaseCount", q.DepthPhaseCount)
	appendFloat(el, "standardError", q.StandardError)
	appendFloat(el, "azimuthalGap", q.AzimuthalGap)
	appendFloat(el, "secondaryAzimuthalGap", q.SecondaryAzimuthalGap)
	appendStr(el, "groundTruthLevel", q.GroundTruthLevel, false)
	appendFloat(el, "minimumDistance", q.MinimumDistance)
	appendFloat(el, "maximumDistance", q.MaximumDistance)
	appendFloat(el, "medianDistance", q.MedianDistance)
	if el.Len() > 0 {
		parent.Append(el)
	}
}

func (d *decoder) confidenceEllipsoid(el *xmltree.Element) (*event.ConfidenceEllipsoid, error) {
	var c event.ConfidenceEllipsoid
	var err error
	if c.SemiMajorAxisLength, err = d.float(el, "semiMajorAxisLength"); err != nil {
		return nil, err
	}
	if c.SemiMinorAxisLength, err = d.float(el, "semiMinorAxisLength"); err != nil {
		return nil, err
	}
	if c.SemiIntermediateAxisLength, err = d.float(el, "semiIntermediateAxisLength"); err != nil {
		return nil, err
	}
	if c.MajorAxisPlunge, err = d.float(el, "majorAxisPlunge"); err != nil {
		return nil, err
	}
	if c.MajorAxisAzimuth, err = d.float(el, "majorAxisAzimuth"); err != nil {
		return nil, err
	}
	if c.MajorAxisRotation, err = d.float(el, "majorAxisRotation"); err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		return nil, nil
	}

	return &c, nil
}

// originUncertainty decodes the originUncertainty block below an origin
// element, ellipsoid included. Coercion failures inside the ellipsoid
// propagate like any other.
func (d *decoder) originUncertainty(el *xmltree.Element) (*event.OriginUncertainty, error) {
	var u event.OriginUncertainty
	u.PreferredDescription = d.str(el, "originUncertainty/preferredDescription")
	var err error
	if u.HorizontalUncertainty, err = d.float(el, "originUncertainty/horizontalUncertainty"); err != nil {
		return nil, err
	}
	if u.MinHorizontalUncertainty, err = d.float(el, "originUncertainty/minHorizontalUncertainty"); err != nil {
		return nil, err
	}
	if u.MaxHorizontalUncertainty, err = d.float(el, "originUncertainty/maxHorizontalUncertainty"); err != nil {
		return nil, err
	}
	if u.AzimuthMaxHorizontalUncertainty, err = d.float(el, "originUncertainty/azimuthMaxHorizontalUncertainty"); err != nil {
		return nil, err
	}
	if cel := d.find(el, "originUncertainty/confidenceEllipsoid"); cel != nil {
		if u.ConfidenceEllipsoid, err = d.confidenceEllipsoid(cel); err != nil {
			return nil, err
		}
	}

	if u.IsEmpty() {
		return nil, nil
	}

	return &u, nil
}

func appendOriginUncertainty(parent *xmltree.Element, u *event.OriginUncertainty) {
	if u == nil {
		return
	}
	el := xmltree.New("originUncertainty")
	appendStr(el, "preferredDescription", u.PreferredDescription, false)
	appendFloat(el, "horizontalUncertainty", u.HorizontalUncertainty)
	appendFloat(el, "minHorizontalUncertainty", u.MinHorizontalUncertainty)
	appendFloat(el, "maxHorizontalUncertainty", u.MaxHorizontalUncertainty)
	appendFloat(el, "azimuthMaxHorizontalUncertainty", u.AzimuthMaxHorizontalUncertainty)
	if ce := u.ConfidenceEllipsoid; ce != nil {
		cel := xmltree.New("confidenceEllipsoid")
		appendFloat(cel, "semiMajorAxisLength", ce.SemiMajorAxisLength)
		appendFloat(cel, "semiMinorAxisLength", ce.SemiMinorAxisLength)
		appendFloat(cel, "semiIntermediateAxisLength", ce.SemiIntermediateAxisLength)
		appendFloat(cel, "majorAxisPlunge", ce.MajorAxisPlunge)
		appendFloat(cel, "majorAxisAzimuth", ce.MajorAxisAzimuth)
		appendFloat(cel, "majorAxisRotation", ce.MajorAxisRotation)
		if cel.Len() > 0 {
			el.Append(cel)
		}
	}
	if el.Len() > 0 {
		parent.Append(el)
	}
}
