package quakeml

import (
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

func (d *decoder) magnitude(el *xmltree.Element) (event.Magnitude, error) {
	var m event.Magnitude
	if id, ok := el.AttrValue("publicID"); ok {
		m.ResourceID = event.ResourceIdentifier(id)
	}

	var err error
	if m.Mag, err = d.floatQuantity(el, "mag"); err != nil {
		return m, err
	}
	m.Type = d.str(el, "type")
	m.OriginID = d.resourceRef(el, "originID")
	m.MethodID = d.resourceRef(el, "methodID")
	if m.StationCount, err = d.int(el, "stationCount"); err != nil {
		return m, err
	}
	if m.AzimuthalGap, err = d.float(el, "azimuthalGap"); err != nil {
		return m, err
	}
	m.EvaluationStatus = d.str(el, "evaluationStatus")
	if m.Comments, err = d.comments(el); err != nil {
		return m, err
	}
	if m.CreationInfo, err = d.creationInfo(el); err != nil {
		return m, err
	}

	return m, nil
}

func appendMagnitude(parent *xmltree.Element, m *event.Magnitude) {
	el := xmltree.New("magnitude")
	el.SetAttr("publicID", string(m.ResourceID))
	appendFloatQuantity(el, "mag", m.Mag, true)
	appendStr(el, "type", m.Type, false)
	appendResourceRef(el, "originID", m.OriginID, false)
	appendResourceRef(el, "methodID", m.MethodID, false)
	appendInt(el, "stationCount", m.StationCount)
	appendFloat(el, "azimuthalGap", m.AzimuthalGap)
	appendStr(el, "evaluationStatus", m.EvaluationStatus, false)
	appendComments(el, m.Comments)
	appendCreationInfo(el, m.CreationInfo)
	parent.Append(el)
}

func (d *decoder) stationMagnitude(el *xmltree.Element) (event.StationMagnitude, error) {
	var m event.StationMagnitude
	if id, ok := el.AttrValue("publicID"); ok {
		m.ResourceID = event.ResourceIdentifier(id)
	}
	if id, ok := d.text(el, "originID"); ok {
		m.OriginID = event.ResourceIdentifier(id)
	}

	var err error
	if m.Mag, err = d.floatQuantity(el, "mag"); err != nil {
		return m, err
	}
	m.Type = d.str(el, "type")
	m.AmplitudeID = d.resourceRef(el, "amplitudeID")
	m.MethodID = d.resourceRef(el, "methodID")
	m.WaveformID = d.waveformID(el)
	if m.Comments, err = d.comments(el); err != nil {
		return m, err
	}
	if m.CreationInfo, err = d.creationInfo(el); err != nil {
		return m, err
	}

	return m, nil
}

func appendStationMagnitude(parent *xmltree.Element, m *event.StationMagnitude) {
	el := xmltree.New("stationMagnitude")
	el.SetAttr("publicID", string(m.ResourceID))
	appendText(el, "originID", string(m.OriginID))
	appendFloatQuantity(el, "mag", m.Mag, true)
	appendStr(el, "type", m.Type, false)
	appendResourceRef(el, "amplitudeID", m.AmplitudeID, false)
	appendResourceRef(el, "methodID", m.MethodID, false)
	appendWaveformID(el, m.WaveformID)
	appendComments(el, m.Comments)
	appendCreationInfo(el, m.CreationInfo)
	parent.Append(el)
}
