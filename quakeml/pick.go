package quakeml

import (
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

func (d *decoder) pick(el *xmltree.Element) (event.Pick, error) {
	var p event.Pick
	if id, ok := el.AttrValue("publicID"); ok {
		p.ResourceID = event.ResourceIdentifier(id)
	}

	var err error
	if p.Time, err = d.timeQuantity(el, "time"); err != nil {
		return p, err
	}
	p.WaveformID = d.waveformID(el)
	p.FilterID = d.resourceRef(el, "filterID")
	p.MethodID = d.resourceRef(el, "methodID")
	if p.HorizontalSlowness, err = d.floatQuantity(el, "horizontalSlowness"); err != nil {
		return p, err
	}
	if p.Backazimuth, err = d.floatQuantity(el, "backazimuth"); err != nil {
		return p, err
	}
	p.SlownessMethodID = d.resourceRef(el, "slownessMethodID")
	p.Onset = d.str(el, "onset")
	p.PhaseHint = d.str(el, "phaseHint")
	p.Polarity = d.str(el, "polarity")
	p.EvaluationMode = d.str(el, "evaluationMode")
	p.EvaluationStatus = d.str(el, "evaluationStatus")
	if p.Comments, err = d.comments(el); err != nil {
		return p, err
	}
	if p.CreationInfo, err = d.creationInfo(el); err != nil {
		return p, err
	}

	return p, nil
}

func appendPick(parent *xmltree.Element, p *event.Pick) {
	el := xmltree.New("pick")
	el.SetAttr("publicID", string(p.ResourceID))
	appendTimeQuantity(el, "time", p.Time, true)
	appendWaveformID(el, p.WaveformID)
	appendResourceRef(el, "filterID", p.FilterID, false)
	appendResourceRef(el, "methodID", p.MethodID, false)
	appendFloatQuantity(el, "horizontalSlowness", p.HorizontalSlowness, false)
	appendFloatQuantity(el, "backazimuth", p.Backazimuth, false)
	appendResourceRef(el, "slownessMethodID", p.SlownessMethodID, false)
	appendStr(el, "onset", p.Onset, false)
	appendStr(el, "phaseHint", p.PhaseHint, false)
	appendStr(el, "polarity", p.Polarity, false)
	appendStr(el, "evaluationMode", p.EvaluationMode, false)
	appendStr(el, "evaluationStatus", p.EvaluationStatus, false)
	appendComments(el, p.Comments)
	appendCreationInfo(el, p.CreationInfo)
	parent.Append(el)
}
