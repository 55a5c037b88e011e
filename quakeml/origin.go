package quakeml

import (
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

func (d *decoder) origin(el *xmltree.Element) (event.Origin, error) {
	var o event.Origin
	if id, ok := el.AttrValue("publicID"); ok {
		o.ResourceID = event.ResourceIdentifier(id)
	}

	var err error
	if o.Time, err = d.timeQuantity(el, "time"); err != nil {
		return o, err
	}
	if o.Latitude, err = d.floatQuantity(el, "latitude"); err != nil {
		return o, err
	}
	if o.Longitude, err = d.floatQuantity(el, "longitude"); err != nil {
		return o, err
	}
	if o.Depth, err = d.floatQuantity(el, "depth"); err != nil {
		return o, err
	}
	o.DepthType = d.str(el, "depthType")
	o.TimeFixed = d.bool(el, "timeFixed")
	o.EpicenterFixed = d.bool(el, "epicenterFixed")
	o.ReferenceSystemID = d.resourceRef(el, "referenceSystemID")
	o.MethodID = d.resourceRef(el, "methodID")
	o.EarthModelID = d.resourceRef(el, "earthModelID")
	if o.CompositeTimes, err = d.compositeTimes(el); err != nil {
		return o, err
	}
	if o.Quality, err = d.originQuality(el); err != nil {
		return o, err
	}
	o.Type = d.str(el, "type")
	o.EvaluationMode = d.str(el, "evaluationMode")
	o.EvaluationStatus = d.str(el, "evaluationStatus")
	if o.Comments, err = d.comments(el); err != nil {
		return o, err
	}
	if o.CreationInfo, err = d.creationInfo(el); err != nil {
		return o, err
	}
	if o.Uncertainty, err = d.originUncertainty(el); err != nil {
		return o, err
	}
	for _, ael := range d.children(el, "arrival") {
		a, err := d.arrival(ael)
		if err != nil {
			return o, err
		}
		o.Arrivals = append(o.Arrivals, a)
	}

	return o, nil
}

func appendOrigin(parent *xmltree.Element, o *event.Origin) {
	el := xmltree.New("origin")
	el.SetAttr("publicID", string(o.ResourceID))
	appendTimeQuantity(el, "time", o.Time, true)
	appendFloatQuantity(el, "latitude", o.Latitude, true)
	appendFloatQuantity(el, "longitude", o.Longitude, true)
	appendFloatQuantity(el, "depth", o.Depth, false)
	appendStr(el, "depthType", o.DepthType, false)
	appendBool(el, "timeFixed", o.TimeFixed)
	appendBool(el, "epicenterFixed", o.EpicenterFixed)
	appendResourceRef(el, "referenceSystemID", o.ReferenceSystemID, false)
	appendResourceRef(el, "methodID", o.MethodID, false)
	appendResourceRef(el, "earthModelID", o.EarthModelID, false)
	appendCompositeTimes(el, o.CompositeTimes)
	appendOriginQuality(el, o.Quality)
	appendStr(el, "type", o.Type, false)
	appendStr(el, "evaluationMode", o.EvaluationMode, false)
	appendStr(el, "evaluationStatus", o.EvaluationStatus, false)
	appendComments(el, o.Comments)
	appendCreationInfo(el, o.CreationInfo)
	appendOriginUncertainty(el, o.Uncertainty)
	for i := range o.Arrivals {
		appendArrival(el, &o.Arrivals[i])
	}
	parent.Append(el)
}
