package quakeml

import (
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

func (d *decoder) arrival(el *xmltree.Element) (event.Arrival, error) {
	var a event.Arrival
	if id, ok := el.AttrValue("publicID"); ok {
		a.ResourceID = event.ResourceIdentifier(id)
	}
	if v, ok := el.AttrValue("preliminary"); ok {
		b := v == "true"
		a.Preliminary = &b
	}
	if id, ok := d.text(el, "pickID"); ok {
		a.PickID = event.ResourceIdentifier(id)
	}
	a.Phase, _ = d.text(el, "phase")

	var err error
	if a.TimeCorrection, err = d.float(el, "timeCorrection"); err != nil {
		return a, err
	}
	if a.Azimuth, err = d.float(el, "azimuth"); err != nil {
		return a, err
	}
	if a.Distance, err = d.float(el, "distance"); err != nil {
		return a, err
	}
	if a.TimeResidual, err = d.float(el, "timeResidual"); err != nil {
		return a, err
	}
	if a.HorizontalSlownessResidual, err = d.float(el, "horizontalSlownessResidual"); err != nil {
		return a, err
	}
	if a.BackazimuthResidual, err = d.float(el, "backazimuthResidual"); err != nil {
		return a, err
	}
	a.TimeUsed = d.bool(el, "timeUsed")
	a.HorizontalSlownessUsed = d.bool(el, "horizontalSlownessUsed")
	a.BackazimuthUsed = d.bool(el, "backazimuthUsed")
	if a.TimeWeight, err = d.float(el, "timeWeight"); err != nil {
		return a, err
	}
	a.EarthModelID = d.resourceRef(el, "earthModelID")
	if a.Comments, err = d.comments(el); err != nil {
		return a, err
	}
	if a.CreationInfo, err = d.creationInfo(el); err != nil {
		return a, err
	}

	return a, nil
}

func appendArrival(parent *xmltree.Element, a *event.Arrival) {
	el := xmltree.New("arrival")
	el.SetAttr("publicID", string(a.ResourceID))
	if a.Preliminary != nil {
		el.SetAttr("preliminary", formatBool(*a.Preliminary))
	}
	appendText(el, "pickID", string(a.PickID))
	appendText(el, "phase", a.Phase)
	appendFloat(el, "timeCorrection", a.TimeCorrection)
	appendFloat(el, "azimuth", a.Azimuth)
	appendFloat(el, "distance", a.Distance)
	appendFloat(el, "timeResidual", a.TimeResidual)
	appendFloat(el, "horizontalSlownessResidual", a.HorizontalSlownessResidual)
	appendFloat(el, "backazimuthResidual", a.BackazimuthResidual)
	appendBool(el, "timeUsed", a.TimeUsed)
	appendBool(el, "horizontalSlownessUsed", a.HorizontalSlownessUsed)
	appendBool(el, "backazimuthUsed", a.BackazimuthUsed)
	appendFloat(el, "timeWeight", a.TimeWeight)
	appendResourceRef(el, "earthModelID", a.EarthModelID, false)
	appendComments(el, a.Comments)
	appendCreationInfo(el, a.CreationInfo)
	parent.Append(el)
}
