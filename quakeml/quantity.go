package quakeml

import (
	"github.com/seiskit/quake/event"
	"github.com/seiskit/quake/internal/xmltree"
)

// decodeQuantity decodes the quantity wrapped in the child element name of
// el. An absent wrapper yields an all-absent quantity and no error: optional
// quantities are never fabricated. The value coercer is supplied by the call
// site, the four uncertainty fields are always floats.
func decodeQuantity[T event.QuantityValue](d *decoder, el *xmltree.Element, name string, value func(*xmltree.Element, string) (*T, error)) (event.Quantity[T], error) {
	var q event.Quantity[T]
	qel := d.find(el, name)
	if qel == nil {
		return q, nil
	}

	var err error
	if q.Value, err = value(qel, "value"); err != nil {
		return q, err
	}
	if q.Uncertainty, err = d.float(qel, "uncertainty"); err != nil {
		return q, err
	}
	if q.LowerUncertainty, err = d.float(qel, "lowerUncertainty"); err != nil {
		return q, err
	}
	if q.UpperUncertainty, err = d.float(qel, "upperUncertainty"); err != nil {
		return q, err
	}
	if q.ConfidenceLevel, err = d.float(qel, "confidenceLevel"); err != nil {
		return q, err
	}

	return q, nil
}

func (d *decoder) floatQuantity(el *xmltree.Element, name string) (event.FloatQuantity, error) {
	return decodeQuantity(d, el, name, d.float)
}

func (d *decoder) intQuantity(el *xmltree.Element, name string) (event.IntQuantity, error) {
	return decodeQuantity(d, el, name, d.int)
}

func (d *decoder) timeQuantity(el *xmltree.Element, name string) (event.TimeQuantity, error) {
	return decodeQuantity(d, el, name, d.time)
}

// appendQuantity appends the wrapper element tag carrying the quantity's
// fields. A quantity without a value is skipped entirely, uncertainties
// included, unless always is set; mandatory nodes appear as empty elements
// when the quantity is all-absent.
func appendQuantity[T event.QuantityValue](parent *xmltree.Element, tag string, q event.Quantity[T], format func(T) string, always bool) {
	if q.Value == nil && !always {
		return
	}
	el := xmltree.New(tag)
	if q.Value != nil {
		appendText(el, "value", format(*q.Value))
	}
	appendFloat(el, "uncertainty", q.Uncertainty)
	appendFloat(el, "lowerUncertainty", q.LowerUncertainty)
	appendFloat(el, "upperUncertainty", q.UpperUncertainty)
	appendFloat(el, "confidenceLevel", q.ConfidenceLevel)
	parent.Append(el)
}

func appendFloatQuantity(parent *xmltree.Element, tag string, q event.FloatQuantity, always bool) {
	appendQuantity(parent, tag, q, formatFloat, always)
}

func appendIntQuantity(parent *xmltree.Element, tag string, q event.IntQuantity, always bool) {
	appendQuantity(parent, tag, q, formatInt, always)
}

func appendTimeQuantity(parent *xmltree.Element, tag string, q event.TimeQuantity, always bool) {
	appendQuantity(parent, tag, q, formatTime, always)
}
