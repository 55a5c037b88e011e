package event

import "time"

// QuantityValue constrains the value types a Quantity can carry.
type QuantityValue interface {
	int64 | float64 | time.Time
}

// Quantity is a measured value bundled with up to four optional uncertainty
// figures. A Quantity whose every field is nil stands for a field that was
// entirely absent from the source document.
type Quantity[T QuantityValue] struct {
	Value            *T
	Uncertainty      *float64
	LowerUncertainty *float64
	UpperUncertainty *float64
	ConfidenceLevel  *float64
}

// IsEmpty reports whether every field of the quantity is absent.
func (q Quantity[T]) IsEmpty() bool {
	return q.Value == nil &&
		q.Uncertainty == nil &&
		q.LowerUncertainty == nil &&
		q.UpperUncertainty == nil &&
		q.ConfidenceLevel == nil
}

// The three quantity shapes used by the model.
type (
	FloatQuantity = Quantity[float64]
	IntQuantity   = Quantity[int64]
	TimeQuantity  = Quantity[time.Time]
)

// Ptr returns a pointer to v. It is a convenience for populating the many
// optional pointer fields of this package's types.
func Ptr[T any](v T) *T {
	return &v
}
