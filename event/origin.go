package event

// Origin is a hypocenter estimate: where and when an event occurred,
// together with the solution's quality and uncertainty figures and the
// arrivals that constrained it.
type Origin struct {
	ResourceID        ResourceIdentifier
	Time              TimeQuantity
	Latitude          FloatQuantity
	Longitude         FloatQuantity
	Depth             FloatQuantity
	DepthType         *string
	TimeFixed         *bool
	EpicenterFixed    *bool
	ReferenceSystemID *ResourceIdentifier
	MethodID          *ResourceIdentifier
	EarthModelID      *ResourceIdentifier
	CompositeTimes    []CompositeTime
	Quality           *OriginQuality
	Type              *string
	EvaluationMode    *string
	EvaluationStatus  *string
	Comments          []Comment
	CreationInfo      *CreationInfo
	Uncertainty       *OriginUncertainty
	Arrivals          []Arrival
}

// OriginQuality summarizes how well constrained an origin solution is.
type OriginQuality struct {
	AssociatedPhaseCount   *int64
	UsedPhaseCount         *int64
	AssociatedStationCount *int64
	UsedStationCount       *int64
	DepthPhaseCount        *int64
	StandardError          *float64
	AzimuthalGap           *float64
	SecondaryAzimuthalGap  *float64
	GroundTruthLevel       *string
	MinimumDistance        *float64
	MaximumDistance        *float64
	MedianDistance         *float64
}

// IsEmpty reports whether no quality figure is set.
func (q OriginQuality) IsEmpty() bool {
	return q == OriginQuality{}
}

// OriginUncertainty describes the horizontal uncertainty of an origin,
// either as scalar figures or as a full confidence ellipsoid.
type OriginUncertainty struct {
	PreferredDescription            *string
	HorizontalUncertainty           *float64
	MinHorizontalUncertainty        *float64
	MaxHorizontalUncertainty        *float64
	AzimuthMaxHorizontalUncertainty *float64
	ConfidenceEllipsoid             *ConfidenceEllipsoid
}

// IsEmpty reports whether the uncertainty carries no information at all.
func (u OriginUncertainty) IsEmpty() bool {
	return u.PreferredDescription == nil &&
		u.HorizontalUncertainty == nil &&
		u.MinHorizontalUncertainty == nil &&
		u.MaxHorizontalUncertainty == nil &&
		u.AzimuthMaxHorizontalUncertainty == nil &&
		(u.ConfidenceEllipsoid == nil || u.ConfidenceEllipsoid.IsEmpty())
}

// ConfidenceEllipsoid is a 3D error ellipsoid around a hypocenter.
type ConfidenceEllipsoid struct {
	SemiMajorAxisLength        *float64
	SemiMinorAxisLength        *float64
	SemiIntermediateAxisLength *float64
	MajorAxisPlunge            *float64
	MajorAxisAzimuth           *float64
	MajorAxisRotation          *float64
}

// IsEmpty reports whether no axis figure is set.
func (c ConfidenceEllipsoid) IsEmpty() bool {
	return c == ConfidenceEllipsoid{}
}

// CompositeTime expresses an origin time of uneven precision, each calendar
// field carrying its own uncertainty.
type CompositeTime struct {
	Year   IntQuantity
	Month  IntQuantity
	Day    IntQuantity
	Hour   IntQuantity
	Minute IntQuantity
	Second FloatQuantity
}

// IsEmpty reports whether every calendar field is absent.
func (t CompositeTime) IsEmpty() bool {
	return t.Year.IsEmpty() &&
		t.Month.IsEmpty() &&
		t.Day.IsEmpty() &&
		t.Hour.IsEmpty() &&
		t.Minute.IsEmpty() &&
		t.Second.IsEmpty()
}

// Arrival links a pick to an origin and records the residuals and weights
// the location algorithm assigned to it.
type Arrival struct {
	ResourceID                 ResourceIdentifier
	Preliminary                *bool
	PickID                     ResourceIdentifier
	Phase                      string
	TimeCorrection             *float64
	Azimuth                    *float64
	Distance                   *float64
	TimeResidual               *float64
	HorizontalSlownessResidual *float64
	BackazimuthResidual        *float64
	TimeUsed                   *bool
	HorizontalSlownessUsed     *bool
	BackazimuthUsed            *bool
	TimeWeight                 *float64
	EarthModelID               *ResourceIdentifier
	Comments                   []Comment
	CreationInfo               *CreationInfo
}
