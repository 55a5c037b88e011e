package event

// Magnitude is a network magnitude estimate for an event, usually derived
// from several station magnitudes.
type Magnitude struct {
	ResourceID       ResourceIdentifier
	Mag              FloatQuantity
	Type             *string
	OriginID         *ResourceIdentifier
	MethodID         *ResourceIdentifier
	StationCount     *int64
	AzimuthalGap     *float64
	EvaluationStatus *string
	Comments         []Comment
	CreationInfo     *CreationInfo
}

// StationMagnitude is a magnitude estimate contributed by a single station.
type StationMagnitude struct {
	ResourceID   ResourceIdentifier
	OriginID     ResourceIdentifier
	Mag          FloatQuantity
	Type         *string
	AmplitudeID  *ResourceIdentifier
	MethodID     *ResourceIdentifier
	WaveformID   WaveformStreamID
	Comments     []Comment
	CreationInfo *CreationInfo
}
