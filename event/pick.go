package event

// Pick marks the onset of a seismic phase on a single waveform stream.
type Pick struct {
	ResourceID         ResourceIdentifier
	Time               TimeQuantity
	WaveformID         WaveformStreamID
	FilterID           *ResourceIdentifier
	MethodID           *ResourceIdentifier
	HorizontalSlowness FloatQuantity
	Backazimuth        FloatQuantity
	SlownessMethodID   *ResourceIdentifier
	Onset              *string
	PhaseHint          *string
	Polarity           *string
	EvaluationMode     *string
	EvaluationStatus   *string
	Comments           []Comment
	CreationInfo       *CreationInfo
}
