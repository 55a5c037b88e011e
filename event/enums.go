package event

// Enumeration values defined by the QuakeML schema. The model stores them
// as plain strings so that documents using vocabulary from other schema
// versions still decode; these constants cover the common cases.

// Evaluation modes.
const (
	EvaluationModeManual    = "manual"
	EvaluationModeAutomatic = "automatic"
)

// Evaluation statuses.
const (
	EvaluationStatusPreliminary = "preliminary"
	EvaluationStatusConfirmed   = "confirmed"
	EvaluationStatusReviewed    = "reviewed"
	EvaluationStatusFinal       = "final"
	EvaluationStatusRejected    = "rejected"
)

// Pick onsets.
const (
	OnsetEmergent     = "emergent"
	OnsetImpulsive    = "impulsive"
	OnsetQuestionable = "questionable"
)

// Pick polarities.
const (
	PolarityPositive    = "positive"
	PolarityNegative    = "negative"
	PolarityUndecidable = "undecidable"
)

// Origin uncertainty descriptions.
const (
	UncertaintyHorizontal          = "horizontal uncertainty"
	UncertaintyEllipse             = "uncertainty ellipse"
	UncertaintyConfidenceEllipsoid = "confidence ellipsoid"
	UncertaintyProbabilityDensity  = "probability density function"
)
