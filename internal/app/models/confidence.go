package models

type ConfidenceLevel string

const (
	ConfidenceLevelLow    ConfidenceLevel = "LOW"
	ConfidenceLevelMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLevelHigh   ConfidenceLevel = "HIGH"
)

// ConfidenceScore is derived from raw extraction signals and never persisted
// on its own, only embedded in the analysis or option that owns it.
type ConfidenceScore struct {
	Score   int             `json:"score" bson:"score"`
	Level   ConfidenceLevel `json:"level" bson:"level"`
	Factors []string        `json:"factors" bson:"factors"`
}

func ConfidenceLevelForScore(score int) ConfidenceLevel {
	switch {
	case score >= 80:
		return ConfidenceLevelHigh
	case score >= 60:
		return ConfidenceLevelMedium
	default:
		return ConfidenceLevelLow
	}
}
