package models

// CarePlanOption is an AI-generated candidate plan. It is never persisted as
// a first-class entity; it lives inside a generated option set until a human
// materializes one into a CarePlan.
type CarePlanOption struct {
	Strategy         string                 `json:"strategy"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	ConfidenceScore  ConfidenceScore        `json:"confidenceScore"`
	Goals            []CarePlanGoal         `json:"goals"`
	Interventions    []CarePlanIntervention `json:"interventions"`
	ExpectedOutcomes []string               `json:"expectedOutcomes"`
}
