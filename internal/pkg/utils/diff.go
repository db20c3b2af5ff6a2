package utils

import (
	"time"

	"revolucare-service/internal/app/models"
)

// FieldChange is one entry in a care plan version's change set.
type FieldChange struct {
	From interface{} `json:"from" bson:"from"`
	To   interface{} `json:"to" bson:"to"`
}

// ComputeCarePlanDiff compares the content-bearing fields of two plan states
// and returns the change set recorded on the version row. An empty map means
// the update carried no content change.
func ComputeCarePlanDiff(current, updated *models.CarePlan) map[string]interface{} {
	changes := make(map[string]interface{})

	if current.Title != updated.Title {
		changes["title"] = FieldChange{From: current.Title, To: updated.Title}
	}
	if current.Description != updated.Description {
		changes["description"] = FieldChange{From: current.Description, To: updated.Description}
	}
	if current.Status != updated.Status {
		changes["status"] = FieldChange{From: current.Status, To: updated.Status}
	}
	if !goalsEqual(current.Goals, updated.Goals) {
		changes["goals"] = FieldChange{From: current.Goals, To: updated.Goals}
	}
	if !interventionsEqual(current.Interventions, updated.Interventions) {
		changes["interventions"] = FieldChange{From: current.Interventions, To: updated.Interventions}
	}

	return changes
}

func goalsEqual(a, b []models.CarePlanGoal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Description != b[i].Description || a[i].Status != b[i].Status {
			return false
		}
		if !timePtrEqual(a[i].TargetDate, b[i].TargetDate) {
			return false
		}
		if !stringSlicesEqual(a[i].Measures, b[i].Measures) {
			return false
		}
	}
	return true
}

func interventionsEqual(a, b []models.CarePlanIntervention) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Description != b[i].Description ||
			a[i].Frequency != b[i].Frequency ||
			a[i].Duration != b[i].Duration ||
			a[i].ResponsibleParty != b[i].ResponsibleParty ||
			a[i].Status != b[i].Status {
			return false
		}
	}
	return true
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
