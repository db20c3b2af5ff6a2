package requests

import "time"

type CarePlanGoalInput struct {
	Description string     `json:"description" validate:"required,min=3"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Measures    []string   `json:"measures" validate:"required,min=1,dive,required"`
}

type CarePlanInterventionInput struct {
	Description      string `json:"description" validate:"required,min=3"`
	Frequency        string `json:"frequency" validate:"required"`
	Duration         string `json:"duration" validate:"required"`
	ResponsibleParty string `json:"responsibleParty" validate:"required"`
}

type CreateCarePlan struct {
	ClientID      string                      `json:"clientId" validate:"required"`
	Title         string                      `json:"title" validate:"required,min=3"`
	Description   string                      `json:"description" validate:"required,min=10"`
	Goals         []CarePlanGoalInput         `json:"goals" validate:"required,min=1,dive"`
	Interventions []CarePlanInterventionInput `json:"interventions" validate:"required,min=1,dive"`
	// ConfidenceScore carries over the generated option's score when a plan
	// is materialized from an option set.
	ConfidenceScore *ConfidenceScoreInput `json:"confidenceScore,omitempty"`
}

type ConfidenceScoreInput struct {
	Score   int      `json:"score" validate:"min=0,max=100"`
	Factors []string `json:"factors" validate:"max=3"`
}

// UpdateCarePlan is a patch: nil fields keep the current value.
type UpdateCarePlan struct {
	Title         *string                     `json:"title,omitempty" validate:"omitempty,min=3"`
	Description   *string                     `json:"description,omitempty" validate:"omitempty,min=10"`
	Goals         []CarePlanGoalInput         `json:"goals,omitempty" validate:"omitempty,min=1,dive"`
	Interventions []CarePlanInterventionInput `json:"interventions,omitempty" validate:"omitempty,min=1,dive"`
}

func (r *UpdateCarePlan) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Goals == nil && r.Interventions == nil
}

type ApproveCarePlan struct {
	ApprovalNotes string `json:"approvalNotes" validate:"max=2000"`
}

type UpdateCarePlanStatus struct {
	Status string `json:"status" validate:"required,oneof=DRAFT IN_REVIEW APPROVED ACTIVE COMPLETED REJECTED DISCONTINUED"`
}
