package models

import "time"

type CarePlanStatus string

const (
	CarePlanStatusDraft        CarePlanStatus = "DRAFT"
	CarePlanStatusInReview     CarePlanStatus = "IN_REVIEW"
	CarePlanStatusApproved     CarePlanStatus = "APPROVED"
	CarePlanStatusActive       CarePlanStatus = "ACTIVE"
	CarePlanStatusCompleted    CarePlanStatus = "COMPLETED"
	CarePlanStatusRejected     CarePlanStatus = "REJECTED"
	CarePlanStatusDiscontinued CarePlanStatus = "DISCONTINUED"
)

// carePlanTransitions encodes the lifecycle. Transitions are one-directional
// except DRAFT and IN_REVIEW which may flip back and forth.
var carePlanTransitions = map[CarePlanStatus][]CarePlanStatus{
	CarePlanStatusDraft:        {CarePlanStatusInReview, CarePlanStatusApproved, CarePlanStatusRejected},
	CarePlanStatusInReview:     {CarePlanStatusDraft, CarePlanStatusApproved, CarePlanStatusRejected},
	CarePlanStatusApproved:     {CarePlanStatusActive},
	CarePlanStatusActive:       {CarePlanStatusCompleted, CarePlanStatusDiscontinued},
	CarePlanStatusCompleted:    {},
	CarePlanStatusRejected:     {},
	CarePlanStatusDiscontinued: {},
}

func (s CarePlanStatus) CanTransitionTo(target CarePlanStatus) bool {
	for _, allowed := range carePlanTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s CarePlanStatus) IsTerminal() bool {
	return len(carePlanTransitions[s]) == 0
}

func (s CarePlanStatus) IsApprovable() bool {
	return s == CarePlanStatusDraft || s == CarePlanStatusInReview
}

type GoalStatus string

const (
	GoalStatusPending      GoalStatus = "pending"
	GoalStatusInProgress   GoalStatus = "in_progress"
	GoalStatusAchieved     GoalStatus = "achieved"
	GoalStatusDiscontinued GoalStatus = "discontinued"
)

type InterventionStatus string

const (
	InterventionStatusPending      InterventionStatus = "pending"
	InterventionStatusActive       InterventionStatus = "active"
	InterventionStatusCompleted    InterventionStatus = "completed"
	InterventionStatusDiscontinued InterventionStatus = "discontinued"
)

// CarePlan is the durable, versioned, approvable artifact. Version strictly
// increases by 1 on every content-changing update; all mutations go through
// the care plan usecase which serializes them with a conditional write.
type CarePlan struct {
	ID                string                 `json:"id" bson:"_id,omitempty"`
	ClientID          string                 `json:"clientId" bson:"clientId"`
	CreatedByID       string                 `json:"createdById" bson:"createdById"`
	Title             string                 `json:"title" bson:"title"`
	Description       string                 `json:"description" bson:"description"`
	Status            CarePlanStatus         `json:"status" bson:"status"`
	ConfidenceScore   *ConfidenceScore       `json:"confidenceScore,omitempty" bson:"confidenceScore,omitempty"`
	Version           int                    `json:"version" bson:"version"`
	PreviousVersionID string                 `json:"previousVersionId,omitempty" bson:"previousVersionId,omitempty"`
	ApprovedByID      string                 `json:"approvedById,omitempty" bson:"approvedById,omitempty"`
	ApprovedAt        *time.Time             `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
	ApprovalNotes     string                 `json:"approvalNotes,omitempty" bson:"approvalNotes,omitempty"`
	Goals             []CarePlanGoal         `json:"goals" bson:"goals"`
	Interventions     []CarePlanIntervention `json:"interventions" bson:"interventions"`
	CreatedAt         time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt" bson:"updatedAt"`
}

type CarePlanGoal struct {
	ID          string     `json:"id" bson:"id"`
	Description string     `json:"description" bson:"description"`
	TargetDate  *time.Time `json:"targetDate,omitempty" bson:"targetDate,omitempty"`
	Measures    []string   `json:"measures" bson:"measures"`
	Status      GoalStatus `json:"status" bson:"status"`
}

type CarePlanIntervention struct {
	ID               string             `json:"id" bson:"id"`
	Description      string             `json:"description" bson:"description"`
	Frequency        string             `json:"frequency" bson:"frequency"`
	Duration         string             `json:"duration" bson:"duration"`
	ResponsibleParty string             `json:"responsibleParty" bson:"responsibleParty"`
	Status           InterventionStatus `json:"status" bson:"status"`
}
