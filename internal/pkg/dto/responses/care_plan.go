package responses

import (
	"time"

	"revolucare-service/internal/app/models"
)

type CarePlan struct {
	ID                string                        `json:"id"`
	ClientID          string                        `json:"clientId"`
	CreatedByID       string                        `json:"createdById"`
	Title             string                        `json:"title"`
	Description       string                        `json:"description"`
	Status            models.CarePlanStatus         `json:"status"`
	ConfidenceScore   *models.ConfidenceScore       `json:"confidenceScore,omitempty"`
	Version           int                           `json:"version"`
	PreviousVersionID string                        `json:"previousVersionId,omitempty"`
	ApprovedByID      string                        `json:"approvedById,omitempty"`
	ApprovedAt        *time.Time                    `json:"approvedAt,omitempty"`
	ApprovalNotes     string                        `json:"approvalNotes,omitempty"`
	Goals             []models.CarePlanGoal         `json:"goals"`
	Interventions     []models.CarePlanIntervention `json:"interventions"`
	CreatedAt         time.Time                     `json:"createdAt"`
	UpdatedAt         time.Time                     `json:"updatedAt"`
}

type CarePlanHistory struct {
	CarePlanID     string                   `json:"carePlanId"`
	CurrentVersion int                      `json:"currentVersion"`
	Versions       []models.CarePlanVersion `json:"versions"`
}
